// Package names converts, abbreviates and fuzzy-matches command names.
package names

import (
	"strings"
	"unicode"

	"go.trai.ch/zerr"
)

// ErrInvalidCaseStrategy is returned when a case-converting strategy name is not recognized.
var ErrInvalidCaseStrategy = zerr.New("invalid case-converting strategy, expected 'keep', 'snake' or 'kebab'")

// CaseStrategy selects how command names are rewritten before they are exposed.
type CaseStrategy string

const (
	// Keep leaves names unchanged.
	Keep CaseStrategy = "keep"
	// Snake converts names to snake_case.
	Snake CaseStrategy = "snake"
	// Kebab converts names to kebab-case.
	Kebab CaseStrategy = "kebab"
)

// String implements fmt.Stringer.
func (s CaseStrategy) String() string {
	return string(s)
}

// ParseCaseStrategy accepts the short strategy names as well as the long
// spellings used on the companion command line.
func ParseCaseStrategy(s string) (CaseStrategy, error) {
	switch s {
	case "keep", "keepOriginal":
		return Keep, nil
	case "snake", "toSnakeCase":
		return Snake, nil
	case "kebab", "toKebabCase":
		return Kebab, nil
	default:
		return "", zerr.With(zerr.Wrap(ErrInvalidCaseStrategy, "failed to parse case strategy"), "strategy", s)
	}
}

// Convert rewrites name according to strategy.
func Convert(name string, strategy CaseStrategy) string {
	switch strategy {
	case Snake:
		return separate(name, '_', '-')
	case Kebab:
		return separate(name, '-', '_')
	default:
		return name
	}
}

// separate inserts sep at every lowercase-to-uppercase boundary, lowercases
// everything and rewrites the other separator to sep.
func separate(name string, sep, other rune) string {
	var b strings.Builder
	b.Grow(len(name) + 4)

	prevLower := false
	for _, r := range name {
		if prevLower && unicode.IsUpper(r) {
			b.WriteRune(sep)
		}
		prevLower = unicode.IsLower(r)

		if r == other {
			r = sep
		}
		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}
