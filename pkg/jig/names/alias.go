package names

import (
	"slices"
	"strings"
)

// Aliases maps every non-empty phrase to a short alias built from the leading
// characters of its snake_case words. Colliding aliases are widened jointly at
// the word positions where the colliding phrases diverge, so adding or
// removing a phrase can change the aliases of others.
//
// Phrases whose words are identical cannot be told apart by widening; they
// fall back to the phrase itself. A phrase colliding only with fallbacks takes
// its words at full length, then falls back too.
func Aliases(phrases []string) map[string]string {
	entries := make([]*aliasEntry, 0, len(phrases))
	seen := make(map[string]struct{}, len(phrases))
	for _, phrase := range phrases {
		if _, dup := seen[phrase]; dup {
			continue
		}
		seen[phrase] = struct{}{}

		words := splitWords(phrase)
		if len(words) == 0 {
			continue
		}
		widths := make([]int, len(words))
		for i := range widths {
			widths[i] = 1
		}
		entries = append(entries, &aliasEntry{phrase: phrase, words: words, widths: widths})
	}

	// Group iteration order must not depend on map iteration.
	slices.SortFunc(entries, func(a, b *aliasEntry) int {
		return strings.Compare(a.phrase, b.phrase)
	})

	for {
		groups := collisions(entries)
		if len(groups) == 0 {
			break
		}

		changed := false
		for _, group := range groups {
			if widen(active(group)) {
				changed = true
			}
		}

		if !changed {
			for _, group := range groups {
				settle(active(group))
			}
		}
	}

	result := make(map[string]string, len(entries))
	for _, e := range entries {
		result[e.phrase] = e.alias()
	}
	return result
}

type aliasEntry struct {
	phrase   string
	words    []string
	widths   []int
	fallback bool
}

func (e *aliasEntry) alias() string {
	if e.fallback {
		return e.phrase
	}

	var b strings.Builder
	for i, word := range e.words {
		b.WriteString(prefix(word, e.widths[i]))
	}
	return b.String()
}

// collisions returns the groups of entries sharing an alias, ordered by alias.
func collisions(entries []*aliasEntry) [][]*aliasEntry {
	byAlias := make(map[string][]*aliasEntry)
	for _, e := range entries {
		a := e.alias()
		byAlias[a] = append(byAlias[a], e)
	}

	keys := make([]string, 0, len(byAlias))
	for a, group := range byAlias {
		if len(group) > 1 {
			keys = append(keys, a)
		}
	}
	slices.Sort(keys)

	groups := make([][]*aliasEntry, 0, len(keys))
	for _, a := range keys {
		groups = append(groups, byAlias[a])
	}
	return groups
}

// active returns the members of group that have not fallen back.
func active(group []*aliasEntry) []*aliasEntry {
	var out []*aliasEntry
	for _, e := range group {
		if !e.fallback {
			out = append(out, e)
		}
	}
	return out
}

// settle resolves a group that widening cannot separate. Fallback aliases are
// distinct phrases, so they never collide with each other.
func settle(group []*aliasEntry) {
	if len(group) == 1 && !group[0].full() {
		e := group[0]
		for i, word := range e.words {
			e.widths[i] = len([]rune(word))
		}
		return
	}
	for _, e := range group {
		e.fallback = true
	}
}

func (e *aliasEntry) full() bool {
	for i, word := range e.words {
		if e.widths[i] < len([]rune(word)) {
			return false
		}
	}
	return true
}

// widen grows the word widths of a colliding group at every index where the
// group disagrees. It reports whether any width changed.
func widen(group []*aliasEntry) bool {
	if len(group) < 2 {
		return false
	}

	shortest := len(group[0].words)
	for _, e := range group[1:] {
		shortest = min(shortest, len(e.words))
	}

	changed := false
	for idx := range shortest {
		words := make([]string, len(group))
		for i, e := range group {
			words[i] = e.words[idx]
		}
		if allEqual(words) {
			continue
		}

		want := commonPrefixLen(words) + 1
		for _, e := range group {
			if e.widths[idx] < want && len([]rune(e.words[idx])) > e.widths[idx] {
				changed = true
			}
			e.widths[idx] = max(e.widths[idx], want)
		}
	}
	return changed
}

func splitWords(phrase string) []string {
	var words []string
	for _, w := range strings.Split(Convert(phrase, Snake), "_") {
		if w != "" {
			words = append(words, w)
		}
	}
	return words
}

func prefix(word string, n int) string {
	r := []rune(word)
	if n >= len(r) {
		return word
	}
	return string(r[:n])
}

func allEqual(words []string) bool {
	for _, w := range words[1:] {
		if w != words[0] {
			return false
		}
	}
	return true
}

func commonPrefixLen(words []string) int {
	first := []rune(words[0])
	n := len(first)
	for _, w := range words[1:] {
		r := []rune(w)
		i := 0
		for i < n && i < len(r) && r[i] == first[i] {
			i++
		}
		n = i
	}
	return n
}
