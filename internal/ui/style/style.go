// Package style holds the colors, icons and terminal output setup shared by
// the front door and companion output.
package style

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Brand colors.
var (
	Amber = lipgloss.Color("#F59E0B")
	Slate = lipgloss.Color("#667085")
	Red   = lipgloss.Color("#D93025")
	Teal  = lipgloss.Color("#0E9384")
)

// Icons.
const (
	Cross   = "✗"
	Warning = "!"
	Arrow   = "→"
	Bullet  = "•"
)

// Profile returns Ascii when NO_COLOR is set and the detected terminal
// profile otherwise.
func Profile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// Output returns a termenv output for w using Profile.
func Output(w io.Writer) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}
	return termenv.NewOutput(w, termenv.WithProfile(Profile()), termenv.WithTTY(true))
}

// Paint renders s in color c on out.
func Paint(out *termenv.Output, c lipgloss.Color, s string) string {
	return out.String(s).Foreground(out.Color(string(c))).String()
}
