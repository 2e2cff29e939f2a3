// Package ui provides theme and color support for the console narration.
// It defines the color scheme and decides whether colors are used at all:
// colors are off when requested, when NO_COLOR is set, or when the output is
// not a terminal.
package ui

import (
	"io"
	"os"
	"sync"

	"golang.org/x/term"
)

// Theme defines a color scheme for UI output.
// Each field contains an ANSI escape code for the corresponding category.
type Theme struct {
	// Name is the identifier of the theme.
	Name string
	// Heading marks section banners such as "--- Evaluating ... ---".
	Heading string
	// Value highlights computed numbers.
	Value string
	// Param highlights input parameters (n, x).
	Param string
	// Success indicates a verified result.
	Success string
	// Warning is used for recoverable problems.
	Warning string
	// Error indicates a failed verification.
	Error string
	// Bold is the escape code for bold text.
	Bold string
	// Reset clears all formatting.
	Reset string
}

var (
	// DarkTheme is tuned for dark terminal backgrounds.
	DarkTheme = Theme{
		Name:    "dark",
		Heading: "\033[38;5;39m",
		Value:   "\033[38;5;82m",
		Param:   "\033[38;5;141m",
		Success: "\033[38;5;82m",
		Warning: "\033[38;5;220m",
		Error:   "\033[38;5;196m",
		Bold:    "\033[1m",
		Reset:   "\033[0m",
	}

	// NoColorTheme disables all color output.
	NoColorTheme = Theme{Name: "none"}

	currentTheme = NoColorTheme
	themeMutex   sync.RWMutex
)

// GetCurrentTheme returns the currently active theme.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme sets the active theme. Tests use it to restore state.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// IsTerminal reports whether w is a file descriptor attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// InitTheme selects the theme for output written to w. Colors are disabled
// when noColor is true, when the NO_COLOR environment variable exists
// (https://no-color.org/), or when w is not a terminal.
func InitTheme(noColor bool, w io.Writer) {
	theme := DarkTheme
	if _, exists := os.LookupEnv("NO_COLOR"); noColor || exists || !IsTerminal(w) {
		theme = NoColorTheme
	}
	SetCurrentTheme(theme)
}
