// Package logging builds the zerolog logger used for diagnostics.
//
// Diagnostics go to stderr and stay separate from the program's narration on
// stdout: the narration is the product, the log explains what happened
// while producing it (failed appends, metrics export, chosen generator).
package logging

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// DefaultLevel is the level used when none is configured.
const DefaultLevel = "warn"

// Options configures New.
type Options struct {
	// Level is a zerolog level name ("debug", "info", "warn", "error", "disabled").
	Level string
	// RunID tags every event of one invocation.
	RunID string
	// Console selects the human-readable console writer instead of JSON lines.
	Console bool
	// NoColor disables colors in the console writer.
	NoColor bool
}

// ParseLevel converts a level name to a zerolog.Level. The empty string maps
// to DefaultLevel.
func ParseLevel(name string) (zerolog.Level, error) {
	if name == "" {
		name = DefaultLevel
	}
	return zerolog.ParseLevel(strings.ToLower(name))
}

// New creates a logger writing to w. An unknown level falls back to
// DefaultLevel; callers validate levels earlier through ParseLevel.
func New(w io.Writer, opts Options) zerolog.Logger {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		level, _ = ParseLevel(DefaultLevel)
	}

	out := w
	if opts.Console {
		out = zerolog.ConsoleWriter{Out: w, NoColor: opts.NoColor, TimeFormat: "15:04:05"}
	}

	ctx := zerolog.New(out).Level(level).With().Timestamp().Str("component", "pascalcalc")
	if opts.RunID != "" {
		ctx = ctx.Str("run_id", opts.RunID)
	}
	return ctx.Logger()
}

// Nop returns a logger that discards everything.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
