// Package testutil provides shared testing utilities used across the project.
package testutil

import "regexp"

// ansiRegex matches ANSI CSI sequences (ESC [ ... letter).
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// millisRegex matches a duration printed by timelog.FormatMillis plus unit.
var millisRegex = regexp.MustCompile(`\d+\.\d{4} ms`)

// MaskedMillis replaces every measured duration in MaskMillis output.
const MaskedMillis = "#.#### ms"

// StripAnsiCodes removes ANSI escape codes from a string, so CLI output can
// be compared without color codes interfering with assertions.
func StripAnsiCodes(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

// MaskMillis replaces each "<digits>.<4 digits> ms" with MaskedMillis.
// Timing output differs on every run; masking it lets a test compare the
// rest of the narration against a fixed golden string.
func MaskMillis(s string) string {
	return millisRegex.ReplaceAllString(s, MaskedMillis)
}
