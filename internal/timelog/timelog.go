// Package timelog appends timing measurements to a plain-text log file.
// Each record is one line of the form "<label> (n=<n>): <ms> ms"; existing
// content is never rewritten, so several runs (or several programs sharing
// the same file) accumulate side by side.
package timelog

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DefaultPath is the log file used when none is configured.
const DefaultPath = "tiempos.txt"

// AppendError reports a failure to append to the timing log.
type AppendError struct {
	// Path is the log file that could not be written.
	Path string
	// Cause is the underlying I/O error.
	Cause error
}

// Error returns the error message for an AppendError.
func (e *AppendError) Error() string {
	return fmt.Sprintf("append to %s: %v", e.Path, e.Cause)
}

// Unwrap returns the underlying I/O error.
func (e *AppendError) Unwrap() error { return e.Cause }

// FormatMillis renders d in milliseconds with four decimal places.
func FormatMillis(d time.Duration) string {
	return fmt.Sprintf("%.4f", float64(d)/float64(time.Millisecond))
}

// FormatLine builds one log record without the trailing newline.
func FormatLine(label string, n int, elapsed time.Duration) string {
	return fmt.Sprintf("%s (n=%d): %s ms", label, n, FormatMillis(elapsed))
}

// Append opens path in append mode (creating it and its directory if needed),
// writes one record followed by a newline and closes the file. The file is
// closed on every return path.
//
// Parameters:
//   - path: The log file path.
//   - label: The record label, e.g. "Go".
//   - n: The row index that was timed.
//   - elapsed: The measured duration.
//
// Returns:
//   - error: An *AppendError if the file could not be opened, written or closed.
func Append(path, label string, n int, elapsed time.Duration) (err error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if mkErr := os.MkdirAll(dir, 0o755); mkErr != nil {
			return &AppendError{Path: path, Cause: fmt.Errorf("failed to create directory: %w", mkErr)}
		}
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return &AppendError{Path: path, Cause: err}
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = &AppendError{Path: path, Cause: cerr}
		}
	}()

	if _, err := fmt.Fprintln(file, FormatLine(label, n, elapsed)); err != nil {
		return &AppendError{Path: path, Cause: err}
	}
	return nil
}
