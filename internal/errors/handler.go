package apperrors

import (
	"errors"
	"fmt"
	"io"
)

// ColorProvider defines the interface for obtaining terminal color codes.
// This abstraction breaks the import cycle with cli.
type ColorProvider interface {
	Yellow() string
	Reset() string
}

// DefaultColorProvider provides no color codes (for non-terminal output).
type DefaultColorProvider struct{}

func (d DefaultColorProvider) Yellow() string { return "" }
func (d DefaultColorProvider) Reset() string  { return "" }

// HandleAppendError reports a failure to persist a side artifact (the timing
// log or the metrics textfile). These failures are recoverable: the message
// is written to out and the returned exit code is always ExitSuccess, so the
// caller can keep going with results that were already printed.
//
// Parameters:
//   - err: The error that occurred (nil is a no-op).
//   - what: A short description of the artifact, e.g. "timing log".
//   - out: The io.Writer to which the message will be written.
//   - colors: Provider for terminal color codes (can be nil for no colors).
//
// Returns:
//   - int: ExitSuccess.
func HandleAppendError(err error, what string, out io.Writer, colors ColorProvider) int {
	if err == nil {
		return ExitSuccess
	}
	if colors == nil {
		colors = DefaultColorProvider{}
	}
	fmt.Fprintf(out, "%sError writing %s: %v%s\n", colors.Yellow(), what, err, colors.Reset())
	return ExitSuccess
}

// HandleEvaluationError reports an evaluation that could not run and maps it
// to an exit code. Validation errors are reported but do not change the exit
// status; anything else is a generic failure.
//
// Parameters:
//   - err: The error returned by the evaluator.
//   - out: The io.Writer to which the message will be written.
//
// Returns:
//   - int: The appropriate exit code for the error type.
func HandleEvaluationError(err error, out io.Writer) int {
	if err == nil {
		return ExitSuccess
	}
	var verr ValidationError
	if errors.As(err, &verr) {
		fmt.Fprintf(out, "Skipping evaluation: %v\n", err)
		return ExitSuccess
	}
	fmt.Fprintf(out, "Status: Failure. An unexpected error occurred: %v\n", err)
	return ExitErrorGeneric
}
