// Package cli renders the program's narration: the demonstration row, the
// polynomial evaluation breakdown and the timing section. The printers only
// format values computed elsewhere; they never compute anything themselves.
package cli

import (
	"fmt"
	"io"

	"github.com/agbru/pascalcalc/internal/pascal"
	"github.com/agbru/pascalcalc/internal/polynomial"
	"github.com/agbru/pascalcalc/internal/timelog"
	"github.com/agbru/pascalcalc/internal/timing"
	"github.com/agbru/pascalcalc/internal/ui"
)

// SectionRule closes the evaluation block.
const SectionRule = "---------------------------------"

// PrintGenerating announces the demonstration row.
func PrintGenerating(out io.Writer, n int) {
	fmt.Fprintf(out, "Generating coefficients for n=%s%d%s...\n", ui.ColorParam(), n, ui.ColorReset())
}

// PrintCoefficients prints the row in slice notation.
func PrintCoefficients(out io.Writer, row pascal.Row) {
	fmt.Fprintf(out, "Coefficients: %s%s%s\n", ui.ColorValue(), row, ui.ColorReset())
}

// PrintEvaluation prints the rendered polynomial, the per-term breakdown, the
// total and the independent verification value, in that order.
//
// Parameters:
//   - out: The destination writer.
//   - eval: The evaluation returned by polynomial.Evaluate.
func PrintEvaluation(out io.Writer, eval polynomial.Evaluation) {
	fmt.Fprintf(out, "%s--- Evaluating for n=%d and x=%d ---%s\n", ui.ColorHeading(), eval.Degree, eval.X, ui.ColorReset())
	fmt.Fprintf(out, "f(%s) = %s\n", polynomial.DefaultVariable, eval.Polynomial)

	fmt.Fprintf(out, "\nCalculation of f(%d):\n", eval.X)
	for _, term := range eval.Terms {
		fmt.Fprintf(out, "  + Term %d: (%s * %d^%d) = %s%s%s\n",
			term.Index, term.Coefficient, term.Base, term.Exponent,
			ui.ColorValue(), term.Value, ui.ColorReset())
	}

	fmt.Fprintf(out, "\nTotal Result: f(%d) = %s%s%s\n", eval.X, ui.ColorBold(), eval.Total, ui.ColorReset())

	check := ui.ColorSuccess()
	if !eval.Verified() {
		check = ui.ColorError()
	}
	fmt.Fprintf(out, "Verification: (%d+1)^%d = %s%s%s\n", eval.X, eval.Degree, check, eval.Verification, ui.ColorReset())
	fmt.Fprintln(out, SectionRule)
}

// PrintTimingHeader announces the timed generation.
func PrintTimingHeader(out io.Writer, n int) {
	fmt.Fprintf(out, "\nCalculating time for n=%s%d%s...\n", ui.ColorParam(), n, ui.ColorReset())
}

// PrintTiming prints the elapsed time (milliseconds, four decimals), the
// repeat statistics when more than one run was made, and the central
// coefficient of the timed row.
func PrintTiming(out io.Writer, label string, m timing.Measurement) {
	fmt.Fprintf(out, "Generation time (%s): %s%s ms%s\n", label, ui.ColorValue(), timelog.FormatMillis(m.Elapsed), ui.ColorReset())
	if len(m.Runs) > 1 {
		fmt.Fprintf(out, "Runs: %d (median reported), mean %s ms, std dev %s ms\n",
			len(m.Runs), timelog.FormatMillis(m.Mean), timelog.FormatMillis(m.StdDev))
	}
	if c := m.Row.Central(); c != nil {
		n := m.Row.Degree()
		fmt.Fprintf(out, "Central coefficient (%d C %d): %s%s%s\n", n, n/2, ui.ColorValue(), c, ui.ColorReset())
	}
}

// PrintQuietTiming prints the single line used in quiet mode; it is the
// same text that is appended to the timing log.
func PrintQuietTiming(out io.Writer, label string, m timing.Measurement) {
	fmt.Fprintln(out, timelog.FormatLine(label, m.N, m.Elapsed))
}

// PrintLogSaved confirms the timing log append.
func PrintLogSaved(out io.Writer, path string) {
	fmt.Fprintf(out, "Timing result saved to '%s'\n", path)
}

// PrintVerificationFailure reports f(x) disagreeing with (x+1)^n.
func PrintVerificationFailure(out io.Writer, eval polynomial.Evaluation) {
	fmt.Fprintf(out, "%sVerification failed: f(%d) = %s but (%d+1)^%d = %s%s\n",
		ui.ColorError(), eval.X, eval.Total, eval.X, eval.Degree, eval.Verification, ui.ColorReset())
}

// CLIColorProvider adapts the current theme to apperrors.ColorProvider.
type CLIColorProvider struct{}

// Yellow returns the warning color.
func (CLIColorProvider) Yellow() string { return ui.ColorWarning() }

// Reset returns the reset code.
func (CLIColorProvider) Reset() string { return ui.ColorReset() }
