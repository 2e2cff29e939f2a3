package app

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/agbru/pascalcalc/internal/cli"
	"github.com/agbru/pascalcalc/internal/config"
	apperrors "github.com/agbru/pascalcalc/internal/errors"
	"github.com/agbru/pascalcalc/internal/logging"
	"github.com/agbru/pascalcalc/internal/pascal"
	"github.com/agbru/pascalcalc/internal/polynomial"
	"github.com/agbru/pascalcalc/internal/timelog"
	"github.com/agbru/pascalcalc/internal/timing"
	"github.com/agbru/pascalcalc/internal/ui"
)

// Application represents one pascalcalc invocation. It holds the parsed
// configuration, the selected generator and the diagnostics logger.
type Application struct {
	// Config holds the parsed application configuration.
	Config config.AppConfig
	// Generator produces the rows, selected by Config.Algo.
	Generator pascal.Generator
	// ErrWriter is the writer for error output (typically os.Stderr).
	ErrWriter io.Writer
	// Logger receives diagnostics. It writes to ErrWriter.
	Logger zerolog.Logger
	// RunID identifies this invocation in diagnostics and the JSON report.
	RunID string
}

// New creates a new Application instance by parsing command-line arguments.
// It validates the configuration and returns an error if parsing or validation fails.
//
// Parameters:
//   - args: The command-line arguments (typically os.Args).
//   - errWriter: The writer for error output.
//
// Returns:
//   - *Application: A new application instance.
//   - error: An error if configuration parsing or validation fails.
func New(args []string, errWriter io.Writer) (*Application, error) {
	// args[0] is program name, args[1:] are the actual arguments
	programName := "pascalcalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, pascal.Names())
	if err != nil {
		return nil, err
	}

	gen, err := pascal.Lookup(cfg.Algo)
	if err != nil {
		return nil, apperrors.NewConfigError("%v", err)
	}

	runID := uuid.NewString()
	logger := logging.New(errWriter, logging.Options{
		Level:   cfg.LogLevel,
		RunID:   runID,
		Console: true,
		NoColor: cfg.NoColor || !ui.IsTerminal(errWriter),
	})

	return &Application{
		Config:    cfg,
		Generator: gen,
		ErrWriter: errWriter,
		Logger:    logger,
		RunID:     runID,
	}, nil
}

// Run executes the demonstration, the timed generation and the timing log
// append, in that order.
//
// Parameters:
//   - out: The writer for standard output.
//
// Returns:
//   - int: An exit code (0 for success, non-zero for errors).
func (a *Application) Run(out io.Writer) int {
	// Initialize CLI theme (respects --no-color flag and NO_COLOR env var)
	ui.InitTheme(a.Config.NoColor, out)

	narrate := !a.Config.Quiet && !a.Config.JSONOutput
	report := jsonReport{RunID: a.RunID, Build: GetVersionInfo(), Algorithm: a.Generator.Name()}

	exitCode, demo := a.runDemo(out, narrate)
	if exitCode != apperrors.ExitSuccess && exitCode != apperrors.ExitErrorMismatch {
		return exitCode
	}
	report.Demo = demo

	metrics := timing.NewMetrics()
	m, err := a.runTiming(out, narrate, metrics)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Status: Failure. An unexpected error occurred: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	report.Timing = newJSONTiming(m)

	if a.Config.Quiet {
		cli.PrintQuietTiming(out, a.Config.Label, m)
	}

	if a.appendTimingLog(m) {
		report.LogFile = a.Config.LogFile
		if narrate {
			cli.PrintLogSaved(out, a.Config.LogFile)
		}
	}
	a.writeMetrics(metrics)

	if a.Config.JSONOutput {
		if code := printJSONReport(report, out); code != apperrors.ExitSuccess {
			return code
		}
	}
	return exitCode
}

// runDemo generates row Config.N and evaluates it at Config.X. An empty row
// is reported and skipped; a verification mismatch yields ExitErrorMismatch.
func (a *Application) runDemo(out io.Writer, narrate bool) (int, *jsonDemo) {
	row := a.Generator.Generate(a.Config.N)
	if narrate {
		cli.PrintGenerating(out, a.Config.N)
		cli.PrintCoefficients(out, row)
	}

	eval, err := polynomial.Evaluate(row, a.Config.X)
	if err != nil {
		a.Logger.Warn().Err(err).Int("n", a.Config.N).Msg("evaluation skipped")
		return apperrors.HandleEvaluationError(err, a.ErrWriter), nil
	}
	if narrate {
		cli.PrintEvaluation(out, eval)
	}

	demo := newJSONDemo(row, eval)
	if !eval.Verified() {
		a.Logger.Error().
			Str("total", eval.Total.String()).
			Str("expected", eval.Verification.String()).
			Msg("verification mismatch")
		cli.PrintVerificationFailure(a.ErrWriter, eval)
		return apperrors.ExitErrorMismatch, demo
	}
	return apperrors.ExitSuccess, demo
}

// runTiming generates row Config.PerfN once untimed under the spinner, then
// Config.Repeat timed times with the spinner stopped, and prints the timing
// section.
func (a *Application) runTiming(out io.Writer, narrate bool, metrics *timing.Metrics) (timing.Measurement, error) {
	if narrate {
		cli.PrintTimingHeader(out, a.Config.PerfN)
	}

	measurer := timing.NewMeasurer(a.Generator, metrics)
	var (
		m   timing.Measurement
		err error
	)
	suffix := fmt.Sprintf(" Generating row %d...", a.Config.PerfN)
	cli.WarmUpThenTime(out, narrate && ui.IsTerminal(out), suffix,
		func() { measurer.WarmUp(a.Config.PerfN) },
		func() { m, err = measurer.Measure(a.Config.PerfN, a.Config.Repeat) })
	if err != nil {
		return timing.Measurement{}, apperrors.WrapError(err, "timed generation failed")
	}

	a.Logger.Debug().
		Str("algorithm", m.Algorithm).
		Int("n", m.N).
		Int("runs", len(m.Runs)).
		Dur("elapsed", m.Elapsed).
		Msg("generation timed")

	if narrate {
		cli.PrintTiming(out, a.Config.Label, m)
	}
	return m, nil
}

// appendTimingLog appends the timing record. A failure is reported on
// ErrWriter and does not change the exit status. It reports whether a
// record was written.
func (a *Application) appendTimingLog(m timing.Measurement) bool {
	if a.Config.LogFile == "" {
		return false
	}
	if err := timelog.Append(a.Config.LogFile, a.Config.Label, m.N, m.Elapsed); err != nil {
		a.Logger.Error().Err(err).Str("path", a.Config.LogFile).Msg("timing log append failed")
		apperrors.HandleAppendError(err, "timing log", a.ErrWriter, cli.CLIColorProvider{})
		return false
	}
	a.Logger.Info().Str("path", a.Config.LogFile).Msg("timing log appended")
	return true
}

// writeMetrics exports the run's metrics when a textfile path is configured.
func (a *Application) writeMetrics(metrics *timing.Metrics) {
	if a.Config.MetricsFile == "" {
		return
	}
	if err := metrics.WriteTextfile(a.Config.MetricsFile); err != nil {
		a.Logger.Error().Err(err).Str("path", a.Config.MetricsFile).Msg("metrics export failed")
		apperrors.HandleAppendError(err, "metrics file", a.ErrWriter, cli.CLIColorProvider{})
		return
	}
	a.Logger.Info().Str("path", a.Config.MetricsFile).Msg("metrics exported")
}

// IsHelpError checks if the error is a help flag error (--help was used).
// This is useful for determining if the application should exit with success
// after displaying help text.
//
// Parameters:
//   - err: The error to check.
//
// Returns:
//   - bool: True if the error indicates help was requested.
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
