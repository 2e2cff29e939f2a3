// Package config provides the configuration management for the pascalcalc
// application. It defines the data structure for the configuration, handles
// the parsing of command-line arguments and environment overrides, and
// performs validation on the configuration values.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	apperrors "github.com/agbru/pascalcalc/internal/errors"
	"github.com/agbru/pascalcalc/internal/logging"
)

const (
	// EnvPrefix is the prefix for all environment variables used by pascalcalc.
	EnvPrefix = "PASCALCALC_"
)

// Default configuration values.
// These can be overridden via command-line flags or environment variables.
const (
	// DefaultN is the demonstration row.
	DefaultN = 5
	// DefaultX is the demonstration evaluation point.
	DefaultX int64 = 2
	// DefaultPerfN is the row generated under timing.
	DefaultPerfN = 100
	// DefaultRepeat is the number of timed runs.
	DefaultRepeat = 1
	// DefaultAlgo is the generator used for both rows.
	DefaultAlgo = "recurrence"
	// DefaultLogFile is the timing log appended to on every run.
	DefaultLogFile = "tiempos.txt"
	// DefaultLabel prefixes each timing log line.
	DefaultLabel = "Go"
)

// AppConfig aggregates the application's configuration parameters.
type AppConfig struct {
	// N is the demonstration row index. Negative values yield an empty row.
	N int
	// X is the point at which the demonstration polynomial is evaluated.
	X int64
	// PerfN is the row index generated under timing.
	PerfN int
	// Repeat is the number of timed runs; the median is reported.
	Repeat int
	// Algo is the generator name ("recurrence" or "binomial").
	Algo string
	// LogFile is the timing log path. Empty disables the append.
	LogFile string
	// Label prefixes the timing log line.
	Label string
	// MetricsFile, if set, receives the Prometheus textfile export.
	MetricsFile string
	// JSONOutput prints a JSON report instead of the narration.
	JSONOutput bool
	// Quiet prints only the timing line.
	Quiet bool
	// NoColor disables all color output. NO_COLOR is honored as well.
	NoColor bool
	// LogLevel is the zerolog level for diagnostics on stderr.
	LogLevel string
}

// Validate checks the semantic consistency of the configuration parameters.
//
// Parameters:
//   - availableAlgos: The registered generator names.
//
// Returns:
//   - error: A ConfigError if the configuration is invalid, nil otherwise.
func (c AppConfig) Validate(availableAlgos []string) error {
	if c.PerfN < 0 {
		return apperrors.NewConfigError("timed row index cannot be negative: %d", c.PerfN)
	}
	if c.Repeat < 1 {
		return apperrors.NewConfigError("repeat must be at least 1, got %d", c.Repeat)
	}
	isAlgoAvailable := false
	for _, a := range availableAlgos {
		if a == c.Algo {
			isAlgoAvailable = true
			break
		}
	}
	if !isAlgoAvailable {
		return apperrors.NewConfigError("unrecognized algorithm: '%s'. Valid algorithms are: [%s]", c.Algo, strings.Join(availableAlgos, ", "))
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return apperrors.NewConfigError("invalid log level: '%s'", c.LogLevel)
	}
	return nil
}

// ParseConfig parses the command-line arguments and populates an AppConfig.
// Environment variables fill in flags that were not given explicitly, so the
// priority is: CLI flags > environment > defaults.
//
// Parameters:
//   - programName: The name of the program, used in the usage message.
//   - args: The command-line arguments (typically os.Args[1:]).
//   - errorWriter: Where parsing errors and usage information are printed.
//   - availableAlgos: Valid generator names for validation.
//
// Returns:
//   - AppConfig: The populated configuration struct.
//   - error: An error if flag parsing or validation fails.
func ParseConfig(programName string, args []string, errorWriter io.Writer, availableAlgos []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)
	algoHelp := fmt.Sprintf("Row generator, one of [%s].", strings.Join(availableAlgos, ", "))

	config := AppConfig{}
	fs.IntVar(&config.N, "n", DefaultN, "Row of Pascal's triangle used for the demonstration.")
	fs.Int64Var(&config.X, "x", DefaultX, "Point at which the demonstration polynomial is evaluated.")
	fs.IntVar(&config.PerfN, "perf-n", DefaultPerfN, "Row generated under timing.")
	fs.IntVar(&config.Repeat, "repeat", DefaultRepeat, "Number of timed runs; the median is reported and logged.")
	fs.StringVar(&config.Algo, "algo", DefaultAlgo, algoHelp)
	fs.StringVar(&config.LogFile, "log-file", DefaultLogFile, "Timing log appended to on each run (empty to disable).")
	fs.StringVar(&config.Label, "label", DefaultLabel, "Label written at the start of the timing log line.")
	fs.StringVar(&config.MetricsFile, "metrics-file", "", "Write Prometheus metrics to this textfile.")
	fs.BoolVar(&config.JSONOutput, "json", false, "Output a JSON report instead of text.")
	fs.BoolVar(&config.Quiet, "quiet", false, "Quiet mode - print only the timing line.")
	fs.BoolVar(&config.Quiet, "q", false, "Quiet mode (shorthand).")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output (also respects NO_COLOR env var).")
	fs.StringVar(&config.LogLevel, "log-level", logging.DefaultLevel, "Diagnostics level: debug, info, warn, error, disabled.")

	setCustomUsage(fs)

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	applyEnvOverrides(&config, fs)

	config.Algo = strings.ToLower(config.Algo)
	if err := config.Validate(availableAlgos); err != nil {
		fmt.Fprintln(errorWriter, "Configuration error:", err)
		fs.Usage()
		return AppConfig{}, errors.Join(errors.New("invalid configuration"), err)
	}
	return config, nil
}
