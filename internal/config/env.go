package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
)

// getEnvString returns the value of EnvPrefix+key, or defaultVal if unset.
// An explicitly empty variable is honored so that PASCALCALC_LOG_FILE=""
// can disable the timing log.
func getEnvString(key, defaultVal string) string {
	if val, ok := os.LookupEnv(EnvPrefix + key); ok {
		return val
	}
	return defaultVal
}

// getEnvInt returns EnvPrefix+key parsed as int, or defaultVal if unset or
// invalid.
func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}

// getEnvInt64 returns EnvPrefix+key parsed as int64, or defaultVal if unset
// or invalid.
func getEnvInt64(key string, defaultVal int64) int64 {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if parsed, err := strconv.ParseInt(val, 10, 64); err == nil {
			return parsed
		}
	}
	return defaultVal
}

// getEnvBool returns EnvPrefix+key parsed as bool, or defaultVal if unset.
// Accepts "true", "1", "yes" and "false", "0", "no" (case-insensitive).
func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		switch strings.ToLower(val) {
		case "true", "1", "yes":
			return true
		case "false", "0", "no":
			return false
		}
	}
	return defaultVal
}

// isFlagSet reports whether any of names was given on the command line.
func isFlagSet(fs *flag.FlagSet, names ...string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		for _, name := range names {
			if f.Name == name {
				found = true
			}
		}
	})
	return found
}

// applyEnvOverrides applies environment variable values to the configuration
// for any flags that were not explicitly set on the command line.
//
// Supported environment variables:
//   - PASCALCALC_N, PASCALCALC_X, PASCALCALC_PERF_N, PASCALCALC_REPEAT
//   - PASCALCALC_ALGO, PASCALCALC_LOG_FILE, PASCALCALC_LABEL
//   - PASCALCALC_METRICS_FILE, PASCALCALC_LOG_LEVEL
//   - PASCALCALC_JSON, PASCALCALC_QUIET, PASCALCALC_NO_COLOR
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet) {
	applyNumericOverrides(config, fs)
	applyStringOverrides(config, fs)
	applyBooleanOverrides(config, fs)
}

func applyNumericOverrides(config *AppConfig, fs *flag.FlagSet) {
	if !isFlagSet(fs, "n") {
		config.N = getEnvInt("N", config.N)
	}
	if !isFlagSet(fs, "x") {
		config.X = getEnvInt64("X", config.X)
	}
	if !isFlagSet(fs, "perf-n") {
		config.PerfN = getEnvInt("PERF_N", config.PerfN)
	}
	if !isFlagSet(fs, "repeat") {
		config.Repeat = getEnvInt("REPEAT", config.Repeat)
	}
}

func applyStringOverrides(config *AppConfig, fs *flag.FlagSet) {
	if !isFlagSet(fs, "algo") {
		config.Algo = getEnvString("ALGO", config.Algo)
	}
	if !isFlagSet(fs, "log-file") {
		config.LogFile = getEnvString("LOG_FILE", config.LogFile)
	}
	if !isFlagSet(fs, "label") {
		config.Label = getEnvString("LABEL", config.Label)
	}
	if !isFlagSet(fs, "metrics-file") {
		config.MetricsFile = getEnvString("METRICS_FILE", config.MetricsFile)
	}
	if !isFlagSet(fs, "log-level") {
		config.LogLevel = getEnvString("LOG_LEVEL", config.LogLevel)
	}
}

func applyBooleanOverrides(config *AppConfig, fs *flag.FlagSet) {
	if !isFlagSet(fs, "json") {
		config.JSONOutput = getEnvBool("JSON", config.JSONOutput)
	}
	if !isFlagSet(fs, "quiet", "q") {
		config.Quiet = getEnvBool("QUIET", config.Quiet)
	}
	if !isFlagSet(fs, "no-color") {
		config.NoColor = getEnvBool("NO_COLOR", config.NoColor)
	}
}
