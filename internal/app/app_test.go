package app

import (
	"bytes"
	"encoding/json"
	"math/big"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/agbru/pascalcalc/internal/config"
	apperrors "github.com/agbru/pascalcalc/internal/errors"
	"github.com/agbru/pascalcalc/internal/logging"
	"github.com/agbru/pascalcalc/internal/pascal"
	"github.com/agbru/pascalcalc/internal/testutil"
)

// brokenGenerator returns a row that is not a binomial row, to exercise the
// verification mismatch path.
type brokenGenerator struct{}

func (brokenGenerator) Name() string { return "broken" }

func (brokenGenerator) Generate(n int) pascal.Row {
	if n < 0 {
		return pascal.Row{}
	}
	row := make(pascal.Row, n+1)
	for i := range row {
		row[i] = big.NewInt(1)
	}
	return row
}

var logLineRe = regexp.MustCompile(`^Go \(n=100\): \d+\.\d{4} ms$`)

func defaultTestConfig(t *testing.T) config.AppConfig {
	t.Helper()
	return config.AppConfig{
		N:       config.DefaultN,
		X:       config.DefaultX,
		PerfN:   config.DefaultPerfN,
		Repeat:  config.DefaultRepeat,
		Algo:    config.DefaultAlgo,
		LogFile: filepath.Join(t.TempDir(), "tiempos.txt"),
		Label:   config.DefaultLabel,
		NoColor: true,
	}
}

func newTestApp(cfg config.AppConfig, gen pascal.Generator, errWriter *bytes.Buffer) *Application {
	return &Application{
		Config:    cfg,
		Generator: gen,
		ErrWriter: errWriter,
		Logger:    logging.Nop(),
		RunID:     "test-run",
	}
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}

// TestNew tests the New function for creating Application instances.
func TestNew(t *testing.T) {
	t.Parallel()
	t.Run("Valid args create application", func(t *testing.T) {
		t.Parallel()
		var errBuf bytes.Buffer
		app, err := New([]string{"pascalcalc", "-n", "7", "-x", "3", "-algo", "binomial"}, &errBuf)
		if err != nil {
			t.Fatalf("New() returned unexpected error: %v", err)
		}
		if app.Config.N != 7 || app.Config.X != 3 {
			t.Errorf("Expected N=7 X=3, got N=%d X=%d", app.Config.N, app.Config.X)
		}
		if app.Generator.Name() != "binomial" {
			t.Errorf("Generator = %q, want binomial", app.Generator.Name())
		}
		if app.RunID == "" {
			t.Error("RunID should not be empty")
		}
	})

	t.Run("Invalid args return error", func(t *testing.T) {
		t.Parallel()
		var errBuf bytes.Buffer
		app, err := New([]string{"pascalcalc", "-invalid-flag"}, &errBuf)
		if err == nil {
			t.Error("New() should return error for invalid args")
		}
		if app != nil {
			t.Error("New() should return nil application on error")
		}
	})

	t.Run("Unknown algorithm returns error", func(t *testing.T) {
		t.Parallel()
		var errBuf bytes.Buffer
		if _, err := New([]string{"pascalcalc", "-algo", "nope"}, &errBuf); err == nil {
			t.Error("New() should reject an unknown algorithm")
		}
	})

	t.Run("Help flag returns error", func(t *testing.T) {
		t.Parallel()
		var errBuf bytes.Buffer
		_, err := New([]string{"pascalcalc", "-h"}, &errBuf)
		if !IsHelpError(err) {
			t.Errorf("Error should be a help error, got %v", err)
		}
	})

	t.Run("Empty args slice handled correctly", func(t *testing.T) {
		t.Parallel()
		var errBuf bytes.Buffer
		app, err := New([]string{}, &errBuf)
		if err != nil {
			t.Fatalf("New() should handle empty args without error, got: %v", err)
		}
		if app.Config.N != config.DefaultN {
			t.Errorf("Expected default N=%d, got N=%d", config.DefaultN, app.Config.N)
		}
	})
}

func TestRun_DefaultNarration(t *testing.T) {
	cfg := defaultTestConfig(t)
	var out, errBuf bytes.Buffer
	app := newTestApp(cfg, pascal.RecurrenceGenerator{}, &errBuf)

	if code := app.Run(&out); code != apperrors.ExitSuccess {
		t.Fatalf("Run() = %d, want %d; stderr:\n%s", code, apperrors.ExitSuccess, errBuf.String())
	}

	want := "Generating coefficients for n=5...\n" +
		"Coefficients: [1 5 10 10 5 1]\n" +
		"--- Evaluating for n=5 and x=2 ---\n" +
		"f(x) = 1x^5 + 5x^4 + 10x^3 + 10x^2 + 5x + 1\n" +
		"\nCalculation of f(2):\n" +
		"  + Term 0: (1 * 2^5) = 32\n" +
		"  + Term 1: (5 * 2^4) = 80\n" +
		"  + Term 2: (10 * 2^3) = 80\n" +
		"  + Term 3: (10 * 2^2) = 40\n" +
		"  + Term 4: (5 * 2^1) = 10\n" +
		"  + Term 5: (1 * 2^0) = 1\n" +
		"\nTotal Result: f(2) = 243\n" +
		"Verification: (2+1)^5 = 243\n" +
		"---------------------------------\n" +
		"\nCalculating time for n=100...\n" +
		"Generation time (Go): " + testutil.MaskedMillis + "\n" +
		"Central coefficient (100 C 50): 100891344545564193334812497256\n" +
		"Timing result saved to '" + cfg.LogFile + "'\n"

	got := testutil.MaskMillis(testutil.StripAnsiCodes(out.String()))
	if got != want {
		t.Errorf("narration mismatch.\nWant:\n%q\nGot:\n%q", want, got)
	}

	lines := readLines(t, cfg.LogFile)
	if len(lines) != 1 || !logLineRe.MatchString(lines[0]) {
		t.Errorf("log content = %q", lines)
	}
}

func TestRun_AppendsOneLinePerRun(t *testing.T) {
	cfg := defaultTestConfig(t)
	if err := os.WriteFile(cfg.LogFile, []byte("previous\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 2; i++ {
		var out, errBuf bytes.Buffer
		if code := newTestApp(cfg, pascal.RecurrenceGenerator{}, &errBuf).Run(&out); code != apperrors.ExitSuccess {
			t.Fatalf("run %d: exit code %d", i, code)
		}
	}

	lines := readLines(t, cfg.LogFile)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), lines)
	}
	if lines[0] != "previous" {
		t.Errorf("previous content was not kept: %q", lines[0])
	}
	for _, l := range lines[1:] {
		if !logLineRe.MatchString(l) {
			t.Errorf("unexpected log line %q", l)
		}
	}
}

func TestRun_LogFailureIsNonFatal(t *testing.T) {
	cfg := defaultTestConfig(t)
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	cfg.LogFile = filepath.Join(blocker, "tiempos.txt")

	var out, errBuf bytes.Buffer
	code := newTestApp(cfg, pascal.RecurrenceGenerator{}, &errBuf).Run(&out)

	if code != apperrors.ExitSuccess {
		t.Errorf("Run() = %d, want %d", code, apperrors.ExitSuccess)
	}
	if !strings.Contains(errBuf.String(), "Error writing timing log") {
		t.Errorf("stderr should report the failed append, got:\n%s", errBuf.String())
	}
	output := testutil.StripAnsiCodes(out.String())
	if !strings.Contains(output, "Generation time (Go):") {
		t.Errorf("timing should still be printed:\n%s", output)
	}
	if strings.Contains(output, "Timing result saved") {
		t.Errorf("confirmation must not be printed when the append fails:\n%s", output)
	}
}

func TestRun_LogDisabled(t *testing.T) {
	cfg := defaultTestConfig(t)
	cfg.LogFile = ""

	var out, errBuf bytes.Buffer
	if code := newTestApp(cfg, pascal.RecurrenceGenerator{}, &errBuf).Run(&out); code != apperrors.ExitSuccess {
		t.Fatalf("Run() = %d", code)
	}
	if strings.Contains(out.String(), "Timing result saved") {
		t.Error("no confirmation expected when the log is disabled")
	}
}

func TestRun_NegativeNSkipsEvaluation(t *testing.T) {
	cfg := defaultTestConfig(t)
	cfg.N = -1

	var out, errBuf bytes.Buffer
	code := newTestApp(cfg, pascal.RecurrenceGenerator{}, &errBuf).Run(&out)

	if code != apperrors.ExitSuccess {
		t.Errorf("Run() = %d, want %d", code, apperrors.ExitSuccess)
	}
	output := testutil.StripAnsiCodes(out.String())
	if !strings.Contains(output, "Coefficients: []\n") {
		t.Errorf("expected empty row in output:\n%s", output)
	}
	if strings.Contains(output, "--- Evaluating") {
		t.Errorf("evaluation should be skipped:\n%s", output)
	}
	if !strings.Contains(errBuf.String(), "Skipping evaluation") {
		t.Errorf("stderr should explain the skipped evaluation:\n%s", errBuf.String())
	}
	if !strings.Contains(output, "Generation time (Go):") {
		t.Errorf("timing should still run:\n%s", output)
	}
}

func TestRun_VerificationMismatch(t *testing.T) {
	cfg := defaultTestConfig(t)
	cfg.N = 2

	var out, errBuf bytes.Buffer
	code := newTestApp(cfg, brokenGenerator{}, &errBuf).Run(&out)

	if code != apperrors.ExitErrorMismatch {
		t.Errorf("Run() = %d, want %d", code, apperrors.ExitErrorMismatch)
	}
	if !strings.Contains(errBuf.String(), "Verification failed: f(2) = 7 but (2+1)^2 = 9") {
		t.Errorf("unexpected stderr:\n%s", errBuf.String())
	}
}

func TestRun_QuietMode(t *testing.T) {
	cfg := defaultTestConfig(t)
	cfg.Quiet = true

	var out, errBuf bytes.Buffer
	if code := newTestApp(cfg, pascal.RecurrenceGenerator{}, &errBuf).Run(&out); code != apperrors.ExitSuccess {
		t.Fatalf("Run() = %d", code)
	}

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(lines) != 1 || !logLineRe.MatchString(lines[0]) {
		t.Errorf("quiet output = %q", out.String())
	}
	if logged := readLines(t, cfg.LogFile); len(logged) != 1 || logged[0] != lines[0] {
		t.Errorf("log line %q should equal quiet output %q", logged, lines[0])
	}
}

func TestRun_JSONReport(t *testing.T) {
	cfg := defaultTestConfig(t)
	cfg.JSONOutput = true
	cfg.Repeat = 3

	var out, errBuf bytes.Buffer
	if code := newTestApp(cfg, pascal.RecurrenceGenerator{}, &errBuf).Run(&out); code != apperrors.ExitSuccess {
		t.Fatalf("Run() = %d; stderr:\n%s", code, errBuf.String())
	}

	var report jsonReport
	if err := json.Unmarshal(out.Bytes(), &report); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out.String())
	}
	if report.RunID != "test-run" {
		t.Errorf("run_id = %q", report.RunID)
	}
	if report.Algorithm != "recurrence" {
		t.Errorf("algorithm = %q", report.Algorithm)
	}
	if report.Build.Version != Version {
		t.Errorf("build.version = %q, want %q", report.Build.Version, Version)
	}
	if report.Demo == nil {
		t.Fatal("demo section missing")
	}
	if report.Demo.Total != "243" || report.Demo.Verification != "243" || !report.Demo.Verified {
		t.Errorf("demo = %+v", report.Demo)
	}
	if len(report.Demo.Terms) != 6 || report.Demo.Terms[1].Value != "80" {
		t.Errorf("demo terms = %+v", report.Demo.Terms)
	}
	if report.Timing == nil {
		t.Fatal("timing section missing")
	}
	if report.Timing.Runs != 3 {
		t.Errorf("timing.runs = %d, want 3", report.Timing.Runs)
	}
	if report.Timing.CentralCoefficient != "100891344545564193334812497256" {
		t.Errorf("timing.central_coefficient = %q", report.Timing.CentralCoefficient)
	}
	if want := "4592fb768d1e5f33e61d9fb0474e75a0b6c7e9267190d94e188b106171c22c92"; report.Timing.Digest != want {
		t.Errorf("timing.digest = %q, want %q", report.Timing.Digest, want)
	}
	if report.LogFile != cfg.LogFile {
		t.Errorf("log_file = %q, want %q", report.LogFile, cfg.LogFile)
	}
}

func TestRun_MetricsFile(t *testing.T) {
	cfg := defaultTestConfig(t)
	cfg.MetricsFile = filepath.Join(t.TempDir(), "pascalcalc.prom")

	var out, errBuf bytes.Buffer
	if code := newTestApp(cfg, pascal.BinomialGenerator{}, &errBuf).Run(&out); code != apperrors.ExitSuccess {
		t.Fatalf("Run() = %d", code)
	}

	data, err := os.ReadFile(cfg.MetricsFile)
	if err != nil {
		t.Fatalf("metrics file not written: %v", err)
	}
	if !strings.Contains(string(data), `pascalcalc_rows_generated_total{algorithm="binomial"} 1`) {
		t.Errorf("unexpected metrics file:\n%s", data)
	}
}

// TestIsHelpError tests the IsHelpError function.
func TestIsHelpError(t *testing.T) {
	t.Parallel()
	var errBuf bytes.Buffer
	_, err := New([]string{"pascalcalc", "-h"}, &errBuf)

	if !IsHelpError(err) {
		t.Error("IsHelpError should return true for help flag error")
	}
	if IsHelpError(nil) {
		t.Error("IsHelpError(nil) should be false")
	}
}
