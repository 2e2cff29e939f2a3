package app

import (
	"encoding/json"
	"io"

	apperrors "github.com/agbru/pascalcalc/internal/errors"
	"github.com/agbru/pascalcalc/internal/pascal"
	"github.com/agbru/pascalcalc/internal/polynomial"
	"github.com/agbru/pascalcalc/internal/timelog"
	"github.com/agbru/pascalcalc/internal/timing"
)

// jsonReport is the document printed with -json. Big integers are encoded
// as decimal strings.
type jsonReport struct {
	RunID     string      `json:"run_id"`
	Build     VersionData `json:"build"`
	Algorithm string      `json:"algorithm"`
	Demo      *jsonDemo   `json:"demo,omitempty"`
	Timing    *jsonTiming `json:"timing"`
	LogFile   string      `json:"log_file,omitempty"`
}

type jsonTerm struct {
	Index       int    `json:"index"`
	Coefficient string `json:"coefficient"`
	Exponent    int    `json:"exponent"`
	Value       string `json:"value"`
}

type jsonDemo struct {
	N            int        `json:"n"`
	X            int64      `json:"x"`
	Coefficients []string   `json:"coefficients"`
	Polynomial   string     `json:"polynomial"`
	Terms        []jsonTerm `json:"terms"`
	Total        string     `json:"total"`
	Verification string     `json:"verification"`
	Verified     bool       `json:"verified"`
}

type jsonTiming struct {
	N                  int    `json:"n"`
	Runs               int    `json:"runs"`
	ElapsedMs          string `json:"elapsed_ms"`
	MeanMs             string `json:"mean_ms"`
	StdDevMs           string `json:"stddev_ms"`
	CentralCoefficient string `json:"central_coefficient,omitempty"`
	Digest             string `json:"digest"`
}

func newJSONDemo(row pascal.Row, eval polynomial.Evaluation) *jsonDemo {
	terms := make([]jsonTerm, len(eval.Terms))
	for i, t := range eval.Terms {
		terms[i] = jsonTerm{
			Index:       t.Index,
			Coefficient: t.Coefficient.String(),
			Exponent:    t.Exponent,
			Value:       t.Value.String(),
		}
	}
	return &jsonDemo{
		N:            eval.Degree,
		X:            eval.X,
		Coefficients: row.Strings(),
		Polynomial:   eval.Polynomial,
		Terms:        terms,
		Total:        eval.Total.String(),
		Verification: eval.Verification.String(),
		Verified:     eval.Verified(),
	}
}

func newJSONTiming(m timing.Measurement) *jsonTiming {
	jt := &jsonTiming{
		N:         m.N,
		Runs:      len(m.Runs),
		ElapsedMs: timelog.FormatMillis(m.Elapsed),
		MeanMs:    timelog.FormatMillis(m.Mean),
		StdDevMs:  timelog.FormatMillis(m.StdDev),
		Digest:    m.Row.Digest(),
	}
	if c := m.Row.Central(); c != nil {
		jt.CentralCoefficient = c.String()
	}
	return jt
}

// printJSONReport writes the report as indented JSON.
func printJSONReport(report jsonReport, out io.Writer) int {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}
