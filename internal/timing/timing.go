// Package timing measures the wall-clock duration of row generation.
//
// A Measurer runs a pascal.Generator one or more times for the same n and
// summarizes the runs. The reported Elapsed value is the median run, which
// equals the single run when repeat is 1.
package timing

import (
	"fmt"
	"time"

	"github.com/montanaflynn/stats"

	apperrors "github.com/agbru/pascalcalc/internal/errors"
	"github.com/agbru/pascalcalc/internal/pascal"
)

// Measurement summarizes the timed runs of one generator for one n.
type Measurement struct {
	// Algorithm is the generator name.
	Algorithm string
	// N is the row index that was generated.
	N int
	// Runs holds each run's duration in execution order.
	Runs []time.Duration
	// Elapsed is the median run.
	Elapsed time.Duration
	// Mean is the arithmetic mean of the runs.
	Mean time.Duration
	// StdDev is the population standard deviation of the runs.
	StdDev time.Duration
	// Row is the row produced by the last run.
	Row pascal.Row
}

// Measurer times a generator. Now defaults to time.Now and may be replaced
// for deterministic tests.
type Measurer struct {
	Generator pascal.Generator
	Now       func() time.Time
	// Metrics, if non-nil, records every run.
	Metrics *Metrics
}

// NewMeasurer returns a Measurer for gen using the wall clock.
func NewMeasurer(gen pascal.Generator, metrics *Metrics) *Measurer {
	return &Measurer{Generator: gen, Now: time.Now, Metrics: metrics}
}

// Measure generates row n repeat times and returns the timing summary.
//
// Parameters:
//   - n: The row index to generate.
//   - repeat: The number of timed runs (at least 1).
//
// Returns:
//   - Measurement: The runs, their statistics and the generated row.
//   - error: A ValidationError if repeat < 1.
func (m *Measurer) Measure(n, repeat int) (Measurement, error) {
	if repeat < 1 {
		return Measurement{}, apperrors.NewValidationError("repeat", fmt.Sprintf("must be at least 1, got %d", repeat), repeat, nil)
	}
	now := m.Now
	if now == nil {
		now = time.Now
	}

	res := Measurement{
		Algorithm: m.Generator.Name(),
		N:         n,
		Runs:      make([]time.Duration, 0, repeat),
	}
	for i := 0; i < repeat; i++ {
		start := now()
		row := m.Generator.Generate(n)
		d := now().Sub(start)

		res.Runs = append(res.Runs, d)
		res.Row = row
		if m.Metrics != nil {
			m.Metrics.Observe(res.Algorithm, d, row)
		}
	}

	summarize(&res)
	return res, nil
}

// WarmUp generates row n once without timing it or recording metrics.
func (m *Measurer) WarmUp(n int) {
	m.Generator.Generate(n)
}

func summarize(res *Measurement) {
	data := make(stats.Float64Data, len(res.Runs))
	for i, d := range res.Runs {
		data[i] = float64(d)
	}
	// The inputs are never empty, so the stats errors cannot occur.
	median, _ := stats.Median(data)
	mean, _ := stats.Mean(data)
	stddev, _ := stats.StandardDeviationPopulation(data)

	res.Elapsed = time.Duration(median)
	res.Mean = time.Duration(mean)
	res.StdDev = time.Duration(stddev)
}
