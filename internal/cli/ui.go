package cli

import (
	"io"
	"time"

	"github.com/briandowns/spinner"
)

// SpinnerRefreshRate is the spinner animation interval.
const SpinnerRefreshRate = 100 * time.Millisecond

// Spinner abstracts the terminal spinner so tests can observe it.
type Spinner interface {
	Start()
	Stop()
	UpdateSuffix(suffix string)
}

// realSpinner adapts spinner.Spinner to the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }

func (rs *realSpinner) Stop() { rs.s.Stop() }

func (rs *realSpinner) UpdateSuffix(suffix string) { rs.s.Suffix = suffix }

var newSpinner = func(out io.Writer) Spinner {
	s := spinner.New(spinner.CharSets[11], SpinnerRefreshRate, spinner.WithWriter(out))
	return &realSpinner{s}
}

// WithSpinner runs fn while a spinner labelled suffix animates on out. The
// spinner is stopped (and its line cleared) before WithSpinner returns, so
// anything printed afterwards starts on a clean line. When enabled is false
// fn simply runs.
func WithSpinner(out io.Writer, enabled bool, suffix string, fn func()) {
	if !enabled {
		fn()
		return
	}
	s := newSpinner(out)
	s.UpdateSuffix(suffix)
	s.Start()
	defer s.Stop()
	fn()
}

// WarmUpThenTime runs warmUp under the spinner, stops the spinner and only
// then runs timed, so the spinner goroutine is idle while timed executes.
func WarmUpThenTime(out io.Writer, enabled bool, suffix string, warmUp, timed func()) {
	WithSpinner(out, enabled, suffix, warmUp)
	timed()
}
