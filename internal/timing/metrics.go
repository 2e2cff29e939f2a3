package timing

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/agbru/pascalcalc/internal/pascal"
)

// Metrics collects generation metrics in a private Prometheus registry so a
// run can export them as a node_exporter textfile.
type Metrics struct {
	registry     *prometheus.Registry
	duration     *prometheus.HistogramVec
	rows         *prometheus.CounterVec
	centralBits  *prometheus.GaugeVec
	lastDuration *prometheus.GaugeVec
}

// NewMetrics creates the collectors and registers them on a new registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Metrics{
		registry: reg,
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pascalcalc_generation_duration_seconds",
			Help:    "Wall-clock duration of one row generation.",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 12),
		}, []string{"algorithm"}),
		rows: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "pascalcalc_rows_generated_total",
			Help: "Number of rows generated.",
		}, []string{"algorithm"}),
		centralBits: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "pascalcalc_central_coefficient_bits",
			Help: "Bit length of the central coefficient of the last generated row.",
		}, []string{"algorithm"}),
		lastDuration: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "pascalcalc_last_generation_seconds",
			Help: "Duration of the last row generation.",
		}, []string{"algorithm"}),
	}
}

// Observe records one generation run.
func (m *Metrics) Observe(algorithm string, d time.Duration, row pascal.Row) {
	m.duration.WithLabelValues(algorithm).Observe(d.Seconds())
	m.lastDuration.WithLabelValues(algorithm).Set(d.Seconds())
	m.rows.WithLabelValues(algorithm).Inc()
	if c := row.Central(); c != nil {
		m.centralBits.WithLabelValues(algorithm).Set(float64(c.BitLen()))
	}
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile writes all metrics to path in the Prometheus text format.
// The file is written to a temporary name and renamed into place.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
