// SPDX-License-Identifier: MIT

package bench

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "zmatbench"

// Metrics collects run statistics on its own registry, never on
// prometheus.DefaultRegisterer.
type Metrics struct {
	registry         *prometheus.Registry
	multiplications  prometheus.Counter
	multiplyDuration prometheus.Histogram
	runElapsed       *prometheus.GaugeVec
	runs             *prometheus.CounterVec
}

// NewMetrics creates and registers the benchmark collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		multiplications: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "multiplications_total",
			Help:      "Matrix-matrix multiplications performed.",
		}),
		multiplyDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "multiply_duration_seconds",
			Help:      "Wall-clock time of a single matrix-matrix multiplication.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 18),
		}),
		runElapsed: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "run_elapsed_seconds",
			Help:      "Elapsed seconds of the last completed run.",
		}, []string{"preset", "kernel", "size"}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "runs_total",
			Help:      "Completed benchmark runs.",
		}, []string{"preset", "kernel"}),
	}
	m.registry.MustRegister(m.multiplications, m.multiplyDuration, m.runElapsed, m.runs)

	return m
}

// Registry exposes the underlying registry, e.g. for promhttp or testutil.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

func (m *Metrics) observeMultiply(d time.Duration) {
	m.multiplications.Inc()
	m.multiplyDuration.Observe(elapsedSeconds(d))
}

func (m *Metrics) observeRun(cfg Config, seconds float64) {
	kernel := cfg.Kernel.String()
	m.runElapsed.WithLabelValues(cfg.Preset, kernel, fmt.Sprint(cfg.Size())).Set(seconds)
	m.runs.WithLabelValues(cfg.Preset, kernel).Inc()
}

// WriteTextfile writes the current metric values in the Prometheus text
// exposition format, suitable for the node_exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("bench: write metrics %s: %w", path, err)
	}

	return nil
}
