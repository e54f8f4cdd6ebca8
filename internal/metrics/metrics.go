// Package metrics describes a fibseq run as Prometheus metrics. The registry
// is private to the run and can be written as a node-exporter textfile, which
// is how batch jobs without a scrape endpoint publish their results.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/agbru/fibseq/internal/sequence"
)

const namespace = "fibseq"

// Run statuses recorded by RecordRun.
const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

// Metrics holds the collectors for a single run.
type Metrics struct {
	registry *prometheus.Registry

	limit             prometheus.Gauge
	termsGenerated    prometheus.Gauge
	largestTerm       prometheus.Gauge
	termsPrinted      prometheus.Gauge
	generationSeconds prometheus.Histogram
	runsTotal         *prometheus.CounterVec
	lastRunTimestamp  prometheus.Gauge
}

// New creates a Metrics instance backed by its own registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		limit: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "limit",
			Help:      "Inclusive upper bound on generated Fibonacci terms.",
		}),
		termsGenerated: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "terms_generated",
			Help:      "Number of terms stored in the generated sequence.",
		}),
		largestTerm: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "largest_term",
			Help:      "Largest Fibonacci term not exceeding the limit.",
		}),
		termsPrinted: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "terms_printed",
			Help:      "Number of terms written to the output line.",
		}),
		generationSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "generation_duration_seconds",
			Help:      "Time spent generating the sequence.",
			Buckets:   prometheus.ExponentialBuckets(1e-7, 10, 8),
		}),
		runsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Completed runs by outcome.",
		}, []string{"status"}),
		lastRunTimestamp: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix time at which the last run finished.",
		}),
	}

	m.registry.MustRegister(
		m.limit,
		m.termsGenerated,
		m.largestTerm,
		m.termsPrinted,
		m.generationSeconds,
		m.runsTotal,
		m.lastRunTimestamp,
	)
	return m
}

// Registry exposes the underlying registry for gathering.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveSequence records the shape of a generated sequence and how long
// generation took.
func (m *Metrics) ObserveSequence(seq sequence.Sequence, limit int, elapsed time.Duration) {
	m.limit.Set(float64(limit))
	m.termsGenerated.Set(float64(seq.Len()))
	if last, ok := seq.Last(); ok {
		m.largestTerm.Set(float64(last))
	}
	m.generationSeconds.Observe(elapsed.Seconds())
}

// ObservePrinted records how many terms reached the output.
func (m *Metrics) ObservePrinted(count int) {
	m.termsPrinted.Set(float64(count))
}

// RecordRun counts a finished run with the given status and stamps its
// completion time.
func (m *Metrics) RecordRun(status string) {
	m.runsTotal.WithLabelValues(status).Inc()
	m.lastRunTimestamp.SetToCurrentTime()
}

// WriteTextfile writes every registered metric to path in the Prometheus
// text exposition format. The file is written atomically.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
