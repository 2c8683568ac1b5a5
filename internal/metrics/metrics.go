// Package metrics records retention and rotation outcomes as Prometheus
// metrics. logkeeper never listens on a port: the registry is written to a
// node_exporter textfile after each pass.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "logkeeper"

// Collector owns the logkeeper metrics. A nil *Collector is valid and
// records nothing.
type Collector struct {
	registry *prometheus.Registry

	filesExpired   *prometheus.CounterVec
	removeFailures *prometheus.CounterVec
	sweepDuration  *prometheus.HistogramVec
	rotations      *prometheus.CounterVec
	lastPass       prometheus.Gauge
}

// NewCollector registers the metrics on registry, or on a fresh registry
// when registry is nil.
func NewCollector(registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	c := &Collector{
		registry: registry,
		filesExpired: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "files_expired_total",
			Help:      "Files selected for deletion, by target and mode.",
		}, []string{"target", "mode"}),
		removeFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "remove_failures_total",
			Help:      "Expired files that could not be removed.",
		}, []string{"target"}),
		sweepDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "sweep_duration_seconds",
			Help:      "Duration of one retention sweep over a target.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 30},
		}, []string{"target"}),
		rotations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "log_rotations_total",
			Help:      "Log rotation decisions, by outcome.",
		}, []string{"outcome"}),
		lastPass: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_pass_timestamp_seconds",
			Help:      "Unix time the last full pass finished.",
		}),
	}

	registry.MustRegister(c.filesExpired, c.removeFailures, c.sweepDuration, c.rotations, c.lastPass)
	return c
}

// Registry returns the registry the collector writes to.
func (c *Collector) Registry() *prometheus.Registry {
	if c == nil {
		return nil
	}
	return c.registry
}

// ObserveSweep records one RetentionEngine pass over target.
func (c *Collector) ObserveSweep(target, mode string, expired, failed int, elapsed time.Duration) {
	if c == nil {
		return
	}
	c.filesExpired.WithLabelValues(target, mode).Add(float64(expired))
	c.removeFailures.WithLabelValues(target).Add(float64(failed))
	c.sweepDuration.WithLabelValues(target).Observe(elapsed.Seconds())
}

// ObserveRotation records a LogArchiver decision: "rotated", "skipped" or "error".
func (c *Collector) ObserveRotation(outcome string) {
	if c == nil {
		return
	}
	c.rotations.WithLabelValues(outcome).Inc()
}

// PassFinished stamps the completion time of a full pass.
func (c *Collector) PassFinished(at time.Time) {
	if c == nil {
		return
	}
	c.lastPass.Set(float64(at.Unix()))
}

// WriteTextfile writes the registry to path in the Prometheus text format.
// The write is atomic, as node_exporter expects.
func (c *Collector) WriteTextfile(path string) error {
	if c == nil || path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(path, c.registry)
}
