// Package metricsappender counts levellog records in prometheus.
package metricsappender

import (
	"github.com/philipp01105/levellog/core"
	"github.com/prometheus/client_golang/prometheus"
)

// Options configures the metric names.
type Options struct {
	// Namespace of the counter (default: "levellog")
	Namespace string
	// Subsystem of the counter (default: "log")
	Subsystem string
}

// Appender counts records per level and logger name.
type Appender struct {
	count *prometheus.CounterVec
}

// New creates a metrics appender. Register its collectors with
// prometheus.MustRegister(a.Metrics()...).
func New(opts Options) *Appender {
	if opts.Namespace == "" {
		opts.Namespace = "levellog"
	}
	if opts.Subsystem == "" {
		opts.Subsystem = "log"
	}
	return &Appender{
		count: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: opts.Namespace,
			Subsystem: opts.Subsystem,
			Name:      "records_total",
			Help:      "Number of log records by level and logger.",
		}, []string{"level", "logger"}),
	}
}

// Append increments the counter for rec's level and logger.
func (a *Appender) Append(rec *core.Record) error {
	a.count.WithLabelValues(rec.Level.Name(), rec.Logger).Inc()
	return nil
}

// Counter returns the underlying counter vector.
func (a *Appender) Counter() *prometheus.CounterVec {
	return a.count
}

// Metrics returns the collectors to register.
func (a *Appender) Metrics() []prometheus.Collector {
	return []prometheus.Collector{a.count}
}
