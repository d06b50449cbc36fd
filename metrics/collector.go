// Package metrics turns decorator reports into Prometheus metrics.
package metrics

import (
	"context"

	"github.com/go-leo/decorators/report"
	"github.com/prometheus/client_golang/prometheus"
)

// Collector is a report.Reporter that counts calls reported by CountCalls and
// Trace and observes durations reported by Timer, labelled by endpoint name.
// Register it with a prometheus.Registerer to expose the metrics.
type Collector struct {
	calls    *prometheus.CounterVec
	traced   *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

var (
	_ report.Reporter      = (*Collector)(nil)
	_ prometheus.Collector = (*Collector)(nil)
)

// NewCollector returns a Collector whose metric names start with namespace.
func NewCollector(namespace string) *Collector {
	return &Collector{
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calls_total",
			Help:      "Number of counted endpoint calls.",
		}, []string{"name"}),
		traced: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "traced_total",
			Help:      "Number of traced endpoint calls by outcome.",
		}, []string{"name", "kind"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "call_duration_seconds",
			Help:      "Duration of successful timed endpoint calls.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"name"}),
	}
}

// Report updates the metric matching the event kind.
func (c *Collector) Report(_ context.Context, e report.Event) {
	switch e.Kind {
	case report.KindCount:
		c.calls.WithLabelValues(e.Name).Inc()
	case report.KindFinished:
		c.duration.WithLabelValues(e.Name).Observe(e.Elapsed.Seconds())
	case report.KindCalling, report.KindReturns:
		c.traced.WithLabelValues(e.Name, e.Kind.String()).Inc()
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.calls.Describe(ch)
	c.traced.Describe(ch)
	c.duration.Describe(ch)
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.calls.Collect(ch)
	c.traced.Collect(ch)
	c.duration.Collect(ch)
}
