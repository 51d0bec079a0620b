// Package metrics exposes Prometheus metrics for the account flows.
package metrics

import (
	"recipebox/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "recipebox"

// NewRegistry creates the registry shared by the HTTP middleware and the account collector.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

// Collector implements service.AccountMetrics on Prometheus counters.
type Collector struct {
	operations   *prometheus.CounterVec
	stepFailures *prometheus.CounterVec
	avatarsSwept prometheus.Counter
}

// NewCollector creates the collector and registers its metrics on reg.
func NewCollector(reg *prometheus.Registry) *Collector {
	c := &Collector{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "account_operations_total",
			Help:      "Account operations by operation and outcome.",
		}, []string{"operation", "outcome"}),
		stepFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "account_step_failures_total",
			Help:      "Best-effort steps that failed without stopping their operation.",
		}, []string{"operation", "step"}),
		avatarsSwept: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "avatars_swept_total",
			Help:      "Orphaned avatar objects removed by the sweeper.",
		}),
	}

	reg.MustRegister(c.operations, c.stepFailures, c.avatarsSwept)

	return c
}

// NewAccountMetrics exposes the collector as service.AccountMetrics.
func NewAccountMetrics(c *Collector) service.AccountMetrics {
	return c
}

func (c *Collector) RecordOperation(operation, outcome string) {
	c.operations.WithLabelValues(operation, outcome).Inc()
}

func (c *Collector) RecordStepFailure(operation, step string) {
	c.stepFailures.WithLabelValues(operation, step).Inc()
}

func (c *Collector) RecordAvatarsSwept(count int) {
	if count > 0 {
		c.avatarsSwept.Add(float64(count))
	}
}
