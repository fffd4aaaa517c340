// Package metrics registers and updates the prometheus collectors
// exposed by the stress harness.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const metricNamespace = "forward_list"

//nolint:gochecknoglobals
var (
	opsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name:      "stress_ops_total",
		Help:      "Total number of list operations performed, by operation.",
		Namespace: metricNamespace,
	}, []string{"op"})

	verifyTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name:      "stress_verify_total",
		Help:      "Total number of model cross-checks performed.",
		Namespace: metricNamespace,
	})

	verifyFailedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name:      "stress_verify_failed_total",
		Help:      "Total number of model cross-checks that found a divergence.",
		Namespace: metricNamespace,
	})

	elementsLive = prometheus.NewGauge(prometheus.GaugeOpts{
		Name:      "stress_elements_live",
		Help:      "Elements currently held across all worker lists.",
		Namespace: metricNamespace,
	})
)

// Init initializes and registers the metrics.
func Init(reg prometheus.Registerer) {
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{
		Namespace: metricNamespace,
	}))

	reg.MustRegister(
		opsTotal,
		verifyTotal,
		verifyFailedTotal,
		elementsLive,
	)
}

// AddOp increments the per-operation counter.
func AddOp(op string) {
	opsTotal.WithLabelValues(op).Inc()
}

// AddVerify increments the cross-check counter.
func AddVerify() {
	verifyTotal.Inc()
}

// AddVerifyFailed increments the divergence counter.
func AddVerifyFailed() {
	verifyFailedTotal.Inc()
}

// AddElementsLive adjusts the live element gauge by delta.
func AddElementsLive(delta int) {
	elementsLive.Add(float64(delta))
}
