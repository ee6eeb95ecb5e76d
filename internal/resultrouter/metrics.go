package resultrouter

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	gometrics "github.com/rcrowley/go-metrics"
)

// metricsSet bundles the router's operational counters. Two different
// metrics libraries show up here on purpose: Prometheus counters are
// what an operator scrapes for alerting, while the rcrowley/go-metrics
// registry mirrors the exact pattern the teacher's own consumer uses
// internally (a per-process metrics.Registry feeding a named
// histogram, see consumer.go's "consumer-batch-size" histogram) for
// in-process introspection such as an admin RPC.
type metricsSet struct {
	batchesRouted     prometheus.Counter
	wakesFired        prometheus.Counter
	sourcesRegistered prometheus.Counter
	activeQueries     prometheus.Gauge

	registry gometrics.Registry
	histOnce sync.Once
	hist     gometrics.Histogram
}

func newMetricsSet() *metricsSet {
	return &metricsSet{
		batchesRouted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "resultrouter_batches_routed_total",
			Help: "Number of row batches routed to pending or an attached consumer.",
		}),
		wakesFired: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "resultrouter_wakes_total",
			Help: "Number of wake callbacks invoked.",
		}),
		sourcesRegistered: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "resultrouter_sources_registered_total",
			Help: "Number of successful AddGRPCSourceNode registrations.",
		}),
		activeQueries: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "resultrouter_active_queries",
			Help: "Number of queries with a live (non-deleted) entry in the registry.",
		}),
		registry: gometrics.NewRegistry(),
	}
}

// batchSizeHistogram lazily registers and returns the
// "route-batch-size" histogram, matching the teacher's
// getOrRegisterHistogram helper (consumer.go).
func (m *metricsSet) batchSizeHistogram() gometrics.Histogram {
	m.histOnce.Do(func() {
		m.hist = gometrics.GetOrRegisterHistogram(
			"route-batch-size", m.registry, gometrics.NewExpDecaySample(1028, 0.015))
	})
	return m.hist
}

// Collectors returns the Prometheus collectors an operator wires into
// a registry via prometheus.MustRegister, matching the pack's ambient
// use of prometheus/client_golang for process metrics.
func (m *metricsSet) Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.batchesRouted,
		m.wakesFired,
		m.sourcesRegistered,
		m.activeQueries,
	}
}
