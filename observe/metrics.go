package observe

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/statespace/bfs"
)

const namespace = "statespace"

// outcomeError labels searches that returned an error other than cancellation.
const outcomeError = "error"

// Metrics holds the Prometheus collectors for search statistics.
// All methods are safe for concurrent use.
type Metrics struct {
	searches     *prometheus.CounterVec
	discovered   prometheus.Counter
	expanded     prometheus.Counter
	duration     prometheus.Histogram
	policyLength prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg uses prometheus.DefaultRegisterer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		searches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "Searches run, by outcome.",
		}, []string{"outcome"}),
		discovered: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "states_discovered_total",
			Help:      "Distinct states recorded by searches.",
		}),
		expanded: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "states_expanded_total",
			Help:      "States whose successors were generated.",
		}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_duration_seconds",
			Help:      "Wall time of one search.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 10), // 0.5ms to ~2min
		}),
		policyLength: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "policy_length",
			Help:      "Number of actions in found policies.",
			Buckets:   prometheus.LinearBuckets(0, 2, 16),
		}),
	}
}

// Record adds one search to the metrics. A nil res counts as an error.
func (m *Metrics) Record(res *bfs.Result, elapsed time.Duration) {
	m.duration.Observe(elapsed.Seconds())
	if res == nil {
		m.searches.WithLabelValues(outcomeError).Inc()
		return
	}
	m.searches.WithLabelValues(res.Outcome.String()).Inc()
	m.discovered.Add(float64(res.Stats.Discovered))
	m.expanded.Add(float64(res.Stats.Expanded))
	if res.Outcome == bfs.Found {
		m.policyLength.Observe(float64(res.Policy.Len()))
	}
}
