// Package metrics exposes Prometheus instruments for the access manager.
//
// Instruments are registered on a caller-supplied registry so every manager
// instance can own independent counters.
package metrics

import (
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "access_keeper"

// AccessMetrics counts access manager operations by outcome.
type AccessMetrics struct {
	operations *prometheus.CounterVec
	lockouts   prometheus.Counter
	sessions   prometheus.Gauge
}

// NewAccessMetrics creates the instruments and registers them on reg.
func NewAccessMetrics(reg prometheus.Registerer) *AccessMetrics {
	m := &AccessMetrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Access manager operations by name and outcome.",
		}, []string{"operation", "outcome"}),
		lockouts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lockouts_total",
			Help:      "Accounts locked after repeated failed logins.",
		}),
		sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sessions_active",
			Help:      "Sessions opened by login and not yet closed by logout.",
		}),
	}

	reg.MustRegister(m.operations, m.lockouts, m.sessions)

	return m
}

func (m *AccessMetrics) ObserveOperation(operation, outcome string) {
	m.operations.WithLabelValues(operation, outcome).Inc()
}

func (m *AccessMetrics) LockoutTriggered() {
	m.lockouts.Inc()
}

func (m *AccessMetrics) SessionStarted() {
	m.sessions.Inc()
}

func (m *AccessMetrics) SessionEnded() {
	m.sessions.Dec()
}

// Snapshot flattens every sample gathered from g into "name{labels}" keys.
// The client writes it to its log on shutdown.
func Snapshot(g prometheus.Gatherer) (map[string]float64, error) {
	families, err := g.Gather()
	if err != nil {
		return nil, err
	}

	out := make(map[string]float64)
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			key := family.GetName()
			if labels := metric.GetLabel(); len(labels) > 0 {
				pairs := make([]string, 0, len(labels))
				for _, l := range labels {
					pairs = append(pairs, l.GetName()+"="+l.GetValue())
				}
				sort.Strings(pairs)
				key += "{" + strings.Join(pairs, ",") + "}"
			}

			switch {
			case metric.GetCounter() != nil:
				out[key] = metric.GetCounter().GetValue()
			case metric.GetGauge() != nil:
				out[key] = metric.GetGauge().GetValue()
			}
		}
	}

	return out, nil
}
