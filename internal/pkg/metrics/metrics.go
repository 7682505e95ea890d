// Package metrics defines the prometheus collectors for metadata lookups
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "ipc_metadata"

// Metrics groups the collectors recorded by the token orchestrator
type Metrics struct {
	Lookups        *prometheus.CounterVec
	LabelMisses    *prometheus.CounterVec
	DecodeDuration prometheus.Histogram
}

// New creates the collectors and registers them with reg
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lookups_total",
			Help:      "Metadata lookups by contract and result code.",
		}, []string{"contract", "code"}),
		LabelMisses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "label_misses_total",
			Help:      "Trait codes the label engine could not resolve, by category.",
		}, []string{"category"}),
		DecodeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "decode_duration_seconds",
			Help:      "Time spent decoding both seeds of a token.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 8),
		}),
	}

	for _, c := range []prometheus.Collector{m.Lookups, m.LabelMisses, m.DecodeDuration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}
