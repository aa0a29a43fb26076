package header

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors a Map reports to.
// One Metrics value is meant to be shared by every map of a process.
type Metrics struct {
	// Growths counts table reallocations caused by the load factor.
	Growths prometheus.Counter

	// Escalations counts danger level transitions, labelled by the new level.
	Escalations *prometheus.CounterVec

	// Rehashes counts full rehashes with the keyed hash.
	Rehashes prometheus.Counter

	// ProbeLength observes the displacement plus forward shift of every
	// new name.
	ProbeLength prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg creates unregistered collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Growths: f.NewCounter(prometheus.CounterOpts{
			Namespace: "filament",
			Subsystem: "header_map",
			Name:      "growths_total",
			Help:      "Total number of header map table reallocations",
		}),
		Escalations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "filament",
			Subsystem: "header_map",
			Name:      "escalations_total",
			Help:      "Total number of header map danger level escalations",
		}, []string{"level"}),
		Rehashes: f.NewCounter(prometheus.CounterOpts{
			Namespace: "filament",
			Subsystem: "header_map",
			Name:      "keyed_rehashes_total",
			Help:      "Total number of header map rehashes with the keyed hash",
		}),
		ProbeLength: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "filament",
			Subsystem: "header_map",
			Name:      "probe_length",
			Help:      "Probe length of header map insertions",
			Buckets:   []float64{0, 1, 2, 4, 8, 16, 32, 64, 128, 256},
		}),
	}
}
