package bench

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	duration *prometheus.HistogramVec
	outcomes *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	duration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dbzcalc_evaluation_duration_seconds",
			Help:    "Duration of single equation evaluations",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 12),
		},
		[]string{"policy"},
	)
	outcomes := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dbzcalc_equations_total",
			Help: "Equations evaluated, by policy and outcome",
		},
		[]string{"policy", "outcome"},
	)

	var err error
	if duration, err = register(reg, duration); err != nil {
		return nil, err
	}
	if outcomes, err = register(reg, outcomes); err != nil {
		return nil, err
	}
	return &metrics{duration: duration, outcomes: outcomes}, nil
}

// register adds c to reg, reusing the collector already registered under the same name.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

func (m *metrics) observe(policy string, res Result, d time.Duration) {
	m.outcomes.WithLabelValues(policy, res.Outcome.String()).Inc()
	if res.Outcome != OutcomeCancelled {
		m.duration.WithLabelValues(policy).Observe(d.Seconds())
	}
}
