package core

import (
	"time"

	"beevs/internal/repository"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeConfirmed = "confirmed"
	outcomePending   = "pending"
	outcomeReverted  = "reverted"
	outcomeFailed    = "failed"
)

// Metrics counts relay outcomes per action kind.
type Metrics struct {
	transactions *prometheus.CounterVec
	confirmation *prometheus.HistogramVec
}

func NewMetrics(registerer prometheus.Registerer) *Metrics {
	m := &Metrics{
		transactions: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "relay_transactions_total", Help: "Relay attempts by action and outcome"},
			[]string{"action", "outcome"},
		),
		confirmation: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "relay_confirmation_seconds",
				Help:    "Time from submission to a confirmed audit record",
				Buckets: []float64{1, 2, 5, 10, 20, 30, 60, 120, 300},
			},
			[]string{"action"},
		),
	}

	registerer.MustRegister(m.transactions, m.confirmation)
	return m
}

func (m *Metrics) outcome(action repository.Action, outcome string) {
	if m == nil {
		return
	}
	m.transactions.WithLabelValues(string(action), outcome).Inc()
}

func (m *Metrics) confirmed(action repository.Action, since time.Time) {
	if m == nil {
		return
	}
	m.transactions.WithLabelValues(string(action), outcomeConfirmed).Inc()
	m.confirmation.WithLabelValues(string(action)).Observe(time.Since(since).Seconds())
}
