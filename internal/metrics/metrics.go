// Package metrics exposes Prometheus counters for advert generation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for GenerationsTotal
const (
	OutcomeSuccess     = "success"
	OutcomeEmpty       = "empty"
	OutcomeConfigError = "config_error"
	OutcomeProvider    = "provider_error"
)

var (
	GenerationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advert_generations_total",
			Help: "Total number of advert generation attempts by outcome",
		},
		[]string{"outcome"},
	)

	GenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "advert_generation_duration_seconds",
			Help:    "Duration of the provider call in seconds",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 40, 80},
		},
		[]string{"model"},
	)

	SubmissionsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advert_submissions_rejected_total",
			Help: "Submissions rejected before reaching the provider",
		},
		[]string{"reason"},
	)
)
