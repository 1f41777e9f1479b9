// Package services – domain metrics
//
// Prometheus collectors for recommendation and code generation outcomes.
// Labels are bounded: outcome is a fixed set, error names come from the
// catalog, frameworks and scenarios from the generator.
package services

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeOK       = "ok"
	outcomeEmpty    = "empty"
	outcomeNoMatch  = "no_match"
	outcomeTooLong  = "too_long"
	outcomeCanceled = "canceled"
)

var (
	// recRequests counts recommendation requests by outcome.
	recRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendation_requests_total",
			Help: "Recommendation requests by outcome.",
		},
		[]string{"outcome"},
	)

	// recTop counts which error ranked first.
	recTop = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendation_top_error_total",
			Help: "Number of times each catalog error ranked first.",
		},
		[]string{"error"},
	)

	// recConfidence observes the confidence of the first recommendation.
	recConfidence = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_top_confidence",
			Help:    "Confidence of the first recommendation.",
			Buckets: []float64{10, 25, 40, 55, 70, 85, 95},
		},
	)

	// codegenRenders counts generated files by scenario and framework.
	codegenRenders = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "codegen_renders_total",
			Help: "Generated code files by scenario and framework.",
		},
		[]string{"scenario", "framework"},
	)
)

func init() {
	prometheus.MustRegister(recRequests, recTop, recConfidence, codegenRenders)
}
