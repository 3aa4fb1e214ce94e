// Gustus - Design Taste Profiling and Reporting
// Copyright 2026 M. Lindqvist (mlindqvist)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mlindqvist/gustus

// Package metrics provides Prometheus instrumentation for the scoring
// pipeline and the HTTP API. All collectors register on the default
// registry via promauto and are exposed at /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API metrics.
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gustus_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gustus_api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// Selection metrics.
	SelectionsRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gustus_selections_recorded_total",
			Help: "Total selections recorded, labeled by outcome",
		},
		[]string{"outcome"}, // "answered", "skipped", "rejected"
	)

	// Session metrics.
	SessionsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gustus_sessions_created_total",
			Help: "Total questionnaire sessions created",
		},
	)

	SessionsCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gustus_sessions_completed_total",
			Help: "Total sessions completed with a persisted profile",
		},
	)

	// Scoring metrics.
	ProfileComputations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gustus_profile_computations_total",
			Help: "Total profile aggregations, labeled by result",
		},
		[]string{"result"}, // "ok", "error"
	)

	ProfileComputationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "gustus_profile_computation_duration_seconds",
			Help:    "Duration of profile aggregation in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
	)

	// Report metrics.
	ReportsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gustus_reports_generated_total",
			Help: "Total report derivations, labeled by kind",
		},
		[]string{"kind"}, // "categories", "overall"
	)
)

// Selection outcomes for SelectionsRecorded.
const (
	OutcomeAnswered = "answered"
	OutcomeSkipped  = "skipped"
	OutcomeRejected = "rejected"
)

// RecordAPIRequest records one API request observation.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordSelection records a selection write by outcome.
func RecordSelection(outcome string) {
	SelectionsRecorded.WithLabelValues(outcome).Inc()
}

// RecordProfileComputation records one aggregation run.
func RecordProfileComputation(duration time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	ProfileComputations.WithLabelValues(result).Inc()
	ProfileComputationDuration.Observe(duration.Seconds())
}

// RecordReport records one report derivation.
func RecordReport(kind string) {
	ReportsGenerated.WithLabelValues(kind).Inc()
}
