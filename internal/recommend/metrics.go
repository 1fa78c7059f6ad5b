// Wayfarer - Typed Random-Walk Music Recommendation Engine
// Copyright 2026 The Wayfarer Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nyxmusic/wayfarer

package recommend

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// queriesTotal counts recommendation queries by markov strategy,
	// walk method, and outcome.
	queriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wayfarer_recommend_queries_total",
			Help: "Total number of recommendation queries processed",
		},
		[]string{"markov_strategy", "walk_method", "outcome"},
	)

	// queryDuration tracks end-to-end query latency.
	queryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wayfarer_recommend_query_duration_seconds",
			Help:    "Duration of recommendation queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"markov_strategy", "walk_method"},
	)

	// solverDivergedTotal counts solver runs that produced a non-finite
	// value (NaN or Inf) and aborted.
	solverDivergedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "wayfarer_recommend_solver_diverged_total",
			Help: "Total number of solver runs that diverged to a non-finite value",
		},
	)

	// kernelCacheResultsTotal counts kernel cache hits and misses.
	kernelCacheResultsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wayfarer_recommend_kernel_cache_results_total",
			Help: "Total number of kernel cache lookups by result",
		},
		[]string{"result"},
	)
)
