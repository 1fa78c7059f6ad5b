// Wayfarer - Typed Random-Walk Music Recommendation Engine
// Copyright 2026 The Wayfarer Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nyxmusic/wayfarer

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nyxmusic/wayfarer/internal/middleware"
)

// NewRouter builds the Chi-routed HTTP handler: request-ID propagation,
// panic recovery, gzip compression, per-endpoint latency tracking, one
// recommendations route, a liveness probe, a /debug/performance stats
// route, and a Prometheus scrape endpoint.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chiMiddleware(middleware.Compression))
	r.Use(h.Performance().Middleware)

	r.Get("/health/live", h.HealthLive)
	r.Get("/recommendations", h.GetRecommendations)
	r.Get("/debug/performance", h.GetPerformanceStats)
	r.Handle("/metrics", promhttp.Handler())

	return r
}
