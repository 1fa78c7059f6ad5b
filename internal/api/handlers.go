// Wayfarer - Typed Random-Walk Music Recommendation Engine
// Copyright 2026 The Wayfarer Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nyxmusic/wayfarer

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/nyxmusic/wayfarer/internal/markov"
	"github.com/nyxmusic/wayfarer/internal/middleware"
	"github.com/nyxmusic/wayfarer/internal/randomwalk"
	"github.com/nyxmusic/wayfarer/internal/recommend"
	"github.com/nyxmusic/wayfarer/internal/validation"
)

// queryTimeout bounds how long a single recommendations query may run.
const queryTimeout = 10 * time.Second

// recommendationsQuery is the validated shape of a GET /recommendations
// request's query parameters. MarkovStrategy's membership in the set of
// strategies the recommender actually knows about (built-in plus any
// loaded from configuration) is checked separately, since that set isn't
// known statically at struct-tag time.
type recommendationsQuery struct {
	Env             string            `validate:"required"`
	NLastListenings int               `validate:"required,gt=0"`
	TopK            int               `validate:"required,gt=0"`
	MarkovStrategy  markov.Strategy   `validate:"required"`
	WalkMethod      randomwalk.Method `validate:"required,oneof=power_iteration monte_carlo"`
}

// perfWindow bounds how many recent requests the performance monitor
// keeps for percentile calculations.
const perfWindow = 1000

// Handler serves the recommendation core over HTTP.
type Handler struct {
	rec             *recommend.Recommender
	perf            *middleware.PerformanceMonitor
	knownStrategies map[markov.Strategy]struct{}
}

// NewHandler returns a Handler backed by rec. The set of markov strategy
// names accepted by GetRecommendations is read once from
// rec.KnownStrategies, so strategies loaded into rec's configuration are
// selectable over the API the same way the shipped balanced and
// exploration strategies are.
func NewHandler(rec *recommend.Recommender) *Handler {
	known := make(map[markov.Strategy]struct{})
	for _, name := range rec.KnownStrategies() {
		known[name] = struct{}{}
	}
	return &Handler{rec: rec, perf: middleware.NewPerformanceMonitor(perfWindow), knownStrategies: known}
}

// Performance returns the handler's performance monitor, so the router
// can wire its request-recording middleware.
func (h *Handler) Performance() *middleware.PerformanceMonitor {
	return h.perf
}

// GetPerformanceStats handles GET /debug/performance, returning
// per-endpoint latency percentiles gathered since process start.
func (h *Handler) GetPerformanceStats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &APIResponse{
		Status:   "success",
		Data:     h.perf.GetStats(),
		Metadata: Metadata{Timestamp: time.Now()},
	})
}

// HealthLive reports that the process is up.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &APIResponse{
		Status:   "success",
		Data:     map[string]string{"status": "live"},
		Metadata: Metadata{Timestamp: time.Now()},
	})
}

// GetRecommendations handles GET /recommendations.
func (h *Handler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	req := recommendationsQuery{
		Env:            q.Get("env"),
		MarkovStrategy: markov.Strategy(orDefault(q.Get("markov"), "balanced")),
		WalkMethod:     randomwalk.Method(orDefault(q.Get("walk"), string(randomwalk.MethodPowerIteration))),
	}
	req.NLastListenings = atoiOrZero(orDefault(q.Get("seeds"), "20"))
	req.TopK = atoiOrZero(orDefault(q.Get("k"), "20"))

	if verr := validation.ValidateStruct(&req); verr != nil {
		respondError(w, http.StatusBadRequest, "INVALID_QUERY", "invalid query parameters", verr)
		return
	}
	if _, ok := h.knownStrategies[req.MarkovStrategy]; !ok {
		respondError(w, http.StatusBadRequest, "INVALID_QUERY",
			fmt.Sprintf("unknown markov strategy %q, want one of: %s", req.MarkovStrategy, h.strategyNames()), nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), queryTimeout)
	defer cancel()

	trackIDs, err := h.rec.Recommend(ctx, req.Env, req.MarkovStrategy, req.WalkMethod, req.NLastListenings, req.TopK)
	if err != nil {
		status, code := classifyError(err)
		respondError(w, status, code, "failed to generate recommendations", err)
		return
	}

	respondJSON(w, http.StatusOK, &APIResponse{
		Status:   "success",
		Data:     RecommendationsResponse{TrackIDs: trackIDs},
		Metadata: Metadata{Timestamp: time.Now()},
	})
}

// classifyError maps a recommend package error kind to an HTTP status and
// API error code, per the module's error taxonomy.
func classifyError(err error) (int, string) {
	switch {
	case errors.Is(err, recommend.ErrNoValidSeeds), errors.Is(err, recommend.ErrGraphEmpty):
		return http.StatusUnprocessableEntity, "NO_VALID_SEEDS"
	case errors.Is(err, recommend.ErrConfigInvalid):
		return http.StatusBadRequest, "INVALID_CONFIG"
	case errors.Is(err, recommend.ErrStoreUnavailable):
		return http.StatusServiceUnavailable, "STORE_UNAVAILABLE"
	case errors.Is(err, recommend.ErrRequestInvalid):
		return http.StatusBadRequest, "INVALID_REQUEST"
	default:
		return http.StatusInternalServerError, "RECOMMENDATION_ERROR"
	}
}

// strategyNames returns the handler's known markov strategy names, sorted,
// for use in error messages.
func (h *Handler) strategyNames() string {
	names := make([]string, 0, len(h.knownStrategies))
	for name := range h.knownStrategies {
		names = append(names, string(name))
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func atoiOrZero(v string) int {
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}
