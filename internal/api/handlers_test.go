// Wayfarer - Typed Random-Walk Music Recommendation Engine
// Copyright 2026 The Wayfarer Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nyxmusic/wayfarer

package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nyxmusic/wayfarer/internal/graph"
	"github.com/nyxmusic/wayfarer/internal/logging"
	"github.com/nyxmusic/wayfarer/internal/markov"
	"github.com/nyxmusic/wayfarer/internal/recommend"
	"github.com/nyxmusic/wayfarer/internal/store/memory"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	return newTestHandlerWithRegistry(t, nil)
}

func newTestHandlerWithRegistry(t *testing.T, registry *markov.Registry) *Handler {
	t.Helper()
	logging.Init(logging.Config{Level: "disabled"})

	st := memory.New()
	st.Seed("default", graph.Entities{
		Tracks: []graph.Track{
			{ID: 1, ArtistIDs: []int64{10}},
			{ID: 2, ArtistIDs: []int64{10}},
			{ID: 3, ArtistIDs: []int64{11}},
		},
		Artists: []graph.Artist{
			{ID: 10},
			{ID: 11},
		},
	}, []int64{1})

	rec, err := recommend.New(st, recommend.DefaultConfig(), nil, registry)
	if err != nil {
		t.Fatalf("recommend.New() error = %v", err)
	}
	return NewHandler(rec)
}

func TestHandler_HealthLive(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	rec := httptest.NewRecorder()
	h.HealthLive(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestHandler_GetRecommendations_Success(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/recommendations?env=default&seeds=1&k=5", nil)
	rec := httptest.NewRecorder()
	h.GetRecommendations(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp APIResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != "success" {
		t.Errorf("status field = %q, want success", resp.Status)
	}
}

func TestHandler_GetRecommendations_MissingEnv(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/recommendations?seeds=1&k=5", nil)
	rec := httptest.NewRecorder()
	h.GetRecommendations(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHandler_GetRecommendations_UnknownEnvYieldsUnprocessable(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/recommendations?env=nonexistent&seeds=1&k=5", nil)
	rec := httptest.NewRecorder()
	h.GetRecommendations(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, body = %s, want %d", rec.Code, rec.Body.String(), http.StatusUnprocessableEntity)
	}
}

func TestHandler_GetRecommendations_InvalidMarkovStrategy(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/recommendations?env=default&seeds=1&k=5&markov=bogus", nil)
	rec := httptest.NewRecorder()
	h.GetRecommendations(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHandler_GetRecommendations_CustomRegistryStrategy(t *testing.T) {
	registry := markov.NewRegistry(map[markov.Strategy]markov.TypeTransitionMatrix{
		"single-hop": {
			graph.NodeTrack:  {graph.NodeTrack: 0, graph.NodeArtist: 1, graph.NodeAlbum: 0, graph.NodeTag: 0},
			graph.NodeArtist: {graph.NodeTrack: 1, graph.NodeArtist: 0, graph.NodeAlbum: 0, graph.NodeTag: 0},
		},
	})
	h := newTestHandlerWithRegistry(t, registry)

	req := httptest.NewRequest(http.MethodGet, "/recommendations?env=default&seeds=1&k=5&markov=single-hop", nil)
	rec := httptest.NewRecorder()
	h.GetRecommendations(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s, want %d", rec.Code, rec.Body.String(), http.StatusOK)
	}
}
