// Wayfarer - Typed Random-Walk Music Recommendation Engine
// Copyright 2026 The Wayfarer Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nyxmusic/wayfarer

package randomwalk

import (
	"context"
	"errors"
	"testing"

	"github.com/nyxmusic/wayfarer/internal/graph"
	"github.com/nyxmusic/wayfarer/internal/markov"
)

func buildTestKernel(t *testing.T) *markov.Kernel {
	t.Helper()
	entities := graph.Entities{
		Tracks: []graph.Track{
			{ID: 1, AlbumID: 10, ArtistIDs: []int64{100}},
			{ID: 2, AlbumID: 10, ArtistIDs: []int64{100}},
		},
		Albums:  []graph.Album{{ID: 10, ArtistIDs: []int64{100}}},
		Artists: []graph.Artist{{ID: 100}},
	}
	g, err := graph.NewAssembler(entities).AssembleGraph()
	if err != nil {
		t.Fatalf("AssembleGraph() error = %v", err)
	}
	k, err := markov.BuildKernel(g, markov.StrategyBalanced)
	if err != nil {
		t.Fatalf("BuildKernel() error = %v", err)
	}
	return k
}

func TestNew_PowerIteration(t *testing.T) {
	k := buildTestKernel(t)
	solver, err := New(MethodPowerIteration, k, []string{"track:1"}, Params{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	result, err := solver.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(result) != k.N() {
		t.Fatalf("len(result) = %d, want %d", len(result), k.N())
	}
}

func TestNew_MonteCarlo(t *testing.T) {
	k := buildTestKernel(t)
	solver, err := New(MethodMonteCarlo, k, []string{"track:1"}, Params{Steps: 100, BaseSeed: 1})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	result, err := solver.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(result) != k.N() {
		t.Fatalf("len(result) = %d, want %d", len(result), k.N())
	}
}

func TestNew_NoValidSeeds(t *testing.T) {
	k := buildTestKernel(t)
	_, err := New(MethodPowerIteration, k, []string{"track:999"}, Params{})
	if !errors.Is(err, markov.ErrNoValidSeeds) {
		t.Fatalf("New() error = %v, want ErrNoValidSeeds", err)
	}
}

func TestNew_UnknownMethod(t *testing.T) {
	k := buildTestKernel(t)
	_, err := New(Method("bogus"), k, []string{"track:1"}, Params{})
	if err == nil {
		t.Fatal("New() with unknown method: want error, got nil")
	}
}
