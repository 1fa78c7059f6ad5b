// Wayfarer - Typed Random-Walk Music Recommendation Engine
// Copyright 2026 The Wayfarer Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nyxmusic/wayfarer

package recommend

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/nyxmusic/wayfarer/internal/graph"
	"github.com/nyxmusic/wayfarer/internal/logging"
	"github.com/nyxmusic/wayfarer/internal/markov"
	"github.com/nyxmusic/wayfarer/internal/randomwalk"
	"github.com/nyxmusic/wayfarer/internal/storage"
	"github.com/nyxmusic/wayfarer/internal/store"
	"github.com/nyxmusic/wayfarer/internal/validation"
)

// Recommender orchestrates seed extraction, graph assembly, kernel
// construction (with optional caching), solver execution, and result
// post-filtering into a single query pipeline.
type Recommender struct {
	store    store.Store
	config   Config
	cache    *storage.KernelCache
	registry *markov.Registry
}

// KnownStrategies returns every markov strategy name the recommender can
// resolve: the shipped balanced/exploration strategies plus any strategies
// supplied through the registry passed to New.
func (r *Recommender) KnownStrategies() []markov.Strategy {
	return r.registry.Known()
}

// New returns a Recommender backed by st, configured by cfg. cache may be
// nil, in which case every query rebuilds its kernel from scratch. registry
// resolves markov strategy names to type transition matrices; a nil
// registry resolves the built-in balanced/exploration strategies only.
func New(st store.Store, cfg Config, cache *storage.KernelCache, registry *markov.Registry) (*Recommender, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Recommender{store: st, config: cfg, cache: cache, registry: registry}, nil
}

// Recommend runs one end-to-end query: it fetches the caller's last
// nLastListenings tracks as seeds, assembles the listening graph, builds
// or reuses a kernel for markovStrategy, runs walkMethod, and returns the
// topK recommended track ids descending by score.
func (r *Recommender) Recommend(ctx context.Context, env string, markovStrategy markov.Strategy, walkMethod randomwalk.Method, nLastListenings, topK int) ([]int64, error) {
	req := Request{
		Env:             env,
		MarkovStrategy:  markovStrategy,
		WalkMethod:      walkMethod,
		NLastListenings: nLastListenings,
		TopK:            topK,
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestInvalid, verr)
	}

	start := time.Now()
	logging.Info().
		Str("env", env).
		Str("markov_strategy", string(markovStrategy)).
		Str("walk_method", string(walkMethod)).
		Int("n_last_listenings", nLastListenings).
		Int("top_k", topK).
		Msg("recommendation query started")

	ids, seedCount, err := r.recommend(ctx, req)

	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	queriesTotal.WithLabelValues(string(markovStrategy), string(walkMethod), outcome).Inc()
	queryDuration.WithLabelValues(string(markovStrategy), string(walkMethod)).Observe(time.Since(start).Seconds())

	if err != nil {
		logging.Err(err).
			Str("env", env).
			Dur("duration", time.Since(start)).
			Msg("recommendation query failed")
		return nil, err
	}

	logging.Info().
		Str("env", env).
		Int("seed_count", seedCount).
		Int("result_count", len(ids)).
		Dur("duration", time.Since(start)).
		Msg("recommendation query completed")
	return ids, nil
}

func (r *Recommender) recommend(ctx context.Context, req Request) ([]int64, int, error) {
	seedTracks, err := r.store.FetchLastTracksListened(ctx, req.Env, req.NLastListenings)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	seedNames := make([]string, 0, len(seedTracks))
	seedSet := make(map[string]struct{}, len(seedTracks))
	for _, t := range seedTracks {
		name := graph.Node{Type: graph.NodeTrack, ID: t.ID}.Name()
		seedNames = append(seedNames, name)
		seedSet[name] = struct{}{}
	}

	g, err := r.assembleGraph(ctx, req.Env)
	if err != nil {
		return nil, 0, err
	}

	k, cacheHit, err := r.buildOrLoadKernel(g, req.MarkovStrategy)
	if err != nil {
		return nil, 0, err
	}
	kernelCacheResult := "miss"
	if cacheHit {
		kernelCacheResult = "hit"
	}
	kernelCacheResultsTotal.WithLabelValues(kernelCacheResult).Inc()

	solver, err := randomwalk.New(req.WalkMethod, k, seedNames, r.solverParams())
	if err != nil {
		return nil, 0, err
	}

	pi, err := solver.Run(ctx)
	if err != nil {
		if errors.Is(err, randomwalk.ErrSolverDiverged) {
			solverDivergedTotal.Inc()
		}
		return nil, 0, err
	}

	ids := r.topTracks(k.Index, pi, seedSet, req.TopK)
	return ids, len(seedNames), nil
}

func (r *Recommender) assembleGraph(ctx context.Context, env string) (*graph.Graph, error) {
	tracks, err := r.store.FetchAllTracks(ctx, env)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	artists, err := r.store.FetchAllArtists(ctx, env)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	albums, err := r.store.FetchAllAlbums(ctx, env)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	tags, err := r.store.FetchAllTags(ctx, env)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	entities := graph.Entities{Tracks: tracks, Artists: artists, Albums: albums, Tags: tags}
	g, err := graph.NewAssembler(entities).AssembleGraph()
	if err != nil {
		return nil, err
	}
	if g.NodeCount() == 0 {
		return nil, graph.ErrGraphEmpty
	}
	return g, nil
}

func (r *Recommender) buildOrLoadKernel(g *graph.Graph, strategy markov.Strategy) (*markov.Kernel, bool, error) {
	signature := g.Signature()

	if r.cache != nil {
		if k, ok, err := r.cache.Load(signature, strategy); err == nil && ok {
			return k, true, nil
		}
	}

	k, err := markov.BuildKernelFromRegistry(g, strategy, r.registry)
	if err != nil {
		return nil, false, err
	}

	if r.cache != nil {
		if err := r.cache.Save(signature, k); err != nil {
			logging.Err(err).Str("graph_signature", signature).Msg("failed to persist kernel cache entry")
		}
	}
	return k, false, nil
}

func (r *Recommender) solverParams() randomwalk.Params {
	return randomwalk.Params{
		Alpha:    r.config.PowerIteration.Alpha,
		Tol:      r.config.PowerIteration.Tol,
		MaxIter:  r.config.PowerIteration.MaxIter,
		Steps:    r.config.MonteCarlo.Steps,
		BaseSeed: r.config.MonteCarlo.Seed,
		Workers:  r.config.SolverWorkers,
	}
}

// scoredNode pairs a node index with its walk score, for stable
// descending-by-score, ascending-by-index sorting.
type scoredNode struct {
	index int
	score float64
}

// topTracks post-filters pi to TRACK-type, non-seed nodes, sorts
// descending by score (ties broken by ascending node index), and extracts
// the numeric track id from the top k node names.
func (r *Recommender) topTracks(index *graph.NodeIndex, pi []float64, seedSet map[string]struct{}, topK int) []int64 {
	candidates := make([]scoredNode, 0, len(pi))
	for i, score := range pi {
		name := index.NameAt(i)
		if _, isSeed := seedSet[name]; isSeed {
			continue
		}
		if !strings.HasPrefix(name, string(graph.NodeTrack)+":") {
			continue
		}
		candidates = append(candidates, scoredNode{index: i, score: score})
	}

	sort.Slice(candidates, func(a, b int) bool {
		if candidates[a].score != candidates[b].score {
			return candidates[a].score > candidates[b].score
		}
		return candidates[a].index < candidates[b].index
	})

	if topK > len(candidates) {
		topK = len(candidates)
	}

	ids := make([]int64, 0, topK)
	for _, c := range candidates[:topK] {
		name := index.NameAt(c.index)
		idStr := strings.TrimPrefix(name, string(graph.NodeTrack)+":")
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}
