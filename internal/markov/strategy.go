// Wayfarer - Typed Random-Walk Music Recommendation Engine
// Copyright 2026 The Wayfarer Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nyxmusic/wayfarer

package markov

import (
	"fmt"
	"math"

	"github.com/nyxmusic/wayfarer/internal/graph"
)

// rowSumTolerance is the allowed deviation from 1 when validating that a
// type transition row sums to unity.
const rowSumTolerance = 1e-8

// TypeTransitionMatrix is a small matrix T[srcType][dstType] governing how
// walk mass is allocated across neighbor types, independent of graph
// structure. Every row must sum to 1 within rowSumTolerance.
type TypeTransitionMatrix map[graph.NodeType]map[graph.NodeType]float64

// Validate checks that every row is non-negative and sums to 1 within
// rowSumTolerance. It returns ErrConfigInvalid wrapped with the offending
// source type on the first violation found.
func (m TypeTransitionMatrix) Validate() error {
	for src, row := range m {
		sum := 0.0
		for dst, p := range row {
			if p < 0 {
				return fmt.Errorf("%w: negative probability T[%s][%s] = %g", ErrConfigInvalid, src, dst, p)
			}
			sum += p
		}
		if math.Abs(sum-1.0) > rowSumTolerance {
			return fmt.Errorf("%w: row for source type %s sums to %g, want 1", ErrConfigInvalid, src, sum)
		}
	}
	return nil
}

// Strategy names a named, shipped type transition matrix.
type Strategy string

const (
	// StrategyBalanced spreads outgoing mass close to evenly across the
	// neighbor types a node actually has.
	StrategyBalanced Strategy = "balanced"

	// StrategyExploration biases the walk toward ARTIST and TAG
	// neighbors, favoring discovery of new tracks over staying close to
	// the seeds' own albums.
	StrategyExploration Strategy = "exploration"
)

// namedStrategies holds the shipped default type transition matrices,
// keyed by strategy name. A config layer may load additional strategies
// from YAML; these are the built-in fallbacks always available by name.
var namedStrategies = map[Strategy]TypeTransitionMatrix{
	StrategyBalanced: {
		graph.NodeTrack: {
			graph.NodeTrack: 0, graph.NodeArtist: 0.4, graph.NodeAlbum: 0.4, graph.NodeTag: 0.2,
		},
		graph.NodeAlbum: {
			graph.NodeTrack: 0.4, graph.NodeArtist: 0.3, graph.NodeAlbum: 0.2, graph.NodeTag: 0.1,
		},
		graph.NodeArtist: {
			graph.NodeTrack: 0.3, graph.NodeArtist: 0.3, graph.NodeAlbum: 0.2, graph.NodeTag: 0.2,
		},
		graph.NodeTag: {
			graph.NodeTrack: 0, graph.NodeArtist: 0.5, graph.NodeAlbum: 0, graph.NodeTag: 0.5,
		},
	},
	StrategyExploration: {
		graph.NodeTrack: {
			graph.NodeTrack: 0, graph.NodeArtist: 0.5, graph.NodeAlbum: 0.2, graph.NodeTag: 0.3,
		},
		graph.NodeAlbum: {
			graph.NodeTrack: 0.2, graph.NodeArtist: 0.3, graph.NodeAlbum: 0.1, graph.NodeTag: 0.4,
		},
		graph.NodeArtist: {
			graph.NodeTrack: 0.15, graph.NodeArtist: 0.25, graph.NodeAlbum: 0.1, graph.NodeTag: 0.5,
		},
		graph.NodeTag: {
			graph.NodeTrack: 0, graph.NodeArtist: 0.6, graph.NodeAlbum: 0, graph.NodeTag: 0.4,
		},
	},
}

// LoadNamedStrategy returns the built-in type transition matrix registered
// under name. It returns ErrConfigInvalid if name is not a recognized
// strategy, or if the registered matrix fails validation.
func LoadNamedStrategy(name Strategy) (TypeTransitionMatrix, error) {
	m, ok := namedStrategies[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown strategy %q", ErrConfigInvalid, name)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Registry resolves a strategy name to its type transition matrix,
// preferring strategies loaded from configuration over the built-in
// balanced/exploration matrices. A nil *Registry resolves built-in
// strategies only.
type Registry struct {
	custom map[Strategy]TypeTransitionMatrix
}

// NewRegistry returns a Registry that resolves custom before falling back
// to the built-in named strategies. custom may be nil or empty.
func NewRegistry(custom map[Strategy]TypeTransitionMatrix) *Registry {
	return &Registry{custom: custom}
}

// Lookup resolves name to a validated type transition matrix. Custom
// strategies registered under name take priority over a built-in strategy
// of the same name, so a configuration file can override balanced or
// exploration outright.
func (reg *Registry) Lookup(name Strategy) (TypeTransitionMatrix, error) {
	if reg != nil {
		if m, ok := reg.custom[name]; ok {
			if err := m.Validate(); err != nil {
				return nil, err
			}
			return m, nil
		}
	}
	return LoadNamedStrategy(name)
}

// Known returns every strategy name the registry can resolve: the built-in
// balanced and exploration strategies, plus any custom strategies.
func (reg *Registry) Known() []Strategy {
	seen := map[Strategy]struct{}{
		StrategyBalanced:    {},
		StrategyExploration: {},
	}
	if reg != nil {
		for name := range reg.custom {
			seen[name] = struct{}{}
		}
	}
	names := make([]Strategy, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	return names
}
