// Wayfarer - Typed Random-Walk Music Recommendation Engine
// Copyright 2026 The Wayfarer Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nyxmusic/wayfarer

// Package markov builds the type-biased, row-stochastic transition kernel
// the random walk solvers run over.
package markov

import (
	"fmt"
	"math"

	"github.com/nyxmusic/wayfarer/internal/graph"
)

// Kernel holds a built row-stochastic n x n transition matrix P, the Node
// Index it was built against, and the strategy name used. It is immutable
// after BuildKernel returns and may be shared read-only across concurrent
// solver runs.
type Kernel struct {
	P        [][]float64
	Index    *graph.NodeIndex
	Strategy Strategy
}

// BuildKernel constructs the transition kernel for g using the named
// strategy's type transition matrix. Every row of P is either a
// distribution over g's actual neighbor types (restricted and renormalized
// per the strategy matrix) or an absorbing self-loop for nodes with no
// authorized outgoing mass.
func BuildKernel(g *graph.Graph, strategy Strategy) (*Kernel, error) {
	typeMatrix, err := LoadNamedStrategy(strategy)
	if err != nil {
		return nil, err
	}
	return buildKernel(g, strategy, typeMatrix)
}

// BuildKernelWithMatrix constructs the kernel using an explicit, already
// validated type transition matrix, bypassing the named-strategy lookup.
func BuildKernelWithMatrix(g *graph.Graph, strategyName Strategy, typeMatrix TypeTransitionMatrix) (*Kernel, error) {
	if err := typeMatrix.Validate(); err != nil {
		return nil, err
	}
	return buildKernel(g, strategyName, typeMatrix)
}

// BuildKernelFromRegistry constructs the kernel for g using strategy,
// resolved through reg. A nil reg resolves built-in strategies only,
// equivalent to BuildKernel. Used by the recommender so that strategies
// loaded from configuration participate in kernel construction the same
// way the shipped balanced/exploration strategies do.
func BuildKernelFromRegistry(g *graph.Graph, strategy Strategy, reg *Registry) (*Kernel, error) {
	typeMatrix, err := reg.Lookup(strategy)
	if err != nil {
		return nil, err
	}
	return BuildKernelWithMatrix(g, strategy, typeMatrix)
}

func buildKernel(g *graph.Graph, strategyName Strategy, typeMatrix TypeTransitionMatrix) (*Kernel, error) {
	if g.NodeCount() == 0 {
		return nil, graph.ErrGraphEmpty
	}

	index, err := graph.NewNodeIndex(g.NodeNames())
	if err != nil {
		return nil, fmt.Errorf("markov: building node index: %w", err)
	}

	n := index.Len()
	p := make([][]float64, n)
	for i := range p {
		p[i] = make([]float64, n)
	}

	for u := 0; u < n; u++ {
		name := index.NameAt(u)
		srcType, ok := g.NodeType(name)
		if !ok {
			return nil, fmt.Errorf("%w: node %s missing from graph", ErrKernelInvariant, name)
		}

		neighbors := g.Neighbors(name)
		if len(neighbors) == 0 {
			p[u][u] = 1
			continue
		}

		neighborsByType := make(map[graph.NodeType][]string)
		for _, nb := range neighbors {
			nbType, ok := g.NodeType(nb)
			if !ok {
				return nil, fmt.Errorf("%w: neighbor %s missing from graph", ErrKernelInvariant, nb)
			}
			neighborsByType[nbType] = append(neighborsByType[nbType], nb)
		}

		srcRow := typeMatrix[srcType]
		raw := make(map[graph.NodeType]float64, len(neighborsByType))
		sum := 0.0
		for t := range neighborsByType {
			v := srcRow[t]
			raw[t] = v
			sum += v
		}

		if sum == 0 {
			p[u][u] = 1
			continue
		}

		for t, nbs := range neighborsByType {
			q := raw[t] / sum
			share := q / float64(len(nbs))
			for _, nb := range nbs {
				v, ok := index.IndexOf(nb)
				if !ok {
					return nil, fmt.Errorf("%w: neighbor %s not present in index", ErrKernelInvariant, nb)
				}
				p[u][v] = share
			}
		}
	}

	k := &Kernel{P: p, Index: index, Strategy: strategyName}
	if err := k.Validate(); err != nil {
		return nil, err
	}
	return k, nil
}

// Validate checks that P has no negative entry and that every row sums to
// 1 within rowSumTolerance.
func (k *Kernel) Validate() error {
	for u, row := range k.P {
		sum := 0.0
		for _, v := range row {
			if v < 0 {
				return fmt.Errorf("%w: negative entry in row %d", ErrKernelInvariant, u)
			}
			sum += v
		}
		if math.Abs(sum-1.0) > rowSumTolerance {
			return fmt.Errorf("%w: row %d sums to %g, want 1", ErrKernelInvariant, u, sum)
		}
	}
	return nil
}

// N returns the dimension of the kernel's transition matrix.
func (k *Kernel) N() int {
	return k.Index.Len()
}
