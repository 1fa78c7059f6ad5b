// Wayfarer - Typed Random-Walk Music Recommendation Engine
// Copyright 2026 The Wayfarer Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nyxmusic/wayfarer

package markov

import (
	"errors"

	"github.com/nyxmusic/wayfarer/internal/graph"
)

// ErrNoValidSeeds is returned when none of the requested seed nodes exist
// in the graph the kernel was built from.
var ErrNoValidSeeds = errors.New("markov: no seed nodes present in graph")

// BuildInitialDistribution returns pi0, a length-N distribution uniform
// over the seed nodes that exist in the kernel's index, and zero
// elsewhere. It returns ErrNoValidSeeds if none of seedNames are
// graph-resident.
func BuildInitialDistribution(index *graph.NodeIndex, seedNames []string) ([]float64, error) {
	validIndices := make([]int, 0, len(seedNames))
	seen := make(map[int]struct{}, len(seedNames))
	for _, name := range seedNames {
		i, ok := index.IndexOf(name)
		if !ok {
			continue
		}
		if _, dup := seen[i]; dup {
			continue
		}
		seen[i] = struct{}{}
		validIndices = append(validIndices, i)
	}

	if len(validIndices) == 0 {
		return nil, ErrNoValidSeeds
	}

	pi0 := make([]float64, index.Len())
	mass := 1.0 / float64(len(validIndices))
	for _, i := range validIndices {
		pi0[i] = mass
	}
	return pi0, nil
}
