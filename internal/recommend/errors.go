// Wayfarer - Typed Random-Walk Music Recommendation Engine
// Copyright 2026 The Wayfarer Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nyxmusic/wayfarer

package recommend

import (
	"errors"

	"github.com/nyxmusic/wayfarer/internal/graph"
	"github.com/nyxmusic/wayfarer/internal/markov"
	"github.com/nyxmusic/wayfarer/internal/randomwalk"
	"github.com/nyxmusic/wayfarer/internal/store"
)

// Re-exported so callers of Recommend can match error kinds with errors.Is
// without importing the lower-level packages directly.
var (
	ErrConfigInvalid     = markov.ErrConfigInvalid
	ErrGraphEmpty        = graph.ErrGraphEmpty
	ErrNoValidSeeds      = markov.ErrNoValidSeeds
	ErrForbiddenRelation = graph.ErrForbiddenRelation
	ErrKernelInvariant   = markov.ErrKernelInvariant
	ErrSolverDiverged    = randomwalk.ErrSolverDiverged
	ErrCancelled         = randomwalk.ErrCancelled
	ErrStoreUnavailable  = store.ErrStoreUnavailable
)

// ErrRequestInvalid is returned when a Request fails struct validation
// before the pipeline runs.
var ErrRequestInvalid = errors.New("recommend: request parameters invalid")
