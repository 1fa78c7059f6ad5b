// Wayfarer - Typed Random-Walk Music Recommendation Engine
// Copyright 2026 The Wayfarer Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nyxmusic/wayfarer

package randomwalk

import "errors"

// ErrSolverDiverged is returned when a solver iterate goes non-finite
// (NaN or Inf). Exhausting max_iter without meeting the convergence
// tolerance is not divergence; the solver returns its last iterate in
// that case instead.
var ErrSolverDiverged = errors.New("randomwalk: solver diverged")

// ErrCancelled is returned when a solver observes context cancellation
// mid-run.
var ErrCancelled = errors.New("randomwalk: run cancelled")
