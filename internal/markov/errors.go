// Wayfarer - Typed Random-Walk Music Recommendation Engine
// Copyright 2026 The Wayfarer Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nyxmusic/wayfarer

package markov

import "errors"

// ErrConfigInvalid is returned when a type transition matrix fails row-sum
// or shape validation.
var ErrConfigInvalid = errors.New("markov: type transition configuration invalid")

// ErrKernelInvariant is returned when a built kernel fails post-construction
// validation (negative entry, or a row that does not sum to 1).
var ErrKernelInvariant = errors.New("markov: kernel invariant violated")
