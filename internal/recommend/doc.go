// Wayfarer - Typed Random-Walk Music Recommendation Engine
// Copyright 2026 The Wayfarer Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nyxmusic/wayfarer

// Package recommend wires the graph, markov, randomwalk, and storage
// packages into the query pipeline: seed extraction, graph assembly,
// kernel construction or reuse, solver execution, and result
// post-filtering.
package recommend
