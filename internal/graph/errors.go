// Wayfarer - Typed Random-Walk Music Recommendation Engine
// Copyright 2026 The Wayfarer Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nyxmusic/wayfarer

package graph

import "errors"

// ErrForbiddenRelation is returned when an edge is attempted between two
// node types that do not appear in the authorized-relations set.
var ErrForbiddenRelation = errors.New("graph: forbidden relation between node types")

// ErrGraphEmpty is returned when graph assembly produces zero nodes.
var ErrGraphEmpty = errors.New("graph: assembly produced an empty graph")
