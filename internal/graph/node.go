// Wayfarer - Typed Random-Walk Music Recommendation Engine
// Copyright 2026 The Wayfarer Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nyxmusic/wayfarer

// Package graph assembles the heterogeneous listening-history graph the
// random walk runs over: tracks, artists, albums and tags as typed nodes,
// connected by a closed set of authorized relations.
package graph

import "strconv"

// NodeType is one of the four entity kinds that can appear as a graph node.
type NodeType string

const (
	NodeAlbum  NodeType = "album"
	NodeArtist NodeType = "artist"
	NodeTag    NodeType = "tag"
	NodeTrack  NodeType = "track"
)

// Valid reports whether t is one of the four authorized node types.
func (t NodeType) Valid() bool {
	switch t {
	case NodeAlbum, NodeArtist, NodeTag, NodeTrack:
		return true
	default:
		return false
	}
}

// Node identifies a single graph vertex by type and store-assigned integer id.
// Node is the stable external identifier described by the node-name grammar
// "<type>:<id>"; the id is opaque store state and carries no meaning beyond
// uniqueness within its type.
type Node struct {
	Type NodeType
	ID   int64
}

// Name renders the node's stable external identifier, "<type>:<id>".
func (n Node) Name() string {
	return string(n.Type) + ":" + strconv.FormatInt(n.ID, 10)
}

// String implements fmt.Stringer so nodes print naturally in logs.
func (n Node) String() string {
	return n.Name()
}
