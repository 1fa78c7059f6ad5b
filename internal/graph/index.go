// Wayfarer - Typed Random-Walk Music Recommendation Engine
// Copyright 2026 The Wayfarer Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nyxmusic/wayfarer

package graph

import "fmt"

// NodeIndex is an immutable bijection between node names and contiguous
// integer indices [0, N). It is built once, from the final node set of an
// assembled graph, and never mutated afterward.
type NodeIndex struct {
	names       []string
	nameToIndex map[string]int
}

// NewNodeIndex builds a bijection over names. names must not contain
// duplicates; an index is assigned in iteration order.
func NewNodeIndex(names []string) (*NodeIndex, error) {
	nameToIndex := make(map[string]int, len(names))
	for i, name := range names {
		if _, exists := nameToIndex[name]; exists {
			return nil, fmt.Errorf("graph: duplicate node name in index: %s", name)
		}
		nameToIndex[name] = i
	}

	cp := make([]string, len(names))
	copy(cp, names)

	return &NodeIndex{names: cp, nameToIndex: nameToIndex}, nil
}

// Len returns n, the number of nodes indexed.
func (idx *NodeIndex) Len() int {
	return len(idx.names)
}

// IndexOf returns the integer index of a node name, and whether it was found.
func (idx *NodeIndex) IndexOf(name string) (int, bool) {
	i, ok := idx.nameToIndex[name]
	return i, ok
}

// NameAt returns the node name at a given index. Panics if i is out of range,
// the same way slice indexing would.
func (idx *NodeIndex) NameAt(i int) string {
	return idx.names[i]
}

// Names returns a copy of the ordered node names; mutating it does not
// affect the index.
func (idx *NodeIndex) Names() []string {
	out := make([]string, len(idx.names))
	copy(out, idx.names)
	return out
}
