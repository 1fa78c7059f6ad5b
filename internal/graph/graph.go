// Wayfarer - Typed Random-Walk Music Recommendation Engine
// Copyright 2026 The Wayfarer Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nyxmusic/wayfarer

package graph

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
)

// edgeKey is an order-insensitive key identifying an undirected edge between
// two node names, used to collapse duplicate edges.
type edgeKey struct {
	a, b string
}

func newEdgeKey(a, b string) edgeKey {
	if a <= b {
		return edgeKey{a, b}
	}
	return edgeKey{b, a}
}

// Edge is a materialized, weighted, typed connection between two nodes.
type Edge struct {
	From, To string
	Relation RelationType
	Weight   float64
}

// Graph is an undirected, typed, weighted multigraph over track, artist,
// album and tag nodes. It is built once by an Assembler and is read-only for
// the remainder of a query.
type Graph struct {
	nodeType map[string]NodeType
	order    []string // insertion order, for deterministic signatures and iteration
	edges    map[edgeKey]Edge
	adj      map[string]map[string]Edge // node -> neighbor -> edge
}

// NewGraph returns an empty graph ready for node and edge insertion.
func NewGraph() *Graph {
	return &Graph{
		nodeType: make(map[string]NodeType),
		edges:    make(map[edgeKey]Edge),
		adj:      make(map[string]map[string]Edge),
	}
}

// AddNode registers a node if it is not already present. Re-adding an
// existing node with the same type is a no-op; re-adding with a different
// type is a programming error and panics, since node names are meant to be
// type-qualified and unique.
func (g *Graph) AddNode(n Node) {
	name := n.Name()
	if existing, ok := g.nodeType[name]; ok {
		if existing != n.Type {
			panic(fmt.Sprintf("graph: node %s re-added with conflicting type %s", name, n.Type))
		}
		return
	}
	g.nodeType[name] = n.Type
	g.order = append(g.order, name)
	g.adj[name] = make(map[string]Edge)
}

// HasNode reports whether a node name is present in the graph.
func (g *Graph) HasNode(name string) bool {
	_, ok := g.nodeType[name]
	return ok
}

// NodeType returns the type of a node name, and whether it was found.
func (g *Graph) NodeType(name string) (NodeType, bool) {
	t, ok := g.nodeType[name]
	return t, ok
}

// AddEdge inserts an undirected edge between two already-added nodes, with
// the weight carried by the authorized relation for their types. It returns
// ErrForbiddenRelation if the pair of node types is not authorized. If an
// edge already exists between the two nodes, the new weight overwrites it
// (last-writer-wins), per the graph assembler's duplicate-collapsing rule.
func (g *Graph) AddEdge(a, b Node) error {
	relation, weight, ok := lookupRelation(a.Type, b.Type)
	if !ok {
		return fmt.Errorf("%w: %s <-> %s", ErrForbiddenRelation, a.Type, b.Type)
	}
	if !g.HasNode(a.Name()) || !g.HasNode(b.Name()) {
		return fmt.Errorf("graph: edge endpoint not registered as a node (%s, %s)", a.Name(), b.Name())
	}

	nameA, nameB := a.Name(), b.Name()
	if nameA == nameB {
		return fmt.Errorf("graph: self edge not permitted for %s", nameA)
	}

	e := Edge{From: nameA, To: nameB, Relation: relation, Weight: weight}
	g.edges[newEdgeKey(nameA, nameB)] = e
	g.adj[nameA][nameB] = e
	g.adj[nameB][nameA] = Edge{From: nameB, To: nameA, Relation: relation, Weight: weight}
	return nil
}

// Neighbors returns the neighbor node names of name, in no particular order.
func (g *Graph) Neighbors(name string) []string {
	neighbors := g.adj[name]
	out := make([]string, 0, len(neighbors))
	for n := range neighbors {
		out = append(out, n)
	}
	return out
}

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int {
	return len(g.order)
}

// EdgeCount returns the number of distinct undirected edges in the graph.
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// NodeNames returns all node names in insertion order. Callers must not mutate it.
func (g *Graph) NodeNames() []string {
	return g.order
}

// Signature returns a deterministic content hash over the graph's sorted
// node and edge lists, used as a cache key by the kernel persistence layer.
// Two graphs built from the same entities, regardless of insertion order,
// produce the same signature.
func (g *Graph) Signature() string {
	nodes := make([]string, len(g.order))
	copy(nodes, g.order)
	sort.Strings(nodes)

	edgeLines := make([]string, 0, len(g.edges))
	for k, e := range g.edges {
		edgeLines = append(edgeLines, fmt.Sprintf("%s|%s|%s|%.8f", k.a, k.b, e.Relation, e.Weight))
	}
	sort.Strings(edgeLines)

	h := sha256.New()
	for _, n := range nodes {
		h.Write([]byte(n))
		h.Write([]byte{'\n'})
	}
	h.Write([]byte{0})
	for _, l := range edgeLines {
		h.Write([]byte(l))
		h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))
}
