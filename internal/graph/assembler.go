// Wayfarer - Typed Random-Walk Music Recommendation Engine
// Copyright 2026 The Wayfarer Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nyxmusic/wayfarer

package graph

// Track is a normalized listening-history entity: exactly one album
// reference and one or more artist references.
type Track struct {
	ID        int64
	AlbumID   int64
	ArtistIDs []int64
}

// Album is a normalized entity with one or more artist references.
type Album struct {
	ID        int64
	ArtistIDs []int64
}

// Artist is a normalized entity with zero or more similar-artist and
// tag references.
type Artist struct {
	ID               int64
	SimilarArtistIDs []int64
	TagIDs           []int64
}

// Tag is a normalized entity. Its artist associations are derived by the
// Assembler from the Artist entities' tag references, not supplied directly.
type Tag struct {
	ID int64
}

// Entities is the full normalized input to graph assembly.
type Entities struct {
	Tracks  []Track
	Albums  []Album
	Artists []Artist
	Tags    []Tag
}

// Assembler materializes a Graph from a set of normalized entities.
type Assembler struct {
	entities Entities
}

// NewAssembler returns an Assembler over the given entity set.
func NewAssembler(entities Entities) *Assembler {
	return &Assembler{entities: entities}
}

// AssembleGraph runs the five-step assembly algorithm and returns the
// resulting graph. It is idempotent and deterministic given the same input
// entity sets: rebuilding from identical entities always yields a graph with
// the same signature. AssembleGraph succeeds with an empty graph if the
// input entity sets are empty; cross-references to entities absent from the
// input sets are silently ignored.
func (asm *Assembler) AssembleGraph() (*Graph, error) {
	g := NewGraph()

	albumByID := make(map[int64]Album, len(asm.entities.Albums))
	for _, al := range asm.entities.Albums {
		albumByID[al.ID] = al
	}
	artistByID := make(map[int64]Artist, len(asm.entities.Artists))
	for _, ar := range asm.entities.Artists {
		artistByID[ar.ID] = ar
	}
	tagByID := make(map[int64]Tag, len(asm.entities.Tags))
	for _, t := range asm.entities.Tags {
		tagByID[t.ID] = t
	}

	// Step 1: one node per entity.
	for _, t := range asm.entities.Tracks {
		g.AddNode(Node{Type: NodeTrack, ID: t.ID})
	}
	for _, ar := range asm.entities.Artists {
		g.AddNode(Node{Type: NodeArtist, ID: ar.ID})
	}
	for _, al := range asm.entities.Albums {
		g.AddNode(Node{Type: NodeAlbum, ID: al.ID})
	}
	for _, t := range asm.entities.Tags {
		g.AddNode(Node{Type: NodeTag, ID: t.ID})
	}

	// Step 2: album <-> artist edges, plus induced album <-> album edges
	// for albums sharing an artist.
	albumsByArtist := make(map[int64][]int64)
	for _, al := range asm.entities.Albums {
		albumNode := Node{Type: NodeAlbum, ID: al.ID}
		for _, artistID := range al.ArtistIDs {
			if _, ok := artistByID[artistID]; !ok {
				continue
			}
			if err := g.AddEdge(albumNode, Node{Type: NodeArtist, ID: artistID}); err != nil {
				return nil, err
			}
			albumsByArtist[artistID] = append(albumsByArtist[artistID], al.ID)
		}
	}
	for _, albumIDs := range albumsByArtist {
		if err := addCombinations(g, NodeAlbum, albumIDs); err != nil {
			return nil, err
		}
	}

	// Step 3: track <-> artist and track <-> album edges.
	for _, t := range asm.entities.Tracks {
		trackNode := Node{Type: NodeTrack, ID: t.ID}
		for _, artistID := range t.ArtistIDs {
			if _, ok := artistByID[artistID]; !ok {
				continue
			}
			if err := g.AddEdge(trackNode, Node{Type: NodeArtist, ID: artistID}); err != nil {
				return nil, err
			}
		}
		if _, ok := albumByID[t.AlbumID]; ok {
			if err := g.AddEdge(trackNode, Node{Type: NodeAlbum, ID: t.AlbumID}); err != nil {
				return nil, err
			}
		}
	}

	// Step 4: artist <-> artist (similar-artist) and artist <-> tag edges.
	for _, ar := range asm.entities.Artists {
		artistNode := Node{Type: NodeArtist, ID: ar.ID}
		for _, similarID := range ar.SimilarArtistIDs {
			if similarID == ar.ID {
				continue
			}
			if _, ok := artistByID[similarID]; !ok {
				continue
			}
			if err := g.AddEdge(artistNode, Node{Type: NodeArtist, ID: similarID}); err != nil {
				return nil, err
			}
		}
		for _, tagID := range ar.TagIDs {
			if _, ok := tagByID[tagID]; !ok {
				continue
			}
			if err := g.AddEdge(artistNode, Node{Type: NodeTag, ID: tagID}); err != nil {
				return nil, err
			}
		}
	}

	// Step 5: tag <-> tag edges induced by tags sharing an artist. The
	// artist->tags projection is derived here from the Artist entities'
	// own tag references, rather than assumed pre-hydrated on Tag.
	for _, ar := range asm.entities.Artists {
		tagIDs := make([]int64, 0, len(ar.TagIDs))
		for _, tagID := range ar.TagIDs {
			if _, ok := tagByID[tagID]; ok {
				tagIDs = append(tagIDs, tagID)
			}
		}
		if err := addCombinations(g, NodeTag, tagIDs); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// addCombinations inserts an edge of the given node type for every
// unordered pair {a, b} with a < b drawn from ids.
func addCombinations(g *Graph, t NodeType, ids []int64) error {
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			a, b := ids[i], ids[j]
			if a == b {
				continue
			}
			if a > b {
				a, b = b, a
			}
			if err := g.AddEdge(Node{Type: t, ID: a}, Node{Type: t, ID: b}); err != nil {
				return err
			}
		}
	}
	return nil
}
