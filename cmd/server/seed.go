// Wayfarer - Typed Random-Walk Music Recommendation Engine
// Copyright 2026 The Wayfarer Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nyxmusic/wayfarer

package main

import (
	"github.com/nyxmusic/wayfarer/internal/graph"
	"github.com/nyxmusic/wayfarer/internal/store/memory"
)

// seedDemoData populates the "default" environment with a small, fixed
// listening library so the HTTP surface has something to recommend
// against out of the box. Intended for local exploration and smoke
// testing only; a real deployment supplies its own store.Store backed by
// the operator's listening history.
func seedDemoData(st *memory.Store) {
	entities := graph.Entities{
		Tracks: []graph.Track{
			{ID: 1, AlbumID: 1, ArtistIDs: []int64{1}},
			{ID: 2, AlbumID: 1, ArtistIDs: []int64{1}},
			{ID: 3, AlbumID: 2, ArtistIDs: []int64{2}},
			{ID: 4, AlbumID: 2, ArtistIDs: []int64{2}},
			{ID: 5, AlbumID: 3, ArtistIDs: []int64{3}},
			{ID: 6, AlbumID: 3, ArtistIDs: []int64{3, 1}},
		},
		Albums: []graph.Album{
			{ID: 1, ArtistIDs: []int64{1}},
			{ID: 2, ArtistIDs: []int64{2}},
			{ID: 3, ArtistIDs: []int64{3, 1}},
		},
		Artists: []graph.Artist{
			{ID: 1, SimilarArtistIDs: []int64{2}, TagIDs: []int64{1}},
			{ID: 2, SimilarArtistIDs: []int64{1}, TagIDs: []int64{1, 2}},
			{ID: 3, SimilarArtistIDs: []int64{}, TagIDs: []int64{2}},
		},
		Tags: []graph.Tag{
			{ID: 1},
			{ID: 2},
		},
	}

	st.Seed("default", entities, []int64{1, 2})
}
