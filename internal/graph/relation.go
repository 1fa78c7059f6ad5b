// Wayfarer - Typed Random-Walk Music Recommendation Engine
// Copyright 2026 The Wayfarer Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nyxmusic/wayfarer

package graph

// RelationType names one of the authorized edge kinds between two node types.
type RelationType string

const (
	RelationAlbumArtist  RelationType = "album_artist"
	RelationTrackArtist  RelationType = "track_artist"
	RelationTrackAlbum   RelationType = "track_album"
	RelationArtistArtist RelationType = "artist_artist"
	RelationArtistTag    RelationType = "artist_tag"
	RelationAlbumAlbum   RelationType = "album_album"
	RelationTagTag       RelationType = "tag_tag"
)

// defaultWeight is the edge weight used when a relation's own default applies.
const defaultWeight = 1.0

// typePair is an order-insensitive key over two node types, used to look up
// the relation authorized between them.
type typePair struct {
	a, b NodeType
}

func newTypePair(a, b NodeType) typePair {
	if a <= b {
		return typePair{a, b}
	}
	return typePair{b, a}
}

// authorizedRelations is the closed set of (type,type) pairs an edge may
// connect, each mapped to the relation kind and default weight it carries.
// Any pair not present here is rejected at graph-construction time.
var authorizedRelations = map[typePair]struct {
	Relation RelationType
	Weight   float64
}{
	newTypePair(NodeAlbum, NodeArtist):   {RelationAlbumArtist, defaultWeight},
	newTypePair(NodeTrack, NodeArtist):   {RelationTrackArtist, defaultWeight},
	newTypePair(NodeTrack, NodeAlbum):    {RelationTrackAlbum, defaultWeight},
	newTypePair(NodeArtist, NodeArtist):  {RelationArtistArtist, defaultWeight},
	newTypePair(NodeArtist, NodeTag):     {RelationArtistTag, defaultWeight},
	newTypePair(NodeAlbum, NodeAlbum):    {RelationAlbumAlbum, defaultWeight},
	newTypePair(NodeTag, NodeTag):        {RelationTagTag, defaultWeight},
}

// lookupRelation returns the authorized relation between two node types, if any.
func lookupRelation(a, b NodeType) (RelationType, float64, bool) {
	entry, ok := authorizedRelations[newTypePair(a, b)]
	if !ok {
		return "", 0, false
	}
	return entry.Relation, entry.Weight, true
}
