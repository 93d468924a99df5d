// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Candidate is one ranked recording returned by the search stage. The
// chooser presents at most three of these; after a selection is made the
// slice is discarded.
type Candidate struct {
	// ID is the MusicBrainz recording MBID, the canonical identifier the
	// detail fetch uses.
	ID string `json:"id" yaml:"id"`

	// Title is the recording title as returned by the source.
	Title string `json:"title" yaml:"title"`

	// Artist is the joined artist credit (e.g. "Travis Scott feat. The Weeknd").
	Artist string `json:"artist" yaml:"artist"`

	// Score is the ranking score between 0.0 and 1.0. It folds together
	// exact-artist match, the service's own relevance score, and title
	// similarity.
	Score float64 `json:"score" yaml:"score"`

	// ReleaseTitle and ReleaseDate describe the first release attached to
	// the search hit, when the source included one. Used only for the
	// disambiguation menu.
	ReleaseTitle string `json:"release_title,omitempty" yaml:"release_title,omitempty"`
	ReleaseDate  string `json:"release_date,omitempty" yaml:"release_date,omitempty"`
}
