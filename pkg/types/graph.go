// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Role classifies a credit edge in the relationship graph.
type Role string

const (
	RoleWriter    Role = "writer"
	RoleProducer  Role = "producer"
	RolePerformer Role = "performer"
	RoleOther     Role = "other"
)

// RelationEdge is one typed credit: a person attached to the recording in
// a given role. RawType preserves the source's relation type string
// ("composer", "vocal", ...) for honest menu or debug output.
type RelationEdge struct {
	Role    Role   `json:"role" yaml:"role"`
	Person  string `json:"person" yaml:"person"`
	RawType string `json:"raw_type,omitempty" yaml:"raw_type,omitempty"`
}

// Release is one release carrying the recording, as reported by the
// detail fetch.
type Release struct {
	Title string `json:"title" yaml:"title"`

	// Date is the release date in YYYY, YYYY-MM, or YYYY-MM-DD form.
	// Empty when the source has no date for the release.
	Date string `json:"date,omitempty" yaml:"date,omitempty"`
}

// RelationshipGraph is the raw credit graph for one recording. It exists
// only on the fetcher-to-compiler handoff and is discarded once compiled
// into a FactRecord.
type RelationshipGraph struct {
	// RecordingID is the MBID the graph was fetched for.
	RecordingID string `json:"recording_id" yaml:"recording_id"`

	// Title is the recording title from the detail response.
	Title string `json:"title" yaml:"title"`

	// Artists lists the artist-credit names in source order.
	Artists []string `json:"artists" yaml:"artists"`

	// Edges holds every credit relation the source returned, in source order.
	Edges []RelationEdge `json:"edges" yaml:"edges"`

	// Releases lists the releases carrying this recording.
	Releases []Release `json:"releases,omitempty" yaml:"releases,omitempty"`

	// LengthMS is the recording duration in milliseconds, 0 when unknown.
	LengthMS int `json:"length_ms,omitempty" yaml:"length_ms,omitempty"`
}
