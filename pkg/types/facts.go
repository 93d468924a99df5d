// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// IncompleteReason explains why a fact record is missing information.
// The distinction matters to the answer phrasing: "the source has no
// credits" reads differently from "the source was unreachable".
type IncompleteReason string

const (
	// ReasonNone marks a fully compiled record.
	ReasonNone IncompleteReason = ""

	// ReasonNoCredits means the detail fetch succeeded but the source
	// carries no credit relations for the recording.
	ReasonNoCredits IncompleteReason = "no_credits"

	// ReasonFetchFailed means the detail fetch was unreachable or
	// returned a malformed response; only search-stage facts survive.
	ReasonFetchFailed IncompleteReason = "fetch_failed"
)

// FactRecord is the normalized, deduplicated summary of a relationship
// graph. Every name in Writers, Producers, and Performers originated from
// a relation edge; the compiler never invents a credit. The record is
// immutable once built and discarded after the answer is produced.
type FactRecord struct {
	// RecordingID is the MBID the facts were compiled from, kept for the
	// grounding footer on answers.
	RecordingID string `json:"recording_id" yaml:"recording_id"`

	// Title is the recording title.
	Title string `json:"title" yaml:"title"`

	// Artist is the joined artist credit.
	Artist string `json:"artist" yaml:"artist"`

	// Writers, Producers, and Performers are the deduplicated credit
	// buckets in first-seen order.
	Writers    []string `json:"writers,omitempty" yaml:"writers,omitempty"`
	Producers  []string `json:"producers,omitempty" yaml:"producers,omitempty"`
	Performers []string `json:"performers,omitempty" yaml:"performers,omitempty"`

	// ReleaseTitle and ReleaseDate describe the earliest dated release.
	// Both empty when the source listed no releases.
	ReleaseTitle string `json:"release_title,omitempty" yaml:"release_title,omitempty"`
	ReleaseDate  string `json:"release_date,omitempty" yaml:"release_date,omitempty"`

	// Duration is the recording length formatted m:ss, empty when unknown.
	Duration string `json:"duration,omitempty" yaml:"duration,omitempty"`

	// Reason is ReasonNone for a complete record, otherwise it names the
	// gap the answer must disclose.
	Reason IncompleteReason `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// Complete reports whether the record compiled without gaps.
func (f FactRecord) Complete() bool { return f.Reason == ReasonNone }
