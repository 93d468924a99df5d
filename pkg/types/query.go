// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the tonearm pipeline:
// the parsed query intent, search candidates, the relationship graph
// returned by MusicBrainz, the compiled fact record, and configuration.
package types

// QueryMode distinguishes the two question shapes the parser recognizes.
type QueryMode string

const (
	// ModeInfo is a general "tell me about this song" question.
	ModeInfo QueryMode = "info"

	// ModeProducerCheck is a yes/no "is this song produced by X" question.
	ModeProducerCheck QueryMode = "producer_check"
)

// QueryIntent is the parsed form of one free-text user query. It is built
// once per input line and never mutated afterwards.
type QueryIntent struct {
	// RawText is the original user input, untrimmed of meaning but
	// whitespace-normalized.
	RawText string `json:"raw_text" yaml:"raw_text"`

	// Title is the best-effort song title extracted from the text.
	Title string `json:"title" yaml:"title"`

	// Artist is the performer hint, when one could be isolated. Empty
	// means no artist hint was found (the search runs title-only).
	Artist string `json:"artist,omitempty" yaml:"artist,omitempty"`

	// Mode selects the answer path: info or producer check.
	Mode QueryMode `json:"mode" yaml:"mode"`

	// CheckedProducer is the person named in a producer-check question.
	// Set only when Mode is ModeProducerCheck.
	CheckedProducer string `json:"checked_producer,omitempty" yaml:"checked_producer,omitempty"`
}

// HasArtist reports whether the parser isolated a performer hint.
func (q QueryIntent) HasArtist() bool { return q.Artist != "" }
