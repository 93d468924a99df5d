// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline sequences one query through parse, search, choose,
// fetch, compile, and answer. The flow is strictly one-directional and
// everything it builds lives for a single query; nothing is cached
// across turns.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/pdiddy/tonearm/internal/answer"
	"github.com/pdiddy/tonearm/internal/chooser"
	"github.com/pdiddy/tonearm/internal/facts"
	"github.com/pdiddy/tonearm/internal/musicbrainz"
	"github.com/pdiddy/tonearm/internal/query"
	"github.com/pdiddy/tonearm/internal/search"
	"github.com/pdiddy/tonearm/pkg/types"
)

// MetadataSource is the slice of the MusicBrainz client the pipeline
// uses: one search call and one detail fetch.
type MetadataSource interface {
	SearchRecordings(ctx context.Context, title, artist string) ([]musicbrainz.RecordingHit, error)
	RecordingRelations(ctx context.Context, mbid string) (types.RelationshipGraph, error)
}

// Pipeline wires the stages for one query at a time.
type Pipeline struct {
	Source  MetadataSource
	Chooser chooser.Chooser
	Gen     *answer.Generator
	Log     *zap.Logger
}

// Result is one answered query.
type Result struct {
	Intent types.QueryIntent
	Record types.FactRecord
	Answer string
}

// Run executes the full pipeline for one line of user input. Errors a
// caller must handle: query.ErrAmbiguous (ask the user to rephrase),
// search.ErrNoCandidates (nothing found), chooser.ErrAborted (user
// cancelled; no fetch or model call was made), and context errors. A
// failed detail fetch is not an error here: the answer is produced from
// the salvaged search-stage facts with honest phrasing.
func (p *Pipeline) Run(ctx context.Context, text string) (Result, error) {
	intent, err := query.Parse(text)
	if err != nil {
		return Result{}, err
	}
	p.log().Debug("parsed query",
		zap.String("title", intent.Title),
		zap.String("artist", intent.Artist),
		zap.String("mode", string(intent.Mode)))

	candidates, err := search.Candidates(ctx, p.Source, intent)
	if err != nil {
		if errors.Is(err, search.ErrNoCandidates) || errors.Is(err, context.Canceled) {
			return Result{}, err
		}
		// An unreachable search service surfaces the same way as an
		// empty result: the user sees "not found", not a stack trace.
		p.log().Debug("search failed", zap.Error(err))
		return Result{}, fmt.Errorf("%w: %v", search.ErrNoCandidates, err)
	}

	id, err := p.Chooser.Choose(candidates)
	if err != nil {
		return Result{}, err
	}

	record, err := p.compileFacts(ctx, id, candidates)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Intent: intent,
		Record: record,
		Answer: p.Gen.Answer(ctx, intent, record),
	}, nil
}

// compileFacts fetches the relationship graph for the chosen recording
// and compiles it. A fetch failure degrades to a partial record built
// from the chosen candidate's search-stage fields.
func (p *Pipeline) compileFacts(ctx context.Context, id string, candidates []types.Candidate) (types.FactRecord, error) {
	graph, err := p.Source.RecordingRelations(ctx, id)
	if err == nil {
		return facts.Compile(graph), nil
	}
	if ctx.Err() != nil {
		return types.FactRecord{}, ctx.Err()
	}
	if !errors.Is(err, musicbrainz.ErrFetchFailed) {
		return types.FactRecord{}, err
	}

	p.log().Debug("detail fetch failed, salvaging search facts", zap.Error(err))
	return facts.FromCandidate(candidateByID(candidates, id)), nil
}

func candidateByID(candidates []types.Candidate, id string) types.Candidate {
	for _, c := range candidates {
		if c.ID == id {
			return c
		}
	}
	return types.Candidate{ID: id}
}

func (p *Pipeline) log() *zap.Logger {
	if p.Log == nil {
		return zap.NewNop()
	}
	return p.Log
}

// UserMessage translates a pipeline error into the line shown to the
// user. Unknown errors fall through to a generic phrasing; nothing here
// is fatal to the process.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, query.ErrAmbiguous):
		return "I couldn't extract a song title from that. Try: Tell me about Shape of You by Ed Sheeran"
	case errors.Is(err, search.ErrNoCandidates):
		return "No matching recording found on MusicBrainz."
	case errors.Is(err, chooser.ErrAborted):
		return "Okay, cancelled."
	default:
		return fmt.Sprintf("Something went wrong with that query: %v", err)
	}
}
