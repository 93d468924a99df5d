// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package answer produces the final response from a compiled fact record.
// Two paths exist: a conversational one through the local language model,
// and a deterministic template the pipeline falls back to whenever the
// model errors or times out. The fallback is a first-class answer built
// from the same facts, not an error message. Producer-check verdicts are
// computed from the fact record alone, so the verdict never depends on
// model availability.
package answer

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/tonearm/internal/llm"
	"github.com/pdiddy/tonearm/pkg/types"
)

// Generator formats answers. LLM may be nil, in which case every answer
// takes the deterministic path.
type Generator struct {
	LLM llm.Client
	Log *zap.Logger
}

// Verdict is the outcome of a producer-attribution check.
type Verdict struct {
	// Known is false when the record carries no producer credits, so no
	// yes/no claim can honestly be made.
	Known bool

	// Yes reports whether the checked person appears among the producers.
	// Meaningful only when Known is true.
	Yes bool

	// Producers is the evidence set the verdict was computed from.
	Producers []string
}

// ProducerVerdict checks person against the record's producer credits.
// Matching is case-insensitive and tolerates annotated credit names:
// "Tame Impala" matches "Kevin Parker (Tame Impala)". Identical inputs
// always yield the identical verdict.
func ProducerVerdict(rec types.FactRecord, person string) Verdict {
	v := Verdict{Producers: rec.Producers}
	if len(rec.Producers) == 0 {
		return v
	}
	v.Known = true

	p := strings.ToLower(strings.TrimSpace(person))
	for _, name := range rec.Producers {
		if strings.ToLower(strings.TrimSpace(name)) == p {
			v.Yes = true
			return v
		}
	}
	for _, name := range rec.Producers {
		if strings.Contains(strings.ToLower(name), p) {
			v.Yes = true
			return v
		}
	}
	return v
}

// Answer produces the response text for one query. It never returns an
// error: every model failure degrades to the deterministic template.
func (g *Generator) Answer(ctx context.Context, intent types.QueryIntent, rec types.FactRecord) string {
	if intent.Mode == types.ModeProducerCheck {
		return g.producerAnswer(ctx, intent, rec)
	}
	return g.infoAnswer(ctx, intent, rec)
}

func (g *Generator) infoAnswer(ctx context.Context, intent types.QueryIntent, rec types.FactRecord) string {
	if text, ok := g.generate(ctx, func() (string, error) {
		return renderInfoPrompt(rec, intent.RawText)
	}); ok {
		return text + groundingFooter(rec)
	}
	return FallbackInfo(rec)
}

func (g *Generator) producerAnswer(ctx context.Context, intent types.QueryIntent, rec types.FactRecord) string {
	verdict := ProducerVerdict(rec, intent.CheckedProducer)

	if text, ok := g.generate(ctx, func() (string, error) {
		return renderProducerPrompt(rec, intent.RawText, verdict)
	}); ok {
		return text + evidenceFooter(verdict)
	}
	return FallbackProducer(rec, verdict) + evidenceFooter(verdict)
}

// generate runs one model call, reporting ok=false on any failure so the
// caller falls back. Model trouble is logged, never surfaced.
func (g *Generator) generate(ctx context.Context, render func() (string, error)) (string, bool) {
	if g.LLM == nil {
		return "", false
	}
	prompt, err := render()
	if err != nil {
		return "", false
	}
	text, err := g.LLM.Generate(ctx, prompt)
	if err != nil || strings.TrimSpace(text) == "" {
		if g.Log != nil {
			g.Log.Debug("model unavailable, using fallback", zap.Error(err))
		}
		return "", false
	}
	return strings.TrimSpace(text), true
}

// FallbackInfo renders the deterministic info answer: every compiled fact
// in prose, no model involved.
func FallbackInfo(rec types.FactRecord) string {
	var parts []string

	head := rec.Title
	if head == "" {
		head = "Unknown title"
	}
	if rec.Artist != "" {
		head += " by " + rec.Artist
	}
	parts = append(parts, head+".")

	if rec.ReleaseTitle != "" || rec.ReleaseDate != "" {
		line := "Released"
		if rec.ReleaseTitle != "" {
			line += " on " + rec.ReleaseTitle
		}
		if rec.ReleaseDate != "" {
			line += " (" + rec.ReleaseDate + ")"
		}
		parts = append(parts, line+".")
	}
	if len(rec.Writers) > 0 {
		parts = append(parts, "Written by "+strings.Join(rec.Writers, ", ")+".")
	}
	if len(rec.Producers) > 0 {
		parts = append(parts, "Produced by "+strings.Join(rec.Producers, ", ")+".")
	}
	if rec.Duration != "" {
		parts = append(parts, "Duration: "+rec.Duration+".")
	}

	switch rec.Reason {
	case types.ReasonNoCredits:
		parts = append(parts, "MusicBrainz does not list writer or producer credits for this recording.")
	case types.ReasonFetchFailed:
		parts = append(parts, "I could not retrieve the full credits from MusicBrainz, so this is everything I know from the search results.")
	}

	return strings.Join(parts, " ") + groundingFooter(rec)
}

// FallbackProducer renders the deterministic yes/no answer.
func FallbackProducer(rec types.FactRecord, v Verdict) string {
	title := rec.Title
	if title == "" {
		title = "that track"
	}
	if !v.Known {
		if rec.Reason == types.ReasonFetchFailed {
			return fmt.Sprintf("I could not retrieve the producer credits for %q from MusicBrainz, so I can't say either way.", title)
		}
		return fmt.Sprintf("MusicBrainz does not have producer credit information for %q.", title)
	}
	if v.Yes {
		return fmt.Sprintf("Yes. MusicBrainz lists these producers for %q: %s.", title, strings.Join(v.Producers, ", "))
	}
	return fmt.Sprintf("No. MusicBrainz lists these producers for %q: %s.", title, strings.Join(v.Producers, ", "))
}

func groundingFooter(rec types.FactRecord) string {
	if rec.RecordingID == "" {
		return ""
	}
	return "\n\n(Facts sourced from MusicBrainz: MBID = " + rec.RecordingID + ")"
}

func evidenceFooter(v Verdict) string {
	if !v.Known {
		return "\n\n(Facts: producers not available)"
	}
	return "\n\n(Facts: producers = " + strings.Join(v.Producers, ", ") + ")"
}
