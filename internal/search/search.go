// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search turns raw MusicBrainz recording hits into a short ranked
// candidate list for disambiguation. Ranking policy: an exact artist match
// always outranks everything else when the query named an artist, then the
// service's own relevance score, with title string-similarity as the
// tie-break. At most three candidates are kept so the interactive chooser
// stays tractable.
package search

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/agext/levenshtein"

	"github.com/pdiddy/tonearm/internal/musicbrainz"
	"github.com/pdiddy/tonearm/pkg/types"
)

// TopK caps the candidate list presented to the user.
const TopK = 3

// ErrNoCandidates means the search yielded zero usable hits. The caller
// surfaces it as a "not found" message, never as a crash.
var ErrNoCandidates = errors.New("no matching recordings found")

// Provider is the slice of the MusicBrainz client this stage needs.
type Provider interface {
	SearchRecordings(ctx context.Context, title, artist string) ([]musicbrainz.RecordingHit, error)
}

// Candidates searches for the intent's title (and artist, when present)
// and returns the ranked top candidates. If an artist-constrained search
// comes back empty, the title is retried alone before giving up: the
// artist hint may simply be wrong or spelled differently than the credit.
func Candidates(ctx context.Context, p Provider, intent types.QueryIntent) ([]types.Candidate, error) {
	hits, err := p.SearchRecordings(ctx, intent.Title, intent.Artist)
	if err != nil {
		return nil, err
	}

	if len(hits) == 0 && intent.HasArtist() {
		hits, err = p.SearchRecordings(ctx, intent.Title, "")
		if err != nil {
			return nil, err
		}
	}

	if len(hits) == 0 {
		return nil, ErrNoCandidates
	}

	return Rank(hits, intent), nil
}

// Rank scores the hits against the intent and returns at most TopK
// candidates, best first. The sort is stable so equal scores keep the
// service's own ordering.
func Rank(hits []musicbrainz.RecordingHit, intent types.QueryIntent) []types.Candidate {
	candidates := make([]types.Candidate, 0, len(hits))
	for _, h := range hits {
		candidates = append(candidates, types.Candidate{
			ID:           h.ID,
			Title:        h.Title,
			Artist:       h.Artist,
			Score:        score(h, intent),
			ReleaseTitle: h.ReleaseTitle,
			ReleaseDate:  h.ReleaseDate,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	if len(candidates) > TopK {
		candidates = candidates[:TopK]
	}
	return candidates
}

// score folds the ranking signals into one value. The exact-artist bonus
// (1.0) exceeds the maximum any non-exact hit can reach (0.4 containment
// + 0.35 service + 0.15 title = 0.9), which is what guarantees an exact
// artist match ranks first whenever one exists.
func score(h musicbrainz.RecordingHit, intent types.QueryIntent) float64 {
	s := 0.0
	if intent.HasArtist() {
		s += artistBonus(h.Artist, intent.Artist)
	}
	svc := float64(h.Score) / 100.0
	if svc > 1.0 {
		svc = 1.0
	}
	s += 0.35 * svc
	s += 0.15 * titleSimilarity(h.Title, intent.Title)
	return s
}

// artistBonus compares the queried artist against the hit's credit,
// case-insensitively. Exact equality earns the full bonus; a credit that
// merely contains the queried name (feat. credits, joined credits) earns
// a partial one, so it can never outrank an exact match.
func artistBonus(credit, queried string) float64 {
	c := strings.ToLower(strings.TrimSpace(credit))
	q := strings.ToLower(strings.TrimSpace(queried))
	switch {
	case c == "" || q == "":
		return 0
	case c == q:
		return 1.0
	case strings.Contains(c, q):
		return 0.4
	}
	return 0
}

// titleSimilarity returns a 0..1 similarity between the hit title and the
// queried title.
func titleSimilarity(a, b string) float64 {
	return levenshtein.Similarity(strings.ToLower(a), strings.ToLower(b), nil)
}
