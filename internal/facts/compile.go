// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package facts reduces a raw relationship graph to the normalized fact
// record that grounds the generated answer. Compilation is pure: every
// name in the output originated from a credit edge, nothing is inferred,
// and a missing field stays missing.
package facts

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pdiddy/tonearm/pkg/types"
)

// undatedSentinel sorts releases without a date after every dated one.
const undatedSentinel = "9999-99-99"

// Compile builds a FactRecord from a fetched relationship graph. Credit
// edges are bucketed by role and deduplicated by person name in
// first-seen order. The earliest dated release supplies the release
// fields. A graph without a single credit edge compiles to an incomplete
// record with ReasonNoCredits: the source answered, it just knows nothing
// about who made the recording.
func Compile(graph types.RelationshipGraph) types.FactRecord {
	rec := types.FactRecord{
		RecordingID: graph.RecordingID,
		Title:       graph.Title,
		Artist:      joinNames(graph.Artists),
	}

	for _, edge := range graph.Edges {
		switch edge.Role {
		case types.RoleWriter:
			rec.Writers = appendUnique(rec.Writers, edge.Person)
		case types.RoleProducer:
			rec.Producers = appendUnique(rec.Producers, edge.Person)
		case types.RolePerformer:
			rec.Performers = appendUnique(rec.Performers, edge.Person)
		}
	}

	if release, ok := earliestRelease(graph.Releases); ok {
		rec.ReleaseTitle = release.Title
		rec.ReleaseDate = release.Date
	}

	if graph.LengthMS > 0 {
		rec.Duration = formatDuration(graph.LengthMS)
	}

	if len(rec.Writers) == 0 && len(rec.Producers) == 0 && len(rec.Performers) == 0 {
		rec.Reason = types.ReasonNoCredits
	}

	return rec
}

// FromCandidate salvages a partial record from search-stage data when the
// detail fetch failed. The reason keeps "unreachable" distinct from "the
// source has no credits" all the way into the answer.
func FromCandidate(c types.Candidate) types.FactRecord {
	return types.FactRecord{
		RecordingID:  c.ID,
		Title:        c.Title,
		Artist:       c.Artist,
		ReleaseTitle: c.ReleaseTitle,
		ReleaseDate:  c.ReleaseDate,
		Reason:       types.ReasonFetchFailed,
	}
}

// appendUnique appends name unless it is already present, preserving
// first-seen order.
func appendUnique(names []string, name string) []string {
	for _, n := range names {
		if n == name {
			return names
		}
	}
	return append(names, name)
}

// earliestRelease picks the release with the smallest date. Undated
// releases sort last, so a dated release always wins over an undated one.
func earliestRelease(releases []types.Release) (types.Release, bool) {
	if len(releases) == 0 {
		return types.Release{}, false
	}
	sorted := make([]types.Release, len(releases))
	copy(sorted, releases)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sortDate(sorted[i].Date) < sortDate(sorted[j].Date)
	})
	return sorted[0], true
}

func sortDate(d string) string {
	if d == "" {
		return undatedSentinel
	}
	return d
}

// formatDuration renders milliseconds as m:ss.
func formatDuration(ms int) string {
	secs := ms / 1000
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

func joinNames(names []string) string {
	return strings.Join(names, ", ")
}
