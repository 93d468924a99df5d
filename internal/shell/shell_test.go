// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package shell

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/pdiddy/tonearm/internal/answer"
	"github.com/pdiddy/tonearm/internal/musicbrainz"
	"github.com/pdiddy/tonearm/internal/pipeline"
	"github.com/pdiddy/tonearm/pkg/types"
)

// stubSource serves canned hits and graphs without a network.
type stubSource struct {
	hits   []musicbrainz.RecordingHit
	graphs map[string]types.RelationshipGraph
}

func (s *stubSource) SearchRecordings(_ context.Context, _, _ string) ([]musicbrainz.RecordingHit, error) {
	return s.hits, nil
}

func (s *stubSource) RecordingRelations(_ context.Context, mbid string) (types.RelationshipGraph, error) {
	g, ok := s.graphs[mbid]
	if !ok {
		return types.RelationshipGraph{}, musicbrainz.ErrFetchFailed
	}
	return g, nil
}

func runShell(t *testing.T, src pipeline.MetadataSource, input string) string {
	t.Helper()
	var out bytes.Buffer
	sh := &Shell{
		Pipeline: &pipeline.Pipeline{Source: src, Gen: &answer.Generator{}},
		In:       strings.NewReader(input),
		Out:      &out,
	}
	if err := sh.Run(context.Background()); err != nil {
		t.Fatalf("shell: %v", err)
	}
	return out.String()
}

func TestShellExit(t *testing.T) {
	out := runShell(t, &stubSource{}, "exit\n")
	if !strings.Contains(out, "Goodbye!") {
		t.Errorf("missing goodbye:\n%s", out)
	}
}

func TestShellEOFExits(t *testing.T) {
	out := runShell(t, &stubSource{}, "")
	if !strings.Contains(out, "Goodbye!") {
		t.Errorf("missing goodbye on EOF:\n%s", out)
	}
}

func TestShellHelpAndExamples(t *testing.T) {
	out := runShell(t, &stubSource{}, "help\nexamples\nquit\n")
	if !strings.Contains(out, "Commands: help, examples, exit, quit") {
		t.Errorf("missing help text:\n%s", out)
	}
	if strings.Count(out, "Tell me about Bohemian Rhapsody by Queen") < 2 {
		t.Errorf("examples not printed by both commands:\n%s", out)
	}
}

func TestShellEmptyLineReprompts(t *testing.T) {
	out := runShell(t, &stubSource{}, "\n\nexit\n")
	if got := strings.Count(out, ">> "); got != 3 {
		t.Errorf("prompted %d times, want 3:\n%s", got, out)
	}
}

func TestShellNotFoundReturnsToLoop(t *testing.T) {
	out := runShell(t, &stubSource{}, "Tell me about Nonexistent Song\nexit\n")
	if !strings.Contains(out, "No matching recording found on MusicBrainz.") {
		t.Errorf("missing not-found message:\n%s", out)
	}
	if !strings.Contains(out, "Goodbye!") {
		t.Errorf("loop did not continue to the exit command:\n%s", out)
	}
}

func TestShellDisambiguationSharesInput(t *testing.T) {
	src := &stubSource{
		hits: []musicbrainz.RecordingHit{
			{ID: "a", Title: "Skeletons", Artist: "Travis Scott", Score: 100},
			{ID: "b", Title: "Skeletons", Artist: "Yeah Yeah Yeahs", Score: 95},
		},
		graphs: map[string]types.RelationshipGraph{
			"b": {
				RecordingID: "b",
				Title:       "Skeletons",
				Artists:     []string{"Yeah Yeah Yeahs"},
				Edges: []types.RelationEdge{
					{Role: types.RoleProducer, Person: "Nick Launay"},
				},
			},
		},
	}

	// The line after the query answers the menu.
	out := runShell(t, src, "Tell me about Skeletons\n2\nexit\n")
	if !strings.Contains(out, "which one do you mean?") {
		t.Errorf("menu not shown:\n%s", out)
	}
	if !strings.Contains(out, "Nick Launay") {
		t.Errorf("answer for the chosen candidate missing:\n%s", out)
	}
}

func TestShellAbortReturnsToLoop(t *testing.T) {
	src := &stubSource{
		hits: []musicbrainz.RecordingHit{
			{ID: "a", Title: "Skeletons", Score: 100},
			{ID: "b", Title: "Skeletons", Score: 95},
		},
	}
	out := runShell(t, src, "Tell me about Skeletons\nc\nexit\n")
	if !strings.Contains(out, "Okay, cancelled.") {
		t.Errorf("missing cancel message:\n%s", out)
	}
	if !strings.Contains(out, "Goodbye!") {
		t.Errorf("loop did not continue after abort:\n%s", out)
	}
}
