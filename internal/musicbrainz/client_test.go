// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package musicbrainz

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/tonearm/pkg/types"
)

func testClient(baseURL string) *Client {
	return NewClient(types.MusicBrainzConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   5 * time.Second,
			UserAgent: "tonearm-test/0.1 (test@example.org)",
		},
		BaseURL:           baseURL,
		SearchLimit:       10,
		RequestsPerSecond: 1000, // no throttling in tests
	}, nil)
}

const sampleSearchJSON = `{
  "count": 2,
  "recordings": [
    {
      "id": "mbid-1",
      "score": 100,
      "title": "Shape of You",
      "artist-credit": [{"name": "Ed Sheeran"}],
      "releases": [{"title": "÷", "date": "2017-03-03"}]
    },
    {
      "id": "mbid-2",
      "score": 92,
      "title": "Shape of You (acoustic)",
      "artist-credit": [{"name": "Ed Sheeran"}]
    },
    {
      "score": 90,
      "title": "hit without an id is dropped"
    }
  ]
}`

func TestSearchRecordings(t *testing.T) {
	var gotQuery, gotUA string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("query")
		gotUA = r.Header.Get("User-Agent")
		assert.Equal(t, "/recording/", r.URL.Path)
		assert.Equal(t, "json", r.URL.Query().Get("fmt"))
		w.Write([]byte(sampleSearchJSON))
	}))
	defer ts.Close()

	hits, err := testClient(ts.URL).SearchRecordings(context.Background(), "Shape of You", "Ed Sheeran")
	require.NoError(t, err)

	assert.Equal(t, `recording:"Shape of You" AND artist:"Ed Sheeran"`, gotQuery)
	assert.Equal(t, "tonearm-test/0.1 (test@example.org)", gotUA)

	require.Len(t, hits, 2)
	assert.Equal(t, "mbid-1", hits[0].ID)
	assert.Equal(t, "Ed Sheeran", hits[0].Artist)
	assert.Equal(t, 100, hits[0].Score)
	assert.Equal(t, "÷", hits[0].ReleaseTitle)
	assert.Equal(t, "2017-03-03", hits[0].ReleaseDate)
	assert.Empty(t, hits[1].ReleaseTitle)
}

func TestSearchRecordingsTitleOnly(t *testing.T) {
	var gotQuery string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("query")
		w.Write([]byte(`{"recordings": []}`))
	}))
	defer ts.Close()

	hits, err := testClient(ts.URL).SearchRecordings(context.Background(), "Bohemian Rhapsody", "")
	require.NoError(t, err)
	assert.Empty(t, hits)
	assert.Equal(t, `recording:"Bohemian Rhapsody"`, gotQuery)
}

func TestSearchRecordingsEscapesQuotes(t *testing.T) {
	var gotQuery string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("query")
		w.Write([]byte(`{"recordings": []}`))
	}))
	defer ts.Close()

	_, err := testClient(ts.URL).SearchRecordings(context.Background(), `say "hello"`, "")
	require.NoError(t, err)
	assert.Equal(t, `recording:"say \"hello\""`, gotQuery)
}

func TestSearchRecordingsEscapesBackslashes(t *testing.T) {
	var gotQuery string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("query")
		w.Write([]byte(`{"recordings": []}`))
	}))
	defer ts.Close()

	// A trailing backslash must not swallow the closing quote.
	_, err := testClient(ts.URL).SearchRecordings(context.Background(), `AC\DC Thunder\`, "")
	require.NoError(t, err)
	assert.Equal(t, `recording:"AC\\DC Thunder\\"`, gotQuery)
}

func TestSearchRecordingsHTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer ts.Close()

	_, err := testClient(ts.URL).SearchRecordings(context.Background(), "anything", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 400")
}

const sampleLookupJSON = `{
  "id": "mbid-1",
  "title": "Shape of You",
  "length": 233712,
  "artist-credit": [{"name": "Ed Sheeran"}],
  "releases": [
    {"title": "Deluxe Reissue", "date": "2019-05-01"},
    {"title": "÷", "date": "2017-03-03"}
  ],
  "relations": [
    {"type": "composer", "artist": {"name": "Ed Sheeran"}},
    {"type": "producer", "artist": {"name": "Steve Mac"}},
    {"type": "producer", "artist": {"name": "Johnny McDaid"}},
    {"type": "vocal", "artist": {"name": "Ed Sheeran"}},
    {"type": "mix", "target-credit": "Mark Stent"},
    {"type": "producer"}
  ]
}`

func TestRecordingRelations(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/recording/mbid-1", r.URL.Path)
		assert.Contains(t, r.URL.Query().Get("inc"), "artist-rels")
		w.Write([]byte(sampleLookupJSON))
	}))
	defer ts.Close()

	graph, err := testClient(ts.URL).RecordingRelations(context.Background(), "mbid-1")
	require.NoError(t, err)

	assert.Equal(t, "mbid-1", graph.RecordingID)
	assert.Equal(t, "Shape of You", graph.Title)
	assert.Equal(t, []string{"Ed Sheeran"}, graph.Artists)
	assert.Equal(t, 233712, graph.LengthMS)
	require.Len(t, graph.Releases, 2)

	// The producer relation without any name is dropped; the rest keep
	// source order.
	require.Len(t, graph.Edges, 5)
	assert.Equal(t, types.RelationEdge{Role: types.RoleWriter, Person: "Ed Sheeran", RawType: "composer"}, graph.Edges[0])
	assert.Equal(t, types.RoleProducer, graph.Edges[1].Role)
	assert.Equal(t, "Steve Mac", graph.Edges[1].Person)
	assert.Equal(t, types.RolePerformer, graph.Edges[3].Role)
	assert.Equal(t, types.RelationEdge{Role: types.RoleOther, Person: "Mark Stent", RawType: "mix"}, graph.Edges[4])
}

func TestRecordingRelationsFetchFailed(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"http error", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}},
		{"malformed body", func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(`{"id": "mbid-1", "title":`))
		}},
		{"missing title", func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(`{"id": "mbid-1"}`))
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(tt.handler)
			defer ts.Close()

			_, err := testClient(ts.URL).RecordingRelations(context.Background(), "mbid-1")
			assert.ErrorIs(t, err, ErrFetchFailed)
		})
	}
}

func TestRoleFor(t *testing.T) {
	tests := []struct {
		relType string
		want    types.Role
	}{
		{"composer", types.RoleWriter},
		{"writer", types.RoleWriter},
		{"lyricist", types.RoleWriter},
		{"producer", types.RoleProducer},
		{"co-producer", types.RoleProducer},
		{"performer", types.RolePerformer},
		{"vocal", types.RolePerformer},
		{"instrument", types.RolePerformer},
		{"mix", types.RoleOther},
		{"", types.RoleOther},
	}
	for _, tt := range tests {
		t.Run(tt.relType, func(t *testing.T) {
			if got := roleFor(tt.relType); got != tt.want {
				t.Errorf("roleFor(%q) = %q, want %q", tt.relType, got, tt.want)
			}
		})
	}
}
