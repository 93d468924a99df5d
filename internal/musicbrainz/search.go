// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package musicbrainz

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/tonearm/internal/httputil"
)

// RecordingHit is one raw recording returned by the search endpoint,
// before ranking.
type RecordingHit struct {
	// ID is the recording MBID.
	ID string

	// Title is the recording title.
	Title string

	// Artist is the joined artist credit.
	Artist string

	// Score is the service's own relevance score, 0-100.
	Score int

	// ReleaseTitle and ReleaseDate describe the first release attached
	// to the hit, when present.
	ReleaseTitle string
	ReleaseDate  string
}

// SearchRecordings queries the recording search endpoint with a Lucene
// query built from the title and optional artist. It returns the raw hits
// in service order; ranking and the three-candidate cap happen in the
// search stage. Zero hits is not an error here.
func (c *Client) SearchRecordings(ctx context.Context, title, artist string) ([]RecordingHit, error) {
	if title == "" {
		return nil, fmt.Errorf("search requires a title")
	}

	q := `recording:"` + luceneEscape(title) + `"`
	if artist != "" {
		q += ` AND artist:"` + luceneEscape(artist) + `"`
	}

	limit := c.cfg.SearchLimit
	if limit <= 0 {
		limit = 10
	}

	params := url.Values{
		"query": {q},
		"fmt":   {"json"},
		"limit": {fmt.Sprintf("%d", limit)},
	}
	reqURL := c.baseURL() + "/recording/?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating search request: %w", err)
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	resp, err := httputil.DoWithRetry(ctx, c.httpClient, req, 0)
	if err != nil {
		return nil, fmt.Errorf("recording search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("recording search returned HTTP %d", resp.StatusCode)
	}

	var sr searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("parsing search response: %w", err)
	}

	var hits []RecordingHit
	for _, rec := range sr.Recordings {
		// A hit without an MBID cannot be fetched later; skip it rather
		// than carrying an unusable candidate forward.
		if rec.ID == "" || rec.Title == "" {
			continue
		}
		hit := RecordingHit{
			ID:     rec.ID,
			Title:  rec.Title,
			Artist: joinArtistCredit(rec.ArtistCredit),
			Score:  rec.Score,
		}
		if len(rec.Releases) > 0 {
			hit.ReleaseTitle = rec.Releases[0].Title
			hit.ReleaseDate = rec.Releases[0].Date
		}
		hits = append(hits, hit)
	}

	c.log.Debug("recording search",
		zap.String("query", q),
		zap.Int("hits", len(hits)))

	return hits, nil
}

// luceneEscape neutralizes embedded backslashes and quotes so user text
// cannot break out of the quoted query term. Backslashes go first, or
// the escapes added for quotes would themselves be doubled.
func luceneEscape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}

// Search endpoint JSON structures.
type searchResponse struct {
	Recordings []searchRecording `json:"recordings"`
}

type searchRecording struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Score        int            `json:"score"`
	ArtistCredit []artistCredit `json:"artist-credit"`
	Releases     []releaseInfo  `json:"releases"`
}
