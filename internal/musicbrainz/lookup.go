// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package musicbrainz

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/pdiddy/tonearm/internal/httputil"
	"github.com/pdiddy/tonearm/pkg/types"
)

// relationsInc asks the lookup endpoint for artist credits, releases, and
// every relation family that can carry writer/producer/performer credits.
const relationsInc = "artist-credits+releases+work-rels+recording-rels+artist-rels"

// RecordingRelations fetches the full credit graph for one recording MBID.
// Any transport failure, non-200 status, or response missing the required
// id/title fields is reported as ErrFetchFailed so the compiler can tell
// "unreachable" apart from "no credits".
func (c *Client) RecordingRelations(ctx context.Context, mbid string) (types.RelationshipGraph, error) {
	if mbid == "" {
		return types.RelationshipGraph{}, fmt.Errorf("%w: empty recording id", ErrFetchFailed)
	}

	params := url.Values{
		"fmt": {"json"},
		"inc": {relationsInc},
	}
	reqURL := c.baseURL() + "/recording/" + url.PathEscape(mbid) + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return types.RelationshipGraph{}, fmt.Errorf("%w: creating lookup request: %v", ErrFetchFailed, err)
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	if err := c.limiter.Wait(ctx); err != nil {
		return types.RelationshipGraph{}, err
	}

	resp, err := httputil.DoWithRetry(ctx, c.httpClient, req, 0)
	if err != nil {
		return types.RelationshipGraph{}, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return types.RelationshipGraph{}, fmt.Errorf("%w: HTTP %d", ErrFetchFailed, resp.StatusCode)
	}

	var lr lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&lr); err != nil {
		return types.RelationshipGraph{}, fmt.Errorf("%w: parsing lookup response: %v", ErrFetchFailed, err)
	}
	if lr.ID == "" || lr.Title == "" {
		return types.RelationshipGraph{}, fmt.Errorf("%w: response missing recording id or title", ErrFetchFailed)
	}

	graph := types.RelationshipGraph{
		RecordingID: lr.ID,
		Title:       lr.Title,
		LengthMS:    lr.Length,
	}
	for _, ac := range lr.ArtistCredit {
		if ac.Name != "" {
			graph.Artists = append(graph.Artists, ac.Name)
		}
	}
	for _, rel := range lr.Releases {
		if rel.Title != "" {
			graph.Releases = append(graph.Releases, types.Release{Title: rel.Title, Date: rel.Date})
		}
	}
	for _, rel := range lr.Relations {
		name := rel.personName()
		if name == "" {
			continue
		}
		graph.Edges = append(graph.Edges, types.RelationEdge{
			Role:    roleFor(rel.Type),
			Person:  name,
			RawType: rel.Type,
		})
	}

	c.log.Debug("recording relations",
		zap.String("mbid", mbid),
		zap.Int("edges", len(graph.Edges)),
		zap.Int("releases", len(graph.Releases)))

	return graph, nil
}

// Lookup endpoint JSON structures.
type lookupResponse struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Length       int            `json:"length"`
	ArtistCredit []artistCredit `json:"artist-credit"`
	Releases     []releaseInfo  `json:"releases"`
	Relations    []relation     `json:"relations"`
}

type relation struct {
	Type         string          `json:"type"`
	Artist       *relationArtist `json:"artist"`
	TargetCredit string          `json:"target-credit"`
}

type relationArtist struct {
	Name string `json:"name"`
}

// personName resolves the credited name for a relation, preferring the
// nested artist record over the free-text target credit.
func (r relation) personName() string {
	if r.Artist != nil && r.Artist.Name != "" {
		return r.Artist.Name
	}
	return r.TargetCredit
}
