// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package musicbrainz is a typed client for the MusicBrainz web service
// (ws/2). It covers the two calls the pipeline needs: recording search and
// recording relations lookup. Every request carries the mandatory
// descriptive User-Agent and passes through a client-side one-request-per-
// second courtesy throttle.
package musicbrainz

import (
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/pdiddy/tonearm/pkg/types"
)

// ErrFetchFailed marks a detail fetch that was unreachable or returned a
// malformed response. Callers must keep it distinct from "the source has
// no data": the answer phrasing depends on the difference.
var ErrFetchFailed = errors.New("musicbrainz fetch failed")

// Client calls the MusicBrainz web service.
type Client struct {
	cfg        types.MusicBrainzConfig
	httpClient *http.Client
	limiter    *rate.Limiter
	log        *zap.Logger
}

// NewClient builds a Client from config. A nil logger disables debug
// logging.
func NewClient(cfg types.MusicBrainzConfig, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 1
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
		log:        log,
	}
}

// baseURL returns the configured service root without a trailing slash.
func (c *Client) baseURL() string {
	return strings.TrimSuffix(c.cfg.BaseURL, "/")
}

// roleFor maps a MusicBrainz relation type onto a credit role. The
// service uses free-ish type names ("composer", "writer", "lyricist",
// "producer", "vocal", "instrument", ...), so matching is by fragment.
func roleFor(relType string) types.Role {
	t := strings.ToLower(relType)
	switch {
	case strings.Contains(t, "produc"):
		return types.RoleProducer
	case strings.Contains(t, "compos"),
		strings.Contains(t, "writ"),
		strings.Contains(t, "lyric"):
		return types.RoleWriter
	case strings.Contains(t, "perform"),
		strings.Contains(t, "vocal"),
		strings.Contains(t, "instrument"):
		return types.RolePerformer
	default:
		return types.RoleOther
	}
}

// joinArtistCredit flattens an artist-credit list into one display string.
func joinArtistCredit(credits []artistCredit) string {
	var names []string
	for _, ac := range credits {
		if ac.Name != "" {
			names = append(names, ac.Name)
		}
	}
	return strings.Join(names, ", ")
}

// artistCredit is one entry of a MusicBrainz artist-credit list.
type artistCredit struct {
	Name string `json:"name"`
}

// releaseInfo is one release attached to a recording.
type releaseInfo struct {
	Title string `json:"title"`
	Date  string `json:"date"`
}
