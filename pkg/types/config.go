// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with every request.
	// MusicBrainz requires a descriptive identifier with contact
	// information (e.g. "tonearm/0.1 (ops@example.org)").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// MusicBrainzConfig holds settings for the metadata search and fetch stages.
type MusicBrainzConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the MusicBrainz web service root (default
	// "https://musicbrainz.org/ws/2"). Overridable for tests.
	BaseURL string `json:"base_url" yaml:"base_url"`

	// SearchLimit is the number of raw hits requested from the search
	// endpoint before ranking (default 10). Ranking still caps the
	// presented candidates at three.
	SearchLimit int `json:"search_limit" yaml:"search_limit"`

	// RequestsPerSecond is the client-side courtesy throttle. MusicBrainz
	// asks anonymous clients to stay at or below one request per second
	// (default 1).
	RequestsPerSecond float64 `json:"requests_per_second" yaml:"requests_per_second"`
}

// LLMConfig holds per-call settings for the local language model. There is
// no process-wide client state: every generation call receives the model
// name and timeout from this struct.
type LLMConfig struct {
	// BaseURL is the Ollama HTTP API root (default "http://localhost:11434").
	BaseURL string `json:"base_url" yaml:"base_url"`

	// Model is the model identifier passed on each generate call
	// (default "mistral").
	Model string `json:"model" yaml:"model"`

	// Timeout bounds one generation call. On expiry the answer stage
	// falls back to the deterministic template (default 60s).
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	MusicBrainz MusicBrainzConfig `json:"musicbrainz" yaml:"musicbrainz"`
	LLM         LLMConfig         `json:"llm" yaml:"llm"`
}

// Defaults fills zero-valued fields with working defaults.
func (c *PipelineConfig) Defaults() {
	if c.MusicBrainz.BaseURL == "" {
		c.MusicBrainz.BaseURL = "https://musicbrainz.org/ws/2"
	}
	if c.MusicBrainz.SearchLimit <= 0 {
		c.MusicBrainz.SearchLimit = 10
	}
	if c.MusicBrainz.RequestsPerSecond <= 0 {
		c.MusicBrainz.RequestsPerSecond = 1
	}
	if c.MusicBrainz.Timeout <= 0 {
		c.MusicBrainz.Timeout = 20 * time.Second
	}
	if c.MusicBrainz.UserAgent == "" {
		c.MusicBrainz.UserAgent = "tonearm/0.1 (https://github.com/pdiddy/tonearm)"
	}
	if c.LLM.BaseURL == "" {
		c.LLM.BaseURL = "http://localhost:11434"
	}
	if c.LLM.Model == "" {
		c.LLM.Model = "mistral"
	}
	if c.LLM.Timeout <= 0 {
		c.LLM.Timeout = 60 * time.Second
	}
}
