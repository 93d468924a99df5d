// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/pdiddy/tonearm/pkg/types"
)

// OllamaClient calls a local Ollama server's generate endpoint. One
// request, one response; streaming is disabled.
type OllamaClient struct {
	cfg        types.LLMConfig
	httpClient *http.Client
	log        *zap.Logger
}

// NewOllamaClient builds a client from config. A nil logger disables
// debug logging.
func NewOllamaClient(cfg types.LLMConfig, log *zap.Logger) *OllamaClient {
	if log == nil {
		log = zap.NewNop()
	}
	return &OllamaClient{
		cfg:        cfg,
		httpClient: &http.Client{},
		log:        log,
	}
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type generateResponse struct {
	Response string `json:"response"`
	Error    string `json:"error,omitempty"`
}

// Generate sends the prompt to the configured model and returns the
// trimmed completion. The configured timeout bounds the whole exchange.
func (c *OllamaClient) Generate(ctx context.Context, prompt string) (string, error) {
	timeout := c.cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	body, err := json.Marshal(generateRequest{
		Model:  c.cfg.Model,
		Prompt: prompt,
		Stream: false,
	})
	if err != nil {
		return "", fmt.Errorf("marshaling generate request: %w", err)
	}

	url := strings.TrimSuffix(c.cfg.BaseURL, "/") + "/api/generate"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating generate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling ollama: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("ollama returned HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var gr generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return "", fmt.Errorf("decoding ollama response: %w", err)
	}
	if gr.Error != "" {
		return "", fmt.Errorf("ollama error: %s", gr.Error)
	}

	c.log.Debug("generate",
		zap.String("model", c.cfg.Model),
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("chars", len(gr.Response)))

	return strings.TrimSpace(gr.Response), nil
}
