// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/tonearm/pkg/types"
)

func TestOllamaGenerate(t *testing.T) {
	var got generateRequest
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(generateResponse{Response: "  A grounded answer.\n"})
	}))
	defer ts.Close()

	c := NewOllamaClient(types.LLMConfig{BaseURL: ts.URL, Model: "mistral", Timeout: 5 * time.Second}, nil)
	out, err := c.Generate(context.Background(), "FACTS: ...")
	require.NoError(t, err)

	assert.Equal(t, "A grounded answer.", out)
	assert.Equal(t, "mistral", got.Model)
	assert.Equal(t, "FACTS: ...", got.Prompt)
	assert.False(t, got.Stream)
}

func TestOllamaGenerateHTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer ts.Close()

	c := NewOllamaClient(types.LLMConfig{BaseURL: ts.URL, Model: "missing", Timeout: 5 * time.Second}, nil)
	_, err := c.Generate(context.Background(), "prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 404")
}

func TestOllamaGenerateAPIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(generateResponse{Error: "out of memory"})
	}))
	defer ts.Close()

	c := NewOllamaClient(types.LLMConfig{BaseURL: ts.URL, Model: "mistral", Timeout: 5 * time.Second}, nil)
	_, err := c.Generate(context.Background(), "prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of memory")
}

func TestOllamaGenerateTimeout(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		json.NewEncoder(w).Encode(generateResponse{Response: "too late"})
	}))
	defer ts.Close()

	c := NewOllamaClient(types.LLMConfig{BaseURL: ts.URL, Model: "mistral", Timeout: 20 * time.Millisecond}, nil)
	_, err := c.Generate(context.Background(), "prompt")
	assert.Error(t, err)
}
