// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package llm is the boundary to the local language model runtime. The
// pipeline only ever needs one operation: turn a prompt into text, within
// a bounded time. Model name and timeout travel with the config on every
// call; there is no process-wide client state.
package llm

import "context"

// Client generates a text completion for a prompt. Implementations must
// honor context cancellation; the answer stage treats any error or
// timeout as "model unavailable" and falls back to its deterministic
// template.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
