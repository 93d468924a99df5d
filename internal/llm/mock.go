// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package llm

import "context"

// Mock is a canned Client for tests. When Err is set every call fails,
// which is how tests simulate an unreachable model.
type Mock struct {
	Response string
	Err      error

	// Prompts records every prompt received, for assertions on what the
	// answer stage actually sent.
	Prompts []string
}

// Generate returns the canned response or error.
func (m *Mock) Generate(_ context.Context, prompt string) (string, error) {
	m.Prompts = append(m.Prompts, prompt)
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}
