// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package summarize turns search snippets into a single answer per entity via
// a chat-completion API.
package summarize

import "context"

// Summarizer produces the answer text for one entity. The snippets argument
// is the concatenated search context for that entity. Tests supply a mock;
// production uses the Groq client.
type Summarizer interface {
	Summarize(ctx context.Context, entity, snippets string) (string, error)
}
