// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package summarize

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/shashankmutyala/AI-Data-Extraction-Dashboard/internal/httputil"
	"github.com/shashankmutyala/AI-Data-Extraction-Dashboard/pkg/types"
)

// groqAPIBase is the Groq chat-completion endpoint. Declared as a var so
// tests can substitute an httptest server.
var groqAPIBase = "https://api.groq.com/openai/v1/chat/completions"

// Groq calls Groq's OpenAI-compatible chat-completion API.
type Groq struct {
	client *http.Client
	apiKey string
	cfg    types.SummarizeConfig
}

// NewGroq builds a Groq summarizer from the run configuration.
func NewGroq(apiKey string, cfg types.SummarizeConfig) *Groq {
	return &Groq{
		client: httputil.NewClient(cfg.HTTPConfig),
		apiKey: apiKey,
		cfg:    cfg,
	}
}

// Summarize submits one chat-completion request asking for the geographic
// association of the entity, with the whole snippet context attached, and
// returns the first completion's text. The context is passed as-is regardless
// of length. No retry, no streaming.
func (g *Groq) Summarize(ctx context.Context, entity, snippets string) (string, error) {
	prompt := buildPrompt(entity, snippets)
	return g.complete(ctx, prompt)
}

// Ping validates the API key with a minimal one-message completion.
func (g *Groq) Ping(ctx context.Context) error {
	_, err := g.complete(ctx, "Reply with OK.")
	return err
}

func (g *Groq) complete(ctx context.Context, prompt string) (string, error) {
	model := g.cfg.Model
	if model == "" {
		model = "llama3-8b-8192"
	}

	body := chatRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
		},
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("encoding completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, groqAPIBase, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	req.Header.Set("User-Agent", g.cfg.UserAgent)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("completion request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("completion returned HTTP %d", resp.StatusCode)
	}

	var cr chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return "", fmt.Errorf("parsing completion response: %w", err)
	}
	if len(cr.Choices) == 0 {
		return "", fmt.Errorf("completion returned no choices")
	}
	return cr.Choices[0].Message.Content, nil
}

// buildPrompt asks the model for the entity's geographic association, with
// the search snippets as supporting context.
func buildPrompt(entity, snippets string) string {
	if snippets == "" {
		return fmt.Sprintf("Identify the country in which %s is located.", entity)
	}
	return fmt.Sprintf("Identify the country in which %s is located. Use these search result snippets as context:\n\n%s", entity, snippets)
}

// Groq chat-completion JSON structures.
type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []chatChoice `json:"choices"`
}

type chatChoice struct {
	Message chatMessage `json:"message"`
}
