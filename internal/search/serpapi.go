// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/shashankmutyala/AI-Data-Extraction-Dashboard/internal/httputil"
	"github.com/shashankmutyala/AI-Data-Extraction-Dashboard/pkg/types"
)

// serpAPIBase is the SerpAPI search endpoint. Declared as a var so tests can
// substitute an httptest server.
var serpAPIBase = "https://serpapi.com/search"

// SerpAPI queries the SerpAPI web-search endpoint.
type SerpAPI struct {
	client *http.Client
	apiKey string
	cfg    types.SearchConfig
}

// NewSerpAPI builds a SerpAPI provider from the run configuration.
func NewSerpAPI(apiKey string, cfg types.SearchConfig) *SerpAPI {
	return &SerpAPI{
		client: httputil.NewClient(cfg.HTTPConfig),
		apiKey: apiKey,
		cfg:    cfg,
	}
}

// Name returns the provider identifier.
func (p *SerpAPI) Name() string { return "serpapi" }

// Search performs one GET against the provider with the fixed parameter set
// {engine, q, api_key}. A transport or HTTP-status failure returns an error;
// the caller records it and moves on, there is no retry. After a successful
// call Search blocks for the configured rate-limit delay before returning,
// unconditionally, to stay under the provider's request quota.
func (p *SerpAPI) Search(ctx context.Context, query string) (Result, error) {
	engine := p.cfg.Engine
	if engine == "" {
		engine = "google"
	}

	params := url.Values{
		"engine":  {engine},
		"q":       {query},
		"api_key": {p.apiKey},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, serpAPIBase+"?"+params.Encode(), nil)
	if err != nil {
		return Result{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", p.cfg.UserAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("search request for %q: %w", query, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Result{}, fmt.Errorf("search for %q returned HTTP %d", query, resp.StatusCode)
	}

	var sr serpResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return Result{}, fmt.Errorf("parsing search response for %q: %w", query, err)
	}

	var result Result
	for _, o := range sr.OrganicResults {
		result.Snippets = append(result.Snippets, o.Snippet)
	}

	if p.cfg.RateLimitDelay > 0 {
		select {
		case <-ctx.Done():
			return Result{}, ctx.Err()
		case <-time.After(p.cfg.RateLimitDelay):
		}
	}

	return result, nil
}

// Ping validates the API key with a minimal query. The rate-limit delay still
// applies on success.
func (p *SerpAPI) Ping(ctx context.Context) error {
	_, err := p.Search(ctx, "test")
	return err
}

// SerpAPI JSON structures.
type serpResponse struct {
	OrganicResults []organicResult `json:"organic_results"`
}

type organicResult struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}
