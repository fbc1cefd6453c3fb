// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the shared configuration and record types for the
// extraction pipeline.
package types

import "time"

// HTTPConfig holds shared HTTP settings used by clients that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout. Zero means the http.Client default.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "dataextract/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SearchConfig holds settings for the web-search client.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// Engine is the search engine identifier sent to the provider (default "google").
	Engine string `json:"engine" yaml:"engine"`

	// RateLimitDelay is the pause imposed after each successful search call
	// to stay under the provider's rate limit (default 1s).
	RateLimitDelay time.Duration `json:"rate_limit_delay" yaml:"rate_limit_delay"`
}

// SummarizeConfig holds settings for the summarization client.
type SummarizeConfig struct {
	HTTPConfig `yaml:",inline"`

	// Model is the chat-completion model identifier (default "llama3-8b-8192").
	Model string `json:"model" yaml:"model"`
}

// SheetsConfig holds settings for the Google Sheets loader.
type SheetsConfig struct {
	HTTPConfig `yaml:",inline"`
}

// PipelineConfig groups the per-client configurations for one extraction run.
// It is built once at startup and passed to each client at construction; no
// client reads process-wide state.
type PipelineConfig struct {
	Search    SearchConfig    `json:"search" yaml:"search"`
	Summarize SummarizeConfig `json:"summarize" yaml:"summarize"`
	Sheets    SheetsConfig    `json:"sheets" yaml:"sheets"`
}

// DefaultPipelineConfig returns a PipelineConfig with the standard defaults.
func DefaultPipelineConfig() PipelineConfig {
	httpCfg := HTTPConfig{
		Timeout:   30 * time.Second,
		UserAgent: "dataextract/0.1",
	}
	return PipelineConfig{
		Search: SearchConfig{
			HTTPConfig:     httpCfg,
			Engine:         "google",
			RateLimitDelay: time.Second,
		},
		Summarize: SummarizeConfig{
			HTTPConfig: httpCfg,
			Model:      "llama3-8b-8192",
		},
		Sheets: SheetsConfig{
			HTTPConfig: httpCfg,
		},
	}
}
