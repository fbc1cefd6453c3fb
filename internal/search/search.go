// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search issues one web-search request per query and returns the
// organic-result snippets.
package search

import "context"

// Result holds the snippets of a successful search.
type Result struct {
	Snippets []string
}

// Provider performs a single web search. Each provider implementation wraps
// one search API per the Strategy pattern; the pipeline only sees this
// interface, so tests can supply a mock.
type Provider interface {
	Name() string
	Search(ctx context.Context, query string) (Result, error)
}
