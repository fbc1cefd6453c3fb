// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across the API clients.
package httputil

import (
	"net/http"

	"github.com/shashankmutyala/AI-Data-Extraction-Dashboard/pkg/types"
)

// NewClient returns an http.Client honoring the configured timeout. A zero
// timeout keeps the net/http default of no deadline.
func NewClient(cfg types.HTTPConfig) *http.Client {
	return &http.Client{Timeout: cfg.Timeout}
}
