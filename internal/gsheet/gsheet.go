// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package gsheet loads a Google Sheet's first worksheet as a dataset table.
package gsheet

import (
	"context"
	"fmt"
	"regexp"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/shashankmutyala/AI-Data-Extraction-Dashboard/internal/dataset"
	"github.com/shashankmutyala/AI-Data-Extraction-Dashboard/pkg/types"
)

// scopes limits access to spreadsheet and drive reads.
var scopes = []string{
	sheets.SpreadsheetsReadonlyScope,
	sheets.DriveReadonlyScope,
}

var spreadsheetIDPattern = regexp.MustCompile(`/spreadsheets/d/([a-zA-Z0-9_-]+)`)

// SpreadsheetID extracts the document ID from a Google Sheets URL.
func SpreadsheetID(rawURL string) (string, error) {
	m := spreadsheetIDPattern.FindStringSubmatch(rawURL)
	if m == nil {
		return "", fmt.Errorf("not a Google Sheets URL: %q", rawURL)
	}
	return m[1], nil
}

// Load authenticates with the service-account credential file, opens the
// spreadsheet named by url, and materializes the first worksheet's records
// with header-derived column names. Any auth, network, or shape failure
// yields an error and no table; there is no partial load. Extra client
// options override the defaults (tests pass an unauthenticated local
// endpoint).
func Load(ctx context.Context, url, credsPath string, cfg types.SheetsConfig, opts ...option.ClientOption) (*dataset.Table, error) {
	id, err := SpreadsheetID(url)
	if err != nil {
		return nil, err
	}

	if len(opts) == 0 {
		opts = []option.ClientOption{
			option.WithCredentialsFile(credsPath),
			option.WithScopes(scopes...),
		}
	}
	if cfg.UserAgent != "" {
		opts = append(opts, option.WithUserAgent(cfg.UserAgent))
	}

	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("authenticating with Google Sheets: %w", err)
	}

	// The sheets client manages its own transport, so the configured timeout
	// is enforced as a deadline over the whole load.
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	return fetch(ctx, svc, id)
}

// fetch reads the first worksheet of the spreadsheet into a table.
func fetch(ctx context.Context, svc *sheets.Service, id string) (*dataset.Table, error) {
	meta, err := svc.Spreadsheets.Get(id).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("opening spreadsheet %s: %w", id, err)
	}
	if len(meta.Sheets) == 0 {
		return nil, fmt.Errorf("spreadsheet %s has no worksheets", id)
	}
	title := meta.Sheets[0].Properties.Title

	vr, err := svc.Spreadsheets.Values.Get(id, title).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("reading worksheet %q: %w", title, err)
	}

	return TableFromValues(vr.Values)
}

// TableFromValues converts a raw value grid into a table. The first row is
// the header; short rows are padded and long rows truncated to the header
// width, and every cell is stringified.
func TableFromValues(values [][]interface{}) (*dataset.Table, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("empty worksheet: no header row")
	}

	header := make([]string, len(values[0]))
	for i, cell := range values[0] {
		header[i] = fmt.Sprint(cell)
	}

	table := dataset.New(header)
	for _, raw := range values[1:] {
		row := make([]string, len(raw))
		for i, cell := range raw {
			row[i] = fmt.Sprint(cell)
		}
		table.Append(row)
	}
	return table, nil
}
