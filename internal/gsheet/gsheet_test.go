// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package gsheet

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"google.golang.org/api/option"

	"github.com/shashankmutyala/AI-Data-Extraction-Dashboard/pkg/types"
)

// --- URL parsing ---

func TestSpreadsheetID(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{
			name: "canonical URL",
			url:  "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms/edit#gid=0",
			want: "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms",
		},
		{
			name: "no fragment",
			url:  "https://docs.google.com/spreadsheets/d/abc_123-XYZ",
			want: "abc_123-XYZ",
		},
		{
			name:    "not a sheets URL",
			url:     "https://example.com/data.csv",
			wantErr: true,
		},
		{
			name:    "empty",
			url:     "",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SpreadsheetID(tt.url)
			if tt.wantErr {
				if err == nil {
					t.Fatal("SpreadsheetID: expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("SpreadsheetID: %v", err)
			}
			if got != tt.want {
				t.Errorf("SpreadsheetID() = %q, want %q", got, tt.want)
			}
		})
	}
}

// --- Value grid conversion ---

func TestTableFromValues(t *testing.T) {
	values := [][]interface{}{
		{"Name", "Founded"},
		{"Acme", 1990},
		{"Globex"},
		{"Initech", 1997, "extra"},
	}

	table, err := TableFromValues(values)
	if err != nil {
		t.Fatalf("TableFromValues: %v", err)
	}

	if len(table.Columns) != 2 || table.Columns[0] != "Name" || table.Columns[1] != "Founded" {
		t.Fatalf("Columns = %v, want [Name Founded]", table.Columns)
	}
	if len(table.Rows) != 3 {
		t.Fatalf("len(Rows) = %d, want 3", len(table.Rows))
	}
	if got := table.Rows[0]["Founded"]; got != "1990" {
		t.Errorf("numeric cell = %q, want %q", got, "1990")
	}
	if got := table.Rows[1]["Founded"]; got != "" {
		t.Errorf("short row cell = %q, want empty", got)
	}
	if _, ok := table.Rows[2]["extra"]; ok {
		t.Error("long row leaked a cell past the header width")
	}
}

func TestTableFromValuesEmpty(t *testing.T) {
	if _, err := TableFromValues(nil); err == nil {
		t.Fatal("TableFromValues(nil): expected error, got nil")
	}
}

// --- First-worksheet fetch against a stub API ---

func sheetsStub(t *testing.T, metaBody, valuesBody string, metaStatus, valuesStatus int) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.Contains(r.URL.Path, "/values/"):
			w.WriteHeader(valuesStatus)
			fmt.Fprint(w, valuesBody)
		default:
			w.WriteHeader(metaStatus)
			fmt.Fprint(w, metaBody)
		}
	}))
	t.Cleanup(ts.Close)
	return ts
}

func stubOpts(ts *httptest.Server) []option.ClientOption {
	return []option.ClientOption{
		option.WithEndpoint(ts.URL + "/"),
		option.WithoutAuthentication(),
	}
}

const sheetURL = "https://docs.google.com/spreadsheets/d/stub-sheet-id/edit"

func TestLoadFirstWorksheet(t *testing.T) {
	meta := `{"spreadsheetId":"stub-sheet-id","sheets":[
		{"properties":{"title":"Companies"}},
		{"properties":{"title":"Ignored Second Sheet"}}
	]}`
	values := `{"range":"Companies!A1:B3","values":[
		["Name","Country"],
		["Acme","US"],
		["Globex","DE"]
	]}`
	ts := sheetsStub(t, meta, values, http.StatusOK, http.StatusOK)

	table, err := Load(context.Background(), sheetURL, "", types.SheetsConfig{}, stubOpts(ts)...)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(table.Rows) != 2 {
		t.Fatalf("len(Rows) = %d, want 2", len(table.Rows))
	}
	if got := table.Rows[1]["Country"]; got != "DE" {
		t.Errorf("Rows[1][Country] = %q, want %q", got, "DE")
	}
}

func TestLoadHonorsConfiguredTimeout(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"spreadsheetId":"stub-sheet-id","sheets":[{"properties":{"title":"S1"}}]}`)
	}))
	t.Cleanup(ts.Close)

	cfg := types.SheetsConfig{HTTPConfig: types.HTTPConfig{Timeout: 20 * time.Millisecond}}
	table, err := Load(context.Background(), sheetURL, "", cfg, stubOpts(ts)...)
	if err == nil {
		t.Fatal("Load: expected timeout error, got nil")
	}
	if table != nil {
		t.Errorf("Load returned partial table %v on timeout", table)
	}
}

func TestLoadFailures(t *testing.T) {
	tests := []struct {
		name         string
		metaBody     string
		valuesBody   string
		metaStatus   int
		valuesStatus int
	}{
		{
			name:       "spreadsheet not found",
			metaBody:   `{"error":{"code":404,"message":"not found"}}`,
			metaStatus: http.StatusNotFound, valuesStatus: http.StatusOK,
		},
		{
			name:       "no worksheets",
			metaBody:   `{"spreadsheetId":"stub-sheet-id","sheets":[]}`,
			metaStatus: http.StatusOK, valuesStatus: http.StatusOK,
		},
		{
			name:         "values fetch denied",
			metaBody:     `{"spreadsheetId":"stub-sheet-id","sheets":[{"properties":{"title":"S1"}}]}`,
			valuesBody:   `{"error":{"code":403,"message":"denied"}}`,
			metaStatus:   http.StatusOK,
			valuesStatus: http.StatusForbidden,
		},
		{
			name:       "empty worksheet",
			metaBody:   `{"spreadsheetId":"stub-sheet-id","sheets":[{"properties":{"title":"S1"}}]}`,
			valuesBody: `{"range":"S1!A1","values":[]}`,
			metaStatus: http.StatusOK, valuesStatus: http.StatusOK,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := sheetsStub(t, tt.metaBody, tt.valuesBody, tt.metaStatus, tt.valuesStatus)
			table, err := Load(context.Background(), sheetURL, "", types.SheetsConfig{}, stubOpts(ts)...)
			if err == nil {
				t.Fatal("Load: expected error, got nil")
			}
			if table != nil {
				t.Errorf("Load returned partial table %v on error", table)
			}
		})
	}
}
