// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataset

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"
)

// --- CSV loading ---

func TestLoadCSV(t *testing.T) {
	input := "Name,Country,Founded\nAcme,US,1990\nGlobex,DE,2001\n"

	table, err := LoadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}

	wantCols := []string{"Name", "Country", "Founded"}
	if len(table.Columns) != len(wantCols) {
		t.Fatalf("Columns = %v, want %v", table.Columns, wantCols)
	}
	for i, col := range wantCols {
		if table.Columns[i] != col {
			t.Errorf("Columns[%d] = %q, want %q", i, table.Columns[i], col)
		}
	}

	if len(table.Rows) != 2 {
		t.Fatalf("len(Rows) = %d, want 2", len(table.Rows))
	}
	if got := table.Rows[0]["Name"]; got != "Acme" {
		t.Errorf("Rows[0][Name] = %q, want %q", got, "Acme")
	}
	if got := table.Rows[1]["Founded"]; got != "2001" {
		t.Errorf("Rows[1][Founded] = %q, want %q", got, "2001")
	}
}

func TestLoadCSVErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty input", ""},
		{"duplicate columns", "Name,Name\nAcme,Acme\n"},
		{"ragged row", "Name,Country\nAcme,US,extra\n"},
		{"bare quote", "Name\n\"unterminated\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := LoadCSV(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("LoadCSV: expected error, got nil")
			}
			if table != nil {
				t.Errorf("LoadCSV returned partial table %v on error", table)
			}
		})
	}
}

func TestLoadCSVHeaderOnly(t *testing.T) {
	table, err := LoadCSV(strings.NewReader("Name,Country\n"))
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}
	if len(table.Rows) != 0 {
		t.Errorf("len(Rows) = %d, want 0", len(table.Rows))
	}
}

// --- Append ---

func TestAppendPadsAndTruncates(t *testing.T) {
	table := New([]string{"A", "B"})
	table.Append([]string{"1"})
	table.Append([]string{"2", "3", "4"})

	if got := table.Rows[0]["B"]; got != "" {
		t.Errorf("short row: B = %q, want empty", got)
	}
	if got := table.Rows[1]["B"]; got != "3" {
		t.Errorf("long row: B = %q, want %q", got, "3")
	}
	if _, ok := table.Rows[1]["C"]; ok {
		t.Error("long row grew a column beyond the schema")
	}
}

// --- Round trip ---

func TestCSVRoundTrip(t *testing.T) {
	table := New([]string{"Entity", "Response"})
	table.Append([]string{"Paris", "France"})
	table.Append([]string{"12345", "search error: HTTP 500"})
	table.Append([]string{"O'Reilly, Inc.", "line one\nline two"})

	var buf bytes.Buffer
	if err := table.WriteCSV(&buf); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	reparsed, err := LoadCSV(&buf)
	if err != nil {
		t.Fatalf("LoadCSV(round trip): %v", err)
	}

	if len(reparsed.Rows) != len(table.Rows) {
		t.Fatalf("round trip row count = %d, want %d", len(reparsed.Rows), len(table.Rows))
	}
	for i := range table.Rows {
		for _, col := range table.Columns {
			if reparsed.Rows[i][col] != table.Rows[i][col] {
				t.Errorf("row %d col %s = %q, want %q", i, col, reparsed.Rows[i][col], table.Rows[i][col])
			}
		}
	}
}

// --- Preview ---

func TestFormatPreview(t *testing.T) {
	table := New([]string{"Name", "Country"})
	table.Append([]string{"Acme", "US"})
	table.Append([]string{"Globex", "DE"})
	table.Append([]string{"Initech", "US"})

	var buf bytes.Buffer
	FormatPreview(table, &buf, 2)
	out := buf.String()

	if !strings.Contains(out, "Name") || !strings.Contains(out, "Country") {
		t.Errorf("preview missing header: %q", out)
	}
	if !strings.Contains(out, "Globex") {
		t.Errorf("preview missing second row: %q", out)
	}
	if strings.Contains(out, "Initech") {
		t.Errorf("preview shows row past maxRows: %q", out)
	}
	if !strings.Contains(out, "3 rows (showing first 2)") {
		t.Errorf("preview missing row summary: %q", out)
	}
}

func TestFormatPreviewEmpty(t *testing.T) {
	var buf bytes.Buffer
	FormatPreview(New([]string{"A"}), &buf, 5)
	if !strings.Contains(buf.String(), "No rows loaded.") {
		t.Errorf("empty preview = %q", buf.String())
	}
}

func TestTruncateKeepsRunesIntact(t *testing.T) {
	long := strings.Repeat("café ", 20)

	got := truncate(long, 40)
	if !utf8.ValidString(got) {
		t.Errorf("truncate produced invalid UTF-8: %q", got)
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("truncate() = %q, want ... suffix", got)
	}
	if n := utf8.RuneCountInString(got); n != 40 {
		t.Errorf("truncate() rune count = %d, want 40", n)
	}

	short := "héllo"
	if got := truncate(short, 5); got != short {
		t.Errorf("truncate(%q, 5) = %q, want unchanged", short, got)
	}
}

func TestHasColumn(t *testing.T) {
	table := New([]string{"Name", "Country"})
	if !table.HasColumn("Country") {
		t.Error("HasColumn(Country) = false")
	}
	if table.HasColumn("Missing") {
		t.Error("HasColumn(Missing) = true")
	}
}
