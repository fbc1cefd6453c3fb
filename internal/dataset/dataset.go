// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dataset loads tabular data and materializes it as an ordered table.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Row maps column names to scalar values. Column order lives on the Table.
type Row map[string]string

// Table is an ordered sequence of rows sharing one column schema. A table is
// never mutated after it is built; derived results form a new Table.
type Table struct {
	Columns []string
	Rows    []Row
}

// New returns an empty table with the given column schema.
func New(columns []string) *Table {
	return &Table{Columns: columns}
}

// Append adds a row built from values in column order. Missing values become
// empty cells; extra values are dropped.
func (t *Table) Append(values []string) {
	row := make(Row, len(t.Columns))
	for i, col := range t.Columns {
		if i < len(values) {
			row[col] = values[i]
		} else {
			row[col] = ""
		}
	}
	t.Rows = append(t.Rows, row)
}

// HasColumn reports whether name is part of the table schema.
func (t *Table) HasColumn(name string) bool {
	for _, col := range t.Columns {
		if col == name {
			return true
		}
	}
	return false
}

// LoadCSV parses CSV data into a Table. The first record is the header; it
// must be present and free of duplicate column names. A malformed body yields
// an error and no table, never a partial one.
func LoadCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty CSV input: no header row")
	}
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	seen := make(map[string]bool, len(header))
	for _, col := range header {
		if seen[col] {
			return nil, fmt.Errorf("duplicate column %q in CSV header", col)
		}
		seen[col] = true
	}

	table := New(header)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV row %d: %w", len(table.Rows)+2, err)
		}
		table.Append(record)
	}
	return table, nil
}

// WriteCSV writes the table as CSV: header first, then rows in order with
// cells in column order.
func (t *Table) WriteCSV(w io.Writer) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(t.Columns); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	record := make([]string, len(t.Columns))
	for i, row := range t.Rows {
		for j, col := range t.Columns {
			record[j] = row[col]
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("writing CSV row %d: %w", i+1, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// FormatPreview writes a human-readable view of the first maxRows rows to w.
// A maxRows of 0 or less prints every row.
func FormatPreview(t *Table, w io.Writer, maxRows int) {
	if len(t.Rows) == 0 {
		fmt.Fprintln(w, "No rows loaded.")
		return
	}

	rows := t.Rows
	if maxRows > 0 && len(rows) > maxRows {
		rows = rows[:maxRows]
	}

	widths := make([]int, len(t.Columns))
	for i, col := range t.Columns {
		widths[i] = len(col)
	}
	for _, row := range rows {
		for i, col := range t.Columns {
			if w := len(truncate(row[col], 40)); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var sep int
	for i, col := range t.Columns {
		fmt.Fprintf(w, "%-*s  ", widths[i], col)
		sep += widths[i] + 2
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("-", sep))

	for _, row := range rows {
		for i, col := range t.Columns {
			fmt.Fprintf(w, "%-*s  ", widths[i], truncate(row[col], 40))
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "\n%d rows", len(t.Rows))
	if len(rows) < len(t.Rows) {
		fmt.Fprintf(w, " (showing first %d)", len(rows))
	}
	fmt.Fprintln(w)
}

// truncate shortens s to max runes, never splitting a multi-byte rune.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
