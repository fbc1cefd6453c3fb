// Package extract runs the per-row extraction pipeline: format a search query
// for each entity, search, summarize, and aggregate the outcomes.
package extract

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/shashankmutyala/AI-Data-Extraction-Dashboard/internal/dataset"
	"github.com/shashankmutyala/AI-Data-Extraction-Dashboard/internal/search"
	"github.com/shashankmutyala/AI-Data-Extraction-Dashboard/internal/summarize"
	"github.com/shashankmutyala/AI-Data-Extraction-Dashboard/pkg/types"
)

// Placeholder is the token substituted with the entity value in query templates.
const Placeholder = "{entity}"

// FormatQuery instantiates a query template with the entity value. Every
// occurrence of the placeholder is replaced; a template without the
// placeholder passes through unchanged.
func FormatQuery(template, entity string) string {
	return strings.ReplaceAll(template, Placeholder, entity)
}

// Run processes every row of the table in order, strictly sequentially: one
// search and at most one summarization call per row. A search failure records
// the error text as the row's response and skips summarization; a
// summarization failure records its error text. The loop never retries and
// never drops a row, so the output holds exactly one record per input row in
// input order. Progress lines go to w.
func Run(ctx context.Context, table *dataset.Table, column, template string, provider search.Provider, summarizer summarize.Summarizer, w io.Writer) ([]types.ExtractionRecord, error) {
	if !table.HasColumn(column) {
		return nil, fmt.Errorf("column %q not found in loaded table (columns: %s)", column, strings.Join(table.Columns, ", "))
	}

	records := make([]types.ExtractionRecord, 0, len(table.Rows))

	for _, row := range table.Rows {
		entity := row[column]
		query := FormatQuery(template, entity)

		result, err := provider.Search(ctx, query)
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", entity, err)
			records = append(records, types.ExtractionRecord{
				Entity:   entity,
				Response: err.Error(),
				Failed:   true,
			})
			continue
		}

		snippets := strings.Join(result.Snippets, " ")
		response, err := summarizer.Summarize(ctx, entity, snippets)
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", entity, err)
			records = append(records, types.ExtractionRecord{
				Entity:   entity,
				Response: err.Error(),
				Failed:   true,
			})
			continue
		}

		fmt.Fprintf(w, "extracted %s\n", entity)
		records = append(records, types.ExtractionRecord{
			Entity:   entity,
			Response: response,
		})
	}

	return records, nil
}

// RecordsTable materializes extraction records as a new two-column table,
// ready for display and CSV export.
func RecordsTable(records []types.ExtractionRecord) *dataset.Table {
	table := dataset.New([]string{"Entity", "Response"})
	for _, r := range records {
		table.Append([]string{r.Entity, r.Response})
	}
	return table
}
