package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/shashankmutyala/AI-Data-Extraction-Dashboard/internal/dataset"
	"github.com/shashankmutyala/AI-Data-Extraction-Dashboard/internal/extract"
	"github.com/shashankmutyala/AI-Data-Extraction-Dashboard/internal/gsheet"
	"github.com/shashankmutyala/AI-Data-Extraction-Dashboard/internal/search"
	"github.com/shashankmutyala/AI-Data-Extraction-Dashboard/internal/summarize"
	"github.com/shashankmutyala/AI-Data-Extraction-Dashboard/pkg/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Run the per-row search-and-summarize pipeline",
	Long: `Extract loads a table from a CSV file or a Google Sheet, then processes
rows strictly in order: the query template is instantiated with the row's
entity value, one web search is issued, and the joined result snippets are
summarized into the row's response. Failed rows carry the error text as
their response; the loop never retries and never drops a row. The output
table is previewed and written as CSV.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		job, err := jobFromFlags(cmd)
		if err != nil {
			return err
		}

		if err := creds.Validate(); err != nil {
			return err
		}

		cfg := pipelineConfig()
		applyFlagOverrides(cmd, &cfg)

		table, err := loadTable(cmd, job, cfg)
		if err != nil {
			color.Red("Error loading data: %v", err)
			return err
		}
		color.Green("Loaded %d rows from %s source.", len(table.Rows), job.Source)

		provider := search.NewSerpAPI(creds.SerpAPIKey, cfg.Search)
		summarizer := summarize.NewGroq(creds.GroqAPIKey, cfg.Summarize)

		records, err := extract.Run(cmd.Context(), table, job.Column, job.Template, provider, summarizer, os.Stderr)
		if err != nil {
			return err
		}

		out := extract.RecordsTable(records)
		dataset.FormatPreview(out, os.Stdout, 10)

		output := job.Output
		if output == "" {
			output = "extracted_data.csv"
		}
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		if err := out.WriteCSV(f); err != nil {
			return fmt.Errorf("writing output CSV: %w", err)
		}

		ok, failed := 0, 0
		for _, r := range records {
			if r.Failed {
				failed++
			} else {
				ok++
			}
		}
		color.Green("Wrote %s: %d rows extracted, %d failed.", output, ok, failed)

		if savePath, _ := cmd.Flags().GetString("save-job"); savePath != "" {
			if err := extract.WriteJob(savePath, job); err != nil {
				return fmt.Errorf("saving job file: %w", err)
			}
			fmt.Fprintln(os.Stderr, "Saved job to", savePath)
		}
		return nil
	},
}

// jobFromFlags builds the run parameters from --job or the individual flags.
// Individual flags override job-file values so a saved job can be tweaked.
func jobFromFlags(cmd *cobra.Command) (extract.Job, error) {
	var job extract.Job

	if jobPath, _ := cmd.Flags().GetString("job"); jobPath != "" {
		j, err := extract.ReadJob(jobPath)
		if err != nil {
			return extract.Job{}, err
		}
		job = j
	}

	if v, _ := cmd.Flags().GetString("csv"); v != "" {
		job.Source = extract.SourceCSV
		job.Path = v
	}
	if v, _ := cmd.Flags().GetString("sheet-url"); v != "" {
		job.Source = extract.SourceGSheet
		job.SheetURL = v
	}
	if v, _ := cmd.Flags().GetString("column"); v != "" {
		job.Column = v
	}
	if v, _ := cmd.Flags().GetString("template"); v != "" {
		job.Template = v
	}
	if v, _ := cmd.Flags().GetString("output"); v != "" {
		job.Output = v
	}

	if err := job.Validate(); err != nil {
		return extract.Job{}, err
	}
	return job, nil
}

// applyFlagOverrides folds the per-run flags into the configuration. Only
// flags the user actually set override the config-file and default values.
func applyFlagOverrides(cmd *cobra.Command, cfg *types.PipelineConfig) {
	if cmd.Flags().Changed("model") {
		cfg.Summarize.Model, _ = cmd.Flags().GetString("model")
	}
	if cmd.Flags().Changed("delay") {
		d, _ := cmd.Flags().GetDuration("delay")
		cfg.Search.RateLimitDelay = d
	}
	if cmd.Flags().Changed("timeout") {
		d, _ := cmd.Flags().GetDuration("timeout")
		cfg.Search.Timeout = d
		cfg.Summarize.Timeout = d
		cfg.Sheets.Timeout = d
	}
}

// loadTable materializes the input table from the job's source. A failed
// load yields no table at all.
func loadTable(cmd *cobra.Command, job extract.Job, cfg types.PipelineConfig) (*dataset.Table, error) {
	switch job.Source {
	case extract.SourceCSV:
		f, err := os.Open(job.Path)
		if err != nil {
			return nil, fmt.Errorf("opening CSV %s: %w", job.Path, err)
		}
		defer f.Close()
		return dataset.LoadCSV(f)
	case extract.SourceGSheet:
		return gsheet.Load(cmd.Context(), job.SheetURL, creds.GoogleCredsPath, cfg.Sheets)
	default:
		return nil, fmt.Errorf("unknown source %q", job.Source)
	}
}

func init() {
	extractCmd.Flags().String("csv", "", "path to the input CSV file")
	extractCmd.Flags().String("sheet-url", "", "Google Sheets URL to load instead of a CSV")
	extractCmd.Flags().String("column", "", "entity column name")
	extractCmd.Flags().String("template", "", "search query template containing {entity}")
	extractCmd.Flags().String("job", "", "YAML job file bundling source, column, template, and output")
	extractCmd.Flags().String("output", "", "output CSV path (default extracted_data.csv)")
	extractCmd.Flags().String("save-job", "", "save the effective run parameters to a YAML job file")
	extractCmd.Flags().String("model", "", "summarization model, overriding the configured one")
	extractCmd.Flags().Duration("delay", time.Second, "post-search rate-limit delay, overriding the configured one")
	extractCmd.Flags().Duration("timeout", 30*time.Second, "HTTP timeout for all outbound calls, overriding the configured one")

	rootCmd.AddCommand(extractCmd)
}
