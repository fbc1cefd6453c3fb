package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/shashankmutyala/AI-Data-Extraction-Dashboard/internal/dataset"
	"github.com/shashankmutyala/AI-Data-Extraction-Dashboard/internal/gsheet"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Preview a table's columns and first rows",
	Long: `Inspect loads a CSV file or Google Sheet and prints its column names and
the first rows, so the entity column for an extraction run can be chosen.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		csvPath, _ := cmd.Flags().GetString("csv")
		sheetURL, _ := cmd.Flags().GetString("sheet-url")
		rows, _ := cmd.Flags().GetInt("rows")

		var table *dataset.Table
		var err error
		switch {
		case csvPath != "" && sheetURL != "":
			return fmt.Errorf("use either --csv or --sheet-url, not both")
		case csvPath != "":
			var f *os.File
			f, err = os.Open(csvPath)
			if err != nil {
				break
			}
			defer f.Close()
			table, err = dataset.LoadCSV(f)
		case sheetURL != "":
			table, err = gsheet.Load(cmd.Context(), sheetURL, creds.GoogleCredsPath, pipelineConfig().Sheets)
		default:
			return fmt.Errorf("provide --csv or --sheet-url")
		}
		if err != nil {
			color.Red("Error loading data: %v", err)
			return err
		}

		color.Green("Loaded %d rows.", len(table.Rows))
		fmt.Println("Columns:", strings.Join(table.Columns, ", "))
		fmt.Println()
		dataset.FormatPreview(table, os.Stdout, rows)
		return nil
	},
}

func init() {
	inspectCmd.Flags().String("csv", "", "path to the input CSV file")
	inspectCmd.Flags().String("sheet-url", "", "Google Sheets URL to load instead of a CSV")
	inspectCmd.Flags().Int("rows", 5, "number of rows to preview")

	rootCmd.AddCommand(inspectCmd)
}
