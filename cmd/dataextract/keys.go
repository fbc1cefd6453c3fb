package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/shashankmutyala/AI-Data-Extraction-Dashboard/internal/search"
	"github.com/shashankmutyala/AI-Data-Extraction-Dashboard/internal/summarize"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Verify the configured API keys",
	Long: `Keys checks that all required configuration is present and validates the
search and summarization API keys with one minimal request each.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := creds.Validate(); err != nil {
			return err
		}

		cfg := pipelineConfig()
		failures := 0

		provider := search.NewSerpAPI(creds.SerpAPIKey, cfg.Search)
		if err := provider.Ping(cmd.Context()); err != nil {
			color.Red("SerpAPI key check failed: %v", err)
			failures++
		} else {
			color.Green("SerpAPI connected successfully.")
		}

		summarizer := summarize.NewGroq(creds.GroqAPIKey, cfg.Summarize)
		if err := summarizer.Ping(cmd.Context()); err != nil {
			color.Red("Groq key check failed: %v", err)
			failures++
		} else {
			color.Green("Groq connected successfully.")
		}

		if failures > 0 {
			return fmt.Errorf("%d key check(s) failed", failures)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(keysCmd)
}
