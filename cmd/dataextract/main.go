// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the dataextract CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/shashankmutyala/AI-Data-Extraction-Dashboard/internal/secrets"
	"github.com/shashankmutyala/AI-Data-Extraction-Dashboard/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// creds holds the credentials resolved from .secrets/ and the environment at
// startup. Commands that talk to the providers validate it before running.
var creds secrets.Credentials

// rootCmd is the base command for the dataextract CLI.
var rootCmd = &cobra.Command{
	Use:   "dataextract",
	Short: "Augment a table of entities with web-searched, AI-summarized answers",
	Long: `dataextract ingests a tabular dataset (a CSV file or a Google Sheet),
formats one search query per row from a template and the selected entity
column, runs a web search followed by a summarization call for each row,
and exports the augmented {Entity, Response} table as CSV.

Use inspect to preview a table and pick the entity column, keys to verify
the configured API keys, and extract to run the pipeline.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		dir := viper.GetString("secrets_dir")
		c, err := secrets.Resolve(dir)
		if err != nil {
			return err
		}
		creds = c
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./dataextract.yaml or ~/.config/dataextract/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("dataextract")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "dataextract"))
		}
	}

	viper.SetDefault("secrets_dir", ".secrets/")
	viper.SetDefault("http.timeout", 30*time.Second)
	viper.SetDefault("http.user_agent", "dataextract/"+version)
	viper.SetDefault("search.engine", "google")
	viper.SetDefault("search.rate_limit_delay", time.Second)
	viper.SetDefault("summarize.model", "llama3-8b-8192")

	viper.SetEnvPrefix("DATAEXTRACT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// pipelineConfig builds the per-run configuration from viper. It is
// constructed once per command invocation and handed to each client at
// creation; nothing reads viper after this point.
func pipelineConfig() types.PipelineConfig {
	cfg := types.DefaultPipelineConfig()

	httpCfg := types.HTTPConfig{
		Timeout:   viper.GetDuration("http.timeout"),
		UserAgent: viper.GetString("http.user_agent"),
	}
	cfg.Search.HTTPConfig = httpCfg
	cfg.Search.Engine = viper.GetString("search.engine")
	cfg.Search.RateLimitDelay = viper.GetDuration("search.rate_limit_delay")
	cfg.Summarize.HTTPConfig = httpCfg
	cfg.Summarize.Model = viper.GetString("summarize.model")
	cfg.Sheets.HTTPConfig = httpCfg

	return cfg
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
