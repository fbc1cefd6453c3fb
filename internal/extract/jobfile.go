// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Source identifies where a job loads its table from.
type Source string

const (
	SourceCSV    Source = "csv"
	SourceGSheet Source = "gsheet"
)

// Job is the on-disk representation of one extraction run: the input source,
// the entity column, the query template, and the output path. Saving a job
// lets the user re-run the same extraction without re-entering parameters.
type Job struct {
	// Source is "csv" or "gsheet".
	Source Source `yaml:"source"`

	// Path is the CSV file path (csv source only).
	Path string `yaml:"path,omitempty"`

	// SheetURL is the Google Sheets URL (gsheet source only).
	SheetURL string `yaml:"sheet_url,omitempty"`

	// Column is the entity column name.
	Column string `yaml:"column"`

	// Template is the search query template containing the entity placeholder.
	Template string `yaml:"template"`

	// Output is the CSV path the result table is written to.
	Output string `yaml:"output,omitempty"`
}

// Validate checks that the job names a usable source, column, and template.
func (j Job) Validate() error {
	switch j.Source {
	case SourceCSV:
		if j.Path == "" {
			return fmt.Errorf("csv job is missing path")
		}
	case SourceGSheet:
		if j.SheetURL == "" {
			return fmt.Errorf("gsheet job is missing sheet_url")
		}
	default:
		return fmt.Errorf("unknown job source %q (want csv or gsheet)", j.Source)
	}
	if j.Column == "" {
		return fmt.Errorf("job is missing column")
	}
	if j.Template == "" {
		return fmt.Errorf("job is missing template")
	}
	return nil
}

// ReadJob loads and validates a job file.
func ReadJob(path string) (Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Job{}, fmt.Errorf("reading job file: %w", err)
	}
	var j Job
	if err := yaml.Unmarshal(data, &j); err != nil {
		return Job{}, fmt.Errorf("parsing job file %s: %w", path, err)
	}
	if err := j.Validate(); err != nil {
		return Job{}, fmt.Errorf("invalid job file %s: %w", path, err)
	}
	return j, nil
}

// WriteJob saves a job to a YAML file.
func WriteJob(path string, j Job) error {
	if err := j.Validate(); err != nil {
		return err
	}
	data, err := yaml.Marshal(&j)
	if err != nil {
		return fmt.Errorf("marshaling job: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
