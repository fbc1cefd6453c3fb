// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads API keys and credentials from a directory of plain-text files.
// Each file in the directory represents one secret: the filename is the key name and the
// file contents (trimmed) are the value. Environment variables override file values.
//
// Supported key files: serpapi-api-key, groq-api-key, google-creds-path.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Credentials holds the configuration inputs the pipeline needs. All three
// are required; Missing lists what is absent so startup can halt with the
// full set at once.
type Credentials struct {
	// SerpAPIKey authenticates web-search requests.
	SerpAPIKey string

	// GroqAPIKey authenticates summarization requests.
	GroqAPIKey string

	// GoogleCredsPath points at the service-account JSON used for the
	// Google Sheets loader. It must name an existing file.
	GoogleCredsPath string
}

// Load reads all files in dir and returns a map of filename to trimmed contents.
// A missing directory or missing files are not errors; Load returns an empty map.
// Unreadable files produce a warning on stderr but do not abort.
func Load(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	secrets := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not read secret %s: %v\n", name, err)
			continue
		}

		value := strings.TrimSpace(string(data))
		if value != "" {
			secrets[name] = value
		}
	}

	return secrets, nil
}

// Resolve builds Credentials from the secrets directory with environment
// variables (SERPAPI_KEY, GROQ_API_KEY, GOOGLE_CREDS_PATH) taking precedence.
func Resolve(dir string) (Credentials, error) {
	fromFiles, err := Load(dir)
	if err != nil {
		return Credentials{}, err
	}

	pick := func(envName, fileName string) string {
		if v := strings.TrimSpace(os.Getenv(envName)); v != "" {
			return v
		}
		return fromFiles[fileName]
	}

	return Credentials{
		SerpAPIKey:      pick("SERPAPI_KEY", "serpapi-api-key"),
		GroqAPIKey:      pick("GROQ_API_KEY", "groq-api-key"),
		GoogleCredsPath: pick("GOOGLE_CREDS_PATH", "google-creds-path"),
	}, nil
}

// Missing returns the names of absent configuration items. The Google
// credentials path counts as missing when the file it names does not exist.
func (c Credentials) Missing() []string {
	var missing []string
	if c.SerpAPIKey == "" {
		missing = append(missing, "SERPAPI_KEY")
	}
	if c.GroqAPIKey == "" {
		missing = append(missing, "GROQ_API_KEY")
	}
	if c.GoogleCredsPath == "" {
		missing = append(missing, "GOOGLE_CREDS_PATH")
	} else if _, err := os.Stat(c.GoogleCredsPath); err != nil {
		missing = append(missing, "GOOGLE_CREDS_PATH")
	}
	return missing
}

// Validate returns an error listing every missing configuration item, or nil
// when the credentials are complete.
func (c Credentials) Validate() error {
	if missing := c.Missing(); len(missing) > 0 {
		return fmt.Errorf("missing configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}
