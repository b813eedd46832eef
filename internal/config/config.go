// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Defaults applied by MergeWithDefaults when a field is unset.
const (
	DefaultEmbeddingModel      = "text-embedding-004"
	DefaultParseTimeoutSeconds = 60
	DefaultEmbedTimeoutSeconds = 30
)

// Config represents the CLI configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// Embedding
	APIKey         string `json:"api_key,omitempty"`         // Gemini API key; empty disables embeddings
	EmbeddingModel string `json:"embedding_model,omitempty"` // Gemini embedding model name

	// Limits
	ParseTimeoutSeconds int `json:"parse_timeout_seconds,omitempty"` // Deadline for a whole parse
	EmbedTimeoutSeconds int `json:"embed_timeout_seconds,omitempty"` // Deadline for the embedding step

	// Scoring
	MinScore int `json:"min_score,omitempty"` // Suppress results below this overall score (0-100)

	// Paths
	SchemaPath string `json:"schema_path,omitempty"` // Override for the job posting schema location

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// LoadEnv reads a .env file if one exists and fills the API key from
// GEMINI_API_KEY when the config does not set one. A missing .env file is
// not an error.
func (c *Config) LoadEnv() {
	_ = godotenv.Load()
	if c.APIKey == "" {
		c.APIKey = os.Getenv("GEMINI_API_KEY")
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.ParseTimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'parse_timeout_seconds' must be non-negative")
	}
	if c.EmbedTimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'embed_timeout_seconds' must be non-negative")
	}
	if c.MinScore < 0 || c.MinScore > 100 {
		return fmt.Errorf("config error: 'min_score' must be between 0 and 100")
	}
	if c.SchemaPath != "" {
		if _, err := os.Stat(c.SchemaPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: schema file not found: %s", c.SchemaPath)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from
// defaults, then from package-level defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.SchemaPath == "" {
		result.SchemaPath = defaults.SchemaPath
	}

	if result.EmbeddingModel == "" {
		if defaults.EmbeddingModel != "" {
			result.EmbeddingModel = defaults.EmbeddingModel
		} else {
			result.EmbeddingModel = DefaultEmbeddingModel
		}
	}
	if result.ParseTimeoutSeconds == 0 {
		if defaults.ParseTimeoutSeconds > 0 {
			result.ParseTimeoutSeconds = defaults.ParseTimeoutSeconds
		} else {
			result.ParseTimeoutSeconds = DefaultParseTimeoutSeconds
		}
	}
	if result.EmbedTimeoutSeconds == 0 {
		if defaults.EmbedTimeoutSeconds > 0 {
			result.EmbedTimeoutSeconds = defaults.EmbedTimeoutSeconds
		} else {
			result.EmbedTimeoutSeconds = DefaultEmbedTimeoutSeconds
		}
	}
	if result.MinScore == 0 {
		result.MinScore = defaults.MinScore
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
