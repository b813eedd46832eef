package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"api_key": "test-key",
		"embedding_model": "text-embedding-004",
		"parse_timeout_seconds": 90,
		"min_score": 50,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "test-key", cfg.APIKey)
	assert.Equal(t, "text-embedding-004", cfg.EmbeddingModel)
	assert.Equal(t, 90, cfg.ParseTimeoutSeconds)
	assert.Equal(t, 50, cfg.MinScore)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_NegativeTimeout(t *testing.T) {
	cfg := &Config{
		ParseTimeoutSeconds: -1,
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parse_timeout_seconds")
}

func TestValidate_MinScoreRange(t *testing.T) {
	err := (&Config{MinScore: 101}).Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "min_score")

	err = (&Config{MinScore: -5}).Validate()
	assert.Error(t, err)
}

func TestValidate_MissingSchemaFile(t *testing.T) {
	cfg := &Config{
		SchemaPath: "/nonexistent/schema.json",
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "schema file not found")
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{
		APIKey:              "key",
		ParseTimeoutSeconds: 60,
		MinScore:            40,
	}

	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		APIKey:              "default-key",
		EmbeddingModel:      "custom-model",
		ParseTimeoutSeconds: 120,
		MinScore:            30,
	}

	partial := Config{
		APIKey: "custom-key",
	}

	merged := partial.MergeWithDefaults(defaults)

	// Custom values should be preserved
	assert.Equal(t, "custom-key", merged.APIKey)

	// Default values should fill in empty fields
	assert.Equal(t, "custom-model", merged.EmbeddingModel)
	assert.Equal(t, 120, merged.ParseTimeoutSeconds)
	assert.Equal(t, 30, merged.MinScore)
}

func TestMergeWithDefaults_PackageDefaults(t *testing.T) {
	merged := (&Config{}).MergeWithDefaults(Config{})

	assert.Equal(t, DefaultEmbeddingModel, merged.EmbeddingModel)
	assert.Equal(t, DefaultParseTimeoutSeconds, merged.ParseTimeoutSeconds)
	assert.Equal(t, DefaultEmbedTimeoutSeconds, merged.EmbedTimeoutSeconds)
	assert.Equal(t, 0, merged.MinScore)
}
