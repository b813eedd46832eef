package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ravi/jobmatch/internal/config"
	"github.com/ravi/jobmatch/internal/embedding"
	"github.com/ravi/jobmatch/internal/logging"
	"github.com/ravi/jobmatch/internal/parser"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a resume into structured JSON",
	Long:  "Parse a PDF, DOCX or plain text resume into structured JSON with contact info, skills, experience, education and a parse confidence score.",
	RunE:  runParse,
}

var (
	parseInputFile  string
	parseOutputFile string
	parseAPIKey     string
	parseConfigFile string
	parseNoEmbed    bool
)

func init() {
	parseCmd.Flags().StringVarP(&parseInputFile, "in", "i", "", "Path to resume file (.pdf, .docx or .txt) (required)")
	parseCmd.Flags().StringVarP(&parseOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	parseCmd.Flags().StringVar(&parseAPIKey, "api-key", "", "Gemini API key for embeddings (overrides GEMINI_API_KEY env var)")
	parseCmd.Flags().StringVar(&parseConfigFile, "config", "", "Path to JSON config file")
	parseCmd.Flags().BoolVar(&parseNoEmbed, "no-embed", false, "Skip embedding generation")
	_ = parseCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(parseCmd)
}

func loadConfig(path, apiKeyFlag string) (*config.Config, error) {
	cfg := &config.Config{}
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if apiKeyFlag != "" {
		cfg.APIKey = apiKeyFlag
	}
	cfg.LoadEnv()
	merged := cfg.MergeWithDefaults(config.Config{})
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}

func runParse(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(parseConfigFile, parseAPIKey)
	if err != nil {
		return err
	}

	log, err := logging.New(flagJSONLog, flagVerbose || cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	mimeType := mimeForFile(parseInputFile)
	if mimeType == "" {
		return fmt.Errorf("cannot infer document type from %s (expected .pdf, .docx or .txt)", parseInputFile)
	}

	data, err := os.ReadFile(parseInputFile)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	var embedder embedding.Generator
	if !parseNoEmbed && cfg.APIKey != "" {
		gemini := embedding.NewGemini(cfg.APIKey, cfg.EmbeddingModel)
		defer func() { _ = gemini.Close() }()
		embedder = gemini
	}

	p := parser.New(embedder, log,
		parser.WithEmbedTimeout(time.Duration(cfg.EmbedTimeoutSeconds)*time.Second))

	ctx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.ParseTimeoutSeconds)*time.Second)
	defer cancel()

	resume, err := p.Parse(ctx, data, mimeType)
	if err != nil {
		return fmt.Errorf("failed to parse resume: %w", err)
	}

	jsonBytes, err := json.MarshalIndent(resume, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if parseOutputFile == "" {
		_, _ = fmt.Fprintln(os.Stdout, string(jsonBytes))
		return nil
	}
	if err := os.WriteFile(parseOutputFile, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	_, _ = fmt.Fprintf(os.Stderr, "Parsed resume written to %s (confidence %.2f)\n", parseOutputFile, resume.Confidence)
	return nil
}
