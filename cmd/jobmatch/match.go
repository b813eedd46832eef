package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ravi/jobmatch/internal/embedding"
	"github.com/ravi/jobmatch/internal/logging"
	"github.com/ravi/jobmatch/internal/parser"
	"github.com/ravi/jobmatch/internal/schemas"
	"github.com/ravi/jobmatch/internal/service"
	"github.com/ravi/jobmatch/internal/store"
)

var matchCmd = &cobra.Command{
	Use:   "match [resume files...]",
	Short: "Score resumes against a job posting",
	Long:  "Parse one or more resumes and compute explainable match scores against a job posting JSON file. Results are printed highest score first.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runMatch,
}

var (
	matchJobFile    string
	matchAPIKey     string
	matchConfigFile string
	matchSchemaFile string
	matchMinScore   int
)

func init() {
	matchCmd.Flags().StringVarP(&matchJobFile, "job", "j", "", "Path to job posting JSON file (required)")
	matchCmd.Flags().StringVar(&matchAPIKey, "api-key", "", "Gemini API key for embeddings (overrides GEMINI_API_KEY env var)")
	matchCmd.Flags().StringVar(&matchConfigFile, "config", "", "Path to JSON config file")
	matchCmd.Flags().StringVar(&matchSchemaFile, "schema", "", "Override path to the job posting schema")
	matchCmd.Flags().IntVar(&matchMinScore, "min-score", 0, "Only report results with at least this overall score (0-100)")
	_ = matchCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig(matchConfigFile, matchAPIKey)
	if err != nil {
		return err
	}
	if matchSchemaFile != "" {
		cfg.SchemaPath = matchSchemaFile
	}
	minScore := cfg.MinScore
	if matchMinScore > 0 {
		minScore = matchMinScore
	}
	if minScore < 0 || minScore > 100 {
		return fmt.Errorf("--min-score must be between 0 and 100")
	}

	log, err := logging.New(flagJSONLog, flagVerbose || cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	job, err := schemas.LoadJobPosting(cfg.SchemaPath, matchJobFile)
	if err != nil {
		return fmt.Errorf("invalid job posting: %w", err)
	}

	var embedder embedding.Generator
	if cfg.APIKey != "" {
		gemini := embedding.NewGemini(cfg.APIKey, cfg.EmbeddingModel)
		defer func() { _ = gemini.Close() }()
		embedder = gemini
	}

	p := parser.New(embedder, log,
		parser.WithEmbedTimeout(time.Duration(cfg.EmbedTimeoutSeconds)*time.Second))
	svc := service.New(p, store.NewMemoryResumeStore(), store.NewMemoryMatchStore(), log)

	ctx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.ParseTimeoutSeconds)*time.Second*time.Duration(len(args)))
	defer cancel()

	// Candidate IDs are the resume file names; duplicates would silently
	// overwrite each other, so reject them up front.
	candidateIDs := make([]string, 0, len(args))
	seen := make(map[string]bool, len(args))
	for _, resumeFile := range args {
		candidateID := filepath.Base(resumeFile)
		if seen[candidateID] {
			return fmt.Errorf("duplicate resume file name: %s", candidateID)
		}
		seen[candidateID] = true

		mimeType := mimeForFile(resumeFile)
		if mimeType == "" {
			return fmt.Errorf("cannot infer document type from %s (expected .pdf, .docx or .txt)", resumeFile)
		}
		data, err := os.ReadFile(resumeFile)
		if err != nil {
			return fmt.Errorf("failed to read resume file: %w", err)
		}
		if _, err := svc.ParseAndStore(ctx, candidateID, data, mimeType); err != nil {
			return fmt.Errorf("failed to parse %s: %w", resumeFile, err)
		}
		candidateIDs = append(candidateIDs, candidateID)
	}

	results, err := svc.RescoreJob(ctx, candidateIDs, job)
	if err != nil {
		return fmt.Errorf("failed to score resumes: %w", err)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].OverallScore > results[j].OverallScore
	})

	reported := results[:0]
	for _, r := range results {
		if r.OverallScore >= minScore {
			reported = append(reported, r)
		}
	}
	if len(reported) < len(results) {
		log.Info("results below minimum score suppressed",
			zap.Int("suppressed", len(results)-len(reported)),
			zap.Int("min_score", minScore))
	}

	jsonBytes, err := json.MarshalIndent(reported, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, _ = fmt.Fprintln(os.Stdout, string(jsonBytes))
	return nil
}
