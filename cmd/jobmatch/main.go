// Package main provides the jobmatch CLI: parse resumes into structured
// JSON and score them against job postings.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jobmatch",
	Short: "Resume parsing and job match scoring",
	Long:  "jobmatch extracts structured data from PDF, DOCX and plain text resumes and computes explainable match scores against job postings.",
}

var (
	flagVerbose bool
	flagJSONLog bool
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Print detailed debug information")
	rootCmd.PersistentFlags().BoolVar(&flagJSONLog, "json-log", false, "Emit structured JSON logs")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
