// Package main provides the job_ranker CLI for scoring and recommending job postings.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "job_ranker",
	Short: "Rank job postings against a candidate",
	Long: "job_ranker scores a pool of job postings against a candidate using TF-IDF similarity, " +
		"skill overlap and experience fit, and explains every score.",
	SilenceUsage: true,
}

var (
	configPath     string
	debugLogs      bool
	jsonLogs       bool
	verbose        bool
	vocabularyPath string
	maxJobsFlag    int
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file (defaults to $JOB_RANKER_CONFIG)")
	rootCmd.PersistentFlags().BoolVar(&debugLogs, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "Emit logs as JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print detailed summaries to stderr")
	rootCmd.PersistentFlags().StringVar(&vocabularyPath, "vocabulary", "", "Path to YAML skill vocabulary (defaults to the embedded one)")
	rootCmd.PersistentFlags().IntVar(&maxJobsFlag, "max-jobs", 0, "Maximum job pool size (default 500)")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
