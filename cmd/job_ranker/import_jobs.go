package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/job-ranker/internal/db"
)

var importJobsCmd = &cobra.Command{
	Use:   "import-jobs",
	Short: "Load a job pool file into PostgreSQL",
	Long: "Creates the job_pool table if needed and upserts every job from a JSON array. " +
		"Jobs with non-UUID IDs are matched on that ID so re-imports update in place.",
	RunE: runImportJobs,
}

var (
	importJobsFile        string
	importJobsDatabaseURL string
)

func init() {
	importJobsCmd.Flags().StringVarP(&importJobsFile, "jobs", "j", "", "Path to job pool JSON array (required)")
	importJobsCmd.Flags().StringVar(&importJobsDatabaseURL, "database-url", "", "PostgreSQL connection URL (defaults to $DATABASE_URL)")

	if err := importJobsCmd.MarkFlagRequired("jobs"); err != nil {
		panic(fmt.Sprintf("failed to mark jobs flag as required: %v", err))
	}

	rootCmd.AddCommand(importJobsCmd)
}

func runImportJobs(cmd *cobra.Command, _ []string) error {
	rt, err := newRuntime(cmd)
	if err != nil {
		return err
	}
	defer rt.close()

	databaseURL := pick(importJobsDatabaseURL, rt.cfg.DatabaseURL)
	if databaseURL == "" {
		return fmt.Errorf("--database-url or DATABASE_URL must be provided")
	}

	// 1. Load jobs (no pool size limit for imports)
	jobs, err := loadJobsFile(importJobsFile, 0)
	if err != nil {
		return err
	}

	// 2. Connect and ensure schema
	database, err := db.Connect(cmd.Context(), databaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.EnsureSchema(cmd.Context()); err != nil {
		return err
	}

	// 3. Upsert
	ids, err := database.InsertJobs(cmd.Context(), jobs)
	if err != nil {
		return err
	}
	rt.log.Info("imported jobs", zap.Int("jobs", len(ids)))

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Imported %d jobs\n", len(ids))
	return nil
}
