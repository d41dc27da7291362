package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/job-ranker/internal/ranking"
)

var scoreBatchCmd = &cobra.Command{
	Use:   "score-batch",
	Short: "Score one job pool against several candidates concurrently",
	Long: "Runs score-jobs for each candidate file in parallel against the same job pool. " +
		"Results keep the order of --candidates; an invalid candidate is reported without failing the batch.",
	RunE: runScoreBatch,
}

var (
	scoreBatchJobs        string
	scoreBatchDatabaseURL string
	scoreBatchCandidates  string
	scoreBatchConcurrency int
	scoreBatchMinScore    int
	scoreBatchOutput      string
)

func init() {
	scoreBatchCmd.Flags().StringVarP(&scoreBatchJobs, "jobs", "j", "", "Path to job pool JSON array")
	scoreBatchCmd.Flags().StringVar(&scoreBatchDatabaseURL, "database-url", "", "Read the job pool from PostgreSQL instead of a file")
	scoreBatchCmd.Flags().StringVar(&scoreBatchCandidates, "candidates", "", "Comma-separated candidate JSON files (required)")
	scoreBatchCmd.Flags().IntVar(&scoreBatchConcurrency, "concurrency", 0, "Parallel scoring workers (default 4)")
	scoreBatchCmd.Flags().IntVarP(&scoreBatchMinScore, "min-score", "m", 25, "Minimum match score to keep (0-100)")
	scoreBatchCmd.Flags().StringVarP(&scoreBatchOutput, "out", "o", "", "Path to output JSON file (default stdout)")

	if err := scoreBatchCmd.MarkFlagRequired("candidates"); err != nil {
		panic(fmt.Sprintf("failed to mark candidates flag as required: %v", err))
	}

	rootCmd.AddCommand(scoreBatchCmd)
}

func runScoreBatch(cmd *cobra.Command, _ []string) error {
	rt, err := newRuntime(cmd)
	if err != nil {
		return err
	}
	defer rt.close()

	// 1. Load job pool
	src, err := resolveJobSource(rt, scoreBatchJobs, scoreBatchDatabaseURL)
	if err != nil {
		return err
	}
	jobs, err := loadJobPool(cmd.Context(), rt, src)
	if err != nil {
		return err
	}

	minScore := rt.engine.Policy().MinScore
	if rt.cfg.MinScore != 0 {
		minScore = rt.cfg.MinScore
	}
	if cmd.Flags().Changed("min-score") {
		minScore = scoreBatchMinScore
	}

	// 2. Build one request per candidate file; unreadable files become failed results
	var reqs []ranking.BatchRequest
	loadErrs := make(map[int]error)
	for i, path := range splitList(scoreBatchCandidates) {
		req := ranking.BatchRequest{
			ID:       strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
			Jobs:     jobs,
			MinScore: minScore,
		}
		candidate, err := loadCandidate(path)
		if err != nil {
			rt.log.Warn("skipping candidate", zap.String("path", path), zap.Error(err))
			loadErrs[i] = err
		} else {
			req.Candidate = candidate
		}
		reqs = append(reqs, req)
	}
	if len(reqs) == 0 {
		return fmt.Errorf("--candidates must list at least one file")
	}

	// 3. Score concurrently
	concurrency := scoreBatchConcurrency
	if concurrency == 0 {
		concurrency = rt.cfg.Concurrency
	}
	results, err := rt.engine.ScoreBatch(cmd.Context(), reqs, concurrency)
	if err != nil {
		return fmt.Errorf("batch scoring interrupted: %w", err)
	}
	for i, loadErr := range loadErrs {
		results[i].Error = loadErr.Error()
	}
	rt.log.Info("scored batch", zap.Int("candidates", len(results)), zap.Int("pool", len(jobs)))

	if rt.printer != nil {
		ids := make([]string, len(results))
		kept := make([]int, len(results))
		errs := make([]string, len(results))
		for i, r := range results {
			ids[i], kept[i], errs[i] = r.ID, len(r.Jobs), r.Error
		}
		rt.printer.PrintBatchSummary(ids, kept, errs)
	}

	return writeOutput(cmd, scoreBatchOutput, results)
}

// splitList splits a comma-separated flag value, dropping blanks
func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
