package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var scoreJobsCmd = &cobra.Command{
	Use:   "score-jobs",
	Short: "Score a job pool against a candidate",
	Long: "Scores every job in a pool against a candidate summary, keeps jobs at or above the minimum score " +
		"and prints them as JSON sorted by match score.",
	RunE: runScoreJobs,
}

var (
	scoreJobsCandidate   string
	scoreJobsJobs        string
	scoreJobsDatabaseURL string
	scoreJobsCompany     string
	scoreJobsSkill       string
	scoreJobsMinScore    int
	scoreJobsOutput      string
)

func init() {
	scoreJobsCmd.Flags().StringVarP(&scoreJobsCandidate, "candidate", "c", "", "Path to candidate JSON file")
	scoreJobsCmd.Flags().StringVarP(&scoreJobsJobs, "jobs", "j", "", "Path to job pool JSON array")
	scoreJobsCmd.Flags().StringVar(&scoreJobsDatabaseURL, "database-url", "", "Read the job pool from PostgreSQL instead of a file")
	scoreJobsCmd.Flags().StringVar(&scoreJobsCompany, "company", "", "Only score database jobs from this company")
	scoreJobsCmd.Flags().StringVar(&scoreJobsSkill, "skill", "", "Only score database jobs listing this skill")
	scoreJobsCmd.Flags().IntVarP(&scoreJobsMinScore, "min-score", "m", 25, "Minimum match score to keep (0-100)")
	scoreJobsCmd.Flags().StringVarP(&scoreJobsOutput, "out", "o", "", "Path to output JSON file (default stdout)")

	rootCmd.AddCommand(scoreJobsCmd)
}

func runScoreJobs(cmd *cobra.Command, _ []string) error {
	rt, err := newRuntime(cmd)
	if err != nil {
		return err
	}
	defer rt.close()

	// 1. Load candidate
	candidatePath := pick(scoreJobsCandidate, rt.cfg.Candidate)
	if candidatePath == "" {
		return fmt.Errorf("--candidate must be provided")
	}
	candidate, err := loadCandidate(candidatePath)
	if err != nil {
		return err
	}

	// 2. Load job pool
	src, err := resolveJobSource(rt, scoreJobsJobs, scoreJobsDatabaseURL)
	if err != nil {
		return err
	}
	src.company, src.skill = scoreJobsCompany, scoreJobsSkill
	jobs, err := loadJobPool(cmd.Context(), rt, src)
	if err != nil {
		return err
	}

	// 3. Resolve threshold: flag, then config, then policy
	minScore := rt.engine.Policy().MinScore
	if rt.cfg.MinScore != 0 {
		minScore = rt.cfg.MinScore
	}
	if cmd.Flags().Changed("min-score") {
		minScore = scoreJobsMinScore
	}

	// 4. Score
	scored, err := rt.engine.ScoreJobs(candidate, jobs, minScore)
	if err != nil {
		return fmt.Errorf("failed to score jobs: %w", err)
	}
	rt.log.Info("scored jobs",
		zap.Int("pool", len(jobs)),
		zap.Int("kept", len(scored)),
		zap.Int("min_score", minScore),
	)

	if rt.printer != nil {
		rt.printer.PrintCandidate(candidate.Title, candidate.Skills, candidate.ExperienceYears)
		rt.printer.PrintScoredJobs(scored, len(jobs), minScore)
	}

	// 5. Write output
	return writeOutput(cmd, scoreJobsOutput, scored)
}
