package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/job-ranker/internal/types"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend the best jobs for a candidate profile",
	Long: "Ranks a job pool against a structured candidate profile and optional resume text, " +
		"returning the top matches with an explanation for each.",
	RunE: runRecommend,
}

var (
	recommendProfile     string
	recommendResume      string
	recommendName        string
	recommendJobs        string
	recommendDatabaseURL string
	recommendLimit       int
	recommendOutput      string
)

func init() {
	recommendCmd.Flags().StringVarP(&recommendProfile, "profile", "p", "", "Path to candidate profile JSON file")
	recommendCmd.Flags().StringVarP(&recommendResume, "resume", "r", "", "Path to resume plain text file (\"-\" for stdin)")
	recommendCmd.Flags().StringVarP(&recommendName, "name", "n", "", "Candidate name")
	recommendCmd.Flags().StringVarP(&recommendJobs, "jobs", "j", "", "Path to job pool JSON array")
	recommendCmd.Flags().StringVar(&recommendDatabaseURL, "database-url", "", "Read the job pool from PostgreSQL instead of a file")
	recommendCmd.Flags().IntVarP(&recommendLimit, "limit", "l", 0, "Number of recommendations (default 5)")
	recommendCmd.Flags().StringVarP(&recommendOutput, "out", "o", "", "Path to output JSON file (default stdout)")

	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	rt, err := newRuntime(cmd)
	if err != nil {
		return err
	}
	defer rt.close()

	// 1. Load profile and optional resume text
	profilePath := pick(recommendProfile, rt.cfg.Profile)
	if profilePath == "" {
		return fmt.Errorf("--profile must be provided")
	}
	profile, err := loadProfile(profilePath)
	if err != nil {
		return err
	}

	resumeText := ""
	if resumePath := pick(recommendResume, rt.cfg.Resume); resumePath != "" {
		resumeText, err = readText(cmd, resumePath)
		if err != nil {
			return err
		}
	}

	var user *types.User
	if name := pick(recommendName, rt.cfg.Name); name != "" {
		user = &types.User{Name: name}
	}

	// 2. Load job pool
	src, err := resolveJobSource(rt, recommendJobs, recommendDatabaseURL)
	if err != nil {
		return err
	}
	jobs, err := loadJobPool(cmd.Context(), rt, src)
	if err != nil {
		return err
	}

	// 3. Rank
	limit := recommendLimit
	if limit == 0 {
		limit = rt.cfg.Limit
	}
	ranked, err := rt.engine.RecommendJobs(profile, user, jobs, limit, resumeText)
	if err != nil {
		return fmt.Errorf("failed to recommend jobs: %w", err)
	}
	rt.log.Info("ranked recommendations",
		zap.Int("pool", len(jobs)),
		zap.Int("returned", len(ranked)),
		zap.Bool("resume_text", resumeText != ""),
	)

	if rt.printer != nil {
		rt.printer.PrintRecommendations(ranked)
	}

	// 4. Write output
	return writeOutput(cmd, recommendOutput, ranked)
}
