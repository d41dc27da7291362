package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/job-ranker/internal/db"
	"github.com/jonathan/job-ranker/internal/schemas"
	"github.com/jonathan/job-ranker/internal/types"
)

// readDocument reads a JSON input file and checks it against the schema for kind
func readDocument(path string, kind schemas.Kind) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s file %s: %w", kind, path, err)
	}
	if err := schemas.ValidateDocument(kind, content); err != nil {
		return nil, fmt.Errorf("%s file %s is invalid: %w", kind, path, err)
	}
	return content, nil
}

func loadCandidate(path string) (*types.ScoreCandidate, error) {
	content, err := readDocument(path, schemas.KindCandidate)
	if err != nil {
		return nil, err
	}

	var candidate types.ScoreCandidate
	if err := json.Unmarshal(content, &candidate); err != nil {
		return nil, fmt.Errorf("failed to unmarshal candidate JSON: %w", err)
	}
	return &candidate, nil
}

func loadProfile(path string) (*types.CandidateProfile, error) {
	content, err := readDocument(path, schemas.KindProfile)
	if err != nil {
		return nil, err
	}

	var profile types.CandidateProfile
	if err := json.Unmarshal(content, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile JSON: %w", err)
	}
	return &profile, nil
}

// loadJobsFile reads a job pool array. Pools larger than maxJobs are rejected.
func loadJobsFile(path string, maxJobs int) ([]types.Job, error) {
	content, err := readDocument(path, schemas.KindJobs)
	if err != nil {
		return nil, err
	}

	var jobs []types.Job
	if err := json.Unmarshal(content, &jobs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal jobs JSON: %w", err)
	}
	if maxJobs > 0 && len(jobs) > maxJobs {
		return nil, fmt.Errorf("job pool has %d jobs, more than --max-jobs %d", len(jobs), maxJobs)
	}
	return jobs, nil
}

// jobSource selects where the job pool comes from
type jobSource struct {
	path        string
	databaseURL string
	company     string
	skill       string
}

// resolveJobSource applies flag > config precedence; a file and a database
// given together on the command line are rejected.
func resolveJobSource(rt *runtime, jobsFlag, databaseFlag string) (jobSource, error) {
	if jobsFlag != "" && databaseFlag != "" {
		return jobSource{}, fmt.Errorf("--jobs and --database-url are mutually exclusive; provide only one")
	}

	switch {
	case jobsFlag != "":
		return jobSource{path: jobsFlag}, nil
	case databaseFlag != "":
		return jobSource{databaseURL: databaseFlag}, nil
	case rt.cfg.Jobs != "":
		return jobSource{path: rt.cfg.Jobs}, nil
	case rt.cfg.DatabaseURL != "":
		return jobSource{databaseURL: rt.cfg.DatabaseURL}, nil
	}
	return jobSource{}, fmt.Errorf("either --jobs or --database-url must be provided")
}

// loadJobPool reads the pool from a file or the job_pool table
func loadJobPool(ctx context.Context, rt *runtime, src jobSource) ([]types.Job, error) {
	maxJobs := rt.cfg.MaxJobs
	if maxJobsFlag > 0 {
		maxJobs = maxJobsFlag
	}

	if src.path != "" {
		jobs, err := loadJobsFile(src.path, maxJobs)
		if err != nil {
			return nil, err
		}
		rt.log.Debug("loaded job pool", zap.String("path", src.path), zap.Int("jobs", len(jobs)))
		return jobs, nil
	}

	database, err := db.Connect(ctx, src.databaseURL)
	if err != nil {
		return nil, err
	}
	defer database.Close()

	jobs, err := database.ListJobs(ctx, db.ListJobsOptions{
		Company: src.company,
		Skill:   src.skill,
		Limit:   maxJobs,
	})
	if err != nil {
		return nil, err
	}
	rt.log.Debug("loaded job pool from database", zap.Int("jobs", len(jobs)))
	return jobs, nil
}

// writeOutput writes v as indented JSON to path, or to the command's stdout when path is empty
func writeOutput(cmd *cobra.Command, path string, v any) error {
	jsonOutput, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output JSON: %w", err)
	}

	if path == "" {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), string(jsonOutput))
		return err
	}

	// Ensure output directory exists
	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}

	if err := os.WriteFile(path, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}

// readText reads a plain text file, or standard input when path is "-"
func readText(cmd *cobra.Command, path string) (string, error) {
	if path == "-" {
		content, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read standard input: %w", err)
		}
		return string(content), nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read text file %s: %w", path, err)
	}
	return string(content), nil
}
