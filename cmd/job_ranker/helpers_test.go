package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-ranker/internal/config"
)

const candidateJSON = `{
	"skills": ["python", "sql"],
	"title": "Data Analyst",
	"experience_years": 3
}`

const profileJSON = `{
	"skills": [
		{"name": "Python", "proficiency": "expert"},
		{"name": "SQL", "proficiency": "advanced"},
		"Tableau"
	],
	"experience": [
		{"title": "Data Analyst", "description": "Dashboards and reporting", "start_date": "2015-01", "current": true}
	],
	"about": "Analyst who enjoys clean data"
}`

const jobsJSON = `[
	{
		"id": "job_001",
		"title": "Senior Data Analyst",
		"skills_required": ["python", "sql", "tableau"],
		"experience": "5+ years"
	},
	{
		"id": "job_002",
		"title": "Nurse",
		"description": "Patient care on a busy ward"
	}
]`

// writeFile writes content under a fresh temp dir and returns its path
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// resetFlags restores every flag to its default so commands can run repeatedly in-process
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// executeCommand runs the root command with args and returns stdout and stderr
func executeCommand(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	// Keep the developer's environment out of the run
	t.Setenv(config.EnvConfigPath, "")
	t.Setenv(config.EnvDatabaseURL, "")
	t.Setenv(config.EnvMaxJobs, "")

	resetFlags(rootCmd)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}
