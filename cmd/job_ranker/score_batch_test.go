package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-ranker/internal/ranking"
)

func TestScoreBatchCommand(t *testing.T) {
	dir := t.TempDir()
	analyst := filepath.Join(dir, "analyst.json")
	nurse := filepath.Join(dir, "nurse.json")
	require.NoError(t, os.WriteFile(analyst, []byte(candidateJSON), 0644))
	require.NoError(t, os.WriteFile(nurse, []byte(`{"title": "Nurse", "summary": "Patient care"}`), 0644))
	jobs := writeFile(t, "jobs.json", jobsJSON)
	missing := filepath.Join(dir, "ghost.json")

	candidates := strings.Join([]string{analyst, nurse, missing}, ", ")
	stdout, stderr, err := executeCommand(t, "", "score-batch", "-j", jobs, "--candidates", candidates, "--concurrency", "2", "--min-score", "0", "-v")
	require.NoError(t, err)

	var results []ranking.BatchResult
	require.NoError(t, json.Unmarshal([]byte(stdout), &results))
	require.Len(t, results, 3)

	assert.Equal(t, "analyst", results[0].ID)
	require.Len(t, results[0].Jobs, 2)
	assert.Equal(t, "job_001", results[0].Jobs[0].ID)

	assert.Equal(t, "nurse", results[1].ID)
	require.Len(t, results[1].Jobs, 2)
	assert.Equal(t, "job_002", results[1].Jobs[0].ID)
	assert.Equal(t, 100, results[1].Jobs[0].TitleScore)

	assert.Equal(t, "ghost", results[2].ID)
	assert.Contains(t, results[2].Error, "failed to read candidate file")

	assert.Contains(t, stderr, "BATCH RESULTS")
}

func TestScoreBatchCommand_Errors(t *testing.T) {
	jobs := writeFile(t, "jobs.json", jobsJSON)

	_, _, err := executeCommand(t, "", "score-batch", "-j", jobs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "candidates")

	_, _, err = executeCommand(t, "", "score-batch", "-j", jobs, "--candidates", " , ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one file")
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a.json", "b.json"}, splitList(" a.json,, b.json ,"))
	assert.Nil(t, splitList(""))
}
