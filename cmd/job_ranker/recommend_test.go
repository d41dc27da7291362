package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-ranker/internal/types"
)

func TestRecommendCommand_ValidInput(t *testing.T) {
	profile := writeFile(t, "profile.json", profileJSON)
	jobs := writeFile(t, "jobs.json", jobsJSON)
	resume := writeFile(t, "resume.txt", "Built Tableau dashboards backed by SQL and Python")

	stdout, _, err := executeCommand(t, "", "recommend", "-p", profile, "-j", jobs, "-r", resume, "--name", "Dana")
	require.NoError(t, err)

	var ranked []types.RankedJob
	require.NoError(t, json.Unmarshal([]byte(stdout), &ranked))
	require.NotEmpty(t, ranked)

	top := ranked[0]
	assert.Equal(t, "job_001", top.ID)
	assert.Equal(t, 100, top.SkillScore)
	assert.Equal(t, 100, top.ExperienceScore)
	assert.Contains(t, top.Reason, "Excellent skill match")
	assert.Contains(t, top.Reason, "Your experience level fits this role")
}

func TestRecommendCommand_LimitAndStdinResume(t *testing.T) {
	profile := writeFile(t, "profile.json", profileJSON)
	jobs := writeFile(t, "jobs.json", jobsJSON)

	stdout, stderr, err := executeCommand(t, "Python and SQL reporting", "recommend", "-p", profile, "-j", jobs, "-r", "-", "--limit", "1", "-v")
	require.NoError(t, err)

	var ranked []types.RankedJob
	require.NoError(t, json.Unmarshal([]byte(stdout), &ranked))
	assert.Len(t, ranked, 1)
	assert.Contains(t, stderr, "RECOMMENDATIONS")
}

func TestRecommendCommand_Errors(t *testing.T) {
	profile := writeFile(t, "profile.json", profileJSON)
	jobs := writeFile(t, "jobs.json", jobsJSON)
	badProfile := writeFile(t, "bad.json", `{"skills": [{"level": "expert"}]}`)

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"missing profile", []string{"recommend", "-j", jobs}, "--profile"},
		{"invalid profile", []string{"recommend", "-p", badProfile, "-j", jobs}, "profile file"},
		{"negative limit", []string{"recommend", "-p", profile, "-j", jobs, "--limit", "-1"}, "limit"},
		{"missing resume", []string{"recommend", "-p", profile, "-j", jobs, "-r", "/nonexistent/resume.txt"}, "failed to read text file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := executeCommand(t, "", tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
