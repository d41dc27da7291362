package parsing

import (
	"strings"
	"testing"

	"github.com/jonathan/job-ranker/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestProficiencyWeights_Weight(t *testing.T) {
	weights := DefaultProficiencyWeights()

	tests := []struct {
		proficiency string
		expected    int
	}{
		{"expert", 4},
		{"Advanced", 3},
		{" intermediate ", 2},
		{"beginner", 1},
		{"", 1},
	}

	for _, tt := range tests {
		t.Run(tt.proficiency, func(t *testing.T) {
			assert.Equal(t, tt.expected, weights.Weight(tt.proficiency))
		})
	}
}

func TestBuildProfileText_Weighting(t *testing.T) {
	profile := &types.CandidateProfile{
		Skills: []types.DeclaredSkill{
			{Name: "Kubernetes", Proficiency: "expert"},
			{Name: "Terraform"},
		},
		Experience: []types.ExperienceEntry{
			{Title: "Platform Engineer", Description: "Ran clusters"},
		},
		About:     "Infrastructure person",
		Education: []types.EducationEntry{{Degree: "BSc", Field: "Physics"}},
	}

	text := BuildProfileText(profile, "Ada Lovelace", "Resume BODY", DefaultProficiencyWeights())

	assert.Equal(t, 2, strings.Count(text, "resume body"))
	assert.Equal(t, 4, strings.Count(text, "kubernetes"))
	assert.Equal(t, 1, strings.Count(text, "terraform"))
	assert.Contains(t, text, "platform engineer")
	assert.Contains(t, text, "ran clusters")
	assert.Contains(t, text, "infrastructure person")
	assert.Contains(t, text, "physics")
	assert.True(t, strings.HasSuffix(text, "ada lovelace"))
	assert.Equal(t, strings.ToLower(text), text)
}

func TestBuildProfileText_MissingFields(t *testing.T) {
	assert.Equal(t, "", BuildProfileText(nil, "", "", DefaultProficiencyWeights()))
	assert.Equal(t, "jo", BuildProfileText(&types.CandidateProfile{}, "Jo", "", nil))
}

func TestBuildJobText_Weighting(t *testing.T) {
	job := &types.Job{
		Title:          "Data Analyst",
		SkillsRequired: []string{"Tableau"},
		Description:    "<p>Analyze data</p>",
		Company:        "Acme",
		JobType:        "Full-time",
	}

	text := BuildJobText(job)

	assert.Equal(t, 3, strings.Count(text, "data analyst"))
	assert.Equal(t, 3, strings.Count(text, "tableau"))
	assert.Contains(t, text, "analyze data")
	assert.NotContains(t, text, "<p>")
	assert.True(t, strings.HasSuffix(text, "acme full-time"))
}

func TestBuildJobText_Nil(t *testing.T) {
	assert.Equal(t, "", BuildJobText(nil))
	assert.Equal(t, "", BuildJobText(&types.Job{}))
}

func TestBuildCandidateText(t *testing.T) {
	candidate := &types.ScoreCandidate{
		Skills:  []string{"Python"},
		Title:   "Data Analyst",
		Summary: "Dashboards",
	}

	text := BuildCandidateText(candidate)

	assert.Equal(t, 3, strings.Count(text, "data analyst"))
	assert.Equal(t, 3, strings.Count(text, "python"))
	assert.Equal(t, 2, strings.Count(text, "dashboards"))
	assert.Equal(t, "", BuildCandidateText(nil))
}
