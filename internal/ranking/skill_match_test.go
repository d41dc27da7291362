package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/job-ranker/internal/skills"
)

func TestMatchSkills(t *testing.T) {
	dict := skills.Default()

	tests := []struct {
		name            string
		candidateSkills []string
		jobSkills       []string
		resumeText      string
		expectedScore   float64
		expectedMatched []string
		expectedMissing []string
	}{
		{
			name:            "no job skills gives no signal",
			candidateSkills: []string{"go"},
			jobSkills:       nil,
			expectedScore:   0,
			expectedMatched: []string{},
			expectedMissing: []string{},
		},
		{
			name:            "containment in either direction",
			candidateSkills: []string{"ReactJS"},
			jobSkills:       []string{"React", "Redux"},
			expectedScore:   50,
			expectedMatched: []string{"react"},
			expectedMissing: []string{"redux"},
		},
		{
			name:            "aliases are not expanded",
			candidateSkills: []string{"k8s"},
			jobSkills:       []string{"Kubernetes"},
			expectedScore:   0,
			expectedMatched: []string{},
			expectedMissing: []string{"kubernetes"},
		},
		{
			name:            "golang does not match go-containing skills",
			candidateSkills: []string{"golang"},
			jobSkills:       []string{"Django", "MongoDB", "Google Cloud"},
			expectedScore:   0,
			expectedMatched: []string{},
			expectedMissing: []string{"django", "mongodb", "google cloud"},
		},
		{
			name:            "java does not match JS",
			candidateSkills: []string{"Java"},
			jobSkills:       []string{"JS"},
			expectedScore:   0,
			expectedMatched: []string{},
			expectedMissing: []string{"js"},
		},
		{
			name:            "duplicate job skills count separately",
			candidateSkills: []string{"python"},
			jobSkills:       []string{"python", "Python", "sql"},
			expectedScore:   200.0 / 3.0,
			expectedMatched: []string{"python", "python"},
			expectedMissing: []string{"sql"},
		},
		{
			name:            "candidate duplicates collapse case-insensitively",
			candidateSkills: []string{"SQL", "sql", " Sql "},
			jobSkills:       []string{"sql"},
			expectedScore:   100,
			expectedMatched: []string{"sql"},
			expectedMissing: []string{},
		},
		{
			name:            "skills found in resume text count",
			candidateSkills: nil,
			jobSkills:       []string{"Docker", "Terraform"},
			resumeText:      "Shipped services with Docker on AWS",
			expectedScore:   50,
			expectedMatched: []string{"docker"},
			expectedMissing: []string{"terraform"},
		},
		{
			name:            "empty candidate",
			candidateSkills: nil,
			jobSkills:       []string{"SQL"},
			expectedScore:   0,
			expectedMatched: []string{},
			expectedMissing: []string{"sql"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchSkills(tt.candidateSkills, tt.jobSkills, tt.resumeText, dict)
			assert.InDelta(t, tt.expectedScore, got.Score, 1e-9)
			assert.Equal(t, tt.expectedMatched, got.Matched)
			assert.Equal(t, tt.expectedMissing, got.Missing)
		})
	}
}

func TestMatchSkills_NilDictionary(t *testing.T) {
	got := MatchSkills(nil, []string{"python"}, "python everywhere", nil)
	assert.Zero(t, got.Score)
	assert.Equal(t, []string{"python"}, got.Missing)
}
