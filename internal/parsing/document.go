package parsing

import (
	"strings"

	"github.com/jonathan/job-ranker/internal/types"
)

// Repetition factors applied when building documents
const (
	resumeTextRepeat     = 2
	jobTitleRepeat       = 3
	jobSkillRepeat       = 3
	candidateTitleRepeat = 3
	candidateSkillRepeat = 3
	candidateTextRepeat  = 2
)

// ProficiencyWeights maps a proficiency level to how many times a declared
// skill is repeated in the candidate document. Unknown levels weigh 1.
type ProficiencyWeights map[string]int

// DefaultProficiencyWeights returns expert=4, advanced=3, intermediate=2.
func DefaultProficiencyWeights() ProficiencyWeights {
	return ProficiencyWeights{
		types.ProficiencyExpert:       4,
		types.ProficiencyAdvanced:     3,
		types.ProficiencyIntermediate: 2,
	}
}

// Weight returns the repetition count for a proficiency level (minimum 1).
func (w ProficiencyWeights) Weight(proficiency string) int {
	if n, ok := w[strings.ToLower(strings.TrimSpace(proficiency))]; ok && n > 0 {
		return n
	}
	return 1
}

// documentBuilder accumulates cleaned, repeated text fragments
type documentBuilder struct {
	parts []string
}

func (b *documentBuilder) add(text string, times int) {
	cleaned := CleanText(text)
	if cleaned == "" {
		return
	}
	for i := 0; i < times; i++ {
		b.parts = append(b.parts, cleaned)
	}
}

func (b *documentBuilder) String() string {
	return strings.ToLower(strings.Join(b.parts, " "))
}

// BuildProfileText builds the weighted candidate document for profile-based recommendations.
// Resume text is included twice, declared skills are repeated by proficiency,
// followed by experience titles and descriptions, about/summary, education and name.
// Missing fields are skipped.
func BuildProfileText(profile *types.CandidateProfile, candidateName, resumeText string, weights ProficiencyWeights) string {
	var b documentBuilder

	b.add(resumeText, resumeTextRepeat)

	if profile != nil {
		for _, skill := range profile.Skills {
			b.add(skill.Name, weights.Weight(skill.Proficiency))
		}
		for _, exp := range profile.Experience {
			b.add(exp.Title, 1)
			b.add(exp.Description, 1)
		}
		b.add(profile.About, 1)
		b.add(profile.Summary, 1)
		for _, edu := range profile.Education {
			b.add(edu.Degree, 1)
			b.add(edu.Field, 1)
			b.add(edu.Institution, 1)
			b.add(edu.Description, 1)
		}
	}

	b.add(candidateName, 1)

	return b.String()
}

// BuildCandidateText builds the candidate document used when scoring an external job pool.
// Title and skills are emphasized like their job-side counterparts; the summary stands in for resume text.
func BuildCandidateText(candidate *types.ScoreCandidate) string {
	var b documentBuilder
	if candidate == nil {
		return ""
	}

	b.add(candidate.Title, candidateTitleRepeat)
	for _, skill := range candidate.Skills {
		b.add(skill, candidateSkillRepeat)
	}
	b.add(candidate.Summary, candidateTextRepeat)

	return b.String()
}

// BuildJobText builds the weighted job document: title and required skills
// three times each, then description, requirements, company and job type.
func BuildJobText(job *types.Job) string {
	var b documentBuilder
	if job == nil {
		return ""
	}

	b.add(job.Title, jobTitleRepeat)
	for _, skill := range job.RequiredSkills() {
		b.add(skill, jobSkillRepeat)
	}
	b.add(job.Description, 1)
	b.add(job.Requirements, 1)
	b.add(job.Company, 1)
	b.add(job.EmploymentType(), 1)

	return b.String()
}
