package ranking

import (
	"strings"

	"github.com/jonathan/job-ranker/internal/parsing"
	"github.com/jonathan/job-ranker/internal/skills"
)

// SkillMatch is the result of comparing a candidate's skills with a job's required skills
type SkillMatch struct {
	Score   float64  // 0-100
	Matched []string // job skills found in the candidate pool, in job order
	Missing []string // job skills not found, in job order
}

// skillPool is the candidate's declared skills plus those extracted from resume text
type skillPool []string

func newSkillPool(declared []string, resumeText string, dict *skills.Dictionary) skillPool {
	pool := skills.NewSet(parsing.UniqueSkills(declared)...)
	if dict != nil {
		pool.Union(dict.Extract(resumeText))
	}
	return skillPool(pool.Sorted())
}

// covers reports whether any pool skill contains the job skill or is contained by it,
// so "react" and "reactjs" match each other. No alias expansion happens here.
func (p skillPool) covers(jobSkill string) bool {
	for _, candidateSkill := range p {
		if strings.Contains(candidateSkill, jobSkill) || strings.Contains(jobSkill, candidateSkill) {
			return true
		}
	}
	return false
}

func (p skillPool) match(jobSkills []string) SkillMatch {
	// Job skills are counted as listed; duplicates stay in the denominator
	required := make([]string, 0, len(jobSkills))
	for _, skill := range jobSkills {
		if key := parsing.SkillKey(skill); key != "" {
			required = append(required, key)
		}
	}

	result := SkillMatch{Matched: []string{}, Missing: []string{}}
	if len(required) == 0 {
		// No stated requirement gives no signal, not a perfect match
		return result
	}

	for _, skill := range required {
		if p.covers(skill) {
			result.Matched = append(result.Matched, skill)
		} else {
			result.Missing = append(result.Missing, skill)
		}
	}

	result.Score = float64(len(result.Matched)) / float64(len(required)) * 100
	return result
}

// MatchSkills computes the fraction of jobSkills (as 0-100) covered by the candidate's
// declared skills together with dictionary skills found in resumeText.
// A job with no required skills scores 0.
func MatchSkills(candidateSkills, jobSkills []string, resumeText string, dict *skills.Dictionary) SkillMatch {
	return newSkillPool(candidateSkills, resumeText, dict).match(jobSkills)
}
