// Package ranking scores and ranks job postings against a candidate.
package ranking

import (
	"fmt"
	"math"
	"strings"

	"github.com/jonathan/job-ranker/internal/types"
)

const (
	lowestScore = 0
	maxScore    = 100

	// Skill score tiers used in explanations
	excellentSkillTier = 80
	goodSkillTier      = 50
)

// signals are the per-job inputs to the combiner
type signals struct {
	similarity     float64 // cosine similarity in [0, 1]
	skills         SkillMatch
	title          int
	candidateYears int
	requiredYears  int
	jobType        string
}

func (s signals) experienceMet() bool {
	return s.candidateYears >= s.requiredYears
}

// experiencePenalty is zero when the requirement is met, otherwise PenaltyPerYear
// per missing year up to PenaltyCap.
func (p Policy) experiencePenalty(s signals) float64 {
	if s.experienceMet() {
		return 0
	}
	missing := float64(s.requiredYears - s.candidateYears)
	return math.Min(missing*p.PenaltyPerYear, p.PenaltyCap)
}

// combinedScore merges the signals into the unrounded composite, clamped to [0, 100].
func (p Policy) combinedScore(s signals) float64 {
	score := s.similarity*100*p.SemanticWeight + s.skills.Score*p.SkillWeight
	if s.experienceMet() {
		score += p.ExperienceBonus
	}
	score -= p.experiencePenalty(s)

	return math.Max(lowestScore, math.Min(maxScore, score))
}

// experienceScore is 100 when the requirement is met, otherwise the share of required years held.
func experienceScore(s signals) int {
	if s.experienceMet() || s.requiredYears <= 0 {
		return maxScore
	}
	return int(math.Round(float64(s.candidateYears) / float64(s.requiredYears) * 100))
}

// breakdown builds the immutable per-job result.
func (p Policy) breakdown(s signals) types.ScoreBreakdown {
	return types.ScoreBreakdown{
		MatchScore:      int(math.Round(p.combinedScore(s))),
		SemanticScore:   int(math.Round(s.similarity * 100)),
		SkillScore:      int(math.Round(s.skills.Score)),
		TitleScore:      s.title,
		ExperienceScore: experienceScore(s),
		MatchedSkills:   s.skills.Matched,
		MissingSkills:   s.skills.Missing,
		Reason:          p.reason(s),
	}
}

// reason creates a short explanation of the score. Clauses appear in a fixed order:
// skill tier, matched skill names, experience fit, job type; a generic phrase
// is used when none applies.
func (p Policy) reason(s signals) string {
	var parts []string

	// Skill match description
	switch {
	case s.skills.Score >= excellentSkillTier:
		parts = append(parts, "Excellent skill match")
	case s.skills.Score >= goodSkillTier:
		parts = append(parts, "Good skill match")
	case s.skills.Score > 0:
		parts = append(parts, "Some matching skills")
	}

	if len(s.skills.Matched) > 0 && p.ReasonSkillLimit > 0 {
		named := s.skills.Matched
		if len(named) > p.ReasonSkillLimit {
			named = named[:p.ReasonSkillLimit]
		}
		parts = append(parts, fmt.Sprintf("Matches: %s", strings.Join(named, ", ")))
	}

	if s.experienceMet() {
		parts = append(parts, "Your experience level fits this role")
	}

	if jobType := strings.TrimSpace(s.jobType); jobType != "" {
		parts = append(parts, fmt.Sprintf("%s position", jobType))
	}

	if len(parts) == 0 {
		return "Potential match based on your overall profile."
	}
	return strings.Join(parts, ". ") + "."
}
