package ranking

import (
	"fmt"

	"github.com/jonathan/job-ranker/internal/experience"
	"github.com/jonathan/job-ranker/internal/parsing"
)

// Policy holds the tunable constants of the ranking heuristic
type Policy struct {
	// Composite score
	SemanticWeight  float64 `json:"semantic_weight"`  // applied to cosine similarity x 100
	SkillWeight     float64 `json:"skill_weight"`     // applied to the 0-100 skill score
	ExperienceBonus float64 `json:"experience_bonus"` // added when experience requirement is met
	PenaltyPerYear  float64 `json:"penalty_per_year"` // subtracted per missing year
	PenaltyCap      float64 `json:"penalty_cap"`      // maximum experience penalty

	Experience  experience.Policy          `json:"experience"`
	Proficiency parsing.ProficiencyWeights `json:"proficiency,omitempty"`

	// Filtering
	MinScore       int `json:"min_score"`       // default threshold when scoring a job pool
	RecommendFloor int `json:"recommend_floor"` // recommendations must score strictly above this
	RecommendLimit int `json:"recommend_limit"` // default number of recommendations

	// Title relevance
	TitleBase    float64 `json:"title_base"`
	TitleSpan    float64 `json:"title_span"`
	TitleMissing int     `json:"title_missing"`

	// Explanation
	ReasonSkillLimit int `json:"reason_skill_limit"`
}

// DefaultPolicy returns the standard ranking policy.
func DefaultPolicy() Policy {
	return Policy{
		SemanticWeight:   0.40,
		SkillWeight:      0.45,
		ExperienceBonus:  15,
		PenaltyPerYear:   5,
		PenaltyCap:       30,
		Experience:       experience.DefaultPolicy(),
		Proficiency:      parsing.DefaultProficiencyWeights(),
		MinScore:         25,
		RecommendFloor:   10,
		RecommendLimit:   5,
		TitleBase:        20,
		TitleSpan:        75,
		TitleMissing:     50,
		ReasonSkillLimit: 4,
	}
}

// Validate checks that weights are non-negative and thresholds lie within the score range.
func (p Policy) Validate() error {
	weights := map[string]float64{
		"semantic_weight":  p.SemanticWeight,
		"skill_weight":     p.SkillWeight,
		"experience_bonus": p.ExperienceBonus,
		"penalty_per_year": p.PenaltyPerYear,
		"penalty_cap":      p.PenaltyCap,
		"title_base":       p.TitleBase,
		"title_span":       p.TitleSpan,
	}
	for field, value := range weights {
		if value < 0 {
			return &InputError{Field: "policy." + field, Message: fmt.Sprintf("must be non-negative, got %v", value)}
		}
	}

	thresholds := map[string]int{
		"min_score":       p.MinScore,
		"recommend_floor": p.RecommendFloor,
		"title_missing":   p.TitleMissing,
	}
	for field, value := range thresholds {
		if value < 0 || value > maxScore {
			return &InputError{Field: "policy." + field, Message: fmt.Sprintf("must be within [0, %d], got %d", maxScore, value)}
		}
	}

	if p.RecommendLimit < 0 {
		return &InputError{Field: "policy.recommend_limit", Message: "must be non-negative"}
	}
	if p.ReasonSkillLimit < 0 {
		return &InputError{Field: "policy.reason_skill_limit", Message: "must be non-negative"}
	}
	if p.Experience.SeniorYears < 0 || p.Experience.MidYears < 0 {
		return &InputError{Field: "policy.experience", Message: "seniority years must be non-negative"}
	}

	return nil
}
