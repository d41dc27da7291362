// Package types provides type definitions for structured data used throughout the job-ranker system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ScoreBreakdown is the per-job scoring result.
// MatchScore is clamped to [0, 100]; the sub-scores are rounded but not clamped
// and are not required to sum to MatchScore.
type ScoreBreakdown struct {
	MatchScore      int      `json:"match_score"`
	SemanticScore   int      `json:"semantic_score"`
	SkillScore      int      `json:"skill_score"`
	TitleScore      int      `json:"title_score"`
	ExperienceScore int      `json:"experience_score"`
	MatchedSkills   []string `json:"matched_skills"`
	MissingSkills   []string `json:"missing_skills"`
	Reason          string   `json:"reason"`
}

// ScoredJob is a job from an external pool scored against a candidate
type ScoredJob struct {
	Job
	ScoreBreakdown
}

// RankedJob is a job recommended for a candidate profile
type RankedJob struct {
	Job
	ScoreBreakdown
}
