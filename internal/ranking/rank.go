package ranking

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/jonathan/job-ranker/internal/experience"
	"github.com/jonathan/job-ranker/internal/parsing"
	"github.com/jonathan/job-ranker/internal/skills"
	"github.com/jonathan/job-ranker/internal/types"
)

// ScoreJobs scores an external job pool against a candidate, keeps jobs with
// MatchScore >= minScore and sorts them by MatchScore descending.
// Jobs with equal scores keep their input order.
func (e *Engine) ScoreJobs(candidate *types.ScoreCandidate, jobs []types.Job, minScore int) ([]types.ScoredJob, error) {
	if candidate == nil {
		return nil, &InputError{Field: "candidate", Message: "is required"}
	}
	if err := candidate.Validate(); err != nil {
		return nil, &InputError{Field: "candidate", Message: "failed validation", Cause: err}
	}
	if minScore < lowestScore || minScore > maxScore {
		return nil, &InputError{Field: "min_score", Message: fmt.Sprintf("must be within [0, 100], got %d", minScore)}
	}

	if len(jobs) == 0 {
		return []types.ScoredJob{}, nil
	}

	breakdowns := e.scoreAll(candidateInput{
		document:   parsing.BuildCandidateText(candidate),
		skills:     candidate.Skills,
		resumeText: candidate.Summary,
		title:      candidate.Title,
		years:      candidate.ExperienceYears,
	}, jobs)

	scored := make([]types.ScoredJob, 0, len(jobs))
	for i, b := range breakdowns {
		if b.MatchScore >= minScore {
			scored = append(scored, types.ScoredJob{Job: jobs[i], ScoreBreakdown: b})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].MatchScore > scored[j].MatchScore
	})

	e.logger.Debug("filtered scored jobs",
		zap.Int("kept", len(scored)),
		zap.Int("dropped", len(jobs)-len(scored)),
		zap.Int("min_score", minScore),
	)

	return scored, nil
}

// RecommendJobs ranks jobs for a candidate profile. Jobs scoring above the
// policy's RecommendFloor are sorted descending and truncated to limit;
// a zero limit uses the policy default.
func (e *Engine) RecommendJobs(profile *types.CandidateProfile, user *types.User, jobs []types.Job, limit int, resumeText string) ([]types.RankedJob, error) {
	if profile == nil {
		return nil, &InputError{Field: "profile", Message: "is required"}
	}
	if limit < 0 {
		return nil, &InputError{Field: "limit", Message: fmt.Sprintf("must be non-negative, got %d", limit)}
	}
	if limit == 0 {
		limit = e.policy.RecommendLimit
	}

	if len(jobs) == 0 {
		return []types.RankedJob{}, nil
	}

	name := ""
	if user != nil {
		name = user.Name
	}

	breakdowns := e.scoreAll(candidateInput{
		document:   parsing.BuildProfileText(profile, name, resumeText, e.policy.Proficiency),
		skills:     profile.SkillNames(),
		resumeText: resumeText,
		title:      profileTitle(profile),
		years:      experience.CandidateYears(profile.Experience, e.now()),
	}, jobs)

	ranked := make([]types.RankedJob, 0, len(jobs))
	for i, b := range breakdowns {
		if b.MatchScore > e.policy.RecommendFloor {
			ranked = append(ranked, types.RankedJob{Job: jobs[i], ScoreBreakdown: b})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].MatchScore > ranked[j].MatchScore
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	e.logger.Debug("ranked recommendations",
		zap.Int("returned", len(ranked)),
		zap.Int("pool", len(jobs)),
		zap.Int("limit", limit),
	)

	return ranked, nil
}

// profileTitle is the profile's explicit title, else the title of the current
// (or first listed) role.
func profileTitle(profile *types.CandidateProfile) string {
	if title := strings.TrimSpace(profile.Title); title != "" {
		return title
	}
	for _, exp := range profile.Experience {
		if exp.Current || experience.IsOngoing(exp.EndDate) {
			if title := strings.TrimSpace(exp.Title); title != "" {
				return title
			}
		}
	}
	for _, exp := range profile.Experience {
		if title := strings.TrimSpace(exp.Title); title != "" {
			return title
		}
	}
	return ""
}

var defaultEngine = sync.OnceValue(func() *Engine {
	e, err := NewEngine()
	if err != nil {
		panic(fmt.Sprintf("default ranking policy is invalid: %v", err))
	}
	return e
})

// ScoreJobs scores a job pool with the default engine.
func ScoreJobs(candidate *types.ScoreCandidate, jobs []types.Job, minScore int) ([]types.ScoredJob, error) {
	return defaultEngine().ScoreJobs(candidate, jobs, minScore)
}

// RecommendJobs ranks recommendations with the default engine.
func RecommendJobs(profile *types.CandidateProfile, user *types.User, jobs []types.Job, limit int, resumeText string) ([]types.RankedJob, error) {
	return defaultEngine().RecommendJobs(profile, user, jobs, limit, resumeText)
}

// ExtractSkills returns the skills from the embedded vocabulary found in text.
func ExtractSkills(text string) []string {
	return skills.ExtractSkills(text)
}
