package ranking

import (
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/job-ranker/internal/experience"
	"github.com/jonathan/job-ranker/internal/parsing"
	"github.com/jonathan/job-ranker/internal/skills"
	"github.com/jonathan/job-ranker/internal/types"
	"github.com/jonathan/job-ranker/internal/vectorspace"
)

// Engine scores job pools against candidates. It holds only read-only
// configuration, so one Engine can serve concurrent calls; every call builds
// and discards its own TF-IDF model.
type Engine struct {
	policy Policy
	dict   *skills.Dictionary
	logger *zap.Logger
	now    func() time.Time
}

// Option configures an Engine
type Option func(*Engine)

// WithPolicy replaces the default ranking policy.
func WithPolicy(p Policy) Option {
	return func(e *Engine) {
		e.policy = p
	}
}

// WithDictionary replaces the embedded skill vocabulary.
func WithDictionary(d *skills.Dictionary) Option {
	return func(e *Engine) {
		if d != nil {
			e.dict = d
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithClock sets the time source used to measure ongoing roles.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// NewEngine creates an Engine. It fails only when the policy is invalid.
func NewEngine(opts ...Option) (*Engine, error) {
	e := &Engine{
		policy: DefaultPolicy(),
		dict:   skills.Default(),
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.policy.Proficiency == nil {
		e.policy.Proficiency = parsing.DefaultProficiencyWeights()
	}
	if err := e.policy.Validate(); err != nil {
		return nil, err
	}

	return e, nil
}

// Policy returns the engine's ranking policy.
func (e *Engine) Policy() Policy {
	return e.policy
}

// candidateInput is the candidate side of one ranking request
type candidateInput struct {
	document   string
	skills     []string
	resumeText string
	title      string
	years      int
}

// scoreAll scores every job against the candidate using a model built from
// exactly these documents. Breakdowns are returned in job order.
func (e *Engine) scoreAll(c candidateInput, jobs []types.Job) []types.ScoreBreakdown {
	documents := make([]string, 0, len(jobs)+1)
	documents = append(documents, c.document)
	for i := range jobs {
		documents = append(documents, parsing.BuildJobText(&jobs[i]))
	}

	model := vectorspace.BuildModel(documents)
	pool := newSkillPool(c.skills, c.resumeText, e.dict)

	breakdowns := make([]types.ScoreBreakdown, len(jobs))
	for i := range jobs {
		job := &jobs[i]
		breakdowns[i] = e.policy.breakdown(signals{
			similarity:     vectorspace.CosineSimilarity(model, 0, i+1),
			skills:         pool.match(job.RequiredSkills()),
			title:          TitleRelevance(c.title, job.Title, e.policy),
			candidateYears: c.years,
			requiredYears:  experience.ParseRequiredExperience(job.Experience, e.policy.Experience),
			jobType:        job.EmploymentType(),
		})
	}

	e.logger.Debug("scored job pool",
		zap.Int("jobs", len(jobs)),
		zap.Int("vocabulary", model.VocabularySize()),
		zap.Int("candidate_skills", len(pool)),
		zap.Int("candidate_years", c.years),
	)

	return breakdowns
}

// ExtractSkills returns the sorted vocabulary skills found in text.
func (e *Engine) ExtractSkills(text string) []string {
	return e.dict.Extract(text).Sorted()
}
