// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/job-ranker/internal/ranking"
)

// Default CLI limits
const (
	DefaultMaxJobs     = 500
	DefaultConcurrency = 4
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Jobs       string `json:"jobs,omitempty"`       // Path to job pool JSON array
	Candidate  string `json:"candidate,omitempty"`  // Path to score-jobs candidate JSON
	Profile    string `json:"profile,omitempty"`    // Path to recommend profile JSON
	Resume     string `json:"resume,omitempty"`     // Path to resume plain text
	Vocabulary string `json:"vocabulary,omitempty"` // Path to YAML skill vocabulary

	// Candidate Info
	Name string `json:"name,omitempty"` // Candidate name appended to the profile document

	// Limits
	MinScore    int `json:"min_score,omitempty"`   // score-jobs threshold (0-100)
	Limit       int `json:"limit,omitempty"`       // Number of recommendations
	MaxJobs     int `json:"max_jobs,omitempty"`    // Upper bound on the job pool size
	Concurrency int `json:"concurrency,omitempty"` // score-batch worker count

	// Behavior
	Verbose     bool          `json:"verbose,omitempty"`      // Print detailed debug information
	DatabaseURL string        `json:"database_url,omitempty"` // PostgreSQL connection URL for the job pool
	Policy      *PolicyConfig `json:"policy,omitempty"`       // Ranking policy overrides
}

// PolicyConfig overrides individual ranking policy values. Zero or absent
// values keep the default.
type PolicyConfig struct {
	SemanticWeight   float64        `json:"semantic_weight,omitempty"`
	SkillWeight      float64        `json:"skill_weight,omitempty"`
	ExperienceBonus  float64        `json:"experience_bonus,omitempty"`
	PenaltyPerYear   float64        `json:"penalty_per_year,omitempty"`
	PenaltyCap       float64        `json:"penalty_cap,omitempty"`
	SeniorYears      int            `json:"senior_years,omitempty"`
	MidYears         int            `json:"mid_years,omitempty"`
	MinScore         int            `json:"min_score,omitempty"`
	RecommendFloor   int            `json:"recommend_floor,omitempty"`
	RecommendLimit   int            `json:"recommend_limit,omitempty"`
	TitleBase        float64        `json:"title_base,omitempty"`
	TitleSpan        float64        `json:"title_span,omitempty"`
	TitleMissing     int            `json:"title_missing,omitempty"`
	ReasonSkillLimit int            `json:"reason_skill_limit,omitempty"`
	Proficiency      map[string]int `json:"proficiency,omitempty"`
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	// Validate mutually exclusive job sources
	if c.Jobs != "" && c.DatabaseURL != "" {
		return fmt.Errorf("config error: 'jobs' and 'database_url' are mutually exclusive")
	}

	// Validate numeric ranges
	if c.MinScore < 0 || c.MinScore > 100 {
		return fmt.Errorf("config error: 'min_score' must be within [0, 100]")
	}
	if c.Limit < 0 {
		return fmt.Errorf("config error: 'limit' must be non-negative")
	}
	if c.MaxJobs < 0 {
		return fmt.Errorf("config error: 'max_jobs' must be non-negative")
	}
	if c.Concurrency < 0 {
		return fmt.Errorf("config error: 'concurrency' must be non-negative")
	}

	// Validate file paths exist (if specified)
	files := []struct {
		field string
		path  string
	}{
		{"jobs", c.Jobs},
		{"candidate", c.Candidate},
		{"profile", c.Profile},
		{"resume", c.Resume},
		{"vocabulary", c.Vocabulary},
	}
	for _, f := range files {
		if f.path == "" {
			continue
		}
		if _, err := os.Stat(f.path); os.IsNotExist(err) {
			return fmt.Errorf("config error: %s file not found: %s", f.field, f.path)
		}
	}

	if _, err := c.RankingPolicy(); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Jobs == "" {
		result.Jobs = defaults.Jobs
	}
	if result.Candidate == "" {
		result.Candidate = defaults.Candidate
	}
	if result.Profile == "" {
		result.Profile = defaults.Profile
	}
	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Vocabulary == "" {
		result.Vocabulary = defaults.Vocabulary
	}
	if result.Name == "" {
		result.Name = defaults.Name
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Int fields: use default if zero
	if result.MinScore == 0 {
		result.MinScore = defaults.MinScore
	}
	if result.Limit == 0 {
		result.Limit = defaults.Limit
	}
	if result.MaxJobs == 0 {
		if defaults.MaxJobs > 0 {
			result.MaxJobs = defaults.MaxJobs
		} else {
			result.MaxJobs = DefaultMaxJobs
		}
	}
	if result.Concurrency == 0 {
		if defaults.Concurrency > 0 {
			result.Concurrency = defaults.Concurrency
		} else {
			result.Concurrency = DefaultConcurrency
		}
	}

	if result.Policy == nil {
		result.Policy = defaults.Policy
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// RankingPolicy overlays the configured policy values on ranking.DefaultPolicy
// and validates the result.
func (c *Config) RankingPolicy() (ranking.Policy, error) {
	p := ranking.DefaultPolicy()
	if c.Policy != nil {
		c.Policy.apply(&p)
	}
	if err := p.Validate(); err != nil {
		return ranking.Policy{}, err
	}
	return p, nil
}

func (pc *PolicyConfig) apply(p *ranking.Policy) {
	setFloat(&p.SemanticWeight, pc.SemanticWeight)
	setFloat(&p.SkillWeight, pc.SkillWeight)
	setFloat(&p.ExperienceBonus, pc.ExperienceBonus)
	setFloat(&p.PenaltyPerYear, pc.PenaltyPerYear)
	setFloat(&p.PenaltyCap, pc.PenaltyCap)
	setFloat(&p.TitleBase, pc.TitleBase)
	setFloat(&p.TitleSpan, pc.TitleSpan)

	setInt(&p.Experience.SeniorYears, pc.SeniorYears)
	setInt(&p.Experience.MidYears, pc.MidYears)
	setInt(&p.MinScore, pc.MinScore)
	setInt(&p.RecommendFloor, pc.RecommendFloor)
	setInt(&p.RecommendLimit, pc.RecommendLimit)
	setInt(&p.TitleMissing, pc.TitleMissing)
	setInt(&p.ReasonSkillLimit, pc.ReasonSkillLimit)

	// Proficiency overrides merge into a copy of the defaults
	if len(pc.Proficiency) > 0 {
		weights := make(map[string]int, len(p.Proficiency)+len(pc.Proficiency))
		for level, w := range p.Proficiency {
			weights[level] = w
		}
		for level, w := range pc.Proficiency {
			weights[level] = w
		}
		p.Proficiency = weights
	}
}

func setFloat(dst *float64, v float64) {
	if v != 0 {
		*dst = v
	}
}

func setInt(dst *int, v int) {
	if v != 0 {
		*dst = v
	}
}
