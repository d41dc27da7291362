// Package types provides type definitions for structured data used throughout the job-ranker system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Proficiency levels recognised when weighting declared skills
const (
	ProficiencyExpert       = "expert"
	ProficiencyAdvanced     = "advanced"
	ProficiencyIntermediate = "intermediate"
	ProficiencyBeginner     = "beginner"
)

// DeclaredSkill is a skill listed by the candidate on their profile.
// It can be decoded from either a bare JSON string or an object.
type DeclaredSkill struct {
	Name        string `json:"name"`
	Proficiency string `json:"proficiency,omitempty"`
}

// UnmarshalJSON accepts "go" as well as {"name": "go", "proficiency": "expert"}.
// "level" is accepted as an alias for "proficiency".
func (s *DeclaredSkill) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		*s = DeclaredSkill{Name: name}
		return nil
	}

	var raw struct {
		Name        string `json:"name"`
		Skill       string `json:"skill"`
		Proficiency string `json:"proficiency"`
		Level       string `json:"level"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("skill must be a string or an object: %w", err)
	}

	s.Name = raw.Name
	if s.Name == "" {
		s.Name = raw.Skill
	}
	s.Proficiency = raw.Proficiency
	if s.Proficiency == "" {
		s.Proficiency = raw.Level
	}
	return nil
}

// ExperienceEntry is a single role from the candidate's work history
type ExperienceEntry struct {
	Title       string `json:"title,omitempty"`
	Company     string `json:"company,omitempty"`
	Description string `json:"description,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"` // empty, "current" or "present" means ongoing
	Current     bool   `json:"current,omitempty"`
}

// EducationEntry is a single education record
type EducationEntry struct {
	Degree      string `json:"degree,omitempty"`
	Field       string `json:"field,omitempty"`
	Institution string `json:"institution,omitempty"`
	Description string `json:"description,omitempty"`
}

// CandidateProfile is the structured profile produced by the resume parsing service.
// Every field is optional.
type CandidateProfile struct {
	Title      string            `json:"title,omitempty"`
	Skills     []DeclaredSkill   `json:"skills,omitempty"`
	Experience []ExperienceEntry `json:"experience,omitempty"`
	About      string            `json:"about,omitempty"`
	Summary    string            `json:"summary,omitempty"`
	Education  []EducationEntry  `json:"education,omitempty"`
}

// SkillNames returns the declared skill names in profile order, skipping blanks.
func (p *CandidateProfile) SkillNames() []string {
	if p == nil {
		return nil
	}
	names := make([]string, 0, len(p.Skills))
	for _, s := range p.Skills {
		if s.Name != "" {
			names = append(names, s.Name)
		}
	}
	return names
}

// User is the account owning a profile. Only the display name feeds ranking.
type User struct {
	Name string `json:"name,omitempty"`
}

// ScoreCandidate is the flattened candidate used when scoring an external job pool
type ScoreCandidate struct {
	Skills          []string `json:"skills,omitempty"`
	Title           string   `json:"title,omitempty"`
	Summary         string   `json:"summary,omitempty"`
	ExperienceYears int      `json:"experience_years" validate:"gte=0"`
}

// Validate validates the ScoreCandidate using the validator.
func (c *ScoreCandidate) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}
