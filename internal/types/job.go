// Package types provides type definitions for structured data used throughout the job-ranker system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Job is a job posting as supplied by the caller. All fields are optional.
type Job struct {
	ID             string   `json:"id,omitempty"`
	Title          string   `json:"title,omitempty"`
	Skills         []string `json:"skills,omitempty"`
	SkillsRequired []string `json:"skills_required,omitempty"`
	Description    string   `json:"description,omitempty"`
	Requirements   string   `json:"requirements,omitempty"`
	Company        string   `json:"company,omitempty"`
	Type           string   `json:"type,omitempty"`
	JobType        string   `json:"job_type,omitempty"`
	Experience     string   `json:"experience,omitempty"` // free text, e.g. "5+ years"
	URL            string   `json:"url,omitempty"`
}

// RequiredSkills returns SkillsRequired when present, otherwise Skills.
func (j *Job) RequiredSkills() []string {
	if len(j.SkillsRequired) > 0 {
		return j.SkillsRequired
	}
	return j.Skills
}

// EmploymentType returns Type when present, otherwise JobType.
func (j *Job) EmploymentType() string {
	if j.Type != "" {
		return j.Type
	}
	return j.JobType
}

