package db

import (
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/job-ranker/internal/types"
)

// Row limits for ListJobs
const (
	DefaultListLimit = 500
	MaxListLimit     = 5000
)

// jobRow is a job_pool row as scanned from PostgreSQL
type jobRow struct {
	ID             uuid.UUID
	ExternalID     *string
	Title          string
	Company        *string
	Description    *string
	Requirements   *string
	Skills         []string
	EmploymentType *string
	Experience     *string
	URL            *string
}

// toJob converts a row to the engine's job type. The external ID is preferred
// so scored output can be joined back to the source system.
func (r *jobRow) toJob() types.Job {
	id := r.ID.String()
	if ext := deref(r.ExternalID); ext != "" {
		id = ext
	}

	return types.Job{
		ID:             id,
		Title:          r.Title,
		SkillsRequired: r.Skills,
		Description:    deref(r.Description),
		Requirements:   deref(r.Requirements),
		Company:        deref(r.Company),
		JobType:        deref(r.EmploymentType),
		Experience:     deref(r.Experience),
		URL:            deref(r.URL),
	}
}

// newJobRow prepares a job for insertion. A job ID that is a UUID becomes the
// row key; any other ID is kept as the external ID under a fresh UUID.
func newJobRow(job types.Job) jobRow {
	row := jobRow{
		ID:             uuid.New(),
		Title:          strings.TrimSpace(job.Title),
		Company:        nullable(job.Company),
		Description:    nullable(job.Description),
		Requirements:   nullable(job.Requirements),
		Skills:         job.RequiredSkills(),
		EmploymentType: nullable(job.EmploymentType()),
		Experience:     nullable(job.Experience),
		URL:            nullable(job.URL),
	}
	if row.Skills == nil {
		row.Skills = []string{}
	}

	if id := strings.TrimSpace(job.ID); id != "" {
		if parsed, err := uuid.Parse(id); err == nil {
			row.ID = parsed
		} else {
			row.ExternalID = &id
		}
	}
	return row
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func nullable(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
