package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/job-ranker/internal/types"
)

// ListJobsOptions contains filters for reading the job pool
type ListJobsOptions struct {
	Company string // Case-insensitive exact company match
	Skill   string // Only jobs listing this skill
	Limit   int    // Row limit (defaults to DefaultListLimit, capped at MaxListLimit)
	Offset  int    // Pagination offset
}

// buildListQuery builds the SELECT for ListJobs with its positional arguments
func buildListQuery(opts ListJobsOptions) (string, []interface{}) {
	// Build WHERE clause dynamically
	conditions := []string{"active = TRUE"}
	var args []interface{}
	argIndex := 1

	if company := strings.TrimSpace(opts.Company); company != "" {
		conditions = append(conditions, fmt.Sprintf("lower(company) = lower($%d)", argIndex))
		args = append(args, company)
		argIndex++
	}

	if skill := strings.TrimSpace(opts.Skill); skill != "" {
		conditions = append(conditions, fmt.Sprintf("EXISTS (SELECT 1 FROM unnest(skills) s WHERE lower(s) = lower($%d))", argIndex))
		args = append(args, skill)
		argIndex++
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	offset := opts.Offset
	if offset < 0 {
		offset = 0
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf(
		`SELECT id, external_id, title, company, description, requirements,
		        skills, employment_type, experience, url
		 FROM job_pool
		 WHERE %s
		 ORDER BY created_at DESC, id
		 LIMIT $%d OFFSET $%d`,
		strings.Join(conditions, " AND "), argIndex, argIndex+1,
	)

	return query, args
}

// ListJobs reads active jobs from the pool, newest first
func (db *DB) ListJobs(ctx context.Context, opts ListJobsOptions) ([]types.Job, error) {
	query, args := buildListQuery(opts)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	jobs := []types.Job{}
	for rows.Next() {
		var r jobRow
		if err := rows.Scan(
			&r.ID, &r.ExternalID, &r.Title, &r.Company, &r.Description, &r.Requirements,
			&r.Skills, &r.EmploymentType, &r.Experience, &r.URL,
		); err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, r.toJob())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate jobs: %w", err)
	}

	return jobs, nil
}

// InsertJobs stores jobs in the pool in a single transaction. Jobs whose external
// ID already exists are updated in place. Returns the stored IDs in input order.
func (db *DB) InsertJobs(ctx context.Context, jobs []types.Job) ([]string, error) {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	ids := make([]string, 0, len(jobs))
	for _, job := range jobs {
		r := newJobRow(job)
		var stored string
		err := tx.QueryRow(ctx,
			`INSERT INTO job_pool (id, external_id, title, company, description, requirements,
			                       skills, employment_type, experience, url)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			 ON CONFLICT (external_id) WHERE external_id IS NOT NULL DO UPDATE SET
			     title = EXCLUDED.title,
			     company = EXCLUDED.company,
			     description = EXCLUDED.description,
			     requirements = EXCLUDED.requirements,
			     skills = EXCLUDED.skills,
			     employment_type = EXCLUDED.employment_type,
			     experience = EXCLUDED.experience,
			     url = EXCLUDED.url,
			     active = TRUE
			 RETURNING COALESCE(external_id, id::text)`,
			r.ID, r.ExternalID, r.Title, r.Company, r.Description, r.Requirements,
			r.Skills, r.EmploymentType, r.Experience, r.URL,
		).Scan(&stored)
		if err != nil {
			return nil, fmt.Errorf("failed to insert job %q: %w", job.Title, err)
		}
		ids = append(ids, stored)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit jobs: %w", err)
	}
	return ids, nil
}

// DeactivateJobs marks jobs as inactive so they leave the pool
func (db *DB) DeactivateJobs(ctx context.Context, ids []string) (int64, error) {
	tag, err := db.pool.Exec(ctx,
		`UPDATE job_pool SET active = FALSE
		 WHERE external_id = ANY($1) OR id::text = ANY($1)`,
		ids,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to deactivate jobs: %w", err)
	}
	return tag.RowsAffected(), nil
}
