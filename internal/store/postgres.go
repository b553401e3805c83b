package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jobdeck/jobdeck/internal/types"
)

// PostgresStore is a Store backed by a PostgreSQL connection pool.
// Ids come from BIGSERIAL sequences.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database and verifies it.
func Connect(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close closes the connection pool.
func (s *PostgresStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Migrate creates the schema if it does not exist.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS companies (
	id BIGSERIAL PRIMARY KEY,
	name TEXT NOT NULL,
	logo TEXT NOT NULL,
	location TEXT NOT NULL,
	description TEXT
);

CREATE TABLE IF NOT EXISTS jobs (
	id BIGSERIAL PRIMARY KEY,
	title TEXT NOT NULL,
	description TEXT NOT NULL,
	company_id BIGINT NOT NULL,
	location TEXT NOT NULL,
	salary TEXT NOT NULL,
	type TEXT NOT NULL,
	category TEXT NOT NULL,
	skills TEXT[] NOT NULL DEFAULT '{}',
	posted_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	is_active BOOLEAN NOT NULL DEFAULT TRUE
);

CREATE TABLE IF NOT EXISTS applications (
	id BIGSERIAL PRIMARY KEY,
	job_id BIGINT NOT NULL,
	applicant_name TEXT NOT NULL,
	applicant_email TEXT NOT NULL,
	cover_letter TEXT,
	applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	status TEXT NOT NULL DEFAULT 'pending'
);

CREATE TABLE IF NOT EXISTS saved_jobs (
	id BIGSERIAL PRIMARY KEY,
	job_id BIGINT NOT NULL,
	user_id TEXT NOT NULL,
	saved_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`)
	if err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// -----------------------------------------------------------------------------
// Companies
// -----------------------------------------------------------------------------

// CreateCompany inserts a company and returns the stored record.
func (s *PostgresStore) CreateCompany(ctx context.Context, req *types.CreateCompanyRequest) (*Company, error) {
	var c Company
	err := s.pool.QueryRow(ctx,
		`INSERT INTO companies (name, logo, location, description)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, name, logo, location, description`,
		req.Name, req.Logo, req.Location, req.Description,
	).Scan(&c.ID, &c.Name, &c.Logo, &c.Location, &c.Description)
	if err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}
	return &c, nil
}

// ListCompanies returns all companies.
func (s *PostgresStore) ListCompanies(ctx context.Context) ([]Company, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, name, logo, location, description FROM companies ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	defer rows.Close()

	companies := make([]Company, 0)
	for rows.Next() {
		var c Company
		if err := rows.Scan(&c.ID, &c.Name, &c.Logo, &c.Location, &c.Description); err != nil {
			return nil, fmt.Errorf("failed to scan company: %w", err)
		}
		companies = append(companies, c)
	}
	return companies, rows.Err()
}

// GetCompany retrieves a company by id, or (nil, nil) if absent.
func (s *PostgresStore) GetCompany(ctx context.Context, id int64) (*Company, error) {
	var c Company
	err := s.pool.QueryRow(ctx,
		`SELECT id, name, logo, location, description FROM companies WHERE id = $1`,
		id,
	).Scan(&c.ID, &c.Name, &c.Logo, &c.Location, &c.Description)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	return &c, nil
}

// -----------------------------------------------------------------------------
// Jobs
// -----------------------------------------------------------------------------

const jobWithCompanyColumns = `j.id, j.title, j.description, j.company_id, j.location, j.salary,
	j.type, j.category, j.skills, j.posted_at, j.is_active,
	c.id, c.name, c.logo, c.location, c.description`

func scanJobWithCompany(row pgx.Row) (*JobWithCompany, error) {
	var jc JobWithCompany
	err := row.Scan(
		&jc.ID, &jc.Title, &jc.Job.Description, &jc.CompanyID, &jc.Job.Location, &jc.Salary,
		&jc.Type, &jc.Category, &jc.Skills, &jc.PostedAt, &jc.IsActive,
		&jc.Company.ID, &jc.Company.Name, &jc.Company.Logo, &jc.Company.Location, &jc.Company.Description,
	)
	if err != nil {
		return nil, err
	}
	jc.LikesCount = randomLikes()
	jc.CommentsCount = randomComments()
	return &jc, nil
}

// CreateJob inserts a job, stamping posted_at and forcing is_active.
// company_id is not validated against companies; orphaned jobs are dropped
// at enrichment time instead.
func (s *PostgresStore) CreateJob(ctx context.Context, req *types.CreateJobRequest) (*Job, error) {
	skills := req.Skills
	if skills == nil {
		skills = []string{}
	}

	var j Job
	err := s.pool.QueryRow(ctx,
		`INSERT INTO jobs (title, description, company_id, location, salary, type, category, skills)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, title, description, company_id, location, salary, type, category, skills, posted_at, is_active`,
		req.Title, req.Description, req.CompanyID, req.Location, req.Salary, req.Type, req.Category, skills,
	).Scan(&j.ID, &j.Title, &j.Description, &j.CompanyID, &j.Location, &j.Salary,
		&j.Type, &j.Category, &j.Skills, &j.PostedAt, &j.IsActive)
	if err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return &j, nil
}

// ListJobs returns active jobs passing the filters, most recent first,
// enriched with their companies via an inner join (orphaned jobs drop out).
func (s *PostgresStore) ListJobs(ctx context.Context, filters JobFilters) ([]JobWithCompany, error) {
	query := `SELECT ` + jobWithCompanyColumns + `
		FROM jobs j
		JOIN companies c ON c.id = j.company_id
		WHERE j.is_active = TRUE`
	args := []any{}
	argNum := 1

	if filters.Category != "" {
		query += fmt.Sprintf(" AND j.category = $%d", argNum)
		args = append(args, filters.Category)
		argNum++
	}
	if filters.Location != "" {
		query += fmt.Sprintf(" AND j.location ILIKE $%d", argNum)
		args = append(args, "%"+filters.Location+"%")
		argNum++
	}
	if filters.Search != "" {
		query += fmt.Sprintf(` AND (j.title ILIKE $%d OR j.description ILIKE $%d
			OR EXISTS (SELECT 1 FROM unnest(j.skills) AS skill WHERE skill ILIKE $%d))`,
			argNum, argNum, argNum)
		args = append(args, "%"+filters.Search+"%")
		argNum++
	}

	query += " ORDER BY j.posted_at DESC, j.id ASC"

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	jobs := make([]JobWithCompany, 0)
	for rows.Next() {
		jc, err := scanJobWithCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, *jc)
	}
	return jobs, rows.Err()
}

// GetJob retrieves a single enriched job. A job whose company is missing is
// not found, never a partial object.
func (s *PostgresStore) GetJob(ctx context.Context, id int64) (*JobWithCompany, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+jobWithCompanyColumns+`
		 FROM jobs j
		 JOIN companies c ON c.id = j.company_id
		 WHERE j.id = $1`,
		id,
	)
	jc, err := scanJobWithCompany(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return jc, nil
}

// UpdateJob shallow-merges the provided fields into an existing job.
// Returns (nil, nil) if the job is absent.
func (s *PostgresStore) UpdateJob(ctx context.Context, id int64, req *types.UpdateJobRequest) (*Job, error) {
	sets := []string{}
	args := []any{}
	argNum := 1

	set := func(column string, value any) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argNum))
		args = append(args, value)
		argNum++
	}

	if req.Title != nil {
		set("title", *req.Title)
	}
	if req.Description != nil {
		set("description", *req.Description)
	}
	if req.CompanyID != nil {
		set("company_id", *req.CompanyID)
	}
	if req.Location != nil {
		set("location", *req.Location)
	}
	if req.Salary != nil {
		set("salary", *req.Salary)
	}
	if req.Type != nil {
		set("type", *req.Type)
	}
	if req.Category != nil {
		set("category", *req.Category)
	}
	if req.Skills != nil {
		set("skills", *req.Skills)
	}
	if req.IsActive != nil {
		set("is_active", *req.IsActive)
	}

	if len(sets) == 0 {
		// Nothing to merge; behave like a read so absent ids still 404.
		return s.getJobRow(ctx, id)
	}

	query := fmt.Sprintf(
		`UPDATE jobs SET %s WHERE id = $%d
		 RETURNING id, title, description, company_id, location, salary, type, category, skills, posted_at, is_active`,
		strings.Join(sets, ", "), argNum)
	args = append(args, id)

	var j Job
	err := s.pool.QueryRow(ctx, query, args...).Scan(
		&j.ID, &j.Title, &j.Description, &j.CompanyID, &j.Location, &j.Salary,
		&j.Type, &j.Category, &j.Skills, &j.PostedAt, &j.IsActive)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update job: %w", err)
	}
	return &j, nil
}

// getJobRow reads a bare job row without company enrichment.
func (s *PostgresStore) getJobRow(ctx context.Context, id int64) (*Job, error) {
	var j Job
	err := s.pool.QueryRow(ctx,
		`SELECT id, title, description, company_id, location, salary, type, category, skills, posted_at, is_active
		 FROM jobs WHERE id = $1`,
		id,
	).Scan(&j.ID, &j.Title, &j.Description, &j.CompanyID, &j.Location, &j.Salary,
		&j.Type, &j.Category, &j.Skills, &j.PostedAt, &j.IsActive)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return &j, nil
}

// DeleteJob hard-deletes a job and reports whether it existed.
func (s *PostgresStore) DeleteJob(ctx context.Context, id int64) (bool, error) {
	result, err := s.pool.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete job: %w", err)
	}
	return result.RowsAffected() > 0, nil
}

// -----------------------------------------------------------------------------
// Applications
// -----------------------------------------------------------------------------

// CreateApplication inserts an application, stamping applied_at and
// defaulting status to pending.
func (s *PostgresStore) CreateApplication(ctx context.Context, req *types.CreateApplicationRequest) (*Application, error) {
	var a Application
	err := s.pool.QueryRow(ctx,
		`INSERT INTO applications (job_id, applicant_name, applicant_email, cover_letter)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, job_id, applicant_name, applicant_email, cover_letter, applied_at, status`,
		req.JobID, req.ApplicantName, req.ApplicantEmail, req.CoverLetter,
	).Scan(&a.ID, &a.JobID, &a.ApplicantName, &a.ApplicantEmail, &a.CoverLetter, &a.AppliedAt, &a.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to create application: %w", err)
	}
	return &a, nil
}

// ListApplicationsForJob returns applications for a job in insertion order.
func (s *PostgresStore) ListApplicationsForJob(ctx context.Context, jobID int64) ([]Application, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, job_id, applicant_name, applicant_email, cover_letter, applied_at, status
		 FROM applications WHERE job_id = $1 ORDER BY id`,
		jobID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	defer rows.Close()

	return scanApplications(rows)
}

// ListApplications returns all applications in insertion order.
func (s *PostgresStore) ListApplications(ctx context.Context) ([]Application, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, job_id, applicant_name, applicant_email, cover_letter, applied_at, status
		 FROM applications ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	defer rows.Close()

	return scanApplications(rows)
}

func scanApplications(rows pgx.Rows) ([]Application, error) {
	applications := make([]Application, 0)
	for rows.Next() {
		var a Application
		if err := rows.Scan(&a.ID, &a.JobID, &a.ApplicantName, &a.ApplicantEmail,
			&a.CoverLetter, &a.AppliedAt, &a.Status); err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		applications = append(applications, a)
	}
	return applications, rows.Err()
}

// -----------------------------------------------------------------------------
// Saved jobs
// -----------------------------------------------------------------------------

// SaveJob inserts a bookmark, stamping saved_at. No uniqueness constraint
// exists on (job_id, user_id); duplicate saves create duplicate rows.
func (s *PostgresStore) SaveJob(ctx context.Context, req *types.SaveJobRequest) (*SavedJob, error) {
	var saved SavedJob
	err := s.pool.QueryRow(ctx,
		`INSERT INTO saved_jobs (job_id, user_id)
		 VALUES ($1, $2)
		 RETURNING id, job_id, user_id, saved_at`,
		req.JobID, req.UserID,
	).Scan(&saved.ID, &saved.JobID, &saved.UserID, &saved.SavedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to save job: %w", err)
	}
	return &saved, nil
}

// UnsaveJob removes at most one matching (job_id, user_id) row, the oldest,
// and reports whether one was found.
func (s *PostgresStore) UnsaveJob(ctx context.Context, jobID int64, userID string) (bool, error) {
	result, err := s.pool.Exec(ctx,
		`DELETE FROM saved_jobs
		 WHERE id = (SELECT id FROM saved_jobs WHERE job_id = $1 AND user_id = $2 ORDER BY id LIMIT 1)`,
		jobID, userID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to unsave job: %w", err)
	}
	return result.RowsAffected() > 0, nil
}

// ListSavedJobs returns the user's saved jobs, most recently saved first,
// restricted to active jobs and enriched with their companies.
func (s *PostgresStore) ListSavedJobs(ctx context.Context, userID string) ([]JobWithCompany, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+jobWithCompanyColumns+`
		 FROM saved_jobs sj
		 JOIN jobs j ON j.id = sj.job_id
		 JOIN companies c ON c.id = j.company_id
		 WHERE sj.user_id = $1 AND j.is_active = TRUE
		 ORDER BY sj.saved_at DESC, sj.id DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list saved jobs: %w", err)
	}
	defer rows.Close()

	jobs := make([]JobWithCompany, 0)
	for rows.Next() {
		jc, err := scanJobWithCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan saved job: %w", err)
		}
		jc.IsSaved = true
		jobs = append(jobs, *jc)
	}
	return jobs, rows.Err()
}

// IsJobSaved reports whether any (job_id, user_id) bookmark exists.
func (s *PostgresStore) IsJobSaved(ctx context.Context, jobID int64, userID string) (bool, error) {
	var saved bool
	err := s.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM saved_jobs WHERE job_id = $1 AND user_id = $2)`,
		jobID, userID,
	).Scan(&saved)
	if err != nil {
		return false, fmt.Errorf("failed to check saved status: %w", err)
	}
	return saved, nil
}
