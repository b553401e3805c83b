// Package store provides persistence for the job board: entity models, the
// Store interface, and its in-memory and PostgreSQL implementations.
package store

import (
	"context"

	"github.com/jobdeck/jobdeck/internal/types"
)

// Store is the persistence interface for the job board. Two implementations
// exist: MemoryStore for single-process demo and test use, and PostgresStore
// for real deployments. Lookups return (nil, nil) when the row is absent;
// delete operations report whether a row existed.
type Store interface {
	// Companies
	CreateCompany(ctx context.Context, req *types.CreateCompanyRequest) (*Company, error)
	ListCompanies(ctx context.Context) ([]Company, error)
	GetCompany(ctx context.Context, id int64) (*Company, error)

	// Jobs
	CreateJob(ctx context.Context, req *types.CreateJobRequest) (*Job, error)
	ListJobs(ctx context.Context, filters JobFilters) ([]JobWithCompany, error)
	GetJob(ctx context.Context, id int64) (*JobWithCompany, error)
	UpdateJob(ctx context.Context, id int64, req *types.UpdateJobRequest) (*Job, error)
	DeleteJob(ctx context.Context, id int64) (bool, error)

	// Applications
	CreateApplication(ctx context.Context, req *types.CreateApplicationRequest) (*Application, error)
	ListApplicationsForJob(ctx context.Context, jobID int64) ([]Application, error)
	ListApplications(ctx context.Context) ([]Application, error)

	// Saved jobs
	SaveJob(ctx context.Context, req *types.SaveJobRequest) (*SavedJob, error)
	UnsaveJob(ctx context.Context, jobID int64, userID string) (bool, error)
	ListSavedJobs(ctx context.Context, userID string) ([]JobWithCompany, error)
	IsJobSaved(ctx context.Context, jobID int64, userID string) (bool, error)

	Close()
}
