package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jobdeck/jobdeck/internal/types"
)

// MemoryStore is an in-process Store backed by maps. It is intended for
// demo and test use; ids come from per-entity counters guarded by the
// same mutex as the maps, so concurrent inserts always get unique ids.
type MemoryStore struct {
	mu           sync.Mutex
	companies    map[int64]Company
	jobs         map[int64]Job
	applications map[int64]Application
	savedJobs    map[int64]SavedJob

	companyID     int64
	jobID         int64
	applicationID int64
	savedJobID    int64
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		companies:    make(map[int64]Company),
		jobs:         make(map[int64]Job),
		applications: make(map[int64]Application),
		savedJobs:    make(map[int64]SavedJob),
	}
}

// Close implements Store. It is a no-op for the in-memory store.
func (s *MemoryStore) Close() {}

// -----------------------------------------------------------------------------
// Companies
// -----------------------------------------------------------------------------

// CreateCompany assigns the next company id and stores the record.
func (s *MemoryStore) CreateCompany(_ context.Context, req *types.CreateCompanyRequest) (*Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.companyID++
	c := Company{
		ID:          s.companyID,
		Name:        req.Name,
		Logo:        req.Logo,
		Location:    req.Location,
		Description: req.Description,
	}
	s.companies[c.ID] = c
	return &c, nil
}

// ListCompanies returns all companies in insertion order.
func (s *MemoryStore) ListCompanies(_ context.Context) ([]Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	companies := make([]Company, 0, len(s.companies))
	for _, c := range s.companies {
		companies = append(companies, c)
	}
	sort.Slice(companies, func(i, j int) bool { return companies[i].ID < companies[j].ID })
	return companies, nil
}

// GetCompany retrieves a company by id, or (nil, nil) if absent.
func (s *MemoryStore) GetCompany(_ context.Context, id int64) (*Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.companies[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

// -----------------------------------------------------------------------------
// Jobs
// -----------------------------------------------------------------------------

// CreateJob assigns the next job id, stamps PostedAt, and forces IsActive.
// CompanyID is not checked against existing companies here; jobs with an
// unresolvable company are dropped at enrichment time instead.
func (s *MemoryStore) CreateJob(_ context.Context, req *types.CreateJobRequest) (*Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	skills := make([]string, 0, len(req.Skills))
	skills = append(skills, req.Skills...)

	s.jobID++
	j := Job{
		ID:          s.jobID,
		Title:       req.Title,
		Description: req.Description,
		CompanyID:   req.CompanyID,
		Location:    req.Location,
		Salary:      req.Salary,
		Type:        req.Type,
		Category:    req.Category,
		Skills:      skills,
		PostedAt:    time.Now(),
		IsActive:    true,
	}
	s.jobs[j.ID] = j
	return &j, nil
}

// matchesFilters reports whether an active job passes the AND-combined
// filters: exact category, case-insensitive location substring, and
// case-insensitive search over title, description, and skills.
func matchesFilters(j *Job, filters JobFilters) bool {
	if filters.Category != "" && j.Category != filters.Category {
		return false
	}
	if filters.Location != "" &&
		!strings.Contains(strings.ToLower(j.Location), strings.ToLower(filters.Location)) {
		return false
	}
	if filters.Search != "" {
		term := strings.ToLower(filters.Search)
		if !strings.Contains(strings.ToLower(j.Title), term) &&
			!strings.Contains(strings.ToLower(j.Description), term) &&
			!anySkillContains(j.Skills, term) {
			return false
		}
	}
	return true
}

func anySkillContains(skills []string, term string) bool {
	for _, skill := range skills {
		if strings.Contains(strings.ToLower(skill), term) {
			return true
		}
	}
	return false
}

// ListJobs returns active jobs passing the filters, most recent first,
// enriched with their companies. Jobs whose company cannot be resolved are
// silently dropped. Ties on PostedAt keep insertion (id) order so results
// are stable across calls within the same data state.
func (s *MemoryStore) ListJobs(_ context.Context, filters JobFilters) ([]JobWithCompany, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	matched := make([]Job, 0, len(s.jobs))
	for _, j := range s.jobs {
		if !j.IsActive {
			continue
		}
		if matchesFilters(&j, filters) {
			matched = append(matched, j)
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].PostedAt.Equal(matched[j].PostedAt) {
			return matched[i].PostedAt.After(matched[j].PostedAt)
		}
		return matched[i].ID < matched[j].ID
	})

	enriched := make([]JobWithCompany, 0, len(matched))
	for _, j := range matched {
		company, ok := s.companies[j.CompanyID]
		if !ok {
			continue
		}
		enriched = append(enriched, JobWithCompany{
			Job:           j,
			Company:       company,
			LikesCount:    randomLikes(),
			CommentsCount: randomComments(),
		})
	}
	return enriched, nil
}

// GetJob retrieves a single enriched job. A job whose company is missing is
// treated as not found, never returned partially.
func (s *MemoryStore) GetJob(_ context.Context, id int64) (*JobWithCompany, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	j, ok := s.jobs[id]
	if !ok {
		return nil, nil
	}
	company, ok := s.companies[j.CompanyID]
	if !ok {
		return nil, nil
	}
	return &JobWithCompany{
		Job:           j,
		Company:       company,
		LikesCount:    randomLikes(),
		CommentsCount: randomComments(),
	}, nil
}

// UpdateJob shallow-merges the provided fields into an existing job.
// Nil fields keep their prior values. Returns (nil, nil) if the job is absent.
func (s *MemoryStore) UpdateJob(_ context.Context, id int64, req *types.UpdateJobRequest) (*Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	j, ok := s.jobs[id]
	if !ok {
		return nil, nil
	}

	if req.Title != nil {
		j.Title = *req.Title
	}
	if req.Description != nil {
		j.Description = *req.Description
	}
	if req.CompanyID != nil {
		j.CompanyID = *req.CompanyID
	}
	if req.Location != nil {
		j.Location = *req.Location
	}
	if req.Salary != nil {
		j.Salary = *req.Salary
	}
	if req.Type != nil {
		j.Type = *req.Type
	}
	if req.Category != nil {
		j.Category = *req.Category
	}
	if req.Skills != nil {
		skills := make([]string, 0, len(*req.Skills))
		j.Skills = append(skills, *req.Skills...)
	}
	if req.IsActive != nil {
		j.IsActive = *req.IsActive
	}

	s.jobs[id] = j
	return &j, nil
}

// DeleteJob hard-deletes a job and reports whether it existed.
func (s *MemoryStore) DeleteJob(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.jobs[id]; !ok {
		return false, nil
	}
	delete(s.jobs, id)
	return true, nil
}

// -----------------------------------------------------------------------------
// Applications
// -----------------------------------------------------------------------------

// CreateApplication assigns the next id, stamps AppliedAt, and defaults
// status to pending.
func (s *MemoryStore) CreateApplication(_ context.Context, req *types.CreateApplicationRequest) (*Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.applicationID++
	a := Application{
		ID:             s.applicationID,
		JobID:          req.JobID,
		ApplicantName:  req.ApplicantName,
		ApplicantEmail: req.ApplicantEmail,
		CoverLetter:    req.CoverLetter,
		AppliedAt:      time.Now(),
		Status:         StatusPending,
	}
	s.applications[a.ID] = a
	return &a, nil
}

// ListApplicationsForJob returns applications for a job in insertion order.
func (s *MemoryStore) ListApplicationsForJob(_ context.Context, jobID int64) ([]Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	applications := make([]Application, 0)
	for _, a := range s.applications {
		if a.JobID == jobID {
			applications = append(applications, a)
		}
	}
	sort.Slice(applications, func(i, j int) bool { return applications[i].ID < applications[j].ID })
	return applications, nil
}

// ListApplications returns all applications in insertion order.
func (s *MemoryStore) ListApplications(_ context.Context) ([]Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	applications := make([]Application, 0, len(s.applications))
	for _, a := range s.applications {
		applications = append(applications, a)
	}
	sort.Slice(applications, func(i, j int) bool { return applications[i].ID < applications[j].ID })
	return applications, nil
}

// -----------------------------------------------------------------------------
// Saved jobs
// -----------------------------------------------------------------------------

// SaveJob assigns the next id and stamps SavedAt. There is no duplicate
// check: saving the same (jobId, userId) twice creates two rows.
func (s *MemoryStore) SaveJob(_ context.Context, req *types.SaveJobRequest) (*SavedJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.savedJobID++
	saved := SavedJob{
		ID:      s.savedJobID,
		JobID:   req.JobID,
		UserID:  req.UserID,
		SavedAt: time.Now(),
	}
	s.savedJobs[saved.ID] = saved
	return &saved, nil
}

// UnsaveJob removes at most one matching (jobId, userId) row, the oldest,
// and reports whether one was found. Remaining duplicates keep the job saved.
func (s *MemoryStore) UnsaveJob(_ context.Context, jobID int64, userID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var oldestID int64 = -1
	for _, saved := range s.savedJobs {
		if saved.JobID == jobID && saved.UserID == userID {
			if oldestID == -1 || saved.ID < oldestID {
				oldestID = saved.ID
			}
		}
	}
	if oldestID == -1 {
		return false, nil
	}
	delete(s.savedJobs, oldestID)
	return true, nil
}

// ListSavedJobs returns the user's saved jobs, most recently saved first,
// restricted to active jobs and enriched with their companies. IsSaved is
// forced true on every result.
func (s *MemoryStore) ListSavedJobs(_ context.Context, userID string) ([]JobWithCompany, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	saves := make([]SavedJob, 0)
	for _, saved := range s.savedJobs {
		if saved.UserID == userID {
			saves = append(saves, saved)
		}
	}
	sort.Slice(saves, func(i, j int) bool {
		if !saves[i].SavedAt.Equal(saves[j].SavedAt) {
			return saves[i].SavedAt.After(saves[j].SavedAt)
		}
		return saves[i].ID > saves[j].ID
	})

	enriched := make([]JobWithCompany, 0, len(saves))
	for _, saved := range saves {
		j, ok := s.jobs[saved.JobID]
		if !ok || !j.IsActive {
			continue
		}
		company, ok := s.companies[j.CompanyID]
		if !ok {
			continue
		}
		enriched = append(enriched, JobWithCompany{
			Job:           j,
			Company:       company,
			IsSaved:       true,
			LikesCount:    randomLikes(),
			CommentsCount: randomComments(),
		})
	}
	return enriched, nil
}

// IsJobSaved reports whether any (jobId, userId) bookmark exists.
func (s *MemoryStore) IsJobSaved(_ context.Context, jobID int64, userID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, saved := range s.savedJobs {
		if saved.JobID == jobID && saved.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}
