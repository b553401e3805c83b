package store

import (
	"context"
	"testing"
	"time"

	"github.com/jobdeck/jobdeck/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCompany(t *testing.T, s *MemoryStore, name string) *Company {
	t.Helper()
	c, err := s.CreateCompany(context.Background(), &types.CreateCompanyRequest{
		Name:     name,
		Logo:     "https://example.com/logo.png",
		Location: "NYC",
	})
	require.NoError(t, err)
	return c
}

func newJob(t *testing.T, s *MemoryStore, req types.CreateJobRequest) *Job {
	t.Helper()
	if req.Title == "" {
		req.Title = "Engineer"
	}
	if req.Description == "" {
		req.Description = "Build things"
	}
	if req.Location == "" {
		req.Location = "NYC"
	}
	if req.Salary == "" {
		req.Salary = "$100k"
	}
	if req.Type == "" {
		req.Type = TypeFullTime
	}
	if req.Category == "" {
		req.Category = "tech"
	}
	j, err := s.CreateJob(context.Background(), &req)
	require.NoError(t, err)
	return j
}

func TestCreateCompany_AssignsSequentialIDs(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	desc := "Widgets"
	c1, err := s.CreateCompany(ctx, &types.CreateCompanyRequest{
		Name: "Acme", Logo: "http://x", Location: "NYC", Description: &desc,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), c1.ID)
	require.NotNil(t, c1.Description)
	assert.Equal(t, "Widgets", *c1.Description)

	c2 := newCompany(t, s, "Globex")
	assert.Equal(t, int64(2), c2.ID)
	assert.Nil(t, c2.Description)
}

func TestCreateJob_Defaults(t *testing.T) {
	s := NewMemoryStore()
	company := newCompany(t, s, "Acme")

	before := time.Now()
	job := newJob(t, s, types.CreateJobRequest{CompanyID: company.ID})

	assert.Equal(t, int64(1), job.ID)
	assert.True(t, job.IsActive)
	assert.NotNil(t, job.Skills)
	assert.Empty(t, job.Skills)
	assert.False(t, job.PostedAt.Before(before))
	assert.False(t, job.PostedAt.After(time.Now()))
}

func TestListJobs_ExcludesInactive(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	company := newCompany(t, s, "Acme")

	active := newJob(t, s, types.CreateJobRequest{CompanyID: company.ID, Title: "Active"})
	inactive := newJob(t, s, types.CreateJobRequest{CompanyID: company.ID, Title: "Inactive"})

	off := false
	_, err := s.UpdateJob(ctx, inactive.ID, &types.UpdateJobRequest{IsActive: &off})
	require.NoError(t, err)

	jobs, err := s.ListJobs(ctx, JobFilters{})
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, active.ID, jobs[0].ID)
}

func TestListJobs_CategoryExactCaseSensitive(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	company := newCompany(t, s, "Acme")

	newJob(t, s, types.CreateJobRequest{CompanyID: company.ID, Category: "tech"})
	newJob(t, s, types.CreateJobRequest{CompanyID: company.ID, Category: "Tech"})
	newJob(t, s, types.CreateJobRequest{CompanyID: company.ID, Category: "technology"})

	jobs, err := s.ListJobs(ctx, JobFilters{Category: "tech"})
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "tech", jobs[0].Category)
}

func TestListJobs_LocationSubstringCaseInsensitive(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	company := newCompany(t, s, "Acme")

	newJob(t, s, types.CreateJobRequest{CompanyID: company.ID, Location: "Downtown SF"})
	newJob(t, s, types.CreateJobRequest{CompanyID: company.ID, Location: "Oakland"})

	jobs, err := s.ListJobs(ctx, JobFilters{Location: "downtown"})
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Downtown SF", jobs[0].Job.Location)
}

func TestListJobs_SearchMatchesTitleDescriptionSkills(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	company := newCompany(t, s, "Acme")

	byTitle := newJob(t, s, types.CreateJobRequest{
		CompanyID: company.ID, Title: "Golang Developer", Description: "backend work",
	})
	byDescription := newJob(t, s, types.CreateJobRequest{
		CompanyID: company.ID, Title: "Engineer", Description: "Writes golang services",
	})
	bySkill := newJob(t, s, types.CreateJobRequest{
		CompanyID: company.ID, Title: "Engineer", Description: "backend work",
		Skills: []string{"Golang", "SQL"},
	})
	newJob(t, s, types.CreateJobRequest{
		CompanyID: company.ID, Title: "Designer", Description: "visual design",
		Skills: []string{"Figma"},
	})

	jobs, err := s.ListJobs(ctx, JobFilters{Search: "golang"})
	require.NoError(t, err)
	require.Len(t, jobs, 3)

	ids := []int64{jobs[0].ID, jobs[1].ID, jobs[2].ID}
	assert.ElementsMatch(t, []int64{byTitle.ID, byDescription.ID, bySkill.ID}, ids)
}

func TestListJobs_FiltersAreANDCombined(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	company := newCompany(t, s, "Acme")

	match := newJob(t, s, types.CreateJobRequest{
		CompanyID: company.ID, Title: "Go Engineer", Category: "tech", Location: "NYC",
	})
	newJob(t, s, types.CreateJobRequest{
		CompanyID: company.ID, Title: "Go Engineer", Category: "tech", Location: "SF",
	})
	newJob(t, s, types.CreateJobRequest{
		CompanyID: company.ID, Title: "Chef", Category: "food", Location: "NYC",
	})

	jobs, err := s.ListJobs(ctx, JobFilters{Category: "tech", Location: "nyc", Search: "go"})
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, match.ID, jobs[0].ID)
}

func TestListJobs_OrderedByPostedAtDescending(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	company := newCompany(t, s, "Acme")

	older := newJob(t, s, types.CreateJobRequest{CompanyID: company.ID, Title: "Older"})
	newer := newJob(t, s, types.CreateJobRequest{CompanyID: company.ID, Title: "Newer"})

	// Force distinct timestamps regardless of clock resolution.
	s.mu.Lock()
	j := s.jobs[newer.ID]
	j.PostedAt = s.jobs[older.ID].PostedAt.Add(time.Hour)
	s.jobs[newer.ID] = j
	s.mu.Unlock()

	jobs, err := s.ListJobs(ctx, JobFilters{})
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, newer.ID, jobs[0].ID)
	assert.Equal(t, older.ID, jobs[1].ID)
}

func TestListJobs_EqualPostedAtKeepsInsertionOrder(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	company := newCompany(t, s, "Acme")

	first := newJob(t, s, types.CreateJobRequest{CompanyID: company.ID, Title: "First"})
	second := newJob(t, s, types.CreateJobRequest{CompanyID: company.ID, Title: "Second"})
	third := newJob(t, s, types.CreateJobRequest{CompanyID: company.ID, Title: "Third"})

	// Pin all three to the same instant.
	s.mu.Lock()
	at := s.jobs[first.ID].PostedAt
	for _, id := range []int64{second.ID, third.ID} {
		j := s.jobs[id]
		j.PostedAt = at
		s.jobs[id] = j
	}
	s.mu.Unlock()

	for range 5 {
		jobs, err := s.ListJobs(ctx, JobFilters{})
		require.NoError(t, err)
		require.Len(t, jobs, 3)
		assert.Equal(t, first.ID, jobs[0].ID)
		assert.Equal(t, second.ID, jobs[1].ID)
		assert.Equal(t, third.ID, jobs[2].ID)
	}
}

func TestListJobs_DropsJobsWithMissingCompany(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	company := newCompany(t, s, "Acme")

	kept := newJob(t, s, types.CreateJobRequest{CompanyID: company.ID})
	newJob(t, s, types.CreateJobRequest{CompanyID: 999})

	jobs, err := s.ListJobs(ctx, JobFilters{})
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, kept.ID, jobs[0].ID)
	assert.Equal(t, "Acme", jobs[0].Company.Name)
}

func TestGetJob_MissingCompanyIsNotFound(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	orphan := newJob(t, s, types.CreateJobRequest{CompanyID: 42})

	job, err := s.GetJob(ctx, orphan.ID)
	require.NoError(t, err)
	assert.Nil(t, job)
}

func TestGetJob_Enriched(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	company := newCompany(t, s, "Acme")
	created := newJob(t, s, types.CreateJobRequest{CompanyID: company.ID, Title: "Engineer"})

	job, err := s.GetJob(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, job)
	assert.Equal(t, "Engineer", job.Title)
	assert.Equal(t, "Acme", job.Company.Name)
	assert.GreaterOrEqual(t, job.LikesCount, 20)
	assert.LessOrEqual(t, job.LikesCount, 219)
	assert.GreaterOrEqual(t, job.CommentsCount, 5)
	assert.LessOrEqual(t, job.CommentsCount, 54)

	missing, err := s.GetJob(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUpdateJob_PartialMerge(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	company := newCompany(t, s, "Acme")
	created := newJob(t, s, types.CreateJobRequest{
		CompanyID: company.ID, Title: "Engineer", Salary: "$100k",
	})

	title := "Senior Engineer"
	updated, err := s.UpdateJob(ctx, created.ID, &types.UpdateJobRequest{Title: &title})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Senior Engineer", updated.Title)
	assert.Equal(t, "$100k", updated.Salary)
	assert.Equal(t, created.PostedAt, updated.PostedAt)

	absent, err := s.UpdateJob(ctx, 999, &types.UpdateJobRequest{Title: &title})
	require.NoError(t, err)
	assert.Nil(t, absent)
}

func TestDeleteJob(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	company := newCompany(t, s, "Acme")
	created := newJob(t, s, types.CreateJobRequest{CompanyID: company.ID})

	deleted, err := s.DeleteJob(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = s.DeleteJob(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestCreateApplication_Defaults(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	before := time.Now()
	app, err := s.CreateApplication(ctx, &types.CreateApplicationRequest{
		JobID: 1, ApplicantName: "Jane", ApplicantEmail: "j@x.com",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), app.ID)
	assert.Equal(t, StatusPending, app.Status)
	assert.Nil(t, app.CoverLetter)
	assert.False(t, app.AppliedAt.Before(before))

	apps, err := s.ListApplicationsForJob(ctx, 1)
	require.NoError(t, err)
	require.Len(t, apps, 1)

	apps, err = s.ListApplicationsForJob(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, apps)
}

func TestSaveUnsaveRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	saved, err := s.IsJobSaved(ctx, 1, "u1")
	require.NoError(t, err)
	assert.False(t, saved)

	_, err = s.SaveJob(ctx, &types.SaveJobRequest{JobID: 1, UserID: "u1"})
	require.NoError(t, err)

	saved, err = s.IsJobSaved(ctx, 1, "u1")
	require.NoError(t, err)
	assert.True(t, saved)

	removed, err := s.UnsaveJob(ctx, 1, "u1")
	require.NoError(t, err)
	assert.True(t, removed)

	saved, err = s.IsJobSaved(ctx, 1, "u1")
	require.NoError(t, err)
	assert.False(t, saved)
}

func TestUnsaveJob_NoMatchLeavesStoreUnchanged(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_, err := s.SaveJob(ctx, &types.SaveJobRequest{JobID: 1, UserID: "u1"})
	require.NoError(t, err)

	removed, err := s.UnsaveJob(ctx, 2, "u1")
	require.NoError(t, err)
	assert.False(t, removed)

	removed, err = s.UnsaveJob(ctx, 1, "someone-else")
	require.NoError(t, err)
	assert.False(t, removed)

	saved, err := s.IsJobSaved(ctx, 1, "u1")
	require.NoError(t, err)
	assert.True(t, saved)
}

func TestSaveJob_DuplicatesAllowedAndUnsavedOneAtATime(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	first, err := s.SaveJob(ctx, &types.SaveJobRequest{JobID: 1, UserID: "u1"})
	require.NoError(t, err)
	second, err := s.SaveJob(ctx, &types.SaveJobRequest{JobID: 1, UserID: "u1"})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	// One unsave removes exactly one row; the duplicate keeps the job saved.
	removed, err := s.UnsaveJob(ctx, 1, "u1")
	require.NoError(t, err)
	assert.True(t, removed)

	saved, err := s.IsJobSaved(ctx, 1, "u1")
	require.NoError(t, err)
	assert.True(t, saved)

	removed, err = s.UnsaveJob(ctx, 1, "u1")
	require.NoError(t, err)
	assert.True(t, removed)

	saved, err = s.IsJobSaved(ctx, 1, "u1")
	require.NoError(t, err)
	assert.False(t, saved)
}

func TestListSavedJobs(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	company := newCompany(t, s, "Acme")

	active := newJob(t, s, types.CreateJobRequest{CompanyID: company.ID, Title: "Active"})
	inactive := newJob(t, s, types.CreateJobRequest{CompanyID: company.ID, Title: "Inactive"})
	orphan := newJob(t, s, types.CreateJobRequest{CompanyID: 999, Title: "Orphan"})

	off := false
	_, err := s.UpdateJob(ctx, inactive.ID, &types.UpdateJobRequest{IsActive: &off})
	require.NoError(t, err)

	for _, jobID := range []int64{active.ID, inactive.ID, orphan.ID} {
		_, err := s.SaveJob(ctx, &types.SaveJobRequest{JobID: jobID, UserID: "u1"})
		require.NoError(t, err)
	}
	_, err = s.SaveJob(ctx, &types.SaveJobRequest{JobID: active.ID, UserID: "u2"})
	require.NoError(t, err)

	jobs, err := s.ListSavedJobs(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, active.ID, jobs[0].ID)
	assert.True(t, jobs[0].IsSaved)
	assert.Equal(t, "Acme", jobs[0].Company.Name)
}

func TestListSavedJobs_MostRecentFirst(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	company := newCompany(t, s, "Acme")

	jobA := newJob(t, s, types.CreateJobRequest{CompanyID: company.ID, Title: "A"})
	jobB := newJob(t, s, types.CreateJobRequest{CompanyID: company.ID, Title: "B"})

	firstSave, err := s.SaveJob(ctx, &types.SaveJobRequest{JobID: jobA.ID, UserID: "u1"})
	require.NoError(t, err)
	secondSave, err := s.SaveJob(ctx, &types.SaveJobRequest{JobID: jobB.ID, UserID: "u1"})
	require.NoError(t, err)

	// Force distinct timestamps regardless of clock resolution.
	s.mu.Lock()
	saved := s.savedJobs[secondSave.ID]
	saved.SavedAt = s.savedJobs[firstSave.ID].SavedAt.Add(time.Minute)
	s.savedJobs[secondSave.ID] = saved
	s.mu.Unlock()

	jobs, err := s.ListSavedJobs(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, jobB.ID, jobs[0].ID)
	assert.Equal(t, jobA.ID, jobs[1].ID)
}

func TestListCompanies(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	newCompany(t, s, "Acme")
	newCompany(t, s, "Globex")

	companies, err := s.ListCompanies(ctx)
	require.NoError(t, err)
	require.Len(t, companies, 2)
	assert.Equal(t, "Acme", companies[0].Name)
	assert.Equal(t, "Globex", companies[1].Name)

	c, err := s.GetCompany(ctx, companies[0].ID)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "Acme", c.Name)

	missing, err := s.GetCompany(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSeed(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, Seed(ctx, s))

	companies, err := s.ListCompanies(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, companies)

	jobs, err := s.ListJobs(ctx, JobFilters{})
	require.NoError(t, err)
	assert.NotEmpty(t, jobs)
	for _, j := range jobs {
		assert.True(t, j.IsActive)
		assert.NotZero(t, j.Company.ID)
	}
}
