package store

import (
	"context"
	"fmt"

	"github.com/jobdeck/jobdeck/internal/types"
)

func strPtr(s string) *string { return &s }

// Seed populates a store with a small set of sample companies and jobs for
// local development. It is not idempotent; running it twice duplicates data.
func Seed(ctx context.Context, s Store) error {
	seeds := []struct {
		company types.CreateCompanyRequest
		jobs    []types.CreateJobRequest
	}{
		{
			company: types.CreateCompanyRequest{
				Name:        "TechCorp Solutions",
				Logo:        "https://images.unsplash.com/photo-1552664730-d307ca884978?w=100&h=100",
				Location:    "Downtown SF",
				Description: strPtr("Leading technology solutions provider"),
			},
			jobs: []types.CreateJobRequest{
				{
					Title:       "Senior Frontend Developer",
					Description: "Build responsive web applications with a modern stack. Hybrid schedule, strong benefits.",
					Location:    "Downtown SF",
					Salary:      "$120k - $150k",
					Type:        TypeFullTime,
					Category:    "tech",
					Skills:      []string{"React", "TypeScript", "CSS"},
				},
				{
					Title:       "Backend Engineer",
					Description: "Design and scale REST APIs backed by PostgreSQL. On-call rotation shared across the team.",
					Location:    "Downtown SF",
					Salary:      "$130k - $160k",
					Type:        TypeFullTime,
					Category:    "tech",
					Skills:      []string{"Go", "PostgreSQL", "Docker"},
				},
			},
		},
		{
			company: types.CreateCompanyRequest{
				Name:        "Green Leaf Cafe",
				Logo:        "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=100&h=100",
				Location:    "Mission District",
				Description: strPtr("Eco-friendly local coffee shop"),
			},
			jobs: []types.CreateJobRequest{
				{
					Title:       "Barista",
					Description: "Craft espresso drinks and keep the morning rush moving. Weekend availability required.",
					Location:    "Mission District",
					Salary:      "$18/hour",
					Type:        TypePartTime,
					Category:    "food",
					Skills:      []string{"Coffee", "Customer Service"},
				},
			},
		},
		{
			company: types.CreateCompanyRequest{
				Name:        "DesignStudio Pro",
				Logo:        "https://images.unsplash.com/photo-1560472354-b33ff0c44a43?w=100&h=100",
				Location:    "SOMA",
				Description: strPtr("Creative design agency"),
			},
			jobs: []types.CreateJobRequest{
				{
					Title:       "UX Designer",
					Description: "Own user research and interaction design for client projects. Portfolio review required.",
					Location:    "SOMA",
					Salary:      "$95k - $115k",
					Type:        TypeContract,
					Category:    "design",
					Skills:      []string{"Figma", "User Research", "Prototyping"},
				},
			},
		},
		{
			company: types.CreateCompanyRequest{
				Name:        "DataFlow Analytics",
				Logo:        "https://images.unsplash.com/photo-1441986300917-64674bd600d8?w=100&h=100",
				Location:    "Financial District",
				Description: strPtr("Data analytics consulting"),
			},
			jobs: []types.CreateJobRequest{
				{
					Title:       "Data Analyst",
					Description: "Turn messy datasets into decisions. SQL and Python required, Tableau a plus.",
					Location:    "Financial District",
					Salary:      "$85k - $105k",
					Type:        TypeFullTime,
					Category:    "finance",
					Skills:      []string{"SQL", "Python", "Tableau"},
				},
			},
		},
	}

	for _, seed := range seeds {
		company, err := s.CreateCompany(ctx, &seed.company)
		if err != nil {
			return fmt.Errorf("failed to seed company %q: %w", seed.company.Name, err)
		}
		for i := range seed.jobs {
			job := seed.jobs[i]
			job.CompanyID = company.ID
			if _, err := s.CreateJob(ctx, &job); err != nil {
				return fmt.Errorf("failed to seed job %q: %w", job.Title, err)
			}
		}
	}
	return nil
}
