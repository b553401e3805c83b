package store

import "time"

// Company represents an employer record. Companies are immutable after
// creation; there is no update operation.
type Company struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Logo        string  `json:"logo"`
	Location    string  `json:"location"`
	Description *string `json:"description"`
}

// Job represents a job listing.
type Job struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CompanyID   int64     `json:"companyId"`
	Location    string    `json:"location"`
	Salary      string    `json:"salary"`
	Type        string    `json:"type"` // full-time, part-time, contract
	Category    string    `json:"category"`
	Skills      []string  `json:"skills"`
	PostedAt    time.Time `json:"postedAt"`
	IsActive    bool      `json:"isActive"`
}

// Application represents a job application submitted by a candidate.
type Application struct {
	ID             int64     `json:"id"`
	JobID          int64     `json:"jobId"`
	ApplicantName  string    `json:"applicantName"`
	ApplicantEmail string    `json:"applicantEmail"`
	CoverLetter    *string   `json:"coverLetter"`
	AppliedAt      time.Time `json:"appliedAt"`
	Status         string    `json:"status"` // pending, reviewed, accepted, rejected
}

// Application status constants.
const (
	StatusPending  = "pending"
	StatusReviewed = "reviewed"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

// Job type constants.
const (
	TypeFullTime = "full-time"
	TypePartTime = "part-time"
	TypeContract = "contract"
)

// SavedJob represents a user-scoped bookmark of a job. The (JobID, UserID)
// pair is not unique; duplicate saves create duplicate rows.
type SavedJob struct {
	ID      int64     `json:"id"`
	JobID   int64     `json:"jobId"`
	UserID  string    `json:"userId"`
	SavedAt time.Time `json:"savedAt"`
}

// JobWithCompany is a job enriched with its company for presentation.
// LikesCount and CommentsCount are freshly randomized on every read and are
// never persisted; callers must not assume stability across requests.
type JobWithCompany struct {
	Job
	Company       Company `json:"company"`
	IsSaved       bool    `json:"isSaved,omitempty"`
	LikesCount    int     `json:"likesCount"`
	CommentsCount int     `json:"commentsCount"`
}

// JobFilters holds optional filters for listing jobs. Zero values mean
// no constraint on that dimension. Provided filters are AND-combined.
type JobFilters struct {
	Category string // exact, case-sensitive match
	Location string // case-insensitive substring match
	Search   string // case-insensitive substring over title, description, skills
}
