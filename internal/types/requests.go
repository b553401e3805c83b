// Package types provides the API request types shared by the HTTP layer and stores.
package types

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance. Field names in validation errors
// use the json tag so clients see wire names, not Go struct names.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// CreateCompanyRequest represents the insert shape for a company.
type CreateCompanyRequest struct {
	Name        string  `json:"name" validate:"required"`
	Logo        string  `json:"logo" validate:"required,url"`
	Location    string  `json:"location" validate:"required"`
	Description *string `json:"description,omitempty"`
}

// CreateJobRequest represents the insert shape for a job posting.
// PostedAt and IsActive are store-assigned and not accepted from clients.
type CreateJobRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	CompanyID   int64    `json:"companyId" validate:"required,gt=0"`
	Location    string   `json:"location" validate:"required"`
	Salary      string   `json:"salary" validate:"required"`
	Type        string   `json:"type" validate:"required,oneof=full-time part-time contract"`
	Category    string   `json:"category" validate:"required"`
	Skills      []string `json:"skills,omitempty"`
}

// UpdateJobRequest is a partial update of a job. Nil fields keep their
// prior values.
type UpdateJobRequest struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	CompanyID   *int64    `json:"companyId,omitempty" validate:"omitempty,gt=0"`
	Location    *string   `json:"location,omitempty"`
	Salary      *string   `json:"salary,omitempty"`
	Type        *string   `json:"type,omitempty" validate:"omitempty,oneof=full-time part-time contract"`
	Category    *string   `json:"category,omitempty"`
	Skills      *[]string `json:"skills,omitempty"`
	IsActive    *bool     `json:"isActive,omitempty"`
}

// CreateApplicationRequest represents the insert shape for a job application.
type CreateApplicationRequest struct {
	JobID          int64   `json:"jobId" validate:"required,gt=0"`
	ApplicantName  string  `json:"applicantName" validate:"required"`
	ApplicantEmail string  `json:"applicantEmail" validate:"required,email"`
	CoverLetter    *string `json:"coverLetter,omitempty"`
}

// SaveJobRequest represents the insert shape for a saved-job bookmark.
// UserID is an opaque, unauthenticated client-supplied identifier.
type SaveJobRequest struct {
	JobID  int64  `json:"jobId" validate:"required,gt=0"`
	UserID string `json:"userId" validate:"required"`
}

// Validate validates the CreateCompanyRequest using the validator.
func (r *CreateCompanyRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the CreateJobRequest using the validator.
func (r *CreateJobRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the UpdateJobRequest using the validator.
func (r *UpdateJobRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the CreateApplicationRequest using the validator.
func (r *CreateApplicationRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the SaveJobRequest using the validator.
func (r *SaveJobRequest) Validate() error {
	return validate.Struct(r)
}
