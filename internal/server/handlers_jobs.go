package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/jobdeck/jobdeck/internal/store"
	"github.com/jobdeck/jobdeck/internal/types"
)

// parsePathID parses an int64 id from a path segment.
func parsePathID(r *http.Request, key string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(key), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// handleListJobs lists active jobs with optional category, location, and
// search filters, enriched with their companies.
func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filters := store.JobFilters{
		Category: query.Get("category"),
		Location: query.Get("location"),
		Search:   query.Get("search"),
	}

	jobs, err := s.store.ListJobs(r.Context(), filters)
	if err != nil {
		s.storeError(w, "Failed to fetch jobs", err)
		return
	}

	s.jsonResponse(w, http.StatusOK, jobs)
}

// handleGetJob retrieves a single enriched job by id.
func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePathID(r, "id")
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	job, err := s.store.GetJob(r.Context(), id)
	if err != nil {
		s.storeError(w, "Failed to fetch job", err)
		return
	}
	if job == nil {
		s.errorResponse(w, http.StatusNotFound, "Job not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, job)
}

// handleCreateJob creates a new job posting.
func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	var req types.CreateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		s.validationErrorResponse(w, "Invalid job data", err)
		return
	}

	job, err := s.store.CreateJob(r.Context(), &req)
	if err != nil {
		s.storeError(w, "Failed to create job", err)
		return
	}

	s.jsonResponse(w, http.StatusCreated, job)
}

// handleUpdateJob applies a partial update to an existing job.
func (s *Server) handleUpdateJob(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePathID(r, "id")
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	var req types.UpdateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		s.validationErrorResponse(w, "Invalid job data", err)
		return
	}

	job, err := s.store.UpdateJob(r.Context(), id, &req)
	if err != nil {
		s.storeError(w, "Failed to update job", err)
		return
	}
	if job == nil {
		s.errorResponse(w, http.StatusNotFound, "Job not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, job)
}

// handleDeleteJob hard-deletes a job.
func (s *Server) handleDeleteJob(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePathID(r, "id")
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	deleted, err := s.store.DeleteJob(r.Context(), id)
	if err != nil {
		s.storeError(w, "Failed to delete job", err)
		return
	}
	if !deleted {
		s.errorResponse(w, http.StatusNotFound, "Job not found")
		return
	}

	s.messageResponse(w, "Job deleted successfully")
}
