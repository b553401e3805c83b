package server

import (
	"encoding/json"
	"net/http"

	"github.com/jobdeck/jobdeck/internal/types"
)

// handleSaveJob bookmarks a job for a user. Duplicate saves are allowed and
// create separate rows.
func (s *Server) handleSaveJob(w http.ResponseWriter, r *http.Request) {
	var req types.SaveJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		s.validationErrorResponse(w, "Invalid saved job data", err)
		return
	}

	saved, err := s.store.SaveJob(r.Context(), &req)
	if err != nil {
		s.storeError(w, "Failed to save job", err)
		return
	}

	s.jsonResponse(w, http.StatusCreated, saved)
}

// handleUnsaveJob removes at most one matching bookmark.
func (s *Server) handleUnsaveJob(w http.ResponseWriter, r *http.Request) {
	jobID, ok := parsePathID(r, "jobId")
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return
	}
	userID := r.PathValue("userId")
	if userID == "" {
		s.errorResponse(w, http.StatusBadRequest, "User ID is required")
		return
	}

	removed, err := s.store.UnsaveJob(r.Context(), jobID, userID)
	if err != nil {
		s.storeError(w, "Failed to unsave job", err)
		return
	}
	if !removed {
		s.errorResponse(w, http.StatusNotFound, "Saved job not found")
		return
	}

	s.messageResponse(w, "Job unsaved successfully")
}

// handleListSavedJobs lists a user's saved jobs, most recently saved first.
func (s *Server) handleListSavedJobs(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	if userID == "" {
		s.errorResponse(w, http.StatusBadRequest, "User ID is required")
		return
	}

	jobs, err := s.store.ListSavedJobs(r.Context(), userID)
	if err != nil {
		s.storeError(w, "Failed to fetch saved jobs", err)
		return
	}

	s.jsonResponse(w, http.StatusOK, jobs)
}

// handleSavedStatus reports whether a job is saved for a user.
func (s *Server) handleSavedStatus(w http.ResponseWriter, r *http.Request) {
	jobID, ok := parsePathID(r, "jobId")
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return
	}
	userID := r.PathValue("userId")
	if userID == "" {
		s.errorResponse(w, http.StatusBadRequest, "User ID is required")
		return
	}

	saved, err := s.store.IsJobSaved(r.Context(), jobID, userID)
	if err != nil {
		s.storeError(w, "Failed to check saved status", err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]bool{"isSaved": saved})
}
