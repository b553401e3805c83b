package server

import (
	"encoding/json"
	"net/http"

	"github.com/jobdeck/jobdeck/internal/types"
)

// handleCreateApplication submits an application for a job.
func (s *Server) handleCreateApplication(w http.ResponseWriter, r *http.Request) {
	var req types.CreateApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		s.validationErrorResponse(w, "Invalid application data", err)
		return
	}

	application, err := s.store.CreateApplication(r.Context(), &req)
	if err != nil {
		s.storeError(w, "Failed to submit application", err)
		return
	}

	s.jsonResponse(w, http.StatusCreated, application)
}

// handleListJobApplications lists applications submitted for a job.
func (s *Server) handleListJobApplications(w http.ResponseWriter, r *http.Request) {
	jobID, ok := parsePathID(r, "id")
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	applications, err := s.store.ListApplicationsForJob(r.Context(), jobID)
	if err != nil {
		s.storeError(w, "Failed to fetch applications", err)
		return
	}

	s.jsonResponse(w, http.StatusOK, applications)
}

// handleListApplications lists all applications.
func (s *Server) handleListApplications(w http.ResponseWriter, r *http.Request) {
	applications, err := s.store.ListApplications(r.Context())
	if err != nil {
		s.storeError(w, "Failed to fetch applications", err)
		return
	}

	s.jsonResponse(w, http.StatusOK, applications)
}
