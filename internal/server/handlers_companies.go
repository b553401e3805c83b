package server

import (
	"encoding/json"
	"net/http"

	"github.com/jobdeck/jobdeck/internal/types"
)

// handleListCompanies lists all companies.
func (s *Server) handleListCompanies(w http.ResponseWriter, r *http.Request) {
	companies, err := s.store.ListCompanies(r.Context())
	if err != nil {
		s.storeError(w, "Failed to fetch companies", err)
		return
	}

	s.jsonResponse(w, http.StatusOK, companies)
}

// handleCreateCompany creates a new company.
func (s *Server) handleCreateCompany(w http.ResponseWriter, r *http.Request) {
	var req types.CreateCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		s.validationErrorResponse(w, "Invalid company data", err)
		return
	}

	company, err := s.store.CreateCompany(r.Context(), &req)
	if err != nil {
		s.storeError(w, "Failed to create company", err)
		return
	}

	s.jsonResponse(w, http.StatusCreated, company)
}
