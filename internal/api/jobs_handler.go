package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"prism-careers/internal/userstore"
)

// JobListingsHandler lists open job postings
// @Summary Job listings
// @Description List job postings; empty until a listings source is connected
// @Tags jobs
// @Produce json
// @Param career_id query string false "Filter by career"
// @Param limit query int false "Max results" default(20)
// @Success 200 {object} map[string]interface{}
// @Router /jobs [get]
func (a *API) JobListingsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	jobs, err := a.users.JobListings(r.Context(), r.URL.Query().Get("career_id"), limit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("Error fetching jobs: %v", err))
		return
	}
	if jobs == nil {
		jobs = []map[string]any{}
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"status": "success",
		"jobs":   jobs,
		"count":  len(jobs),
	})
}

type jobApplicationRequest struct {
	UserID       string `json:"user_id"`
	JobListingID string `json:"job_listing_id,omitempty"`
	JobTitle     string `json:"job_title"`
	CompanyName  string `json:"company_name,omitempty"`
	JobLocation  string `json:"job_location,omitempty"`
	SalaryRange  string `json:"salary_range,omitempty"`
	JobURL       string `json:"job_url,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

// ApplyJobHandler records a job application
// @Summary Apply to a job
// @Description Record that the user applied to a job posting
// @Tags jobs
// @Accept json
// @Produce json
// @Param application body jobApplicationRequest true "Application"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /jobs/apply [post]
func (a *API) ApplyJobHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req jobApplicationRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.UserID == "" || strings.TrimSpace(req.JobTitle) == "" {
		respondError(w, http.StatusBadRequest, "user_id and job_title are required")
		return
	}

	id, err := a.users.RecordApplication(r.Context(), userstore.JobApplication{
		UserID:       req.UserID,
		JobListingID: req.JobListingID,
		JobTitle:     req.JobTitle,
		CompanyName:  req.CompanyName,
		JobLocation:  req.JobLocation,
		SalaryRange:  req.SalaryRange,
		JobURL:       req.JobURL,
		Notes:        req.Notes,
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("Error recording application: %v", err))
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"status":         "success",
		"message":        "Application recorded",
		"application_id": id,
	})
}

// MyApplicationsHandler lists the user's applications, newest first
// @Summary My job applications
// @Tags jobs
// @Produce json
// @Param uid path string true "User ID"
// @Success 200 {object} map[string]interface{}
// @Router /jobs/my-applications/{uid} [get]
func (a *API) MyApplicationsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	uid := r.PathValue("uid")
	apps, err := a.users.ApplicationsByUser(r.Context(), uid)
	if err != nil {
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("Error fetching applications: %v", err))
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"status":       "success",
		"applications": apps,
		"count":        len(apps),
	})
}

// IndeedSearchHandler searches external job boards
// @Summary External job search
// @Description Search external job listings by title and location; returns empty until a provider is connected
// @Tags jobs
// @Produce json
// @Param job_title query string true "Job title"
// @Param location query string false "Location"
// @Param limit query int false "Max results" default(10)
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /jobs/indeed-search [get]
func (a *API) IndeedSearchHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	jobTitle := strings.TrimSpace(r.URL.Query().Get("job_title"))
	if jobTitle == "" {
		respondError(w, http.StatusBadRequest, "job_title is required")
		return
	}

	location := r.URL.Query().Get("location")
	limit := 10
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	if limit > 25 {
		limit = 25
	}

	// No provider integration yet; the response shape is stable so the
	// client can render an empty result set.
	respondJSON(w, http.StatusOK, map[string]any{
		"status":  "success",
		"jobs":    []any{},
		"count":   0,
		"message": "External job search is not connected yet",
		"search_params": map[string]any{
			"job_title": jobTitle,
			"location":  location,
			"limit":     limit,
		},
	})
}
