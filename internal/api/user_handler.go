package api

import (
	"fmt"
	"log"
	"net/http"

	"prism-careers/internal/userstore"
)

type profileRequest struct {
	UserID      string `json:"user_id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name,omitempty"`
}

// UpdateProfileHandler upserts the user's profile on login
// @Summary Update profile
// @Description Create or refresh the user's profile and last-login timestamp
// @Tags user
// @Accept json
// @Produce json
// @Param profile body profileRequest true "Profile"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /user/profile [post]
func (a *API) UpdateProfileHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req profileRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.UserID == "" {
		respondError(w, http.StatusBadRequest, "user_id is required")
		return
	}

	if err := a.users.UpsertProfile(r.Context(), req.UserID, req.Email, req.DisplayName); err != nil {
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("Error updating profile: %v", err))
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"status":  "success",
		"message": "Profile updated",
	})
}

type selectedCareersRequest struct {
	UserID  string   `json:"user_id"`
	Careers []string `json:"careers"`
}

// SaveSelectedCareersHandler stores the user's shortlisted career titles
// @Summary Save selected careers
// @Description Save up to 3 career choices for the user; extras are dropped
// @Tags user
// @Accept json
// @Produce json
// @Param selection body selectedCareersRequest true "Career choices"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /user/selected-careers [post]
func (a *API) SaveSelectedCareersHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req selectedCareersRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.UserID == "" {
		respondError(w, http.StatusBadRequest, "user_id is required")
		return
	}

	careers := capCareers(req.Careers, 3)
	if err := a.users.SaveSelectedCareers(r.Context(), req.UserID, careers); err != nil {
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("Error saving selected careers: %v", err))
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"status":  "success",
		"message": fmt.Sprintf("Saved %d career choices", len(careers)),
		"careers": careers,
	})
}

// capCareers keeps the first max entries in input order.
func capCareers(careers []string, max int) []string {
	if len(careers) <= max {
		return careers
	}
	return careers[:max]
}

// GetSelectedCareersHandler returns the user's shortlisted career titles
// @Summary Get selected careers
// @Tags user
// @Produce json
// @Param uid path string true "User ID"
// @Success 200 {object} map[string]interface{}
// @Router /user/{uid}/selected-careers [get]
func (a *API) GetSelectedCareersHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	uid := r.PathValue("uid")
	careers, err := a.users.GetSelectedCareers(r.Context(), uid)
	if err != nil {
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("Error fetching selected careers: %v", err))
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"status":  "success",
		"careers": careers,
		"count":   len(careers),
	})
}

// UserProgressHandler summarizes the user's journey so far
// @Summary User progress
// @Description Completion stats, recent activity and latest assessment results
// @Tags user
// @Produce json
// @Param uid path string true "User ID"
// @Success 200 {object} map[string]interface{}
// @Router /user/{uid}/progress [get]
func (a *API) UserProgressHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	uid := r.PathValue("uid")
	stats, err := a.users.Progress(r.Context(), uid)
	if err != nil {
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("Error computing progress: %v", err))
		return
	}

	activity, err := a.users.RecentActivity(r.Context(), uid, 5)
	if err != nil {
		log.Printf("Warning: Could not load recent activity for %s: %v", uid, err)
		activity = []userstore.Activity{}
	}

	results, err := a.users.LatestResults(r.Context(), uid)
	if err != nil {
		log.Printf("Warning: Could not load latest assessment for %s: %v", uid, err)
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"status":            "success",
		"progress":          stats,
		"recent_activity":   activity,
		"latest_assessment": results,
	})
}
