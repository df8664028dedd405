package api

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"prism-careers/internal/catalog"
	"prism-careers/internal/userstore"
)

type selectJourneyRequest struct {
	UserID      string `json:"user_id"`
	CareerSlug  string `json:"career_slug"`
	CareerTitle string `json:"career_title"`
}

// SelectJourneyHandler records the user's active career journey
// @Summary Select career journey
// @Description Resolve a career to a catalog entry and set it as the user's active journey
// @Tags journey
// @Accept json
// @Produce json
// @Param selection body selectJourneyRequest true "Career selection"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /career-journey/select [post]
func (a *API) SelectJourneyHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req selectJourneyRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.UserID == "" || strings.TrimSpace(req.CareerTitle) == "" {
		respondError(w, http.StatusBadRequest, "user_id and career_title are required")
		return
	}

	career, err := a.catalog.Resolve(r.Context(), req.CareerSlug, req.CareerTitle)
	if err != nil {
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("Error selecting career journey: %v", err))
		return
	}
	if career == nil {
		// Not an error: the catalog simply has no matching entry yet.
		// The client can offer to request this career be added.
		respondJSON(w, http.StatusOK, map[string]any{
			"status":       "career_not_found",
			"message":      fmt.Sprintf("Career '%s' is not in our catalog yet. You can request it to be added.", req.CareerTitle),
			"career_title": req.CareerTitle,
			"career_slug":  req.CareerSlug,
		})
		return
	}

	if err := a.users.SaveJourney(r.Context(), req.UserID, career.Slug, career.Title); err != nil {
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("Error saving career journey: %v", err))
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"status":       "success",
		"message":      fmt.Sprintf("Career journey selected: %s", career.Title),
		"career_slug":  career.Slug,
		"career_title": career.Title,
	})
}

// GetJourneyHandler returns the user's journey with career and progress
// @Summary Get career journey
// @Description Get the user's selected career, its full document, and roadmap progress
// @Tags journey
// @Produce json
// @Param uid path string true "User ID"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]string
// @Router /career-journey/{uid} [get]
func (a *API) GetJourneyHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	uid := r.PathValue("uid")
	journey, err := a.users.GetJourney(r.Context(), uid)
	if err != nil {
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("Error fetching career journey: %v", err))
		return
	}
	if journey == nil {
		respondJSON(w, http.StatusOK, map[string]any{
			"status":           "not_selected",
			"career":           nil,
			"roadmap_progress": []any{},
		})
		return
	}

	career, err := a.catalog.GetBySlug(r.Context(), journey.Slug)
	if err != nil {
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("Error fetching career: %v", err))
		return
	}

	progress := map[string]map[string]userstore.StepProgress{}
	if career != nil {
		progress, err = a.users.GetRoadmapProgress(r.Context(), uid, career.ID.Hex())
		if err != nil {
			log.Printf("Warning: Could not load roadmap progress for %s: %v", uid, err)
			progress = map[string]map[string]userstore.StepProgress{}
		}
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"status":           "success",
		"journey":          journey,
		"career":           career,
		"roadmap_progress": progress,
	})
}

type roadmapProgressRequest struct {
	UserID    string `json:"user_id"`
	CareerID  string `json:"career_id"`
	Stage     string `json:"stage"`
	StepID    string `json:"step_id"`
	Completed bool   `json:"completed"`
	StepTitle string `json:"step_title,omitempty"`
	Note      string `json:"note,omitempty"`
}

// UpdateRoadmapProgressHandler records completion of one roadmap step
// @Summary Update roadmap progress
// @Description Mark a roadmap step complete or incomplete for the user's journey
// @Tags journey
// @Accept json
// @Produce json
// @Param progress body roadmapProgressRequest true "Step progress"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /career-journey/roadmap/progress [post]
func (a *API) UpdateRoadmapProgressHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req roadmapProgressRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.UserID == "" || req.CareerID == "" || req.Stage == "" || req.StepID == "" {
		respondError(w, http.StatusBadRequest, "user_id, career_id, stage and step_id are required")
		return
	}

	if err := a.users.UpdateRoadmapProgress(r.Context(), req.UserID, req.CareerID, req.Stage, req.StepID, req.StepTitle, req.Completed, req.Note); err != nil {
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("Error updating roadmap progress: %v", err))
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"status":  "success",
		"message": "Roadmap progress updated",
	})
}

type careerRequestBody struct {
	UserID      string `json:"user_id"`
	CareerTitle string `json:"career_title"`
	CareerSlug  string `json:"career_slug,omitempty"`
	UserEmail   string `json:"user_email,omitempty"`
	UserName    string `json:"user_name,omitempty"`
	Message     string `json:"message,omitempty"`
}

// CareerRequestHandler records a request for a missing catalog entry
// @Summary Request a career
// @Description Record a request to add a career to the catalog and notify the admin by email
// @Tags careers
// @Accept json
// @Produce json
// @Param request body careerRequestBody true "Career request"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /career/request [post]
func (a *API) CareerRequestHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req careerRequestBody
	if !decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.CareerTitle) == "" {
		respondError(w, http.StatusBadRequest, "career_title is required")
		return
	}

	if err := a.catalog.SaveRequest(r.Context(), catalog.CareerRequest{
		UserID:      req.UserID,
		CareerTitle: req.CareerTitle,
		CareerSlug:  req.CareerSlug,
		UserEmail:   req.UserEmail,
		UserName:    req.UserName,
		Message:     req.Message,
	}); err != nil {
		log.Printf("Warning: Could not persist career request for %q: %v", req.CareerTitle, err)
	}

	if !a.mailer.Configured() {
		respondJSON(w, http.StatusOK, map[string]any{
			"status":      "email_not_configured",
			"message":     "Your request was recorded, but email notifications are not configured.",
			"admin_email": a.adminEmail,
			"note":        "Set SMTP_USER and SMTP_PASSWORD to enable notifications.",
		})
		return
	}

	subject := fmt.Sprintf("Career Request: %s", req.CareerTitle)
	body := fmt.Sprintf(
		"A user has requested a new career to be added to the catalog.\n\n"+
			"Career Title: %s\nCareer Slug: %s\nUser ID: %s\nUser Email: %s\nMessage: %s\n",
		req.CareerTitle, req.CareerSlug, req.UserID, req.UserEmail, req.Message)
	a.QueueMail(a.adminEmail, subject, body)

	respondJSON(w, http.StatusOK, map[string]any{
		"status":  "success",
		"message": fmt.Sprintf("Your request for '%s' has been sent. We'll notify you when it's added!", req.CareerTitle),
	})
}
