package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"prism-careers/internal/ai"
	"prism-careers/internal/catalog"
	"prism-careers/internal/userstore"
)

type assessmentAnswer struct {
	QuestionID string `json:"question_id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
}

type assessmentSubmission struct {
	UserID      string             `json:"user_id"`
	Answers     []assessmentAnswer `json:"answers"`
	UserProfile map[string]any     `json:"user_profile,omitempty"`
}

// GetQuestionsHandler serves the assessment question set
// @Summary Assessment questions
// @Description Fetch the fixed career assessment question set
// @Tags assessment
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /assessment/questions [get]
func (a *API) GetQuestionsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"questions": AssessmentQuestions})
}

// SubmitAssessmentHandler runs the AI career analysis for a submission
// @Summary Submit assessment
// @Description Process assessment answers and return AI-generated career recommendations
// @Tags assessment
// @Accept json
// @Produce json
// @Param submission body assessmentSubmission true "Assessment submission"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /assessment/submit [post]
func (a *API) SubmitAssessmentHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var submission assessmentSubmission
	if !decodeBody(w, r, &submission) {
		return
	}

	log.Printf("Assessment submission received for user: %s (%d answers)",
		submission.UserID, len(submission.Answers))

	if len(submission.Answers) == 0 {
		respondError(w, http.StatusBadRequest, "No answers provided in assessment")
		return
	}

	// Profile upsert is best-effort: its failure must not block the
	// recommendations.
	if submission.UserProfile != nil {
		email, _ := submission.UserProfile["email"].(string)
		displayName, _ := submission.UserProfile["displayName"].(string)
		if err := a.users.UpsertProfile(r.Context(), submission.UserID, email, displayName); err != nil {
			log.Printf("Warning: Could not create/update user profile: %v", err)
		}
	}

	var lines []string
	for _, ans := range submission.Answers {
		lines = append(lines, fmt.Sprintf("Q: %s\nA: %s", ans.Question, ans.Answer))
	}
	answersText := strings.Join(lines, "\n")

	log.Println("Invoking AI model for career analysis...")
	raw, err := a.ai.Generate(r.Context(), ai.AssessmentSystemPrompt, ai.AssessmentUserPrompt(answersText))
	if err != nil {
		log.Printf("AI model error: %v", err)
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("AI model error: %v", err))
		return
	}
	log.Printf("AI response received (%d characters)", len(raw))

	result, err := ai.Sanitize(raw)
	if err != nil {
		var malformed *ai.MalformedResponseError
		if errors.As(err, &malformed) {
			log.Printf("All JSON parse attempts failed: %s", malformed.Diag)
			respondError(w, http.StatusInternalServerError,
				fmt.Sprintf("Error parsing AI response as JSON: %s. The AI response may contain invalid characters. Please try again.", malformed.Diag))
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	// Auto-add recommended careers to the catalog; individual failures
	// are warnings, never submission failures.
	careerPaths := mapSlice(result["career_paths"])
	for _, rec := range decodeRecommendations(careerPaths) {
		if _, err := a.catalog.UpsertFromRecommendation(r.Context(), rec); err != nil {
			log.Printf("Warning: Could not auto-add career %q: %v", rec.Title, err)
		}
	}

	// Persist the assessment record; recommendations were already
	// computed, so a storage failure only costs history.
	answers := make([]userstore.AnswerPair, 0, len(submission.Answers))
	for _, ans := range submission.Answers {
		answers = append(answers, userstore.AnswerPair{Question: ans.Question, Answer: ans.Answer})
	}
	results := userstore.AssessmentResults{
		CareerPaths:        careerPaths,
		SkillsGap:          mapSlice(result["skills_gap"]),
		LearningResources:  mapSlice(result["learning_resources"]),
		PersonalizedAdvice: stringValue(result["personalized_advice"]),
	}
	if _, err := a.users.SaveAssessment(r.Context(), submission.UserID, answers, results); err != nil {
		log.Printf("Warning: Could not save assessment data: %v", err)
	} else {
		log.Printf("Assessment data saved for user %s (%d careers auto-added)",
			submission.UserID, len(careerPaths))
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"status":          "success",
		"user_id":         submission.UserID,
		"recommendations": result,
	})
}

// mapSlice coerces a sanitized JSON array into a slice of objects,
// skipping non-object members.
func mapSlice(v any) []map[string]any {
	arr, ok := v.([]any)
	if !ok {
		return []map[string]any{}
	}
	out := make([]map[string]any, 0, len(arr))
	for _, item := range arr {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

func stringValue(v any) string {
	s, _ := v.(string)
	return s
}

// decodeRecommendations converts loose career-path objects into the
// catalog's typed recommendation fragments via a JSON round trip.
func decodeRecommendations(paths []map[string]any) []catalog.RecommendedCareer {
	recs := make([]catalog.RecommendedCareer, 0, len(paths))
	for _, path := range paths {
		raw, err := json.Marshal(path)
		if err != nil {
			continue
		}
		var rec catalog.RecommendedCareer
		if err := json.Unmarshal(raw, &rec); err != nil {
			continue
		}
		recs = append(recs, rec)
	}
	return recs
}
