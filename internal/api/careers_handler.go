package api

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"prism-careers/internal/catalog"
)

// ExploreCareersHandler lists the career catalog with optional personalization
// @Summary Explore careers
// @Description List career summaries with catalog statistics; personalized with assessment matches when user_id is given
// @Tags careers
// @Produce json
// @Param user_id query string false "User ID for personalization"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]string
// @Router /careers/explore [get]
func (a *API) ExploreCareersHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	summaries, err := a.catalog.ListSummaries(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("Error fetching careers: %v", err))
		return
	}

	if len(summaries) == 0 {
		summaries = []catalog.Summary{defaultCareerSummary()}
	}

	if uid := r.URL.Query().Get("user_id"); uid != "" {
		a.applyAssessmentMatches(r, uid, summaries)
	}

	categorySet := map[string]bool{}
	totalExams := 0
	for _, s := range summaries {
		if s.Category != "" {
			categorySet[s.Category] = true
		}
		totalExams += len(s.PopularExams)
	}
	categories := make([]string, 0, len(categorySet))
	for c := range categorySet {
		categories = append(categories, c)
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"status":  "success",
		"careers": summaries,
		"statistics": map[string]any{
			"total_careers":    len(summaries),
			"total_categories": len(categorySet),
			"total_exams":      totalExams,
			"categories":       categories,
		},
	})
}

// applyAssessmentMatches annotates summaries with the user's latest
// assessment match percentages. Titles are compared case-insensitively.
func (a *API) applyAssessmentMatches(r *http.Request, uid string, summaries []catalog.Summary) {
	results, err := a.users.LatestResults(r.Context(), uid)
	if err != nil {
		log.Printf("Warning: Could not load assessment results for %s: %v", uid, err)
		return
	}
	if results == nil || len(results.CareerPaths) == 0 {
		return
	}

	matchMap := map[string]float64{}
	for _, path := range results.CareerPaths {
		title := strings.ToLower(stringValue(path["title"]))
		if title == "" {
			continue
		}
		matchMap[title] = floatValue(path["match_percentage"])
	}

	for i := range summaries {
		if pct, ok := matchMap[strings.ToLower(summaries[i].Title)]; ok {
			p := pct
			summaries[i].MatchPercentage = &p
			summaries[i].IsRecommended = true
		}
	}
}

func defaultCareerSummary() catalog.Summary {
	return catalog.Summary{
		Slug:             "engineering",
		Title:            "Engineering",
		Category:         "Technology",
		ShortDescription: "Design and build solutions to real-world problems",
		AvgSalary:        "₹4-20 LPA",
		PopularExams:     []string{"JEE Main", "JEE Advanced"},
	}
}

// CareerDetailHandler returns one career document by slug
// @Summary Career detail
// @Description Get the full career document for a catalog slug
// @Tags careers
// @Produce json
// @Param slug path string true "Career slug"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /careers/{slug} [get]
func (a *API) CareerDetailHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	slug := r.PathValue("slug")
	career, err := a.catalog.GetBySlug(r.Context(), slug)
	if err != nil {
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("Error fetching career: %v", err))
		return
	}
	if career == nil {
		respondError(w, http.StatusNotFound, "Career not found")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"status": "success",
		"career": career,
	})
}
