package api

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

func NewRouter(a *API) http.Handler {
	mux := http.NewServeMux()

	// Swagger documentation - must be registered first
	mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"),
	))

	// Health check (for Railway, k8s, etc.)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		respondJSON(w, http.StatusOK, map[string]any{
			"message": "Prism Career Guidance API",
			"docs":    "/swagger/index.html",
		})
	})

	// Assessment endpoints
	mux.HandleFunc("/api/assessment/questions", a.GetQuestionsHandler)
	mux.HandleFunc("/api/assessment/submit", a.SubmitAssessmentHandler)

	// Career catalog endpoints
	mux.HandleFunc("/api/careers/explore", a.ExploreCareersHandler)
	mux.HandleFunc("/api/careers/{slug}", a.CareerDetailHandler)
	mux.HandleFunc("/api/career/request", a.CareerRequestHandler)

	// Journey & roadmap endpoints
	mux.HandleFunc("/api/career-journey/select", a.SelectJourneyHandler)
	mux.HandleFunc("/api/career-journey/roadmap/progress", a.UpdateRoadmapProgressHandler)
	mux.HandleFunc("/api/career-journey/{uid}", a.GetJourneyHandler)

	// Mentor chat endpoints
	mux.HandleFunc("/api/mentor/chat", a.ChatHandler)
	mux.HandleFunc("/api/mentor/chat/history/{uid}", a.ChatHistoryHandler)

	// User endpoints
	mux.HandleFunc("/api/user/profile", a.UpdateProfileHandler)
	mux.HandleFunc("/api/user/selected-careers", a.SaveSelectedCareersHandler)
	mux.HandleFunc("/api/user/{uid}/selected-careers", a.GetSelectedCareersHandler)
	mux.HandleFunc("/api/user/{uid}/progress", a.UserProgressHandler)

	// Jobs endpoints
	mux.HandleFunc("/api/jobs", a.JobListingsHandler)
	mux.HandleFunc("/api/jobs/apply", a.ApplyJobHandler)
	mux.HandleFunc("/api/jobs/my-applications/{uid}", a.MyApplicationsHandler)
	mux.HandleFunc("/api/jobs/indeed-search", a.IndeedSearchHandler)

	return mux
}
