package api

import (
	"encoding/json"
	"log"
	"net/http"

	"prism-careers/internal/ai"
	"prism-careers/internal/catalog"
	"prism-careers/internal/mail"
	"prism-careers/internal/storage"
	"prism-careers/internal/userstore"
)

type API struct {
	db         *storage.DB
	catalog    *catalog.Store
	users      *userstore.Store
	ai         *ai.Client
	mailer     *mail.Mailer
	adminEmail string
	mailQueue  chan MailJob // Background queue for admin-notification mails
}

func NewAPI(db *storage.DB, aiClient *ai.Client, mailer *mail.Mailer, adminEmail string) *API {
	api := &API{
		db:         db,
		catalog:    catalog.NewStore(db),
		users:      userstore.NewStore(db),
		ai:         aiClient,
		mailer:     mailer,
		adminEmail: adminEmail,
		mailQueue:  make(chan MailJob, 50), // Buffer for 50 pending mails
	}

	// Start background workers
	api.StartBackgroundWorkers()

	return api
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("ERROR: Failed to encode JSON response: %v", err)
	}
}

// respondError writes the transport-level failure shape: a detail string.
func respondError(w http.ResponseWriter, status int, detail string) {
	respondJSON(w, status, map[string]string{"detail": detail})
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

// trunc shortens user-facing context snippets without splitting runes.
func trunc(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
