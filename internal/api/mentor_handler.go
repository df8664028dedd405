package api

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"prism-careers/internal/ai"
	"prism-careers/internal/userstore"
)

type chatRequest struct {
	UserID  string         `json:"user_id"`
	Message string         `json:"message"`
	Context map[string]any `json:"context,omitempty"`
}

// ChatHandler answers a mentor message with full user context
// @Summary Mentor chat
// @Description AI mentor chatbot for career guidance with context awareness
// @Tags mentor
// @Accept json
// @Produce json
// @Param chat body chatRequest true "Chat message"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /mentor/chat [post]
func (a *API) ChatHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req chatRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		respondError(w, http.StatusBadRequest, "message is required")
		return
	}

	userCtx, err := a.users.Context(r.Context(), req.UserID)
	if err != nil {
		log.Printf("Warning: Could not load user context for %s: %v", req.UserID, err)
	}

	history, err := a.users.ChatHistory(r.Context(), req.UserID, 5)
	if err != nil {
		log.Printf("Warning: Could not load chat history for %s: %v", req.UserID, err)
	}

	contextInfo := mentorContextInfo(req.Context, userCtx, history)
	system := ai.MentorSystemPrompt(contextInfo)

	// Replay the last two exchanges as conversation turns, responses
	// truncated to keep the context window small.
	turns := []ai.Turn{}
	start := len(history) - 2
	if start < 0 {
		start = 0
	}
	for _, msg := range history[start:] {
		turns = append(turns, ai.Turn{User: msg.Message, Model: trunc(msg.Response, 500)})
	}

	reply, err := a.ai.Chat(r.Context(), system, turns, req.Message)
	if err != nil {
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("Error in chat: %v", err))
		return
	}

	if err := a.users.SaveChatMessage(r.Context(), req.UserID, req.Message, reply); err != nil {
		log.Printf("Warning: Could not save chat message for %s: %v", req.UserID, err)
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"status":   "success",
		"response": reply,
		"user_id":  req.UserID,
	})
}

// ChatHistoryHandler returns the mentor transcript window
// @Summary Mentor chat history
// @Description Get the user's chat history in chronological order
// @Tags mentor
// @Produce json
// @Param uid path string true "User ID"
// @Param limit query int false "History window size" default(20)
// @Success 200 {object} map[string]interface{}
// @Router /mentor/chat/history/{uid} [get]
func (a *API) ChatHistoryHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	uid := r.PathValue("uid")
	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	history, err := a.users.ChatHistory(r.Context(), uid, limit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("Error fetching chat history: %v", err))
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"status":  "success",
		"history": history,
	})
}

// mentorContextInfo assembles the personalization block injected into the
// mentor's system prompt: the career the user is currently viewing, their
// latest assessment summary, and the tail of the conversation.
func mentorContextInfo(pageCtx map[string]any, userCtx userstore.MentorContext, history []userstore.ChatMessage) string {
	var parts []string

	if title := stringValue(pageCtx["career_title"]); title != "" {
		parts = append(parts,
			"CURRENT CAREER OF INTEREST (User clicked from Explore/Detail page):",
			fmt.Sprintf("- Career: %s", title))
		if desc := stringValue(pageCtx["career_description"]); desc != "" {
			parts = append(parts, fmt.Sprintf("- Description: %s", trunc(desc, 300)))
		}
		if salary := stringValue(pageCtx["avg_salary"]); salary != "" {
			parts = append(parts, fmt.Sprintf("- Average Salary: %s", salary))
		}
		if exams := stringList(pageCtx["popular_exams"], 5); len(exams) > 0 {
			parts = append(parts, fmt.Sprintf("- Entrance Exams: %s", strings.Join(exams, ", ")))
		}
		if skills := stringList(pageCtx["skills_required"], 5); len(skills) > 0 {
			parts = append(parts, fmt.Sprintf("- Required Skills: %s", strings.Join(skills, ", ")))
		}
		if roles := stringList(pageCtx["job_roles"], 3); len(roles) > 0 {
			parts = append(parts, fmt.Sprintf("- Job Roles: %s", strings.Join(roles, ", ")))
		}
		parts = append(parts,
			"\nIMPORTANT: The user is specifically asking about THIS career. Reference it directly in your responses.",
			"")
	}

	if userCtx.AssessmentCompleted {
		parts = append(parts, "USER'S CAREER ASSESSMENT RESULTS:")

		if len(userCtx.CareerMatches) > 0 {
			matches := []string{}
			for i, career := range userCtx.CareerMatches {
				if i == 3 {
					break
				}
				title := stringValue(career["title"])
				if title == "" {
					title = "Career"
				}
				matches = append(matches, fmt.Sprintf("%s (%.0f%% match)", title, floatValue(career["match_percentage"])))
			}
			parts = append(parts, fmt.Sprintf("- Career Matches: %s", strings.Join(matches, ", ")))
		}

		if len(userCtx.SkillsToDevelop) > 0 {
			skills := []string{}
			for i, s := range userCtx.SkillsToDevelop {
				if i == 5 {
					break
				}
				name := stringValue(s["skill"])
				if name == "" {
					name = "Skill"
				}
				skills = append(skills, name)
			}
			parts = append(parts, fmt.Sprintf("- Skills to Develop: %s", strings.Join(skills, ", ")))
		}

		if len(userCtx.SelectedCareers) > 0 {
			parts = append(parts, fmt.Sprintf("- Selected Career Interests: %s", strings.Join(userCtx.SelectedCareers, ", ")))
		}
	}

	if len(history) > 0 {
		parts = append(parts, "\nRECENT CONVERSATION HISTORY:")
		start := len(history) - 3
		if start < 0 {
			start = 0
		}
		for i, msg := range history[start:] {
			parts = append(parts,
				fmt.Sprintf("\nPrevious exchange %d:", i+1),
				fmt.Sprintf("User: %s", msg.Message),
				fmt.Sprintf("Your response: %s...", trunc(msg.Response, 200)))
		}
	}

	return strings.Join(parts, "\n")
}

func stringList(v any, max int) []string {
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	out := []string{}
	for _, item := range arr {
		if len(out) == max {
			break
		}
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func floatValue(v any) float64 {
	f, _ := v.(float64)
	return f
}
