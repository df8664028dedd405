package api

import (
	"strings"
	"testing"

	"prism-careers/internal/userstore"
)

func TestAssessmentQuestionsShape(t *testing.T) {
	if len(AssessmentQuestions) != 10 {
		t.Fatalf("expected 10 questions, got %d", len(AssessmentQuestions))
	}
	seen := map[string]bool{}
	for _, q := range AssessmentQuestions {
		if q.ID == "" || q.Question == "" || q.Type == "" || q.Category == "" {
			t.Fatalf("question %+v missing required fields", q)
		}
		if seen[q.ID] {
			t.Fatalf("duplicate question id %s", q.ID)
		}
		seen[q.ID] = true
		if q.Type == "multiple_choice" && len(q.Options) == 0 {
			t.Fatalf("choice question %s has no options", q.ID)
		}
		if q.Type == "text" && len(q.Options) != 0 {
			t.Fatalf("text question %s carries options", q.ID)
		}
	}
}

func TestMapSlice(t *testing.T) {
	in := []any{
		map[string]any{"title": "Software Engineer"},
		"not an object",
		map[string]any{"title": "Data Scientist"},
	}
	out := mapSlice(in)
	if len(out) != 2 {
		t.Fatalf("expected 2 objects, got %d", len(out))
	}
	if out := mapSlice("scalar"); len(out) != 0 {
		t.Fatalf("non-array input should yield empty slice, got %v", out)
	}
	if out := mapSlice(nil); out == nil {
		t.Fatalf("nil input should yield empty non-nil slice")
	}
}

func TestDecodeRecommendations(t *testing.T) {
	paths := []map[string]any{
		{
			"title":              "Software Engineer",
			"description":        "Builds software.",
			"match_percentage":   92.0,
			"required_education": "B.Tech",
			"salary_range":       "₹5-25 LPA",
			"growth_prospects":   "Excellent",
		},
		{"title": "Data Scientist"},
	}
	recs := decodeRecommendations(paths)
	if len(recs) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(recs))
	}
	if recs[0].MatchPercentage != 92.0 || recs[0].SalaryRange != "₹5-25 LPA" {
		t.Fatalf("first recommendation mis-decoded: %+v", recs[0])
	}
	if recs[1].Title != "Data Scientist" || recs[1].MatchPercentage != 0 {
		t.Fatalf("partial recommendation mis-decoded: %+v", recs[1])
	}
}

func TestCapCareers(t *testing.T) {
	in := []string{"a", "b", "c", "d", "e"}
	got := capCareers(in, 3)
	if len(got) != 3 || got[0] != "a" || got[2] != "c" {
		t.Fatalf("expected first 3 in order, got %v", got)
	}
	if got := capCareers([]string{"a"}, 3); len(got) != 1 {
		t.Fatalf("short input should pass through, got %v", got)
	}
}

func TestTrunc(t *testing.T) {
	if got := trunc("₹₹₹₹₹", 3); got != "₹₹₹" {
		t.Fatalf("rune truncation failed: %q", got)
	}
	if got := trunc("short", 10); got != "short" {
		t.Fatalf("short string changed: %q", got)
	}
}

func TestMentorContextInfoCareerPage(t *testing.T) {
	pageCtx := map[string]any{
		"career_title":       "Software Engineer",
		"career_description": "Design, develop, and maintain software.",
		"avg_salary":         "₹5-25 LPA",
		"popular_exams":      []any{"JEE Main", "GATE"},
		"skills_required":    []any{"Python", "DSA", "System Design"},
		"job_roles":          []any{"Junior Software Engineer"},
	}
	info := mentorContextInfo(pageCtx, userstore.MentorContext{}, nil)

	for _, want := range []string{
		"CURRENT CAREER OF INTEREST",
		"Career: Software Engineer",
		"Average Salary: ₹5-25 LPA",
		"JEE Main, GATE",
		"Python, DSA, System Design",
		"asking about THIS career",
	} {
		if !strings.Contains(info, want) {
			t.Fatalf("context missing %q:\n%s", want, info)
		}
	}
}

func TestMentorContextInfoAssessment(t *testing.T) {
	userCtx := userstore.MentorContext{
		AssessmentCompleted: true,
		CareerMatches: []map[string]any{
			{"title": "Software Engineer", "match_percentage": 92.0},
			{"title": "Data Scientist", "match_percentage": 85.0},
			{"title": "Product Manager", "match_percentage": 71.0},
			{"title": "UX Designer", "match_percentage": 60.0},
		},
		SkillsToDevelop: []map[string]any{{"skill": "System Design"}},
		SelectedCareers: []string{"Software Engineer"},
	}
	info := mentorContextInfo(nil, userCtx, nil)

	if !strings.Contains(info, "Software Engineer (92% match)") {
		t.Fatalf("match formatting wrong:\n%s", info)
	}
	if strings.Contains(info, "UX Designer") {
		t.Fatalf("matches should be capped at 3:\n%s", info)
	}
	if !strings.Contains(info, "Skills to Develop: System Design") {
		t.Fatalf("skills missing:\n%s", info)
	}
	if !strings.Contains(info, "Selected Career Interests: Software Engineer") {
		t.Fatalf("selected careers missing:\n%s", info)
	}
}

func TestMentorContextInfoHistoryWindow(t *testing.T) {
	history := []userstore.ChatMessage{
		{Message: "m1", Response: "r1"},
		{Message: "m2", Response: "r2"},
		{Message: "m3", Response: "r3"},
		{Message: "m4", Response: "r4"},
	}
	info := mentorContextInfo(nil, userstore.MentorContext{}, history)

	if strings.Contains(info, "User: m1") {
		t.Fatalf("history should keep only the last 3 exchanges:\n%s", info)
	}
	for _, want := range []string{"User: m2", "User: m3", "User: m4"} {
		if !strings.Contains(info, want) {
			t.Fatalf("history missing %q:\n%s", want, info)
		}
	}
}

func TestMentorContextInfoEmpty(t *testing.T) {
	if info := mentorContextInfo(nil, userstore.MentorContext{}, nil); info != "" {
		t.Fatalf("empty inputs should produce empty context, got %q", info)
	}
}
