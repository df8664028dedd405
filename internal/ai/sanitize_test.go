package ai

import (
	"errors"
	"testing"
)

func TestSanitizePlainJSON(t *testing.T) {
	result, err := Sanitize(`{"status": "ok", "count": 3}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result["status"] != "ok" {
		t.Fatalf("expected status ok, got %v", result["status"])
	}
}

func TestSanitizeFencedEquivalence(t *testing.T) {
	plain := `{"career_paths": [{"title": "Software Engineer", "match_percentage": 92}]}`
	fenced := "Here are your results:\n```json\n" + plain + "\n```\nGood luck!"
	backtickOnly := "```\n" + plain + "\n```"

	want, err := Sanitize(plain)
	if err != nil {
		t.Fatalf("plain: %v", err)
	}
	for _, raw := range []string{fenced, backtickOnly} {
		got, err := Sanitize(raw)
		if err != nil {
			t.Fatalf("fenced input failed: %v", err)
		}
		paths, ok := got["career_paths"].([]any)
		if !ok || len(paths) != 1 {
			t.Fatalf("expected one career path, got %v", got["career_paths"])
		}
		wantPaths := want["career_paths"].([]any)
		gotTitle := paths[0].(map[string]any)["title"]
		wantTitle := wantPaths[0].(map[string]any)["title"]
		if gotTitle != wantTitle {
			t.Fatalf("fenced result diverged: %v vs %v", gotTitle, wantTitle)
		}
	}
}

func TestSanitizeRawNewlineInString(t *testing.T) {
	// A literal newline inside a JSON string is invalid; the repair pass
	// should escape it and preserve the content.
	raw := "{\"personalized_advice\": \"Focus on fundamentals.\nThen build projects.\"}"
	result, err := Sanitize(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	advice, _ := result["personalized_advice"].(string)
	if advice != "Focus on fundamentals.\nThen build projects." {
		t.Fatalf("newline not preserved, got %q", advice)
	}
}

func TestSanitizeControlCharacters(t *testing.T) {
	raw := "{\"title\": \"Data\x00 Scientist\x1f\"}"
	result, err := Sanitize(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := result["title"]; !ok {
		t.Fatalf("title missing from %v", result)
	}
}

func TestSanitizeTopLevelArray(t *testing.T) {
	_, err := Sanitize(`[1, 2, 3]`)
	var shapeErr *UnexpectedShapeError
	if !errors.As(err, &shapeErr) {
		t.Fatalf("expected UnexpectedShapeError, got %v", err)
	}
}

func TestSanitizeEmptyInput(t *testing.T) {
	for _, raw := range []string{"", "   ", "\n\t"} {
		_, err := Sanitize(raw)
		var malformed *MalformedResponseError
		if !errors.As(err, &malformed) {
			t.Fatalf("expected MalformedResponseError for %q, got %v", raw, err)
		}
	}
}

func TestSanitizeUnrepairable(t *testing.T) {
	_, err := Sanitize("I'm sorry, I can't produce JSON for that.")
	var malformed *MalformedResponseError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedResponseError, got %v", err)
	}
}

func TestExtractFencedNoFence(t *testing.T) {
	if got := extractFenced(`{"a": 1}`); got != `{"a": 1}` {
		t.Fatalf("unfenced input changed: %q", got)
	}
}
