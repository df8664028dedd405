package userstore

import (
	"testing"
	"time"
)

func TestChronological(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	newestFirst := []ChatMessage{
		{Message: "third", Timestamp: base.Add(2 * time.Minute)},
		{Message: "second", Timestamp: base.Add(time.Minute)},
		{Message: "first", Timestamp: base},
	}

	got := Chronological(newestFirst)
	if len(got) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(got))
	}
	want := []string{"first", "second", "third"}
	for i, msg := range got {
		if msg.Message != want[i] {
			t.Fatalf("position %d: got %q, want %q", i, msg.Message, want[i])
		}
	}

	// Input must not be reordered in place.
	if newestFirst[0].Message != "third" {
		t.Fatalf("input slice mutated")
	}
}

func TestChronologicalEmpty(t *testing.T) {
	got := Chronological(nil)
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", got)
	}
}
