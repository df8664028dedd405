package userstore

import (
	"testing"
	"time"
)

func TestCareerProgressIsolation(t *testing.T) {
	profile := &Profile{
		UserID: "user-1",
		RoadmapProgress: map[string]map[string]map[string]StepProgress{
			"data-scientist": {
				"Foundation": {
					"s1": {Completed: true, StepTitle: "Math & Code", UpdatedAt: time.Now()},
				},
			},
		},
	}

	got := CareerProgress(profile, "data-scientist")
	step, ok := got["Foundation"]["s1"]
	if !ok || !step.Completed {
		t.Fatalf("expected completed step for data-scientist, got %v", got)
	}

	// A write under one career must never be visible under another.
	other := CareerProgress(profile, "software-engineer")
	if len(other) != 0 {
		t.Fatalf("expected empty progress for untouched career, got %v", other)
	}
	if other == nil {
		t.Fatalf("untouched career should yield empty map, not nil")
	}
}

func TestCareerProgressEmptyProfile(t *testing.T) {
	if got := CareerProgress(nil, "data-scientist"); got == nil || len(got) != 0 {
		t.Fatalf("nil profile should yield empty map, got %v", got)
	}
	if got := CareerProgress(&Profile{UserID: "user-1"}, "data-scientist"); got == nil || len(got) != 0 {
		t.Fatalf("profile without progress should yield empty map, got %v", got)
	}
}
