package catalog

import "testing"

func sampleEntries() []Summary {
	return []Summary{
		{Slug: "software-engineer", Title: "Software Engineer"},
		{Slug: "data-scientist", Title: "Data Scientist"},
		{Slug: "doctor", Title: "Doctor (MBBS)"},
	}
}

func TestMatchTitleSubstring(t *testing.T) {
	got := Match("swe-2024", "Software Engineering", sampleEntries())
	if got == nil || got.Slug != "software-engineer" {
		t.Fatalf("expected software-engineer, got %v", got)
	}
}

func TestMatchEntryTitleInsideCandidate(t *testing.T) {
	got := Match("senior-data-scientist", "Senior Data Scientist (ML)", sampleEntries())
	if got == nil || got.Slug != "data-scientist" {
		t.Fatalf("expected data-scientist, got %v", got)
	}
}

func TestMatchHyphenatedForm(t *testing.T) {
	got := Match("x", "software engineer", sampleEntries())
	if got == nil || got.Slug != "software-engineer" {
		t.Fatalf("expected software-engineer, got %v", got)
	}
}

func TestMatchSlugSubstring(t *testing.T) {
	got := Match("doctor", "Physician", sampleEntries())
	if got == nil || got.Slug != "doctor" {
		t.Fatalf("expected doctor via slug clause, got %v", got)
	}
}

func TestMatchCaseAndWhitespace(t *testing.T) {
	got := Match("zzz", "  DATA scientist  ", sampleEntries())
	if got == nil || got.Slug != "data-scientist" {
		t.Fatalf("expected data-scientist, got %v", got)
	}
}

func TestMatchFirstEntryWins(t *testing.T) {
	entries := []Summary{
		{Slug: "engineer", Title: "Engineer"},
		{Slug: "software-engineer", Title: "Software Engineer"},
	}
	got := Match("zzz", "Software Engineer", entries)
	if got == nil || got.Slug != "engineer" {
		t.Fatalf("expected first matching entry, got %v", got)
	}
}

func TestMatchNotFound(t *testing.T) {
	got := Match("quantum-blockchain-architect", "Quantum Blockchain Architect", sampleEntries())
	if got != nil {
		t.Fatalf("expected nil for unknown career, got %v", got)
	}
}
