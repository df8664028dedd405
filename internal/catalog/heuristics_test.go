package catalog

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Software Engineer", "software-engineer"},
		{"  UX/UI Designer!  ", "ux-ui-designer"},
		{"Doctor (MBBS)", "doctor-mbbs"},
		{"AI & ML Engineer", "ai-ml-engineer"},
		{"data-scientist", "data-scientist"},
	}
	for _, c := range cases {
		if got := Slugify(c.in); got != c.want {
			t.Fatalf("Slugify(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestInferCategory(t *testing.T) {
	cases := []struct {
		title, desc, want string
	}{
		{"Business Analyst", "", "Business"},
		{"Nurse", "healthcare professional", "Healthcare"},
		{"Civil Engineer", "", "Engineering"},
		{"Teacher", "education for children", "Education"},
		{"Graphic Designer", "arts and design work", "Arts"},
		{"Software Developer", "writes code", "Technology"},
	}
	for _, c := range cases {
		if got := InferCategory(c.title, c.desc); got != c.want {
			t.Fatalf("InferCategory(%q, %q) = %q, want %q", c.title, c.desc, got, c.want)
		}
	}
}

func TestInferCategoryFirstBucketWins(t *testing.T) {
	// Mentions both business and engineering; the earlier bucket applies.
	got := InferCategory("Business Engineer", "engineering for business teams")
	if got != "Business" {
		t.Fatalf("expected Business, got %q", got)
	}
}

func TestFormatSalary(t *testing.T) {
	min, max := 500000, 2500000
	if got := FormatSalary(&min, &max); got != "₹5-25 LPA" {
		t.Fatalf("got %q", got)
	}
	if got := FormatSalary(nil, &max); got != "Varies" {
		t.Fatalf("missing min should vary, got %q", got)
	}
	if got := FormatSalary(&min, nil); got != "Varies" {
		t.Fatalf("missing max should vary, got %q", got)
	}
	if got := FormatSalary(nil, nil); got != "Varies" {
		t.Fatalf("missing both should vary, got %q", got)
	}
}

func TestParseSalaryText(t *testing.T) {
	min, max := ParseSalaryText("₹5-25 LPA")
	if min == nil || max == nil || *min != 500000 || *max != 2500000 {
		t.Fatalf("range parse failed: %v %v", min, max)
	}

	min, max = ParseSalaryText("around 10 LPA")
	if min == nil || max == nil || *min != 1000000 || *max != 1500000 {
		t.Fatalf("single-number parse failed: %v %v", min, max)
	}

	min, max = ParseSalaryText("competitive salary")
	if min != nil || max != nil {
		t.Fatalf("no-number text should yield nil bounds: %v %v", min, max)
	}
}
