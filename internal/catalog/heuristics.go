package catalog

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	nonAlnumRE = regexp.MustCompile(`[^a-z0-9]+`)
	digitsRE   = regexp.MustCompile(`\d+`)
)

// Slugify derives the canonical catalog identifier from a title:
// lowercase, non-alphanumeric runs collapsed to a single hyphen,
// leading/trailing hyphens trimmed.
func Slugify(title string) string {
	slug := strings.ToLower(title)
	slug = nonAlnumRE.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// categoryBuckets are checked in order; the first bucket with any keyword
// hit wins. The ordering is load-bearing ("engineer" never reaches the
// Engineering bucket when a Business keyword also matches).
var categoryBuckets = []struct {
	name     string
	keywords []string
}{
	{"Business", []string{"business", "manager", "analyst", "consultant", "marketing", "sales", "finance", "accounting"}},
	{"Healthcare", []string{"doctor", "medical", "health", "nurse", "pharmacy"}},
	{"Engineering", []string{"engineer", "mechanical", "civil", "electrical"}},
	{"Education", []string{"teacher", "professor", "education", "academic"}},
	{"Arts", []string{"art", "design", "creative", "writer"}},
}

// InferCategory buckets a career by keyword substrings over its title and
// description. Unmatched titles default to Technology.
func InferCategory(title, description string) string {
	titleLower := strings.ToLower(title)
	descLower := strings.ToLower(description)
	for _, bucket := range categoryBuckets {
		for _, word := range bucket.keywords {
			if strings.Contains(titleLower, word) || strings.Contains(descLower, word) {
				return bucket.name
			}
		}
	}
	return "Technology"
}

// FormatSalary renders the rupee bounds as a lakhs-per-annum range.
// Either bound missing yields the "Varies" sentinel, never an empty string.
func FormatSalary(min, max *int) string {
	if min == nil || max == nil {
		return "Varies"
	}
	return fmt.Sprintf("₹%d-%d LPA", *min/100000, *max/100000)
}

// ParseSalaryText pulls rupee bounds out of AI-produced salary prose
// ("5-25 LPA", "₹8,00,000 to ₹12,00,000" and the like). Two numbers become
// min/max in lakhs; a single number becomes min with max at 1.5x.
func ParseSalaryText(text string) (min, max *int) {
	if text == "" {
		return nil, nil
	}
	numbers := digitsRE.FindAllString(strings.ReplaceAll(text, ",", ""), -1)
	if len(numbers) >= 2 {
		lo, err1 := strconv.Atoi(numbers[0])
		hi, err2 := strconv.Atoi(numbers[1])
		if err1 == nil && err2 == nil {
			lo *= 100000
			hi *= 100000
			return &lo, &hi
		}
	} else if len(numbers) == 1 {
		n, err := strconv.Atoi(numbers[0])
		if err == nil {
			lo := n * 100000
			hi := n * 150000
			return &lo, &hi
		}
	}
	return nil, nil
}

// truncate shortens a description for the summary form without splitting runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
