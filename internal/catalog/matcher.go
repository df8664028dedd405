package catalog

import "strings"

// Match resolves a user-supplied (slug, title) pair against the catalog
// listing when the exact slug lookup already missed. The candidate title is
// normalized (lowercase, trim) and the catalog is scanned in catalog order;
// the first entry satisfying any clause wins:
//
//   - normalized title is a substring of the entry title (lowercased),
//   - the entry title is a substring of the normalized title,
//   - the hyphenated normalized title is a substring of the hyphenated
//     entry title,
//   - the candidate slug is a substring of the entry slug.
//
// There is no ranking; this is first-match over a small reference catalog
// and must not be pointed at a large one without an index. A miss returns
// nil, which callers surface as a recoverable not-found outcome rather
// than an error.
func Match(candSlug, candTitle string, entries []Summary) *Summary {
	normTitle := strings.ToLower(strings.TrimSpace(candTitle))
	for i := range entries {
		entryTitle := strings.ToLower(entries[i].Title)
		if strings.Contains(entryTitle, normTitle) ||
			strings.Contains(normTitle, entryTitle) ||
			strings.Contains(strings.ReplaceAll(entryTitle, " ", "-"), strings.ReplaceAll(normTitle, " ", "-")) ||
			strings.Contains(entries[i].Slug, candSlug) {
			return &entries[i]
		}
	}
	return nil
}
