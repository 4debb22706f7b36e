package filter

import (
	"strings"

	"github.com/xolan/acme/internal/entry"
)

// Filter represents search criteria for report rows.
// All filter fields are optional - empty values match all rows.
type Filter struct {
	Keyword  string   // Case-insensitive substring search in row descriptions
	Category string   // Exact category match (case-insensitive)
	Hashtags []string // All specified hashtags must be present (AND logic, case-insensitive)
}

// NewFilter creates a new Filter with the given criteria.
// Hashtags may be given with or without their leading '#'.
func NewFilter(keyword, category string, hashtags []string) *Filter {
	normalized := make([]string, 0, len(hashtags))
	for _, h := range hashtags {
		if h = strings.TrimSpace(h); h != "" {
			normalized = append(normalized, "#"+strings.TrimPrefix(h, "#"))
		}
	}
	return &Filter{
		Keyword:  keyword,
		Category: category,
		Hashtags: normalized,
	}
}

// IsEmpty returns true if all filter fields are empty (matches all rows)
func (f *Filter) IsEmpty() bool {
	return f == nil || (f.Keyword == "" && f.Category == "" && len(f.Hashtags) == 0)
}

// FilterRows returns a new slice containing only rows that match the filter criteria.
// If the filter is empty, returns all rows.
func FilterRows(rows []entry.Row, f *Filter) []entry.Row {
	if f.IsEmpty() {
		return rows
	}

	filtered := make([]entry.Row, 0)
	for _, r := range rows {
		if f.Matches(r) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// MatchesKeyword returns true if the keyword is found in the row's description (case-insensitive).
// An empty keyword matches all rows.
func (f *Filter) MatchesKeyword(r entry.Row) bool {
	if f.Keyword == "" {
		return true
	}
	return strings.Contains(strings.ToLower(r.Description), strings.ToLower(f.Keyword))
}

// MatchesCategory returns true if the row's category block lists the filter category (case-insensitive).
// An empty category filter matches all rows.
func (f *Filter) MatchesCategory(r entry.Row) bool {
	if f.Category == "" {
		return true
	}
	categories, _ := entry.Labels(r.Description)
	for _, c := range categories {
		if strings.EqualFold(c, f.Category) {
			return true
		}
	}
	return false
}

// MatchesHashtags returns true if the row has ALL specified hashtags (case-insensitive).
// An empty hashtags filter matches all rows.
func (f *Filter) MatchesHashtags(r entry.Row) bool {
	if len(f.Hashtags) == 0 {
		return true
	}

	_, hashtags := entry.Labels(r.Description)
	for _, want := range f.Hashtags {
		found := false
		for _, h := range hashtags {
			if strings.EqualFold(h, want) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Matches returns true if the row satisfies every criterion
func (f *Filter) Matches(r entry.Row) bool {
	return f.MatchesKeyword(r) && f.MatchesCategory(r) && f.MatchesHashtags(r)
}
