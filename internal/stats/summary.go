package stats

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/xolan/acme/internal/entry"
)

const (
	noCategory = "(no category)"
	noHashtags = "(no hashtags)"
)

// Statistics contains aggregated hours for a set of report rows
type Statistics struct {
	TotalHours         decimal.Decimal
	EntryCount         int
	DaysWithEntries    int
	AverageHoursPerDay decimal.Decimal // over days with entries, rounded to 2 places
}

// Breakdown contains the hours logged under one category or hashtag
type Breakdown struct {
	Label      string
	Hours      decimal.Decimal
	EntryCount int
}

// rowHours reads the Hours cell, treating non-numeric values as zero
func rowHours(r entry.Row) decimal.Decimal {
	h, err := decimal.NewFromString(r.Hours)
	if err != nil {
		return decimal.Zero
	}
	return h
}

// CalculateStatistics sums the hours of rows and counts the distinct days they span
func CalculateStatistics(rows []entry.Row) Statistics {
	s := Statistics{TotalHours: decimal.Zero, AverageHoursPerDay: decimal.Zero}
	if len(rows) == 0 {
		return s
	}

	days := make(map[string]bool)
	for _, r := range rows {
		s.TotalHours = s.TotalHours.Add(rowHours(r))
		s.EntryCount++
		days[r.Date] = true
	}

	s.DaysWithEntries = len(days)
	s.AverageHoursPerDay = s.TotalHours.Div(decimal.NewFromInt(int64(len(days)))).RoundBank(2)
	return s
}

// CalculateCategoryBreakdown groups rows by the categories in their trailing
// category block, sorted by hours descending. Rows with several categories count
// toward each of them; rows without any are grouped under "(no category)".
func CalculateCategoryBreakdown(rows []entry.Row) []Breakdown {
	return breakdown(rows, noCategory, func(r entry.Row) []string {
		categories, _ := entry.Labels(r.Description)
		return categories
	})
}

// CalculateHashtagBreakdown groups rows by #hashtag, sorted by hours descending.
// Rows without hashtags are grouped under "(no hashtags)".
func CalculateHashtagBreakdown(rows []entry.Row) []Breakdown {
	return breakdown(rows, noHashtags, func(r entry.Row) []string {
		_, hashtags := entry.Labels(r.Description)
		return hashtags
	})
}

func breakdown(rows []entry.Row, empty string, labels func(entry.Row) []string) []Breakdown {
	if len(rows) == 0 {
		return []Breakdown{}
	}

	byLabel := make(map[string]*Breakdown)
	for _, r := range rows {
		ls := labels(r)
		if len(ls) == 0 {
			ls = []string{empty}
		}
		for _, l := range ls {
			if _, exists := byLabel[l]; !exists {
				byLabel[l] = &Breakdown{Label: l, Hours: decimal.Zero}
			}
			byLabel[l].Hours = byLabel[l].Hours.Add(rowHours(r))
			byLabel[l].EntryCount++
		}
	}

	breakdowns := make([]Breakdown, 0, len(byLabel))
	for _, b := range byLabel {
		breakdowns = append(breakdowns, *b)
	}

	// Sort by hours descending, then label for a stable order
	sort.Slice(breakdowns, func(i, j int) bool {
		if c := breakdowns[i].Hours.Cmp(breakdowns[j].Hours); c != 0 {
			return c > 0
		}
		return breakdowns[i].Label < breakdowns[j].Label
	})

	return breakdowns
}
