package entry

import "github.com/xolan/acme/internal/csvtext"

// LogEntry is one log line split into its duration field and description
type LogEntry struct {
	RawDuration string
	RawDesc     string
}

// Row is a parsed log line ready for a report
type Row struct {
	Date        string // MM/DD/YYYY
	Duration    string // compact human duration, e.g. "1h 30m"
	Description string // normalized, unescaped
	Hours       string // sum of all duration tokens in decimal hours
	Splits      string // per-token hours, empty when the field held a single token
}

// Cells returns the row as report cells. Description and splits are quoted for CSV output.
func (r Row) Cells() []string {
	splits := r.Splits
	if splits != "" {
		splits = csvtext.Escape(splits)
	}
	return []string{r.Date, r.Duration, csvtext.Escape(r.Description), r.Hours, splits}
}

// ParseWarning describes a log line that looked like an entry but could not be parsed
type ParseWarning struct {
	LineNumber int    // 1-indexed
	Content    string // raw line
	Error      string
}
