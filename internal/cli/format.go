// Package cli provides the CLI presentation layer for the acme application.
// It handles command-line output formatting and user interaction.
package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xolan/acme/internal/entry"
	"github.com/xolan/acme/internal/filter"
)

// Rule separates the sections of command output
const Rule = "----"

// FormatHours formats decimal hours as a human-readable string
// Examples: "30m", "2h", "1h 30m", "0m"
func FormatHours(h decimal.Decimal) string {
	if s := entry.HumanHours(h, true); s != "" {
		return s
	}
	return "0m"
}

// FormatRow formats a parsed log row for display
func FormatRow(r entry.Row) string {
	duration := r.Duration
	if duration == "" {
		duration = "0m"
	}
	line := fmt.Sprintf("  %s  %8s  %s", r.Date, duration, r.Description)
	if r.Splits != "" {
		line += fmt.Sprintf(" [%s]", r.Splits)
	}
	return line
}

// FormatParseWarning formats a ParseWarning into a human-readable string
func FormatParseWarning(warning entry.ParseWarning) string {
	content := warning.Content
	if len(content) > 50 {
		content = content[:47] + "..."
	}
	if warning.LineNumber == 0 {
		return fmt.Sprintf("  %s", warning.Error)
	}
	return fmt.Sprintf("  Line %d: %s (error: %s)", warning.LineNumber, content, warning.Error)
}

// BuildPeriodWithFilters appends filter information to the period description.
// Example: "2024-01-15" -> "2024-01-15 ("sync" work #urgent)"
func BuildPeriodWithFilters(period string, f *filter.Filter) string {
	if f.IsEmpty() {
		return period
	}

	var filters []string
	if f.Keyword != "" {
		filters = append(filters, fmt.Sprintf("%q", f.Keyword))
	}
	if f.Category != "" {
		filters = append(filters, f.Category)
	}
	filters = append(filters, f.Hashtags...)

	return fmt.Sprintf("%s (%s)", period, strings.Join(filters, " "))
}

// RelPath returns path relative to base, or path unchanged if it is not inside base
func RelPath(base, path string) string {
	rel, err := filepath.Rel(base, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return filepath.ToSlash(rel)
}

// Pluralize returns the singular or plural form of a word based on count
func Pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	if n := len(word); n > 1 && word[n-1] == 'y' && !strings.ContainsRune("aeiou", rune(word[n-2])) {
		return word[:n-1] + "ies"
	}
	return word + "s"
}

// PrintError writes an Error/Details/Hint block to w. Empty details or hint are omitted.
func PrintError(w io.Writer, msg string, details error, hint string) {
	_, _ = fmt.Fprintf(w, "Error: %s\n", msg)
	if details != nil {
		_, _ = fmt.Fprintf(w, "Details: %v\n", details)
	}
	if hint != "" {
		_, _ = fmt.Fprintf(w, "Hint: %s\n", hint)
	}
}
