// Package service provides the business logic layer for the acme application.
// It wraps the parsing, report, storage, config and stats packages,
// providing a clean API for both CLI and TUI frontends.
package service

import (
	"errors"

	"github.com/xolan/acme/internal/entry"
	"github.com/xolan/acme/internal/report"
	"github.com/xolan/acme/internal/stats"
	"github.com/xolan/acme/internal/timeutil"
)

// ErrInvalidDateInput is returned when a date argument matches no known date shape
var ErrInvalidDateInput = errors.New("invalid date input")

// ReportKind is the period a report covers
type ReportKind int

const (
	KindDay ReportKind = iota
	KindMonth
	KindYear
	KindInterval
)

// String returns the kind as used in user-facing messages
func (k ReportKind) String() string {
	switch k {
	case KindDay:
		return "day"
	case KindMonth:
		return "month"
	case KindYear:
		return "year"
	case KindInterval:
		return "interval"
	default:
		return "unknown"
	}
}

// ReportResult contains one assembled report
type ReportResult struct {
	Kind     ReportKind
	Spec     timeutil.DateSpec     // set for day, month and year reports
	Interval timeutil.IntervalSpec // set for interval reports
	Period   string                // slash date, or "from to to" for intervals

	Collection report.Collection // daily logs read and their warnings
	Rows       []entry.Row       // rows that made it into the table, after filtering
	Table      [][]string
	CSV        string
	Path       string // where Generate writes the CSV
}

// SummaryResult contains statistics for a set of rows
type SummaryResult struct {
	Statistics stats.Statistics
	Categories []stats.Breakdown
	Hashtags   []stats.Breakdown
}

// LookupFile is one log file found for a looked up date
type LookupFile struct {
	Path     string
	Rows     []entry.Row
	Total    string // total hours of Rows, "0" when empty
	Warnings []entry.ParseWarning
}

// LookupResult contains the log files found for a date input
type LookupResult struct {
	Spec     timeutil.DateSpec
	Patterns []string // file patterns searched, relative to the logs directory
	Files    []LookupFile
	Rows     []entry.Row // rows of every file, after filtering
	Summary  SummaryResult
}
