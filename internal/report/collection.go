package report

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/xolan/acme/internal/entry"
	"github.com/xolan/acme/internal/storage"
)

// FileWarning is a problem found in one daily log of a collection
type FileWarning struct {
	Path string
	entry.ParseWarning
}

// Collection holds the combined rows of every daily log found for a period
type Collection struct {
	Rows     []entry.Row
	Files    []string // log files read, in day order
	Warnings []FileWarning
}

// Found returns the number of daily log files that were read
func (c Collection) Found() int {
	return len(c.Files)
}

// DayKey names one daily log by its zero-padded components
type DayKey struct {
	Y, M, D string
}

// Dash returns the key as YYYY-MM-DD
func (k DayKey) Dash() string {
	return k.Y + "-" + k.M + "-" + k.D
}

// KeyOf returns the DayKey of t
func KeyOf(t time.Time) DayKey {
	return DayKey{Y: t.Format("2006"), M: t.Format("01"), D: t.Format("02")}
}

// MonthDays returns the keys of days 01 through 31 of a month. Days that do not
// exist in the month are included so that misnamed files are still noticed.
func MonthDays(y, m string) []DayKey {
	keys := make([]DayKey, 0, 31)
	for d := 1; d <= 31; d++ {
		keys = append(keys, DayKey{Y: y, M: m, D: fmt.Sprintf("%02d", d)})
	}
	return keys
}

// YearDays returns MonthDays for months 01 through 12
func YearDays(y string) []DayKey {
	keys := make([]DayKey, 0, 12*31)
	for m := 1; m <= 12; m++ {
		keys = append(keys, MonthDays(y, fmt.Sprintf("%02d", m))...)
	}
	return keys
}

// DaysOf returns the keys of the given calendar days
func DaysOf(days []time.Time) []DayKey {
	keys := make([]DayKey, len(days))
	for i, d := range days {
		keys[i] = KeyOf(d)
	}
	return keys
}

// Collector reads and parses daily logs from a metrics directory
type Collector struct {
	layout storage.Layout
	parser *entry.Parser
	logger *slog.Logger
}

// NewCollector creates a Collector reading from layout with parser
func NewCollector(layout storage.Layout, parser *entry.Parser) *Collector {
	return &Collector{layout: layout, parser: parser, logger: slog.Default()}
}

// WithLogger returns a copy of the collector that logs to l
func (c *Collector) WithLogger(l *slog.Logger) *Collector {
	cp := *c
	cp.logger = l
	return &cp
}

// Day parses the conventional log file of one day.
// Returns storage.ErrLogNotFound if it doesn't exist.
func (c *Collector) Day(key DayKey) (Collection, error) {
	path := c.layout.DayPath(key.Y, key.M, key.D)
	if !storage.Exists(path) {
		return Collection{Rows: []entry.Row{}}, fmt.Errorf("%w: %s", storage.ErrLogNotFound, path)
	}
	return c.Collect([]DayKey{key})
}

// Collect parses the log of every key that has one, in key order, and combines
// their rows. Missing days are skipped silently. A file whose name is not a
// calendar date (e.g. 2024/02/30.txt) is skipped with a warning.
func (c *Collector) Collect(keys []DayKey) (Collection, error) {
	col := Collection{Rows: []entry.Row{}}

	for _, key := range keys {
		path := c.layout.DayPath(key.Y, key.M, key.D)
		contents, err := storage.ReadLog(path)
		if err != nil {
			if errors.Is(err, storage.ErrLogNotFound) {
				continue
			}
			return col, err
		}

		result, err := c.parser.Parse(contents, key.Dash())
		if err != nil {
			c.logger.Warn("skipping log file", "path", path, "error", err)
			col.Warnings = append(col.Warnings, FileWarning{
				Path:         path,
				ParseWarning: entry.ParseWarning{Error: err.Error()},
			})
			continue
		}

		c.logger.Debug("collected log file", "path", path, "rows", len(result.Rows), "warnings", len(result.Warnings))
		col.Files = append(col.Files, path)
		col.Rows = append(col.Rows, result.Rows...)
		for _, w := range result.Warnings {
			col.Warnings = append(col.Warnings, FileWarning{Path: path, ParseWarning: w})
		}
	}

	return col, nil
}
