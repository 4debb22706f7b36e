package service

import (
	"fmt"

	"github.com/xolan/acme/internal/entry"
	"github.com/xolan/acme/internal/stats"
)

// StatsService provides logs directory analysis and hour summaries
type StatsService struct {
	env *env
}

// Analyze classifies every file in the logs directory
func (s *StatsService) Analyze() (stats.Analysis, error) {
	a, err := stats.Analyze(s.env.layout.Logs)
	if err != nil {
		return stats.Analysis{}, fmt.Errorf("failed to analyze %s: %w", s.env.layout.Logs, err)
	}
	return a, nil
}

// LogsDir returns the directory Analyze reads
func (s *StatsService) LogsDir() string {
	return s.env.layout.Logs
}

// Summarize calculates statistics and category/hashtag breakdowns for rows
func (s *StatsService) Summarize(rows []entry.Row) SummaryResult {
	return summarize(rows)
}

func summarize(rows []entry.Row) SummaryResult {
	return SummaryResult{
		Statistics: stats.CalculateStatistics(rows),
		Categories: stats.CalculateCategoryBreakdown(rows),
		Hashtags:   stats.CalculateHashtagBreakdown(rows),
	}
}
