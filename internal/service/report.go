package service

import (
	"fmt"

	"github.com/xolan/acme/internal/csvtext"
	"github.com/xolan/acme/internal/filter"
	"github.com/xolan/acme/internal/report"
	"github.com/xolan/acme/internal/storage"
	"github.com/xolan/acme/internal/timeutil"
)

// ReportRequest selects the logs of a report and how they are assembled
type ReportRequest struct {
	Input   string // date input or from,to[,separator] interval
	Options report.Options
	Filter  *filter.Filter
}

// ReportService provides operations for generating CSV reports
type ReportService struct {
	env *env
}

// Build reads and assembles the report for req without writing it.
//
// A day reads logs/YYYY/MM/DD.txt and returns storage.ErrLogNotFound when it is
// missing. A month or year combines every day log it contains. An interval
// combines every day from the start of its from date to the end of its to date
// and returns timeutil.ErrInvalidInterval when malformed.
func (s *ReportService) Build(req ReportRequest) (*ReportResult, error) {
	var (
		res  *ReportResult
		keys []report.DayKey
	)

	if timeutil.IsInterval(req.Input) {
		iv, err := timeutil.ParseIntervalAt(req.Input, s.env.today())
		if err != nil {
			return nil, err
		}
		days, err := iv.Days(s.env.loc)
		if err != nil {
			return nil, err
		}
		keys = report.DaysOf(days)
		res = &ReportResult{
			Kind:     KindInterval,
			Interval: iv,
			Period:   iv.From.Dash + " to " + iv.To.Dash,
			Path:     s.env.layout.GenPath(iv.FileStem()),
		}
	} else {
		spec := timeutil.ParseDateInputAt(req.Input, s.env.today())
		if !spec.IsValid() {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDateInput, req.Input)
		}
		res = &ReportResult{
			Spec:   spec,
			Period: spec.Slash,
			Path:   s.env.layout.GenPath(spec.Dash),
		}
		switch spec.Granularity() {
		case timeutil.GranularityDay:
			res.Kind = KindDay
		case timeutil.GranularityMonth:
			res.Kind = KindMonth
			keys = report.MonthDays(spec.Each.Y, spec.Each.M)
		default:
			res.Kind = KindYear
			keys = report.YearDays(spec.Each.Y)
		}
	}

	collector := s.env.collector()
	var err error
	if res.Kind == KindDay {
		res.Collection, err = collector.Day(report.DayKey{Y: res.Spec.Each.Y, M: res.Spec.Each.M, D: res.Spec.Each.D})
	} else {
		res.Collection, err = collector.Collect(keys)
	}
	if err != nil {
		return nil, err
	}

	s.env.logger.Debug("report collected",
		"kind", res.Kind.String(), "period", res.Period, "files", res.Collection.Found(), "rows", len(res.Collection.Rows))

	res.Rows = filter.FilterRows(res.Collection.Rows, req.Filter)
	res.Table = s.env.assembler().Assemble(res.Rows, req.Options)
	res.CSV = csvtext.Text(res.Table)
	return res, nil
}

// Generate builds the report for req and writes it to the generated reports directory
func (s *ReportService) Generate(req ReportRequest) (*ReportResult, error) {
	res, err := s.Build(req)
	if err != nil {
		return nil, err
	}
	if err := storage.WriteReport(res.Path, res.CSV); err != nil {
		return nil, fmt.Errorf("failed to write report: %w", err)
	}
	s.env.logger.Debug("report written", "path", res.Path, "bytes", len(res.CSV))
	return res, nil
}

// DayLogPath returns the daily log a day input reads, or "" when input is not a day
func (s *ReportService) DayLogPath(input string) string {
	spec := timeutil.ParseDateInputAt(input, s.env.today())
	if spec.Granularity() != timeutil.GranularityDay {
		return ""
	}
	return s.env.layout.LogPath(spec.Slash)
}
