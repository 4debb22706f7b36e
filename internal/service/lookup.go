package service

import (
	"fmt"

	"github.com/xolan/acme/internal/entry"
	"github.com/xolan/acme/internal/filter"
	"github.com/xolan/acme/internal/report"
	"github.com/xolan/acme/internal/storage"
	"github.com/xolan/acme/internal/timeutil"
)

// LookupService finds and parses the log files of a single date input
type LookupService struct {
	env *env
}

// Patterns returns the file name patterns searched for spec
func Patterns(spec timeutil.DateSpec) []string {
	return []string{
		spec.Slash + ".txt",
		spec.Slash + "{custom}.txt",
		spec.Dash + ".txt",
		spec.Dash + "{custom}.txt",
	}
}

// Lookup parses every log file of input and summarizes the rows matching f.
//
// A day includes custom-named logs (01-standup.txt, 2024-01-01-trip.txt). A month
// or year includes the conventional day logs it contains. Finding no file is not
// an error; the result has no Files.
func (s *LookupService) Lookup(input string, f *filter.Filter) (*LookupResult, error) {
	spec := timeutil.ParseDateInputAt(input, s.env.today())
	if !spec.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDateInput, input)
	}

	res := &LookupResult{Spec: spec, Patterns: Patterns(spec), Rows: []entry.Row{}}

	var err error
	switch spec.Granularity() {
	case timeutil.GranularityDay:
		res.Files, err = s.dayFiles(spec)
	case timeutil.GranularityMonth:
		res.Files, err = s.collectionFiles(report.MonthDays(spec.Each.Y, spec.Each.M))
	default:
		res.Files, err = s.collectionFiles(report.YearDays(spec.Each.Y))
	}
	if err != nil {
		return nil, err
	}

	for i := range res.Files {
		res.Files[i].Rows = filter.FilterRows(res.Files[i].Rows, f)
		_, res.Files[i].Total = report.Total(res.Files[i].Rows)
		res.Rows = append(res.Rows, res.Files[i].Rows...)
	}
	res.Summary = summarize(res.Rows)
	return res, nil
}

func (s *LookupService) dayFiles(spec timeutil.DateSpec) ([]LookupFile, error) {
	paths, err := s.env.layout.DayCandidates(spec.Each.Y, spec.Each.M, spec.Each.D)
	if err != nil {
		return nil, err
	}

	parser := s.env.parser()
	files := make([]LookupFile, 0, len(paths))
	for _, path := range paths {
		contents, err := storage.ReadLog(path)
		if err != nil {
			return nil, err
		}
		result, err := parser.Parse(contents, spec.Dash)
		if err != nil {
			return nil, err
		}
		files = append(files, LookupFile{Path: path, Rows: result.Rows, Warnings: result.Warnings})
	}
	return files, nil
}

func (s *LookupService) collectionFiles(keys []report.DayKey) ([]LookupFile, error) {
	collector := s.env.collector()
	var files []LookupFile
	for _, key := range keys {
		col, err := collector.Collect([]report.DayKey{key})
		if err != nil {
			return nil, err
		}
		if col.Found() == 0 {
			continue
		}
		file := LookupFile{Path: col.Files[0], Rows: col.Rows}
		for _, w := range col.Warnings {
			file.Warnings = append(file.Warnings, w.ParseWarning)
		}
		files = append(files, file)
	}
	return files, nil
}
