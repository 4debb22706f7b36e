package service

import (
	"fmt"

	"github.com/xolan/acme/internal/storage"
)

// UtilService provides the maintenance utilities for a metrics directory
type UtilService struct {
	env *env
}

// MakeFiles creates the empty day logs 01.txt..31.txt in dir.
// With apply false it only reports what would be created.
func (s *UtilService) MakeFiles(dir string, apply bool) ([]string, error) {
	paths, err := storage.MakeDayFiles(dir, apply)
	if err != nil {
		return paths, fmt.Errorf("failed to create day files: %w", err)
	}
	return paths, nil
}

// MakeDirs creates the month directories 01..12 in dir.
// With apply false it only reports what would be created.
func (s *UtilService) MakeDirs(dir string, apply bool) ([]string, error) {
	paths, err := storage.MakeMonthDirs(dir, apply)
	if err != nil {
		return paths, fmt.Errorf("failed to create month directories: %w", err)
	}
	return paths, nil
}

// CleanGen removes generated day reports older than the configured clean_after_days
func (s *UtilService) CleanGen() ([]string, error) {
	removed, err := storage.CleanGenerated(s.env.layout.Gen, s.env.today(), s.env.cfg.CleanAfterDays)
	if err != nil {
		return removed, fmt.Errorf("failed to clean %s: %w", s.env.layout.Gen, err)
	}
	return removed, nil
}

// CleanAfterDays returns the minimum age of reports removed by CleanGen
func (s *UtilService) CleanAfterDays() int {
	return s.env.cfg.CleanAfterDays
}

// GenDir returns the generated reports directory
func (s *UtilService) GenDir() string {
	return s.env.layout.Gen
}
