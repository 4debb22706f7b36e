package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xolan/acme/internal/osutil"
	"github.com/xolan/acme/internal/timeutil"
)

// WriteReport writes text to path, creating the parent directory if needed.
// Overwrites the file if it exists.
func WriteReport(path, text string) error {
	if err := osutil.Provider.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}
	return os.WriteFile(path, []byte(text), 0644)
}

// CleanGenerated removes day reports (YYYY-MM-DD.csv) from genDir whose date is
// at least olderThanDays days before now. Month, year and interval reports are kept.
// Returns the removed file names. A missing genDir is not an error.
func CleanGenerated(genDir string, now time.Time, olderThanDays int) ([]string, error) {
	entries, err := os.ReadDir(genDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var removed []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".csv") {
			continue
		}

		date, err := time.ParseInLocation("2006-01-02", strings.TrimSuffix(name, ".csv"), now.Location())
		if err != nil {
			continue
		}
		if timeutil.DaysSince(date, now) < olderThanDays {
			continue
		}

		if err := os.Remove(filepath.Join(genDir, name)); err != nil {
			return removed, err
		}
		removed = append(removed, name)
	}
	return removed, nil
}

// MakeDayFiles creates empty 01.txt through 31.txt in dir, keeping existing files.
// With apply false nothing is touched. Returns the affected paths.
func MakeDayFiles(dir string, apply bool) ([]string, error) {
	var paths []string
	for d := 1; d <= 31; d++ {
		path := filepath.Join(dir, fmt.Sprintf("%02d.txt", d))
		paths = append(paths, path)
		if !apply {
			continue
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return paths, err
		}
		if err := f.Close(); err != nil {
			return paths, err
		}
	}
	return paths, nil
}

// MakeMonthDirs creates 01 through 12 in dir. With apply false nothing is touched.
// Returns the affected paths.
func MakeMonthDirs(dir string, apply bool) ([]string, error) {
	var paths []string
	for m := 1; m <= 12; m++ {
		path := filepath.Join(dir, fmt.Sprintf("%02d", m))
		paths = append(paths, path)
		if !apply {
			continue
		}
		if err := osutil.Provider.MkdirAll(path, 0755); err != nil {
			return paths, err
		}
	}
	return paths, nil
}
