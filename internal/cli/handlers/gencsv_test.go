package handlers

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xolan/acme/internal/report"
	"github.com/xolan/acme/internal/timeutil"
)

func TestGenerateCSV_Day(t *testing.T) {
	deps, stdout, stderr, exitCode := setupTestDepsWithFiles(t, map[string]string{
		"2024/03/15.txt": "- 1h Work\n",
	})

	GenerateCSV(deps, "2024-03-15", GenerateOptions{Report: report.DefaultOptions()})

	if *exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", *exitCode, stderr.String())
	}
	path := filepath.Join(deps.Services.Layout().Gen, "2024-03-15.csv")
	if !strings.Contains(stdout.String(), "Generated CSV file "+path+" successfully.") {
		t.Errorf("expected success message, got %q", stdout.String())
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected report at %s: %v", path, err)
	}
	if strings.Contains(stdout.String(), "collection") {
		t.Errorf("expected no collection message for a day, got %q", stdout.String())
	}
}

func TestGenerateCSV_Month(t *testing.T) {
	deps, stdout, _, _ := setupTestDepsWithFiles(t, map[string]string{
		"2024/03/01.txt": "- 1h First\n",
		"2024/03/02.txt": "- 1h Second\n",
	})

	GenerateCSV(deps, "2024-03", GenerateOptions{Report: report.DefaultOptions()})

	if !strings.Contains(stdout.String(), "Found 2 daily log files for (2024/03) month collection.") {
		t.Errorf("expected collection message, got %q", stdout.String())
	}
}

func TestGenerateCSV_Interval(t *testing.T) {
	deps, stdout, _, exitCode := setupTestDepsWithFiles(t, map[string]string{
		"2024/01/02.txt": "- 1h Work\n",
	})

	GenerateCSV(deps, "2024-01-01,2024-01-07", GenerateOptions{Report: report.DefaultOptions()})

	if *exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d", *exitCode)
	}
	output := stdout.String()
	if !strings.Contains(output, "Creating a collection for intervals from 2024-01-01 to 2024-01-07:") {
		t.Errorf("expected interval message, got %q", output)
	}
	if !strings.Contains(output, "Found 1 daily log file for (2024-01-01 to 2024-01-07) interval collection.") {
		t.Errorf("expected collection count, got %q", output)
	}
}

func TestGenerateCSV_InvalidInterval(t *testing.T) {
	deps, _, stderr, exitCode := setupTestDeps(t)

	GenerateCSV(deps, "1/1,1/2,_,extra", GenerateOptions{Report: report.DefaultOptions()})

	if *exitCode != 1 {
		t.Errorf("expected exit code 1, got %d", *exitCode)
	}
	if !strings.Contains(stderr.String(), timeutil.IntervalUsage) {
		t.Errorf("expected interval usage, got %q", stderr.String())
	}
}

func TestGenerateCSV_MissingDay(t *testing.T) {
	deps, _, stderr, exitCode := setupTestDeps(t)

	GenerateCSV(deps, "2024-01-01", GenerateOptions{Report: report.DefaultOptions()})

	if *exitCode != 1 {
		t.Errorf("expected exit code 1, got %d", *exitCode)
	}
	path := filepath.Join(deps.Services.Layout().Logs, "2024", "01", "01.txt")
	if !strings.Contains(stderr.String(), "Log file "+path+" does not exist.") {
		t.Errorf("expected missing log message, got %q", stderr.String())
	}
}

func TestGenerateCSV_InvalidDate(t *testing.T) {
	deps, _, stderr, exitCode := setupTestDeps(t)

	GenerateCSV(deps, "someday", GenerateOptions{Report: report.DefaultOptions()})

	if *exitCode != 1 {
		t.Errorf("expected exit code 1, got %d", *exitCode)
	}
	if !strings.Contains(stderr.String(), dateHint) {
		t.Errorf("expected date hint, got %q", stderr.String())
	}
}

func TestGenerateCSV_Stdout(t *testing.T) {
	deps, stdout, stderr, _ := setupTestDepsWithFiles(t, map[string]string{
		"2024/03/15.txt": "- 1h Work\n",
	})

	GenerateCSV(deps, "2024-03-15", GenerateOptions{Report: report.Options{}, ToStdout: true})

	if stdout.String() != "03/15/2024,1h,\"Work\",1.0,\n" {
		t.Errorf("expected bare CSV on stdout, got %q", stdout.String())
	}
	if strings.Contains(stderr.String(), "Generated") {
		t.Errorf("expected nothing written, got %q", stderr.String())
	}
	if _, err := os.Stat(filepath.Join(deps.Services.Layout().Gen, "2024-03-15.csv")); !os.IsNotExist(err) {
		t.Errorf("expected no report file, got %v", err)
	}
}

func TestGenerateCSV_Copy(t *testing.T) {
	tests := []struct {
		name        string
		clipErr     error
		wantWarning bool
	}{
		{"success", nil, false},
		{"failure", errors.New("no clipboard"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps, stdout, stderr, exitCode := setupTestDepsWithFiles(t, map[string]string{
				"2024/03/15.txt": "- 1h Work\n",
			})
			var copied string
			deps.Clipboard = func(s string) error {
				copied = s
				return tt.clipErr
			}

			GenerateCSV(deps, "2024-03-15", GenerateOptions{Report: report.DefaultOptions(), Copy: true})

			if *exitCode != 0 {
				t.Errorf("expected exit code 0, got %d", *exitCode)
			}
			if !strings.HasPrefix(copied, "Date,Duration,Description,Hours,Splits") {
				t.Errorf("expected CSV to be copied, got %q", copied)
			}
			gotWarning := strings.Contains(stderr.String(), "Warning: failed to copy to clipboard")
			if gotWarning != tt.wantWarning {
				t.Errorf("warning = %v, want %v (stderr %q)", gotWarning, tt.wantWarning, stderr.String())
			}
			if !tt.wantWarning && !strings.Contains(stdout.String(), "Copied CSV to clipboard.") {
				t.Errorf("expected copy confirmation, got %q", stdout.String())
			}
		})
	}
}

func TestGenerateCSV_CollectionWarnings(t *testing.T) {
	deps, _, stderr, _ := setupTestDepsWithFiles(t, map[string]string{
		"2024/03/01.txt": "- 1h Fine\n- 1..5h Broken\n",
	})

	GenerateCSV(deps, "2024-03", GenerateOptions{Report: report.DefaultOptions()})

	output := stderr.String()
	if !strings.Contains(output, "Warning: Found 1 malformed line:") {
		t.Errorf("expected warning header, got %q", output)
	}
	if !strings.Contains(output, "2024/03/01.txt:\n  Line 2:") {
		t.Errorf("expected warning grouped by file, got %q", output)
	}
}
