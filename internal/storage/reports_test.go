package storage

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"testing"
	"time"

	"github.com/xolan/acme/internal/osutil"
)

type failingMkdir struct {
	osutil.DefaultPathProvider
	err error
}

func (f failingMkdir) MkdirAll(string, os.FileMode) error { return f.err }

func TestWriteReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gen", "2024-01.csv")

	if err := WriteReport(path, "a,b\nc,d"); err != nil {
		t.Fatalf("WriteReport() error = %v", err)
	}
	if err := WriteReport(path, "x"); err != nil {
		t.Fatalf("WriteReport() overwrite error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read report: %v", err)
	}
	if string(data) != "x" {
		t.Errorf("report = %q, expected overwrite to %q", data, "x")
	}
}

func TestWriteReport_MkdirError(t *testing.T) {
	expectedErr := errors.New("read-only filesystem")
	osutil.SetProvider(failingMkdir{err: expectedErr})
	defer osutil.ResetProvider()

	err := WriteReport(filepath.Join(t.TempDir(), "gen", "x.csv"), "")
	if !errors.Is(err, expectedErr) {
		t.Errorf("expected wrapped mkdir error, got %v", err)
	}
}

func TestCleanGenerated(t *testing.T) {
	gen := t.TempDir()
	for _, name := range []string{
		"2024-03-01.csv", // 9 days old
		"2024-03-03.csv", // exactly 7
		"2024-03-04.csv", // 6
		"2024-03.csv",
		"2024-03-01_03-07.csv",
		"notes.csv",
		"2024-02-01.txt",
	} {
		mustWrite(t, filepath.Join(gen, name), "")
	}

	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	removed, err := CleanGenerated(gen, now, 7)
	if err != nil {
		t.Fatalf("CleanGenerated() error = %v", err)
	}

	sort.Strings(removed)
	expected := []string{"2024-03-01.csv", "2024-03-03.csv"}
	if !reflect.DeepEqual(removed, expected) {
		t.Errorf("removed = %v, expected %v", removed, expected)
	}

	left, _ := ListFiles(gen)
	if len(left) != 5 {
		t.Errorf("expected 5 files left, got %v", left)
	}
}

func TestCleanGenerated_MissingDir(t *testing.T) {
	removed, err := CleanGenerated(filepath.Join(t.TempDir(), "gen"), time.Now(), 7)
	if err != nil {
		t.Errorf("expected no error for missing dir, got %v", err)
	}
	if len(removed) != 0 {
		t.Errorf("expected nothing removed, got %v", removed)
	}
}

func TestMakeDayFiles(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "05.txt")
	mustWrite(t, existing, "- 1h keep me")

	planned, err := MakeDayFiles(dir, false)
	if err != nil {
		t.Fatalf("MakeDayFiles(dry run) error = %v", err)
	}
	if len(planned) != 31 {
		t.Fatalf("expected 31 paths, got %d", len(planned))
	}
	if _, err := os.Stat(filepath.Join(dir, "01.txt")); !os.IsNotExist(err) {
		t.Error("dry run should not create files")
	}

	if _, err := MakeDayFiles(dir, true); err != nil {
		t.Fatalf("MakeDayFiles(apply) error = %v", err)
	}
	for _, p := range planned {
		if !Exists(p) {
			t.Errorf("expected %s to exist", p)
		}
	}
	data, _ := os.ReadFile(existing)
	if string(data) != "- 1h keep me" {
		t.Errorf("existing file was modified: %q", data)
	}
}

func TestMakeMonthDirs(t *testing.T) {
	dir := t.TempDir()

	planned, err := MakeMonthDirs(dir, false)
	if err != nil {
		t.Fatalf("MakeMonthDirs(dry run) error = %v", err)
	}
	if len(planned) != 12 || filepath.Base(planned[11]) != "12" {
		t.Fatalf("unexpected plan: %v", planned)
	}
	if _, err := os.Stat(planned[0]); !os.IsNotExist(err) {
		t.Error("dry run should not create directories")
	}

	if _, err := MakeMonthDirs(dir, true); err != nil {
		t.Fatalf("MakeMonthDirs(apply) error = %v", err)
	}
	for _, p := range planned {
		if info, err := os.Stat(p); err != nil || !info.IsDir() {
			t.Errorf("expected directory %s", p)
		}
	}
}
