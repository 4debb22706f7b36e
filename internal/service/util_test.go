package service

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func TestUtilService_MakeFiles(t *testing.T) {
	services := setupServices(t, testConfig(), nil)
	dir := filepath.Join(services.Layout().Logs, "2024", "04")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}

	// Dry run touches nothing
	paths, err := services.Util.MakeFiles(dir, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(paths) != 31 {
		t.Errorf("expected 31 paths, got %d", len(paths))
	}
	if _, err := os.Stat(filepath.Join(dir, "01.txt")); !os.IsNotExist(err) {
		t.Error("dry run should not create files")
	}

	if _, err := services.Util.MakeFiles(dir, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "31.txt")); err != nil {
		t.Errorf("expected 31.txt to exist: %v", err)
	}
}

func TestUtilService_MakeFiles_MissingDir(t *testing.T) {
	services := setupServices(t, testConfig(), nil)

	_, err := services.Util.MakeFiles(filepath.Join(t.TempDir(), "missing"), true)
	if err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestUtilService_MakeDirs(t *testing.T) {
	services := setupServices(t, testConfig(), nil)
	dir := filepath.Join(services.Layout().Logs, "2025")

	paths, err := services.Util.MakeDirs(dir, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(paths) != 12 {
		t.Errorf("expected 12 paths, got %d", len(paths))
	}
	if info, err := os.Stat(filepath.Join(dir, "12")); err != nil || !info.IsDir() {
		t.Errorf("expected 12 to be a directory: %v", err)
	}
}

func TestUtilService_CleanGen(t *testing.T) {
	cfg := testConfig()
	cfg.CleanAfterDays = 7
	services := setupServices(t, cfg, nil)

	gen := services.Util.GenDir()
	if err := os.MkdirAll(gen, 0755); err != nil {
		t.Fatal(err)
	}
	// fixedNow is 2024-03-15
	for _, name := range []string{"2024-03-01.csv", "2024-03-08.csv", "2024-03-09.csv", "2024-03.csv", "2024-03-01_03-07.csv"} {
		if err := os.WriteFile(filepath.Join(gen, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	removed, err := services.Util.CleanGen()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sort.Strings(removed)
	if len(removed) != 2 || removed[0] != "2024-03-01.csv" || removed[1] != "2024-03-08.csv" {
		t.Errorf("unexpected removed files %v", removed)
	}

	entries, err := os.ReadDir(gen)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Errorf("expected 3 remaining files, got %d", len(entries))
	}
	if services.Util.CleanAfterDays() != 7 {
		t.Errorf("CleanAfterDays() = %d", services.Util.CleanAfterDays())
	}
}

func TestUtilService_CleanGen_NoGenDir(t *testing.T) {
	services := setupServices(t, testConfig(), nil)

	removed, err := services.Util.CleanGen()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(removed) != 0 {
		t.Errorf("expected nothing removed, got %v", removed)
	}
}
