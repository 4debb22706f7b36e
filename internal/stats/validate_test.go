package stats

import (
	"os"
	"path/filepath"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		path           string
		expectedKind   Pattern
		expectedValid  bool
		expectedCustom string
		expectedYMD    bool
		expectedDate   string
	}{
		{"2024/01/15.txt", PatternDay, true, "", false, "2024-01-15"},
		{"2024/01/15-gym.txt", PatternDayCustom, true, "-gym", false, "2024-01-15"},
		{"2024/01/15abc.txt", PatternDayCustom, true, "abc", false, "2024-01-15"},
		{"2024/01/2024-01-15-gym.txt", PatternDayCustom, true, "24-01-15-gym", false, "2024-01-15"},
		{"2024/01/2024-01-15.txt", PatternDayCustom, true, "24-01-15", false, "2024-01-15"},
		{"2024/2024-01-15_notes.txt", PatternYearYMD, true, "_notes", true, "2024-01-15"},
		{"2024/2024-01-15.txt", PatternNone, false, "", false, ""},
		{"2024/1/15.txt", PatternNone, false, "", false, ""},
		{"2024/01/15.md", PatternNone, false, "", false, ""},
		{"2024-01-15.txt", PatternNone, false, "", false, ""},
		{"readme.txt", PatternNone, false, "", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			c := Classify(tt.path)
			if c.Pattern != tt.expectedKind {
				t.Errorf("Pattern = %v, expected %v", c.Pattern, tt.expectedKind)
			}
			if c.Valid != tt.expectedValid {
				t.Errorf("Valid = %v, expected %v", c.Valid, tt.expectedValid)
			}
			if c.CustomText != tt.expectedCustom {
				t.Errorf("CustomText = %q, expected %q", c.CustomText, tt.expectedCustom)
			}
			if c.Custom != (tt.expectedCustom != "") {
				t.Errorf("Custom = %v", c.Custom)
			}
			if c.YMD != tt.expectedYMD {
				t.Errorf("YMD = %v, expected %v", c.YMD, tt.expectedYMD)
			}
			if c.Date() != tt.expectedDate {
				t.Errorf("Date() = %q, expected %q", c.Date(), tt.expectedDate)
			}
		})
	}
}

func TestAnalyze(t *testing.T) {
	root := t.TempDir()
	for _, f := range []string{
		"2024/01/15.txt",
		"2024/01/16-gym.txt",
		"2024/01/2024-01-17-work.txt",
		"2024/2024-01-18-trip.txt",
		"2024/2024-01-19.txt",
		"2024/notes.md",
		"2024/01/.hidden.txt",
	} {
		path := filepath.Join(root, filepath.FromSlash(f))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, nil, 0644); err != nil {
			t.Fatal(err)
		}
	}

	a, err := Analyze(root)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if a.Total() != 6 {
		t.Errorf("Total() = %d, expected 6", a.Total())
	}
	if n := len(a.Valid()); n != 4 {
		t.Errorf("Valid() = %d, expected 4", n)
	}
	if n := len(a.Custom()); n != 3 {
		t.Errorf("Custom() = %d, expected 3", n)
	}
	if ymd := a.YMD(); len(ymd) != 1 || ymd[0].Path != "2024/2024-01-18-trip.txt" {
		t.Errorf("YMD() = %+v", ymd)
	}
	invalid := a.Invalid()
	if len(invalid) != 2 || invalid[0].Path != "2024/2024-01-19.txt" || invalid[1].Path != "2024/notes.md" {
		t.Errorf("Invalid() = %+v", invalid)
	}
	if got := a.ForDate("2024-01-16"); len(got) != 1 || got[0].Path != "2024/01/16-gym.txt" {
		t.Errorf("ForDate() = %+v", got)
	}
	if got := a.ForDate("2024-01-17"); len(got) != 1 || got[0].Path != "2024/01/2024-01-17-work.txt" {
		t.Errorf("ForDate() = %+v", got)
	}
}

func TestAnalyze_Empty(t *testing.T) {
	a, err := Analyze(t.TempDir())
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if a.Total() != 0 || len(a.Valid()) != 0 || len(a.Invalid()) != 0 {
		t.Errorf("expected empty analysis, got %+v", a)
	}
}

func TestAnalyze_MissingRoot(t *testing.T) {
	if _, err := Analyze(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for missing root")
	}
}
