package entry

import "testing"

func TestHumanDuration_Compact(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"1.5", "1h 30m"},
		{"0", ""},
		{"2.0", "2h"},
		{"0.25", "15m"},
		{"0.3333", "20m"},
		{"8.75", "8h 45m"},
		{"0.9999", "1h"},
		{"0.004", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := HumanDuration(tt.input, true); got != tt.expected {
				t.Errorf("HumanDuration(%q, true) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestHumanDuration_Verbose(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"1.5", "1 hr 30 min"},
		{"2.75", "2 hrs 45 min"},
		{"1", "1 hr"},
		{"0.5", "30 min"},
		{"0", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := HumanDuration(tt.input, false); got != tt.expected {
				t.Errorf("HumanDuration(%q, false) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestHumanDuration_NonNumeric(t *testing.T) {
	for _, input := range []string{"", "Hours", "abc", "1h"} {
		if got := HumanDuration(input, true); got != "" {
			t.Errorf("HumanDuration(%q, true) = %q, expected empty string", input, got)
		}
	}
}
