package duration

import (
	"testing"
	"time"
)

func TestComputeAt(t *testing.T) {
	now := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		start    string
		end      string
		expected string
	}{
		{"2020-01-01", "2022-01-01", "2年0ヶ月"},
		{"2020-06-01", "2020-06-01", "1ヶ月"},
		{"2020-06-01", "2020-06-30", "1ヶ月"},
		{"2020-04-01", "2020-09-30", "5ヶ月"},
		{"2018-04-01", "2023-03-31", "4年11ヶ月"},
		{"2023-01-01", "2024-02-29", "1年1ヶ月"},
		{"2022-01-01", "2020-01-01", ""},
		{"2020-06-02", "2020-06-01", ""},
		{"bad", "2020-01-01", ""},
		{"2020-01-01", "bad", ""},
		{"", "", ""},
		{"2023-03-01", "current", "1年0ヶ月"},
		{"2024-03-01", "current", "1ヶ月"},
		{"2024-04-01", "current", ""},
	}

	for _, tt := range tests {
		result := ComputeAt(tt.start, tt.end, now)
		if result != tt.expected {
			t.Errorf("ComputeAt(%q, %q) = %q, expected %q", tt.start, tt.end, result, tt.expected)
		}
	}
}

func TestComputeUsesToday(t *testing.T) {
	today := time.Now().Format("2006-01-02")
	if result := Compute(today, "current"); result != "1ヶ月" {
		t.Errorf("Compute(%q, current) = %q, expected %q", today, result, "1ヶ月")
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		months   int
		expected string
	}{
		{0, ""},
		{-3, ""},
		{1, "1ヶ月"},
		{11, "11ヶ月"},
		{12, "1年0ヶ月"},
		{25, "2年1ヶ月"},
	}

	for _, tt := range tests {
		if result := Format(tt.months); result != tt.expected {
			t.Errorf("Format(%d) = %q, expected %q", tt.months, result, tt.expected)
		}
	}
}
