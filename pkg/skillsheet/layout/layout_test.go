package layout

import (
	"strings"
	"testing"
)

func TestTextRowHeight(t *testing.T) {
	tests := []struct {
		text     string
		expected float64
	}{
		{"", 30},
		{"one line", 30},
		{"a\nb", 30},
		{"a\nb\nc", 45},
		{"a\nb\nc\nd\n", 75},
		{strings.Repeat("x\n", 26) + "x", 405},
		{strings.Repeat("x\n", 27) + "x", 409},
		{strings.Repeat("x\n", 39) + "x", 409},
	}

	for _, tt := range tests {
		if result := TextRowHeight(tt.text); result != tt.expected {
			t.Errorf("TextRowHeight(%q) = %v, expected %v", tt.text, result, tt.expected)
		}
	}
}

func TestValueCell(t *testing.T) {
	tests := []struct {
		field    Field
		expected string
	}{
		{FieldName, "D2"},
		{FieldGender, "H2"},
		{FieldKana, "D3"},
		{FieldAge, "H3"},
		{FieldNearestStation, "D4"},
		{FieldExperienceYears, "H4"},
	}

	for _, tt := range tests {
		cell, ok := ValueCell(tt.field)
		if !ok || cell != tt.expected {
			t.Errorf("ValueCell(%q) = %q, %v, expected %q", tt.field, cell, ok, tt.expected)
		}
	}

	if _, ok := ValueCell("unknown"); ok {
		t.Error("ValueCell(unknown) should not be found")
	}
}
