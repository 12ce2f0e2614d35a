package models

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf16"
)

// MaxTextLength is the most UTF-16 code units a worksheet cell holds.
// Longer text would be cut by the workbook writer, so it is rejected.
const MaxTextLength = 32767

// FieldError describes one invalid field.
type FieldError struct {
	// Field is the JSON path of the field, e.g. "career_history[0].overview".
	Field string `json:"field"`
	// Message is a human readable reason.
	Message string `json:"message"`
}

// ValidationError lists every invalid field of a record.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) required(field string) {
	e.Fields = append(e.Fields, FieldError{
		Field:   field,
		Message: fmt.Sprintf("required field '%s'", field),
	})
}

func (e *ValidationError) invalid(field string, value any) {
	e.Fields = append(e.Fields, FieldError{
		Field:   field,
		Message: fmt.Sprintf("invalid value in field '%s'=%v", field, value),
	})
}

func (e *ValidationError) tooLong(field string, length int) {
	e.Fields = append(e.Fields, FieldError{
		Field:   field,
		Message: fmt.Sprintf("field '%s' is too long: %d > %d", field, length, MaxTextLength),
	})
}

// TextLength returns the length of s in UTF-16 code units.
func TextLength(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}

func (e *ValidationError) checkLength(field, s string) {
	if n := TextLength(s); n > MaxTextLength {
		e.tooLong(field, n)
	}
}

// ValidDate reports whether s is a YYYY-MM-DD calendar date.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Validate checks the required fields of the record.
// It returns a *ValidationError enumerating every problem, or nil.
func (s SkillSheetData) Validate() error {
	verr := &ValidationError{}

	s.BasicInfo.validate(verr, "basic_info")
	for i, entry := range s.CareerHistory {
		entry.validate(verr, fmt.Sprintf("career_history[%d]", i))
	}

	if len(verr.Fields) > 0 {
		return verr
	}
	return nil
}

func (b BasicInfo) validate(verr *ValidationError, prefix string) {
	if isBlank(b.Name) {
		verr.required(prefix + ".name")
	}
	if isBlank(b.Kana) {
		verr.required(prefix + ".kana")
	}
	if isBlank(b.Gender) {
		verr.required(prefix + ".gender")
	}
	if b.Age != nil && *b.Age < 0 {
		verr.invalid(prefix+".age", *b.Age)
	}
	if b.ExperienceYears != nil && *b.ExperienceYears < 0 {
		verr.invalid(prefix+".experience_years", *b.ExperienceYears)
	}

	for _, f := range []struct{ name, text string }{
		{"name", b.Name},
		{"kana", b.Kana},
		{"gender", b.Gender},
		{"nearest_station", b.NearestStation},
		{"self_pr", b.SelfPR},
		{"main_technologies", b.MainTechnologies},
		{"qualifications", b.Qualifications},
	} {
		verr.checkLength(prefix+"."+f.name, f.text)
	}
}

func (e CareerHistoryEntry) validate(verr *ValidationError, prefix string) {
	start := strings.TrimSpace(e.StartDate)
	switch {
	case start == "":
		verr.required(prefix + ".start_date")
	case !ValidDate(start):
		verr.invalid(prefix+".start_date", e.StartDate)
	}

	end := strings.TrimSpace(e.EndDate)
	switch {
	case end == "":
		verr.required(prefix + ".end_date")
	case end != CurrentPeriod && !ValidDate(end):
		verr.invalid(prefix+".end_date", e.EndDate)
	}

	if isBlank(e.Overview) {
		verr.required(prefix + ".overview")
	}
	if isBlank(e.Position) {
		verr.required(prefix + ".position")
	}
	if e.ScaleMembers != nil && *e.ScaleMembers <= 0 {
		verr.invalid(prefix+".scale_members", *e.ScaleMembers)
	}
	if isBlank(e.Responsibilities) {
		verr.required(prefix + ".responsibilities")
	}

	for _, f := range []struct{ name, text string }{
		{"duration", e.Duration},
		{"overview", e.Overview},
		{"position", e.Position},
		{"responsibilities", e.Responsibilities},
		{"tech_environment", e.TechEnvironment},
	} {
		verr.checkLength(prefix+"."+f.name, f.text)
	}
}
