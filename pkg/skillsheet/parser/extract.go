package parser

import (
	"strconv"
	"strings"

	"github.com/ukaji3/skillsheet-go/pkg/skillsheet/layout"
	"github.com/ukaji3/skillsheet-go/pkg/skillsheet/models"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/width"
)

// ExtractSkillSheet reads the basic info grid of a workbook written by the
// exporter. The capability matrix and career history are not read back.
// Field level problems never fail; unreadable values come back empty or nil.
func ExtractSkillSheet(f *excelize.File) (*models.PartialSkillSheet, error) {
	sheetName := sheetFor(f, layout.SheetName)
	grid, err := loadGrid(f, sheetName)
	if err != nil {
		return nil, err
	}

	value := func(field layout.Field) string {
		cell, ok := layout.ValueCell(field)
		if !ok {
			return ""
		}
		return grid.text(cell)
	}

	info := models.BasicInfo{
		Name:            value(layout.FieldName),
		Kana:            value(layout.FieldKana),
		Gender:          NormalizeGender(value(layout.FieldGender)),
		Age:             parseSuffixed(value(layout.FieldAge), layout.AgeSuffix),
		NearestStation:  value(layout.FieldNearestStation),
		ExperienceYears: parseSuffixed(value(layout.FieldExperienceYears), layout.ExperienceSuffix),
	}

	return models.NewPartialSkillSheet(info), nil
}

// NormalizeGender maps cell text to a canonical gender value.
func NormalizeGender(s string) string {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return models.GenderNoAnswer
	case s == models.GenderNoAnswer || s == models.GenderOther:
		return s
	case strings.Contains(s, models.GenderMale):
		return models.GenderMale
	case strings.Contains(s, models.GenderFemale):
		return models.GenderFemale
	default:
		return models.GenderOther
	}
}

// parseSuffixed parses texts like "30歳". Text without the suffix, a
// non-numeric or a negative value yields nil.
func parseSuffixed(s, suffix string) *int {
	s = width.Fold.String(strings.TrimSpace(s))
	if !strings.Contains(s, suffix) {
		return nil
	}

	n, err := strconv.Atoi(strings.TrimSpace(strings.ReplaceAll(s, suffix, "")))
	if err != nil || n < 0 {
		return nil
	}
	return &n
}
