// Package layout holds the cell coordinates and presentation constants of an
// exported skill sheet. The writer places values at these coordinates and the
// parser reads them back from the same table.
package layout

import "strings"

// Sheet and title. The title sits on TitleRow across the full width.
const (
	SheetName = "職務経歴書"
	Title     = "職務経歴書"
	TitleRow  = 1
)

// Column bounds of the sheet.
const (
	FirstColumn     = 1 // A
	LastColumn      = 9 // I
	FirstColumnName = "A"
	LastColumnName  = "I"
)

// Presentation metrics.
const (
	ColumnWidth    = 12.0
	FontFamily     = "游ゴシック"
	TitleFontSize  = 14.0
	BodyFontSize   = 11.0
	HeaderFill     = "E0E0E0"
	BorderColor    = "000000"
	LineHeight     = 15.0
	MinTextHeight  = 30.0
	MaxRowHeight   = 409.0
	PrintAreaName  = "_xlnm.Print_Area"
	PaperSizeA4    = 9
	OrientPortrait = "portrait"
)

// Field identifies a value of the basic info grid.
type Field string

const (
	FieldName            Field = "name"
	FieldGender          Field = "gender"
	FieldKana            Field = "kana"
	FieldAge             Field = "age"
	FieldNearestStation  Field = "nearest_station"
	FieldExperienceYears Field = "experience_years"
)

// GridCell is one label/value pair of the basic info grid.
type GridCell struct {
	Field Field
	// Label is the caption written to LabelCell.
	Label     string
	LabelCell string
	// ValueStart and ValueEnd bound the merged value range.
	ValueStart string
	ValueEnd   string
}

// BasicInfoGrid lists the basic info grid in writing order.
var BasicInfoGrid = []GridCell{
	{FieldName, "氏名", "B2", "D2", "E2"},
	{FieldGender, "性別", "F2", "H2", "I2"},
	{FieldKana, "ふりがな", "B3", "D3", "E3"},
	{FieldAge, "年齢", "F3", "H3", "I3"},
	{FieldNearestStation, "最寄駅", "B4", "D4", "E4"},
	{FieldExperienceYears, "実務経験", "F4", "H4", "I4"},
}

// ValueCell returns the top-left value cell of field.
func ValueCell(field Field) (string, bool) {
	for _, c := range BasicInfoGrid {
		if c.Field == field {
			return c.ValueStart, true
		}
	}
	return "", false
}

// Value suffixes of the basic info grid.
const (
	AgeSuffix        = "歳"
	ExperienceSuffix = "年"
	MembersSuffix    = "名"
)

// FirstSectionRow is the row of the first band after the basic info grid.
const FirstSectionRow = 6

// Section header labels.
const (
	SectionSelfPR           = "自己PR"
	SectionMainTechnologies = "主要技術"
	SectionQualifications   = "保有資格"
	SectionTasks            = "対応可能業務"
	SectionCareer           = "職務経歴"
)

// Capability matrix geometry: TaskGroups label/value/spacer triplets per row.
const (
	TaskGroups     = 3
	TaskGroupWidth = 3
	// TaskTrailingRows is the number of blank rows after the matrix.
	TaskTrailingRows = 2
)

// Career history block columns.
const (
	CareerPeriodCol        = "A"
	CareerOverviewStart    = "B"
	CareerOverviewEnd      = "E"
	CareerPositionStart    = "F"
	CareerPositionEnd      = "G"
	CareerScaleStart       = "H"
	CareerScaleEnd         = "I"
	CareerDetailLabelCol   = "A"
	CareerDetailValueStart = "B"
	CareerDetailValueEnd   = "I"
)

// Career history labels.
const (
	LabelPeriod           = "期間"
	LabelOverview         = "業務概要"
	LabelPosition         = "ポジション"
	LabelScale            = "規模"
	LabelResponsibilities = "担当業務"
	LabelTechEnvironment  = "技術環境"
	// PresentLabel replaces models.CurrentPeriod in the period text.
	PresentLabel = "現在"
	PeriodSep    = " 〜 "
)

// LineCount returns the number of newline-delimited lines of s, at least 1.
func LineCount(s string) int {
	return strings.Count(s, "\n") + 1
}

// RowHeight returns the height of a row showing the given number of lines,
// bounded by MinTextHeight and MaxRowHeight.
func RowHeight(lines int) float64 {
	h := LineHeight * float64(lines)
	switch {
	case h < MinTextHeight:
		return MinTextHeight
	case h > MaxRowHeight:
		return MaxRowHeight
	}
	return h
}

// TextRowHeight is RowHeight(LineCount(s)).
func TextRowHeight(s string) float64 {
	return RowHeight(LineCount(s))
}
