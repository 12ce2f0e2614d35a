package writer

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ukaji3/skillsheet-go/pkg/skillsheet/layout"
	"github.com/ukaji3/skillsheet-go/pkg/skillsheet/models"
	"github.com/xuri/excelize/v2"
)

func intPtr(v int) *int { return &v }

func fixedOptions() Options {
	opts := DefaultOptions()
	opts.Now = func() time.Time { return time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC) }
	return opts
}

func baseSheet() models.SkillSheetData {
	return models.SkillSheetData{
		BasicInfo: models.BasicInfo{
			Name:            "テスト太郎",
			Kana:            "テストタロウ",
			Gender:          models.GenderMale,
			Age:             intPtr(30),
			NearestStation:  "東京",
			ExperienceYears: intPtr(5),
		},
		PossibleTasks: models.DefaultPossibleTasks(),
	}
}

func render(t *testing.T, data models.SkillSheetData) *excelize.File {
	t.Helper()
	out, err := Render(data, fixedOptions())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("Failed to open rendered workbook: %v", err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

func expectCells(t *testing.T, f *excelize.File, expected map[string]string) {
	t.Helper()
	for cell, want := range expected {
		got, err := f.GetCellValue(layout.SheetName, cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s) failed: %v", cell, err)
		}
		if got != want {
			t.Errorf("%s = %q, expected %q", cell, got, want)
		}
	}
}

func expectHeights(t *testing.T, f *excelize.File, expected map[int]float64) {
	t.Helper()
	for row, want := range expected {
		got, err := f.GetRowHeight(layout.SheetName, row)
		if err != nil {
			t.Fatalf("GetRowHeight(%d) failed: %v", row, err)
		}
		if got != want {
			t.Errorf("row %d height = %v, expected %v", row, got, want)
		}
	}
}

func mergedRanges(t *testing.T, f *excelize.File) map[string]bool {
	t.Helper()
	merges, err := f.GetMergeCells(layout.SheetName)
	if err != nil {
		t.Fatalf("GetMergeCells failed: %v", err)
	}
	ranges := make(map[string]bool, len(merges))
	for _, m := range merges {
		ranges[m.GetStartAxis()+":"+m.GetEndAxis()] = true
	}
	return ranges
}

func containsText(t *testing.T, f *excelize.File, text string) bool {
	t.Helper()
	rows, err := f.GetRows(layout.SheetName)
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	for _, row := range rows {
		for _, cell := range row {
			if cell == text {
				return true
			}
		}
	}
	return false
}

func TestRenderBasicInfoGrid(t *testing.T) {
	f := render(t, baseSheet())

	if sheets := f.GetSheetList(); len(sheets) != 1 || sheets[0] != layout.SheetName {
		t.Fatalf("sheets = %v, expected [%s]", sheets, layout.SheetName)
	}

	expectCells(t, f, map[string]string{
		"A1": "職務経歴書",
		"B2": "氏名", "D2": "テスト太郎",
		"F2": "性別", "H2": "男性",
		"B3": "ふりがな", "D3": "テストタロウ",
		"F3": "年齢", "H3": "30歳",
		"B4": "最寄駅", "D4": "東京",
		"F4": "実務経験", "H4": "5年",
	})

	merges := mergedRanges(t, f)
	for _, r := range []string{"A1:I1", "D2:E2", "H2:I2", "D3:E3", "H3:I3", "D4:E4", "H4:I4"} {
		if !merges[r] {
			t.Errorf("expected merged range %s, got %v", r, merges)
		}
	}
}

func TestRenderAbsentNumbersAreEmpty(t *testing.T) {
	data := baseSheet()
	data.BasicInfo.Age = nil
	data.BasicInfo.ExperienceYears = nil
	f := render(t, data)

	expectCells(t, f, map[string]string{"H3": "", "H4": ""})
}

func TestRenderOmitsEmptySections(t *testing.T) {
	data := baseSheet()
	data.BasicInfo.SelfPR = "  "
	f := render(t, data)

	expectCells(t, f, map[string]string{"A6": layout.SectionTasks})
	for _, label := range []string{layout.SectionSelfPR, layout.SectionMainTechnologies, layout.SectionQualifications, layout.SectionCareer} {
		if containsText(t, f, label) {
			t.Errorf("unexpected band %q", label)
		}
	}
}

func TestRenderTextSections(t *testing.T) {
	data := baseSheet()
	data.BasicInfo.SelfPR = "line1\nline2"
	data.BasicInfo.Qualifications = "基本情報技術者\n応用情報技術者\nAWS SAA"
	f := render(t, data)

	expectCells(t, f, map[string]string{
		"A6":  layout.SectionSelfPR,
		"A7":  "line1\nline2",
		"A9":  layout.SectionQualifications,
		"A10": "基本情報技術者\n応用情報技術者\nAWS SAA",
		"A12": layout.SectionTasks,
	})
	expectHeights(t, f, map[int]float64{7: 30, 10: 45})

	merges := mergedRanges(t, f)
	for _, r := range []string{"A6:I6", "A7:I7", "A9:I9", "A10:I10", "A12:I12"} {
		if !merges[r] {
			t.Errorf("expected merged range %s", r)
		}
	}
}

func TestRenderTallTextIsClamped(t *testing.T) {
	tests := []struct {
		name  string
		lines int
		apply func(*models.SkillSheetData, string)
		cell  string
	}{
		{"self pr 28 lines", 28, func(d *models.SkillSheetData, s string) { d.BasicInfo.SelfPR = s }, "A7"},
		{"main technologies 40 lines", 40, func(d *models.SkillSheetData, s string) { d.BasicInfo.MainTechnologies = s }, "A7"},
		{"qualifications 28 lines", 28, func(d *models.SkillSheetData, s string) { d.BasicInfo.Qualifications = s }, "A7"},
		{"responsibilities 40 lines", 40, func(d *models.SkillSheetData, s string) {
			d.CareerHistory = []models.CareerHistoryEntry{{
				StartDate: "2020-04-01", EndDate: "2021-03-31", Overview: "a", Position: "b", Responsibilities: s,
			}}
		}, "B17"},
		{"tech environment 28 lines", 28, func(d *models.SkillSheetData, s string) {
			d.CareerHistory = []models.CareerHistoryEntry{{
				StartDate: "2020-04-01", EndDate: "2021-03-31", Overview: "a", Position: "b", Responsibilities: "c", TechEnvironment: s,
			}}
		}, "B18"},
		{"overview 40 lines", 40, func(d *models.SkillSheetData, s string) {
			d.CareerHistory = []models.CareerHistoryEntry{{
				StartDate: "2020-04-01", EndDate: "2021-03-31", Overview: s, Position: "b", Responsibilities: "c",
			}}
		}, "B16"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := baseSheet()
			text := strings.Repeat("line\n", tt.lines-1) + "last"
			tt.apply(&data, text)

			_, row, err := excelize.SplitCellName(tt.cell)
			if err != nil {
				t.Fatalf("SplitCellName(%s) failed: %v", tt.cell, err)
			}

			f := render(t, data)
			expectHeights(t, f, map[int]float64{row: layout.MaxRowHeight})
			expectCells(t, f, map[string]string{tt.cell: text})
		})
	}
}

func TestRenderSkipsBlankTextSections(t *testing.T) {
	blanks := []string{" ", "\n\n", "\t \n　"}

	for _, blank := range blanks {
		data := baseSheet()
		data.BasicInfo.SelfPR = blank
		data.BasicInfo.MainTechnologies = blank
		data.BasicInfo.Qualifications = blank
		f := render(t, data)

		expectCells(t, f, map[string]string{"A6": layout.SectionTasks, "A7": "顧客折衝"})
		for _, label := range []string{layout.SectionSelfPR, layout.SectionMainTechnologies, layout.SectionQualifications} {
			if containsText(t, f, label) {
				t.Errorf("blank text %q produced band %q", blank, label)
			}
		}
	}
}

func TestRenderTaskMatrix(t *testing.T) {
	data := baseSheet()
	data.PossibleTasks.CustomerNegotiation = "o"
	data.PossibleTasks.SVOperation = "o"
	f := render(t, data)

	expectCells(t, f, map[string]string{
		"A7": "顧客折衝", "B7": "o",
		"D7": "調査分析", "E7": "-",
		"G7": "要件定義", "H7": "-",
		"A8": "基本設計",
		"G8": "PG開発",
		"A10": "NW設計",
		"A11": "SV設計",
		"D11": "SV構築",
		"G11": "SV運用", "H11": "o",
		"C7": "", "I11": "",
	})

	styleID, err := f.GetCellStyle(layout.SheetName, "I11")
	if err != nil {
		t.Fatalf("GetCellStyle failed: %v", err)
	}
	if styleID == 0 {
		t.Error("spacer cell I11 should carry a border style")
	}
}

func TestRenderCareerHistory(t *testing.T) {
	data := baseSheet()
	data.CareerHistory = []models.CareerHistoryEntry{
		{
			StartDate:        "2018-04-01",
			EndDate:          models.CurrentPeriod,
			Overview:         "ECサイト開発",
			Position:         "SE",
			ScaleMembers:     intPtr(5),
			Responsibilities: "要件定義\n設計\n開発",
		},
		{
			StartDate:        "2015-01-01",
			EndDate:          "2018-03-31",
			Duration:         "3年2ヶ月",
			Overview:         "基幹システム\n保守\n運用",
			Position:         "PG",
			Responsibilities: "開発",
			TechEnvironment:  "Java\nOracle",
		},
	}
	f := render(t, data)

	expectCells(t, f, map[string]string{
		"A14": layout.SectionCareer,
		"A15": "期間", "B15": "業務概要", "F15": "ポジション", "H15": "規模",
		"A16": "2018-04 〜 現在\n(5年11ヶ月)",
		"B16": "ECサイト開発",
		"F16": "SE",
		"H16": "5名",
		"A17": "担当業務", "B17": "要件定義\n設計\n開発",
		"A18": "技術環境", "B18": "",
		"A20": "期間",
		"A21": "2015-01 〜 2018-03-31\n(3年2ヶ月)",
		"H21": "",
		"B23": "Java\nOracle",
	})
	expectHeights(t, f, map[int]float64{16: 30, 17: 45, 21: 45, 22: 30, 23: 30})

	merges := mergedRanges(t, f)
	for _, r := range []string{"A14:I14", "B15:E15", "F15:G15", "H15:I15", "B16:E16", "F16:G16", "H16:I16", "B17:I17", "B18:I18"} {
		if !merges[r] {
			t.Errorf("expected merged range %s", r)
		}
	}

	var printArea string
	for _, dn := range f.GetDefinedName() {
		if strings.EqualFold(dn.Name, layout.PrintAreaName) {
			printArea = dn.RefersTo
		}
	}
	if !strings.HasSuffix(printArea, "$A$1:$I$23") {
		t.Errorf("print area = %q, expected to end with $A$1:$I$23", printArea)
	}
}

func TestRenderWithoutDurationFill(t *testing.T) {
	data := baseSheet()
	data.CareerHistory = []models.CareerHistoryEntry{
		{StartDate: "2020-04-01", EndDate: "2021-03-01", Overview: "a", Position: "b", Responsibilities: "c"},
	}
	opts := fixedOptions()
	opts.FillDuration = false
	opts.PrintSetup = false

	out, err := Render(data, opts)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("OpenReader failed: %v", err)
	}
	defer f.Close()

	expectCells(t, f, map[string]string{"A16": "2020-04 〜 2021-03"})
	for _, dn := range f.GetDefinedName() {
		if strings.EqualFold(dn.Name, layout.PrintAreaName) {
			t.Errorf("unexpected print area %q", dn.RefersTo)
		}
	}
}

func TestRenderStyles(t *testing.T) {
	data := baseSheet()
	data.BasicInfo.SelfPR = "pr"
	f := render(t, data)

	tests := []struct {
		cell string
		bold bool
		wrap bool
	}{
		{"A1", true, false},
		{"B2", true, false},
		{"D2", false, false},
		{"A6", true, false},
		{"A7", false, true},
	}

	for _, tt := range tests {
		id, err := f.GetCellStyle(layout.SheetName, tt.cell)
		if err != nil {
			t.Fatalf("GetCellStyle(%s) failed: %v", tt.cell, err)
		}
		style, err := f.GetStyle(id)
		if err != nil {
			t.Fatalf("GetStyle(%d) failed: %v", id, err)
		}
		bold := style.Font != nil && style.Font.Bold
		if bold != tt.bold {
			t.Errorf("%s bold = %v, expected %v", tt.cell, bold, tt.bold)
		}
		wrap := style.Alignment != nil && style.Alignment.WrapText
		if wrap != tt.wrap {
			t.Errorf("%s wrap = %v, expected %v", tt.cell, wrap, tt.wrap)
		}
	}

	for _, col := range []string{"A", "E", "I"} {
		width, err := f.GetColWidth(layout.SheetName, col)
		if err != nil {
			t.Fatalf("GetColWidth(%s) failed: %v", col, err)
		}
		if width != layout.ColumnWidth {
			t.Errorf("column %s width = %v, expected %v", col, width, layout.ColumnWidth)
		}
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteReportsOutputFailure(t *testing.T) {
	err := Write(failingWriter{}, baseSheet(), fixedOptions())

	var gerr *GenerationError
	if !errors.As(err, &gerr) {
		t.Fatalf("Write() = %v, expected *GenerationError", err)
	}
	if gerr.Section != "output" {
		t.Errorf("Section = %q, expected %q", gerr.Section, "output")
	}
}

func TestPeriodText(t *testing.T) {
	tests := []struct {
		start    string
		end      string
		label    string
		expected string
	}{
		{"2018-04-01", "2023-03-31", "", "2018-04 〜 2023-03-31"},
		{"2018-04-01", "2023-03-01", "4年11ヶ月", "2018-04 〜 2023-03\n(4年11ヶ月)"},
		{"2018-04-15", "current", "", "2018-04-15 〜 現在"},
		{"2018-04", "current", "", "2018-04 〜 現在"},
		{"2018-02-01", "2018-02-01", "1ヶ月", "2018-02 〜 2018-02\n(1ヶ月)"},
	}

	for _, tt := range tests {
		entry := models.CareerHistoryEntry{StartDate: tt.start, EndDate: tt.end}
		if result := PeriodText(entry, tt.label); result != tt.expected {
			t.Errorf("PeriodText(%q, %q, %q) = %q, expected %q", tt.start, tt.end, tt.label, result, tt.expected)
		}
	}
}
