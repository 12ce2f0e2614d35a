// Package writer renders a skill sheet record into a styled xlsx workbook.
package writer

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/ukaji3/skillsheet-go/pkg/skillsheet/duration"
	"github.com/ukaji3/skillsheet-go/pkg/skillsheet/layout"
	"github.com/ukaji3/skillsheet-go/pkg/skillsheet/models"
	"github.com/xuri/excelize/v2"
)

// Options configures rendering.
type Options struct {
	// FontFamily is the body and title font.
	FontFamily string
	// Now returns the date used for ongoing entries.
	Now func() time.Time
	// FillDuration computes the duration label of entries that have none.
	FillDuration bool
	// PrintSetup defines the print area and an A4 fit-to-width page layout.
	PrintSetup bool
}

// DefaultOptions returns the options used by the exporter.
func DefaultOptions() Options {
	return Options{
		FontFamily:   layout.FontFamily,
		Now:          time.Now,
		FillDuration: true,
		PrintSetup:   true,
	}
}

// Render builds the workbook in memory and returns its bytes.
// On failure no bytes are returned.
func Render(data models.SkillSheetData, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, data, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write builds the workbook and writes it to out.
func Write(out io.Writer, data models.SkillSheetData, opts Options) (err error) {
	if opts.FontFamily == "" {
		opts.FontFamily = layout.FontFamily
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	f := excelize.NewFile()
	defer f.Close()

	defer func() {
		if r := recover(); r != nil {
			err = &GenerationError{Section: "render", Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	w, err := newSheetWriter(f, opts)
	if err != nil {
		return err
	}

	w.title()
	w.basicInfo(data.BasicInfo)
	w.textSections(data.BasicInfo)
	w.tasks(data.PossibleTasks)
	w.career(data.CareerHistory)
	w.finish()
	if w.err != nil {
		return w.err
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return &GenerationError{Section: "output", Err: err}
	}
	if _, err := buf.WriteTo(out); err != nil {
		return &GenerationError{Section: "output", Err: err}
	}
	return nil
}

// sheetWriter advances a row cursor down the sheet. The first failure is
// kept in err and turns every later call into a no-op.
type sheetWriter struct {
	f       *excelize.File
	sheet   string
	opts    Options
	styles  styleSet
	row     int
	lastRow int
	section string
	err     error
}

func newSheetWriter(f *excelize.File, opts Options) (*sheetWriter, error) {
	fail := func(err error) error { return &GenerationError{Section: "setup", Err: err} }

	if err := f.SetSheetName(f.GetSheetName(0), layout.SheetName); err != nil {
		return nil, fail(err)
	}
	if err := f.SetDefaultFont(opts.FontFamily); err != nil {
		return nil, fail(err)
	}
	styles, err := newStyleSet(f, opts.FontFamily)
	if err != nil {
		return nil, fail(err)
	}

	return &sheetWriter{
		f:      f,
		sheet:  layout.SheetName,
		opts:   opts,
		styles: styles,
		row:    layout.FirstSectionRow,
	}, nil
}

func (w *sheetWriter) fail(err error) {
	if w.err == nil && err != nil {
		w.err = &GenerationError{Section: w.section, Err: err}
	}
}

func (w *sheetWriter) touch(row int) {
	if row > w.lastRow {
		w.lastRow = row
	}
}

// set writes a single cell.
func (w *sheetWriter) set(col string, row int, value any, style int) {
	w.span(col, col, row, value, style)
}

// span writes value to the first cell of col..endCol on row, merges the range
// when it covers more than one cell and styles every cell of it.
func (w *sheetWriter) span(col, endCol string, row int, value any, style int) {
	if w.err != nil {
		return
	}
	start := col + strconv.Itoa(row)
	end := endCol + strconv.Itoa(row)

	if value != nil {
		if err := w.f.SetCellValue(w.sheet, start, value); err != nil {
			w.fail(err)
			return
		}
	}
	if start != end {
		if err := w.f.MergeCell(w.sheet, start, end); err != nil {
			w.fail(err)
			return
		}
	}
	if err := w.f.SetCellStyle(w.sheet, start, end, style); err != nil {
		w.fail(err)
		return
	}
	w.touch(row)
}

func (w *sheetWriter) height(row int, h float64) {
	if w.err != nil {
		return
	}
	w.fail(w.f.SetRowHeight(w.sheet, row, h))
}

// band writes a full-width row.
func (w *sheetWriter) band(row int, value any, style int) {
	w.span(layout.FirstColumnName, layout.LastColumnName, row, value, style)
}

func (w *sheetWriter) title() {
	w.section = "title"
	w.span(layout.FirstColumnName, layout.LastColumnName, layout.TitleRow, layout.Title, w.styles.title)
}

func (w *sheetWriter) basicInfo(info models.BasicInfo) {
	w.section = "basic_info"
	values := map[layout.Field]string{
		layout.FieldName:            info.Name,
		layout.FieldGender:          info.Gender,
		layout.FieldKana:            info.Kana,
		layout.FieldAge:             withSuffix(info.Age, layout.AgeSuffix),
		layout.FieldNearestStation:  info.NearestStation,
		layout.FieldExperienceYears: withSuffix(info.ExperienceYears, layout.ExperienceSuffix),
	}

	for _, c := range layout.BasicInfoGrid {
		labelCol, row, err := excelize.SplitCellName(c.LabelCell)
		if err != nil {
			w.fail(err)
			return
		}
		startCol, _, err := excelize.SplitCellName(c.ValueStart)
		if err != nil {
			w.fail(err)
			return
		}
		endCol, _, err := excelize.SplitCellName(c.ValueEnd)
		if err != nil {
			w.fail(err)
			return
		}
		w.set(labelCol, row, c.Label, w.styles.label)
		w.span(startCol, endCol, row, values[c.Field], w.styles.value)
	}
}

func (w *sheetWriter) textSections(info models.BasicInfo) {
	w.section = "text"
	sections := []struct {
		label string
		text  string
	}{
		{layout.SectionSelfPR, info.SelfPR},
		{layout.SectionMainTechnologies, info.MainTechnologies},
		{layout.SectionQualifications, info.Qualifications},
	}

	for _, s := range sections {
		if strings.TrimSpace(s.text) == "" {
			continue
		}
		w.band(w.row, s.label, w.styles.label)
		w.row++
		w.band(w.row, s.text, w.styles.text)
		w.height(w.row, layout.TextRowHeight(s.text))
		w.row += 2
	}
}

func (w *sheetWriter) tasks(tasks models.PossibleTasks) {
	w.section = "tasks"
	w.band(w.row, layout.SectionTasks, w.styles.label)
	w.row++

	slots := tasks.Slots()
	for i, slot := range slots {
		row := w.row + i/layout.TaskGroups
		col := (i%layout.TaskGroups)*layout.TaskGroupWidth + layout.FirstColumn

		names := make([]string, 0, layout.TaskGroupWidth)
		for offset := 0; offset < layout.TaskGroupWidth; offset++ {
			name, err := excelize.ColumnNumberToName(col + offset)
			if err != nil {
				w.fail(err)
				return
			}
			names = append(names, name)
		}

		w.set(names[0], row, slot.Label, w.styles.center)
		w.set(names[1], row, slot.Value, w.styles.center)
		w.set(names[2], row, nil, w.styles.spacer)
	}

	rows := (len(slots) + layout.TaskGroups - 1) / layout.TaskGroups
	w.row += rows + layout.TaskTrailingRows
}

func (w *sheetWriter) career(history []models.CareerHistoryEntry) {
	if len(history) == 0 {
		return
	}
	w.section = "career"
	w.band(w.row, layout.SectionCareer, w.styles.label)
	w.row++

	for _, entry := range history {
		w.set(layout.CareerPeriodCol, w.row, layout.LabelPeriod, w.styles.label)
		w.span(layout.CareerOverviewStart, layout.CareerOverviewEnd, w.row, layout.LabelOverview, w.styles.label)
		w.span(layout.CareerPositionStart, layout.CareerPositionEnd, w.row, layout.LabelPosition, w.styles.label)
		w.span(layout.CareerScaleStart, layout.CareerScaleEnd, w.row, layout.LabelScale, w.styles.label)
		w.row++

		period := PeriodText(entry, w.durationLabel(entry))
		w.set(layout.CareerPeriodCol, w.row, period, w.styles.text)
		w.span(layout.CareerOverviewStart, layout.CareerOverviewEnd, w.row, entry.Overview, w.styles.text)
		w.span(layout.CareerPositionStart, layout.CareerPositionEnd, w.row, entry.Position, w.styles.text)
		w.span(layout.CareerScaleStart, layout.CareerScaleEnd, w.row, withSuffix(entry.ScaleMembers, layout.MembersSuffix), w.styles.scale)
		w.height(w.row, layout.RowHeight(maxLines(period, entry.Overview, entry.Position)))
		w.row++

		w.set(layout.CareerDetailLabelCol, w.row, layout.LabelResponsibilities, w.styles.label)
		w.span(layout.CareerDetailValueStart, layout.CareerDetailValueEnd, w.row, entry.Responsibilities, w.styles.text)
		w.height(w.row, layout.TextRowHeight(entry.Responsibilities))
		w.row++

		w.set(layout.CareerDetailLabelCol, w.row, layout.LabelTechEnvironment, w.styles.label)
		w.span(layout.CareerDetailValueStart, layout.CareerDetailValueEnd, w.row, entry.TechEnvironment, w.styles.text)
		if strings.TrimSpace(entry.TechEnvironment) != "" {
			w.height(w.row, layout.TextRowHeight(entry.TechEnvironment))
		}
		w.row += 2
	}
}

func (w *sheetWriter) durationLabel(entry models.CareerHistoryEntry) string {
	if label := strings.TrimSpace(entry.Duration); label != "" {
		return label
	}
	if !w.opts.FillDuration {
		return ""
	}
	return duration.ComputeAt(entry.StartDate, entry.EndDate, w.opts.Now())
}

func (w *sheetWriter) finish() {
	if w.err != nil {
		return
	}
	w.section = "columns"
	w.fail(w.f.SetColWidth(w.sheet, layout.FirstColumnName, layout.LastColumnName, layout.ColumnWidth))

	if !w.opts.PrintSetup || w.err != nil {
		return
	}
	w.section = "print"
	w.fail(w.f.SetDefinedName(&excelize.DefinedName{
		Name:     layout.PrintAreaName,
		RefersTo: fmt.Sprintf("'%s'!$%s$%d:$%s$%d", w.sheet, layout.FirstColumnName, layout.TitleRow, layout.LastColumnName, w.lastRow),
		Scope:    w.sheet,
	}))
	if w.err != nil {
		return
	}

	size, orientation, fitWidth, fitHeight := layout.PaperSizeA4, layout.OrientPortrait, 1, 0
	w.fail(w.f.SetPageLayout(w.sheet, &excelize.PageLayoutOptions{
		Size:        &size,
		Orientation: &orientation,
		FitToWidth:  &fitWidth,
		FitToHeight: &fitHeight,
	}))
	if w.err != nil {
		return
	}

	fit := true
	w.fail(w.f.SetSheetProps(w.sheet, &excelize.SheetPropsOptions{FitToPage: &fit}))
}
