package writer

import (
	"github.com/ukaji3/skillsheet-go/pkg/skillsheet/layout"
	"github.com/xuri/excelize/v2"
)

// styleSet holds the style ids registered in the workbook.
type styleSet struct {
	title  int
	label  int
	value  int
	text   int
	center int
	scale  int
	spacer int
}

func thinBorder() []excelize.Border {
	borders := make([]excelize.Border, 0, 4)
	for _, side := range []string{"left", "right", "top", "bottom"} {
		borders = append(borders, excelize.Border{Type: side, Color: layout.BorderColor, Style: 1})
	}
	return borders
}

func newStyleSet(f *excelize.File, family string) (styleSet, error) {
	body := func(bold bool) *excelize.Font {
		return &excelize.Font{Family: family, Size: layout.BodyFontSize, Bold: bold}
	}
	fill := excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{layout.HeaderFill}}
	topWrap := &excelize.Alignment{Vertical: "top", WrapText: true}

	var s styleSet
	defs := []struct {
		id    *int
		style *excelize.Style
	}{
		{&s.title, &excelize.Style{
			Font:      &excelize.Font{Family: family, Size: layout.TitleFontSize, Bold: true},
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		}},
		{&s.label, &excelize.Style{Font: body(true), Fill: fill, Border: thinBorder()}},
		{&s.value, &excelize.Style{Font: body(false), Border: thinBorder()}},
		{&s.text, &excelize.Style{Font: body(false), Border: thinBorder(), Alignment: topWrap}},
		{&s.center, &excelize.Style{Font: body(false), Border: thinBorder(), Alignment: &excelize.Alignment{Horizontal: "center"}}},
		{&s.scale, &excelize.Style{Font: body(false), Border: thinBorder(), Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "top"}}},
		{&s.spacer, &excelize.Style{Border: thinBorder()}},
	}

	for _, d := range defs {
		id, err := f.NewStyle(d.style)
		if err != nil {
			return styleSet{}, err
		}
		*d.id = id
	}
	return s, nil
}
