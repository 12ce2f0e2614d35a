// Package parser reads skill sheet fields back from an exported workbook.
package parser

import (
	"github.com/xuri/excelize/v2"
)

// cellGrid is a snapshot of a sheet's formatted cell text.
type cellGrid [][]string

// loadGrid reads every row of sheetName. Merged ranges keep their text in
// the top-left cell only.
func loadGrid(f *excelize.File, sheetName string) (cellGrid, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}
	return cellGrid(rows), nil
}

// text returns the text at a cell reference such as "D2", or "" when the
// cell is empty, outside the used range, or the reference is malformed.
func (g cellGrid) text(cell string) string {
	col, row, err := excelize.CellNameToCoordinates(cell)
	if err != nil {
		return ""
	}
	if row-1 >= len(g) {
		return ""
	}
	values := g[row-1]
	if col-1 >= len(values) {
		return ""
	}
	return values[col-1]
}

// sheetFor picks the sheet holding the skill sheet: the named one when present,
// otherwise the active sheet.
func sheetFor(f *excelize.File, name string) string {
	for _, s := range f.GetSheetList() {
		if s == name {
			return s
		}
	}
	return f.GetSheetName(f.GetActiveSheetIndex())
}
