package skillsheet

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/skillsheet-go/pkg/skillsheet/models"
	"github.com/ukaji3/skillsheet-go/pkg/skillsheet/parser"
	"github.com/ukaji3/skillsheet-go/pkg/skillsheet/writer"
	"github.com/xuri/excelize/v2"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// File extensions accepted by CheckFileName.
const (
	ExtXLSX = ".xlsx"
	ExtJSON = ".json"
)

var utf8BOM = []byte("\xef\xbb\xbf")

// Render validates data and builds the xlsx workbook.
// It returns a *ValidationError or a *GenerationError on failure.
func Render(data models.SkillSheetData, opts Options) ([]byte, error) {
	if err := data.Validate(); err != nil {
		return nil, err
	}
	return writer.Render(data, opts.writerOptions())
}

// Extract reads the basic info of a workbook produced by Render.
func Extract(r io.Reader) (*models.PartialSkillSheet, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, NewInputFormatError(MsgInvalidXLSX, fmt.Errorf("%w: %v", ErrInvalidFormat, err))
	}
	defer f.Close()

	data, err := parser.ExtractSkillSheet(f)
	if err != nil {
		return nil, NewInputFormatError(MsgInvalidXLSX, fmt.Errorf("%w: %v", ErrInvalidFormat, err))
	}
	return data, nil
}

// ExtractFile is Extract for a file on disk.
func ExtractFile(path string) (*models.PartialSkillSheet, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}
	defer file.Close()

	return Extract(file)
}

// Preview validates data and returns it unchanged.
func Preview(data models.SkillSheetData) (models.SkillSheetData, error) {
	if err := data.Validate(); err != nil {
		return models.SkillSheetData{}, err
	}
	return data, nil
}

// DecodeJSON checks that data is a JSON document and returns it verbatim.
// A leading UTF-8 byte order mark is dropped.
func DecodeJSON(data []byte) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(bytes.TrimPrefix(data, utf8BOM))
	if !json.Valid(trimmed) {
		return nil, NewInputFormatError(MsgInvalidJSON, ErrInvalidJSON)
	}

	out := make(json.RawMessage, len(trimmed))
	copy(out, trimmed)
	return out, nil
}

// DecodeRecord decodes a SkillSheetData payload. Missing capability slots
// default to models.TaskNotApplicable. The record is not validated.
func DecodeRecord(data []byte) (models.SkillSheetData, error) {
	var record models.SkillSheetData
	if err := json.Unmarshal(bytes.TrimPrefix(data, utf8BOM), &record); err != nil {
		return models.SkillSheetData{}, NewInputFormatError(MsgInvalidJSON, fmt.Errorf("%w: %v", ErrInvalidJSON, err))
	}
	return record, nil
}

// CheckFileName rejects names without the wanted extension (ExtXLSX or ExtJSON).
func CheckFileName(name, ext string) error {
	if strings.EqualFold(filepath.Ext(name), ext) {
		return nil
	}

	msg := MsgXLSXOnly
	if ext == ExtJSON {
		msg = MsgJSONOnly
	}
	return NewInputFormatError(msg, fmt.Errorf("%w: %q", ErrUnsupportedFile, name))
}

// Exporter binds Options to the package operations.
type Exporter struct {
	opts Options
}

// NewExporter creates an Exporter.
func NewExporter(opts Options) *Exporter {
	return &Exporter{opts: opts}
}

// Render is the package Render with the exporter's options.
func (e *Exporter) Render(data models.SkillSheetData) ([]byte, error) {
	return Render(data, e.opts)
}

// Extract is the package Extract.
func (e *Exporter) Extract(r io.Reader) (*models.PartialSkillSheet, error) {
	return Extract(r)
}

// Preview is the package Preview.
func (e *Exporter) Preview(data models.SkillSheetData) (models.SkillSheetData, error) {
	return Preview(data)
}

// DecodeJSON is the package DecodeJSON.
func (e *Exporter) DecodeJSON(data []byte) (json.RawMessage, error) {
	return DecodeJSON(data)
}
