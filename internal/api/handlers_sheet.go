package api

import (
	"bytes"
	"fmt"
	"io"

	"github.com/valyala/fasthttp"

	"github.com/ukaji3/skillsheet-go/pkg/skillsheet"
	"github.com/ukaji3/skillsheet-go/pkg/skillsheet/models"
	"github.com/ukaji3/skillsheet-go/pkg/skillsheet/output"
)

const (
	uploadField      = "file"
	exportNameLayout = "skillsheet_20060102_1504.json"
)

// @Summary Import a JSON snapshot
// @Tags    Import
// @Accept  multipart/form-data
// @Produce json
// @Param   file formData file true "JSON snapshot (.json)"
// @Success 200 {object} object "the uploaded document, unchanged"
// @Failure 400 {object} errorResponse "JSONファイルのみ対応しています / 無効なJSONファイルです。"
// @Router  /api/upload [post]
func (s *Service) uploadJSON(ctx *fasthttp.RequestCtx) {
	data, err := readUpload(ctx, skillsheet.ExtJSON)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}

	doc, err := s.exporter.DecodeJSON(data)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}

	ctx.Response.Header.Set("Content-Type", contentTypeJSON)
	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.SetBody(doc)
}

// @Summary Import an exported workbook
// @Tags    Import
// @Accept  multipart/form-data
// @Produce json
// @Param   file formData file true "workbook produced by /api/generate-xlsx (.xlsx)"
// @Success 200 {object} models.PartialSkillSheet
// @Failure 400 {object} errorResponse "XLSXファイルのみ対応しています / ファイルの解析に失敗しました"
// @Router  /api/import-xlsx [post]
func (s *Service) importXLSX(ctx *fasthttp.RequestCtx) {
	data, err := readUpload(ctx, skillsheet.ExtXLSX)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}

	sheet, err := s.exporter.Extract(bytes.NewReader(data))
	if err != nil {
		writeServiceError(ctx, err)
		return
	}

	writeJSON(ctx, fasthttp.StatusOK, sheet)
}

// @Summary Validate a record and echo it back
// @Tags    Export
// @Accept  json
// @Produce json
// @Param   request body models.SkillSheetData true "skill sheet"
// @Success 200 {object} models.SkillSheetData
// @Failure 400 {object} errorResponse
// @Router  /api/preview [post]
func (s *Service) preview(ctx *fasthttp.RequestCtx) {
	data, decoded := decodeRecord(ctx)
	if !decoded {
		return
	}

	sheet, err := s.exporter.Preview(data)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}

	writeJSON(ctx, fasthttp.StatusOK, sheet)
}

// @Summary Generate the xlsx workbook
// @Tags    Export
// @Accept  json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param   request body models.SkillSheetData true "skill sheet"
// @Success 200 {file} file
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse "XLSXファイルの生成に失敗しました"
// @Router  /api/generate-xlsx [post]
func (s *Service) generateXLSX(ctx *fasthttp.RequestCtx) {
	data, decoded := decodeRecord(ctx)
	if !decoded {
		return
	}

	body, err := s.exporter.Render(data)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}

	writeAttachment(ctx, contentTypeXLSX, s.xlsxFileName, s.xlsxFallbackName, body)
}

// @Summary Download the record as a JSON snapshot
// @Tags    Export
// @Accept  json
// @Produce json
// @Param   request body models.SkillSheetData true "skill sheet"
// @Success 200 {file} file
// @Failure 400 {object} errorResponse
// @Router  /api/export-json [post]
func (s *Service) exportJSON(ctx *fasthttp.RequestCtx) {
	data, decoded := decodeRecord(ctx)
	if !decoded {
		return
	}

	sheet, err := s.exporter.Preview(data)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}

	body, err := output.ToJSON(sheet, true)
	if err != nil {
		writeServiceError(ctx, fmt.Errorf("output.ToJSON: %w", err))
		return
	}

	name := s.clock().Format(exportNameLayout)
	writeAttachment(ctx, contentTypeJSON, name, name, body)
}

// readUpload returns the multipart file after checking its extension.
func readUpload(ctx *fasthttp.RequestCtx, ext string) ([]byte, error) {
	header, err := ctx.FormFile(uploadField)
	if err != nil {
		return nil, skillsheet.NewInputFormatError(ErrFileRequired.Error(), err)
	}
	if err := skillsheet.CheckFileName(header.Filename, ext); err != nil {
		return nil, err
	}

	file, err := header.Open()
	if err != nil {
		return nil, skillsheet.NewInputFormatError(ErrFileRead.Error(), err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, skillsheet.NewInputFormatError(ErrFileRead.Error(), err)
	}
	return data, nil
}

func decodeRecord(ctx *fasthttp.RequestCtx) (models.SkillSheetData, bool) {
	data, err := skillsheet.DecodeRecord(ctx.PostBody())
	if err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, ErrInvalidBody)
		return models.SkillSheetData{}, false
	}
	return data, true
}
