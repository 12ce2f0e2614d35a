package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"github.com/rs/zerolog/log"
	"github.com/valyala/fasthttp"

	"github.com/ukaji3/skillsheet-go/pkg/skillsheet"
	"github.com/ukaji3/skillsheet-go/pkg/skillsheet/models"
)

var (
	ErrFileRequired = errors.New("ファイルが送信されていません")
	ErrFileRead     = errors.New("ファイルの読み込みに失敗しました")
	ErrInvalidBody  = errors.New("リクエストボディが不正です")
	ErrValidation   = errors.New("入力内容に誤りがあります")

	errInternal = errors.New("内部エラーが発生しました")
)

const (
	contentTypeJSON = "application/json; charset=utf-8"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type okResponse struct {
	Status string `json:"status" example:"ok"`
	Msg    string `json:"msg" example:"OK"`
}

type errorResponse struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Fields  []models.FieldError `json:"fields,omitempty"`
}

func writeJSON(ctx *fasthttp.RequestCtx, statusCode int, body any) {
	ctx.Response.Header.Set("Content-Type", contentTypeJSON)
	ctx.SetStatusCode(statusCode)

	enc := json.NewEncoder(ctx)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(body)
}

func ok(ctx *fasthttp.RequestCtx, msg string) {
	writeJSON(ctx, fasthttp.StatusOK, okResponse{Status: "ok", Msg: msg})
}

func writeError(ctx *fasthttp.RequestCtx, httpStatus int, err error) {
	writeJSON(ctx, httpStatus, errorResponse{Code: fasthttp.StatusMessage(httpStatus), Message: err.Error()})
}

// writeServiceError maps core errors to responses. Client errors carry their
// message; anything else is logged and answered with a generic 500.
func writeServiceError(ctx *fasthttp.RequestCtx, err error) {
	var (
		formatErr     *skillsheet.InputFormatError
		validationErr *skillsheet.ValidationError
		generationErr *skillsheet.GenerationError
	)

	switch {
	case errors.As(err, &formatErr):
		writeError(ctx, fasthttp.StatusBadRequest, errors.New(formatErr.Message))
	case errors.As(err, &validationErr):
		writeJSON(ctx, fasthttp.StatusBadRequest, errorResponse{
			Code:    fasthttp.StatusMessage(fasthttp.StatusBadRequest),
			Message: ErrValidation.Error(),
			Fields:  validationErr.Fields,
		})
	case errors.As(err, &generationErr):
		log.Error().
			Err(err).
			Str("request_id", requestID(ctx)).
			Str("section", generationErr.Section).
			Msg("xlsx generation failed")
		writeError(ctx, fasthttp.StatusInternalServerError, errors.New(skillsheet.MsgGenerateError))
	default:
		log.Error().Err(err).Str("request_id", requestID(ctx)).Msg("request failed")
		writeError(ctx, fasthttp.StatusInternalServerError, errInternal)
	}
}

// writeAttachment sends body as a download. The UTF-8 name goes in filename*
// and fallback in filename.
func writeAttachment(ctx *fasthttp.RequestCtx, contentType, name, fallback string, body []byte) {
	if fallback == "" {
		fallback = name
	}
	ctx.Response.Header.Set("Content-Type", contentType)
	ctx.Response.Header.Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q; filename*=UTF-8''%s", fallback, url.PathEscape(name)))
	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.SetBody(body)
}
