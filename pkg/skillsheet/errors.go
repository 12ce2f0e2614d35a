package skillsheet

import (
	"errors"
	"fmt"

	"github.com/ukaji3/skillsheet-go/pkg/skillsheet/models"
	"github.com/ukaji3/skillsheet-go/pkg/skillsheet/writer"
)

// ErrUnsupportedFile indicates an upload with the wrong file extension.
var ErrUnsupportedFile = errors.New("unsupported file type")

// ErrInvalidFormat indicates the input is not a valid xlsx workbook.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrInvalidJSON indicates the input is not valid JSON.
var ErrInvalidJSON = errors.New("invalid json")

// Client-facing messages of InputFormatError.
const (
	MsgJSONOnly      = "JSONファイルのみ対応しています"
	MsgXLSXOnly      = "XLSXファイルのみ対応しています"
	MsgInvalidJSON   = "無効なJSONファイルです。"
	MsgInvalidXLSX   = "ファイルの解析に失敗しました"
	MsgGenerateError = "XLSXファイルの生成に失敗しました"
)

// InputFormatError represents an upload that cannot be read: a wrong file
// extension or an unparseable document.
type InputFormatError struct {
	// Message is safe to show to the client.
	Message string
	Err     error
}

func (e *InputFormatError) Error() string {
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *InputFormatError) Unwrap() error {
	return e.Err
}

// NewInputFormatError creates a new InputFormatError.
func NewInputFormatError(message string, err error) *InputFormatError {
	return &InputFormatError{
		Message: message,
		Err:     err,
	}
}

// GenerationError represents a failure while building the workbook.
type GenerationError = writer.GenerationError

// ValidationError lists the invalid fields of a record.
type ValidationError = models.ValidationError
