// Package output serializes skill sheet records to JSON.
package output

import (
	"bytes"
	"encoding/json"
)

// ToJSON serializes v. HTML characters are kept as-is and the trailing
// newline added by the encoder is dropped.
func ToJSON(v any, pretty bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
