package tools

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// renderJSON pretty-prints a payload with two-space indentation. HTML is
// left unescaped so recipe text and URLs read naturally.
func renderJSON(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("failed to prepare response: %w", err)
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
