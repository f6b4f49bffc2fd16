package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
)

const (
	fenceOpen  = "```json"
	fenceClose = "```"
)

// ErrNotJSON is returned by UnwrapJSON when the remaining text is not a JSON document
var ErrNotJSON = errors.New("provider output is not valid JSON")

// StripFence trims surrounding whitespace, then removes at most one leading "```json"
// and at most one trailing "```". Fences anywhere else are left in place.
func StripFence(text string) string {
	s := strings.TrimSpace(text)
	s = strings.TrimPrefix(s, fenceOpen)
	s = strings.TrimSuffix(s, fenceClose)
	return s
}

// UnwrapJSON normalizes provider text with StripFence and returns the JSON document it holds,
// compacted. Empty text, prose and fences in unexpected places all yield ErrNotJSON.
func UnwrapJSON(text string) (json.RawMessage, error) {
	stripped := []byte(StripFence(text))
	if !json.Valid(stripped) {
		return nil, ErrNotJSON
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, stripped); err != nil {
		return nil, err
	}
	return json.RawMessage(buf.Bytes()), nil
}
