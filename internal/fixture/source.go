package fixture

import (
	"bytes"
	"encoding/json"

	"github.com/specialistvlad/graphfix/internal/model"
)

// ErrorPrefix marks a source that expects compilation to fail.
const ErrorPrefix = "ERROR:"

// Source is a decoded editor-format source.
type Source struct {
	// Error is the expected failure message when IsError is set.
	Error   string
	IsError bool
	Doc     model.EditorDocument
}

// DecodeSource decodes the editor-format source read from path. A source
// starting with ErrorPrefix yields an error source whose message is the
// trimmed remainder.
func DecodeSource(path string, data []byte) (Source, error) {
	trimmed := bytes.TrimSpace(data)
	if rest, ok := bytes.CutPrefix(trimmed, []byte(ErrorPrefix)); ok {
		return Source{IsError: true, Error: string(bytes.TrimSpace(rest))}, nil
	}

	var doc model.EditorDocument
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return Source{}, &JSONParseError{Path: path, Err: err}
	}
	return Source{Doc: doc}, nil
}
