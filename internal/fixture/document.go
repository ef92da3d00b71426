package fixture

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/specialistvlad/graphfix/internal/model"
	"github.com/tidwall/gjson"
)

// Kind classifies a canonical document.
type Kind int

const (
	// KindEmpty is a file holding only whitespace.
	KindEmpty Kind = iota
	// KindError is an expected-failure document: {"error": "..."}.
	KindError
	// KindGraph is a canonical node list.
	KindGraph
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindError:
		return "error"
	case KindGraph:
		return "graph"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Document is a decoded canonical document.
type Document struct {
	Kind  Kind
	Error string      // Set for KindError.
	Graph model.Graph // Set for KindGraph.
}

// DecodeDocument classifies and decodes the canonical document read from path.
// Graph nodes with fields outside the canonical form are rejected, since
// rewriting them would lose data.
func DecodeDocument(path string, data []byte) (Document, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return Document{Kind: KindEmpty}, nil
	}

	if !gjson.ValidBytes(trimmed) {
		return Document{}, &JSONParseError{Path: path, Err: syntaxError(trimmed)}
	}

	root := gjson.ParseBytes(trimmed)
	if root.IsObject() {
		if msg := root.Get("error"); msg.Exists() {
			return Document{Kind: KindError, Error: msg.String()}, nil
		}
	}

	var g model.Graph
	if err := decodeStrict(trimmed, &g); err != nil {
		return Document{}, &JSONParseError{Path: path, Err: err}
	}
	return Document{Kind: KindGraph, Graph: g}, nil
}

// syntaxError returns the decoder's description of malformed data.
func syntaxError(data []byte) error {
	if err := json.Unmarshal(data, new(json.RawMessage)); err != nil {
		return err
	}
	return errors.New("invalid JSON")
}

func decodeStrict(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if _, err := dec.Token(); err != io.EOF {
		return errors.New("unexpected data after top-level value")
	}
	return nil
}

// EncodeGraph serializes g as an indented JSON array with a trailing newline.
// A nil graph encodes as an empty array.
func EncodeGraph(g model.Graph) ([]byte, error) {
	if g == nil {
		g = model.Graph{}
	}
	return encode(g)
}

// EncodeError serializes an expected-failure document.
func EncodeError(msg string) ([]byte, error) {
	return encode(struct {
		Error string `json:"error"`
	}{Error: msg})
}

func encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
