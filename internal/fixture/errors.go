package fixture

import (
	"errors"
	"fmt"
)

// ErrJSONParse indicates fixture content that is not well-formed.
var ErrJSONParse = errors.New("json parse error")

// JSONParseError wraps the decoder failure for one fixture file.
type JSONParseError struct {
	Path string
	Err  error
}

func (e *JSONParseError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s: %v", ErrJSONParse.Error(), e.Path, e.Err)
}

// Unwrap exposes both the sentinel and the decoder error.
func (e *JSONParseError) Unwrap() []error { return []error{ErrJSONParse, e.Err} }
