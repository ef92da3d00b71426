// internal/joinid/errors.go
package joinid

import (
	"errors"
	"fmt"
)

// ErrInvalid is the sentinel wrapped by every join identifier error.
var ErrInvalid = errors.New("invalid join id")

// Error describes why a join identifier or one of its components was rejected.
type Error struct {
	Value string // The offending text or component.
	Msg   string
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s %q: %s", ErrInvalid.Error(), e.Value, e.Msg)
}

func (e *Error) Unwrap() error { return ErrInvalid }
