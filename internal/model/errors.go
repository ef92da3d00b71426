// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package model

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingField indicates a raw node or edge lacks a required field.
	ErrMissingField = errors.New("missing field")

	// ErrDuplicateID indicates two nodes share an id.
	ErrDuplicateID = errors.New("duplicate node id")
)

// MissingFieldError names the element and field that is absent.
type MissingFieldError struct {
	Kind  string // "node" or "edge"
	Index int
	Field string
}

func (e *MissingFieldError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s %d lacks %q", ErrMissingField.Error(), e.Kind, e.Index, e.Field)
}

func (e *MissingFieldError) Unwrap() error { return ErrMissingField }

// DuplicateIDError reports the positions of two nodes sharing an id.
type DuplicateIDError struct {
	ID     string
	First  int
	Second int
}

func (e *DuplicateIDError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %q at positions %d and %d", ErrDuplicateID.Error(), e.ID, e.First, e.Second)
}

func (e *DuplicateIDError) Unwrap() error { return ErrDuplicateID }
