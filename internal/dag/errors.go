package dag

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrCircularDependency indicates the graph contains at least one cycle.
	ErrCircularDependency = errors.New("circular dependency")

	// ErrDanglingReference indicates a reference to a node absent from the graph.
	ErrDanglingReference = errors.New("dangling reference")
)

// CircularDependencyError carries every node the sorter could not place, in
// input order. It names the whole stuck set, not a minimal cycle.
type CircularDependencyError struct {
	Unresolved []string
}

func (e *CircularDependencyError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: unresolved nodes [%s]", ErrCircularDependency.Error(), strings.Join(e.Unresolved, ", "))
}

func (e *CircularDependencyError) Unwrap() error { return ErrCircularDependency }

// DanglingReferenceError lists the references rejected by DanglingReject.
type DanglingReferenceError struct {
	Refs []DanglingRef
}

func (e *DanglingReferenceError) Error() string {
	if e == nil {
		return ""
	}
	parts := make([]string, len(e.Refs))
	for i, r := range e.Refs {
		parts[i] = r.String()
	}
	return fmt.Sprintf("%s: %s", ErrDanglingReference.Error(), strings.Join(parts, "; "))
}

func (e *DanglingReferenceError) Unwrap() error { return ErrDanglingReference }
