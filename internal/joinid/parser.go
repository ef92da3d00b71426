// internal/joinid/parser.go
package joinid

import (
	"encoding/json"
	"fmt"
	"strings"
)

// New builds a JoinID from its components. Empty components and components
// containing the delimiter are rejected.
func New(nodeID, socket string) (JoinID, error) {
	if err := checkComponent(nodeID, "node id"); err != nil {
		return JoinID{}, err
	}
	if err := checkComponent(socket, "socket"); err != nil {
		return JoinID{}, err
	}
	return JoinID{NodeID: nodeID, Socket: socket}, nil
}

// MustNew is like New but panics on invalid input. Intended for tests and
// literals.
func MustNew(nodeID, socket string) JoinID {
	id, err := New(nodeID, socket)
	if err != nil {
		panic(err)
	}
	return id
}

// Parse creates a JoinID from its canonical `<node>#<socket>` text form.
func Parse(raw string) (JoinID, error) {
	if raw == "" {
		return JoinID{}, &Error{Value: raw, Msg: "cannot be empty"}
	}
	if n := strings.Count(raw, Delimiter); n != 1 {
		return JoinID{}, &Error{Value: raw, Msg: fmt.Sprintf("expected exactly one %q delimiter, found %d", Delimiter, n)}
	}
	nodeID, socket, _ := strings.Cut(raw, Delimiter)
	return New(nodeID, socket)
}

func checkComponent(value, what string) error {
	if value == "" {
		return &Error{Value: value, Msg: what + " cannot be empty"}
	}
	if strings.Contains(value, Delimiter) {
		return &Error{Value: value, Msg: fmt.Sprintf("%s must not contain %q", what, Delimiter)}
	}
	return nil
}

// String serializes the JoinID into its canonical text form.
func (j JoinID) String() string {
	return j.NodeID + Delimiter + j.Socket
}

// MarshalJSON encodes the JoinID as its text form. The zero value and values
// with invalid components are refused so they never reach a fixture.
func (j JoinID) MarshalJSON() ([]byte, error) {
	if _, err := New(j.NodeID, j.Socket); err != nil {
		return nil, err
	}
	return json.Marshal(j.String())
}

// UnmarshalJSON decodes a JSON string in text form.
func (j *JoinID) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("join id must be a JSON string: %w", err)
	}
	parsed, err := Parse(raw)
	if err != nil {
		return err
	}
	*j = parsed
	return nil
}
