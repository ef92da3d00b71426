// internal/joinid/types.go
package joinid

// Delimiter separates the node id from the socket name in the text form.
const Delimiter = "#"

// JoinID identifies one named output socket of one node.
type JoinID struct {
	NodeID string
	Socket string
}

// Split returns the node id and socket name of the reference.
func (j JoinID) Split() (nodeID, socket string) {
	return j.NodeID, j.Socket
}

// IsZero reports whether j is the empty JoinID.
func (j JoinID) IsZero() bool {
	return j.NodeID == "" && j.Socket == ""
}
