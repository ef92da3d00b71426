package dag

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/graphfix/internal/joinid"
)

// DanglingPolicy decides what happens to references whose node id is absent
// from the graph.
type DanglingPolicy string

const (
	// DanglingIgnore accepts dangling references silently.
	DanglingIgnore DanglingPolicy = "ignore"
	// DanglingWarn accepts dangling references and lets the caller report them.
	DanglingWarn DanglingPolicy = "warn"
	// DanglingReject fails the graph with a DanglingReferenceError.
	DanglingReject DanglingPolicy = "reject"
)

// ParseDanglingPolicy converts a configuration value into a DanglingPolicy.
func ParseDanglingPolicy(s string) (DanglingPolicy, error) {
	switch p := DanglingPolicy(strings.ToLower(s)); p {
	case DanglingIgnore, DanglingWarn, DanglingReject:
		return p, nil
	default:
		return "", fmt.Errorf("invalid dangling policy %q: must be 'ignore', 'warn' or 'reject'", s)
	}
}

// DanglingRef is one reference to a node id absent from the graph.
type DanglingRef struct {
	NodeID string // The referencing node.
	Socket string
	Ref    joinid.JoinID
}

func (d DanglingRef) String() string {
	return fmt.Sprintf("%s.%s -> %s", d.NodeID, d.Socket, d.Ref)
}

// CheckDangling applies policy to the dangling references of the graph. It
// returns the references found; under DanglingReject a non-empty result also
// yields a DanglingReferenceError.
func (g *Graph) CheckDangling(policy DanglingPolicy) ([]DanglingRef, error) {
	refs := g.Dangling()
	if policy == DanglingReject && len(refs) > 0 {
		return refs, &DanglingReferenceError{Refs: refs}
	}
	return refs, nil
}
