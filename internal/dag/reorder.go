package dag

import "github.com/specialistvlad/graphfix/internal/model"

// NeedsReorder reports whether some node references a node placed after it.
// References to ids absent from the list are never forward. With duplicate
// ids the first occurrence counts.
func NeedsReorder(nodes model.Graph) bool {
	first := make(map[string]int, len(nodes))
	for i, n := range nodes {
		if _, seen := first[n.ID]; !seen {
			first[n.ID] = i
		}
	}

	for i, n := range nodes {
		for _, ref := range n.Inputs.Refs() {
			if j, ok := first[ref.NodeID]; ok && j > i {
				return true
			}
		}
	}
	return false
}
