package dag

import (
	"github.com/specialistvlad/graphfix/internal/joinid"
	"github.com/specialistvlad/graphfix/internal/model"
)

// Graph is the dependency view of a canonical node list. Nodes are addressed
// by their position in the list, which is what makes tie-breaking by input
// order possible.
type Graph struct {
	nodes     model.Graph
	positions map[string]int
	// deps holds, per node, the positions it depends on: one entry per
	// reference, so two sockets fed by the same node count twice.
	deps [][]int
	// dependents is the reverse of deps, in the order references were reached.
	dependents [][]int
	dangling   []DanglingRef
}

// New indexes nodes. Duplicate node ids are rejected.
func New(nodes model.Graph) (*Graph, error) {
	positions, err := nodes.Positions()
	if err != nil {
		return nil, err
	}

	g := &Graph{
		nodes:      nodes,
		positions:  positions,
		deps:       make([][]int, len(nodes)),
		dependents: make([][]int, len(nodes)),
	}

	for i, n := range nodes {
		n.Inputs.Each(func(socket string, ref joinid.JoinID) {
			j, ok := positions[ref.NodeID]
			if !ok {
				g.dangling = append(g.dangling, DanglingRef{NodeID: n.ID, Socket: socket, Ref: ref})
				return
			}
			g.deps[i] = append(g.deps[i], j)
			g.dependents[j] = append(g.dependents[j], i)
		})
	}
	return g, nil
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Dangling returns references to ids absent from the graph, in node order.
func (g *Graph) Dangling() []DanglingRef {
	return g.dangling
}
