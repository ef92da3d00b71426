package dag

import "github.com/specialistvlad/graphfix/internal/model"

// Sort returns nodes ordered so that every node follows the nodes it
// references. References to ids outside the list are not dependencies.
//
// Ready nodes are released in input order and dependents in the order they
// were reached, so the result is fully determined by the input sequence. A
// graph that cannot be fully ordered yields a CircularDependencyError naming
// every node left unresolved.
func Sort(nodes model.Graph) (model.Graph, error) {
	g, err := New(nodes)
	if err != nil {
		return nil, err
	}
	return g.Sort()
}

// Sort orders the indexed nodes. See the package-level Sort.
func (g *Graph) Sort() (model.Graph, error) {
	inDegree := make([]int, len(g.nodes))
	for i, deps := range g.deps {
		inDegree[i] = len(deps)
	}

	queue := make([]int, 0, len(g.nodes))
	for i, degree := range inDegree {
		if degree == 0 {
			queue = append(queue, i)
		}
	}

	sorted := make(model.Graph, 0, len(g.nodes))
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		sorted = append(sorted, g.nodes[i])

		for _, dependent := range g.dependents[i] {
			inDegree[dependent]--
			if inDegree[dependent] == 0 {
				queue = append(queue, dependent)
			}
		}
	}

	if len(sorted) < len(g.nodes) {
		var unresolved []string
		for i, degree := range inDegree {
			if degree > 0 {
				unresolved = append(unresolved, g.nodes[i].ID)
			}
		}
		return nil, &CircularDependencyError{Unresolved: unresolved}
	}
	return sorted, nil
}
