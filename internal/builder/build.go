package builder

import (
	"context"
	"fmt"

	"github.com/specialistvlad/graphfix/internal/ctxlog"
	"github.com/specialistvlad/graphfix/internal/joinid"
	"github.com/specialistvlad/graphfix/internal/model"
)

// Build constructs the canonical node list for an editor-format document. It
// does not modify doc.
func Build(ctx context.Context, doc model.EditorDocument) (model.Graph, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Build: Starting graph construction.", "nodes", len(doc.Nodes), "edges", len(doc.Edges))

	// First pass: reject incomplete or ambiguous input before linking anything.
	if err := validateDocument(doc); err != nil {
		return nil, err
	}
	logger.Debug("Build: Document validation passed.")

	// Second pass: fold edges into per-target inputs.
	inputs, err := linkEdges(doc.Edges)
	if err != nil {
		return nil, err
	}
	logger.Debug("Build: Edge linking complete.", "targets", len(inputs))

	// Third pass: emit canonical nodes in document order.
	graph := make(model.Graph, 0, len(doc.Nodes))
	for _, raw := range doc.Nodes {
		graph = append(graph, canonicalize(raw, inputs[raw.ID]))
	}

	logger.Debug("Build: Graph construction successful.", "node_count", len(graph))
	return graph, nil
}

// linkEdges groups edge references by target node id. The returned inputs keep
// socket and reference order as the edges were supplied.
func linkEdges(edges []model.RawEdge) (map[string]*model.Inputs, error) {
	inputs := make(map[string]*model.Inputs)
	for i, edge := range edges {
		ref, err := joinid.New(edge.Source, edge.SourceHandle)
		if err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
		target, ok := inputs[edge.Target]
		if !ok {
			target = &model.Inputs{}
			inputs[edge.Target] = target
		}
		target.Append(edge.TargetHandle, ref)
	}
	return inputs, nil
}

func canonicalize(raw model.RawNode, inputs *model.Inputs) model.CanonicalNode {
	n := model.CanonicalNode{
		ID:      raw.ID,
		Type:    raw.Type,
		Options: raw.Params.Clone(),
	}
	if inputs != nil {
		n.Inputs = *inputs
	}
	if raw.Timeframe != nil {
		n.Timeframe = append([]byte(nil), raw.Timeframe...)
	}
	if raw.Session != nil {
		n.Session = append([]byte(nil), raw.Session...)
	}
	return n
}
