package pipeline

import (
	"context"
	"fmt"

	"github.com/specialistvlad/graphfix/internal/ctxlog"
	"github.com/specialistvlad/graphfix/internal/dag"
	"github.com/specialistvlad/graphfix/internal/fixture"
	"github.com/specialistvlad/graphfix/internal/fsutil"
	"github.com/specialistvlad/graphfix/internal/schema"
)

// fixCase reorders one canonical document in place when it is out of order.
func (p *Pipeline) fixCase(ctx context.Context, c fixture.Case, check bool) Result {
	logger := ctxlog.FromContext(ctx)
	path := c.ExpectedPath()

	data, found, err := readOptional(path)
	if err != nil {
		return failed(err)
	}
	if !found {
		return skipped("missing " + c.Layout.ExpectedPath)
	}

	doc, err := fixture.DecodeDocument(path, data)
	if err != nil {
		return failed(err)
	}
	switch doc.Kind {
	case fixture.KindEmpty:
		return skipped("empty file")
	case fixture.KindError:
		return skipped("error case")
	}

	// Nothing is rewritten unless the whole document passes the structural
	// checks that validate applies.
	if errs := schema.Validate(data); len(errs) > 0 {
		return invalidDocument(errs)
	}

	g, err := dag.New(doc.Graph)
	if err != nil {
		return failed(err)
	}
	details, err := p.checkDangling(ctx, g)
	if err != nil {
		return failed(err)
	}

	// Sorting doubles as the cycle check; a self-reference never makes a
	// graph need reordering.
	sorted, err := g.Sort()
	if err != nil {
		return failed(err)
	}
	if !dag.NeedsReorder(doc.Graph) {
		return Result{Status: StatusUnchanged, Details: append(details, "already sorted")}
	}
	if check {
		return Result{Status: StatusFixed, Details: append(details, fmt.Sprintf("would reorder %d nodes", len(sorted)))}
	}

	out, err := fixture.EncodeGraph(sorted)
	if err != nil {
		return failed(err)
	}
	if err := fsutil.WriteFileAtomic(path, out, 0o644); err != nil {
		return failed(err)
	}
	logger.Debug("Fixture reordered.", "path", path, "nodes", len(sorted))
	return Result{Status: StatusFixed, Details: append(details, fmt.Sprintf("reordered %d nodes", len(sorted)))}
}
