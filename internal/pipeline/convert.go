package pipeline

import (
	"context"
	"fmt"

	"github.com/specialistvlad/graphfix/internal/builder"
	"github.com/specialistvlad/graphfix/internal/ctxlog"
	"github.com/specialistvlad/graphfix/internal/dag"
	"github.com/specialistvlad/graphfix/internal/fixture"
)

// convertCase writes the canonical document and the script of one fixture
// under the output root.
func (p *Pipeline) convertCase(ctx context.Context, c fixture.Case) Result {
	logger := ctxlog.FromContext(ctx)

	input, found, err := readOptional(c.InputPath())
	if err != nil {
		return failed(err)
	}
	if !found {
		return skipped("missing " + c.Layout.InputName)
	}
	source, found, err := readOptional(c.SourcePath())
	if err != nil {
		return failed(err)
	}
	if !found {
		return skipped("missing " + c.Layout.SourceName)
	}

	src, err := fixture.DecodeSource(c.SourcePath(), source)
	if err != nil {
		return failed(err)
	}

	var (
		encoded []byte
		details []string
	)
	if src.IsError {
		encoded, err = fixture.EncodeError(src.Error)
		if err != nil {
			return failed(err)
		}
		details = append(details, "expected failure: "+src.Error)
	} else {
		g, err := builder.Build(ctx, src.Doc)
		if err != nil {
			return failed(err)
		}
		dg, err := dag.New(g)
		if err != nil {
			return failed(err)
		}
		dangling, err := p.checkDangling(ctx, dg)
		if err != nil {
			return failed(err)
		}
		details = append(details, dangling...)

		sorted, err := dg.Sort()
		if err != nil {
			return failed(err)
		}
		if dag.NeedsReorder(g) {
			g = sorted
			details = append(details, "reordered nodes topologically")
		}
		if encoded, err = fixture.EncodeGraph(g); err != nil {
			return failed(err)
		}
		details = append(details, fmt.Sprintf("%d nodes", len(g)))
	}

	out := c.Under(p.opts.OutputRoot)
	inputChanged, err := copyIfChanged(c.InputPath(), out.InputPath(), input)
	if err != nil {
		return failed(err)
	}
	expectedChanged, err := writeIfChanged(out.ExpectedPath(), encoded)
	if err != nil {
		return failed(err)
	}

	if !inputChanged && !expectedChanged {
		logger.Debug("Fixture already converted.")
		return Result{Status: StatusUnchanged, Details: details}
	}
	logger.Debug("Fixture converted.", "path", out.ExpectedPath())
	return Result{Status: StatusFixed, Details: append(details, "wrote "+out.ExpectedPath())}
}
