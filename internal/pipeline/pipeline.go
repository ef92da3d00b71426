package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/specialistvlad/graphfix/internal/ctxlog"
	"github.com/specialistvlad/graphfix/internal/dag"
	"github.com/specialistvlad/graphfix/internal/fixture"
	"github.com/specialistvlad/graphfix/internal/fsutil"
	"github.com/specialistvlad/graphfix/internal/schema"
	"golang.org/x/sync/errgroup"
)

// Options configures a Pipeline. Roots are taken as given.
type Options struct {
	FixtureRoot string
	// OutputRoot receives converted fixtures. Empty means FixtureRoot.
	OutputRoot string
	Layout     fixture.Layout
	Workers    int
	Dangling   dag.DanglingPolicy
}

// Pipeline runs batch operations over one fixture root.
type Pipeline struct {
	opts Options
}

// New returns a Pipeline. Missing options fall back to one worker, the
// default layout and the warn policy.
func New(opts Options) *Pipeline {
	if opts.OutputRoot == "" {
		opts.OutputRoot = opts.FixtureRoot
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.Layout == (fixture.Layout{}) {
		opts.Layout = fixture.DefaultLayout()
	}
	if opts.Dangling == "" {
		opts.Dangling = dag.DanglingWarn
	}
	return &Pipeline{opts: opts}
}

// Convert builds and writes the canonical document of every fixture.
func (p *Pipeline) Convert(ctx context.Context) (*Report, error) {
	return p.run(ctx, &Report{Command: CommandConvert}, p.convertCase)
}

// Fix reorders every canonical document that needs it. With check set nothing
// is written and fixtures that would change are reported as fixed.
func (p *Pipeline) Fix(ctx context.Context, check bool) (*Report, error) {
	return p.run(ctx, &Report{Command: CommandFix, Check: check}, func(ctx context.Context, c fixture.Case) Result {
		return p.fixCase(ctx, c, check)
	})
}

// Validate checks every fixture for completeness and document shape.
func (p *Pipeline) Validate(ctx context.Context) (*Report, error) {
	return p.run(ctx, &Report{Command: CommandValidate}, p.validateCase)
}

// run applies fn to every fixture with at most Workers in flight. It fails
// only when the fixtures cannot be listed or ctx is cancelled.
func (p *Pipeline) run(ctx context.Context, report *Report, fn func(context.Context, fixture.Case) Result) (*Report, error) {
	logger := ctxlog.FromContext(ctx)

	cases, err := fixture.Discover(p.opts.FixtureRoot, p.opts.Layout)
	if err != nil {
		return nil, err
	}
	logger.Info("Processing fixtures.", "command", report.Command, "root", p.opts.FixtureRoot, "count", len(cases), "workers", p.opts.Workers)

	results := make([]Result, len(cases))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.opts.Workers)
	for i, c := range cases {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			cctx := ctxlog.With(gctx, "fixture", c.Name)
			res := fn(cctx, c)
			res.Name = c.Name
			if res.Err != nil {
				ctxlog.FromContext(cctx).Error("Fixture failed.", "error", res.Err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report.Results = results
	logger.Info("Fixtures processed.", "command", report.Command, "failed", report.Failed())
	return report, nil
}

func skipped(detail string) Result {
	return Result{Status: StatusSkipped, Details: []string{detail}}
}

func failed(err error) Result {
	return Result{Status: StatusError, Details: []string{err.Error()}, Err: err}
}

// readOptional reads path, reporting a missing file as absent rather than as
// an error.
func readOptional(path string) (data []byte, found bool, err error) {
	data, err = os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, true, nil
}

// writeIfChanged writes data to path unless path already holds exactly data.
func writeIfChanged(path string, data []byte) (bool, error) {
	current, found, err := readOptional(path)
	if err != nil {
		return false, err
	}
	if found && bytes.Equal(current, data) {
		return false, nil
	}
	if err := fsutil.WriteFileAtomic(path, data, 0o644); err != nil {
		return false, err
	}
	return true, nil
}

// copyIfChanged copies src over dst unless dst already holds data, the
// current content of src.
func copyIfChanged(src, dst string, data []byte) (bool, error) {
	current, found, err := readOptional(dst)
	if err != nil {
		return false, err
	}
	if found && bytes.Equal(current, data) {
		return false, nil
	}
	if err := fsutil.CopyFile(src, dst); err != nil {
		return false, err
	}
	return true, nil
}

// checkDangling applies the configured policy and returns the detail lines to
// attach to the fixture's result.
func (p *Pipeline) checkDangling(ctx context.Context, g *dag.Graph) ([]string, error) {
	refs, err := g.CheckDangling(p.opts.Dangling)
	if err != nil {
		return nil, err
	}
	if p.opts.Dangling != dag.DanglingWarn {
		return nil, nil
	}

	logger := ctxlog.FromContext(ctx)
	details := make([]string, 0, len(refs))
	for _, ref := range refs {
		logger.Warn("Dangling reference.", "node", ref.NodeID, "socket", ref.Socket, "ref", ref.Ref.String())
		details = append(details, "dangling reference "+ref.String())
	}
	return details, nil
}

// invalidDocument fails a fixture whose canonical document breaks the
// structural checks, one detail line per violation.
func invalidDocument(errs []schema.ValidationError) Result {
	details := make([]string, len(errs))
	joined := make([]error, len(errs))
	for i, e := range errs {
		details[i] = e.Error()
		joined[i] = e
	}
	return Result{Status: StatusError, Details: details, Err: errors.Join(joined...)}
}
