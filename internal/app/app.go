package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/graphfix/internal/config"
	"github.com/specialistvlad/graphfix/internal/ctxlog"
	"github.com/specialistvlad/graphfix/internal/pipeline"
	"github.com/specialistvlad/graphfix/internal/schema"
)

// App encapsulates the application's dependencies and configuration.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *config.Config
	pipeline *pipeline.Pipeline
}

// NewApp is the constructor for the main application. Reports go to outW and
// logs to logW. The configuration is validated first.
func NewApp(outW, logW io.Writer, cfg *config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	policy, err := cfg.DanglingPolicy()
	if err != nil {
		return nil, err
	}

	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.", "level", cfg.LogLevel, "format", cfg.LogFormat)

	p := pipeline.New(pipeline.Options{
		FixtureRoot: cfg.FixtureRoot,
		OutputRoot:  cfg.Output(),
		Layout:      cfg.Layout(),
		Workers:     cfg.Workers,
		Dangling:    policy,
	})

	return &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		pipeline: p,
	}, nil
}

// Logger returns the application's logger. This is primarily for testing.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Run executes a batch command and prints its report. check applies to fix
// only. The report is returned so the caller can choose an exit status.
func (a *App) Run(ctx context.Context, cmd pipeline.Command, check bool) (*pipeline.Report, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "command", cmd)

	var (
		report *pipeline.Report
		err    error
	)
	switch cmd {
	case pipeline.CommandConvert:
		report, err = a.pipeline.Convert(ctx)
	case pipeline.CommandFix:
		report, err = a.pipeline.Fix(ctx, check)
	case pipeline.CommandValidate:
		report, err = a.pipeline.Validate(ctx)
	default:
		return nil, fmt.Errorf("unknown command %q", cmd)
	}
	if err != nil {
		return nil, fmt.Errorf("%s failed: %w", cmd, err)
	}

	if err := pipeline.Print(a.outW, report); err != nil {
		return nil, fmt.Errorf("failed to print report: %w", err)
	}
	a.logger.Debug("App.Run method finished.", "command", cmd, "failed", report.Failed())
	return report, nil
}

// PrintSchema writes the JSON Schema of the canonical document format.
func (a *App) PrintSchema() error {
	out, err := schema.JSONSchema()
	if err != nil {
		return fmt.Errorf("failed to generate schema: %w", err)
	}
	_, err = fmt.Fprintln(a.outW, string(out))
	return err
}
