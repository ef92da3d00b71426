package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/specialistvlad/graphfix/internal/app"
	"github.com/specialistvlad/graphfix/internal/config"
	"github.com/specialistvlad/graphfix/internal/pipeline"
	"github.com/spf13/cobra"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(err error) error {
	return &ExitError{Code: 2, Message: err.Error()}
}

// options receives the persistent flags. A flag only overrides the config
// file when it was set explicitly.
type options struct {
	configPath   string
	envFile      string
	root         string
	out          string
	expectedPath string
	workers      int
	dangling     string
	logLevel     string
	logFormat    string
}

// Execute runs the command line given by args. Reports are written to outW,
// logs and usage errors to errW.
func Execute(ctx context.Context, args []string, outW, errW io.Writer) error {
	cmd := NewRootCommand(outW, errW)
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}

// NewRootCommand builds the command tree.
func NewRootCommand(outW, errW io.Writer) *cobra.Command {
	opts := &options{}
	defaults := config.Default()

	root := &cobra.Command{
		Use:   "graphfix",
		Short: "Normalize and check compiler graph fixtures",
		Long: `graphfix builds canonical graph documents from editor-format fixtures,
keeps them in topological order and checks their structure.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usageError(fmt.Errorf("unknown command %q for %q", args[0], cmd.CommandPath()))
			}
			return cmd.Help()
		},
	}
	root.SetOut(outW)
	root.SetErr(errW)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "Path to an HCL config file.")
	pf.StringVar(&opts.envFile, "env-file", "", "Dotenv file merged into the config file's env object.")
	pf.StringVar(&opts.root, "root", defaults.FixtureRoot, "Directory holding one subdirectory per fixture.")
	pf.StringVar(&opts.out, "out", "", "Output root for convert. Defaults to --root.")
	pf.StringVar(&opts.expectedPath, "expected-path", defaults.ExpectedPath, "Canonical document path inside a fixture.")
	pf.IntVar(&opts.workers, "workers", defaults.Workers, "Number of fixtures processed concurrently.")
	pf.StringVar(&opts.dangling, "dangling", defaults.Dangling, "Dangling reference policy: 'ignore', 'warn' or 'reject'.")
	pf.StringVar(&opts.logLevel, "log-level", defaults.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	pf.StringVar(&opts.logFormat, "log-format", defaults.LogFormat, "Log output format. Options: 'text' or 'json'.")

	var check bool
	fixCmd := batchCommand(opts, pipeline.CommandFix, &check,
		"Reorder canonical documents topologically",
		"Rewrites every canonical document whose nodes are out of dependency order.\nAlready ordered documents are never touched.")
	fixCmd.Flags().BoolVar(&check, "check", false, "Report fixtures that would change without writing; exit non-zero if any.")

	root.AddCommand(
		batchCommand(opts, pipeline.CommandConvert, nil,
			"Build canonical documents from editor-format sources",
			"Builds each fixture's canonical document from its editor-format source and\nwrites it with a copy of the script under the output root."),
		fixCmd,
		batchCommand(opts, pipeline.CommandValidate, nil,
			"Check fixtures for completeness and document shape",
			"Checks that every fixture has its script and a canonical document with the\nexpected shape. Exits non-zero if any fixture is invalid."),
		schemaCommand(opts),
	)
	return root
}

func batchCommand(opts *options, name pipeline.Command, check *bool, short, long string) *cobra.Command {
	return &cobra.Command{
		Use:   string(name),
		Short: short,
		Long:  long,
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := opts.newApp(cmd)
			if err != nil {
				return err
			}

			report, err := a.Run(cmd.Context(), name, check != nil && *check)
			if err != nil {
				return err
			}
			if report.Failed() {
				return &ExitError{Code: 1, Message: fmt.Sprintf("%s: %s", name, failureSummary(report))}
			}
			return nil
		},
	}
}

func schemaCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of the canonical document format",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := opts.newApp(cmd)
			if err != nil {
				return err
			}
			return a.PrintSchema()
		},
	}
}

func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return usageError(err)
	}
	return nil
}

func failureSummary(r *pipeline.Report) string {
	if r.Command == pipeline.CommandValidate {
		return fmt.Sprintf("%d fixture(s) invalid", r.Count(pipeline.StatusInvalid))
	}
	msg := fmt.Sprintf("%d fixture(s) failed", r.Count(pipeline.StatusError))
	if r.Check {
		msg += fmt.Sprintf(", %d would change", r.Count(pipeline.StatusFixed))
	}
	return msg
}

// newApp layers the config file and explicit flags over the defaults and
// builds the application.
func (o *options) newApp(cmd *cobra.Command) (*app.App, error) {
	cfg, err := o.load(cmd)
	if err != nil {
		return nil, err
	}
	a, err := app.NewApp(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg)
	if err != nil {
		return nil, usageError(err)
	}
	return a, nil
}

func (o *options) load(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()

	if o.configPath != "" {
		env, err := config.Environ(o.envFile)
		if err != nil {
			return nil, usageError(err)
		}
		if err := config.LoadFile(cmd.Context(), &cfg, o.configPath, env); err != nil {
			return nil, usageError(err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("root") {
		cfg.FixtureRoot = o.root
	}
	if flags.Changed("out") {
		cfg.OutputRoot = o.out
	}
	if flags.Changed("expected-path") {
		cfg.ExpectedPath = o.expectedPath
	}
	if flags.Changed("workers") {
		cfg.Workers = o.workers
	}
	if flags.Changed("dangling") {
		cfg.Dangling = o.dangling
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = o.logFormat
	}
	return &cfg, nil
}
