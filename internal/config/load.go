package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/joho/godotenv"
	"github.com/specialistvlad/graphfix/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

// fileRoot mirrors the attributes a config file may set. Pointers tell an
// absent attribute apart from a zero value.
type fileRoot struct {
	FixtureRoot  *string   `hcl:"fixture_root,optional"`
	OutputRoot   *string   `hcl:"output_root,optional"`
	ExpectedPath *string   `hcl:"expected_path,optional"`
	InputName    *string   `hcl:"input_name,optional"`
	SourceName   *string   `hcl:"source_name,optional"`
	Workers      *int      `hcl:"workers,optional"`
	Dangling     *string   `hcl:"dangling,optional"`
	Log          *logBlock `hcl:"log,block"`
}

type logBlock struct {
	Level  *string `hcl:"level,optional"`
	Format *string `hcl:"format,optional"`
}

// Environ returns the process environment merged with the variables of
// envFile, which win on conflict. An empty envFile skips the file. The process
// environment is not modified.
func Environ(envFile string) (map[string]string, error) {
	env := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			env[k] = v
		}
	}
	if envFile == "" {
		return env, nil
	}

	fileEnv, err := godotenv.Read(envFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read env file %s: %w", envFile, err)
	}
	for k, v := range fileEnv {
		env[k] = v
	}
	return env, nil
}

// LoadFile applies the HCL config file at path on top of cfg. The variables in
// env are visible to the file as attributes of the `env` object.
func LoadFile(ctx context.Context, cfg *Config, path string, env map[string]string) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading config file.", "path", path, "env_vars", len(env))

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse config file %s: %w", path, diags)
	}

	var root fileRoot
	diags = gohcl.DecodeBody(file.Body, evalContext(env), &root)
	if diags.HasErrors() {
		return fmt.Errorf("failed to decode config file %s: %w", path, diags)
	}

	dir := filepath.Dir(path)
	setPath(&cfg.FixtureRoot, root.FixtureRoot, dir)
	setPath(&cfg.OutputRoot, root.OutputRoot, dir)
	set(&cfg.ExpectedPath, root.ExpectedPath)
	set(&cfg.InputName, root.InputName)
	set(&cfg.SourceName, root.SourceName)
	set(&cfg.Workers, root.Workers)
	set(&cfg.Dangling, root.Dangling)
	if root.Log != nil {
		set(&cfg.LogLevel, root.Log.Level)
		set(&cfg.LogFormat, root.Log.Format)
	}

	logger.Debug("Config file applied.", "path", path)
	return nil
}

func evalContext(env map[string]string) *hcl.EvalContext {
	vars := make(map[string]cty.Value, len(env))
	for k, v := range env {
		vars[k] = cty.StringVal(v)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(vars),
		},
	}
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func setPath(dst *string, src *string, dir string) {
	if src == nil {
		return
	}
	p := *src
	if p != "" && !filepath.IsAbs(p) {
		p = filepath.Join(dir, p)
	}
	*dst = p
}
