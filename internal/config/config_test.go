package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/graphfix/internal/dag"
	"github.com/specialistvlad/graphfix/internal/fixture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, ".", cfg.Output())
	assert.Equal(t, fixture.DefaultLayout(), cfg.Layout())
	assert.GreaterOrEqual(t, cfg.Workers, 1)

	policy, err := cfg.DanglingPolicy()
	require.NoError(t, err)
	assert.Equal(t, dag.DanglingWarn, policy)
}

func TestOutput(t *testing.T) {
	cfg := Default()
	cfg.FixtureRoot = "cases"
	cfg.OutputRoot = "out"
	assert.Equal(t, "out", cfg.Output())
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{name: "missing root", mutate: func(c *Config) { c.FixtureRoot = "" }, errMsg: "fixture_root is required"},
		{name: "zero workers", mutate: func(c *Config) { c.Workers = 0 }, errMsg: "workers must be at least 1, got 0"},
		{name: "bad dangling", mutate: func(c *Config) { c.Dangling = "fail" }, errMsg: `dangling must be one of [ignore warn reject], got "fail"`},
		{name: "bad log format", mutate: func(c *Config) { c.LogFormat = "xml" }, errMsg: "log_format must be one of"},
		{name: "bad log level", mutate: func(c *Config) { c.LogLevel = "trace" }, errMsg: "log_level must be one of"},
		{name: "missing expected path", mutate: func(c *Config) { c.ExpectedPath = "" }, errMsg: "expected_path is required"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorContains(t, err, "invalid configuration")
			assert.ErrorContains(t, err, tc.errMsg)
		})
	}

	t.Run("reports every violation", func(t *testing.T) {
		cfg := Default()
		cfg.Workers = 0
		cfg.LogFormat = "xml"
		err := cfg.Validate()
		require.Error(t, err)
		assert.ErrorContains(t, err, "workers")
		assert.ErrorContains(t, err, "log_format")
	})
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "graphfix.hcl", `
fixture_root  = "test_cases"
output_root   = env.GRAPHFIX_OUT
expected_path = "expected/graph.json"
workers       = 3
dangling      = "reject"

log {
  level  = "debug"
  format = "json"
}
`)

	cfg := Default()
	err := LoadFile(context.Background(), &cfg, path, map[string]string{"GRAPHFIX_OUT": "/abs/out"})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "test_cases"), cfg.FixtureRoot)
	assert.Equal(t, "/abs/out", cfg.OutputRoot)
	assert.Equal(t, "expected/graph.json", cfg.ExpectedPath)
	assert.Equal(t, "input.txt", cfg.InputName, "unset attributes keep their value")
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, "reject", cfg.Dangling)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	require.NoError(t, cfg.Validate())
}

func TestLoadFile_Errors(t *testing.T) {
	dir := t.TempDir()

	t.Run("syntax error", func(t *testing.T) {
		path := writeFile(t, dir, "broken.hcl", `workers = `)
		cfg := Default()
		err := LoadFile(context.Background(), &cfg, path, nil)
		assert.ErrorContains(t, err, "failed to parse config file")
	})

	t.Run("unknown attribute", func(t *testing.T) {
		path := writeFile(t, dir, "unknown.hcl", `grid_path = "x"`)
		cfg := Default()
		err := LoadFile(context.Background(), &cfg, path, nil)
		assert.ErrorContains(t, err, "failed to decode config file")
	})

	t.Run("undefined env variable", func(t *testing.T) {
		path := writeFile(t, dir, "env.hcl", `output_root = env.NOT_SET`)
		cfg := Default()
		err := LoadFile(context.Background(), &cfg, path, map[string]string{})
		assert.ErrorContains(t, err, "failed to decode config file")
	})

	t.Run("missing file", func(t *testing.T) {
		cfg := Default()
		err := LoadFile(context.Background(), &cfg, filepath.Join(dir, "nope.hcl"), nil)
		assert.Error(t, err)
	})
}

func TestEnviron(t *testing.T) {
	t.Setenv("GRAPHFIX_TEST_SHARED", "process")
	t.Setenv("GRAPHFIX_TEST_ONLY_PROCESS", "kept")

	dir := t.TempDir()
	envFile := writeFile(t, dir, ".env", "GRAPHFIX_TEST_SHARED=file\nGRAPHFIX_TEST_ONLY_FILE=added\n")

	env, err := Environ(envFile)
	require.NoError(t, err)
	assert.Equal(t, "file", env["GRAPHFIX_TEST_SHARED"])
	assert.Equal(t, "kept", env["GRAPHFIX_TEST_ONLY_PROCESS"])
	assert.Equal(t, "added", env["GRAPHFIX_TEST_ONLY_FILE"])
	assert.Equal(t, "process", os.Getenv("GRAPHFIX_TEST_SHARED"), "process env is untouched")

	env, err = Environ("")
	require.NoError(t, err)
	assert.Equal(t, "process", env["GRAPHFIX_TEST_SHARED"])

	_, err = Environ(filepath.Join(dir, "missing.env"))
	assert.ErrorContains(t, err, "failed to read env file")
}
