package config

import (
	"runtime"

	"github.com/specialistvlad/graphfix/internal/dag"
	"github.com/specialistvlad/graphfix/internal/fixture"
)

// Config holds everything a batch run needs. Paths are used as given; the
// loader resolves relative paths from a config file before they land here.
type Config struct {
	FixtureRoot  string `name:"fixture_root" validate:"required"`
	OutputRoot   string `name:"output_root"` // Empty means FixtureRoot.
	ExpectedPath string `name:"expected_path" validate:"required"`
	InputName    string `name:"input_name" validate:"required"`
	SourceName   string `name:"source_name" validate:"required"`
	Workers      int    `name:"workers" validate:"min=1,max=1024"`
	Dangling     string `name:"dangling" validate:"oneof=ignore warn reject"`
	LogLevel     string `name:"log_level" validate:"oneof=debug info warn error"`
	LogFormat    string `name:"log_format" validate:"oneof=text json"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	layout := fixture.DefaultLayout()
	return Config{
		FixtureRoot:  ".",
		ExpectedPath: layout.ExpectedPath,
		InputName:    layout.InputName,
		SourceName:   layout.SourceName,
		Workers:      runtime.NumCPU(),
		Dangling:     string(dag.DanglingWarn),
		LogLevel:     "info",
		LogFormat:    "text",
	}
}

// Output returns the root converted fixtures are written under.
func (c *Config) Output() string {
	if c.OutputRoot == "" {
		return c.FixtureRoot
	}
	return c.OutputRoot
}

// Layout returns the fixture file names.
func (c *Config) Layout() fixture.Layout {
	return fixture.Layout{
		InputName:    c.InputName,
		SourceName:   c.SourceName,
		ExpectedPath: c.ExpectedPath,
	}
}

// DanglingPolicy returns the parsed dangling reference policy.
func (c *Config) DanglingPolicy() (dag.DanglingPolicy, error) {
	return dag.ParseDanglingPolicy(c.Dangling)
}
