// Package config defines the run configuration and loads it from its sources.
//
// Values are layered: Default, then an optional HCL file, then command-line
// flags applied by the caller. The HCL file is evaluated with an `env` object
// holding the process environment merged with an optional dotenv file, so a
// file can say `output_root = env.GRAPHFIX_OUT`. Paths in the file are
// relative to the file's directory.
package config
