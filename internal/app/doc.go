// Package app contains the core application logic. It wires the configured
// logger and fixture pipeline together and runs batch commands, decoupled
// from any specific entrypoint like a CLI.
package app
