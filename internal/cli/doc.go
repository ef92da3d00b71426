// Package cli is responsible for parsing command-line arguments, validating
// user input, and handling process-level concerns like exit codes.
//
// The command tree is built with cobra: convert, fix, validate and schema
// share persistent flags that override values loaded from the HCL config
// file, and usage or configuration mistakes surface as an ExitError with
// code 2.
package cli
