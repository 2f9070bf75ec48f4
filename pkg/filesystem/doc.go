// Package filesystem provides filesystem implementations for scrub.
//
// This package contains implementations of the types.FS interface:
// the standard OS filesystem used by the CLI and an afero-backed
// filesystem used by tests to model missing, present and read-only paths.
package filesystem
