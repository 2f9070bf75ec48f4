// Package types defines the core types and interfaces used throughout scrub.
// This includes the FS interface the deletion runner works against and the
// per-path Result and Report values it produces.
package types
