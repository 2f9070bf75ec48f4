// Package targets holds the build-time list of paths scrub deletes.
//
// The list lives in embedded/targets.toml and is compiled into the binary.
// It is parsed with koanf at startup; there is no runtime configuration
// file and no environment override.
package targets
