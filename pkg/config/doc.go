// Package config handles configuration management for picomenu.
// It merges, in order of precedence, the embedded defaults, an optional
// TOML or YAML config file, PICOMENU_ environment variables and explicit
// overrides coming from command-line flags.
package config
