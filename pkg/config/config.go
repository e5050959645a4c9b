package config

import (
	"github.com/arthur-debert/picomenu/pkg/errors"
)

// Device kinds
const (
	DeviceStdio = "stdio"
	DeviceTCP   = "tcp"
)

// MaxBufferSize bounds the configurable buffer sizes.
const MaxBufferSize = 1 << 20

// Config is the effective picomenu configuration.
type Config struct {
	Input    BufferConfig   `koanf:"input" toml:"input" yaml:"input"`
	Output   BufferConfig   `koanf:"output" toml:"output" yaml:"output"`
	Registry RegistryConfig `koanf:"registry" toml:"registry" yaml:"registry"`
	Menu     MenuConfig     `koanf:"menu" toml:"menu" yaml:"menu"`
	Device   DeviceConfig   `koanf:"device" toml:"device" yaml:"device"`
	State    StateConfig    `koanf:"state" toml:"state" yaml:"state"`

	// Source is the config file that was loaded, empty when none was.
	Source string `koanf:"-" toml:"-" yaml:"-"`
}

// BufferConfig sizes one of the menu buffers.
type BufferConfig struct {
	BufferSize int `koanf:"buffer_size" toml:"buffer_size" yaml:"buffer_size"`
}

// RegistryConfig sizes the command table.
type RegistryConfig struct {
	MaxCommands int `koanf:"max_commands" toml:"max_commands" yaml:"max_commands"`
}

// MenuConfig holds menu presentation settings.
type MenuConfig struct {
	Prompt string `koanf:"prompt" toml:"prompt" yaml:"prompt"`
}

// DeviceConfig selects where sessions are served.
type DeviceConfig struct {
	Kind        string `koanf:"kind" toml:"kind" yaml:"kind"`
	Listen      string `koanf:"listen" toml:"listen" yaml:"listen"`
	MaxSessions int    `koanf:"max_sessions" toml:"max_sessions" yaml:"max_sessions"`
}

// StateConfig seeds the demo session state.
type StateConfig struct {
	Version int `koanf:"version" toml:"version" yaml:"version"`
}

// Validate checks the values that would make a menu or server unusable.
func (c *Config) Validate() error {
	if err := validateBuffer("input.buffer_size", c.Input.BufferSize); err != nil {
		return err
	}
	if err := validateBuffer("output.buffer_size", c.Output.BufferSize); err != nil {
		return err
	}
	if c.Registry.MaxCommands < 1 {
		return invalid("registry.max_commands", c.Registry.MaxCommands, "must be at least 1")
	}

	switch c.Device.Kind {
	case DeviceStdio:
	case DeviceTCP:
		if c.Device.Listen == "" {
			return invalid("device.listen", c.Device.Listen, "is required for tcp devices")
		}
	default:
		return invalid("device.kind", c.Device.Kind, "must be \"stdio\" or \"tcp\"")
	}
	if c.Device.MaxSessions < 1 {
		return invalid("device.max_sessions", c.Device.MaxSessions, "must be at least 1")
	}

	if c.State.Version < 0 {
		return invalid("state.version", c.State.Version, "must not be negative")
	}
	return nil
}

func validateBuffer(key string, size int) error {
	if size < 1 {
		return invalid(key, size, "must be positive")
	}
	if size > MaxBufferSize {
		return invalid(key, size, "is too large")
	}
	return nil
}

func invalid(key string, value interface{}, reason string) error {
	return errors.Newf(errors.ErrConfigValid, "%s %s", key, reason).
		WithDetail("key", key).
		WithDetail("value", value)
}
