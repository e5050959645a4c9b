package config

import (
	"strings"

	"github.com/arthur-debert/picomenu/pkg/errors"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Dump formats
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

// Dump renders cfg as TOML or YAML.
func Dump(cfg *Config, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case FormatTOML, "":
		out, err := toml.Marshal(cfg)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
		}
		return out, nil
	case FormatYAML, "yml":
		out, err := yaml.Marshal(cfg)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
		}
		return out, nil
	default:
		return nil, errors.Newf(errors.ErrConfigValid, "unknown config format %q", format).
			WithDetail("format", format)
	}
}

// GenerateConfigContent returns the default configuration with every value
// commented out, ready to be saved as a user config file.
func GenerateConfigContent() string {
	return commentOutConfigValues(DefaultsContent())
}

// commentOutConfigValues comments out every assignment line, keeping
// comments, blank lines and section headers.
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	result := make([]string, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "", strings.HasPrefix(trimmed, "#"):
			result = append(result, line)
		case strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]"):
			result = append(result, line)
		default:
			result = append(result, "# "+line)
		}
	}

	return strings.Join(result, "\n")
}
