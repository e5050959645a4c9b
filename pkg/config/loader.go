package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/picomenu/pkg/errors"
	"github.com/arthur-debert/picomenu/pkg/logging"
	"github.com/arthur-debert/picomenu/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every configuration environment variable.
const EnvPrefix = "PICOMENU_"

// Options selects the sources merged by LoadWith.
type Options struct {
	// Path is an explicit config file. When empty the XDG config directory
	// is searched unless SkipSearch is set.
	Path string

	// SkipSearch disables the XDG config file lookup.
	SkipSearch bool

	// SkipEnv disables PICOMENU_ environment variables.
	SkipEnv bool

	// Overrides are dotted keys applied last, e.g. "device.listen".
	Overrides map[string]interface{}
}

// Load returns the configuration from defaults, the config file at path (or
// the one found in the config directory), the environment and overrides.
func Load(path string, overrides map[string]interface{}) (*Config, error) {
	return LoadWith(Options{Path: path, Overrides: overrides})
}

// LoadWith loads the configuration from the sources selected by opts.
func LoadWith(opts Options) (*Config, error) {
	log := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. Config file
	path := opts.Path
	if path == "" && !opts.SkipSearch {
		path = paths.FindConfigFile()
	}
	if path != "" {
		if err := loadFile(k, path); err != nil {
			return nil, err
		}
		log.Debug().Str("path", path).Msg("Loaded config file")
	}

	// 3. Environment
	if !opts.SkipEnv {
		if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
		}
	}

	// 4. Flag overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
	}

	// 5. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.TextUnmarshallerHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	cfg.Source = path

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the embedded defaults alone.
func Default() (*Config, error) {
	return LoadWith(Options{SkipSearch: true, SkipEnv: true})
}

func loadFile(k *koanf.Koanf, path string) error {
	parser, err := parserFor(path)
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "cannot read config file %s", path).
			WithDetail("path", path)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to parse config file %s", path).
			WithDetail("path", path)
	}
	return nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	default:
		return nil, errors.Newf(errors.ErrConfigLoad, "unsupported config file type %q", filepath.Ext(path)).
			WithDetail("path", path)
	}
}

// envKey maps PICOMENU_INPUT__BUFFER_SIZE to input.buffer_size.
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}
