package config

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/picomenu/pkg/errors"
	"github.com/arthur-debert/picomenu/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefault(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)

	assert.Equal(t, 128, cfg.Input.BufferSize)
	assert.Equal(t, 256, cfg.Output.BufferSize)
	assert.Equal(t, 16, cfg.Registry.MaxCommands)
	assert.Equal(t, "", cfg.Menu.Prompt)
	assert.Equal(t, DeviceStdio, cfg.Device.Kind)
	assert.Equal(t, "127.0.0.1:7171", cfg.Device.Listen)
	assert.Equal(t, 8, cfg.Device.MaxSessions)
	assert.Equal(t, 2, cfg.State.Version)
	assert.Empty(t, cfg.Source)
}

func TestLoadFile(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "toml",
			file: "config.toml",
			content: `
[input]
buffer_size = 64

[menu]
prompt = "> "
`,
		},
		{
			name: "yaml",
			file: "config.yaml",
			content: `
input:
  buffer_size: 64
menu:
  prompt: "> "
`,
		},
		{
			name: "yml",
			file: "config.yml",
			content: `
input:
  buffer_size: 64
menu:
  prompt: "> "
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.Isolate(t)
			path := testutil.CreateFile(t, t.TempDir(), tt.file, tt.content)

			cfg, err := Load(path, nil)
			require.NoError(t, err)
			assert.Equal(t, 64, cfg.Input.BufferSize)
			assert.Equal(t, "> ", cfg.Menu.Prompt)
			// Untouched keys keep their defaults.
			assert.Equal(t, 256, cfg.Output.BufferSize)
			assert.Equal(t, path, cfg.Source)
		})
	}
}

func TestLoadFindsFileInConfigDir(t *testing.T) {
	env := testutil.Isolate(t)
	path := testutil.CreateFile(t, env.ConfigDir, "config.toml", "[state]\nversion = 7\n")

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.State.Version)
	assert.Equal(t, path, cfg.Source)
}

func TestLoadPrecedence(t *testing.T) {
	testutil.Isolate(t)
	path := testutil.CreateFile(t, t.TempDir(), "config.toml", "[output]\nbuffer_size = 100\n[input]\nbuffer_size = 100\n")
	t.Setenv("PICOMENU_OUTPUT__BUFFER_SIZE", "200")
	t.Setenv("PICOMENU_DEVICE__MAX_SESSIONS", "3")

	cfg, err := Load(path, map[string]interface{}{
		"device.max_sessions": 4,
	})
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.Input.BufferSize, "file beats defaults")
	assert.Equal(t, 200, cfg.Output.BufferSize, "env beats file")
	assert.Equal(t, 4, cfg.Device.MaxSessions, "overrides beat env")
}

func TestLoadSkipEnv(t *testing.T) {
	t.Setenv("PICOMENU_STATE__VERSION", "9")

	cfg, err := LoadWith(Options{SkipSearch: true, SkipEnv: true})
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.State.Version)

	cfg, err = LoadWith(Options{SkipSearch: true})
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.State.Version)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		code    errors.ErrorCode
	}{
		{"unsupported extension", "config.ini", "x=1", errors.ErrConfigLoad},
		{"broken toml", "config.toml", "[input\nbuffer_size = ", errors.ErrConfigParse},
		{"broken yaml", "config.yaml", "input: [1, 2", errors.ErrConfigParse},
		{"wrong type", "config.toml", "[input]\nbuffer_size = \"big\"\n", errors.ErrConfigParse},
		{"invalid value", "config.toml", "[registry]\nmax_commands = 0\n", errors.ErrConfigValid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.Isolate(t)
			path := testutil.CreateFile(t, t.TempDir(), tt.file, tt.content)

			_, err := Load(path, nil)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		testutil.Isolate(t)
		_, err := Load(filepath.Join(t.TempDir(), "nope.toml"), nil)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantKey string
	}{
		{"valid", func(*Config) {}, ""},
		{"zero input", func(c *Config) { c.Input.BufferSize = 0 }, "input.buffer_size"},
		{"negative output", func(c *Config) { c.Output.BufferSize = -1 }, "output.buffer_size"},
		{"huge output", func(c *Config) { c.Output.BufferSize = MaxBufferSize + 1 }, "output.buffer_size"},
		{"no commands", func(c *Config) { c.Registry.MaxCommands = 0 }, "registry.max_commands"},
		{"unknown kind", func(c *Config) { c.Device.Kind = "serial" }, "device.kind"},
		{"tcp without address", func(c *Config) {
			c.Device.Kind = DeviceTCP
			c.Device.Listen = ""
		}, "device.listen"},
		{"stdio without address", func(c *Config) { c.Device.Listen = "" }, ""},
		{"no sessions", func(c *Config) { c.Device.MaxSessions = 0 }, "device.max_sessions"},
		{"negative version", func(c *Config) { c.State.Version = -1 }, "state.version"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Default()
			require.NoError(t, err)
			tt.mutate(cfg)

			err = cfg.Validate()
			if tt.wantKey == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
			assert.Equal(t, tt.wantKey, errors.GetErrorDetails(err)["key"])
		})
	}
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "input.buffer_size", envKey("PICOMENU_INPUT__BUFFER_SIZE"))
	assert.Equal(t, "menu.prompt", envKey("PICOMENU_MENU__PROMPT"))
	assert.Equal(t, "config_dir", envKey("PICOMENU_CONFIG_DIR"))
}

func TestDump(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)
	cfg.Source = "/somewhere/config.toml"

	t.Run("toml round trips through the loader", func(t *testing.T) {
		out, err := Dump(cfg, FormatTOML)
		require.NoError(t, err)
		assert.Contains(t, string(out), "buffer_size = 128")
		assert.NotContains(t, string(out), "somewhere")

		testutil.Isolate(t)
		path := testutil.CreateFile(t, t.TempDir(), "dumped.toml", string(out))
		loaded, err := LoadWith(Options{Path: path, SkipEnv: true})
		require.NoError(t, err)
		loaded.Source = cfg.Source
		assert.Equal(t, cfg, loaded)
	})

	t.Run("yaml", func(t *testing.T) {
		out, err := Dump(cfg, FormatYAML)
		require.NoError(t, err)

		var decoded map[string]map[string]interface{}
		require.NoError(t, yaml.Unmarshal(out, &decoded))
		assert.Equal(t, 128, decoded["input"]["buffer_size"])
		assert.Equal(t, "stdio", decoded["device"]["kind"])
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := Dump(cfg, "xml")
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	})
}

func TestGenerateConfigContent(t *testing.T) {
	content := GenerateConfigContent()

	assert.Contains(t, content, "[input]\n")
	assert.Contains(t, content, "# buffer_size = 128")
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "[") {
			continue
		}
		assert.True(t, strings.HasPrefix(trimmed, "#"), "line %q is not commented", line)
	}

	// The commented template loads as the plain defaults.
	testutil.Isolate(t)
	path := testutil.CreateFile(t, t.TempDir(), "config.toml", content)
	cfg, err := LoadWith(Options{Path: path, SkipEnv: true})
	require.NoError(t, err)
	assert.Equal(t, 128, cfg.Input.BufferSize)
}
