package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDir(t *testing.T) {
	t.Run("override wins", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "/custom/config")
		t.Setenv("XDG_CONFIG_HOME", "/xdg/config")
		assert.Equal(t, "/custom/config", ConfigDir())
	})

	t.Run("xdg config home", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "")
		t.Setenv("XDG_CONFIG_HOME", "/xdg/config")
		assert.Equal(t, "/xdg/config/picomenu", ConfigDir())
	})
}

func TestLogFile(t *testing.T) {
	t.Setenv(EnvStateDir, "")
	t.Setenv("XDG_STATE_HOME", "/xdg/state")
	assert.Equal(t, "/xdg/state/picomenu/picomenu.log", LogFile())
}

func TestFindConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvConfigDir, dir)

	assert.Empty(t, FindConfigFile())

	yamlPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("menu:\n  prompt: \"> \"\n"), 0o644))
	assert.Equal(t, yamlPath, FindConfigFile())

	tomlPath := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(tomlPath, []byte("[menu]\nprompt = \"> \"\n"), 0o644))
	assert.Equal(t, tomlPath, FindConfigFile(), "toml is preferred")
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "state"), expandHome("~/state"))
	assert.Equal(t, "/abs/path", expandHome("/abs/path"))
}
