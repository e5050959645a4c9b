package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/picomenu/pkg/paths"
)

// Env holds the directories a test was isolated into.
type Env struct {
	ConfigDir string
	StateDir  string
}

// Isolate points PICOMENU_CONFIG_DIR and PICOMENU_STATE_DIR at fresh
// temporary directories for the duration of the test, so that no user config
// is picked up and no log file is written outside them.
func Isolate(t *testing.T) Env {
	t.Helper()

	env := Env{ConfigDir: t.TempDir(), StateDir: t.TempDir()}
	t.Setenv(paths.EnvConfigDir, env.ConfigDir)
	t.Setenv(paths.EnvStateDir, env.StateDir)
	return env
}

// CreateFile creates a file with the given content in the specified directory.
// It fails the test if the file cannot be created.
func CreateFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)

	// Create parent directories if needed
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}

	return path
}

// ReadFile reads the content of a file and returns it as a string.
// It fails the test if the file cannot be read.
func ReadFile(t *testing.T, path string) string {
	t.Helper()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}

	return string(content)
}
