package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for picomenu
	EnvConfigDir = "PICOMENU_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for picomenu
	EnvStateDir = "PICOMENU_STATE_DIR"
)

// Default directories and files
const (
	// AppDirName is the directory name for picomenu-specific files
	AppDirName = "picomenu"

	// LogFileName is the name of the log file inside the state directory
	LogFileName = "picomenu.log"

	// ConfigFileBase is the config file name without extension
	ConfigFileBase = "config"
)

// ConfigExtensions lists the config file extensions searched, in order.
var ConfigExtensions = []string{".toml", ".yaml", ".yml"}

// ConfigDir returns the picomenu config directory, respecting
// PICOMENU_CONFIG_DIR and XDG_CONFIG_HOME.
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return expandHome(dir)
	}
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, AppDirName)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// StateDir returns the picomenu state directory, respecting
// PICOMENU_STATE_DIR and XDG_STATE_HOME.
func StateDir() string {
	if dir := os.Getenv(EnvStateDir); dir != "" {
		return expandHome(dir)
	}
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, AppDirName)
	}
	return filepath.Join(xdg.StateHome, AppDirName)
}

// LogFile returns the path of the log file.
func LogFile() string {
	return filepath.Join(StateDir(), LogFileName)
}

// FindConfigFile returns the first existing config file in ConfigDir, or ""
// when there is none.
func FindConfigFile() string {
	dir := ConfigDir()
	for _, ext := range ConfigExtensions {
		path := filepath.Join(dir, ConfigFileBase+ext)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// expandHome expands a leading ~ to the user's home directory
func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
