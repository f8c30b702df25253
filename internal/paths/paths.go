// Package paths resolves the configuration directory and the output database
// location.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// DefaultOutputName is the database file written when no override is active,
// relative to the current directory.
const DefaultOutputName = "avdb.sqlite"

// Environment variable names for overrides.
const (
	EnvConfigDir = "NAVDATA_CONFIG_DIR"
	EnvOutput    = "NAVDATA_OUTPUT"
)

// DefaultConfigDir returns the platform-specific configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/navdata (fallback ~/.config/navdata)
// macOS:   ~/Library/Application Support/navdata
// Windows: %APPDATA%/navdata
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "navdata"), nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", "navdata"), nil
	default:
		// macOS and Windows use os.UserConfigDir, which returns
		// ~/Library/Application Support on macOS and %APPDATA% on Windows.
		dir, err := os.UserConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "navdata"), nil
	}
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > NAVDATA_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveOutput returns the output database path following the precedence
// chain: flag > config.yaml value > NAVDATA_OUTPUT env > ./avdb.sqlite.
func ResolveOutput(flag, configValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configValue != "" {
		return filepath.Abs(configValue)
	}
	if env := os.Getenv(EnvOutput); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultOutputName), nil
}
