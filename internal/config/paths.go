package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// GlobalPolybarConfig is the system-wide polybar config, usually root-owned
const GlobalPolybarConfig = "/etc/xdg/polybar/config.ini"

// Paths holds every file location polywal touches
type Paths struct {
	Palette  string // pywal color cache
	Global   string // system polybar config
	Local    string // user polybar config
	Profiles string // user profile definitions
}

// DefaultPaths resolves locations from the environment and the user's home directory
func DefaultPaths() (Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Paths{}, fmt.Errorf("finding home directory: %w", err)
	}
	return ResolvePaths(os.Getenv, home), nil
}

// ResolvePaths builds Paths honouring XDG_CONFIG_HOME and XDG_CACHE_HOME,
// falling back to ~/.config and ~/.cache.
func ResolvePaths(getenv func(string) string, home string) Paths {
	configHome := getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = filepath.Join(home, ".config")
	}
	cacheHome := getenv("XDG_CACHE_HOME")
	if cacheHome == "" {
		cacheHome = filepath.Join(home, ".cache")
	}

	return Paths{
		Palette:  filepath.Join(cacheHome, "wal", "colors"),
		Global:   GlobalPolybarConfig,
		Local:    filepath.Join(configHome, "polybar", "config.ini"),
		Profiles: filepath.Join(configHome, "polywal", "profiles.yaml"),
	}
}
