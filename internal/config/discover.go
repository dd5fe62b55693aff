package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnvConfigPath names the environment variable that overrides config discovery.
const EnvConfigPath = "MARQUEE_CONFIG"

// ErrNoConfig is returned by Discover when no candidate file exists.
var ErrNoConfig = errors.New("no config file found")

// DefaultPath returns $XDG_CONFIG_HOME/marquee/config.toml, falling back
// to ~/.config when XDG_CONFIG_HOME is unset.
func DefaultPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "config.toml"
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "marquee", "config.toml")
}

// candidatePaths lists where Discover looks, in priority order.
func candidatePaths() []string {
	return []string{
		"config.toml",
		DefaultPath(),
		filepath.Join("/etc", "marquee", "config.toml"),
	}
}

// Discover locates the daemon's config file. An explicit MARQUEE_CONFIG
// must exist; otherwise the first existing candidate path wins.
func Discover() (string, error) {
	if explicit := os.Getenv(EnvConfigPath); explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("%s=%s: %w", EnvConfigPath, explicit, err)
		}
		return explicit, nil
	}

	candidates := candidatePaths()
	for _, p := range candidates {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w (searched %s)", ErrNoConfig, strings.Join(candidates, ", "))
}
