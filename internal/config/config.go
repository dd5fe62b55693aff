// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/vmunix/marquee/internal/appconfig"
)

// Config is the root configuration structure.
type Config struct {
	Server    ServerConfig    `toml:"server"`
	AppConfig AppConfigConfig `toml:"appconfig"`
	Search    SearchConfig    `toml:"search"`
}

type ServerConfig struct {
	Host      string  `toml:"host"`
	Port      int     `toml:"port"`
	LogLevel  string  `toml:"log_level"`
	RateLimit float64 `toml:"rate_limit"` // requests per second per client, 0 disables
	RateBurst int     `toml:"rate_burst"`
}

// AppConfigConfig names the remote catalog document and where to read it.
type AppConfigConfig struct {
	Application string        `toml:"application"`
	Environment string        `toml:"environment"`
	Config      string        `toml:"config"`
	CacheTTL    time.Duration `toml:"cache_ttl"`
	Source      string        `toml:"source"` // "agent" or "store"
	Agent       AgentConfig   `toml:"agent"`
	Store       StoreConfig   `toml:"store"`
}

type AgentConfig struct {
	URL      string        `toml:"url"`
	ClientID string        `toml:"client_id"`
	Timeout  time.Duration `toml:"timeout"`
}

type StoreConfig struct {
	Path string `toml:"path"`
}

type SearchConfig struct {
	GenreMatch string `toml:"genre_match"` // "substring" or "exact"
}

const (
	SourceAgent = "agent"
	SourceStore = "store"
)

// Key returns the configuration key the catalog is read from.
func (c *Config) Key() appconfig.Key {
	return appconfig.Key{
		Application: c.AppConfig.Application,
		Environment: c.AppConfig.Environment,
		Config:      c.AppConfig.Config,
	}
}

// CacheTTL returns how long a fetched catalog stays fresh.
func (c *Config) CacheTTL() time.Duration {
	return c.AppConfig.CacheTTL
}

// Addr returns the host:port the server listens on.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// Load reads, parses, and validates the configuration file.
// Returns ConfigError if environment variables are missing or validation fails.
func Load(path string) (*Config, error) {
	cfg, err := LoadWithoutValidation(path)
	if err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, &ConfigError{Path: path, Errors: errs}
	}
	return cfg, nil
}

// LoadWithoutValidation reads and parses the configuration file, applying
// environment substitution and defaults but skipping validation.
func LoadWithoutValidation(path string) (*Config, error) {
	if err := loadDotEnv(path); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	content, missing := substituteEnvVars(string(data))
	if len(missing) > 0 {
		return nil, &ConfigError{Path: path, Missing: missing}
	}

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.LogLevel == "" {
		c.Server.LogLevel = "info"
	}
	if c.Server.RateLimit > 0 && c.Server.RateBurst == 0 {
		c.Server.RateBurst = int(c.Server.RateLimit) + 1
	}
	if c.AppConfig.CacheTTL == 0 {
		c.AppConfig.CacheTTL = 30 * time.Second
	}
	if c.AppConfig.Source == "" {
		c.AppConfig.Source = SourceAgent
	}
	if c.AppConfig.Agent.URL == "" {
		c.AppConfig.Agent.URL = "http://localhost:2772"
	}
	if c.AppConfig.Agent.Timeout == 0 {
		c.AppConfig.Agent.Timeout = 5 * time.Second
	}
	if c.AppConfig.Store.Path == "" {
		c.AppConfig.Store.Path = "./data/marquee.db"
	}
	if c.Search.GenreMatch == "" {
		c.Search.GenreMatch = "substring"
	}
}

// loadDotEnv loads .env files from the config's directory and the working
// directory. Variables already set in the environment win.
func loadDotEnv(configPath string) error {
	candidates := []string{filepath.Join(filepath.Dir(configPath), ".env"), ".env"}

	seen := make(map[string]bool)
	for _, p := range candidates {
		abs, err := filepath.Abs(p)
		if err != nil {
			abs = p
		}
		if seen[abs] {
			continue
		}
		seen[abs] = true

		if _, err := os.Stat(p); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("loading %s: %w", p, err)
		}
	}
	return nil
}

// envVarPattern matches ${VAR}, ${VAR:-default}, and ${VAR:?message}.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?:(:-|:\?)([^}]*))?\}`)

// substituteEnvVars replaces environment references in content. Unresolved
// references are left in place and reported in missing. Comment lines are
// copied through untouched.
func substituteEnvVars(content string) (string, []string) {
	var missing []string

	expand := func(match string) string {
		groups := envVarPattern.FindStringSubmatch(match)
		name, op, arg := groups[1], groups[2], groups[3]

		value, ok := os.LookupEnv(name)
		switch op {
		case ":-":
			if !ok || value == "" {
				return arg
			}
			return value
		case ":?":
			if !ok || value == "" {
				missing = append(missing, name+": "+strings.TrimSpace(arg))
				return match
			}
			return value
		}

		if !ok {
			missing = append(missing, name)
			return match
		}
		return value
	}

	lines := strings.SplitAfter(content, "\n")
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		lines[i] = envVarPattern.ReplaceAllStringFunc(line, expand)
	}
	return strings.Join(lines, ""), missing
}
