// internal/config/validate.go
package config

import (
	"fmt"
	"net/url"
	"strings"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

var validSources = map[string]bool{
	SourceAgent: true, SourceStore: true,
}

var validGenreMatch = map[string]bool{
	"substring": true, "exact": true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	// Server validation
	if c.Server.Port != 0 && (c.Server.Port < 1 || c.Server.Port > 65535) {
		errs = append(errs, fmt.Sprintf("server.port: must be between 1 and 65535, got %d", c.Server.Port))
	}
	if !validLogLevels[c.Server.LogLevel] {
		errs = append(errs, fmt.Sprintf("server.log_level: must be one of debug, info, warn, error; got %q", c.Server.LogLevel))
	}
	if c.Server.RateLimit < 0 {
		errs = append(errs, fmt.Sprintf("server.rate_limit: must not be negative, got %g", c.Server.RateLimit))
	}
	if c.Server.RateBurst < 0 {
		errs = append(errs, fmt.Sprintf("server.rate_burst: must not be negative, got %d", c.Server.RateBurst))
	}

	// Catalog key
	if strings.TrimSpace(c.AppConfig.Application) == "" {
		errs = append(errs, "appconfig.application: required")
	}
	if strings.TrimSpace(c.AppConfig.Environment) == "" {
		errs = append(errs, "appconfig.environment: required")
	}
	if strings.TrimSpace(c.AppConfig.Config) == "" {
		errs = append(errs, "appconfig.config: required")
	}
	if c.AppConfig.CacheTTL < 0 {
		errs = append(errs, fmt.Sprintf("appconfig.cache_ttl: must not be negative, got %s", c.AppConfig.CacheTTL))
	}

	// Source validation
	if !validSources[c.AppConfig.Source] {
		errs = append(errs, fmt.Sprintf("appconfig.source: must be one of agent, store; got %q", c.AppConfig.Source))
	}
	if c.AppConfig.Source == SourceAgent {
		if u, err := url.Parse(c.AppConfig.Agent.URL); err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, fmt.Sprintf("appconfig.agent.url: must be an absolute URL, got %q", c.AppConfig.Agent.URL))
		}
		if c.AppConfig.Agent.Timeout < 0 {
			errs = append(errs, fmt.Sprintf("appconfig.agent.timeout: must not be negative, got %s", c.AppConfig.Agent.Timeout))
		}
	}
	if c.AppConfig.Source == SourceStore && c.AppConfig.Store.Path == "" {
		errs = append(errs, "appconfig.store.path: required when source is store")
	}

	// Search validation
	if !validGenreMatch[strings.ToLower(c.Search.GenreMatch)] {
		errs = append(errs, fmt.Sprintf("search.genre_match: must be one of substring, exact; got %q", c.Search.GenreMatch))
	}

	return errs
}
