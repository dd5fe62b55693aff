// internal/config/validate_test.go
package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	cfg := &Config{
		AppConfig: AppConfigConfig{
			Application: "movies",
			Environment: "prod",
			Config:      "catalog",
		},
	}
	cfg.applyDefaults()
	return cfg
}

func TestValidate_MinimalValid(t *testing.T) {
	errs := validConfig().Validate()
	assert.Empty(t, errs, "expected no errors for minimal valid config")
}

func TestValidate_MissingKey(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()
	errs := cfg.Validate()
	assert.True(t, containsError(errs, "appconfig.application"), "expected application error, got %v", errs)
	assert.True(t, containsError(errs, "appconfig.environment"), "expected environment error, got %v", errs)
	assert.True(t, containsError(errs, "appconfig.config"), "expected config error, got %v", errs)
}

func TestValidate_BlankKeyComponent(t *testing.T) {
	cfg := validConfig()
	cfg.AppConfig.Environment = "   "
	errs := cfg.Validate()
	assert.True(t, containsError(errs, "appconfig.environment"), "expected environment error, got %v", errs)
}

func TestValidate_InvalidPort(t *testing.T) {
	cfg := validConfig()
	cfg.Server.Port = 99999
	errs := cfg.Validate()
	assert.True(t, containsError(errs, "server.port"), "expected port error, got %v", errs)
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	cfg := validConfig()
	cfg.Server.LogLevel = "verbose"
	errs := cfg.Validate()
	assert.True(t, containsError(errs, "log_level"), "expected log_level error, got %v", errs)
}

func TestValidate_NegativeRateLimit(t *testing.T) {
	cfg := validConfig()
	cfg.Server.RateLimit = -1
	cfg.Server.RateBurst = -2
	errs := cfg.Validate()
	assert.True(t, containsError(errs, "server.rate_limit"), "expected rate_limit error, got %v", errs)
	assert.True(t, containsError(errs, "server.rate_burst"), "expected rate_burst error, got %v", errs)
}

func TestValidate_NegativeCacheTTL(t *testing.T) {
	cfg := validConfig()
	cfg.AppConfig.CacheTTL = -time.Second
	errs := cfg.Validate()
	assert.True(t, containsError(errs, "cache_ttl"), "expected cache_ttl error, got %v", errs)
}

func TestValidate_InvalidSource(t *testing.T) {
	cfg := validConfig()
	cfg.AppConfig.Source = "s3"
	errs := cfg.Validate()
	assert.True(t, containsError(errs, "appconfig.source"), "expected source error, got %v", errs)
}

func TestValidate_AgentURL(t *testing.T) {
	for _, u := range []string{"localhost:2772", "not a url", "/relative"} {
		cfg := validConfig()
		cfg.AppConfig.Agent.URL = u
		errs := cfg.Validate()
		assert.True(t, containsError(errs, "appconfig.agent.url"), "url %q: expected agent url error, got %v", u, errs)
	}
}

func TestValidate_AgentURLIgnoredForStore(t *testing.T) {
	cfg := validConfig()
	cfg.AppConfig.Source = SourceStore
	cfg.AppConfig.Agent.URL = "not a url"
	assert.Empty(t, cfg.Validate())
}

func TestValidate_StoreRequiresPath(t *testing.T) {
	cfg := validConfig()
	cfg.AppConfig.Source = SourceStore
	cfg.AppConfig.Store.Path = ""
	errs := cfg.Validate()
	assert.True(t, containsError(errs, "appconfig.store.path"), "expected store path error, got %v", errs)
}

func TestValidate_GenreMatch(t *testing.T) {
	cfg := validConfig()
	cfg.Search.GenreMatch = "Exact"
	assert.Empty(t, cfg.Validate())

	cfg.Search.GenreMatch = "fuzzy"
	errs := cfg.Validate()
	assert.True(t, containsError(errs, "search.genre_match"), "expected genre_match error, got %v", errs)
}

func containsError(errs []string, substr string) bool {
	for _, e := range errs {
		if strings.Contains(e, substr) {
			return true
		}
	}
	return false
}
