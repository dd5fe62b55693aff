package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "marquee", "config.toml")
	require.NoError(t, WriteDefault(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	for _, section := range []string{"[server]", "[appconfig]", "[appconfig.agent]", "[appconfig.store]", "[search]"} {
		assert.Contains(t, string(content), section)
	}
	assert.Contains(t, string(content), "${MARQUEE_AGENT_URL:-http://localhost:2772}")

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file left behind")
}

func TestWriteDefault_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0600))

	require.NoError(t, WriteDefault(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(content), "stale")
}

func TestWriteDefault_LoadsCleanly(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, WriteDefault(cfgPath))

	t.Setenv("MARQUEE_APPLICATION", "")
	t.Setenv("MARQUEE_ENVIRONMENT", "staging")
	t.Setenv("MARQUEE_AGENT_URL", "")

	cfg, err := Load(cfgPath)
	require.NoError(t, err)

	assert.Equal(t, "movies/staging/catalog", cfg.Key().String())
	assert.Equal(t, "http://localhost:2772", cfg.AppConfig.Agent.URL)
	assert.Equal(t, SourceAgent, cfg.AppConfig.Source)
}

func TestWriteDefault_LoadsWithNoEnvironment(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, WriteDefault(cfgPath))

	for _, name := range []string{"VAR", "MARQUEE_APPLICATION", "MARQUEE_ENVIRONMENT", "MARQUEE_AGENT_URL"} {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}

	cfg, err := Load(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "movies/dev/catalog", cfg.Key().String())
	assert.Equal(t, 30*time.Second, cfg.CacheTTL())
	assert.Equal(t, "substring", cfg.Search.GenreMatch)
}

func TestConfig_WriteRoundTrip(t *testing.T) {
	cfg := validConfig()
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = 9000
	cfg.AppConfig.CacheTTL = 45 * time.Second
	cfg.Search.GenreMatch = "exact"

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, cfg.Write(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", got.Addr())
	assert.Equal(t, 45*time.Second, got.CacheTTL())
	assert.Equal(t, cfg.Key(), got.Key())
	assert.Equal(t, "exact", got.Search.GenreMatch)
}
