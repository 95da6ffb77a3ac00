package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allKeys = []string{
	"HTTP_ADDR", "SHUTDOWN_TIMEOUT", "LOG_LEVEL", "MOCK_API",
	"API_BASE_URL", "PAGE_SIZE", "SEED_PATH",
}

// clearEnv unsets every key so cleanenv applies its defaults.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range allKeys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":8080", c.HTTPAddr)
	assert.Equal(t, 15*time.Second, c.ShutdownTimeout)
	assert.Equal(t, "INFO", c.LogLevel)
	assert.True(t, c.MockAPI)
	assert.Equal(t, "http://localhost:8080", c.APIBaseURL)
	assert.Equal(t, 6, c.PageSize)
	assert.Empty(t, c.SeedPath)
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("SHUTDOWN_TIMEOUT", "2s")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("MOCK_API", "false")
	t.Setenv("API_BASE_URL", "http://inventory.internal:8081")
	t.Setenv("PAGE_SIZE", "12")
	t.Setenv("SEED_PATH", "/tmp/db.json")

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":9090", c.HTTPAddr)
	assert.Equal(t, 2*time.Second, c.ShutdownTimeout)
	assert.Equal(t, "DEBUG", c.LogLevel)
	assert.False(t, c.MockAPI)
	assert.Equal(t, "http://inventory.internal:8081", c.APIBaseURL)
	assert.Equal(t, 12, c.PageSize)
	assert.Equal(t, "/tmp/db.json", c.SeedPath)
}

func TestLoadYAMLFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("http_addr: \":7070\"\npage_size: 9\n"), 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7070", c.HTTPAddr)
	assert.Equal(t, 9, c.PageSize)
	assert.Equal(t, "INFO", c.LogLevel)
}

func TestLoadMissingFileFallsBackToEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_ADDR", ":6060")
	c, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, ":6060", c.HTTPAddr)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"zero page size", map[string]string{"PAGE_SIZE": "0"}},
		{"bad page size", map[string]string{"PAGE_SIZE": "many"}},
		{"remote without url", map[string]string{"MOCK_API": "false", "API_BASE_URL": " "}},
		{"remote relative url", map[string]string{"MOCK_API": "false", "API_BASE_URL": "/api"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := Load("")
			assert.Error(t, err)
		})
	}
}

func TestValidateMockIgnoresBaseURL(t *testing.T) {
	c := Config{MockAPI: true, PageSize: 6}
	assert.NoError(t, c.Validate())
}
