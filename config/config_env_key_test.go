package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"backend": map[string]any{
			"baseUrl": "",
			"timeout": "15s",
		},
		"auth": map[string]any{
			"botToken":     "",
			"allowDevUser": false,
		},
		"postgres": map[string]any{
			"sslMode": "disable",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "BACKEND_BASEURL", want: "backend.baseUrl"},
		{envKey: "AUTH_BOTTOKEN", want: "auth.botToken"},
		{envKey: "AUTH_ALLOWDEVUSER", want: "auth.allowDevUser"},
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestNormalize_FillsDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.Backend.BaseURL = " http://backend.local/ "
	cfg.Auth.BotToken = "123:abc"

	require.NoError(t, cfg.normalize())

	assert.Equal(t, "http://backend.local", cfg.Backend.BaseURL)
	assert.Equal(t, defaultBackendTimeout, cfg.Backend.Timeout)
	assert.Equal(t, 12, cfg.Catalog.ProductsPerPage)
	assert.Equal(t, 10, cfg.Catalog.SearchLimit)
	assert.Equal(t, 3, cfg.Catalog.SearchMinLength)
	assert.Equal(t, 2*time.Hour, cfg.Session.IdleTTL)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
}

func TestNormalize_RequiresBackendURL(t *testing.T) {
	cfg := &Config{}

	err := cfg.normalize()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "backend.baseUrl")
}

func TestNormalize_RequiresBotTokenOutsideDevMode(t *testing.T) {
	cfg := &Config{}
	cfg.Backend.BaseURL = "http://backend.local"

	err := cfg.normalize()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "auth.botToken")

	cfg.Auth.AllowDevUser = true
	assert.NoError(t, cfg.normalize())
}

func TestFindConfigFile_ExplicitOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "staging.yaml")
	require.NoError(t, os.WriteFile(path, []byte("backend:\n  baseUrl: http://x\n"), 0o600))

	t.Setenv(configFileEnv, path)

	found, err := findConfigFile("config", nil)
	require.NoError(t, err)
	assert.Equal(t, path, found)

	t.Setenv(configFileEnv, filepath.Join(dir, "missing.yaml"))
	_, err = findConfigFile("config", nil)
	assert.Error(t, err)
}

func TestLoadWithEnv_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := "backend:\n  baseUrl: http://file.local\n  timeout: 5s\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	t.Setenv(configFileEnv, path)
	t.Setenv("BACKEND_BASEURL", "http://env.local")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)
	assert.Equal(t, "http://env.local", cfg.Backend.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Backend.Timeout)
}
