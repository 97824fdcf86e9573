package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func requiredConfig() *StructuredConfig {
	return &StructuredConfig{
		App:     App{TokenSignKey: "secret"},
		Storage: Storage{DB: DB{DSN: ":memory:"}},
	}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that a builder without sources fails
// validation because the signing key and DSN are required.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()

	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

func TestBuild_MissingDSN(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{App: App{TokenSignKey: "secret"}})

	cfg, err := b.build()

	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_AppliesDefaults(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, requiredConfig())

	cfg, err := b.build()

	require.NoError(t, err)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultGeocoderBaseURL, cfg.Adapter.Geocoder.BaseURL)
	assert.Equal(t, DefaultGeocoderTimeout, cfg.Adapter.Geocoder.Timeout)
	assert.Equal(t, DefaultVersion, cfg.App.Version)
}

// TestBuild_LaterSourcesOverride verifies that non-zero fields of later
// sources win while zero fields keep earlier values.
func TestBuild_LaterSourcesOverride(t *testing.T) {
	first := requiredConfig()
	first.App.TokenIssuer = "env-issuer"
	first.App.Version = "1.0.0"

	second := &StructuredConfig{App: App{TokenIssuer: "flag-issuer"}}

	b := newConfigBuilder()
	b.configs = append(b.configs, first, second)

	cfg, err := b.build()

	require.NoError(t, err)
	assert.Equal(t, "flag-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "secret", cfg.App.TokenSignKey)
}

func TestBuild_NegativeDurationsRejected(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *StructuredConfig)
		want   error
	}{
		{"token duration", func(c *StructuredConfig) { c.App.TokenDuration = -time.Second }, ErrInvalidAppConfigs},
		{"request timeout", func(c *StructuredConfig) { c.Server.RequestTimeout = -time.Second }, ErrInvalidServerConfigs},
		{"geocoder timeout", func(c *StructuredConfig) { c.Adapter.Geocoder.Timeout = -time.Second }, ErrInvalidAdapterConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := requiredConfig()
			tt.mutate(cfg)

			b := newConfigBuilder()
			b.configs = append(b.configs, cfg)

			_, err := b.build()
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoPathSkips(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, requiredConfig())

	b.withJSON()

	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_AppendsParsedFile(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{"token_issuer": "json-issuer"},
	})

	base := requiredConfig()
	base.JSONFilePath = path

	b := newConfigBuilder()
	b.configs = append(b.configs, base)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "json-issuer", cfg.App.TokenIssuer)
}

func TestWithJSON_MissingFileRecordsError(t *testing.T) {
	base := requiredConfig()
	base.JSONFilePath = "/definitely/not/here.json"

	b := newConfigBuilder()
	b.configs = append(b.configs, base)
	b.withJSON()

	assert.Error(t, b.err)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

func TestGetStructuredConfig_EnvFlagsAndJSON(t *testing.T) {
	clearEnvVars(t)
	t.Setenv(dotenvPathVar, "")
	chdir(t, t.TempDir())

	t.Setenv("APP_TOKEN_SIGN_KEY", "env-secret")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://env/db")
	t.Setenv("SERVER_ADDRESS", "localhost:8080")

	jsonPath := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{"version": "9.9.9"},
	})

	cfg, err := GetStructuredConfig([]string{"-a", "127.0.0.1:9000", "-c", jsonPath})

	require.NoError(t, err)
	assert.Equal(t, "env-secret", cfg.App.TokenSignKey)
	assert.Equal(t, "postgres://env/db", cfg.Storage.DB.DSN)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, "9.9.9", cfg.App.Version)
}

func TestGetStructuredConfig_BadFlag(t *testing.T) {
	clearEnvVars(t)
	t.Setenv(dotenvPathVar, "")
	chdir(t, t.TempDir())

	cfg, err := GetStructuredConfig([]string{"-nope"})

	assert.Nil(t, cfg)
	assert.Error(t, err)
}
