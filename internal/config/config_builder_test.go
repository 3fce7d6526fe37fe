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

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no sources yields the
// defaults.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)

	want := Default()
	assert.Equal(t, &want, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourceWins verifies the override order of merged sources.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{LockoutThreshold: 4, TokenTTL: time.Minute}},
		&StructuredConfig{App: App{LockoutThreshold: 7}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.App.LockoutThreshold)
	assert.Equal(t, time.Minute, cfg.App.TokenTTL)
	assert.Equal(t, 5*time.Minute, cfg.App.LockoutWindow, "unset fields fall back to defaults")
}

// TestBuild_InvalidConfig verifies that validation errors surface.
func TestBuild_InvalidConfig(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Credentials: Credentials{SaltLength: 4}})

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidCredentialsConfigs)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_LOCKOUT_WINDOW": "1m",
	})

	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())

	require.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
	assert.Equal(t, time.Minute, b.configs[0].App.LockoutWindow)
}

func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_TOKEN_TTL": "forever",
	})

	b := newConfigBuilder().withEnv()
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	assert.Same(t, b, b.withJSON())
	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.LockoutThreshold = 9
	payload.App.TokenTTL = Duration(time.Minute)
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, 9, b.configs[1].App.LockoutThreshold)
	assert.Equal(t, time.Minute, b.configs[1].App.TokenTTL)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})

	b.withJSON()
	assert.Error(t, b.err)
}

// TestWithJSON_UsesLastPath verifies that when multiple configs have a
// JSONFilePath, the last non-empty one wins.
func TestWithJSON_UsesLastPath(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.LockoutThreshold = 11
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: "/nonexistent/first.json"},
		&StructuredConfig{JSONFilePath: path},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, 11, b.configs[2].App.LockoutThreshold)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

// TestGetStructuredConfig_Precedence verifies env < flags < JSON.
func TestGetStructuredConfig_Precedence(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.LockoutWindow = Duration(7 * time.Minute)
	path := writeTempJSONConfig(t, payload)

	setEnvVars(t, map[string]string{
		"APP_LOCKOUT_THRESHOLD": "6",
		"APP_LOCKOUT_WINDOW":    "1m",
		"APP_TOKEN_TTL":         "10m",
	})
	resetFlags(t, "-lockout-threshold", "8", "-config", path)

	cfg, err := GetStructuredConfig()
	require.NoError(t, err)

	assert.Equal(t, 10*time.Minute, cfg.App.TokenTTL)
	assert.Equal(t, 8, cfg.App.LockoutThreshold)
	assert.Equal(t, 7*time.Minute, cfg.App.LockoutWindow)
	assert.Equal(t, Default().Credentials, cfg.Credentials)
}
