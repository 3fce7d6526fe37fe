// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_TOKEN_TTL":             "2h",
		"APP_LOCKOUT_THRESHOLD":     "5",
		"APP_LOCKOUT_WINDOW":        "10m",
		"APP_REVOKE_PREVIOUS_TOKEN": "true",

		"CREDENTIALS_ARGON_TIME":       "2",
		"CREDENTIALS_ARGON_MEMORY_KIB": "1024",
		"CREDENTIALS_ARGON_THREADS":    "1",
		"CREDENTIALS_KEY_LENGTH":       "16",
		"CREDENTIALS_SALT_LENGTH":      "12",

		"CLIENT_LOG_FILE": "/tmp/client.log",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, 2*time.Hour, cfg.App.TokenTTL)
	assert.Equal(t, 5, cfg.App.LockoutThreshold)
	assert.Equal(t, 10*time.Minute, cfg.App.LockoutWindow)
	assert.True(t, cfg.App.RevokePreviousToken)

	assert.Equal(t, uint32(2), cfg.Credentials.ArgonTime)
	assert.Equal(t, uint32(1024), cfg.Credentials.ArgonMemoryKiB)
	assert.Equal(t, uint8(1), cfg.Credentials.ArgonThreads)
	assert.Equal(t, uint32(16), cfg.Credentials.KeyLength)
	assert.Equal(t, uint32(12), cfg.Credentials.SaltLength)

	assert.Equal(t, "/tmp/client.log", cfg.Client.LogFile)
}

func TestParseEnv_PartialFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_LOCKOUT_THRESHOLD": "4",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, 4, cfg.App.LockoutThreshold)
	assert.Zero(t, cfg.App.TokenTTL)
	assert.Zero(t, cfg.App.LockoutWindow)
	assert.False(t, cfg.App.RevokePreviousToken)
	assert.Equal(t, Credentials{}, cfg.Credentials)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	clearEnvVars(t)

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, StructuredConfig{}, *cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_LOCKOUT_WINDOW": "invalid_duration",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "env")
}

func TestParseEnv_InvalidThreshold(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_LOCKOUT_THRESHOLD": "three",
	})

	cfg := &StructuredConfig{}
	require.Error(t, parseEnv(cfg))
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected time.Duration
	}{
		{"hours", "2h", 2 * time.Hour},
		{"minutes", "45m", 45 * time.Minute},
		{"seconds", "30s", 30 * time.Second},
		{"combined", "1h30m", 90 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnvVars(t, map[string]string{
				"APP_TOKEN_TTL": tt.envValue,
			})

			cfg := &StructuredConfig{}
			err := parseEnv(cfg)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.App.TokenTTL)
		})
	}
}

// Helpers

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",

		"APP_TOKEN_TTL",
		"APP_LOCKOUT_THRESHOLD",
		"APP_LOCKOUT_WINDOW",
		"APP_REVOKE_PREVIOUS_TOKEN",

		"CREDENTIALS_ARGON_TIME",
		"CREDENTIALS_ARGON_MEMORY_KIB",
		"CREDENTIALS_ARGON_THREADS",
		"CREDENTIALS_KEY_LENGTH",
		"CREDENTIALS_SALT_LENGTH",

		"CLIENT_LOG_FILE",
	}
	for _, k := range keys {
		// t.Setenv registers a restore of the original value on cleanup
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}
