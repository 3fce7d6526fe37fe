// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-access-keeper application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the session and lockout policy of the access manager.
	App App `envPrefix:"APP_"`

	// Credentials holds the Argon2id parameters used to derive stored
	// password credentials.
	Credentials Credentials `envPrefix:"CREDENTIALS_"`

	// Client holds settings of the interactive terminal client.
	Client Client `envPrefix:"CLIENT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds the session and lockout policy.
type App struct {
	// TokenTTL is how long an issued session token stays valid.
	// Env: APP_TOKEN_TTL
	TokenTTL time.Duration `env:"TOKEN_TTL"`

	// LockoutThreshold is the number of consecutive failed logins that
	// locks an account.
	// Env: APP_LOCKOUT_THRESHOLD
	LockoutThreshold int `env:"LOCKOUT_THRESHOLD"`

	// LockoutWindow is how long a locked account rejects logins.
	// Env: APP_LOCKOUT_WINDOW
	LockoutWindow time.Duration `env:"LOCKOUT_WINDOW"`

	// RevokePreviousToken removes the user's previous token record when a
	// new login succeeds. Disabled by default, which leaves older tokens
	// usable until logout or expiry.
	// Env: APP_REVOKE_PREVIOUS_TOKEN
	RevokePreviousToken bool `env:"REVOKE_PREVIOUS_TOKEN"`
}

// Credentials holds Argon2id tuning parameters.
type Credentials struct {
	// Env: CREDENTIALS_ARGON_TIME
	ArgonTime uint32 `env:"ARGON_TIME"`
	// Env: CREDENTIALS_ARGON_MEMORY_KIB
	ArgonMemoryKiB uint32 `env:"ARGON_MEMORY_KIB"`
	// Env: CREDENTIALS_ARGON_THREADS
	ArgonThreads uint8 `env:"ARGON_THREADS"`
	// Env: CREDENTIALS_KEY_LENGTH
	KeyLength uint32 `env:"KEY_LENGTH"`
	// Env: CREDENTIALS_SALT_LENGTH
	SaltLength uint32 `env:"SALT_LENGTH"`
}

// Client holds settings of the interactive client.
type Client struct {
	// LogFile is where the client writes its log. Empty means a file next
	// to the executable.
	// Env: CLIENT_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Default returns the configuration used for every field that no source
// has set.
func Default() StructuredConfig {
	return StructuredConfig{
		App: App{
			TokenTTL:         time.Hour,
			LockoutThreshold: 3,
			LockoutWindow:    5 * time.Minute,
		},
		Credentials: Credentials{
			ArgonTime:      1,
			ArgonMemoryKiB: 64 * 1024,
			ArgonThreads:   4,
			KeyLength:      32,
			SaltLength:     16,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Fields left unset by every source take their values from [Default].
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
