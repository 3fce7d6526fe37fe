// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// minSaltLength is the smallest salt accepted for credential derivation.
const minSaltLength = 8

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenTTL <= 0 || cfg.App.LockoutWindow <= 0 || cfg.App.LockoutThreshold < 1 {
		return fmt.Errorf("%w: token ttl %s, lockout window %s, lockout threshold %d",
			ErrInvalidAppConfigs, cfg.App.TokenTTL, cfg.App.LockoutWindow, cfg.App.LockoutThreshold)
	}

	c := cfg.Credentials
	if c.ArgonTime == 0 || c.ArgonMemoryKiB == 0 || c.ArgonThreads == 0 || c.KeyLength == 0 || c.SaltLength < minSaltLength {
		return fmt.Errorf("%w: %+v", ErrInvalidCredentialsConfigs, c)
	}

	return nil
}
