package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "defaults are valid", mutate: func(*StructuredConfig) {}},
		{name: "zero token ttl", mutate: func(cfg *StructuredConfig) { cfg.App.TokenTTL = 0 }, wantErr: ErrInvalidAppConfigs},
		{name: "zero lockout window", mutate: func(cfg *StructuredConfig) { cfg.App.LockoutWindow = 0 }, wantErr: ErrInvalidAppConfigs},
		{name: "zero threshold", mutate: func(cfg *StructuredConfig) { cfg.App.LockoutThreshold = 0 }, wantErr: ErrInvalidAppConfigs},
		{name: "zero argon memory", mutate: func(cfg *StructuredConfig) { cfg.Credentials.ArgonMemoryKiB = 0 }, wantErr: ErrInvalidCredentialsConfigs},
		{name: "zero argon threads", mutate: func(cfg *StructuredConfig) { cfg.Credentials.ArgonThreads = 0 }, wantErr: ErrInvalidCredentialsConfigs},
		{name: "short salt", mutate: func(cfg *StructuredConfig) { cfg.Credentials.SaltLength = 4 }, wantErr: ErrInvalidCredentialsConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
