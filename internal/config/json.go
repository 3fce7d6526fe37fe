package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the shape accepted from a
// JSON file. Durations may be given as strings ("5m") or as nanoseconds.
type StructuredJSONConfig struct {
	App struct {
		TokenTTL            Duration `json:"token_ttl"`
		LockoutThreshold    int      `json:"lockout_threshold"`
		LockoutWindow       Duration `json:"lockout_window"`
		RevokePreviousToken bool     `json:"revoke_previous_token"`
	} `json:"app,omitempty"`

	Credentials struct {
		ArgonTime      uint32 `json:"argon_time"`
		ArgonMemoryKiB uint32 `json:"argon_memory_kib"`
		ArgonThreads   uint8  `json:"argon_threads"`
		KeyLength      uint32 `json:"key_length"`
		SaltLength     uint32 `json:"salt_length"`
	} `json:"credentials,omitempty"`

	Client struct {
		LogFile string `json:"log_file"`
	} `json:"client,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenTTL:            time.Duration(jsonCfg.App.TokenTTL),
			LockoutThreshold:    jsonCfg.App.LockoutThreshold,
			LockoutWindow:       time.Duration(jsonCfg.App.LockoutWindow),
			RevokePreviousToken: jsonCfg.App.RevokePreviousToken,
		},
		Credentials: Credentials{
			ArgonTime:      jsonCfg.Credentials.ArgonTime,
			ArgonMemoryKiB: jsonCfg.Credentials.ArgonMemoryKiB,
			ArgonThreads:   jsonCfg.Credentials.ArgonThreads,
			KeyLength:      jsonCfg.Credentials.KeyLength,
			SaltLength:     jsonCfg.Credentials.SaltLength,
		},
		Client: Client{
			LogFile: jsonCfg.Client.LogFile,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
