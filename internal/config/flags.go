package config

import (
	"flag"
	"strconv"
	"time"
)

// ParseFlags parses all configuration flags from os.Args.
//
// Flags:
//
//	-token-ttl session token lifetime (e.g. "1h")
//	-lockout-threshold failed logins before lockout
//	-lockout-window lockout duration (e.g. "5m")
//	-revoke-previous-token drop the previous token on re-login
//	-argon-time Argon2id iterations
//	-argon-memory Argon2id memory in KiB
//	-argon-threads Argon2id parallelism
//	-log-file client log file path
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var tokenTTL, lockoutWindow time.Duration
	var lockoutThreshold int
	var revokePreviousToken bool
	var argonTime, argonMemory uint32
	var argonThreads uint8
	var logFile string
	var jsonConfigPath string

	flag.DurationVar(&tokenTTL, "token-ttl", 0, "Session token lifetime (e.g., 1h, 30m)")
	flag.IntVar(&lockoutThreshold, "lockout-threshold", 0, "Failed logins before the account is locked")
	flag.DurationVar(&lockoutWindow, "lockout-window", 0, "Lockout duration (e.g., 5m)")
	flag.BoolVar(&revokePreviousToken, "revoke-previous-token", false, "Revoke the previous token on re-login")
	flag.Func("argon-time", "Argon2id iterations", uint32Flag(&argonTime))
	flag.Func("argon-memory", "Argon2id memory in KiB", uint32Flag(&argonMemory))
	flag.Func("argon-threads", "Argon2id parallelism (1-255)", uint8Flag(&argonThreads))
	flag.StringVar(&logFile, "log-file", "", "Client log file path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			TokenTTL:            tokenTTL,
			LockoutThreshold:    lockoutThreshold,
			LockoutWindow:       lockoutWindow,
			RevokePreviousToken: revokePreviousToken,
		},
		Credentials: Credentials{
			ArgonTime:      argonTime,
			ArgonMemoryKiB: argonMemory,
			ArgonThreads:   argonThreads,
		},
		Client: Client{
			LogFile: logFile,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// uint32Flag parses a flag value into target, rejecting values that do not
// fit in 32 bits instead of truncating them.
func uint32Flag(target *uint32) func(string) error {
	return func(s string) error {
		v, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			return err
		}
		*target = uint32(v)
		return nil
	}
}

// uint8Flag is the 8-bit counterpart of uint32Flag.
func uint8Flag(target *uint8) func(string) error {
	return func(s string) error {
		v, err := strconv.ParseUint(s, 10, 8)
		if err != nil {
			return err
		}
		*target = uint8(v)
		return nil
	}
}
