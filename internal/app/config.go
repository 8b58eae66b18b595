package app

import (
	"os"
	"strconv"
)

// AppID is the Fyne application identifier.
const AppID = "com.shhac.scratch"

// Config holds application-wide configuration.
type Config struct {
	// Debug enables debug logging and additional diagnostics
	Debug bool
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug: false,
	}
}

// ConfigFromEnv creates a configuration from environment variables.
// SCRATCH_DEBUG enables debug mode; unparseable values are ignored.
func ConfigFromEnv() *Config {
	cfg := DefaultConfig()

	if debugStr := os.Getenv("SCRATCH_DEBUG"); debugStr != "" {
		if debug, err := strconv.ParseBool(debugStr); err == nil {
			cfg.Debug = debug
		}
	}

	return cfg
}
