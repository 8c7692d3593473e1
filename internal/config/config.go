// Package config loads defaults for the command line from the environment.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every variable name, e.g. WINDOW_GETTER_FORMAT.
const Prefix = "WINDOW_GETTER"

// Config holds the environment defaults. Command line flags override them.
type Config struct {
	Format string `envconfig:"FORMAT" default:"yaml"`
	Pretty bool   `envconfig:"PRETTY" default:"false"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"warn"`
	LogDev   bool   `envconfig:"LOG_DEV" default:"false"`

	// WindowID is used by `get` when no id argument is given.
	WindowID string `envconfig:"WINDOW_ID"`

	// MCPTransport is checked by `serve` only, so a bad value never breaks
	// the other commands.
	MCPTransport string `envconfig:"MCP_TRANSPORT" default:"stdio"`
	MCPPort      int    `envconfig:"MCP_PORT" default:"8080"`

	MapWidth int `envconfig:"MAP_WIDTH" default:"1600"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Format:       "yaml",
		LogLevel:     "warn",
		MCPTransport: "stdio",
		MCPPort:      8080,
		MapWidth:     1600,
	}
}
