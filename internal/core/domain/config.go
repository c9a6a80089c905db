package domain

import (
	"fmt"
	"strings"
	"time"
)

const DefaultTimeout = 30 * time.Second

// Config holds the defaults applied to every redeploy.
type Config struct {
	DefaultCredential string    `yaml:"defaultCredential,omitempty"`
	Timeout           string    `yaml:"timeout,omitempty"`
	AlwaysPull        bool      `yaml:"alwaysPull"`
	Log               LogConfig `yaml:"log"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func CreateDefaultConfig() Config {
	return Config{
		DefaultCredential: "rancher",
		Timeout:           DefaultTimeout.String(),
		AlwaysPull:        false,
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// TimeoutDuration returns the configured HTTP timeout, or DefaultTimeout when unset.
func (c *Config) TimeoutDuration() time.Duration {
	if c.Timeout == "" {
		return DefaultTimeout
	}
	timeout, err := time.ParseDuration(c.Timeout)
	if err != nil || timeout <= 0 {
		return DefaultTimeout
	}
	return timeout
}

func (c *Config) Validate() error {
	if c.Timeout != "" {
		timeout, err := time.ParseDuration(c.Timeout)
		if err != nil {
			return fmt.Errorf("invalid timeout '%s': %v", c.Timeout, err)
		}
		if timeout <= 0 {
			return fmt.Errorf("timeout must be positive, got '%s'", c.Timeout)
		}
	}

	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log level '%s'", c.Log.Level)
	}

	switch strings.ToLower(c.Log.Format) {
	case "", "console", "json":
	default:
		return fmt.Errorf("invalid log format '%s'", c.Log.Format)
	}

	return nil
}
