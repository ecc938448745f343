package config

import "time"

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Timeout:      30 * time.Second,
		MaxRedirects: 10,
		NoColor:      false,
		Style:        "monokai",
		Verbose:      false,
	}
}

// IsDefault returns true if the config matches defaults
func (c *Config) IsDefault() bool {
	return *c == *DefaultConfig()
}
