package oxml

import (
	"errors"
	"os"
	"strings"
	"sync"
)

// Config contains all configuration options for the oxml package
type Config struct {
	// LogLevel controls the verbosity of logging (debug, info, warn, error, off)
	LogLevel string
	// LogFormat selects the log formatter (text, json)
	LogFormat string
	// SoftBreaks makes SetText encode line breaks as <w:cr/> instead of <w:br/>.
	// Decoding treats both the same way.
	SoftBreaks bool
}

var (
	globalConfig      *Config
	globalConfigMutex sync.RWMutex
	configOnce        sync.Once
)

func init() {
	// Initialize global config from environment on first use
	configOnce.Do(func() {
		globalConfig = ConfigFromEnvironment()
	})
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		LogLevel:   "info",
		LogFormat:  "text",
		SoftBreaks: false,
	}
}

// ConfigFromEnvironment creates a configuration from environment variables
func ConfigFromEnvironment() *Config {
	config := DefaultConfig()

	// OXML_LOG_LEVEL
	if val := os.Getenv("OXML_LOG_LEVEL"); val != "" {
		config.LogLevel = strings.ToLower(strings.TrimSpace(val))
	}

	// OXML_LOG_FORMAT
	if val := os.Getenv("OXML_LOG_FORMAT"); val != "" {
		config.LogFormat = strings.ToLower(strings.TrimSpace(val))
	}

	// OXML_SOFT_BREAKS
	if val := os.Getenv("OXML_SOFT_BREAKS"); val != "" {
		config.SoftBreaks = parseBool(val)
	}

	return config
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
		"off":   true,
	}

	if !validLogLevels[c.LogLevel] {
		return errors.New("invalid log level: " + c.LogLevel)
	}

	if c.LogFormat != "text" && c.LogFormat != "json" {
		return errors.New("invalid log format: " + c.LogFormat)
	}

	return nil
}

// GetGlobalConfig returns the global configuration
func GetGlobalConfig() *Config {
	globalConfigMutex.RLock()
	defer globalConfigMutex.RUnlock()

	if globalConfig == nil {
		return DefaultConfig()
	}

	// Return a copy to prevent modification
	configCopy := *globalConfig
	return &configCopy
}

// SetGlobalConfig sets the global configuration
func SetGlobalConfig(config *Config) {
	globalConfigMutex.Lock()
	globalConfig = config
	globalConfigMutex.Unlock()

	// Update logger based on new config (outside the lock to avoid deadlock)
	UpdateLoggerFromConfig()
}

// parseBool parses a boolean value from a string
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "1" || s == "yes" || s == "on"
}
