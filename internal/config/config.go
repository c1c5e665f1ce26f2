package config

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap/zapcore"
)

// Config holds the runtime settings, read from the environment (optionally
// seeded by a .env file) and overridden by root flags.
type Config struct {
	// Path of the inventory file. Empty means eggventory.txt in the working directory.
	DataFile string

	Theme    string
	LogLevel string
	NoColor  bool
}

var validThemes = []string{"classic", "neon", "mono"}

func Load() *Config {
	return &Config{
		DataFile: getEnv("EGGVENTORY_FILE", ""),
		Theme:    strings.ToLower(getEnv("EGGVENTORY_THEME", "classic")),
		LogLevel: strings.ToLower(getEnv("EGGVENTORY_LOG_LEVEL", "warn")),
		NoColor:  getEnvBool("NO_COLOR", false),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errs []string

	valid := false
	for _, t := range validThemes {
		if c.Theme == t {
			valid = true
			break
		}
	}
	if !valid {
		errs = append(errs, fmt.Sprintf("invalid theme '%s': must be one of %v", c.Theme, validThemes))
	}

	if _, err := c.Level(); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

// Level parses LogLevel for the zap logger.
func (c *Config) Level() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("invalid log level '%s': must be one of debug, info, warn, error", c.LogLevel)
	}
	return lvl, nil
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// getEnvBool treats any non-empty value other than 0/false/no as true,
// which matches the NO_COLOR convention.
func getEnvBool(key string, def bool) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	switch v {
	case "":
		return def
	case "0", "false", "no":
		return false
	default:
		return true
	}
}
