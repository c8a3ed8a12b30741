package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config represents application configuration
type Config struct {
	Report ReportConfig `mapstructure:"report"`
	Log    LogConfig    `mapstructure:"log"`
}

// ReportConfig represents report output configuration
type ReportConfig struct {
	Output string `mapstructure:"output"` // Default destination for the report command
	Title  string `mapstructure:"title"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"` // Empty logs to the console
	Level string `mapstructure:"level"`
}

// Load loads configuration from file.
// A missing file is not an error: defaults and environment variables apply.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("report.output", "easter.html")
	v.SetDefault("report.title", "Velikonoce")
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")

	// EASTER_REPORT_TITLE overrides report.title
	v.SetEnvPrefix("easter")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			v.SetConfigFile(configPath)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to stat config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Report.Title) == "" {
		return fmt.Errorf("report.title is required")
	}

	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error, got '%s'", c.Log.Level)
	}

	return nil
}

// GetLogLevel returns the configured log level, defaulting to info
func (c *LogConfig) GetLogLevel() string {
	if c.Level == "" {
		return "info"
	}
	return strings.ToLower(c.Level)
}

// ExpandEnvVars expands environment variables in config strings
func (c *Config) ExpandEnvVars() {
	c.Report.Output = os.ExpandEnv(c.Report.Output)
	c.Log.File = os.ExpandEnv(c.Log.File)
}
