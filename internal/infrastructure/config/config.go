// Package config provides configuration management for the application.
// It follows the 12-Factor App methodology by loading configuration
// from environment variables and supporting external configuration files.
//
// 12-Factor App Compilance:
//   - III. Config: Store config in the environment
//   - Configuration is loaded from environment variables prefixed with MEASURE_
//   - An optional config.yaml may override the defaults
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// ErrInvalidConfig is returned when a loaded value is out of range.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds all application configuration.
// All fields are populated from environment variables or config files.
type Config struct {
	// App contains application-level configuration
	App AppConfig `mapstructure:"app"`

	// Log contains logging configuration
	Log LogConfig `mapstructure:"log"`

	// Packing contains the defaults of the pack command
	Packing PackingConfig `mapstructure:"packing"`

	// Output contains result printing configuration
	Output OutputConfig `mapstructure:"output"`
}

// AppConfig contains application-level configuration.
type AppConfig struct {
	// Name of the application
	Name string `mapstructure:"name"`

	// Environment the application is running in (e.g., development, production)
	Environment string `mapstructure:"environment"`

	// Version of the application
	Version string `mapstructure:"version"`
}

// LogConfig contains logging configuration.
type LogConfig struct {
	// Level is the minimum log level (debug, info, warn, error)
	Level string `mapstructure:"level"`

	// Format is the log encoding (json, console)
	Format string `mapstructure:"format"`
}

// PackingConfig contains packing defaults.
type PackingConfig struct {
	// DefaultBoxQuantity is the supply of a box type that does not state one
	DefaultBoxQuantity int `mapstructure:"default_box_quantity"`

	// Rounding is how centimeters and grams become integers (truncate, nearest, ceil)
	Rounding string `mapstructure:"rounding"`

	// AllowRotation is the rotation permission of items that do not state one
	AllowRotation bool `mapstructure:"allow_rotation"`
}

// OutputConfig contains result printing configuration.
type OutputConfig struct {
	// Pretty enables indented JSON
	Pretty bool `mapstructure:"pretty"`
}

// Load loads the configuration from environment variables and config files.
// It follows this precedence (higest to lowest):
//  1. Environment variables
//  2. Config file (if provided)
//  3. Default values
//
// Parameters:
//   - file: explicit config file path; empty searches ., ./configs and /etc/measure-go
//
// Returns:
//   - *Config: The loaded configuration
//   - error: Any error encountered during loading or validation
func Load(file string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	// Set config file settings
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/measure-go")
	}

	// Read config file if exists
	if err := v.ReadInConfig(); err != nil {
		// A missing file is only an error when it was asked for explicitly
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Read environment variables
	v.SetEnvPrefix("MEASURE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Bind specific environment variables
	if err := bindEnvVars(v); err != nil {
		return nil, err
	}

	// Unmarshal into Config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	// App defaults
	v.SetDefault("app.name", "measure-go")
	v.SetDefault("app.environment", "production")
	v.SetDefault("app.version", "1.0.0")

	// Log defaults
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "json")

	// Packing defaults
	v.SetDefault("packing.default_box_quantity", 100)
	v.SetDefault("packing.rounding", "truncate")
	v.SetDefault("packing.allow_rotation", true)

	// Output defaults
	v.SetDefault("output.pretty", true)
}

// bindEnvVars binds specific environment variables to configuration keys.
func bindEnvVars(v *viper.Viper) error {
	// LOG_LEVEL is a common convention across tools
	if err := v.BindEnv("log.level", "MEASURE_LOG_LEVEL", "LOG_LEVEL"); err != nil {
		return fmt.Errorf("failed to bind env: %w", err)
	}
	return nil
}

// Validate checks the loaded values.
//
// Returns:
//   - error: ErrInvalidConfig describing the first invalid value
func (c *Config) Validate() error {
	if c.Packing.DefaultBoxQuantity <= 0 {
		return fmt.Errorf("%w: packing.default_box_quantity must be positive, got %d",
			ErrInvalidConfig, c.Packing.DefaultBoxQuantity)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("%w: log.format must be json or console, got %q", ErrInvalidConfig, c.Log.Format)
	}
	return nil
}

// IsDevelopment reports whether the application runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// MustLoad loads the configuration and panics on error.
// Use this in application entry points where configuration is required.
//
// Returns:
//   - *Config: The loaded configuration
func MustLoad(file string) *Config {
	cfg, err := Load(file)
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}
