// Package config manages environment variables.
//
// It reads variables from the process environment (and a `.env` file when
// one exists), loads them into structured Go types and validates that the
// required values are present so they can be reused across the application
// runtime.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Validate required values so the app fails fast on bad config.
//   - Provide sane defaults so the service starts with an empty environment.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	// Side-effect import: if a `.env` file exists, it is loaded into the
	// process env before any env var is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

/*
	Env vars are read using the ITEMS_ prefix. The prefix is removed, the key is
	lowercased and a double underscore marks nesting:

	  ITEMS_SERVER__READ_TIMEOUT -> server.read_timeout -> Config.Server.ReadTimeout

	The conventional PORT variable is honoured on top of that and wins over
	ITEMS_SERVER__PORT.
*/

const (
	// EnvPrefix is the prefix every application env var carries.
	EnvPrefix = "ITEMS_"

	// DefaultPort is used when neither PORT nor ITEMS_SERVER__PORT is set.
	DefaultPort = "3000"

	// ServiceName identifies the service in logs and APM.
	ServiceName = "items-api"
)

// Config is the root configuration object for the application.
//
// The `koanf:"..."` tags specify where koanf maps values from and the
// `validate:"..."` tags are enforced by go-playground/validator.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
//
// Timeouts are seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required,numeric"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required,min=1"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required,min=1"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required,min=1"`
	ShutdownTimeout    int      `koanf:"shutdown_timeout" validate:"required,min=1"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required,min=1"`

	// RateLimit is the sustained number of requests per second allowed per
	// client IP. Zero disables rate limiting.
	RateLimit      float64 `koanf:"rate_limit" validate:"min=0"`
	RateLimitBurst int     `koanf:"rate_limit_burst" validate:"min=0"`
}

// DefaultConfig returns the configuration used when no env var overrides it.
func DefaultConfig() *Config {
	return &Config{
		Primary: Primary{
			Env: "development",
		},
		Server: ServerConfig{
			Port:               DefaultPort,
			ReadTimeout:        30,
			WriteTimeout:       30,
			IdleTimeout:        60,
			ShutdownTimeout:    10,
			CORSAllowedOrigins: []string{"*"},
		},
		Observability: DefaultObservabilityConfig(),
	}
}

// LoadConfig loads configuration from environment variables on top of
// DefaultConfig, validates it, applies observability defaults and returns the
// resulting config.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	// PORT is the platform convention (Heroku, Cloud Run, ...). Anything else
	// starting with "PORT", and an empty PORT, is ignored.
	err = k.Load(env.ProviderWithValue("PORT", ".", func(key, value string) (string, interface{}) {
		if key != "PORT" || value == "" {
			return "", nil
		}
		return "server.port", value
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load PORT: %w", err)
	}

	mainConfig := DefaultConfig()

	// Only keys that are present are overwritten, defaults survive.
	// Comma separated values decode into slices (CORS origins).
	err = k.UnmarshalWithConf("", mainConfig, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			Result:           mainConfig,
			WeaklyTypedInput: true,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}

	// Service name and environment always follow the primary config so every
	// log line and trace is tagged consistently.
	mainConfig.Observability.ServiceName = ServiceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}
