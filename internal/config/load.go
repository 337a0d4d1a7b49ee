package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Defaults applied when neither the environment nor a config file sets a value.
const (
	defaultPort               = 8080
	defaultLogLevel           = "info"
	defaultRequestDelayMs     = 0
	defaultMaxSessions        = 10000
	defaultMaxTasksPerSession = 10
)

// Load configuration from environment variables and optionally a config file.
// Environment variables (prefixed TASKPAD_) take precedence over values from
// config.yaml, which takes precedence over the defaults. A .env file in the
// working directory is loaded first if present.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	// Best effort: a missing .env file is not an error.
	_ = godotenv.Load()

	v := viper.New()

	v.SetDefault("server.port", defaultPort)
	v.SetDefault("server.log_level", defaultLogLevel)
	v.SetDefault("server.request_delay_ms", defaultRequestDelayMs)
	v.SetDefault("store.max_sessions", defaultMaxSessions)
	v.SetDefault("store.max_tasks_per_session", defaultMaxTasksPerSession)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("TASKPAD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
