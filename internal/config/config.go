package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	Store  StoreConfig  `mapstructure:"store"  validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// RequestDelayMs is an artificial hold, in milliseconds, applied by the
	// transport layer before a request reaches its handler. Zero disables it.
	RequestDelayMs int `mapstructure:"request_delay_ms" validate:"gte=0"`
}

// StoreConfig contains the capacity bounds of the in-memory session store.
type StoreConfig struct {
	// MaxSessions caps the number of concurrently tracked API keys.
	// The oldest-issued key is evicted when the cap would be exceeded.
	MaxSessions int `mapstructure:"max_sessions" validate:"required,gt=0"`

	// MaxTasksPerSession caps the task list of a single session.
	// The oldest task is evicted when the cap would be exceeded.
	MaxTasksPerSession int `mapstructure:"max_tasks_per_session" validate:"required,gt=0"`
}
