package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	Store  StoreConfig  `mapstructure:"store"  validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port              int           `mapstructure:"port"                validate:"required,gt=0,lt=65536"`
	LogLevel          string        `mapstructure:"log_level"           validate:"required,oneof=debug info warn error"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout"    validate:"gt=0"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout" validate:"gt=0"`
}

// StoreConfig contains settings for the in-memory task store.
type StoreConfig struct {
	// InitialCapacity pre-sizes the task list. It is a hint, not a limit.
	InitialCapacity int `mapstructure:"initial_capacity" validate:"gte=0"`
}
