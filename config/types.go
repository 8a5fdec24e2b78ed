package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// APIConfig holds ArtifactsMMO connection details
type APIConfig struct {
	URL       string        `mapstructure:"url" validate:"required,url"`
	Token     string        `mapstructure:"token" validate:"required"`
	Timeout   time.Duration `mapstructure:"timeout" validate:"gte=0"`
	PageSize  int           `mapstructure:"page_size" validate:"gte=0,lte=100"`
	UserAgent string        `mapstructure:"user_agent"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=console json"`
	Color  bool   `mapstructure:"color"`
}
