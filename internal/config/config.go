package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
// It is constructed once at startup and passed to the components that
// need it; nothing reads configuration from ambient global state.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`

	// Connection pool limits. Zero values fall back to the defaults
	// set in Load.
	MaxOpenConns        int `mapstructure:"max_open_conns"         validate:"gte=0"`
	MaxIdleConns        int `mapstructure:"max_idle_conns"         validate:"gte=0"`
	ConnMaxLifetimeMins int `mapstructure:"conn_max_lifetime_mins" validate:"gte=0"`
}

// AuthConfig contains all authentication settings. The gateway
// authenticates callers with a single static bearer token compared
// against every request's Authorization header.
type AuthConfig struct {
	APIToken string `mapstructure:"api_token" validate:"required,min=16"`
}
