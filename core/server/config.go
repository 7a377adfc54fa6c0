package server

import "time"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables auth.
	ApiKey string `mapstructure:"api_key" default:""`
	// ShutdownTimeoutSeconds bounds graceful shutdown of the HTTP server.
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" default:"10"`
}

// Addr returns the listen address for the configured port.
func (c Config) Addr() string {
	return ":" + c.Port
}

// ShutdownTimeout returns the graceful shutdown timeout, 10s if unset.
func (c Config) ShutdownTimeout() time.Duration {
	if c.ShutdownTimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}
