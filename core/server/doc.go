// Package server holds the HTTP server configuration.
//
// The main application entry point (cmd/start.go) builds the Fiber app; this
// package only defines the settings it is started with.
//
// # Configuration
//
// The Config struct defines the HTTP port, the API key protecting the admin
// routes, and the graceful shutdown timeout.
package server
