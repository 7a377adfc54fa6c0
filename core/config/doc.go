// Package config provides configuration management for the blocks generator.
//
// It utilizes Viper for loading configuration from environment variables,
// a .env file and an optional config.yaml.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Database: SQLite or MySQL connection details
//   - Storage: S3/MinIO credentials and backup bucket settings
//   - Log: Logging level and format
//   - Generator: engine mode, marker and booster materials, intervals and delays
//   - Generators: palette per generator type, only readable from config.yaml
//
// Scalar keys can be overridden by environment variables, e.g.
// GENERATOR_INTERVAL_MS overrides generator.interval_ms.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Generator.Mode)
package config
