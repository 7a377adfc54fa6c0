package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"blocks-generator/core/database"
	"blocks-generator/core/generator"
	"blocks-generator/core/logger"
	"blocks-generator/core/server"
	"blocks-generator/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the backup object storage (S3, MinIO).
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the generators database.
	Database database.Config `mapstructure:"database"`
	// Generator holds the engine settings.
	Generator generator.Config `mapstructure:"generator"`
	// Generators maps each generator type to its palette.
	Generators map[string]generator.TypeConfig `mapstructure:"generators"`
}

// LoadConfig loads configuration from config.yaml, the .env file and
// environment variables, in increasing order of precedence.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env file if it exists
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// 2. Optional config.yaml, mainly for the generators palette section
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Map environment variables to nested keys (e.g. SERVER_PORT -> server.port)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks settings that would prevent the engine from starting.
func (c *Config) Validate() error {
	if err := c.Generator.Validate(); err != nil {
		return err
	}
	switch c.Database.Driver {
	case database.DriverSQLite, database.DriverMySQL:
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	return nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		// Build the key
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		switch field.Type.Kind() {
		case reflect.Struct:
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		case reflect.Map, reflect.Slice:
			// Collections only come from the config file.
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
