package database

// Config holds configuration for the database connection.
type Config struct {
	// Driver is the database driver (sqlite, mysql).
	Driver string `mapstructure:"driver" default:"sqlite"`
	// Name is the database name, or the database file path for sqlite.
	Name string `mapstructure:"name" default:"data/generators.db"`
	// Host is the database host (mysql only).
	Host string `mapstructure:"host" default:"localhost"`
	// Port is the database port (mysql only).
	Port int `mapstructure:"port" default:"3306"`
	// User is the database user (mysql only).
	User string `mapstructure:"user" default:"root"`
	// Password is the database password (mysql only).
	Password string `mapstructure:"password" default:""`
	// TimeoutSeconds bounds connection setup and I/O.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"5"`
}

const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)
