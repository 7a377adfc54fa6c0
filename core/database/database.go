package database

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	// Pure-Go sqlite driver, registered as "sqlite".
	_ "modernc.org/sqlite"
)

// Connect opens the database described by cfg.
// sqlite is the default and stores everything in a single local file; mysql is
// supported for operators who already run one next to the game server.
func Connect(cfg Config) (*gorm.DB, error) {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 5
	}

	var dialector gorm.Dialector
	switch cfg.Driver {
	case DriverSQLite, "":
		if cfg.Name != ":memory:" {
			if err := os.MkdirAll(filepath.Dir(cfg.Name), 0o755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
		dialector = sqlite.New(sqlite.Config{
			DriverName: "sqlite",
			DSN:        cfg.Name,
		})
	case DriverMySQL:
		// Special characters in the password must be URL encoded.
		userInfo := url.UserPassword(cfg.User, cfg.Password).String()
		dsn := fmt.Sprintf("%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local&timeout=%ds&readTimeout=%ds&writeTimeout=%ds",
			userInfo, cfg.Host, cfg.Port, cfg.Name, timeout, timeout, timeout)
		dialector = mysql.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	// Store failures are reported through the application logger, not gorm's.
	gormConfig := &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if db.Dialector.Name() == DriverSQLite {
		// One connection: sqlite serialises writers anyway, and every :memory:
		// connection would otherwise see its own empty database.
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetConnMaxLifetime(0)
		if cfg.Name != ":memory:" {
			if err := initPragmas(db); err != nil {
				_ = sqlDB.Close()
				return nil, err
			}
		}
	} else {
		sqlDB.SetMaxIdleConns(4)
		sqlDB.SetMaxOpenConns(16)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeout)*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// Close releases the connection pool behind db.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func initPragmas(db *gorm.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=2000;",
	}
	for _, p := range pragmas {
		if err := db.Exec(p).Error; err != nil {
			return fmt.Errorf("failed to apply %s: %w", p, err)
		}
	}
	return nil
}
