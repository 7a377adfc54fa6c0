// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM to open the durable generator store. The
// default driver is sqlite on a single local file (pure-Go modernc driver, WAL
// journal, one connection). mysql is accepted for deployments that prefer a
// shared server.
//
// # Connect
//
// Connect opens, configures and pings the connection. Gorm's own logger is
// silenced; callers log failures with the application logger.
//
// # Schema Inspection
//
// GetTableColumns and MissingColumns read the live table layout so the generator
// store can warn when an existing table does not have the expected columns.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//	defer database.Close(db)
package database
