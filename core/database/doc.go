// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to properly configure
// connections based on the application's configuration. MySQL is the production
// driver; SQLite serves local files and in-memory test databases.
//
// # Connect
//
// The generic Connect function establishes a connection to the database based on
// the configured driver. The connection is optional: the application degrades to
// the workbook reference backend when no database is reachable.
//
// # Schema Inspection
//
// The package includes tools to inspect the database schema, used by the
// database reference backend to verify that the editorial tables carry every
// declared column before querying them.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Warn("Database connection failed", zap.Error(err))
//	}
//
//	missing, err := database.MissingColumns(db, "review_status", columns)
package database
