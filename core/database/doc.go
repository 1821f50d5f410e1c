// Package database handles the connection to the MySQL catalog store.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) that
// configures the MySQL DSN, connection pool, and timeouts based on the
// application's configuration, plus a Migrate helper that automigrates the
// schema for the models the application owns.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//	if err := database.Migrate(db, &models.Game{}, &models.SyncLog{}); err != nil {
//	    log.Fatal("Schema migration failed", err)
//	}
package database
