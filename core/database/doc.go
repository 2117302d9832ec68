// Package database handles database connections, migration, and schema
// inspection for the lexicon store.
//
// It wraps GORM to configure MySQL connections (sqlite for tests) based on
// the application's configuration.
//
// # Optimistic Concurrency
//
// Canonical records and suggestions carry a version column. SaveVersioned
// implements the compare-and-swap save every merge path uses; a stale write
// surfaces as ErrVersionConflict instead of silently overwriting.
//
// # Schema Inspection
//
// GetTableColumns retrieves column definitions for a table, used by the
// audit feature to verify the live schema matches the expected models.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//	err = database.Migrate(db, &models.Word{}, &models.Example{})
package database
