package database

import (
	"database/sql"
	"fmt"
	"log"

	_ "modernc.org/sqlite"
)

// Config holds database configuration
type Config struct {
	Path     string
	ReadOnly bool // Serving never writes to the dataset
}

// Open opens a sqlite dataset file. Writable databases are migrated to the
// dataset layout, which is how fixtures are built; serving always opens read-only.
func Open(cfg Config) (*sql.DB, error) {
	dsn := cfg.Path + "?_pragma=busy_timeout(5000)"
	if cfg.ReadOnly {
		// Applied per connection, so every pooled connection is read-only
		dsn += "&_pragma=query_only(1)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Set connection pool settings
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database %s: %w", cfg.Path, err)
	}

	if !cfg.ReadOnly {
		if err := Migrate(db); err != nil {
			db.Close()
			return nil, err
		}
	}

	log.Printf("Database opened: %s (read-only=%v)", cfg.Path, cfg.ReadOnly)
	return db, nil
}
