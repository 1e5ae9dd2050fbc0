package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/eslsoft/lingopick/internal/infrastructure/config"
	_ "github.com/mattn/go-sqlite3"
)

// NewConnection opens the SQLite catalog database declared in the config.
// The returned cleanup closes the handle.
func NewConnection(cfg *config.Config) (*sql.DB, func(), error) {
	if cfg.Catalog.Source != "sqlite" {
		return nil, nil, fmt.Errorf("catalog source %q does not use a database", cfg.Catalog.Source)
	}

	db, err := sql.Open("sqlite3", cfg.Catalog.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("open catalog database: %w", err)
	}
	// The sqlite3 driver serializes writes itself; a single connection
	// avoids SQLITE_BUSY on concurrent reloads.
	db.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		closeDB := func() { _ = db.Close() }
		return nil, closeDB, fmt.Errorf("ping catalog database: %w", err)
	}

	return db, func() { _ = db.Close() }, nil
}
