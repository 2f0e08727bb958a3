package services

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

const createResultsTable = `
CREATE TABLE IF NOT EXISTS game_results (
	id          UUID PRIMARY KEY,
	width       INTEGER NOT NULL,
	height      INTEGER NOT NULL,
	dark        INTEGER NOT NULL,
	light       INTEGER NOT NULL,
	winner      TEXT NOT NULL,
	final_board TEXT NOT NULL,
	finished_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// InitPostgres initializes the database connection and creates the tables we write to.
func InitPostgres(ctx context.Context, url string) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", url)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if _, err = db.ExecContext(ctx, createResultsTable); err != nil {
		return nil, fmt.Errorf("error creating game_results table: %w", err)
	}

	return db, nil
}
