package session

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/plateful/plateful/internal/client/migrations"
	"github.com/pressly/goose/v3"
)

// OpenDatabase opens the local SQLite database at dsn and brings the schema
// up to date with the embedded goose migrations.
func OpenDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("setting goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("applying migrations: %w", err)
	}
	return db, nil
}
