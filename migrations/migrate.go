// Package migrations holds the embedded schema migrations for both supported
// database backends and applies them with goose at startup.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// Dialect names accepted by [Migrate]. They match the driver names the store
// layer opens connections with.
const (
	DialectPostgres = "pgx"
	DialectSQLite   = "sqlite3"
)

// Migrate applies all pending schema migrations for the given dialect.
// The migration scripts are embedded in the binary, so no external files are
// needed at deploy time.
func Migrate(db *sql.DB, dialect string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	dir := "sqlite"
	if dialect == DialectPostgres {
		dir = "postgres"
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
