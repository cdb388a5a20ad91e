package sqlite

import (
	"database/sql"
	"embed"

	"github.com/GuiaBolso/darwin"
	"github.com/diegoclair/sqlmigrator"
)

// SqlFiles holds the schema of the sqlite cache backend (the cache_entries table).
//
//go:embed sql/*.sql
var SqlFiles embed.FS

// Migrate applies pending migrations. It runs at startup when CACHE_DRIVER is
// sqlite and in database.SetupTestDB.
func Migrate(db *sql.DB) error {
	migrator := sqlmigrator.New(db, darwin.SqliteDialect{})

	return migrator.Migrate(SqlFiles, "sql")
}
