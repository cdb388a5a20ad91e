package database

import (
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

type DB struct {
	conn *sqlx.DB
}

func New(dbPath string) (*DB, error) {
	conn, err := sqlx.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// sqlite serializes writers anyway; one connection avoids SQLITE_BUSY
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &DB{conn: conn}, nil
}

// DB returns the underlying *sql.DB, used by the migrator.
func (db *DB) DB() *sql.DB {
	return db.conn.DB
}

func (db *DB) X() *sqlx.DB {
	return db.conn
}

func (db *DB) Close() error {
	return db.conn.Close()
}
