//go:build cgo

package db

import (
	"database/sql"
	"net/url"

	_ "github.com/mattn/go-sqlite3"

	"github.com/RehahnC/shared-rexdb-fastapi-sql/internal/config"
)

const backendSQLite = "SQLite"

// NewSQLiteFactory opens a local database file. There is no network hop, so
// the TLS settings are ignored.
func NewSQLiteFactory(cfg config.Database) (*BaseFactory, error) {
	dsn := sqliteDSN(cfg.Name)
	return NewFactory(backendSQLite, "sqlite3", func() (*sql.DB, error) {
		return sql.Open("sqlite3", dsn)
	}), nil
}

func sqliteDSN(path string) string {
	q := url.Values{}
	q.Set("_busy_timeout", "5000")
	q.Set("_journal_mode", "WAL")
	return "file:" + path + "?" + q.Encode()
}
