package db

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
)

// OpenFunc returns a new, unshared database handle.
type OpenFunc func() (*sql.DB, error)

// BaseFactory holds what every driver-specific factory shares: a backend
// name for error reports, the driver name, and how to get a fresh handle.
type BaseFactory struct {
	backend string
	driver  string
	open    OpenFunc
	commit  string
}

// NewFactory builds a Factory around open. Every Open call gets its own
// handle, limited to a single physical connection that is closed together
// with the handle.
func NewFactory(backend, driver string, open OpenFunc) *BaseFactory {
	return &BaseFactory{
		backend: backend,
		driver:  driver,
		open:    open,
	}
}

// WithCommit sets the statement sent after a write succeeds. Backends whose
// sessions autocommit leave it empty.
func (b *BaseFactory) WithCommit(statement string) *BaseFactory {
	b.commit = statement
	return b
}

func (b *BaseFactory) Backend() string { return b.backend }

func (b *BaseFactory) Open(ctx context.Context) (*Connection, error) {
	raw, err := b.open()
	if err != nil {
		return nil, &ConnectionError{Backend: b.backend, Cause: err}
	}

	handle := sqlx.NewDb(raw, b.driver)
	handle.SetMaxOpenConns(1)

	conn, err := handle.Connx(ctx)
	if err != nil {
		handle.Close()
		return nil, &ConnectionError{Backend: b.backend, Cause: err}
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		handle.Close()
		return nil, &ConnectionError{Backend: b.backend, Cause: err}
	}

	return &Connection{
		backend: b.backend,
		commit:  b.commit,
		handle:  handle,
		conn:    conn,
	}, nil
}
