package db

import (
	"context"
	"errors"
	"sync"

	"github.com/jmoiron/sqlx"
)

// Factory opens single-use connections to one configured backend.
type Factory interface {
	// Open returns a fresh, authenticated connection. The caller owns it
	// and must Close it; it is never handed out twice.
	Open(ctx context.Context) (*Connection, error)

	// Backend is the human-readable backend name used in error reports.
	Backend() string
}

// Connection is one dedicated session to the backend together with the
// handle that owns it. It serves exactly one statement.
type Connection struct {
	backend string
	commit  string
	handle  *sqlx.DB
	conn    *sqlx.Conn

	closeOnce sync.Once
	closeErr  error
}

func (c *Connection) Backend() string { return c.backend }

// Close releases the session and then its owning handle. Only the first call
// does any work; later calls return the same result.
func (c *Connection) Close() error {
	c.closeOnce.Do(func() {
		var errs []error
		if c.conn != nil {
			errs = append(errs, c.conn.Close())
		}
		if c.handle != nil {
			errs = append(errs, c.handle.Close())
		}
		c.closeErr = errors.Join(errs...)
	})
	return c.closeErr
}
