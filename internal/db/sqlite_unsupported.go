//go:build !cgo

package db

import (
	"errors"

	"github.com/RehahnC/shared-rexdb-fastapi-sql/internal/config"
)

func NewSQLiteFactory(cfg config.Database) (*BaseFactory, error) {
	return nil, errors.New("sqlite support requires a cgo build")
}
