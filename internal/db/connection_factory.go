package db

import (
	"fmt"
	"strings"

	"github.com/RehahnC/shared-rexdb-fastapi-sql/internal/config"
)

func CreateFactory(cfg config.Database) (Factory, error) {
	var (
		f   *BaseFactory
		err error
	)
	switch strings.ToLower(cfg.Driver) {
	case "mysql", "mariadb":
		f, err = NewMySQLFactory(cfg)
	case "postgres", "postgresql":
		f, err = NewPostgresFactory(cfg)
	case "sqlite", "sqlite3":
		f, err = NewSQLiteFactory(cfg)
	default:
		return nil, fmt.Errorf("driver not implemented for %s", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}

// GetSupportedDBTypes returns the driver names CreateFactory accepts.
func GetSupportedDBTypes() []string {
	return []string{
		"mysql",
		"postgres",
		"sqlite",
	}
}
