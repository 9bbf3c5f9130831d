package db

import (
	"database/sql"
	"fmt"

	"github.com/go-sql-driver/mysql"

	"github.com/RehahnC/shared-rexdb-fastapi-sql/internal/config"
)

const (
	backendMySQL = "MySQL"
	mysqlCommit  = "COMMIT"
)

// NewMySQLFactory prepares a connector with the TLS material loaded up
// front; each Open wraps it in a fresh handle. Sessions run with autocommit
// off, so a write is committed explicitly and anything else is rolled back
// by the server when the connection closes.
func NewMySQLFactory(cfg config.Database) (*BaseFactory, error) {
	mc := mysqlConfig(cfg)

	if cfg.TLS.Enabled {
		tlsCfg, err := LoadTLSConfig(cfg.TLS, cfg.Host)
		if err != nil {
			return nil, fmt.Errorf("mysql tls: %w", err)
		}
		mc.TLS = tlsCfg
	}

	connector, err := mysql.NewConnector(mc)
	if err != nil {
		return nil, fmt.Errorf("mysql connector: %w", err)
	}

	return NewFactory(backendMySQL, "mysql", func() (*sql.DB, error) {
		return sql.OpenDB(connector), nil
	}).WithCommit(mysqlCommit), nil
}

func mysqlConfig(cfg config.Database) *mysql.Config {
	mc := mysql.NewConfig()
	mc.User = cfg.User
	mc.Passwd = cfg.Password
	mc.Net = "tcp"
	mc.Addr = cfg.Address()
	mc.DBName = cfg.Name
	mc.ParseTime = true
	mc.Timeout = cfg.ConnectTimeout
	mc.Params = map[string]string{"autocommit": "0"}
	return mc
}
