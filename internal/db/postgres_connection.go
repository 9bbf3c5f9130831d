package db

import (
	"database/sql"
	"net/url"
	"strconv"

	_ "github.com/lib/pq"

	"github.com/RehahnC/shared-rexdb-fastapi-sql/internal/config"
)

const backendPostgres = "PostgreSQL"

func NewPostgresFactory(cfg config.Database) (*BaseFactory, error) {
	dsn := postgresDSN(cfg)
	return NewFactory(backendPostgres, "postgres", func() (*sql.DB, error) {
		return sql.Open("postgres", dsn)
	}), nil
}

// postgresDSN builds a URL connection string. lib/pq reads the certificate
// files itself on every connect.
func postgresDSN(cfg config.Database) string {
	q := url.Values{}
	if cfg.TLS.Enabled {
		if cfg.TLS.VerifyIdentity {
			q.Set("sslmode", "verify-full")
		} else {
			q.Set("sslmode", "verify-ca")
		}
		q.Set("sslrootcert", cfg.TLS.CAFile)
		q.Set("sslcert", cfg.TLS.CertFile)
		q.Set("sslkey", cfg.TLS.KeyFile)
	} else {
		q.Set("sslmode", "disable")
	}
	if cfg.ConnectTimeout > 0 {
		q.Set("connect_timeout", strconv.Itoa(int(cfg.ConnectTimeout.Seconds())))
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     cfg.Address(),
		Path:     "/" + cfg.Name,
		RawQuery: q.Encode(),
	}
	return u.String()
}
