package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Server    Server    `mapstructure:"server"`
	Database  Database  `mapstructure:"database"`
	Log       Log       `mapstructure:"log"`
	Telemetry Telemetry `mapstructure:"telemetry"`
}

type Server struct {
	Addr         string        `mapstructure:"addr" validate:"required,hostname_port"`
	AllowOrigins []string      `mapstructure:"allow_origins"`
	Metrics      bool          `mapstructure:"metrics"`
	MetricsPath  string        `mapstructure:"metrics_path" validate:"required,startswith=/"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout" validate:"min=0"`
	WriteTimeout time.Duration `mapstructure:"write_timeout" validate:"min=0"`
}

// Database describes the single backend every request connects to.
type Database struct {
	Driver         string        `mapstructure:"driver" validate:"required,oneof=mysql mariadb postgres postgresql sqlite sqlite3"`
	Host           string        `mapstructure:"host" validate:"required"`
	Port           int           `mapstructure:"port" validate:"required,min=1,max=65535"`
	Name           string        `mapstructure:"name" validate:"required"`
	User           string        `mapstructure:"user" validate:"required"`
	Password       string        `mapstructure:"password"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout" validate:"min=0"`
	TLS            TLS           `mapstructure:"tls"`
}

type TLS struct {
	Enabled    bool   `mapstructure:"enabled"`
	CAFile     string `mapstructure:"ca_file" validate:"required,file"`
	CertFile   string `mapstructure:"cert_file" validate:"required,file"`
	KeyFile    string `mapstructure:"key_file" validate:"required,file"`
	ServerName string `mapstructure:"server_name"`

	// VerifyIdentity adds hostname checking on top of chain verification.
	VerifyIdentity bool `mapstructure:"verify_identity"`
}

type Log struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=json console"`
	File   string `mapstructure:"file"`
}

type Telemetry struct {
	ServiceName  string `mapstructure:"service_name" validate:"required"`
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`
	Insecure     bool   `mapstructure:"insecure"`
}

// IsSQLite reports whether the configured backend is a local SQLite file.
func (d Database) IsSQLite() bool {
	switch strings.ToLower(d.Driver) {
	case "sqlite", "sqlite3":
		return true
	}
	return false
}

// Address returns host:port for network backends.
func (d Database) Address() string {
	return d.Host + ":" + strconv.Itoa(d.Port)
}

// Validate checks the loaded values. SQLite only needs a file name, and the
// TLS material is only checked when encryption is enabled.
func (c *Config) Validate() error {
	v := validator.New()

	for name, section := range map[string]any{
		"server":    c.Server,
		"log":       c.Log,
		"telemetry": c.Telemetry,
	} {
		if err := v.Struct(section); err != nil {
			return fmt.Errorf("invalid %s config: %w", name, err)
		}
	}

	if c.Database.IsSQLite() {
		if err := v.Var(c.Database.Name, "required"); err != nil {
			return fmt.Errorf("invalid database config: name: %w", err)
		}
		return nil
	}

	if err := v.StructExcept(c.Database, "TLS"); err != nil {
		return fmt.Errorf("invalid database config: %w", err)
	}
	if c.Database.TLS.Enabled {
		if err := v.Struct(c.Database.TLS); err != nil {
			return fmt.Errorf("invalid database tls config: %w", err)
		}
	}
	return nil
}
