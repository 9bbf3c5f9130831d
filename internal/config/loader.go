package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

const (
	envPrefix  = "SQLGATE"
	dotEnvFile = ".env"
)

// envBindings maps config keys to the environment variables the gateway has
// always been deployed with. They are checked before the SQLGATE_ names.
var envBindings = map[string][]string{
	"database.host":     {"MYSQL_HOST"},
	"database.port":     {"MYSQL_PORT"},
	"database.user":     {"MYSQL_USER"},
	"database.password": {"MYSQL_PASSWORD"},
	"database.name":     {"MYSQL_DATABASE"},
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", "0.0.0.0:8000")
	v.SetDefault("server.allow_origins", []string{"*"})
	v.SetDefault("server.metrics", true)
	v.SetDefault("server.metrics_path", "/metrics")
	v.SetDefault("server.read_timeout", "0s")
	v.SetDefault("server.write_timeout", "0s")

	v.SetDefault("database.driver", "mysql")
	v.SetDefault("database.host", "")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.name", "")
	v.SetDefault("database.user", "")
	v.SetDefault("database.password", "")
	v.SetDefault("database.connect_timeout", "10s")
	v.SetDefault("database.tls.enabled", true)
	v.SetDefault("database.tls.ca_file", "/etc/mysql/ssl/cloudways_ca.crt")
	v.SetDefault("database.tls.cert_file", "/etc/mysql/ssl/mysql_server.crt")
	v.SetDefault("database.tls.key_file", "/etc/mysql/ssl/mysql_server.key")
	v.SetDefault("database.tls.server_name", "")
	v.SetDefault("database.tls.verify_identity", false)

	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.file", "")

	v.SetDefault("telemetry.service_name", "sqlgate")
	v.SetDefault("telemetry.otlp_endpoint", "")
	v.SetDefault("telemetry.insecure", false)
}

// Load resolves the configuration once at startup. Precedence, highest first:
// process environment, the optional config file at path, a .env file in the
// working directory, built-in defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if err := loadDotEnv(v, dotEnvFile); err != nil {
		return nil, err
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, names := range envBindings {
		prefixed := envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(append([]string{key}, append(names, prefixed)...)...); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadDotEnv reads KEY=value pairs from a dotenv file and uses them as
// defaults, so real environment variables still win.
func loadDotEnv(v *viper.Viper, path string) error {
	env := viper.New()
	env.SetConfigFile(path)
	env.SetConfigType("env")

	if err := env.ReadInConfig(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read %s: %w", path, err)
	}

	for key, names := range envBindings {
		prefixed := envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		for _, name := range append(names, prefixed) {
			if env.IsSet(name) {
				v.SetDefault(key, env.Get(name))
				break
			}
		}
	}
	return nil
}
