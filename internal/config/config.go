// Package config loads service configuration from a TOML file and the environment.
//
// Precedence, lowest to highest: DefaultConfig, the TOML file, environment
// variables. Example file:
//
//	[server]
//	port = 8080
//	cors_origins = ["http://localhost:5173"]
//
//	[storage]
//	driver = "sqlite"
//	path = "./data/fintrack.db"
//
//	[auth]
//	jwt_secret = "change-me"
//
//	[ledger]
//	enforce_group_membership = false
//	verify_category_visibility = false
//
//	[events]
//	nats_url = "nats://127.0.0.1:4222"
//	subject_prefix = "fintrack"
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Storage drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config is the complete service configuration.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Storage StorageConfig `toml:"storage"`
	Auth    AuthConfig    `toml:"auth"`
	Ledger  LedgerConfig  `toml:"ledger"`
	Events  EventsConfig  `toml:"events"`
	Log     LogConfig     `toml:"log"`
	Metrics MetricsConfig `toml:"metrics"`
}

type ServerConfig struct {
	Port            int      `toml:"port"`
	CORSOrigins     []string `toml:"cors_origins"`
	ShutdownTimeout Duration `toml:"shutdown_timeout"`
	DefaultCurrency string   `toml:"default_currency"`
}

type StorageConfig struct {
	// Driver is "sqlite" or "postgres".
	Driver string `toml:"driver"`

	// Path is the SQLite database file.
	Path string `toml:"path"`

	// DSN is the PostgreSQL connection string.
	DSN string `toml:"dsn"`
}

type AuthConfig struct {
	// JWTSecret is the HS256 secret shared with the identity provider.
	JWTSecret string `toml:"jwt_secret"`

	// Issuer, if set, must match the "iss" claim of every token.
	Issuer string `toml:"issuer"`

	// TokenTTL is the lifetime of tokens minted by the token command.
	TokenTTL Duration `toml:"token_ttl"`
}

type LedgerConfig struct {
	EnforceGroupMembership   bool `toml:"enforce_group_membership"`
	VerifyCategoryVisibility bool `toml:"verify_category_visibility"`
}

type EventsConfig struct {
	// NATSURL enables event publication when non-empty.
	NATSURL       string `toml:"nats_url"`
	SubjectPrefix string `toml:"subject_prefix"`
}

type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "text" or "json"
}

type MetricsConfig struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// Duration is a time.Duration that decodes from TOML strings like "15s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			CORSOrigins:     []string{"*"},
			ShutdownTimeout: Duration{10 * time.Second},
			DefaultCurrency: "USD",
		},
		Storage: StorageConfig{
			Driver: DriverSQLite,
			Path:   "./data/fintrack.db",
		},
		Auth: AuthConfig{
			TokenTTL: Duration{24 * time.Hour},
		},
		Events: EventsConfig{
			SubjectPrefix: "fintrack",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Path:    "/metrics",
		},
	}
}

// Load reads the TOML file at path over the defaults, applies environment
// overrides and validates the result. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		md, err := toml.DecodeFile(path, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, fmt.Errorf("unknown config keys in %s: %s", path, strings.Join(keys, ", "))
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	str("FINTRACK_DB_DRIVER", &c.Storage.Driver)
	str("FINTRACK_DB_PATH", &c.Storage.Path)
	str("FINTRACK_DB_DSN", &c.Storage.DSN)
	str("FINTRACK_JWT_SECRET", &c.Auth.JWTSecret)
	str("FINTRACK_NATS_URL", &c.Events.NATSURL)
	str("LOG_LEVEL", &c.Log.Level)

	if v, ok := lookup("FINTRACK_PORT"); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid FINTRACK_PORT %q: %w", v, err)
		}
		c.Server.Port = port
	}
	return nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port %d out of range", c.Server.Port))
	}

	switch c.Storage.Driver {
	case DriverSQLite:
		if c.Storage.Path == "" {
			errs = append(errs, errors.New("storage.path is required for sqlite"))
		}
	case DriverPostgres:
		if c.Storage.DSN == "" {
			errs = append(errs, errors.New("storage.dsn is required for postgres"))
		}
	default:
		errs = append(errs, fmt.Errorf("storage.driver %q must be %q or %q", c.Storage.Driver, DriverSQLite, DriverPostgres))
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level %q must be debug, info, warn or error", c.Log.Level))
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format %q must be text or json", c.Log.Format))
	}

	return errors.Join(errs...)
}

// RequireSecret reports an error when no JWT secret is configured. Commands
// that verify or mint tokens call it; storage-only commands don't need one.
func (c *Config) RequireSecret() error {
	if c.Auth.JWTSecret == "" {
		return errors.New("auth.jwt_secret (or FINTRACK_JWT_SECRET) is required")
	}
	return nil
}
