package database

import (
	"fmt"
	"net/url"
	"strings"
)

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	// Driver specifies the database driver (postgres, sqlite)
	Driver string `json:"driver"`

	// URL is a full postgres connection URL; when set it is used verbatim as the DSN
	URL string `json:"-"`

	// PostgreSQL-specific configuration
	Host     string `json:"host"`
	Port     string `json:"port"`
	User     string `json:"user"`
	Password string `json:"-"`
	Name     string `json:"name"`
	SSLMode  string `json:"ssl_mode"`

	// SQLite-specific configuration
	Path string `json:"path"`

	// MaxRetries is the number of connection attempts before giving up
	MaxRetries int `json:"max_retries"`
}

// String returns a string representation with sensitive data masked
func (c *DatabaseConfig) String() string {
	return fmt.Sprintf("DatabaseConfig{Driver: %s, Host: %s, Port: %s, User: %s, Password: [REDACTED], Name: %s, SSLMode: %s, Path: %s, MaxRetries: %d}",
		c.Driver, c.Host, c.Port, c.User, c.Name, c.SSLMode, c.Path, c.MaxRetries)
}

// DSN builds a Data Source Name string based on the driver
func (c *DatabaseConfig) DSN() string {
	switch c.Driver {
	case "postgres", "postgresql":
		if c.URL != "" {
			return c.URL
		}
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode)
	case "sqlite", "":
		return sqliteDSN(c.Path)
	default:
		return ""
	}
}

// sqliteDSN turns on foreign key enforcement, which sqlite leaves off per connection
func sqliteDSN(path string) string {
	if path == "" {
		path = ":memory:"
	}
	if strings.Contains(path, "_foreign_keys=") {
		return path
	}
	separator := "?"
	if strings.Contains(path, "?") {
		separator = "&"
	}
	return path + separator + "_foreign_keys=on"
}

// ConfigFromURL parses a store connection string.
// Accepted forms are postgres://..., postgresql://... and sqlite:///relative/path
// (sqlite:////absolute/path for absolute paths).
func ConfigFromURL(raw string) (DatabaseConfig, error) {
	parsed, err := url.Parse(raw)
	if err != nil {
		return DatabaseConfig{}, fmt.Errorf("parse database url: %w", err)
	}

	switch strings.ToLower(parsed.Scheme) {
	case "postgres", "postgresql":
		cfg := DatabaseConfig{
			Driver: "postgres",
			URL:    raw,
			Host:   parsed.Hostname(),
			Port:   parsed.Port(),
			Name:   strings.TrimPrefix(parsed.Path, "/"),
		}
		if parsed.User != nil {
			cfg.User = parsed.User.Username()
			cfg.Password, _ = parsed.User.Password()
		}
		cfg.SSLMode = parsed.Query().Get("sslmode")
		return cfg, nil
	case "sqlite", "sqlite3":
		path := strings.TrimPrefix(raw, parsed.Scheme+":///")
		if path == raw || path == "" {
			return DatabaseConfig{}, fmt.Errorf("sqlite url must look like sqlite:///path, got %q", raw)
		}
		return DatabaseConfig{Driver: "sqlite", Path: path}, nil
	default:
		return DatabaseConfig{}, fmt.Errorf("unsupported database url scheme %q (supported: postgres, sqlite)", parsed.Scheme)
	}
}
