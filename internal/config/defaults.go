package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Supported values of DB.Driver.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

const (
	DefaultHTTPAddress     = "localhost:3000"
	DefaultSessionName     = "journal_session"
	DefaultSessionDuration = 24 * time.Hour
)

// applyDefaults fills zero fields that have a sensible fallback.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = DriverPostgres
	}
	if cfg.App.SessionName == "" {
		cfg.App.SessionName = DefaultSessionName
	}
	if cfg.App.SessionDuration == 0 {
		cfg.App.SessionDuration = DefaultSessionDuration
	}
	if cfg.App.PasswordHashCost == 0 {
		cfg.App.PasswordHashCost = bcrypt.DefaultCost
	}
}
