// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration of the journal server.
// It is populated by merging environment variables, command-line flags and
// an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds session and password hashing settings.
	App App `envPrefix:"APP_"`

	// Storage holds the relational database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the HTTP listen address and request timeout.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App groups the settings of the authentication layer.
type App struct {
	// SessionKey signs session cookies. Required.
	SessionKey string `env:"SESSION_KEY"`

	// SessionName is the cookie name. Defaults to DefaultSessionName.
	SessionName string `env:"SESSION_NAME"`

	// SessionDuration bounds the lifetime of a session cookie.
	SessionDuration time.Duration `env:"SESSION_DURATION"`

	// SessionSecure marks the cookie Secure (HTTPS only).
	SessionSecure bool `env:"SESSION_SECURE"`

	// PasswordHashCost is the bcrypt cost factor.
	PasswordHashCost int `env:"PASSWORD_HASH_COST"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the configuration of persistence backends.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds the relational database connection settings.
type DB struct {
	// Driver is either DriverPostgres or DriverSQLite.
	Driver string `env:"DRIVER"`

	// DSN is the connection string, or the database file path for SQLite.
	DSN string `env:"DATABASE_URI"`
}

// Server holds network settings of the HTTP server.
type Server struct {
	HTTPAddress string `env:"ADDRESS"`

	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads env, then flags, then the JSON file, merges
// them, applies defaults and validates the result.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
