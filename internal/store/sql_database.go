package store

import (
	"database/sql"

	"github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-journal/internal/logger"
	"github.com/MKhiriev/go-journal/migrations"
)

// DB wraps *sql.DB with the driver-specific pieces repositories need:
// a squirrel builder using the driver's placeholder format and an error
// classifier.
type DB struct {
	*sql.DB
	driver             string
	builder            squirrel.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded schema for the connection's driver.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// Driver returns the database/sql driver name of the connection.
func (db *DB) Driver() string {
	return db.driver
}

// classify returns the category of a driver error, logged alongside it
// so that constraint and connection failures can be told apart.
func (db *DB) classify(err error) ErrorClassification {
	return db.errorClassificator.Classify(err)
}

// isUniqueViolation reports whether err is a unique constraint violation
// for the connection's driver.
func (db *DB) isUniqueViolation(err error) bool {
	return db.classify(err) == UniqueViolation
}
