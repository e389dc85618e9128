package db

import (
	"database/sql"
	"fmt"
)

// Migrate applies the schema. Every statement is idempotent.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	// Key/value store for the persisted view snapshot.
	`CREATE TABLE IF NOT EXISTS settings (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	// Durable holiday overlay, one row per (country, year) fetched.
	`CREATE TABLE IF NOT EXISTS holiday_years (
		country    TEXT NOT NULL,
		year       INTEGER NOT NULL,
		fetched_at TEXT NOT NULL,
		PRIMARY KEY (country, year)
	)`,

	`CREATE TABLE IF NOT EXISTS holidays (
		country    TEXT NOT NULL,
		date       TEXT NOT NULL,
		seq        INTEGER NOT NULL,
		local_name TEXT NOT NULL DEFAULT '',
		name       TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (country, date, seq)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_holidays_country_date ON holidays(country, date)`,

	// Audit trail of written export files.
	`CREATE TABLE IF NOT EXISTS export_log (
		id         TEXT PRIMARY KEY,
		format     TEXT NOT NULL CHECK(format IN ('xlsx','ics')),
		path       TEXT NOT NULL,
		date_from  TEXT NOT NULL,
		date_to    TEXT NOT NULL,
		row_count  INTEGER NOT NULL,
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_export_log_created ON export_log(created_at)`,
}
