package db

import (
	"database/sql"
	"fmt"
)

// schema is the full database schema. The console's state file only uses the
// settings table; the development server uses all of it.
const schema = `
CREATE TABLE IF NOT EXISTS settings (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS users (
    id            INTEGER PRIMARY KEY,
    email         TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    role          TEXT NOT NULL DEFAULT 'USER' CHECK (role IN ('ADMIN', 'USER')),
    created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS stock (
    id          INTEGER PRIMARY KEY,
    blood_group TEXT NOT NULL,
    quantity    INTEGER NOT NULL CHECK (quantity >= 0),
    expiry_date TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_stock_group_expiry ON stock(blood_group, expiry_date);

CREATE TABLE IF NOT EXISTS donors (
    id            INTEGER PRIMARY KEY,
    name          TEXT NOT NULL,
    age           INTEGER NOT NULL CHECK (age > 0),
    gender        TEXT NOT NULL,
    blood_group   TEXT NOT NULL,
    contact       TEXT NOT NULL,
    last_donation TEXT
);

CREATE TABLE IF NOT EXISTS requests (
    id             INTEGER PRIMARY KEY,
    patient_name   TEXT NOT NULL,
    age            INTEGER NOT NULL DEFAULT 0,
    blood_group    TEXT NOT NULL,
    units_required INTEGER NOT NULL CHECK (units_required > 0),
    status         TEXT NOT NULL DEFAULT 'PENDING' CHECK (status IN ('PENDING', 'APPROVED', 'REJECTED')),
    hospital_name  TEXT NOT NULL,
    requested_by   INTEGER REFERENCES users(id),
    created_at     DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS hotspots (
    id           INTEGER PRIMARY KEY,
    location     TEXT NOT NULL,
    ward         TEXT NOT NULL DEFAULT '',
    zone         TEXT NOT NULL DEFAULT '',
    severity     TEXT NOT NULL CHECK (severity IN ('low', 'medium', 'high', 'critical')),
    water_level  INTEGER NOT NULL DEFAULT 0,
    last_updated DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS reports (
    id             INTEGER PRIMARY KEY,
    location       TEXT NOT NULL,
    description    TEXT NOT NULL DEFAULT '',
    severity       TEXT NOT NULL CHECK (severity IN ('low', 'medium', 'high', 'critical')),
    status         TEXT NOT NULL DEFAULT 'PENDING' CHECK (status IN ('PENDING', 'VERIFIED', 'RESOLVED')),
    reporter_email TEXT NOT NULL DEFAULT '',
    image          BLOB,
    image_mime     TEXT,
    created_at     DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS rainfall (
    day         TEXT PRIMARY KEY,
    millimetres REAL NOT NULL CHECK (millimetres >= 0)
);

CREATE TABLE IF NOT EXISTS revoked_tokens (
    jti        TEXT PRIMARY KEY,
    expires_at DATETIME NOT NULL
);
`

// EnsureSchema creates all tables and indexes if they don't already exist.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
