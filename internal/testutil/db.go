// Package testutil provides database fixtures for tests. The sqlx
// repositories are exercised against in-memory SQLite, which honors the
// same constraints the postgres schema declares.
package testutil

import (
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// Schema mirrors the postgres migrations closely enough for the
// repository queries under test.
const Schema = `
CREATE TABLE users (
    user_id       INTEGER PRIMARY KEY AUTOINCREMENT,
    name          TEXT,
    email         TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    gender        TEXT,
    dob           TIMESTAMP,
    location      TEXT,
    bio           TEXT,
    created_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE interests (
    interest_id INTEGER PRIMARY KEY AUTOINCREMENT,
    name        TEXT NOT NULL UNIQUE,
    category    TEXT
);

CREATE TABLE user_interests (
    user_id     INTEGER NOT NULL,
    interest_id INTEGER NOT NULL,
    PRIMARY KEY (user_id, interest_id)
);

CREATE TABLE preferences (
    preference_id      INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id            INTEGER NOT NULL UNIQUE,
    preferred_gender   TEXT,
    age_min            INTEGER,
    age_max            INTEGER,
    location_radius_km INTEGER
);

CREATE TABLE profile_photos (
    photo_id    INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id     INTEGER NOT NULL,
    photo_url   TEXT NOT NULL,
    is_primary  BOOLEAN NOT NULL DEFAULT 0,
    uploaded_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE subscriptions (
    subscription_id INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id         INTEGER NOT NULL,
    plan_type       TEXT NOT NULL,
    start_date      TIMESTAMP NOT NULL,
    end_date        TIMESTAMP NOT NULL,
    status          TEXT NOT NULL DEFAULT 'active'
);

CREATE TABLE likes (
    liker_id INTEGER NOT NULL,
    liked_id INTEGER NOT NULL,
    liked_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    PRIMARY KEY (liker_id, liked_id),
    CHECK (liker_id <> liked_id)
);

CREATE TABLE matches (
    match_id          INTEGER PRIMARY KEY AUTOINCREMENT,
    user_1_id         INTEGER NOT NULL,
    user_2_id         INTEGER NOT NULL,
    matched_at        TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    match_explanation TEXT,
    icebreakers       TEXT,
    UNIQUE (user_1_id, user_2_id),
    CHECK (user_1_id < user_2_id)
);

CREATE TABLE reports (
    report_id        INTEGER PRIMARY KEY AUTOINCREMENT,
    reporter_id      INTEGER,
    reported_user_id INTEGER NOT NULL,
    reason           TEXT NOT NULL,
    status           TEXT NOT NULL DEFAULT 'pending',
    moderator_notes  TEXT,
    created_at       TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at       TIMESTAMP
);
`

// SetupDB opens an in-memory SQLite database with the test schema.
func SetupDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := sqlx.Connect("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	// In-memory sqlite is per-connection.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(Schema); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
	return db
}

// InsertUser inserts a minimal user row and returns its id.
func InsertUser(t *testing.T, db *sqlx.DB, name, email string) int {
	t.Helper()

	var id int
	err := db.QueryRowx(
		`INSERT INTO users (name, email, password_hash, created_at) VALUES (?, ?, 'x', ?) RETURNING user_id`,
		name, email, time.Now().UTC(),
	).Scan(&id)
	if err != nil {
		t.Fatalf("failed to insert user %s: %v", name, err)
	}
	return id
}

// InsertInterest inserts a catalog row and returns its id.
func InsertInterest(t *testing.T, db *sqlx.DB, name, category string) int {
	t.Helper()

	var id int
	err := db.QueryRowx(
		`INSERT INTO interests (name, category) VALUES (?, ?) RETURNING interest_id`,
		name, category,
	).Scan(&id)
	if err != nil {
		t.Fatalf("failed to insert interest %s: %v", name, err)
	}
	return id
}

// LinkInterest associates a user with an interest.
func LinkInterest(t *testing.T, db *sqlx.DB, userID, interestID int) {
	t.Helper()

	if _, err := db.Exec(
		`INSERT INTO user_interests (user_id, interest_id) VALUES (?, ?)`,
		userID, interestID,
	); err != nil {
		t.Fatalf("failed to link interest: %v", err)
	}
}
