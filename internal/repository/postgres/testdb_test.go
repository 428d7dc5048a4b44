package postgres_test

import (
	"testing"

	"github.com/databridge/dating-backend/internal/testutil"
	"github.com/jmoiron/sqlx"
)

func setupTestDB(t *testing.T) *sqlx.DB {
	return testutil.SetupDB(t)
}

func insertUser(t *testing.T, db *sqlx.DB, name, email string) int {
	return testutil.InsertUser(t, db, name, email)
}

func insertInterest(t *testing.T, db *sqlx.DB, name, category string) int {
	return testutil.InsertInterest(t, db, name, category)
}

func linkInterest(t *testing.T, db *sqlx.DB, userID, interestID int) {
	testutil.LinkInterest(t, db, userID, interestID)
}
