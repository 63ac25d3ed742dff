package testutil

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/wayfare/internal/db"
)

// NewTestDB opens an in-memory SQLite database with the itinerary schema
// applied, closed automatically when the test ends.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database
}

// NewTestUoW wraps a test database in a transactional unit of work.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}
