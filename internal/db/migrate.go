package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate applies all schema statements. Statements are idempotent; ALTER
// TABLE additions tolerate re-runs via the duplicate-column check.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS itineraries (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		destination TEXT NOT NULL,
		destination_lat REAL NOT NULL DEFAULT 0,
		destination_lon REAL NOT NULL DEFAULT 0,
		start_date TEXT NOT NULL,
		end_date TEXT NOT NULL,
		group_size INTEGER NOT NULL,
		budget REAL NOT NULL DEFAULT 0,
		currency TEXT,
		preferences TEXT NOT NULL DEFAULT '{}',
		warnings TEXT,
		total_cost REAL NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS itinerary_days (
		itinerary_id TEXT NOT NULL REFERENCES itineraries(id) ON DELETE CASCADE,
		day_index INTEGER NOT NULL,
		date TEXT NOT NULL,
		cost REAL NOT NULL DEFAULT 0,
		over_budget INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (itinerary_id, day_index)
	)`,

	`CREATE TABLE IF NOT EXISTS itinerary_items (
		itinerary_id TEXT NOT NULL REFERENCES itineraries(id) ON DELETE CASCADE,
		day_index INTEGER NOT NULL,
		position INTEGER NOT NULL,
		candidate_id TEXT NOT NULL,
		name TEXT NOT NULL,
		category TEXT NOT NULL,
		start_min INTEGER NOT NULL,
		end_min INTEGER NOT NULL,
		cost REAL NOT NULL DEFAULT 0,
		PRIMARY KEY (itinerary_id, day_index, position)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_itineraries_updated ON itineraries(updated_at)`,
	`CREATE INDEX IF NOT EXISTS idx_items_itinerary ON itinerary_items(itinerary_id, day_index)`,
}
