package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// PoolSchema is the top-level JSON structure for a venue pool file. A pool
// file lets callers feed an explicit candidate list into a decision instead
// of searching the venue collaborator.
type PoolSchema struct {
	Source string        `json:"source,omitempty"`
	Venues []VenueImport `json:"venues"`
}

// VenueImport defines one venue in the pool file. Optional fields fall back
// to neutral defaults during conversion.
type VenueImport struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Rating       *float64      `json:"rating,omitempty"`
	ReviewCount  *int          `json:"review_count,omitempty"`
	Price        string        `json:"price,omitempty"`
	Categories   []string      `json:"categories,omitempty"`
	Lat          *float64      `json:"lat,omitempty"`
	Lon          *float64      `json:"lon,omitempty"`
	Hours        []HoursImport `json:"hours,omitempty"`
	Transactions []string      `json:"transactions,omitempty"`
}

// HoursImport defines one open span on one weekday. Close before open means
// the venue stays open past midnight.
type HoursImport struct {
	Weekday  string `json:"weekday"`
	OpenMin  int    `json:"open_min"`
	CloseMin int    `json:"close_min"`
}

// LoadPool reads and parses a venue pool JSON file.
func LoadPool(path string) (*PoolSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema PoolSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing pool file: %w", err)
	}
	return &schema, nil
}
