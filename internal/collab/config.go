// Package collab holds the clients for the external collaborators wayfare
// treats as black boxes: venue search, geocoding, and booking. Each client
// is a thin fallible HTTP wrapper with bounded retries; no business logic
// lives here.
package collab

import (
	"os"
	"strconv"
)

// Config holds connection settings for the collaborator services.
type Config struct {
	VenueEndpoint   string
	BookingEndpoint string
	APIKey          string
	TimeoutMs       int
	MaxRetries      int
	LogCalls        bool
}

// DefaultConfig returns the local-development defaults.
func DefaultConfig() Config {
	return Config{
		VenueEndpoint:   "http://localhost:8701",
		BookingEndpoint: "http://localhost:8702",
		TimeoutMs:       8000,
		MaxRetries:      1,
	}
}

// LoadConfig reads collaborator configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("WAYFARE_VENUE_ENDPOINT"); v != "" {
		cfg.VenueEndpoint = v
	}
	if v := os.Getenv("WAYFARE_BOOKING_ENDPOINT"); v != "" {
		cfg.BookingEndpoint = v
	}
	if v := os.Getenv("WAYFARE_COLLAB_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("WAYFARE_COLLAB_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("WAYFARE_COLLAB_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}
	if v := os.Getenv("WAYFARE_COLLAB_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	return cfg
}
