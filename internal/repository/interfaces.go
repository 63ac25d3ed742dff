package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/wayfare/internal/domain"
)

// ItinerarySummary is the listing view of a saved itinerary, cheap enough
// to show in tables without loading every placed item.
type ItinerarySummary struct {
	ID          string
	Name        string
	Destination string
	StartDate   time.Time
	EndDate     time.Time
	Days        int
	TotalCost   float64
	UpdatedAt   time.Time
}

type ItineraryRepo interface {
	// Save persists the itinerary, replacing any prior version with the
	// same ID. Callers wanting atomicity across the itinerary tables run
	// Save inside a unit of work.
	Save(ctx context.Context, it *domain.TravelItinerary) error
	GetByID(ctx context.Context, id string) (*domain.TravelItinerary, error)
	List(ctx context.Context) ([]ItinerarySummary, error)
	Delete(ctx context.Context, id string) error
}

// NotFoundError reports a lookup for an itinerary that is not stored.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("itinerary %s not found", e.ID)
}
