// Package service wires the decision engine, planner, collaborators, and
// persistence into the use cases the CLI and HTTP surfaces call.
package service

import (
	"context"

	"github.com/alexanderramin/wayfare/internal/collab"
	"github.com/alexanderramin/wayfare/internal/decision"
	"github.com/alexanderramin/wayfare/internal/domain"
	"github.com/alexanderramin/wayfare/internal/planner"
	"github.com/alexanderramin/wayfare/internal/repository"
)

// DecideRequest is one "pick me a place" turn. Query is free text folded
// into the profile by the extraction rules before scoring; Candidates, when
// set, skips venue search and decides over the given pool.
type DecideRequest struct {
	Query      string
	Profile    domain.PreferenceProfile
	Location   *domain.Coordinates
	Context    *domain.ConversationContext
	Candidates []domain.Candidate
}

// DecideResponse carries the decision plus the profile that produced it, so
// conversational callers can thread the merged profile into the next turn.
type DecideResponse struct {
	Decision *decision.Decision
	Profile  domain.PreferenceProfile
}

type DecisionService interface {
	Decide(ctx context.Context, req DecideRequest) (*DecideResponse, error)
}

type TripService interface {
	// Plan geocodes the destination when needed, gathers a candidate pool,
	// generates the itinerary, and persists it.
	Plan(ctx context.Context, req domain.TripRequest) (*domain.TravelItinerary, error)
	Get(ctx context.Context, id string) (*domain.TravelItinerary, error)
	List(ctx context.Context) ([]repository.ItinerarySummary, error)
	Modify(ctx context.Context, id string, mod planner.Modification) (*domain.TravelItinerary, error)
	Optimize(ctx context.Context, id string) (*domain.OptimizationResult, error)
	Delete(ctx context.Context, id string) error
}

// BookItemRequest targets one placed item of a saved itinerary.
type BookItemRequest struct {
	ItineraryID string
	DayIndex    int
	ItemIndex   int
	Notes       string
}

type BookingService interface {
	// BookItem books the item's slot, walking the allocator's fallback
	// windows when the collaborator declines retryably.
	BookItem(ctx context.Context, req BookItemRequest) (*collab.Confirmation, error)
}
