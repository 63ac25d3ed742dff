// Package planner builds and maintains multi-day travel itineraries on top
// of the decision engine: slot allocation with fallback windows, day
// assembly on the meal/activity cadence, pacing analysis, and validated
// in-place modifications.
package planner

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/wayfare/internal/config"
	"github.com/alexanderramin/wayfare/internal/decision"
	"github.com/alexanderramin/wayfare/internal/domain"
)

const (
	maxTripDays  = 14
	maxGroupSize = 20
)

// Planner generates itineraries from a candidate pool and applies
// modifications to existing ones. It is stateless between calls; persistence
// belongs to the caller.
type Planner struct {
	scorer  *decision.Scorer
	alloc   *Allocator
	builder *DayBuilder
	now     func() time.Time
	newID   func() string
}

// Option adjusts planner construction, mainly for tests.
type Option func(*Planner)

// WithClock fixes the planner's notion of now.
func WithClock(now func() time.Time) Option {
	return func(p *Planner) { p.now = now }
}

// WithIDGenerator replaces the itinerary ID source.
func WithIDGenerator(gen func() string) Option {
	return func(p *Planner) { p.newID = gen }
}

func New(cfg config.Config, opts ...Option) *Planner {
	scorer := decision.NewScorer(cfg.Scoring)
	alloc := NewAllocator(cfg.Slots)
	p := &Planner{
		scorer:  scorer,
		alloc:   alloc,
		builder: NewDayBuilder(scorer, alloc),
		now:     time.Now,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Generate builds a complete itinerary for the request from the candidate
// pool. Days are built chronologically with the remaining budget re-sliced
// across the days still to plan, so an expensive early day tightens the
// later ones instead of blowing the total.
func (p *Planner) Generate(req domain.TripRequest, pool []domain.Candidate) (*domain.TravelItinerary, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	now := p.now().UTC()
	days := req.DayCount()
	it := &domain.TravelItinerary{
		ID:   p.newID(),
		Name: fmt.Sprintf("%d days in %s", days, req.Destination),
		Destination: domain.Place{
			Name: req.Destination,
		},
		Request:   req,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if req.Coord != nil {
		it.Destination.Coord = *req.Coord
	}

	used := make(map[string]bool)
	lodging := p.selectLodging(pool, req)
	if lodging == nil && days > 1 {
		it.Warnings = append(it.Warnings, "no lodging options in the candidate pool")
	}
	if lodging != nil {
		used[lodging.ID] = true
	}
	nightly := 0.0
	if lodging != nil {
		nightly = EstimateCost(*lodging, domain.CategoryLodging, req.GroupSize)
	}

	activities := activitiesForStyle(req.Preferences.Style)
	remaining := req.Budget
	for i := 0; i < days; i++ {
		date := domain.DateOnly(req.StartDate).AddDate(0, 0, i)
		slice := 0.0
		if req.Budget > 0 {
			slice = remaining / float64(days-i)
		}

		day, missed := p.builder.Build(dayRequest{
			Date:        date,
			Pool:        pool,
			Profile:     req.Preferences,
			Loc:         req.Coord,
			GroupSize:   req.GroupSize,
			BudgetSlice: slice,
			Activities:  activities,
			Used:        used,
			Seed:        lodgingItems(lodging, i, days, nightly),
		})
		for _, m := range missed {
			it.Warnings = append(it.Warnings, fmt.Sprintf("day %d: %s", i+1, m))
		}
		if day.OverBudget {
			it.Warnings = append(it.Warnings, budgetWarning(i, day.Cost, slice))
		}
		it.Days = append(it.Days, day)
		remaining -= day.Cost
	}

	it.RecomputeTotals()
	if req.Budget > 0 && it.TotalCost > req.Budget {
		it.Warnings = append(it.Warnings, fmt.Sprintf("estimated total %.2f exceeds the %.2f budget", it.TotalCost, req.Budget))
	}
	return it, nil
}

// selectLodging ranks the pool's lodging venues once for the whole trip; the
// same roof every night keeps the plan coherent.
func (p *Planner) selectLodging(pool []domain.Candidate, req domain.TripRequest) *domain.Candidate {
	var ranked []decision.Ranked
	for _, c := range pool {
		if !isLodgingVenue(c) {
			continue
		}
		ranked = append(ranked, decision.Ranked{
			Candidate: c,
			Breakdown: p.scorer.Score(c, req.Preferences, req.Coord),
		})
	}
	if len(ranked) == 0 {
		return nil
	}
	decision.SortRanked(ranked)
	top := ranked[0].Candidate
	return &top
}

// lodgingItems returns the lodging entries seeded onto day i of a days-long
// trip: check-in on the first day, an overnight stay on middle days, and a
// zero-cost check-out on the last. Single-day trips carry no lodging.
func lodgingItems(lodging *domain.Candidate, i, days int, nightly float64) []domain.PlacedItem {
	if lodging == nil || days < 2 {
		return nil
	}
	switch {
	case i == 0:
		return []domain.PlacedItem{{
			CandidateID: lodging.ID, Name: lodging.Name + " (check-in)",
			Category: domain.CategoryLodging, Window: checkInWindow, Cost: nightly,
		}}
	case i == days-1:
		return []domain.PlacedItem{{
			CandidateID: lodging.ID, Name: lodging.Name + " (check-out)",
			Category: domain.CategoryLodging, Window: checkOutWindow, Cost: 0,
		}}
	default:
		return []domain.PlacedItem{{
			CandidateID: lodging.ID, Name: lodging.Name,
			Category: domain.CategoryLodging, Window: overnightStay, Cost: nightly,
		}}
	}
}

func validateRequest(req domain.TripRequest) error {
	if req.Destination == "" {
		return &InvalidRequestError{Field: "destination", Message: "must not be empty"}
	}
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return &InvalidRequestError{Field: "dates", Message: "start and end dates are required"}
	}
	if domain.DateOnly(req.EndDate).Before(domain.DateOnly(req.StartDate)) {
		return &InvalidRequestError{Field: "dates", Message: "end date precedes start date"}
	}
	if days := req.DayCount(); days > maxTripDays {
		return &InvalidRequestError{Field: "dates", Message: fmt.Sprintf("%d days exceeds the %d-day limit", days, maxTripDays)}
	}
	if req.GroupSize < 1 || req.GroupSize > maxGroupSize {
		return &InvalidRequestError{Field: "group_size", Message: fmt.Sprintf("must be between 1 and %d", maxGroupSize)}
	}
	if req.Budget < 0 {
		return &InvalidRequestError{Field: "budget", Message: "must not be negative"}
	}
	return nil
}
