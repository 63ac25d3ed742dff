package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/wayfare/internal/collab"
	"github.com/alexanderramin/wayfare/internal/db"
	"github.com/alexanderramin/wayfare/internal/domain"
	"github.com/alexanderramin/wayfare/internal/planner"
	"github.com/alexanderramin/wayfare/internal/repository"
)

const poolSearchLimit = 50

// TripServiceDeps bundles the trip service's collaborators. UoW and TxRepo
// are optional together; without them saves run non-transactionally through
// Repo, which suits in-memory tests.
type TripServiceDeps struct {
	Venues   collab.VenueClient
	Planner  *planner.Planner
	Repo     repository.ItineraryRepo
	UoW      db.UnitOfWork
	TxRepo   func(db.DBTX) repository.ItineraryRepo
	Observer UseCaseObserver
}

type tripService struct {
	deps TripServiceDeps
}

func NewTripService(deps TripServiceDeps) TripService {
	if deps.Observer == nil {
		deps.Observer = NoopUseCaseObserver{}
	}
	return &tripService{deps: deps}
}

func (s *tripService) Plan(ctx context.Context, req domain.TripRequest) (*domain.TravelItinerary, error) {
	var it *domain.TravelItinerary
	err := observe(ctx, s.deps.Observer, "trip_plan", map[string]any{"destination": req.Destination}, func() error {
		if req.Coord == nil && req.Destination != "" {
			// Planning proceeds without coordinates when geocoding fails;
			// the scorer treats unknown distance as neutral.
			if place, err := s.deps.Venues.Geocode(ctx, req.Destination); err == nil {
				req.Coord = &place.Coord
			}
		}

		pool, err := s.deps.Venues.Search(ctx, collab.SearchRequest{
			Query:      req.Destination,
			Location:   req.Coord,
			Categories: req.Preferences.DesiredTags(),
			Limit:      poolSearchLimit,
		})
		if err != nil {
			return fmt.Errorf("gathering candidate pool: %w", err)
		}

		generated, err := s.deps.Planner.Generate(req, pool)
		if err != nil {
			return err
		}
		if err := s.save(ctx, generated); err != nil {
			return err
		}
		it = generated
		return nil
	})
	if err != nil {
		return nil, err
	}
	return it, nil
}

func (s *tripService) Get(ctx context.Context, id string) (*domain.TravelItinerary, error) {
	return s.deps.Repo.GetByID(ctx, id)
}

func (s *tripService) List(ctx context.Context) ([]repository.ItinerarySummary, error) {
	return s.deps.Repo.List(ctx)
}

func (s *tripService) Modify(ctx context.Context, id string, mod planner.Modification) (*domain.TravelItinerary, error) {
	var out *domain.TravelItinerary
	err := observe(ctx, s.deps.Observer, "trip_modify", map[string]any{"kind": string(mod.Kind)}, func() error {
		it, err := s.deps.Repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		modified, err := s.deps.Planner.Modify(it, mod)
		if err != nil {
			return err
		}
		if err := s.save(ctx, modified); err != nil {
			return err
		}
		out = modified
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *tripService) Optimize(ctx context.Context, id string) (*domain.OptimizationResult, error) {
	it, err := s.deps.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	result := s.deps.Planner.Optimize(it)
	return &result, nil
}

func (s *tripService) Delete(ctx context.Context, id string) error {
	return observe(ctx, s.deps.Observer, "trip_delete", nil, func() error {
		return s.deps.Repo.Delete(ctx, id)
	})
}

// save writes through the unit of work when one is configured, keeping the
// itinerary's three tables consistent.
func (s *tripService) save(ctx context.Context, it *domain.TravelItinerary) error {
	if s.deps.UoW == nil || s.deps.TxRepo == nil {
		return s.deps.Repo.Save(ctx, it)
	}
	return s.deps.UoW.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return s.deps.TxRepo(tx).Save(ctx, it)
	})
}
