package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/wayfare/internal/collab"
	"github.com/alexanderramin/wayfare/internal/decision"
	"github.com/alexanderramin/wayfare/internal/extract"
)

const defaultSearchLimit = 25

type decisionService struct {
	venues    collab.VenueClient
	engine    *decision.Engine
	extractor *extract.Extractor
	observer  UseCaseObserver
}

func NewDecisionService(venues collab.VenueClient, engine *decision.Engine, observer UseCaseObserver) DecisionService {
	if observer == nil {
		observer = NoopUseCaseObserver{}
	}
	return &decisionService{
		venues:    venues,
		engine:    engine,
		extractor: extract.New(),
		observer:  observer,
	}
}

func (s *decisionService) Decide(ctx context.Context, req DecideRequest) (*DecideResponse, error) {
	var resp *DecideResponse
	err := observe(ctx, s.observer, "decide", map[string]any{"query": req.Query != ""}, func() error {
		profile := req.Profile
		if req.Query != "" {
			profile, _ = s.extractor.ExtractInto(profile, req.Query)
		}

		pool := req.Candidates
		if len(pool) == 0 {
			found, err := s.venues.Search(ctx, collab.SearchRequest{
				Query:      req.Query,
				Location:   req.Location,
				Categories: profile.DesiredTags(),
				Price:      profile.Price,
				Limit:      defaultSearchLimit,
			})
			if err != nil {
				return fmt.Errorf("gathering candidates: %w", err)
			}
			pool = found
		}

		dec, err := s.engine.SelectBest(pool, profile, req.Location, req.Context)
		if err != nil {
			return err
		}
		resp = &DecideResponse{Decision: dec, Profile: profile}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
