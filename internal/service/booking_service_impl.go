package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/wayfare/internal/collab"
	"github.com/alexanderramin/wayfare/internal/domain"
	"github.com/alexanderramin/wayfare/internal/planner"
	"github.com/alexanderramin/wayfare/internal/repository"
)

type bookingService struct {
	client   collab.BookingClient
	repo     repository.ItineraryRepo
	policy   planner.FallbackPolicy
	observer UseCaseObserver
}

func NewBookingService(
	client collab.BookingClient,
	repo repository.ItineraryRepo,
	policy planner.FallbackPolicy,
	observer UseCaseObserver,
) BookingService {
	if observer == nil {
		observer = NoopUseCaseObserver{}
	}
	return &bookingService{client: client, repo: repo, policy: policy, observer: observer}
}

func (s *bookingService) BookItem(ctx context.Context, req BookItemRequest) (*collab.Confirmation, error) {
	var conf *collab.Confirmation
	err := observe(ctx, s.observer, "book_item", map[string]any{"itinerary": req.ItineraryID}, func() error {
		it, err := s.repo.GetByID(ctx, req.ItineraryID)
		if err != nil {
			return err
		}
		if req.DayIndex < 0 || req.DayIndex >= len(it.Days) {
			return fmt.Errorf("day index %d out of range", req.DayIndex)
		}
		day := it.Days[req.DayIndex]
		if req.ItemIndex < 0 || req.ItemIndex >= len(day.Items) {
			return fmt.Errorf("item index %d out of range", req.ItemIndex)
		}
		item := day.Items[req.ItemIndex]
		if item.Category == domain.CategoryLodging {
			return fmt.Errorf("lodging is booked at plan time, not per slot")
		}

		got, err := s.bookWithFallback(ctx, it, day, item, req.Notes)
		if err != nil {
			return err
		}
		conf = got
		return nil
	})
	if err != nil {
		return nil, err
	}
	return conf, nil
}

// bookWithFallback tries the scheduled window first, then the allocator's
// fallback windows while the collaborator keeps declining retryably.
func (s *bookingService) bookWithFallback(
	ctx context.Context,
	it *domain.TravelItinerary,
	day domain.ItineraryDay,
	item domain.PlacedItem,
	notes string,
) (*collab.Confirmation, error) {
	windows := append([]domain.TimeWindow{item.Window}, s.policy.AlternativeWindows(item.Window)...)

	var lastErr error
	for _, w := range windows {
		conf, err := s.client.Book(ctx, collab.BookingRequest{
			VenueID:     item.CandidateID,
			Date:        day.Date.Format("2006-01-02"),
			Window:      w,
			PartySize:   it.Request.GroupSize,
			Transaction: domain.TransactionReservation,
			Notes:       notes,
		})
		if err == nil {
			return conf, nil
		}
		lastErr = err

		var declined *collab.BookingDeclinedError
		if !errors.As(err, &declined) || !declined.Retryable {
			return nil, err
		}
	}
	return nil, lastErr
}
