package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/alexanderramin/wayfare/internal/collab"
	"github.com/alexanderramin/wayfare/internal/config"
	"github.com/alexanderramin/wayfare/internal/db"
	"github.com/alexanderramin/wayfare/internal/domain"
	"github.com/alexanderramin/wayfare/internal/planner"
	"github.com/alexanderramin/wayfare/internal/repository"
	"github.com/alexanderramin/wayfare/internal/testutil"
)

type fakeVenues struct {
	searchResult []domain.Candidate
	searchErr    error
	place        *domain.Place
	geocodeErr   error
	lastSearch   collab.SearchRequest
	searchCalls  int
}

func (f *fakeVenues) Search(_ context.Context, req collab.SearchRequest) ([]domain.Candidate, error) {
	f.searchCalls++
	f.lastSearch = req
	return f.searchResult, f.searchErr
}

func (f *fakeVenues) Geocode(context.Context, string) (*domain.Place, error) {
	if f.geocodeErr != nil {
		return nil, f.geocodeErr
	}
	if f.place == nil {
		return &domain.Place{Name: "Lisbon", Coord: domain.Coordinates{Lat: 38.7223, Lon: -9.1393}}, nil
	}
	return f.place, nil
}

func (f *fakeVenues) Available(context.Context) bool { return true }

// fakeBooking replays canned outcomes in order and records every request.
type fakeBooking struct {
	outcomes []bookOutcome
	calls    []collab.BookingRequest
}

type bookOutcome struct {
	conf *collab.Confirmation
	err  error
}

func (f *fakeBooking) Book(_ context.Context, req collab.BookingRequest) (*collab.Confirmation, error) {
	f.calls = append(f.calls, req)
	if len(f.outcomes) == 0 {
		return &collab.Confirmation{ConfirmationID: "conf-1", VenueID: req.VenueID, Status: "confirmed"}, nil
	}
	out := f.outcomes[0]
	f.outcomes = f.outcomes[1:]
	return out.conf, out.err
}

func (f *fakeBooking) Available(context.Context) bool { return true }

func newTripServiceForTest(t *testing.T, venues collab.VenueClient) (TripService, *sql.DB) {
	t.Helper()
	conn := testutil.NewTestDB(t)
	pl := planner.New(config.Default())
	svc := NewTripService(TripServiceDeps{
		Venues:  venues,
		Planner: pl,
		Repo:    repository.NewSQLiteItineraryRepo(conn),
		UoW:     testutil.NewTestUoW(conn),
		TxRepo: func(tx db.DBTX) repository.ItineraryRepo {
			return repository.NewSQLiteItineraryRepo(tx)
		},
	})
	return svc, conn
}
