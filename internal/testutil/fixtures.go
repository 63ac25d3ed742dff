package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/wayfare/internal/domain"
)

var candidateCounter atomic.Int64

// Candidate options
type CandidateOption func(*domain.Candidate)

func WithRating(r float64, reviews int) CandidateOption {
	return func(c *domain.Candidate) {
		c.Rating = r
		c.ReviewCount = reviews
	}
}

func WithPrice(p domain.PriceBand) CandidateOption {
	return func(c *domain.Candidate) {
		c.Price = p
	}
}

func WithCategories(tags ...string) CandidateOption {
	return func(c *domain.Candidate) {
		c.Categories = tags
	}
}

func WithCoord(lat, lon float64) CandidateOption {
	return func(c *domain.Candidate) {
		c.Coord = domain.Coordinates{Lat: lat, Lon: lon}
	}
}

func WithHours(h domain.OperatingHours) CandidateOption {
	return func(c *domain.Candidate) {
		c.Hours = h
	}
}

func WithTransactions(tt ...domain.TransactionType) CandidateOption {
	return func(c *domain.Candidate) {
		c.Transactions = tt
	}
}

// NewTestCandidate builds a valid candidate with a unique ID, a solid
// rating, and hours wide enough for any slot. Options override.
func NewTestCandidate(name string, opts ...CandidateOption) domain.Candidate {
	n := candidateCounter.Add(1)
	c := domain.Candidate{
		ID:          fmt.Sprintf("cand-%03d", n),
		Name:        name,
		Rating:      4.2,
		ReviewCount: 150,
		Price:       domain.PriceModerate,
		Categories:  []string{"restaurant"},
		Coord:       domain.Coordinates{Lat: 38.7223, Lon: -9.1393},
		Hours:       OpenDaily(7*60, 22*60),
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// OpenDaily builds hours with one identical span every day of the week.
func OpenDaily(open, close int) domain.OperatingHours {
	h := make(domain.OperatingHours, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		h[d] = []domain.HoursSpan{{OpenMin: open, CloseMin: close}}
	}
	return h
}

// NewTestPool returns a pool big enough for a trip of the given length:
// three meal venues and the style's activity count per day, plus one hotel.
func NewTestPool(days int) []domain.Candidate {
	var pool []domain.Candidate
	for i := 0; i < days*3; i++ {
		pool = append(pool, NewTestCandidate(
			fmt.Sprintf("Restaurant %d", i+1),
			WithRating(4.5-float64(i)*0.02, 300-i*5),
		))
	}
	for i := 0; i < days*3; i++ {
		pool = append(pool, NewTestCandidate(
			fmt.Sprintf("Sight %d", i+1),
			WithCategories("museum"),
			WithPrice(domain.PriceBudget),
			WithHours(OpenDaily(9*60, 18*60)),
			WithRating(4.4-float64(i)*0.02, 250-i*5),
		))
	}
	pool = append(pool, NewTestCandidate("Test Hotel",
		WithCategories("hotel"),
		WithRating(4.3, 400),
		WithHours(nil),
	))
	return pool
}

// NewTestTripRequest builds a valid request for a trip of the given length.
func NewTestTripRequest(days int) domain.TripRequest {
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	return domain.TripRequest{
		Destination: "Lisbon",
		Coord:       &domain.Coordinates{Lat: 38.7223, Lon: -9.1393},
		StartDate:   start,
		EndDate:     start.AddDate(0, 0, days-1),
		GroupSize:   2,
		Budget:      float64(days) * 400,
		Currency:    "EUR",
		Preferences: domain.PreferenceProfile{Style: domain.StyleBalanced},
	}
}
