package planner

import (
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/wayfare/internal/config"
	"github.com/alexanderramin/wayfare/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var lisbon = domain.Coordinates{Lat: 38.7223, Lon: -9.1393}

func openDaily(open, close int) domain.OperatingHours {
	h := make(domain.OperatingHours, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		h[d] = []domain.HoursSpan{{OpenMin: open, CloseMin: close}}
	}
	return h
}

// testPool has enough distinct venues for a three-day trip: ten restaurants,
// six activities, two lodging options, all near the destination.
func testPool() []domain.Candidate {
	restaurantHours := openDaily(7*60, 22*60)
	museumHours := openDaily(9*60, 18*60)
	nearby := domain.Coordinates{Lat: 38.7230, Lon: -9.1400}

	pool := []domain.Candidate{
		{ID: "r-1", Name: "Taberna Azul", Rating: 4.7, ReviewCount: 410, Price: domain.PriceModerate, Categories: []string{"restaurant", "portuguese"}, Coord: nearby, Hours: restaurantHours},
		{ID: "r-2", Name: "Casa do Bacalhau", Rating: 4.6, ReviewCount: 380, Price: domain.PriceModerate, Categories: []string{"restaurant", "seafood"}, Coord: nearby, Hours: restaurantHours},
		{ID: "r-3", Name: "Pastelaria Central", Rating: 4.5, ReviewCount: 520, Price: domain.PriceBudget, Categories: []string{"cafe", "bakery"}, Coord: nearby, Hours: restaurantHours},
		{ID: "r-4", Name: "O Cantinho", Rating: 4.4, ReviewCount: 290, Price: domain.PriceBudget, Categories: []string{"restaurant", "portuguese"}, Coord: nearby, Hours: restaurantHours},
		{ID: "r-5", Name: "Mar e Sol", Rating: 4.3, ReviewCount: 240, Price: domain.PriceModerate, Categories: []string{"restaurant", "seafood"}, Coord: nearby, Hours: restaurantHours},
		{ID: "r-6", Name: "Quiosque do Parque", Rating: 4.2, ReviewCount: 180, Price: domain.PriceBudget, Categories: []string{"cafe"}, Coord: nearby, Hours: restaurantHours},
		{ID: "r-7", Name: "Adega Velha", Rating: 4.1, ReviewCount: 160, Price: domain.PriceModerate, Categories: []string{"restaurant", "portuguese"}, Coord: nearby, Hours: restaurantHours},
		{ID: "r-8", Name: "Petiscos & Co", Rating: 4.0, ReviewCount: 140, Price: domain.PriceBudget, Categories: []string{"restaurant"}, Coord: nearby, Hours: restaurantHours},
		{ID: "r-9", Name: "Churrasqueira Rio", Rating: 3.9, ReviewCount: 120, Price: domain.PriceBudget, Categories: []string{"restaurant"}, Coord: nearby, Hours: restaurantHours},
		{ID: "r-10", Name: "Snack Bar Sete", Rating: 3.8, ReviewCount: 90, Price: domain.PriceBudget, Categories: []string{"restaurant"}, Coord: nearby, Hours: restaurantHours},

		{ID: "a-1", Name: "Maritime Museum", Rating: 4.6, ReviewCount: 310, Price: domain.PriceBudget, Categories: []string{"museum"}, Coord: nearby, Hours: museumHours},
		{ID: "a-2", Name: "Tile Gallery", Rating: 4.5, ReviewCount: 220, Price: domain.PriceModerate, Categories: []string{"museum", "art"}, Coord: nearby, Hours: museumHours},
		{ID: "a-3", Name: "Miradouro Walk", Rating: 4.7, ReviewCount: 450, Price: domain.PriceFree, Categories: []string{"park", "viewpoint"}, Coord: nearby},
		{ID: "a-4", Name: "Botanical Garden", Rating: 4.4, ReviewCount: 200, Price: domain.PriceFree, Categories: []string{"park"}, Coord: nearby},
		{ID: "a-5", Name: "Old Town Tour", Rating: 4.3, ReviewCount: 260, Price: domain.PriceModerate, Categories: []string{"tour"}, Coord: nearby, Hours: museumHours},
		{ID: "a-6", Name: "Riverside Market", Rating: 4.2, ReviewCount: 340, Price: domain.PriceBudget, Categories: []string{"market"}, Coord: nearby, Hours: museumHours},

		{ID: "h-1", Name: "Hotel Tejo", Rating: 4.4, ReviewCount: 520, Price: domain.PriceModerate, Categories: []string{"hotel"}, Coord: nearby},
		{ID: "h-2", Name: "Alfama Hostel", Rating: 4.0, ReviewCount: 310, Price: domain.PriceBudget, Categories: []string{"hostel"}, Coord: nearby},
	}
	return pool
}

func testRequest() domain.TripRequest {
	return domain.TripRequest{
		Destination: "Lisbon",
		Coord:       &lisbon,
		StartDate:   time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 6, 12, 0, 0, 0, 0, time.UTC),
		GroupSize:   2,
		Budget:      1200,
		Currency:    "EUR",
		Preferences: domain.PreferenceProfile{Style: domain.StyleBalanced},
	}
}

func fixedClock() func() time.Time {
	return func() time.Time { return time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC) }
}

func newTestPlanner(t *testing.T) *Planner {
	t.Helper()
	return New(config.Default(),
		WithClock(fixedClock()),
		WithIDGenerator(func() string { return "itin-test" }),
	)
}

func TestGenerate_ThreeDayTrip(t *testing.T) {
	p := newTestPlanner(t)

	it, err := p.Generate(testRequest(), testPool())
	require.NoError(t, err)

	assert.Equal(t, "itin-test", it.ID)
	assert.Equal(t, "3 days in Lisbon", it.Name)
	require.Len(t, it.Days, 3)

	for i, day := range it.Days {
		wantDate := time.Date(2026, 6, 10+i, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, wantDate, day.Date, "days run chronologically")

		meals := 0
		for _, item := range day.Items {
			if item.Category == domain.CategoryMeal {
				meals++
			}
		}
		assert.Equal(t, 3, meals, "day %d has breakfast, lunch, dinner", i+1)
		assert.Equal(t, 2, day.ActivityCount(), "balanced style schedules two activities")
	}
}

func TestGenerate_ItemsAreChronologicalAndDisjoint(t *testing.T) {
	p := newTestPlanner(t)

	it, err := p.Generate(testRequest(), testPool())
	require.NoError(t, err)

	for di, day := range it.Days {
		for i := 1; i < len(day.Items); i++ {
			prev, cur := day.Items[i-1], day.Items[i]
			assert.LessOrEqual(t, prev.Window.StartMin, cur.Window.StartMin, "day %d out of order", di+1)
			assert.False(t, prev.Window.Overlaps(cur.Window),
				"day %d: %s overlaps %s", di+1, prev.Name, cur.Name)
		}
	}
}

func TestGenerate_NoVenueRepeatsAcrossDays(t *testing.T) {
	p := newTestPlanner(t)

	it, err := p.Generate(testRequest(), testPool())
	require.NoError(t, err)

	seen := make(map[string]int)
	for _, day := range it.Days {
		for _, item := range day.Items {
			if item.Category == domain.CategoryLodging {
				continue
			}
			seen[item.CandidateID]++
		}
	}
	for id, n := range seen {
		assert.Equal(t, 1, n, "venue %s scheduled %d times", id, n)
	}
}

func TestGenerate_LodgingBookends(t *testing.T) {
	p := newTestPlanner(t)

	it, err := p.Generate(testRequest(), testPool())
	require.NoError(t, err)
	require.Len(t, it.Days, 3)

	first := lodgingOn(t, it.Days[0])
	assert.Contains(t, first.Name, "check-in")
	assert.Equal(t, "h-1", first.CandidateID, "top-rated hotel wins")
	assert.Greater(t, first.Cost, 0.0)

	middle := lodgingOn(t, it.Days[1])
	assert.Equal(t, first.Cost, middle.Cost, "same nightly rate every night")

	last := lodgingOn(t, it.Days[2])
	assert.Contains(t, last.Name, "check-out")
	assert.Zero(t, last.Cost)
}

func lodgingOn(t *testing.T, day domain.ItineraryDay) domain.PlacedItem {
	t.Helper()
	for _, item := range day.Items {
		if item.Category == domain.CategoryLodging {
			return item
		}
	}
	t.Fatalf("no lodging item on %s", day.Date.Format("2006-01-02"))
	return domain.PlacedItem{}
}

func TestGenerate_SingleDayHasNoLodging(t *testing.T) {
	p := newTestPlanner(t)
	req := testRequest()
	req.EndDate = req.StartDate

	it, err := p.Generate(req, testPool())
	require.NoError(t, err)
	require.Len(t, it.Days, 1)
	for _, item := range it.Days[0].Items {
		assert.NotEqual(t, domain.CategoryLodging, item.Category)
	}
}

func TestGenerate_TotalsAreConsistent(t *testing.T) {
	p := newTestPlanner(t)

	it, err := p.Generate(testRequest(), testPool())
	require.NoError(t, err)

	sum := 0.0
	for _, day := range it.Days {
		daySum := 0.0
		for _, item := range day.Items {
			daySum += item.Cost
		}
		assert.InDelta(t, daySum, day.Cost, 1e-9)
		sum += day.Cost
	}
	assert.InDelta(t, sum, it.TotalCost, 1e-9)
	assert.LessOrEqual(t, it.TotalCost, testRequest().Budget, "ample budget stays unexceeded")
}

func TestGenerate_TightBudgetFlagsInsteadOfFailing(t *testing.T) {
	p := newTestPlanner(t)
	req := testRequest()
	req.Budget = 100

	it, err := p.Generate(req, testPool())
	require.NoError(t, err, "over budget is a warning, never an error")

	assert.True(t, it.Days[0].OverBudget)
	found := false
	for _, w := range it.Warnings {
		if strings.Contains(w, "budget slice") || strings.Contains(w, "exceeds") {
			found = true
		}
	}
	assert.True(t, found, "warnings: %v", it.Warnings)

	for i, day := range it.Days {
		meals := 0
		for _, item := range day.Items {
			if item.Category == domain.CategoryMeal {
				meals++
			}
		}
		assert.Equal(t, 3, meals, "day %d still gets its meals", i+1)
	}
}

func TestGenerate_RelaxedAndPackedStyles(t *testing.T) {
	p := newTestPlanner(t)

	req := testRequest()
	req.EndDate = req.StartDate
	req.Preferences.Style = domain.StyleRelaxed
	relaxed, err := p.Generate(req, testPool())
	require.NoError(t, err)
	assert.Equal(t, 1, relaxed.Days[0].ActivityCount())

	req.Preferences.Style = domain.StylePacked
	packed, err := p.Generate(req, testPool())
	require.NoError(t, err)
	assert.Equal(t, 3, packed.Days[0].ActivityCount())
}

func TestGenerate_Validation(t *testing.T) {
	p := newTestPlanner(t)
	pool := testPool()

	tests := []struct {
		name      string
		mutate    func(*domain.TripRequest)
		wantField string
	}{
		{"empty destination", func(r *domain.TripRequest) { r.Destination = "" }, "destination"},
		{"zero dates", func(r *domain.TripRequest) { r.StartDate = time.Time{}; r.EndDate = time.Time{} }, "dates"},
		{"reversed dates", func(r *domain.TripRequest) { r.EndDate = r.StartDate.AddDate(0, 0, -1) }, "dates"},
		{"too long", func(r *domain.TripRequest) { r.EndDate = r.StartDate.AddDate(0, 0, 14) }, "dates"},
		{"zero group", func(r *domain.TripRequest) { r.GroupSize = 0 }, "group_size"},
		{"huge group", func(r *domain.TripRequest) { r.GroupSize = 21 }, "group_size"},
		{"negative budget", func(r *domain.TripRequest) { r.Budget = -1 }, "budget"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testRequest()
			tt.mutate(&req)

			_, err := p.Generate(req, pool)

			var invalid *InvalidRequestError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tt.wantField, invalid.Field)
		})
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	p := newTestPlanner(t)

	first, err := p.Generate(testRequest(), testPool())
	require.NoError(t, err)
	second, err := p.Generate(testRequest(), testPool())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerate_NoLodgingPoolWarns(t *testing.T) {
	p := newTestPlanner(t)
	var pool []domain.Candidate
	for _, c := range testPool() {
		if !isLodgingVenue(c) {
			pool = append(pool, c)
		}
	}

	it, err := p.Generate(testRequest(), pool)
	require.NoError(t, err)
	assert.Contains(t, it.Warnings, "no lodging options in the candidate pool")
}

func TestGenerate_UnbudgetedTripFollowsRanking(t *testing.T) {
	p := newTestPlanner(t)
	req := testRequest()
	req.Budget = 0
	req.EndDate = req.StartDate

	hours := openDaily(7*60, 22*60)
	nearby := domain.Coordinates{Lat: 38.7230, Lon: -9.1400}
	pool := []domain.Candidate{
		{ID: "best", Name: "Chef's Table", Rating: 5.0, ReviewCount: 500, Price: domain.PriceModerate, Categories: []string{"restaurant"}, Coord: nearby, Hours: hours},
		{ID: "cheap", Name: "Bargain Bites", Rating: 1.0, ReviewCount: 1, Price: domain.PriceBudget, Categories: []string{"restaurant"}, Coord: nearby, Hours: hours},
	}

	it, err := p.Generate(req, pool)
	require.NoError(t, err)
	require.Len(t, it.Days, 1)
	require.NotEmpty(t, it.Days[0].Items)

	breakfast := it.Days[0].Items[0]
	require.Equal(t, domain.CategoryMeal, breakfast.Category)
	assert.Equal(t, "best", breakfast.CandidateID, "no budget means ranking alone decides")
	assert.False(t, it.Days[0].OverBudget)
}
