package planner

import (
	"testing"
	"time"

	"github.com/alexanderramin/wayfare/internal/config"
	"github.com/alexanderramin/wayfare/internal/decision"
	"github.com/alexanderramin/wayfare/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBuilder() *DayBuilder {
	cfg := config.Default()
	return NewDayBuilder(decision.NewScorer(cfg.Scoring), NewAllocator(cfg.Slots))
}

func baseDayRequest() dayRequest {
	return dayRequest{
		Date:        time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC),
		Pool:        testPool(),
		Profile:     domain.PreferenceProfile{},
		Loc:         &lisbon,
		GroupSize:   2,
		BudgetSlice: 400,
		Activities:  2,
		Used:        make(map[string]bool),
	}
}

func TestBuild_MealCadence(t *testing.T) {
	b := newTestBuilder()

	day, missed := b.Build(baseDayRequest())

	assert.Empty(t, missed)
	var slots []domain.TimeWindow
	for _, item := range day.Items {
		if item.Category == domain.CategoryMeal {
			slots = append(slots, item.Window)
		}
	}
	require.Len(t, slots, 3)
	assert.Less(t, slots[0].EndMin, slots[1].StartMin, "breakfast before lunch")
	assert.Less(t, slots[1].EndMin, slots[2].StartMin, "lunch before dinner")
}

func TestBuild_PrefersHighestRankedVenue(t *testing.T) {
	b := newTestBuilder()

	day, _ := b.Build(baseDayRequest())

	// r-3 has the best blend of rating and review count among venues open
	// for breakfast; with no price preference it tops the slot ranking.
	breakfast := day.Items[0]
	require.Equal(t, domain.CategoryMeal, breakfast.Category)
	assert.Equal(t, "r-3", breakfast.CandidateID)
}

func TestBuild_ActivityTargetHonored(t *testing.T) {
	b := newTestBuilder()

	for want := 1; want <= 3; want++ {
		req := baseDayRequest()
		req.Activities = want
		day, _ := b.Build(req)
		assert.Equal(t, want, day.ActivityCount(), "target %d", want)
	}
}

func TestBuild_UsedVenuesAreSkipped(t *testing.T) {
	b := newTestBuilder()
	req := baseDayRequest()

	first, _ := b.Build(req)
	second, _ := b.Build(req)

	firstIDs := make(map[string]bool)
	for _, item := range first.Items {
		firstIDs[item.CandidateID] = true
	}
	for _, item := range second.Items {
		assert.False(t, firstIDs[item.CandidateID], "%s reused on the second day", item.Name)
	}
}

func TestBuild_SeedBlocksItsWindow(t *testing.T) {
	b := newTestBuilder()
	req := baseDayRequest()
	req.Seed = []domain.PlacedItem{{
		CandidateID: "h-1", Name: "Hotel Tejo (check-in)",
		Category: domain.CategoryLodging, Window: checkInWindow, Cost: 150,
	}}

	day, _ := b.Build(req)

	for i, item := range day.Items {
		for _, other := range day.Items[i+1:] {
			assert.False(t, item.Window.Overlaps(other.Window),
				"%s overlaps %s", item.Name, other.Name)
		}
	}
	assert.Equal(t, "h-1", lodgingOn(t, day).CandidateID)
}

func TestBuild_BudgetFallbackPicksCheapest(t *testing.T) {
	b := newTestBuilder()
	req := baseDayRequest()
	req.BudgetSlice = 10

	day, _ := b.Build(req)

	assert.True(t, day.OverBudget, "slots fill anyway and the day is flagged")
	meals := 0
	for _, item := range day.Items {
		if item.Category == domain.CategoryMeal {
			meals++
			assert.Equal(t, 30.0, item.Cost, "cheapest band wins when nothing fits the slice")
		}
	}
	assert.Equal(t, 3, meals)
}

func TestBuild_EmptyPoolReportsMisses(t *testing.T) {
	b := newTestBuilder()
	req := baseDayRequest()
	req.Pool = nil

	day, missed := b.Build(req)

	assert.Empty(t, day.Items)
	require.Len(t, missed, 4, "three meals and the activity shortfall")
	assert.Contains(t, missed[0], "breakfast")
	assert.Contains(t, missed[3], "0 of 2 activity slots")
}

func TestBuild_ClosedDayLimitsEligibility(t *testing.T) {
	b := newTestBuilder()
	req := baseDayRequest()

	// Restaurants closed on Mondays; only the hours-free venues remain
	// eligible for meal slots, and there are none.
	var pool []domain.Candidate
	for _, c := range testPool() {
		if isMealVenue(c) {
			closed := c
			closed.Hours = domain.OperatingHours{}
			for d := time.Tuesday; d <= time.Saturday; d++ {
				closed.Hours[d] = c.Hours[d]
			}
			pool = append(pool, closed)
			continue
		}
		pool = append(pool, c)
	}
	req.Pool = pool
	req.Date = time.Date(2026, 6, 8, 0, 0, 0, 0, time.UTC) // a Monday

	_, missed := b.Build(req)

	assert.Contains(t, missed, "no breakfast venue available")
	assert.Contains(t, missed, "no lunch venue available")
	assert.Contains(t, missed, "no dinner venue available")
}

func TestBuild_NoBudgetSliceTakesTopRanked(t *testing.T) {
	b := newTestBuilder()
	req := baseDayRequest()
	req.BudgetSlice = 0

	hours := openDaily(7*60, 22*60)
	nearby := domain.Coordinates{Lat: 38.7230, Lon: -9.1400}
	req.Pool = []domain.Candidate{
		{ID: "best", Name: "Chef's Table", Rating: 5.0, ReviewCount: 500, Price: domain.PriceModerate, Categories: []string{"restaurant"}, Coord: nearby, Hours: hours},
		{ID: "cheap", Name: "Bargain Bites", Rating: 1.0, ReviewCount: 1, Price: domain.PriceBudget, Categories: []string{"restaurant"}, Coord: nearby, Hours: hours},
	}

	day, _ := b.Build(req)

	require.NotEmpty(t, day.Items)
	breakfast := day.Items[0]
	require.Equal(t, domain.CategoryMeal, breakfast.Category)
	assert.Equal(t, "best", breakfast.CandidateID, "a zero slice is no budget, not a zero budget")
	assert.False(t, day.OverBudget)
}

func TestBuild_EdgeOfSpanVenueStillEligible(t *testing.T) {
	b := newTestBuilder()
	req := baseDayRequest()

	// Open only for the first hour of the breakfast span. The anchored
	// block does not fit, so the block slides to the span's edge.
	early := domain.Candidate{
		ID: "r-11", Name: "Sunrise Bakery", Rating: 5.0, ReviewCount: 900,
		Price: domain.PriceBudget, Categories: []string{"bakery"},
		Coord: domain.Coordinates{Lat: 38.7230, Lon: -9.1400},
		Hours: openDaily(6*60, 8*60),
	}
	req.Pool = append(req.Pool, early)

	day, _ := b.Build(req)

	require.NotEmpty(t, day.Items)
	breakfast := day.Items[0]
	assert.Equal(t, "r-11", breakfast.CandidateID, "top-rated venue is not skipped for its early hours")
	assert.Equal(t, domain.TimeWindow{StartMin: 7 * 60, EndMin: 8 * 60}, breakfast.Window)
}
