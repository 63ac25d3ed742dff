package planner

import (
	"testing"
	"time"

	"github.com/alexanderramin/wayfare/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dayWith builds a day carrying the given cost on one meal plus n activities.
func dayWith(date time.Time, cost float64, activities int) domain.ItineraryDay {
	day := domain.ItineraryDay{Date: date}
	day.Items = append(day.Items, domain.PlacedItem{
		Name: "Dinner", Category: domain.CategoryMeal,
		Window: domain.TimeWindow{StartMin: 1110, EndMin: 1200}, Cost: cost,
	})
	for i := 0; i < activities; i++ {
		day.Items = append(day.Items, domain.PlacedItem{
			Name: "Stop", Category: domain.CategoryActivity,
			Window: domain.TimeWindow{StartMin: 540 + i*130, EndMin: 660 + i*130},
		})
	}
	day.Cost = cost
	return day
}

func itineraryWith(days ...domain.ItineraryDay) *domain.TravelItinerary {
	it := &domain.TravelItinerary{ID: "it-1", Days: days}
	it.RecomputeTotals()
	return it
}

func TestOptimize_EvenPlanScoresPerfect(t *testing.T) {
	p := newTestPlanner(t)
	base := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)
	it := itineraryWith(
		dayWith(base, 100, 2),
		dayWith(base.AddDate(0, 0, 1), 100, 2),
		dayWith(base.AddDate(0, 0, 2), 100, 2),
	)

	result := p.Optimize(it)

	assert.InDelta(t, 1.0, result.BalanceScore, 1e-9)
	assert.Empty(t, result.Suggestions)
}

func TestOptimize_LopsidedPlanScoresLowAndSuggests(t *testing.T) {
	p := newTestPlanner(t)
	base := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)
	it := itineraryWith(
		dayWith(base, 300, 4),
		dayWith(base.AddDate(0, 0, 1), 50, 1),
		dayWith(base.AddDate(0, 0, 2), 50, 1),
	)

	result := p.Optimize(it)

	assert.Less(t, result.BalanceScore, 0.5)
	require.NotEmpty(t, result.Suggestions)
	for _, s := range result.Suggestions {
		assert.Equal(t, 0, s.DayIndex, "only the heavy day is flagged")
		assert.NotEmpty(t, s.Rationale)
	}
}

func TestOptimize_RelativeOrdering(t *testing.T) {
	p := newTestPlanner(t)
	base := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)

	even := p.Optimize(itineraryWith(
		dayWith(base, 120, 2),
		dayWith(base.AddDate(0, 0, 1), 110, 2),
		dayWith(base.AddDate(0, 0, 2), 130, 2),
	))
	skewed := p.Optimize(itineraryWith(
		dayWith(base, 320, 5),
		dayWith(base.AddDate(0, 0, 1), 20, 1),
		dayWith(base.AddDate(0, 0, 2), 20, 1),
	))

	assert.Greater(t, even.BalanceScore, skewed.BalanceScore)
}

func TestOptimize_NeverMutates(t *testing.T) {
	p := newTestPlanner(t)
	base := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)
	it := itineraryWith(
		dayWith(base, 300, 4),
		dayWith(base.AddDate(0, 0, 1), 50, 1),
	)
	before := it.Clone()

	_ = p.Optimize(it)

	assert.Equal(t, before, it)
}

func TestOptimize_DegenerateInputs(t *testing.T) {
	p := newTestPlanner(t)

	assert.Equal(t, 1.0, p.Optimize(nil).BalanceScore)
	assert.Equal(t, 1.0, p.Optimize(&domain.TravelItinerary{}).BalanceScore)

	// An all-free trip is perfectly balanced, not divide-by-zero chaos.
	base := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)
	free := itineraryWith(dayWith(base, 0, 1), dayWith(base.AddDate(0, 0, 1), 0, 1))
	assert.Equal(t, 1.0, p.Optimize(free).BalanceScore)
}
