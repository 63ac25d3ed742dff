package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/wayfare/internal/domain"
	"github.com/alexanderramin/wayfare/internal/repository"
	"github.com/stretchr/testify/assert"
)

func sampleItineraryForDisplay() *domain.TravelItinerary {
	day1 := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)
	it := &domain.TravelItinerary{
		ID:   "itin-0123456789",
		Name: "2 days in Lisbon",
		Request: domain.TripRequest{
			Destination: "Lisbon", GroupSize: 2, Budget: 800, Currency: "EUR",
		},
		Days: []domain.ItineraryDay{
			{
				Date: day1,
				Items: []domain.PlacedItem{
					{Name: "Café Nicola", Category: domain.CategoryMeal, Window: domain.TimeWindow{StartMin: 480, EndMin: 540}, Cost: 30},
					{Name: "Castelo de S. Jorge", Category: domain.CategoryActivity, Window: domain.TimeWindow{StartMin: 570, EndMin: 690}, Cost: 20},
					{Name: "Hotel Tejo (check-in)", Category: domain.CategoryLodging, Window: domain.TimeWindow{StartMin: 900, EndMin: 930}, Cost: 150},
				},
			},
			{
				Date:       day1.AddDate(0, 0, 1),
				Items:      []domain.PlacedItem{{Name: "Hotel Tejo (check-out)", Category: domain.CategoryLodging, Window: domain.TimeWindow{StartMin: 660, EndMin: 690}}},
				OverBudget: true,
			},
		},
		Warnings: []string{"day 2 runs 420.00 against a 400.00 budget slice"},
	}
	it.RecomputeTotals()
	return it
}

func TestFormatItinerary(t *testing.T) {
	out := FormatItinerary(sampleItineraryForDisplay())

	assert.Contains(t, out, "2 days in Lisbon")
	assert.Contains(t, out, "Day 1")
	assert.Contains(t, out, "Day 2")
	assert.Contains(t, out, "Café Nicola")
	assert.Contains(t, out, "08:00-09:00")
	assert.Contains(t, out, "over budget")
	assert.Contains(t, out, "WARNING: day 2 runs")
}

func TestFormatSummaries(t *testing.T) {
	out := FormatSummaries([]repository.ItinerarySummary{
		{ID: "itin-1", Name: "3 days in Porto", Destination: "Porto", Days: 3, TotalCost: 900,
			UpdatedAt: time.Date(2026, 5, 1, 9, 30, 0, 0, time.UTC)},
	})

	assert.Contains(t, out, "3 days in Porto")
	assert.Contains(t, out, "Porto")
	assert.Contains(t, out, "Destination")
}

func TestFormatSummaries_Empty(t *testing.T) {
	out := FormatSummaries(nil)
	assert.Contains(t, out, "No itineraries yet")
}

func TestFormatOptimization(t *testing.T) {
	balanced := FormatOptimization(&domain.OptimizationResult{BalanceScore: 1.0})
	assert.Contains(t, balanced, "evenly paced")

	lopsided := FormatOptimization(&domain.OptimizationResult{
		BalanceScore: 0.4,
		Suggestions: []domain.OptimizationSuggestion{
			{DayIndex: 0, Rationale: "carries most of the trip cost"},
		},
	})
	assert.Contains(t, lopsided, "Day 1:")
	assert.Contains(t, lopsided, "carries most of the trip cost")
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable([]string{"A", "Name"}, [][]string{
		{"1", "short"},
		{"2", "a much longer cell"},
	})

	assert.Contains(t, out, "A")
	assert.Contains(t, out, "a much longer cell")
	assert.Contains(t, out, "─")
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "150 EUR", Money(150, "EUR"))
	assert.Equal(t, "37.50 EUR", Money(37.5, "EUR"))
	assert.Equal(t, "0 USD", Money(0, ""))
}
