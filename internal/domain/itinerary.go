package domain

import (
	"time"
)

// PlacedItem is one scheduled entry in a day: a candidate pinned to a time
// window with an estimated cost.
type PlacedItem struct {
	CandidateID string       `json:"candidate_id"`
	Name        string       `json:"name"`
	Category    ItemCategory `json:"category"`
	Window      TimeWindow   `json:"window"`
	Cost        float64      `json:"cost"`
}

// ItineraryDay is one calendar day's ordered schedule.
type ItineraryDay struct {
	Date       time.Time    `json:"date"`
	Items      []PlacedItem `json:"items"`
	Cost       float64      `json:"cost"`
	OverBudget bool         `json:"over_budget,omitempty"`
}

// ActivityCount returns the number of activity items on the day.
func (d ItineraryDay) ActivityCount() int {
	n := 0
	for _, it := range d.Items {
		if it.Category == CategoryActivity {
			n++
		}
	}
	return n
}

// TripRequest is the originating request an itinerary is built from. It is
// retained on the itinerary so later re-optimization sees the same inputs.
type TripRequest struct {
	Destination string            `json:"destination"`
	Coord       *Coordinates      `json:"coord,omitempty"`
	StartDate   time.Time         `json:"start_date"`
	EndDate     time.Time         `json:"end_date"`
	GroupSize   int               `json:"group_size"`
	Budget      float64           `json:"budget"`
	Currency    string            `json:"currency,omitempty"`
	Preferences PreferenceProfile `json:"preferences"`
}

// DayCount returns the inclusive number of calendar days in the range.
func (r TripRequest) DayCount() int {
	start := DateOnly(r.StartDate)
	end := DateOnly(r.EndDate)
	return int(end.Sub(start).Hours()/24) + 1
}

// Nights returns lodging nights: one fewer than days.
func (r TripRequest) Nights() int {
	return r.DayCount() - 1
}

// DateOnly truncates a time to its UTC calendar date.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// TravelItinerary is a complete multi-day plan. The planner owns instances
// it returns; callers mutate only through the planner's modification API.
type TravelItinerary struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Destination Place          `json:"destination"`
	Days        []ItineraryDay `json:"days"`
	TotalCost   float64        `json:"total_cost"`
	Request     TripRequest    `json:"request"`
	Warnings    []string       `json:"warnings,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// Clone returns a deep copy. Modification operations work on a clone so a
// failed mutation leaves the original untouched.
func (it *TravelItinerary) Clone() *TravelItinerary {
	out := *it
	out.Days = make([]ItineraryDay, len(it.Days))
	for i, d := range it.Days {
		day := d
		day.Items = make([]PlacedItem, len(d.Items))
		copy(day.Items, d.Items)
		out.Days[i] = day
	}
	if len(it.Warnings) > 0 {
		out.Warnings = make([]string, len(it.Warnings))
		copy(out.Warnings, it.Warnings)
	}
	return &out
}

// RecomputeTotals rederives per-day and total costs from the placed items.
func (it *TravelItinerary) RecomputeTotals() {
	total := 0.0
	for i := range it.Days {
		dayCost := 0.0
		for _, item := range it.Days[i].Items {
			dayCost += item.Cost
		}
		it.Days[i].Cost = dayCost
		total += dayCost
	}
	it.TotalCost = total
}

// OptimizationSuggestion points at a day that is cost- or activity-heavy
// relative to the rest of the plan.
type OptimizationSuggestion struct {
	DayIndex  int    `json:"day_index"`
	Rationale string `json:"rationale"`
}

// OptimizationResult describes how evenly paced a plan is. It never mutates
// the itinerary it was computed from.
type OptimizationResult struct {
	BalanceScore float64                  `json:"balance_score"` // [0,1]
	Suggestions  []OptimizationSuggestion `json:"suggestions,omitempty"`
}
