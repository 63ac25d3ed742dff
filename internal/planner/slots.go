package planner

import (
	"time"

	"github.com/alexanderramin/wayfare/internal/domain"
)

// slotSpec describes one schedule slot: the canonical span a venue may be
// placed anywhere inside, the length of the block actually reserved, and the
// anchor where the block sits by default. Minutes since midnight.
type slotSpec struct {
	Span   domain.TimeWindow
	Block  int
	Anchor int
}

// planWindow returns the block the venue can host inside the slot's span.
// The anchored block is preferred so days keep a familiar cadence; a venue
// open only at the span's edge still qualifies via the half-hour scan.
// Venues that publish no hours take the anchor.
func (s slotSpec) planWindow(c domain.Candidate, weekday time.Weekday) (domain.TimeWindow, bool) {
	anchored := domain.TimeWindow{StartMin: s.Anchor, EndMin: s.Anchor + s.Block}
	if len(c.Hours) == 0 || c.Hours.CoversWindow(weekday, anchored) {
		return anchored, true
	}
	for start := s.Span.StartMin; start+s.Block <= s.Span.EndMin; start += 30 {
		w := domain.TimeWindow{StartMin: start, EndMin: start + s.Block}
		if c.Hours.CoversWindow(weekday, w) {
			return w, true
		}
	}
	return domain.TimeWindow{}, false
}

// Meal slots on the canonical spans: breakfast 07:00-10:00, lunch
// 11:30-14:00, dinner 18:00-21:00.
var mealSlots = map[domain.MealSlot]slotSpec{
	domain.MealBreakfast: {Span: domain.TimeWindow{StartMin: 7 * 60, EndMin: 10 * 60}, Block: 60, Anchor: 8 * 60},
	domain.MealLunch:     {Span: domain.TimeWindow{StartMin: 11*60 + 30, EndMin: 14 * 60}, Block: 60, Anchor: 12 * 60},
	domain.MealDinner:    {Span: domain.TimeWindow{StartMin: 18 * 60, EndMin: 21 * 60}, Block: 90, Anchor: 18*60 + 30},
}

var mealOrder = []domain.MealSlot{domain.MealBreakfast, domain.MealLunch, domain.MealDinner}

// activitySlots are the default two-hour activity blocks inside the daytime
// span, anchored morning then afternoon then late afternoon.
var activitySlots = []slotSpec{
	{Span: domain.TimeWindow{StartMin: 9 * 60, EndMin: 18 * 60}, Block: 120, Anchor: 9*60 + 30},
	{Span: domain.TimeWindow{StartMin: 9 * 60, EndMin: 18 * 60}, Block: 120, Anchor: 14 * 60},
	{Span: domain.TimeWindow{StartMin: 9 * 60, EndMin: 18 * 60}, Block: 120, Anchor: 16 * 60},
}

// Lodging bookends: check-in mid-afternoon, check-out late morning.
var (
	checkInWindow  = domain.TimeWindow{StartMin: 15 * 60, EndMin: 15*60 + 30}
	checkOutWindow = domain.TimeWindow{StartMin: 11 * 60, EndMin: 11*60 + 30}
	overnightStay  = domain.TimeWindow{StartMin: 23 * 60, EndMin: 23*60 + 59}
)

// activitiesForStyle maps travel style onto the day's activity count.
func activitiesForStyle(style domain.TravelStyle) int {
	switch style {
	case domain.StyleRelaxed:
		return 1
	case domain.StylePacked, domain.StyleAdventure:
		return 3
	default:
		return 2
	}
}

// Venue classification is tag-driven: food tags make a meal venue, lodging
// tags a lodging venue, everything else counts as an activity.
var foodTags = map[string]bool{
	"restaurant": true, "food": true, "cafe": true, "bakery": true,
	"bar": true, "diner": true, "bistro": true,
}

var lodgingTags = map[string]bool{
	"hotel": true, "lodging": true, "hostel": true, "inn": true,
	"resort": true, "guesthouse": true,
}

func isMealVenue(c domain.Candidate) bool {
	for _, tag := range c.Categories {
		if foodTags[tag] {
			return true
		}
	}
	return false
}

func isLodgingVenue(c domain.Candidate) bool {
	for _, tag := range c.Categories {
		if lodgingTags[tag] {
			return true
		}
	}
	return false
}

func isActivityVenue(c domain.Candidate) bool {
	return !isMealVenue(c) && !isLodgingVenue(c)
}
