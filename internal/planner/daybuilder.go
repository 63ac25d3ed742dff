package planner

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/alexanderramin/wayfare/internal/decision"
	"github.com/alexanderramin/wayfare/internal/domain"
)

// DayBuilder fills one calendar day: three meals on the canonical cadence
// plus one to three activities depending on travel style. Venue selection
// within each slot is a constrained decision over the candidates that are
// eligible for the slot's category and open during its window.
type DayBuilder struct {
	scorer *decision.Scorer
	alloc  *Allocator
}

func NewDayBuilder(scorer *decision.Scorer, alloc *Allocator) *DayBuilder {
	return &DayBuilder{scorer: scorer, alloc: alloc}
}

// dayRequest carries everything Build needs for a single day. Used is shared
// across days so the same venue is not scheduled twice in one trip.
type dayRequest struct {
	Date        time.Time
	Pool        []domain.Candidate
	Profile     domain.PreferenceProfile
	Loc         *domain.Coordinates
	GroupSize   int
	BudgetSlice float64
	Activities  int
	Used        map[string]bool
	// Seed items (lodging check-in/out, overnight stays) occupy their
	// windows before any slot is filled, and their cost counts against the
	// day's slice.
	Seed []domain.PlacedItem
}

// Build assembles the day's schedule. The second return value lists slots
// that could not be filled; the planner turns them into itinerary warnings.
//
// Budget is soft: each slot prefers the highest-ranked venue that fits the
// remaining slice, falls back to the cheapest placeable venue when nothing
// fits, and the day is flagged over budget rather than left empty. A zero
// slice means no budget at all, so the top-ranked venue wins outright.
func (b *DayBuilder) Build(req dayRequest) (domain.ItineraryDay, []string) {
	day := domain.ItineraryDay{Date: domain.DateOnly(req.Date)}
	weekday := day.Date.Weekday()
	remaining := req.BudgetSlice
	if req.BudgetSlice <= 0 {
		remaining = math.Inf(1)
	}
	var missed []string

	day.Items = append(day.Items, req.Seed...)
	for _, item := range req.Seed {
		remaining -= item.Cost
	}

	for _, slot := range mealOrder {
		ranked := b.rankEligible(req, weekday, mealSlots[slot], isMealVenue)
		item, ok := b.pickAndPlace(ranked, domain.CategoryMeal, weekday, day.Items, req.GroupSize, remaining)
		if !ok {
			missed = append(missed, fmt.Sprintf("no %s venue available", slot))
			continue
		}
		day.Items = append(day.Items, item)
		req.Used[item.CandidateID] = true
		remaining -= item.Cost
	}

	placed := 0
	for _, spec := range activitySlots {
		if placed >= req.Activities {
			break
		}
		ranked := b.rankEligible(req, weekday, spec, isActivityVenue)
		item, ok := b.pickAndPlace(ranked, domain.CategoryActivity, weekday, day.Items, req.GroupSize, remaining)
		if !ok {
			continue
		}
		day.Items = append(day.Items, item)
		req.Used[item.CandidateID] = true
		remaining -= item.Cost
		placed++
	}
	if placed < req.Activities {
		missed = append(missed, fmt.Sprintf("only %d of %d activity slots filled", placed, req.Activities))
	}

	sort.SliceStable(day.Items, func(i, j int) bool {
		return day.Items[i].Window.StartMin < day.Items[j].Window.StartMin
	})
	for _, item := range day.Items {
		day.Cost += item.Cost
	}
	day.OverBudget = req.BudgetSlice > 0 && day.Cost > req.BudgetSlice+1e-9
	return day, missed
}

// slotPick pairs a ranked venue with the window it can host inside the
// slot's span.
type slotPick struct {
	decision.Ranked
	window domain.TimeWindow
}

// rankEligible filters the pool to unused venues of the right kind that can
// host the slot's block somewhere in its span, then ranks them with the
// shared scorer so slot selection and standalone decisions agree on
// ordering. Each pick carries the window the venue's hours allow.
func (b *DayBuilder) rankEligible(req dayRequest, weekday time.Weekday, spec slotSpec, kind func(domain.Candidate) bool) []slotPick {
	var ranked []decision.Ranked
	windows := make(map[string]domain.TimeWindow)
	for _, c := range req.Pool {
		if req.Used[c.ID] || !kind(c) {
			continue
		}
		w, ok := spec.planWindow(c, weekday)
		if !ok {
			continue
		}
		windows[c.ID] = w
		ranked = append(ranked, decision.Ranked{
			Candidate: c,
			Breakdown: b.scorer.Score(c, req.Profile, req.Loc),
		})
	}
	decision.SortRanked(ranked)

	picks := make([]slotPick, len(ranked))
	for i, r := range ranked {
		picks[i] = slotPick{Ranked: r, window: windows[r.Candidate.ID]}
	}
	return picks
}

// pickAndPlace walks the ranked venues, returning the first placeable one
// whose cost fits the remaining slice. When none fit, the cheapest placeable
// venue wins so the slot is filled anyway.
func (b *DayBuilder) pickAndPlace(
	ranked []slotPick,
	category domain.ItemCategory,
	weekday time.Weekday,
	existing []domain.PlacedItem,
	groupSize int,
	remaining float64,
) (domain.PlacedItem, bool) {
	var cheapest *domain.PlacedItem
	for _, r := range ranked {
		cost := EstimateCost(r.Candidate, category, groupSize)
		item, err := b.alloc.PlaceItem(r.Candidate, category, r.window, weekday, existing, cost)
		if err != nil {
			continue
		}
		if cost <= remaining {
			return item, true
		}
		if cheapest == nil || item.Cost < cheapest.Cost {
			fallback := item
			cheapest = &fallback
		}
	}
	if cheapest != nil {
		return *cheapest, true
	}
	return domain.PlacedItem{}, false
}
