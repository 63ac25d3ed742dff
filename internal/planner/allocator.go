package planner

import (
	"time"

	"github.com/alexanderramin/wayfare/internal/config"
	"github.com/alexanderramin/wayfare/internal/domain"
)

// FallbackPolicy controls how the allocator searches for an alternative
// window when the desired one is blocked.
type FallbackPolicy struct {
	StepMin int
	Tries   int
}

// DefaultFallbackPolicy matches the shipped tuning: 30-minute steps, three
// alternatives.
func DefaultFallbackPolicy() FallbackPolicy {
	return FallbackPolicy{StepMin: 30, Tries: 3}
}

// AlternativeWindows returns the fallback windows tried after the desired
// one, in order: later by one step, earlier by one step, later by two.
// Windows that would start before midnight's floor are skipped.
func (p FallbackPolicy) AlternativeWindows(desired domain.TimeWindow) []domain.TimeWindow {
	offsets := []int{p.StepMin, -p.StepMin, 2 * p.StepMin}
	out := make([]domain.TimeWindow, 0, p.Tries)
	for _, off := range offsets {
		if len(out) >= p.Tries {
			break
		}
		w := desired.Shift(off)
		if w.StartMin < 0 {
			continue
		}
		out = append(out, w)
	}
	return out
}

// Allocator places candidates into a day's schedule. Placement succeeds only
// when the venue is open for the whole window and the window does not overlap
// anything already scheduled; otherwise the fallback policy is walked in
// order before giving up.
type Allocator struct {
	policy FallbackPolicy
}

func NewAllocator(cfg config.Slots) *Allocator {
	p := FallbackPolicy{StepMin: cfg.FallbackStepMin, Tries: cfg.FallbackTries}
	if p.StepMin <= 0 {
		p = DefaultFallbackPolicy()
	}
	return &Allocator{policy: p}
}

func (a *Allocator) Policy() FallbackPolicy {
	return a.policy
}

// PlaceItem pins a candidate to the desired window, or the first viable
// fallback window, against the items already on the day. It returns a
// *SlotUnavailableError when nothing fits.
func (a *Allocator) PlaceItem(
	c domain.Candidate,
	category domain.ItemCategory,
	desired domain.TimeWindow,
	weekday time.Weekday,
	existing []domain.PlacedItem,
	cost float64,
) (domain.PlacedItem, error) {
	if err := desired.Validate(); err != nil {
		return domain.PlacedItem{}, &SlotUnavailableError{
			CandidateID: c.ID, Name: c.Name, Requested: desired,
			Reason: err.Error(),
		}
	}

	tried := a.policy.AlternativeWindows(desired)
	for _, w := range append([]domain.TimeWindow{desired}, tried...) {
		if !a.fits(c, w, weekday, existing) {
			continue
		}
		return domain.PlacedItem{
			CandidateID: c.ID,
			Name:        c.Name,
			Category:    category,
			Window:      w,
			Cost:        cost,
		}, nil
	}

	return domain.PlacedItem{}, &SlotUnavailableError{
		CandidateID: c.ID, Name: c.Name, Requested: desired, Tried: tried,
		Reason: a.blockReason(c, desired, weekday, existing),
	}
}

// fits checks the two placement rules: venue open for the whole window, and
// no overlap with anything already scheduled. Candidates without published
// hours are treated as always open.
func (a *Allocator) fits(c domain.Candidate, w domain.TimeWindow, weekday time.Weekday, existing []domain.PlacedItem) bool {
	if w.Validate() != nil {
		return false
	}
	if len(c.Hours) > 0 && !c.Hours.CoversWindow(weekday, w) {
		return false
	}
	for _, item := range existing {
		if item.Window.Overlaps(w) {
			return false
		}
	}
	return true
}

// blockReason explains why the desired window itself failed, for the error
// message. The closed check runs first since it is the more common cause.
func (a *Allocator) blockReason(c domain.Candidate, w domain.TimeWindow, weekday time.Weekday, existing []domain.PlacedItem) string {
	if len(c.Hours) > 0 && !c.Hours.CoversWindow(weekday, w) {
		return "venue closed during the requested window"
	}
	for _, item := range existing {
		if item.Window.Overlaps(w) {
			return "window conflicts with " + item.Name
		}
	}
	return "no viable window"
}
