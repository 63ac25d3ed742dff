package planner

import (
	"fmt"
	"sort"

	"github.com/alexanderramin/wayfare/internal/domain"
)

type ModificationKind string

const (
	ModAddActivity     ModificationKind = "add-activity"
	ModRemoveActivity  ModificationKind = "remove-activity"
	ModReplaceActivity ModificationKind = "replace-activity"
	ModChangeLodging   ModificationKind = "change-lodging"
)

// Modification is one requested change to an itinerary. Which fields matter
// depends on the kind: add needs a candidate and window, remove an item
// index, replace both, change-lodging just the candidate.
type Modification struct {
	Kind      ModificationKind   `json:"kind"`
	DayIndex  int                `json:"day_index"`
	ItemIndex int                `json:"item_index,omitempty"`
	Candidate *domain.Candidate  `json:"candidate,omitempty"`
	Window    *domain.TimeWindow `json:"window,omitempty"`
}

// Modify applies one modification and returns the updated itinerary. It
// works on a deep copy: on any error the original is returned untouched by
// the caller's reference and nothing is mutated.
func (p *Planner) Modify(it *domain.TravelItinerary, mod Modification) (*domain.TravelItinerary, error) {
	if it == nil {
		return nil, &InvalidModificationError{Kind: mod.Kind, Day: mod.DayIndex, Message: "no itinerary"}
	}
	if mod.DayIndex < 0 || mod.DayIndex >= len(it.Days) {
		return nil, &InvalidModificationError{Kind: mod.Kind, Day: mod.DayIndex,
			Message: fmt.Sprintf("day index out of range [0, %d)", len(it.Days))}
	}

	out := it.Clone()
	var err error
	switch mod.Kind {
	case ModAddActivity:
		err = p.addActivity(out, mod)
	case ModRemoveActivity:
		err = p.removeItem(out, mod)
	case ModReplaceActivity:
		err = p.replaceItem(out, mod)
	case ModChangeLodging:
		err = p.changeLodging(out, mod)
	default:
		err = &InvalidModificationError{Kind: mod.Kind, Day: mod.DayIndex, Message: "unknown modification kind"}
	}
	if err != nil {
		return nil, err
	}

	out.RecomputeTotals()
	out.UpdatedAt = p.now().UTC()
	return out, nil
}

func (p *Planner) addActivity(it *domain.TravelItinerary, mod Modification) error {
	if mod.Candidate == nil {
		return &InvalidModificationError{Kind: mod.Kind, Day: mod.DayIndex, Message: "candidate required"}
	}
	if mod.Window == nil {
		return &InvalidModificationError{Kind: mod.Kind, Day: mod.DayIndex, Message: "window required"}
	}
	day := &it.Days[mod.DayIndex]
	cost := EstimateCost(*mod.Candidate, domain.CategoryActivity, it.Request.GroupSize)
	item, err := p.alloc.PlaceItem(*mod.Candidate, domain.CategoryActivity, *mod.Window, day.Date.Weekday(), day.Items, cost)
	if err != nil {
		return &InvalidModificationError{Kind: mod.Kind, Day: mod.DayIndex, Message: err.Error()}
	}
	day.Items = append(day.Items, item)
	sortChronological(day.Items)
	return nil
}

func (p *Planner) removeItem(it *domain.TravelItinerary, mod Modification) error {
	day := &it.Days[mod.DayIndex]
	if mod.ItemIndex < 0 || mod.ItemIndex >= len(day.Items) {
		return &InvalidModificationError{Kind: mod.Kind, Day: mod.DayIndex,
			Message: fmt.Sprintf("item index out of range [0, %d)", len(day.Items))}
	}
	if day.Items[mod.ItemIndex].Category == domain.CategoryLodging {
		return &InvalidModificationError{Kind: mod.Kind, Day: mod.DayIndex,
			Message: "lodging entries change through " + string(ModChangeLodging)}
	}
	day.Items = append(day.Items[:mod.ItemIndex], day.Items[mod.ItemIndex+1:]...)
	return nil
}

func (p *Planner) replaceItem(it *domain.TravelItinerary, mod Modification) error {
	if mod.Candidate == nil {
		return &InvalidModificationError{Kind: mod.Kind, Day: mod.DayIndex, Message: "candidate required"}
	}
	day := &it.Days[mod.DayIndex]
	if mod.ItemIndex < 0 || mod.ItemIndex >= len(day.Items) {
		return &InvalidModificationError{Kind: mod.Kind, Day: mod.DayIndex,
			Message: fmt.Sprintf("item index out of range [0, %d)", len(day.Items))}
	}
	old := day.Items[mod.ItemIndex]
	if old.Category == domain.CategoryLodging {
		return &InvalidModificationError{Kind: mod.Kind, Day: mod.DayIndex,
			Message: "lodging entries change through " + string(ModChangeLodging)}
	}

	window := old.Window
	if mod.Window != nil {
		window = *mod.Window
	}
	others := make([]domain.PlacedItem, 0, len(day.Items)-1)
	others = append(others, day.Items[:mod.ItemIndex]...)
	others = append(others, day.Items[mod.ItemIndex+1:]...)

	cost := EstimateCost(*mod.Candidate, old.Category, it.Request.GroupSize)
	item, err := p.alloc.PlaceItem(*mod.Candidate, old.Category, window, day.Date.Weekday(), others, cost)
	if err != nil {
		return &InvalidModificationError{Kind: mod.Kind, Day: mod.DayIndex, Message: err.Error()}
	}
	day.Items[mod.ItemIndex] = item
	sortChronological(day.Items)
	return nil
}

// changeLodging swaps every lodging entry in the trip to the new venue,
// re-pricing the nights. Check-outs stay free.
func (p *Planner) changeLodging(it *domain.TravelItinerary, mod Modification) error {
	if mod.Candidate == nil {
		return &InvalidModificationError{Kind: mod.Kind, Day: mod.DayIndex, Message: "candidate required"}
	}
	if !isLodgingVenue(*mod.Candidate) {
		return &InvalidModificationError{Kind: mod.Kind, Day: mod.DayIndex,
			Message: fmt.Sprintf("%s is not a lodging venue", mod.Candidate.Name)}
	}

	nightly := EstimateCost(*mod.Candidate, domain.CategoryLodging, it.Request.GroupSize)
	changed := false
	for di := range it.Days {
		for ii := range it.Days[di].Items {
			item := &it.Days[di].Items[ii]
			if item.Category != domain.CategoryLodging {
				continue
			}
			item.CandidateID = mod.Candidate.ID
			item.Name = lodgingName(*mod.Candidate, item.Window)
			// The window tells check-outs apart from nights; cost cannot,
			// since a free lodging prices its nights at zero too.
			item.Cost = nightly
			if item.Window == checkOutWindow {
				item.Cost = 0
			}
			changed = true
		}
	}
	if !changed {
		return &InvalidModificationError{Kind: mod.Kind, Day: mod.DayIndex, Message: "itinerary has no lodging entries"}
	}
	return nil
}

func lodgingName(c domain.Candidate, w domain.TimeWindow) string {
	switch w {
	case checkInWindow:
		return c.Name + " (check-in)"
	case checkOutWindow:
		return c.Name + " (check-out)"
	default:
		return c.Name
	}
}

func sortChronological(items []domain.PlacedItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Window.StartMin < items[j].Window.StartMin
	})
}
