package planner

import "github.com/alexanderramin/wayfare/internal/domain"

// Per-person estimates by price band. Bands outside the ordinal scale get a
// conservative mid-budget guess so unknown venues neither dominate nor
// vanish from budget math.
var mealPerPerson = map[domain.PriceBand]float64{
	domain.PriceFree:     0,
	domain.PriceBudget:   15,
	domain.PriceModerate: 30,
	domain.PriceUpscale:  60,
	domain.PriceLuxury:   100,
	domain.PriceUnknown:  25,
}

var activityPerPerson = map[domain.PriceBand]float64{
	domain.PriceFree:     0,
	domain.PriceBudget:   10,
	domain.PriceModerate: 25,
	domain.PriceUpscale:  50,
	domain.PriceLuxury:   90,
	domain.PriceUnknown:  20,
}

// Nightly room rates by band. Lodging is priced per room, two guests to a
// room.
var lodgingPerRoomNight = map[domain.PriceBand]float64{
	domain.PriceFree:     0,
	domain.PriceBudget:   80,
	domain.PriceModerate: 150,
	domain.PriceUpscale:  280,
	domain.PriceLuxury:   500,
	domain.PriceUnknown:  120,
}

// EstimateCost returns the estimated group cost for placing the candidate in
// the given category.
func EstimateCost(c domain.Candidate, category domain.ItemCategory, groupSize int) float64 {
	if groupSize < 1 {
		groupSize = 1
	}
	band := c.Price
	if band == "" {
		band = domain.PriceUnknown
	}
	switch category {
	case domain.CategoryMeal:
		return mealPerPerson[band] * float64(groupSize)
	case domain.CategoryLodging:
		rooms := (groupSize + 1) / 2
		return lodgingPerRoomNight[band] * float64(rooms)
	case domain.CategoryTransport:
		return 0
	default:
		return activityPerPerson[band] * float64(groupSize)
	}
}
