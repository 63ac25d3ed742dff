package domain

type PriceBand string

const (
	PriceFree     PriceBand = "free"
	PriceBudget   PriceBand = "$"
	PriceModerate PriceBand = "$$"
	PriceUpscale  PriceBand = "$$$"
	PriceLuxury   PriceBand = "$$$$"
	PriceUnknown  PriceBand = "n/a"
)

// priceOrdinals maps the four paid bands onto an ordinal scale.
// Free and n/a sit outside the scale and never count as adjacent.
var priceOrdinals = map[PriceBand]int{
	PriceBudget:   1,
	PriceModerate: 2,
	PriceUpscale:  3,
	PriceLuxury:   4,
}

// Ordinal returns the band's position on the price scale, or 0 if the
// band is free, unknown, or unset.
func (p PriceBand) Ordinal() int {
	return priceOrdinals[p]
}

// ValidPriceBands is the canonical set of accepted price band strings.
var ValidPriceBands = map[string]bool{
	"free": true, "$": true, "$$": true, "$$$": true, "$$$$": true, "n/a": true,
}

type ItemCategory string

const (
	CategoryMeal      ItemCategory = "meal"
	CategoryActivity  ItemCategory = "activity"
	CategoryLodging   ItemCategory = "lodging"
	CategoryTransport ItemCategory = "transport"
)

type MealSlot string

const (
	MealBreakfast MealSlot = "breakfast"
	MealLunch     MealSlot = "lunch"
	MealDinner    MealSlot = "dinner"
)

type TransactionType string

const (
	TransactionReservation TransactionType = "reservation"
	TransactionDelivery    TransactionType = "delivery"
	TransactionPickup      TransactionType = "pickup"
)

type TravelStyle string

const (
	StyleRelaxed    TravelStyle = "relaxed"
	StyleBalanced   TravelStyle = "balanced"
	StylePacked     TravelStyle = "packed"
	StyleAdventure  TravelStyle = "adventure"
	StyleCultural   TravelStyle = "cultural"
	StyleGastronomy TravelStyle = "gastronomy"
)

type ConversationStage string

const (
	StageExploring  ConversationStage = "exploring"
	StageNarrowing  ConversationStage = "narrowing"
	StageConfirming ConversationStage = "confirming"
)

// ProfileField names a preference field that conversation context can mark
// as stale, so the scorer treats it as unset without mutating the profile.
type ProfileField string

const (
	FieldCuisine    ProfileField = "cuisine"
	FieldPrice      ProfileField = "price"
	FieldAtmosphere ProfileField = "atmosphere"
)
