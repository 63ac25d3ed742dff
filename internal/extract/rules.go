package extract

import (
	"regexp"
	"strconv"

	"github.com/alexanderramin/wayfare/internal/domain"
)

func rule(name, pattern string, apply func(*domain.PreferenceProfile, []string)) Rule {
	return Rule{Name: name, pattern: regexp.MustCompile(`(?i)` + pattern), apply: apply}
}

// defaultRules is the shipped rule table. Order matters twice over: dietary
// phrases run before price so "gluten-free" never reads as a price signal,
// and within each scalar field the first rule to fire wins.
func defaultRules() []Rule {
	rules := []Rule{
		// Dietary restrictions.
		rule("dietary-vegetarian", `\bvegetarian\b`, addDietary("vegetarian")),
		rule("dietary-vegan", `\bvegan\b`, addDietary("vegan")),
		rule("dietary-gluten-free", `\bgluten[- ]free\b`, addDietary("gluten-free")),
		rule("dietary-dairy-free", `\bdairy[- ]free\b`, addDietary("dairy-free")),
		rule("dietary-halal", `\bhalal\b`, addDietary("halal")),
		rule("dietary-kosher", `\bkosher\b`, addDietary("kosher")),
		rule("dietary-nut-free", `\bnut (?:allergy|free)\b`, addDietary("nut-free")),

		// Price bands, cheapest phrasing first.
		rule("price-free", `\b(?:for free|free entry|free of charge|no charge)\b`, setPrice(domain.PriceFree)),
		rule("price-budget", `\b(?:cheap|budget|inexpensive|affordable|hole[- ]in[- ]the[- ]wall)\b`, setPrice(domain.PriceBudget)),
		rule("price-moderate", `\b(?:mid[- ]range|moderate(?:ly priced)?|reasonabl[ey] priced)\b`, setPrice(domain.PriceModerate)),
		rule("price-upscale", `\b(?:upscale|fancy|high[- ]end|fine dining)\b`, setPrice(domain.PriceUpscale)),
		rule("price-luxury", `\b(?:luxur(?:y|ious)|splurge|michelin|five[- ]star)\b`, setPrice(domain.PriceLuxury)),

		// Cuisines.
		rule("cuisine-italian", `\b(?:italian|pasta|trattoria)\b`, addCuisine("italian")),
		rule("cuisine-french", `\b(?:french|bistro)\b`, addCuisine("french")),
		rule("cuisine-japanese", `\b(?:japanese|sushi|ramen|izakaya)\b`, addCuisine("japanese")),
		rule("cuisine-chinese", `\b(?:chinese|dim sum)\b`, addCuisine("chinese")),
		rule("cuisine-mexican", `\b(?:mexican|tacos?)\b`, addCuisine("mexican")),
		rule("cuisine-thai", `\bthai\b`, addCuisine("thai")),
		rule("cuisine-indian", `\b(?:indian|curry)\b`, addCuisine("indian")),
		rule("cuisine-greek", `\bgreek\b`, addCuisine("greek")),
		rule("cuisine-portuguese", `\bportuguese\b`, addCuisine("portuguese")),
		rule("cuisine-spanish", `\b(?:spanish|tapas)\b`, addCuisine("spanish")),
		rule("cuisine-korean", `\bkorean\b`, addCuisine("korean")),
		rule("cuisine-seafood", `\b(?:seafood|oysters?|fish market)\b`, addCuisine("seafood")),
		rule("cuisine-bbq", `\b(?:bbq|barbecue|steakhouse)\b`, addCuisine("bbq")),
		rule("cuisine-pizza", `\bpizza\b`, addCuisine("pizza")),

		// Atmosphere, first mention wins.
		rule("atmosphere-romantic", `\b(?:romantic|date night|candlelit)\b`, setAtmosphere("romantic")),
		rule("atmosphere-casual", `\b(?:casual|laid[- ]back|low[- ]key)\b`, setAtmosphere("casual")),
		rule("atmosphere-quiet", `\b(?:quiet|cozy|intimate)\b`, setAtmosphere("quiet")),
		rule("atmosphere-lively", `\b(?:lively|buzzing|vibrant|bustling)\b`, setAtmosphere("lively")),
		rule("atmosphere-family", `\b(?:family[- ]friendly|with (?:the )?kids)\b`, setAtmosphere("family-friendly")),

		// Party size.
		rule("party-of", `\bparty of (\d{1,2})\b`, setPartySize),
		rule("party-for-n", `\bfor (\d{1,2}) (?:people|persons|guests|adults)\b`, setPartySize),
		rule("party-n-of-us", `\b(\d{1,2}) of us\b`, setPartySize),

		// Travel style.
		rule("style-relaxed", `\b(?:relaxed|slow pace|take it easy|unhurried)\b`, setStyle(domain.StyleRelaxed)),
		rule("style-packed", `\b(?:packed schedule|jam[- ]packed|as much as possible|see everything)\b`, setStyle(domain.StylePacked)),
		rule("style-adventure", `\b(?:adventurous?|adrenaline|off the beaten path)\b`, setStyle(domain.StyleAdventure)),
		rule("style-cultural", `\b(?:cultural|history buff|heritage)\b`, setStyle(domain.StyleCultural)),
		rule("style-gastronomy", `\b(?:foodies?|food tour|gastronom(?:y|ic)|culinary)\b`, setStyle(domain.StyleGastronomy)),

		// Interests.
		rule("interest-museum", `\bmuseums?\b`, addInterest("museum")),
		rule("interest-art", `\b(?:art|galler(?:y|ies))\b`, addInterest("art")),
		rule("interest-park", `\b(?:parks?|gardens?)\b`, addInterest("park")),
		rule("interest-beach", `\bbeach(?:es)?\b`, addInterest("beach")),
		rule("interest-hiking", `\b(?:hik(?:e|ing)|trails?)\b`, addInterest("hiking")),
		rule("interest-nightlife", `\b(?:nightlife|bars?|clubs?)\b`, addInterest("nightlife")),
		rule("interest-shopping", `\bshopping\b`, addInterest("shopping")),
		rule("interest-architecture", `\barchitecture\b`, addInterest("architecture")),
		rule("interest-music", `\b(?:live music|concerts?)\b`, addInterest("music")),
		rule("interest-market", `\bmarkets?\b`, addInterest("market")),
	}
	return rules
}

func setPrice(band domain.PriceBand) func(*domain.PreferenceProfile, []string) {
	return func(p *domain.PreferenceProfile, _ []string) {
		if p.Price == "" {
			p.Price = band
		}
	}
}

func setAtmosphere(a string) func(*domain.PreferenceProfile, []string) {
	return func(p *domain.PreferenceProfile, _ []string) {
		if p.Atmosphere == "" {
			p.Atmosphere = a
		}
	}
}

func setStyle(s domain.TravelStyle) func(*domain.PreferenceProfile, []string) {
	return func(p *domain.PreferenceProfile, _ []string) {
		if p.Style == "" {
			p.Style = s
		}
	}
}

func setPartySize(p *domain.PreferenceProfile, match []string) {
	if p.PartySize > 0 {
		return
	}
	n, err := strconv.Atoi(match[1])
	if err != nil || n < 1 || n > 20 {
		return
	}
	p.PartySize = n
}

func addCuisine(tag string) func(*domain.PreferenceProfile, []string) {
	return func(p *domain.PreferenceProfile, _ []string) {
		p.Cuisines = appendTag(p.Cuisines, tag)
	}
}

func addInterest(tag string) func(*domain.PreferenceProfile, []string) {
	return func(p *domain.PreferenceProfile, _ []string) {
		p.Interests = appendTag(p.Interests, tag)
	}
}

func addDietary(tag string) func(*domain.PreferenceProfile, []string) {
	return func(p *domain.PreferenceProfile, _ []string) {
		p.Dietary = appendTag(p.Dietary, tag)
	}
}

func appendTag(list []string, tag string) []string {
	for _, t := range list {
		if t == tag {
			return list
		}
	}
	return append(list, tag)
}
