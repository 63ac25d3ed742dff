package decision

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/wayfare/internal/domain"
)

// strongFactorFloor is the factor score a contribution must exceed to be
// worth mentioning.
const strongFactorFloor = 0.7

// maxReasonFactors caps how many factors the justification cites.
const maxReasonFactors = 3

// BuildReasoning assembles the human-readable justification from the top
// contributing factors, using fixed phrase templates so the output is
// deterministic and testable. Factors are considered in weight order.
func BuildReasoning(c domain.Candidate, b ScoreBreakdown, loc *domain.Coordinates) string {
	type phrased struct {
		score  float64
		phrase string
	}

	// Weight order: rating, price, distance, cuisine, popularity.
	candidates := []phrased{
		{b.Rating, fmt.Sprintf("it's highly rated at %.1f stars", c.Rating)},
		{b.PriceMatch, "the price fits what you're looking for"},
		{b.Distance, distancePhrase(c, loc)},
		{b.CuisineMatch, "it matches what you're in the mood for"},
		{b.Popularity, fmt.Sprintf("it's a local favorite with %d reviews", c.ReviewCount)},
	}

	var phrases []string
	for _, p := range candidates {
		if len(phrases) >= maxReasonFactors {
			break
		}
		if p.score > strongFactorFloor && p.phrase != "" {
			phrases = append(phrases, p.phrase)
		}
	}

	if len(phrases) == 0 {
		return fmt.Sprintf("%s is the strongest overall match for your preferences.", c.Name)
	}
	return fmt.Sprintf("%s stands out: %s.", c.Name, strings.Join(phrases, ", and "))
}

// distancePhrase needs the actual mileage, which the breakdown does not
// carry; skip the phrase when the user location is unknown.
func distancePhrase(c domain.Candidate, loc *domain.Coordinates) string {
	if loc == nil {
		return ""
	}
	return fmt.Sprintf("it's only %.1f miles away", domain.DistanceMiles(c.Coord, *loc))
}
