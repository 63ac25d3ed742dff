package decision

import (
	"math"
	"sort"

	"github.com/alexanderramin/wayfare/internal/config"
	"github.com/alexanderramin/wayfare/internal/domain"
)

// Weights are the fixed per-factor weights. They always sum to 1.0.
type Weights struct {
	Rating       float64 `json:"rating"`
	PriceMatch   float64 `json:"price_match"`
	Distance     float64 `json:"distance"`
	CuisineMatch float64 `json:"cuisine_match"`
	Popularity   float64 `json:"popularity"`
}

func DefaultWeights() Weights {
	return Weights{
		Rating:       0.30,
		PriceMatch:   0.25,
		Distance:     0.20,
		CuisineMatch: 0.15,
		Popularity:   0.10,
	}
}

// ScoreBreakdown holds the five factor scores for one (candidate, profile)
// pair, each in [0,1], plus the weighted total.
type ScoreBreakdown struct {
	Rating       float64 `json:"rating"`
	PriceMatch   float64 `json:"price_match"`
	Distance     float64 `json:"distance"`
	CuisineMatch float64 `json:"cuisine_match"`
	Popularity   float64 `json:"popularity"`
	Weights      Weights `json:"weights"`
	Total        float64 `json:"total"`
}

// Scorer computes score breakdowns. It holds tuning values only, no mutable
// state, so a single instance is safe for concurrent use.
type Scorer struct {
	weights           Weights
	distanceCutoff    float64
	popularityCeiling int
}

// NewScorer builds a Scorer from the scoring tuning section.
func NewScorer(cfg config.Scoring) *Scorer {
	return &Scorer{
		weights: Weights{
			Rating:       cfg.RatingWeight,
			PriceMatch:   cfg.PriceWeight,
			Distance:     cfg.DistanceWeight,
			CuisineMatch: cfg.CuisineWeight,
			Popularity:   cfg.PopularityWeight,
		},
		distanceCutoff:    cfg.DistanceCutoffMiles,
		popularityCeiling: cfg.PopularityCeiling,
	}
}

// Score is pure and deterministic: no I/O, no clock. A nil location makes
// the distance factor neutral.
func (s *Scorer) Score(c domain.Candidate, profile domain.PreferenceProfile, loc *domain.Coordinates) ScoreBreakdown {
	b := ScoreBreakdown{
		Rating:       c.Rating / 5.0,
		PriceMatch:   s.priceMatchFactor(c.Price, profile.Price),
		Distance:     s.distanceFactor(c.Coord, loc),
		CuisineMatch: cuisineMatchFactor(c, profile.DesiredTags()),
		Popularity:   math.Min(1.0, float64(c.ReviewCount)/float64(s.popularityCeiling)),
		Weights:      s.weights,
	}
	b.Total = b.Rating*s.weights.Rating +
		b.PriceMatch*s.weights.PriceMatch +
		b.Distance*s.weights.Distance +
		b.CuisineMatch*s.weights.CuisineMatch +
		b.Popularity*s.weights.Popularity
	return b
}

// priceMatchFactor: exact band 1.0, adjacent band 0.5, otherwise 0.
// No stated preference is neutral. Free and n/a sit outside the ordinal
// scale, so they only ever match exactly.
func (s *Scorer) priceMatchFactor(candidate, desired domain.PriceBand) float64 {
	if desired == "" {
		return 0.5
	}
	if candidate == desired {
		return 1.0
	}
	co, do := candidate.Ordinal(), desired.Ordinal()
	if co > 0 && do > 0 && abs(co-do) == 1 {
		return 0.5
	}
	return 0.0
}

// distanceFactor decays linearly to zero at the cutoff. Unknown user
// location is neutral.
func (s *Scorer) distanceFactor(venue domain.Coordinates, loc *domain.Coordinates) float64 {
	if loc == nil {
		return 0.5
	}
	miles := domain.DistanceMiles(venue, *loc)
	return math.Max(0, 1-miles/s.distanceCutoff)
}

// cuisineMatchFactor is the fraction of desired tags the candidate carries.
// With no desired tags there is nothing to violate, so the factor is 1.
func cuisineMatchFactor(c domain.Candidate, desired []string) float64 {
	if len(desired) == 0 {
		return 1.0
	}
	matched := 0
	for _, tag := range desired {
		if c.HasCategory(tag) {
			matched++
		}
	}
	return float64(matched) / float64(len(desired))
}

// Ranked pairs a candidate with its breakdown for ordering.
type Ranked struct {
	Candidate domain.Candidate
	Breakdown ScoreBreakdown
}

// scoreEpsilon is the tolerance within which two weighted totals count as
// tied and fall through to the deterministic tie-break keys.
const scoreEpsilon = 1e-6

// SortRanked orders candidates by the canonical deterministic rules:
//  1. Weighted total: higher first (beyond epsilon)
//  2. Review count: higher first
//  3. Name: lexical ascending
func SortRanked(ranked []Ranked) {
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if math.Abs(a.Breakdown.Total-b.Breakdown.Total) > scoreEpsilon {
			return a.Breakdown.Total > b.Breakdown.Total
		}
		if a.Candidate.ReviewCount != b.Candidate.ReviewCount {
			return a.Candidate.ReviewCount > b.Candidate.ReviewCount
		}
		return a.Candidate.Name < b.Candidate.Name
	})
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
