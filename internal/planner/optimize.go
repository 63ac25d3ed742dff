package planner

import (
	"fmt"
	"math"

	"github.com/alexanderramin/wayfare/internal/domain"
)

// outlierRatio flags a day whose cost or activity load exceeds this multiple
// of the trip's mean.
const outlierRatio = 1.5

// Optimize scores how evenly the plan spreads cost and activity across its
// days and points at the outliers. It is read-only: rebalancing happens
// through explicit modifications, never behind the caller's back.
func (p *Planner) Optimize(it *domain.TravelItinerary) domain.OptimizationResult {
	if it == nil || len(it.Days) == 0 {
		return domain.OptimizationResult{BalanceScore: 1}
	}

	costs := make([]float64, len(it.Days))
	counts := make([]float64, len(it.Days))
	for i, d := range it.Days {
		costs[i] = d.Cost
		counts[i] = float64(d.ActivityCount())
	}

	spread := (variation(costs) + variation(counts)) / 2
	score := 1 - math.Min(1, spread)

	result := domain.OptimizationResult{BalanceScore: score}
	meanCost := mean(costs)
	meanCount := mean(counts)
	for i, d := range it.Days {
		if meanCost > 0 && d.Cost > outlierRatio*meanCost {
			result.Suggestions = append(result.Suggestions, domain.OptimizationSuggestion{
				DayIndex: i,
				Rationale: fmt.Sprintf("day %d carries %.0f%% of the average daily cost; consider moving a pricier stop to a lighter day",
					i+1, 100*d.Cost/meanCost),
			})
		}
		if meanCount > 0 && counts[i] > outlierRatio*meanCount {
			result.Suggestions = append(result.Suggestions, domain.OptimizationSuggestion{
				DayIndex:  i,
				Rationale: fmt.Sprintf("day %d packs %d activities against a trip average of %.1f", i+1, int(counts[i]), meanCount),
			})
		}
	}
	return result
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// variation is the coefficient of variation, zero when the mean is zero so
// an all-free trip counts as perfectly balanced.
func variation(xs []float64) float64 {
	m := mean(xs)
	if m == 0 {
		return 0
	}
	ss := 0.0
	for _, x := range xs {
		ss += (x - m) * (x - m)
	}
	return math.Sqrt(ss/float64(len(xs))) / m
}
