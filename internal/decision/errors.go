package decision

import (
	"fmt"

	"github.com/alexanderramin/wayfare/internal/domain"
)

// NoCandidatesError means the candidate list was empty. Always fatal to the
// call; there is nothing to relax.
type NoCandidatesError struct{}

func (e *NoCandidatesError) Error() string {
	return "no candidates to choose from"
}

// NoSuitableOptionsError means candidates exist but none cleared the
// viability floor. It carries the best-available candidate so the caller
// can offer it with a caveat or invite the user to relax their filters.
type NoSuitableOptionsError struct {
	Best      domain.Candidate
	Breakdown ScoreBreakdown
	Floor     float64
}

func (e *NoSuitableOptionsError) Error() string {
	return fmt.Sprintf("no candidate scored above the %.2f viability floor (best: %s at %.2f)",
		e.Floor, e.Best.Name, e.Breakdown.Total)
}
