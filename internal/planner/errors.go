package planner

import (
	"fmt"

	"github.com/alexanderramin/wayfare/internal/domain"
)

// SlotUnavailableError means a placement failed after all fallback windows
// were tried. Recoverable: the caller can try a different time, day, or
// candidate.
type SlotUnavailableError struct {
	CandidateID string
	Name        string
	Requested   domain.TimeWindow
	Tried       []domain.TimeWindow
	Reason      string
}

func (e *SlotUnavailableError) Error() string {
	return fmt.Sprintf("no slot for %s around %s: %s (tried %d alternatives)",
		e.Name, e.Requested, e.Reason, len(e.Tried))
}

// InvalidRequestError means the trip request failed validation. Fatal: the
// caller must correct the input before retrying.
type InvalidRequestError struct {
	Field   string
	Message string
}

func (e *InvalidRequestError) Error() string {
	return fmt.Sprintf("invalid request: %s: %s", e.Field, e.Message)
}

// InvalidModificationError means a modification was malformed or failed the
// allocator's overlap/hours checks. The original itinerary is untouched.
type InvalidModificationError struct {
	Kind    ModificationKind
	Day     int
	Message string
}

func (e *InvalidModificationError) Error() string {
	return fmt.Sprintf("invalid %s modification (day %d): %s", e.Kind, e.Day, e.Message)
}

// budgetWarning formats the non-fatal over-budget flag recorded on the
// itinerary when a day could not stay within its slice.
func budgetWarning(dayIndex int, cost, slice float64) string {
	return fmt.Sprintf("day %d runs %.2f against a %.2f budget slice", dayIndex+1, cost, slice)
}
