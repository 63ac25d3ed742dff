package domain

import "fmt"

const minutesPerDay = 24 * 60

// TimeWindow is a half-open [Start, End) interval in minutes since midnight.
// End may exceed 1440 for windows that run past midnight.
type TimeWindow struct {
	StartMin int `json:"start_min"`
	EndMin   int `json:"end_min"`
}

func (w TimeWindow) Duration() int {
	return w.EndMin - w.StartMin
}

// Overlaps reports whether two half-open windows intersect.
func (w TimeWindow) Overlaps(other TimeWindow) bool {
	return w.StartMin < other.EndMin && other.StartMin < w.EndMin
}

// Shift returns the window moved by delta minutes.
func (w TimeWindow) Shift(delta int) TimeWindow {
	return TimeWindow{StartMin: w.StartMin + delta, EndMin: w.EndMin + delta}
}

// Validate checks ordering and bounds. Windows may end past midnight but
// must start within the day.
func (w TimeWindow) Validate() error {
	if w.StartMin < 0 || w.StartMin >= minutesPerDay {
		return fmt.Errorf("window start %d outside [0, 1440)", w.StartMin)
	}
	if w.EndMin <= w.StartMin {
		return fmt.Errorf("window end %d not after start %d", w.EndMin, w.StartMin)
	}
	return nil
}

// String formats the window as "HH:MM-HH:MM".
func (w TimeWindow) String() string {
	return fmt.Sprintf("%s-%s", ClockTime(w.StartMin), ClockTime(w.EndMin))
}

// ClockTime formats minutes-since-midnight as "HH:MM", wrapping past midnight.
func ClockTime(min int) string {
	min = ((min % minutesPerDay) + minutesPerDay) % minutesPerDay
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}
