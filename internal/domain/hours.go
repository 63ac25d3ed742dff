package domain

import "time"

// HoursSpan is one open/close interval in minutes since midnight.
// Close < Open means the venue closes after midnight the next day.
type HoursSpan struct {
	OpenMin  int `json:"open_min"`
	CloseMin int `json:"close_min"`
}

// Overnight reports whether the span crosses midnight.
func (s HoursSpan) Overnight() bool {
	return s.CloseMin < s.OpenMin
}

// OperatingHours maps weekday to that day's open spans. A missing weekday
// means closed all day.
type OperatingHours map[time.Weekday][]HoursSpan

// CoversWindow reports whether the venue is open for the whole window on the
// given weekday. Overnight spans extend past 1440, and the previous day's
// overnight tail counts toward the early hours of this day.
func (h OperatingHours) CoversWindow(day time.Weekday, w TimeWindow) bool {
	for _, span := range h[day] {
		closeMin := span.CloseMin
		if span.Overnight() {
			closeMin += minutesPerDay
		}
		if w.StartMin >= span.OpenMin && w.EndMin <= closeMin {
			return true
		}
	}

	// Early-morning windows may fall inside the previous day's overnight tail.
	prev := (day + 6) % 7
	for _, span := range h[prev] {
		if !span.Overnight() {
			continue
		}
		if w.StartMin >= 0 && w.EndMin <= span.CloseMin {
			return true
		}
	}
	return false
}

// OpenAllDay is a convenience table for venues without published hours,
// such as parks or self-guided sights.
func OpenAllDay() OperatingHours {
	h := make(OperatingHours, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		h[d] = []HoursSpan{{OpenMin: 0, CloseMin: minutesPerDay}}
	}
	return h
}
