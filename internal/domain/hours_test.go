package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCoversWindow_SameDay(t *testing.T) {
	h := OperatingHours{
		time.Monday: {{OpenMin: 9 * 60, CloseMin: 17 * 60}},
	}

	assert.True(t, h.CoversWindow(time.Monday, TimeWindow{StartMin: 10 * 60, EndMin: 12 * 60}))
	assert.True(t, h.CoversWindow(time.Monday, TimeWindow{StartMin: 9 * 60, EndMin: 17 * 60}))
	assert.False(t, h.CoversWindow(time.Monday, TimeWindow{StartMin: 8 * 60, EndMin: 10 * 60}), "starts before open")
	assert.False(t, h.CoversWindow(time.Monday, TimeWindow{StartMin: 16 * 60, EndMin: 18 * 60}), "ends after close")
	assert.False(t, h.CoversWindow(time.Tuesday, TimeWindow{StartMin: 10 * 60, EndMin: 12 * 60}), "closed all day")
}

func TestCoversWindow_Overnight(t *testing.T) {
	// Bar open Friday 18:00 until 02:00 Saturday.
	h := OperatingHours{
		time.Friday: {{OpenMin: 18 * 60, CloseMin: 2 * 60}},
	}

	assert.True(t, h.CoversWindow(time.Friday, TimeWindow{StartMin: 20 * 60, EndMin: 23 * 60}))
	assert.True(t, h.CoversWindow(time.Friday, TimeWindow{StartMin: 23 * 60, EndMin: 25 * 60}), "window running past midnight")
	assert.True(t, h.CoversWindow(time.Saturday, TimeWindow{StartMin: 0, EndMin: 90}), "previous day's overnight tail")
	assert.False(t, h.CoversWindow(time.Saturday, TimeWindow{StartMin: 90, EndMin: 3 * 60}), "past the overnight close")
	assert.False(t, h.CoversWindow(time.Friday, TimeWindow{StartMin: 12 * 60, EndMin: 14 * 60}), "before open")
}

func TestCoversWindow_MultipleSpans(t *testing.T) {
	// Split lunch/dinner service.
	h := OperatingHours{
		time.Wednesday: {
			{OpenMin: 11*60 + 30, CloseMin: 14 * 60},
			{OpenMin: 18 * 60, CloseMin: 22 * 60},
		},
	}

	assert.True(t, h.CoversWindow(time.Wednesday, TimeWindow{StartMin: 12 * 60, EndMin: 13 * 60}))
	assert.True(t, h.CoversWindow(time.Wednesday, TimeWindow{StartMin: 19 * 60, EndMin: 21 * 60}))
	assert.False(t, h.CoversWindow(time.Wednesday, TimeWindow{StartMin: 15 * 60, EndMin: 16 * 60}), "between services")
}

func TestOpenAllDay(t *testing.T) {
	h := OpenAllDay()
	for d := time.Sunday; d <= time.Saturday; d++ {
		assert.True(t, h.CoversWindow(d, TimeWindow{StartMin: 0, EndMin: 1440}))
	}
}

func TestTimeWindowOverlaps(t *testing.T) {
	a := TimeWindow{StartMin: 600, EndMin: 720}

	assert.True(t, a.Overlaps(TimeWindow{StartMin: 660, EndMin: 780}))
	assert.True(t, a.Overlaps(TimeWindow{StartMin: 540, EndMin: 601}))
	assert.False(t, a.Overlaps(TimeWindow{StartMin: 720, EndMin: 780}), "half-open: touching windows do not overlap")
	assert.False(t, a.Overlaps(TimeWindow{StartMin: 480, EndMin: 600}))
}

func TestClockTime(t *testing.T) {
	assert.Equal(t, "07:00", ClockTime(420))
	assert.Equal(t, "00:30", ClockTime(1470), "wraps past midnight")
}
