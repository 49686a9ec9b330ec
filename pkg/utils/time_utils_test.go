package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testCalendar() TripCalendar {
	loc := time.FixedZone("SAST", 2*3600)
	start := time.Date(2026, 2, 27, 0, 0, 0, 0, loc)
	end := time.Date(2026, 3, 7, 0, 0, 0, 0, loc)
	return NewTripCalendar(start, end, loc)
}

func TestTripCalendar_TotalDays(t *testing.T) {
	assert.Equal(t, 9, testCalendar().TotalDays())
}

func TestTripCalendar_Status(t *testing.T) {
	cal := testCalendar()
	loc := time.FixedZone("SAST", 2*3600)

	tests := []struct {
		name string
		now  time.Time
		want TripStatus
	}{
		{"well before", time.Date(2026, 2, 17, 9, 0, 0, 0, loc), TripStatus{Status: TripPhasePre, DaysUntil: 10}},
		{"eve of departure", time.Date(2026, 2, 26, 23, 59, 0, 0, loc), TripStatus{Status: TripPhasePre, DaysUntil: 1}},
		{"first day", time.Date(2026, 2, 27, 0, 0, 0, 0, loc), TripStatus{Status: TripPhaseDuring, CurrentDay: 1}},
		{"crosses month end", time.Date(2026, 3, 1, 12, 0, 0, 0, loc), TripStatus{Status: TripPhaseDuring, CurrentDay: 3}},
		{"last day late", time.Date(2026, 3, 7, 23, 59, 59, 0, loc), TripStatus{Status: TripPhaseDuring, CurrentDay: 9}},
		{"after", time.Date(2026, 3, 8, 0, 0, 1, 0, loc), TripStatus{Status: TripPhasePost}},
		// 23:30 UTC on the 26th is already the 27th in the trip timezone
		{"other zone", time.Date(2026, 2, 26, 23, 30, 0, 0, time.UTC), TripStatus{Status: TripPhaseDuring, CurrentDay: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cal.Status(tt.now))
		})
	}
}

func TestTripCalendar_ScheduleDay(t *testing.T) {
	cal := testCalendar()
	loc := time.FixedZone("SAST", 2*3600)

	assert.Equal(t, 1, cal.ScheduleDay(time.Date(2026, 1, 1, 0, 0, 0, 0, loc)))
	assert.Equal(t, 4, cal.ScheduleDay(time.Date(2026, 3, 2, 8, 0, 0, 0, loc)))
	assert.Equal(t, 0, cal.ScheduleDay(time.Date(2026, 4, 1, 0, 0, 0, 0, loc)))
}

func TestTripCalendar_ValidDayAndDateOf(t *testing.T) {
	cal := testCalendar()

	assert.False(t, cal.ValidDay(0))
	assert.True(t, cal.ValidDay(1))
	assert.True(t, cal.ValidDay(9))
	assert.False(t, cal.ValidDay(10))

	d := cal.DateOf(3)
	assert.Equal(t, time.March, d.Month())
	assert.Equal(t, 1, d.Day())
}
