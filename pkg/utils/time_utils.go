package utils

import "time"

const (
	TripPhasePre    = "pre-trip"
	TripPhaseDuring = "during-trip"
	TripPhasePost   = "post-trip"
)

func NowUnixMillis() int64 { return time.Now().UnixMilli() }

// TripStatus is where "now" falls relative to the trip. DaysUntil is set only
// before the trip, CurrentDay only during it.
type TripStatus struct {
	Status     string `json:"status"`
	DaysUntil  int    `json:"daysUntil,omitempty"`
	CurrentDay int    `json:"currentDay,omitempty"`
}

// TripCalendar maps wall-clock time onto 1-indexed trip days. Start and end
// are calendar dates; both are inclusive.
type TripCalendar struct {
	start time.Time
	end   time.Time
	loc   *time.Location
}

func NewTripCalendar(start, end time.Time, loc *time.Location) TripCalendar {
	if loc == nil {
		loc = time.UTC
	}
	return TripCalendar{start: midnight(start, loc), end: midnight(end, loc), loc: loc}
}

func midnight(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// calendar days between two midnights, immune to DST shifts
func daysBetween(a, b time.Time) int {
	ua := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	ub := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua).Hours() / 24)
}

// TotalDays is the number of trip days, start and end included.
func (c TripCalendar) TotalDays() int {
	return daysBetween(c.start, c.end) + 1
}

func (c TripCalendar) ValidDay(day int) bool {
	return day >= 1 && day <= c.TotalDays()
}

// DateOf returns the calendar date of a trip day.
func (c TripCalendar) DateOf(day int) time.Time {
	return c.start.AddDate(0, 0, day-1)
}

// Day returns the trip day for now, or 0 outside the trip.
func (c TripCalendar) Day(now time.Time) int {
	today := midnight(now, c.loc)
	if today.Before(c.start) || today.After(c.end) {
		return 0
	}
	return daysBetween(c.start, today) + 1
}

func (c TripCalendar) Status(now time.Time) TripStatus {
	if day := c.Day(now); day > 0 {
		return TripStatus{Status: TripPhaseDuring, CurrentDay: day}
	}
	today := midnight(now, c.loc)
	if today.After(c.end) {
		return TripStatus{Status: TripPhasePost}
	}
	return TripStatus{Status: TripPhasePre, DaysUntil: daysBetween(today, c.start)}
}

// ScheduleDay is the day a "today" widget should show: the current day during
// the trip, day 1 as a preview before it, and 0 once it is over.
func (c TripCalendar) ScheduleDay(now time.Time) int {
	s := c.Status(now)
	switch s.Status {
	case TripPhaseDuring:
		return s.CurrentDay
	case TripPhasePre:
		return 1
	default:
		return 0
	}
}
