package appointment

import "time"

// WorkingCalendar is the shop's open calendar: every weekday except
// ClosedDays, hours in [StartHour, EndHour) of local wall-clock time.
type WorkingCalendar struct {
	ClosedDays []time.Weekday
	StartHour  int
	EndHour    int
	Location   *time.Location
}

// DefaultCalendar closes on Sundays and Mondays and opens 08:00-17:00.
func DefaultCalendar(loc *time.Location) WorkingCalendar {
	if loc == nil {
		loc = time.UTC
	}
	return WorkingCalendar{
		ClosedDays: []time.Weekday{time.Sunday, time.Monday},
		StartHour:  8,
		EndHour:    17,
		Location:   loc,
	}
}

// IsWorkingDay looks only at t's own weekday; callers convert to the
// business location first (see Local).
func (c WorkingCalendar) IsWorkingDay(t time.Time) bool {
	day := t.Weekday()
	for _, closed := range c.ClosedDays {
		if day == closed {
			return false
		}
	}
	return true
}

// IsWorkingHours looks only at t's own hour-of-day.
func (c WorkingCalendar) IsWorkingHours(t time.Time) bool {
	h := t.Hour()
	return h >= c.StartHour && h < c.EndHour
}

func (c WorkingCalendar) Local(t time.Time) time.Time {
	return t.In(c.Location)
}

// HourWindow returns [floor(t, 1h), floor(t, 1h)+1h) in business time.
func (c WorkingCalendar) HourWindow(t time.Time) (time.Time, time.Time) {
	l := c.Local(t)
	start := time.Date(l.Year(), l.Month(), l.Day(), l.Hour(), 0, 0, 0, c.Location)
	return start, start.Add(time.Hour)
}

// DayWindow returns 00:00:00.000 and 23:59:59.999 of t's business-local day.
// Both ends are inclusive.
func (c WorkingCalendar) DayWindow(t time.Time) (time.Time, time.Time) {
	l := c.Local(t)
	start := time.Date(l.Year(), l.Month(), l.Day(), 0, 0, 0, 0, c.Location)
	end := time.Date(l.Year(), l.Month(), l.Day(), 23, 59, 59, int(999*time.Millisecond), c.Location)
	return start, end
}
