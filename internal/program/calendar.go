package program

import "time"

// Calendar answers "what day is it" for the program's time zone.
type Calendar struct {
	loc *time.Location
	now func() time.Time
}

func NewCalendar(loc *time.Location) *Calendar {
	return NewCalendarWithClock(loc, time.Now)
}

func NewCalendarWithClock(loc *time.Location, now func() time.Time) *Calendar {
	if loc == nil {
		loc = time.UTC
	}
	return &Calendar{
		loc: loc,
		now: now,
	}
}

func (c *Calendar) Location() *time.Location {
	return c.loc
}

func (c *Calendar) Today() Date {
	return DateOf(c.now(), c.loc)
}

func (c *Calendar) Now() time.Time {
	return c.now()
}
