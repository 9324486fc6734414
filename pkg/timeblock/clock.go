package timeblock

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Clock is a time of day expressed in minutes since midnight.
// End times computed with Add may exceed MinutesPerDay.
type Clock int

// NewClock builds a Clock from an hour and minute.
func NewClock(hour, minute int) Clock {
	return Clock(hour*60 + minute)
}

// ClockOf returns the wall-clock part of t.
func ClockOf(t time.Time) Clock {
	return NewClock(t.Hour(), t.Minute())
}

// ParseClock parses "HH:MM" (or "H:MM"). Hour must be in [0,23] and minute in [0,59].
func ParseClock(s string) (Clock, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	h, err := strconv.Atoi(hh)
	if err != nil || len(hh) > 2 || h < 0 || h > 23 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	m, err := strconv.Atoi(mm)
	if err != nil || len(mm) != 2 || m < 0 || m > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	return NewClock(h, m), nil
}

// MustParseClock is ParseClock for package-level tables.
func MustParseClock(s string) Clock {
	c, err := ParseClock(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Clock) Hour() int   { return int(c) / 60 }
func (c Clock) Minute() int { return int(c) % 60 }

// Add returns c shifted by minutes. The result is not wrapped at midnight.
func (c Clock) Add(minutes int) Clock {
	return c + Clock(minutes)
}

// CeilTo returns the first multiple of step strictly after c.
func (c Clock) CeilTo(step int) Clock {
	if step <= 0 {
		return c
	}
	return Clock((int(c)/step + 1) * step)
}

// CeilHalfHour returns the first half-hour mark strictly after c.
func (c Clock) CeilHalfHour() Clock {
	return c.CeilTo(GridStep)
}

// String formats c as zero-padded "HH:MM". Values past midnight print as "24:30" and so on.
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

// On returns the instant of c on the calendar day of date, in date's location.
func (c Clock) On(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, c.Hour(), c.Minute(), 0, 0, date.Location())
}
