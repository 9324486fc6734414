package timeblock

import (
	"fmt"
	"time"
)

// Interval is an occupied or candidate block on one calendar date.
type Interval struct {
	Date     string // DateLayout
	Start    Clock
	Duration int // minutes
	Label    string
}

// End is Start plus Duration.
func (i Interval) End() Clock {
	return i.Start.Add(i.Duration)
}

// Overlaps reports whether i and o share any minute. Intervals are half-open,
// so back-to-back blocks do not overlap. Different dates never overlap.
func (i Interval) Overlaps(o Interval) bool {
	if i.Date != o.Date {
		return false
	}
	return Overlap(i.Start, i.End(), o.Start, o.End())
}

func (i Interval) String() string {
	return fmt.Sprintf("%s %s-%s %s", i.Date, i.Start, i.End(), i.Label)
}

// Overlap is the half-open test for [aStart,aEnd) and [bStart,bEnd).
func Overlap(aStart, aEnd, bStart, bEnd Clock) bool {
	return aStart < aEnd && bStart < bEnd && aStart < bEnd && aEnd > bStart
}

// ClampDuration forces minutes into [MinDuration, MaxDuration].
func ClampDuration(minutes int) int {
	switch {
	case minutes < MinDuration:
		return MinDuration
	case minutes > MaxDuration:
		return MaxDuration
	default:
		return minutes
	}
}

// FormatDate renders t as a storage date.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a storage date in loc. Full RFC3339 timestamps are accepted and truncated to the date.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	if t, err := time.ParseInLocation(DateLayout, s, loc); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		t = t.In(loc)
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}
