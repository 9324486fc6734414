package gcalendar

import (
	"time"

	"task-scheduler/pkg/timeblock"
)

// BusyIntervals projects timed, opaque events into per-day intervals in loc.
// Events crossing midnight are split at each day boundary. All-day events are skipped.
func BusyIntervals(events []Event, loc *time.Location) []timeblock.Interval {
	if loc == nil {
		loc = time.UTC
	}

	var out []timeblock.Interval
	for _, ev := range events {
		if ev.AllDay || ev.Transparent || !ev.EndTime.After(ev.StartTime) {
			continue
		}

		start, end := ev.StartTime.In(loc), ev.EndTime.In(loc)
		for cur := start; cur.Before(end); {
			y, m, d := cur.Date()
			nextDay := time.Date(y, m, d+1, 0, 0, 0, 0, loc)
			segEnd := end
			if nextDay.Before(end) {
				segEnd = nextDay
			}

			out = append(out, timeblock.Interval{
				Date:     timeblock.FormatDate(cur),
				Start:    timeblock.ClockOf(cur),
				Duration: int(segEnd.Sub(cur).Minutes()),
				Label:    ev.Summary,
			})
			cur = segEnd
		}
	}
	return out
}
