package occupancy

import (
	"sort"

	"task-scheduler/pkg/timeblock"
)

// Index holds the intervals committed for one user during a single batch.
// It only grows; it is not safe for concurrent use.
type Index struct {
	byDate map[string][]timeblock.Interval
	n      int
}

// NewIndex returns an Index seeded with intervals.
func NewIndex(seed ...timeblock.Interval) *Index {
	idx := &Index{byDate: make(map[string][]timeblock.Interval)}
	for _, iv := range seed {
		idx.Add(iv)
	}
	return idx
}

// Add records iv as taken. Zero or negative durations are ignored.
func (x *Index) Add(iv timeblock.Interval) {
	if iv.Date == "" || iv.Duration <= 0 {
		return
	}
	x.byDate[iv.Date] = append(x.byDate[iv.Date], iv)
	x.n++
}

// IsOccupied reports whether [start, start+duration) on date overlaps anything recorded.
func (x *Index) IsOccupied(date string, start timeblock.Clock, duration int) bool {
	return len(x.Conflicts(timeblock.Interval{Date: date, Start: start, Duration: duration})) > 0
}

// Conflicts returns the recorded intervals overlapping iv.
func (x *Index) Conflicts(iv timeblock.Interval) []timeblock.Interval {
	var out []timeblock.Interval
	for _, o := range x.byDate[iv.Date] {
		if o.Overlaps(iv) {
			out = append(out, o)
		}
	}
	return out
}

// On returns a copy of date's intervals ordered by start.
func (x *Index) On(date string) []timeblock.Interval {
	out := append([]timeblock.Interval(nil), x.byDate[date]...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return out
}

// Len is the number of recorded intervals.
func (x *Index) Len() int { return x.n }
