package occupancy

import (
	"time"

	"task-scheduler/pkg/timeblock"
)

// Source tells which search step produced a slot.
type Source string

const (
	SourcePreferred Source = "preferred"
	SourceDefault   Source = "default"
	SourceGrid      Source = "grid"
	SourceWindow    Source = "window"
	SourceFallback  Source = "fallback"
)

// Config controls the slot search.
type Config struct {
	DayStart     timeblock.Clock   // first grid start on days other than today
	DayEnd       timeblock.Clock   // grid starts stay strictly before this
	Step         int               // grid step in minutes
	FallbackTime timeblock.Clock   // returned when the day is saturated
	DefaultTimes []timeblock.Clock // tried in order when there is no usable preferred time
	Location     *time.Location
	Now          func() time.Time // injectable for testing
}

// DefaultConfig is the 07:00-22:00 half-hour grid with 09:30/14:00/19:00 defaults and a 21:00 fallback.
func DefaultConfig() Config {
	return Config{
		DayStart:     timeblock.NewClock(7, 0),
		DayEnd:       timeblock.NewClock(22, 0),
		Step:         timeblock.GridStep,
		FallbackTime: timeblock.NewClock(21, 0),
		DefaultTimes: []timeblock.Clock{
			timeblock.NewClock(9, 30),
			timeblock.NewClock(14, 0),
			timeblock.NewClock(19, 0),
		},
		Location: time.Local,
		Now:      time.Now,
	}
}

// Result is the outcome of a slot search.
type Result struct {
	Time timeblock.Clock
	// Source is the step that produced Time.
	Source Source
	// Fallback is set when no free slot existed and Time may double-book.
	Fallback bool
	// PreferredDropped is set when the preferred time was in the past.
	PreferredDropped bool
}

// Finder picks start times against an Index.
type Finder struct {
	cfg Config
}

// NewFinder fills zero fields of cfg from DefaultConfig.
func NewFinder(cfg Config) *Finder {
	def := DefaultConfig()
	if cfg.DayEnd == 0 {
		cfg.DayStart, cfg.DayEnd = def.DayStart, def.DayEnd
	}
	if cfg.Step <= 0 {
		cfg.Step = def.Step
	}
	if cfg.FallbackTime == 0 {
		cfg.FallbackTime = def.FallbackTime
	}
	if cfg.DefaultTimes == nil {
		cfg.DefaultTimes = def.DefaultTimes
	}
	if cfg.Location == nil {
		cfg.Location = def.Location
	}
	if cfg.Now == nil {
		cfg.Now = def.Now
	}
	return &Finder{cfg: cfg}
}

// Config returns the effective configuration.
func (f *Finder) Config() Config { return f.cfg }

// Now returns the current time in the finder's location.
func (f *Finder) Now() time.Time { return f.cfg.Now().In(f.cfg.Location) }

// Today returns the current date in storage layout.
func (f *Finder) Today() string { return timeblock.FormatDate(f.Now()) }

// FindSlot returns a start time for a task of duration minutes on date.
//
// Search order, earliest time winning inside every step:
//  1. on today, a preferred time before now is discarded;
//  2. without a usable preferred time, the default times (not yet past on today);
//  3. the preferred time when it is free;
//  4. the grid from DayStart (today: the next step after now) while start < DayEnd;
//  5. FallbackTime.
//
// FindSlot always returns a time. Under saturation the result has Fallback set
// and may overlap an existing interval.
func (f *Finder) FindSlot(idx *Index, preferred *timeblock.Clock, duration int, date string) Result {
	now := f.Now()
	isToday := date == timeblock.FormatDate(now)
	nowClock := timeblock.ClockOf(now)

	var res Result
	if preferred != nil && isToday && *preferred < nowClock {
		preferred = nil
		res.PreferredDropped = true
	}

	if preferred == nil {
		for _, t := range f.cfg.DefaultTimes {
			if isToday && t < nowClock {
				continue
			}
			if !idx.IsOccupied(date, t, duration) {
				res.Time, res.Source = t, SourceDefault
				return res
			}
		}
	} else if !idx.IsOccupied(date, *preferred, duration) {
		res.Time, res.Source = *preferred, SourcePreferred
		return res
	}

	start := f.cfg.DayStart
	if isToday {
		if next := nowClock.CeilTo(f.cfg.Step); next > start {
			start = next
		}
	}
	for t := start; t < f.cfg.DayEnd; t = t.Add(f.cfg.Step) {
		if !idx.IsOccupied(date, t, duration) {
			res.Time, res.Source = t, SourceGrid
			return res
		}
	}

	res.Time, res.Source, res.Fallback = f.cfg.FallbackTime, SourceFallback, true
	return res
}

// FindInWindow returns the first free step inside [start, end) that fits
// duration entirely. On today the search begins after now. When nothing
// fits it returns start with Fallback set.
func (f *Finder) FindInWindow(idx *Index, start, end timeblock.Clock, duration int, date string) Result {
	from := start
	if now := f.Now(); date == timeblock.FormatDate(now) {
		if c := timeblock.ClockOf(now); c > from {
			from = c.CeilTo(f.cfg.Step)
		}
	}
	for t := from; t.Add(duration) <= end; t = t.Add(f.cfg.Step) {
		if !idx.IsOccupied(date, t, duration) {
			return Result{Time: t, Source: SourceWindow}
		}
	}
	return Result{Time: start, Source: SourceFallback, Fallback: true}
}
