package model

import (
	"time"

	"task-scheduler/pkg/timeblock"
)

// Priority is the user-facing importance of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// IsValid reports whether p is a known priority.
func (p Priority) IsValid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// Rank orders priorities: low < medium < high. Unknown values rank as medium.
func (p Priority) Rank() int {
	switch p {
	case PriorityLow:
		return 0
	case PriorityHigh:
		return 2
	default:
		return 1
	}
}

// Eisenhower quadrants.
const (
	QuadrantUrgentImportant = 1
	QuadrantImportant       = 2
	QuadrantUrgent          = 3
	QuadrantNeither         = 4
)

// ValidQuadrant reports whether q is in [1,4].
func ValidQuadrant(q int) bool { return q >= 1 && q <= 4 }

// Task is a persisted task row.
type Task struct {
	ID               string
	UserID           string
	CollectionID     string
	Title            string
	Description      string
	Priority         Priority
	Quadrant         int
	Date             string // "2006-01-02" or empty
	Time             string // "15:04" or empty
	EstimatedMinutes int    // 0 when unknown
	DueDate          string // "2006-01-02" or empty
	TimeBlockType    timeblock.Type
	IsScheduled      bool
	Completed        bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Duration is the estimate, or timeblock.DefaultDuration when unknown.
func (t Task) Duration() int {
	if t.EstimatedMinutes > 0 {
		return t.EstimatedMinutes
	}
	return timeblock.DefaultDuration
}

// Start parses Time. ok is false when the task has no usable start time.
func (t Task) Start() (timeblock.Clock, bool) {
	if t.Time == "" {
		return 0, false
	}
	c, err := timeblock.ParseClock(t.Time)
	if err != nil {
		return 0, false
	}
	return c, true
}

// Interval projects a dated and timed task into an occupied interval.
func (t Task) Interval() (timeblock.Interval, bool) {
	start, ok := t.Start()
	if !ok || t.Date == "" {
		return timeblock.Interval{}, false
	}
	return timeblock.Interval{
		Date:     t.Date,
		Start:    start,
		Duration: t.Duration(),
		Label:    t.Title,
	}, true
}

// IsUnscheduled is the backlog predicate: incomplete and missing a date,
// a time or the scheduled flag.
func (t Task) IsUnscheduled() bool {
	return !t.Completed && (t.Date == "" || t.Time == "" || !t.IsScheduled)
}
