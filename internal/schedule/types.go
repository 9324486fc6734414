package schedule

import (
	"task-scheduler/internal/model"
	"task-scheduler/pkg/datemath"
	"task-scheduler/pkg/timeblock"
)

// TaskDraft is a task proposed by plan generation, before it has a slot.
type TaskDraft struct {
	Title       string
	Description string
	Priority    model.Priority
	Quadrant    int
	// EstimatedMinutes of 0 means unknown. Any other value is clamped.
	EstimatedMinutes int
	DueDate          string // "2006-01-02", RFC3339 accepted
	// StartTime is an explicit "HH:MM" request.
	StartTime string
	// When is a free-form phrase such as "明天下午3点", parsed when TimeHint is nil.
	When     string
	TimeHint *datemath.TimeHint
	Tags     []string
}

// ScheduledTask is a draft with its assigned slot.
type ScheduledTask struct {
	TaskDraft
	Date             string
	Time             string
	TimeBlockType    timeblock.Type
	DurationMinutes  int
	RequestedTime    string
	TimeAdjusted     bool
	AdjustmentReason string
	// Fallback is set when the day was saturated and Time may double-book.
	Fallback bool
	TaskID   string // set once persisted
}

// Group is a named collection of drafts, scheduled in input order.
type Group struct {
	Name        string
	Description string
	Tasks       []TaskDraft
}

// ScheduledGroup is a Group after scheduling.
type ScheduledGroup struct {
	Name        string
	Description string
	Tasks       []ScheduledTask
}

// ConflictResolution records a requested time that had to move.
type ConflictResolution struct {
	Title        string
	Date         string
	OriginalTime string
	AdjustedTime string
	Reason       string
}

// PlanInput is the input of Plan.
type PlanInput struct {
	Groups []Group
	// Tasks without a group are collected into one default group.
	Tasks []TaskDraft
	// DryRun schedules without persisting.
	DryRun bool
	// MirrorToCalendar creates a calendar event per persisted task.
	MirrorToCalendar bool
}

// PlanOutput is the result of Plan.
type PlanOutput struct {
	Groups            []ScheduledGroup
	ConflictsResolved []ConflictResolution
	Report            PlanReport
}

// PlanReport summarises a plan.
type PlanReport struct {
	TotalTasks      int
	AdjustedTasks   int
	FallbackTasks   int
	TotalMinutes    int
	BlockCounts     map[timeblock.Type]int
	CalendarMirrors int
}

// SweepOutput is the result of SweepUnscheduled.
type SweepOutput struct {
	ScheduledCount int
	UpdatedTasks   []SweptTask
}

// SweptTask is one backlog task that received a slot.
type SweptTask struct {
	ID              string
	Title           string
	Date            string
	Time            string
	TimeBlockType   timeblock.Type
	DurationMinutes int
	Fallback        bool
}

// Report is the scheduling health of a user's incomplete tasks.
type Report struct {
	TotalTasks       int
	ScheduledTasks   int
	UnscheduledTasks int
	// SchedulingRate is ScheduledTasks/TotalTasks in percent, 0 when there are no tasks.
	SchedulingRate float64
	TodayTasks     int
}

// ParseInput is the input of ParseTime.
type ParseInput struct {
	Text string
}

// ParseOutput is a parsed phrase.
type ParseOutput struct {
	Hint            datemath.TimeHint
	DurationMinutes int
	DurationFound   bool
}
