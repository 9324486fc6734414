package schedule

import (
	"context"

	"task-scheduler/internal/model"
)

// UseCase is the scheduling entry point. Every method requires sc.UserID.
type UseCase interface {
	// Plan assigns a date and start time to every draft and persists the result.
	Plan(ctx context.Context, sc model.Scope, input PlanInput) (PlanOutput, error)
	// SweepUnscheduled gives a slot to every incomplete task that lacks one.
	SweepUnscheduled(ctx context.Context, sc model.Scope) (SweepOutput, error)
	// ScheduleReport counts scheduled and unscheduled tasks.
	ScheduleReport(ctx context.Context, sc model.Scope) (Report, error)
	// ParseTime parses a free-form time phrase relative to now.
	ParseTime(ctx context.Context, input ParseInput) (ParseOutput, error)
}
