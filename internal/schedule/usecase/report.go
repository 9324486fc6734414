package usecase

import (
	"context"
	"fmt"
	"math"

	"task-scheduler/internal/model"
	"task-scheduler/internal/schedule"
)

// ScheduleReport counts the user's incomplete tasks by scheduling state.
func (uc *implUseCase) ScheduleReport(ctx context.Context, sc model.Scope) (schedule.Report, error) {
	if sc.UserID == "" {
		return schedule.Report{}, schedule.ErrMissingUserID
	}

	tasks, err := uc.repo.ListIncompleteTasks(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "schedule.usecase.ScheduleReport.ListIncompleteTasks: %v", err)
		return schedule.Report{}, fmt.Errorf("list incomplete tasks: %w", err)
	}

	today := uc.finder.Today()
	var r schedule.Report
	for _, t := range tasks {
		r.TotalTasks++
		if t.Date != "" && t.Time != "" {
			r.ScheduledTasks++
		} else {
			r.UnscheduledTasks++
		}
		if t.Date == today {
			r.TodayTasks++
		}
	}
	if r.TotalTasks > 0 {
		r.SchedulingRate = math.Round(float64(r.ScheduledTasks)*1000/float64(r.TotalTasks)) / 10
	}
	return r, nil
}
