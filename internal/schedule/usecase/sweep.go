package usecase

import (
	"context"
	"fmt"
	"time"

	"task-scheduler/internal/model"
	"task-scheduler/internal/schedule"
	"task-scheduler/internal/task/repository"
	"task-scheduler/pkg/locker"
	"task-scheduler/pkg/occupancy"
	"task-scheduler/pkg/timeblock"
)

// SweepUnscheduled gives every backlog task a date, a time and a block.
// A second run without intervening changes schedules nothing.
func (uc *implUseCase) SweepUnscheduled(ctx context.Context, sc model.Scope) (schedule.SweepOutput, error) {
	if sc.UserID == "" {
		return schedule.SweepOutput{}, schedule.ErrMissingUserID
	}
	defer uc.observe(opSweep, time.Now())

	unlock, err := uc.locker.Lock(ctx, locker.UserKey(sc.UserID))
	if err != nil {
		uc.l.Errorf(ctx, "schedule.usecase.SweepUnscheduled.Lock: %v", err)
		return schedule.SweepOutput{}, err
	}
	defer unlock()

	tasks, err := uc.repo.ListIncompleteTasks(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "schedule.usecase.SweepUnscheduled.ListIncompleteTasks: %v", err)
		return schedule.SweepOutput{}, fmt.Errorf("list incomplete tasks: %w", err)
	}

	idx := occupancy.NewIndex()
	var backlog []model.Task
	for _, t := range tasks {
		if t.IsUnscheduled() {
			backlog = append(backlog, t)
			continue
		}
		if iv, ok := t.Interval(); ok {
			idx.Add(iv)
		}
	}

	out := schedule.SweepOutput{UpdatedTasks: make([]schedule.SweptTask, 0, len(backlog))}
	today := uc.finder.Today()
	for _, t := range backlog {
		swept, err := uc.sweepOne(ctx, idx, t, today)
		if err != nil {
			return out, err
		}
		out.UpdatedTasks = append(out.UpdatedTasks, swept)
		out.ScheduledCount++
	}

	if out.ScheduledCount > 0 {
		uc.l.Infof(ctx, "schedule.usecase.SweepUnscheduled: user=%s scheduled=%d", sc.UserID, out.ScheduledCount)
	}
	return out, nil
}

func (uc *implUseCase) sweepOne(ctx context.Context, idx *occupancy.Index, t model.Task, today string) (schedule.SweptTask, error) {
	text := t.Title + " " + t.Description

	duration := t.EstimatedMinutes
	if duration == 0 {
		duration = backlogDuration(text)
	}
	duration = timeblock.ClampDuration(duration)

	date := backlogDate(t, today)
	preferred := bucketTime(text, t.Priority, t.Quadrant)
	res := uc.finder.FindSlot(idx, &preferred, duration, date)

	clock := res.Time.String()
	block := timeblock.TypeOf(res.Time)
	scheduled := true
	updated, err := uc.repo.UpdateTask(ctx, repository.UpdateTaskOptions{
		ID:               t.ID,
		UserID:           t.UserID,
		Date:             &date,
		Time:             &clock,
		EstimatedMinutes: &duration,
		TimeBlockType:    &block,
		IsScheduled:      &scheduled,
	})
	if err != nil {
		uc.l.Errorf(ctx, "schedule.usecase.sweepOne.UpdateTask: id=%s: %v", t.ID, err)
		return schedule.SweptTask{}, fmt.Errorf("update task %s: %w", t.ID, err)
	}

	idx.Add(timeblock.Interval{Date: date, Start: res.Time, Duration: duration, Label: t.Title})
	uc.metrics.TaskScheduled(opSweep, string(res.Source))
	if res.Fallback {
		uc.metrics.SlotFallback()
	}

	return schedule.SweptTask{
		ID:              updated.ID,
		Title:           updated.Title,
		Date:            date,
		Time:            clock,
		TimeBlockType:   block,
		DurationMinutes: duration,
		Fallback:        res.Fallback,
	}, nil
}
