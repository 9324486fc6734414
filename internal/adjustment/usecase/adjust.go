package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"task-scheduler/internal/adjustment"
	"task-scheduler/internal/model"
	"task-scheduler/pkg/locker"
)

// Adjust classifies the utterance and applies the state's actions to the user's incomplete tasks.
func (uc *implUseCase) Adjust(ctx context.Context, sc model.Scope, input adjustment.AdjustInput) (adjustment.AdjustOutput, error) {
	if sc.UserID == "" {
		return adjustment.AdjustOutput{}, adjustment.ErrMissingUserID
	}
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return adjustment.AdjustOutput{}, adjustment.ErrEmptyUtterance
	}
	started := time.Now()
	defer func() { uc.metrics.ObserveOperation("adjust", time.Since(started).Seconds()) }()

	out := adjustment.AdjustOutput{State: classify(text)}
	uc.metrics.StateClassified(string(out.State.PrimaryState))
	if !out.State.NeedsAdjustment {
		out.Message = message(out.State.PrimaryState, out.Result)
		return out, nil
	}

	gapFill, err := uc.apply(ctx, sc, &out)
	if err != nil {
		return out, err
	}

	// The sweeper takes the user lock itself, so it runs after apply has released it.
	if gapFill && uc.sweeper != nil {
		swept, err := uc.sweeper.SweepUnscheduled(ctx, sc)
		if err != nil {
			uc.l.Errorf(ctx, "adjustment.usecase.Adjust.SweepUnscheduled: %v", err)
			return out, fmt.Errorf("fill free slots: %w", err)
		}
		for _, s := range swept.UpdatedTasks {
			out.Result.Modified = append(out.Result.Modified, adjustment.TaskChange{
				ID:               s.ID,
				Title:            s.Title,
				Action:           adjustment.ActionScheduleUnscheduled,
				Date:             s.Date,
				Time:             s.Time,
				EstimatedMinutes: s.DurationMinutes,
			})
		}
	}

	state := string(out.State.PrimaryState)
	uc.metrics.TasksAdjusted(state, "modified", len(out.Result.Modified))
	uc.metrics.TasksAdjusted(state, "postponed", len(out.Result.Postponed))
	uc.metrics.TasksAdjusted(state, "cancelled", len(out.Result.Cancelled))
	uc.metrics.TasksAdjusted(state, "new", len(out.Result.New))

	out.Message = message(out.State.PrimaryState, out.Result)
	uc.l.Infof(ctx, "adjustment.usecase.Adjust: user=%s state=%s confidence=%.1f actions=%d changed=%d",
		sc.UserID, state, out.State.Confidence, len(out.Actions), out.Result.Count())
	return out, nil
}

// apply runs the planned actions under the user lock. It reports whether a gap-fill sweep should follow.
func (uc *implUseCase) apply(ctx context.Context, sc model.Scope, out *adjustment.AdjustOutput) (bool, error) {
	unlock, err := uc.locker.Lock(ctx, locker.UserKey(sc.UserID))
	if err != nil {
		uc.l.Errorf(ctx, "adjustment.usecase.apply.Lock: %v", err)
		return false, err
	}
	defer unlock()

	tasks, err := uc.repo.ListIncompleteTasks(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "adjustment.usecase.apply.ListIncompleteTasks: %v", err)
		return false, fmt.Errorf("list incomplete tasks: %w", err)
	}

	now := uc.finder.Now()
	ex := &executor{
		uc:      uc,
		ctx:     ctx,
		userID:  sc.UserID,
		tasks:   tasks,
		today:   uc.finder.Today(),
		nowHour: now.Hour(),
		result:  &out.Result,
	}
	ex.tomorrow = addDays(ex.today, 1)

	out.Analysis = analyze(tasks, ex.today, ex.nowHour)
	out.Actions = planActions(out.State.PrimaryState, out.Analysis)

	gapFill := false
	for _, a := range out.Actions {
		var err error
		switch a.Type {
		case adjustment.ActionPostponeTasks:
			err = ex.postponeRemainingToday(a.Target)
		case adjustment.ActionReduceDuration:
			err = ex.reduceDurations(a.Type, a.Factor, 30)
		case adjustment.ActionAddRest:
			err = ex.addRest(a.Minutes)
		case adjustment.ActionPrioritizeUrgent:
			err = ex.prioritizeUrgent()
		case adjustment.ActionScheduleUnscheduled:
			gapFill = true
		case adjustment.ActionAddBufferTime:
			err = ex.addBuffer(a.Minutes)
		case adjustment.ActionSpreadUrgentTasks:
			err = ex.spreadUrgent()
		case adjustment.ActionAdvanceImportant:
			var n int
			n, err = ex.advanceImportant()
			gapFill = gapFill || n > 0
		case adjustment.ActionOptimizeSchedule:
			err = ex.optimizeToday()
		case adjustment.ActionPostponeAllExceptUrgent:
			err = ex.postponeAllExceptUrgent()
		case adjustment.ActionReduceAllDurations:
			err = ex.reduceDurations(a.Type, a.Factor, 0)
		}
		if err != nil {
			uc.l.Errorf(ctx, "adjustment.usecase.apply: action=%s: %v", a.Type, err)
			return false, err
		}
	}
	return gapFill, nil
}
