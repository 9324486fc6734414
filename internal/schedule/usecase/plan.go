package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"task-scheduler/internal/model"
	"task-scheduler/internal/schedule"
	"task-scheduler/internal/task/repository"
	"task-scheduler/pkg/gcalendar"
	"task-scheduler/pkg/locker"
	"task-scheduler/pkg/occupancy"
	"task-scheduler/pkg/timeblock"
)

const (
	defaultTaskTitle  = "未命名任务"
	defaultGroupName  = "未命名任务集"
	ungroupedTaskName = "主要任务"
)

// Plan schedules every draft of the input against the user's existing tasks and persists them.
func (uc *implUseCase) Plan(ctx context.Context, sc model.Scope, input schedule.PlanInput) (schedule.PlanOutput, error) {
	if sc.UserID == "" {
		return schedule.PlanOutput{}, schedule.ErrMissingUserID
	}
	defer uc.observe(opPlan, time.Now())

	unlock, err := uc.locker.Lock(ctx, locker.UserKey(sc.UserID))
	if err != nil {
		uc.l.Errorf(ctx, "schedule.usecase.Plan.Lock: %v", err)
		return schedule.PlanOutput{}, err
	}
	defer unlock()

	idx, err := uc.seedIndex(ctx, sc.UserID)
	if err != nil {
		return schedule.PlanOutput{}, err
	}

	out := uc.scheduleGroups(normalizeGroups(input), idx)

	if !input.DryRun {
		if err := uc.persist(ctx, sc.UserID, out.Groups); err != nil {
			return schedule.PlanOutput{}, err
		}
		if input.MirrorToCalendar {
			out.Report.CalendarMirrors = uc.mirror(ctx, out.Groups)
		}
	}

	uc.l.Infof(ctx, "schedule.usecase.Plan: user=%s tasks=%d adjusted=%d fallback=%d dry_run=%v",
		sc.UserID, out.Report.TotalTasks, out.Report.AdjustedTasks, out.Report.FallbackTasks, input.DryRun)
	return out, nil
}

// scheduleGroups places every task in input order, each seeing the ones placed before it.
func (uc *implUseCase) scheduleGroups(groups []schedule.Group, idx *occupancy.Index) schedule.PlanOutput {
	out := schedule.PlanOutput{
		Groups: make([]schedule.ScheduledGroup, 0, len(groups)),
		Report: schedule.PlanReport{BlockCounts: make(map[timeblock.Type]int)},
	}

	for _, g := range groups {
		sg := schedule.ScheduledGroup{
			Name:        g.Name,
			Description: g.Description,
			Tasks:       make([]schedule.ScheduledTask, 0, len(g.Tasks)),
		}
		for _, d := range g.Tasks {
			st := uc.scheduleOne(idx, d)
			sg.Tasks = append(sg.Tasks, st)

			out.Report.TotalTasks++
			out.Report.TotalMinutes += st.DurationMinutes
			out.Report.BlockCounts[st.TimeBlockType]++
			if st.Fallback {
				out.Report.FallbackTasks++
			}
			if st.TimeAdjusted {
				out.Report.AdjustedTasks++
				out.ConflictsResolved = append(out.ConflictsResolved, schedule.ConflictResolution{
					Title:        st.Title,
					Date:         st.Date,
					OriginalTime: st.RequestedTime,
					AdjustedTime: st.Time,
					Reason:       st.AdjustmentReason,
				})
			}
		}
		out.Groups = append(out.Groups, sg)
	}
	return out
}

func normalizeGroups(input schedule.PlanInput) []schedule.Group {
	groups := make([]schedule.Group, 0, len(input.Groups)+1)
	for _, g := range input.Groups {
		g.Name = strings.TrimSpace(g.Name)
		if g.Name == "" {
			g.Name = defaultGroupName
		}
		tasks := make([]schedule.TaskDraft, 0, len(g.Tasks))
		for _, d := range g.Tasks {
			tasks = append(tasks, normalizeDraft(d))
		}
		g.Tasks = tasks
		groups = append(groups, g)
	}
	if len(input.Tasks) > 0 {
		g := schedule.Group{Name: ungroupedTaskName}
		for _, d := range input.Tasks {
			g.Tasks = append(g.Tasks, normalizeDraft(d))
		}
		groups = append(groups, g)
	}
	return groups
}

// seedIndex loads the user's placed tasks and, when a calendar is configured, its busy time.
func (uc *implUseCase) seedIndex(ctx context.Context, userID string) (*occupancy.Index, error) {
	tasks, err := uc.repo.ListIncompleteTasks(ctx, userID)
	if err != nil {
		uc.l.Errorf(ctx, "schedule.usecase.seedIndex.ListIncompleteTasks: %v", err)
		return nil, fmt.Errorf("list incomplete tasks: %w", err)
	}

	idx := occupancy.NewIndex()
	for _, t := range tasks {
		if t.IsUnscheduled() {
			continue
		}
		if iv, ok := t.Interval(); ok {
			idx.Add(iv)
		}
	}

	if uc.calendar != nil {
		loc := uc.finder.Config().Location
		from := uc.parser.StartOfDay(uc.finder.Now())
		events, err := uc.calendar.ListEvents(ctx, gcalendar.ListEventsRequest{
			TimeMin: from,
			TimeMax: from.AddDate(0, 0, uc.lookaheadDays),
		})
		if err != nil {
			uc.l.Warnf(ctx, "schedule.usecase.seedIndex.ListEvents: %v", err)
		} else {
			for _, iv := range gcalendar.BusyIntervals(events, loc) {
				idx.Add(iv)
			}
		}
	}
	return idx, nil
}

// persist stores each group in one call so a group is written entirely or not at all.
func (uc *implUseCase) persist(ctx context.Context, userID string, groups []schedule.ScheduledGroup) error {
	for gi := range groups {
		g := &groups[gi]
		if len(g.Tasks) == 0 {
			continue
		}
		opts := make([]repository.InsertTaskOptions, 0, len(g.Tasks))
		for _, st := range g.Tasks {
			opts = append(opts, repository.InsertTaskOptions{
				UserID:           userID,
				CollectionID:     g.Name,
				Title:            st.Title,
				Description:      st.Description,
				Priority:         st.Priority,
				Quadrant:         st.Quadrant,
				Date:             st.Date,
				Time:             st.Time,
				EstimatedMinutes: st.DurationMinutes,
				DueDate:          st.DueDate,
				TimeBlockType:    st.TimeBlockType,
				IsScheduled:      true,
			})
		}
		created, err := uc.repo.InsertManyTasks(ctx, opts)
		if err != nil {
			uc.l.Errorf(ctx, "schedule.usecase.persist.InsertManyTasks: group=%s: %v", g.Name, err)
			return fmt.Errorf("insert group %q: %w", g.Name, err)
		}
		for i := range created {
			if i < len(g.Tasks) {
				g.Tasks[i].TaskID = created[i].ID
			}
		}
	}
	return nil
}

// mirror creates one calendar event per scheduled task. Failures are logged and skipped.
func (uc *implUseCase) mirror(ctx context.Context, groups []schedule.ScheduledGroup) int {
	if uc.calendar == nil {
		return 0
	}
	loc := uc.finder.Config().Location
	n := 0
	for _, g := range groups {
		for _, st := range g.Tasks {
			day, err := timeblock.ParseDate(st.Date, loc)
			if err != nil {
				continue
			}
			start, err := timeblock.ParseClock(st.Time)
			if err != nil {
				continue
			}
			begin := start.On(day)
			if _, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
				Summary:     st.Title,
				Description: st.Description,
				StartTime:   begin,
				EndTime:     begin.Add(time.Duration(st.DurationMinutes) * time.Minute),
				Timezone:    loc.String(),
			}); err != nil {
				uc.l.Warnf(ctx, "schedule.usecase.mirror.CreateEvent: task=%s: %v", st.Title, err)
				continue
			}
			n++
		}
	}
	return n
}

func (uc *implUseCase) observe(op string, started time.Time) {
	uc.metrics.ObserveOperation(op, time.Since(started).Seconds())
}
