package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"

	"task-scheduler/internal/adjustment"
	"task-scheduler/internal/model"
	"task-scheduler/internal/task/repository"
	"task-scheduler/pkg/datemath"
	"task-scheduler/pkg/occupancy"
	"task-scheduler/pkg/timeblock"
)

const (
	restTitle       = "休息放松"
	restDescription = "离开屏幕，活动一下"
)

// urgentAnchors are the windows urgent tasks are spread over, in order.
var urgentAnchors = func() []datemath.Window {
	var out []datemath.Window
	for _, w := range []string{"上午", "下午", "晚上"} {
		if win, ok := datemath.PeriodWindow(w); ok {
			out = append(out, win)
		}
	}
	return out
}()

// executor applies actions to a working copy of the user's tasks, keeping it in sync with the store.
type executor struct {
	uc       *implUseCase
	ctx      context.Context
	userID   string
	tasks    []model.Task
	today    string
	tomorrow string
	nowHour  int
	result   *adjustment.Result
}

func (ex *executor) update(i int, action adjustment.ActionType, opt repository.UpdateTaskOptions) (adjustment.TaskChange, error) {
	before := ex.tasks[i]
	opt.ID, opt.UserID = before.ID, ex.userID
	after, err := ex.uc.repo.UpdateTask(ex.ctx, opt)
	if err != nil {
		return adjustment.TaskChange{}, fmt.Errorf("update task %s: %w", before.ID, err)
	}
	ex.tasks[i] = after
	return change(action, before, after), nil
}

func change(action adjustment.ActionType, before, after model.Task) adjustment.TaskChange {
	return adjustment.TaskChange{
		ID:                       after.ID,
		Title:                    after.Title,
		Action:                   action,
		PreviousDate:             before.Date,
		Date:                     after.Date,
		PreviousTime:             before.Time,
		Time:                     after.Time,
		PreviousEstimatedMinutes: before.EstimatedMinutes,
		EstimatedMinutes:         after.EstimatedMinutes,
		PreviousPriority:         before.Priority,
		Priority:                 after.Priority,
	}
}

// postponeOptions moves a task to date and clears its slot so a later sweep re-places it.
func postponeOptions(date string) repository.UpdateTaskOptions {
	empty := ""
	unscheduled := timeblock.TypeUnscheduled
	scheduled := false
	return repository.UpdateTaskOptions{
		Date:          &date,
		Time:          &empty,
		TimeBlockType: &unscheduled,
		IsScheduled:   &scheduled,
	}
}

func slotOptions(date string, start timeblock.Clock) repository.UpdateTaskOptions {
	clock := start.String()
	block := timeblock.TypeOf(start)
	scheduled := true
	return repository.UpdateTaskOptions{
		Date:          &date,
		Time:          &clock,
		TimeBlockType: &block,
		IsScheduled:   &scheduled,
	}
}

// postponeRemainingToday moves up to target of today's remaining non-urgent tasks to tomorrow,
// low priority first and otherwise in list order.
func (ex *executor) postponeRemainingToday(target int) error {
	var idxs []int
	for i, t := range ex.tasks {
		if t.Date == ex.today && t.Quadrant != model.QuadrantUrgentImportant && isRemaining(t, ex.nowHour) {
			idxs = append(idxs, i)
		}
	}
	sort.SliceStable(idxs, func(a, b int) bool {
		return ex.tasks[idxs[a]].Priority.Rank() < ex.tasks[idxs[b]].Priority.Rank()
	})
	if len(idxs) > target {
		idxs = idxs[:target]
	}

	for _, i := range idxs {
		c, err := ex.update(i, adjustment.ActionPostponeTasks, postponeOptions(ex.tomorrow))
		if err != nil {
			return err
		}
		ex.result.Postponed = append(ex.result.Postponed, c)
	}
	return nil
}

// postponeAllExceptUrgent moves every non-urgent task dated today or earlier to tomorrow.
func (ex *executor) postponeAllExceptUrgent() error {
	for i, t := range ex.tasks {
		if t.Quadrant == model.QuadrantUrgentImportant || t.Date == "" || t.Date > ex.today {
			continue
		}
		c, err := ex.update(i, adjustment.ActionPostponeAllExceptUrgent, postponeOptions(ex.tomorrow))
		if err != nil {
			return err
		}
		ex.result.Postponed = append(ex.result.Postponed, c)
	}
	return nil
}

// reduceDurations scales estimates above over by factor.
func (ex *executor) reduceDurations(action adjustment.ActionType, factor float64, over int) error {
	for i, t := range ex.tasks {
		if t.EstimatedMinutes <= over || t.EstimatedMinutes <= 0 {
			continue
		}
		reduced := timeblock.ClampDuration(int(math.Round(float64(t.EstimatedMinutes) * factor)))
		if reduced == t.EstimatedMinutes {
			continue
		}
		c, err := ex.update(i, action, repository.UpdateTaskOptions{EstimatedMinutes: &reduced})
		if err != nil {
			return err
		}
		ex.result.Modified = append(ex.result.Modified, c)
	}
	return nil
}

// addRest inserts a short break today in the first free slot.
func (ex *executor) addRest(minutes int) error {
	res := ex.uc.finder.FindSlot(ex.index(nil), nil, minutes, ex.today)
	created, err := ex.uc.repo.InsertTask(ex.ctx, repository.InsertTaskOptions{
		UserID:           ex.userID,
		Title:            restTitle,
		Description:      restDescription,
		Priority:         model.PriorityMedium,
		Quadrant:         model.QuadrantNeither,
		Date:             ex.today,
		Time:             res.Time.String(),
		EstimatedMinutes: minutes,
		TimeBlockType:    timeblock.TypeOf(res.Time),
		IsScheduled:      true,
	})
	if err != nil {
		return fmt.Errorf("insert rest task: %w", err)
	}
	ex.tasks = append(ex.tasks, created)
	ex.result.New = append(ex.result.New, change(adjustment.ActionAddRest, model.Task{}, created))
	return nil
}

// prioritizeUrgent raises every urgent-important task to high priority.
func (ex *executor) prioritizeUrgent() error {
	high := model.PriorityHigh
	for i, t := range ex.tasks {
		if t.Quadrant != model.QuadrantUrgentImportant || t.Priority == high {
			continue
		}
		c, err := ex.update(i, adjustment.ActionPrioritizeUrgent, repository.UpdateTaskOptions{Priority: &high})
		if err != nil {
			return err
		}
		ex.result.Modified = append(ex.result.Modified, c)
	}
	return nil
}

// addBuffer walks today's timed tasks by start and pushes any task that begins
// less than minutes after the previous one ends.
func (ex *executor) addBuffer(minutes int) error {
	idxs := ex.timedOn(ex.today)
	prevEnd := timeblock.Clock(-1)
	for _, i := range idxs {
		start, _ := ex.tasks[i].Start()
		if prevEnd >= 0 && start < prevEnd.Add(minutes) {
			shifted := prevEnd.Add(minutes)
			if int(shifted) >= timeblock.MinutesPerDay {
				break
			}
			c, err := ex.update(i, adjustment.ActionAddBufferTime, slotOptions(ex.today, shifted))
			if err != nil {
				return err
			}
			ex.result.Modified = append(ex.result.Modified, c)
			start = shifted
		}
		prevEnd = start.Add(ex.tasks[i].Duration())
	}
	return nil
}

// spreadUrgent places urgent tasks round-robin over the forenoon, afternoon and evening windows of their date.
func (ex *executor) spreadUrgent() error {
	urgent := make(map[int]bool)
	var order []int
	for i, t := range ex.tasks {
		if t.Quadrant == model.QuadrantUrgentImportant {
			urgent[i] = true
			order = append(order, i)
		}
	}
	if len(order) == 0 || len(urgentAnchors) == 0 {
		return nil
	}

	idx := ex.index(func(i int) bool { return urgent[i] })
	perDate := make(map[string]int)
	for _, i := range order {
		t := ex.tasks[i]
		date := t.Date
		if date == "" || date < ex.today {
			date = ex.today
		}
		w := urgentAnchors[perDate[date]%len(urgentAnchors)]
		perDate[date]++

		dur := t.Duration()
		res := ex.uc.finder.FindInWindow(idx, w.Start, w.End, dur, date)
		if res.Fallback {
			start := w.Start
			res = ex.uc.finder.FindSlot(idx, &start, dur, date)
		}
		idx.Add(timeblock.Interval{Date: date, Start: res.Time, Duration: dur, Label: t.Title})

		if date == t.Date && res.Time.String() == t.Time && t.IsScheduled {
			continue
		}
		c, err := ex.update(i, adjustment.ActionSpreadUrgentTasks, slotOptions(date, res.Time))
		if err != nil {
			return err
		}
		ex.result.Modified = append(ex.result.Modified, c)
	}
	return nil
}

// advanceImportant brings future important tasks to today with their slot cleared.
func (ex *executor) advanceImportant() (int, error) {
	n := 0
	for i, t := range ex.tasks {
		if t.Quadrant != model.QuadrantImportant || t.Date == "" || t.Date <= ex.today {
			continue
		}
		c, err := ex.update(i, adjustment.ActionAdvanceImportant, postponeOptions(ex.today))
		if err != nil {
			return n, err
		}
		ex.result.Modified = append(ex.result.Modified, c)
		n++
	}
	return n, nil
}

// optimizeToday hands today's existing start times to the tasks in order of
// quadrant, then priority. A task never starts before the previous one ends.
func (ex *executor) optimizeToday() error {
	idxs := ex.timedOn(ex.today)
	if len(idxs) < 2 {
		return nil
	}

	slots := make([]timeblock.Clock, len(idxs))
	for k, i := range idxs {
		slots[k], _ = ex.tasks[i].Start()
	}

	order := append([]int(nil), idxs...)
	sort.SliceStable(order, func(a, b int) bool {
		ta, tb := ex.tasks[order[a]], ex.tasks[order[b]]
		if qa, qb := quadrantRank(ta.Quadrant), quadrantRank(tb.Quadrant); qa != qb {
			return qa < qb
		}
		return ta.Priority.Rank() > tb.Priority.Rank()
	})

	prevEnd := timeblock.Clock(0)
	for k, i := range order {
		start := slots[k]
		if start < prevEnd {
			start = prevEnd
		}
		if int(start) >= timeblock.MinutesPerDay {
			break
		}
		prevEnd = start.Add(ex.tasks[i].Duration())

		if cur, _ := ex.tasks[i].Start(); cur == start {
			continue
		}
		c, err := ex.update(i, adjustment.ActionOptimizeSchedule, slotOptions(ex.today, start))
		if err != nil {
			return err
		}
		ex.result.Modified = append(ex.result.Modified, c)
	}
	return nil
}

func quadrantRank(q int) int {
	if model.ValidQuadrant(q) {
		return q
	}
	return model.QuadrantNeither + 1
}

// timedOn returns the indexes of tasks on date with a start time, ordered by start.
func (ex *executor) timedOn(date string) []int {
	var idxs []int
	for i, t := range ex.tasks {
		if _, ok := t.Start(); ok && t.Date == date {
			idxs = append(idxs, i)
		}
	}
	sort.SliceStable(idxs, func(a, b int) bool {
		sa, _ := ex.tasks[idxs[a]].Start()
		sb, _ := ex.tasks[idxs[b]].Start()
		return sa < sb
	})
	return idxs
}

// index builds the occupancy of the working tasks, leaving out those skip selects.
func (ex *executor) index(skip func(int) bool) *occupancy.Index {
	idx := occupancy.NewIndex()
	for i, t := range ex.tasks {
		if skip != nil && skip(i) {
			continue
		}
		if iv, ok := t.Interval(); ok {
			idx.Add(iv)
		}
	}
	return idx
}

func addDays(date string, n int) string {
	d, err := timeblock.ParseDate(date, nil)
	if err != nil {
		return date
	}
	return timeblock.FormatDate(d.AddDate(0, 0, n))
}
