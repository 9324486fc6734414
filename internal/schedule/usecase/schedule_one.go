package usecase

import (
	"fmt"
	"strings"

	"task-scheduler/internal/model"
	"task-scheduler/internal/schedule"
	"task-scheduler/pkg/datemath"
	"task-scheduler/pkg/occupancy"
	"task-scheduler/pkg/timeblock"
)

const (
	opPlan  = "plan"
	opSweep = "sweep"
)

// scheduleOne places d against idx and appends the chosen interval to idx.
func (uc *implUseCase) scheduleOne(idx *occupancy.Index, d schedule.TaskDraft) schedule.ScheduledTask {
	today := uc.finder.Today()
	hint := uc.hintOf(d)
	duration := draftDuration(d)

	date := today
	if d.DueDate != "" {
		if due, err := timeblock.ParseDate(d.DueDate, uc.finder.Config().Location); err == nil {
			d.DueDate = timeblock.FormatDate(due)
		} else {
			d.DueDate = ""
		}
	}
	switch {
	case d.DueDate != "":
		date = d.DueDate
	case hint != nil && !hint.Date.IsZero():
		date = hint.DateString()
	}
	if date < today {
		date = today
	}

	out := schedule.ScheduledTask{
		TaskDraft:       d,
		Date:            date,
		DurationMinutes: duration,
	}

	var res occupancy.Result
	switch {
	case hint != nil && hint.Kind == datemath.HintSpecific:
		requested := hint.Time
		out.RequestedTime = requested.String()
		res = uc.finder.FindSlot(idx, &requested, duration, date)
		if res.Time != requested {
			out.TimeAdjusted = true
			if res.PreferredDropped {
				out.AdjustmentReason = fmt.Sprintf("original time %s is in the past, moved to %s", requested, res.Time)
			} else {
				out.AdjustmentReason = fmt.Sprintf("original time %s occupied, moved to %s", requested, res.Time)
			}
		}
	case hint != nil && hint.Kind == datemath.HintPeriod:
		res = uc.finder.FindInWindow(idx, hint.Window.Start, hint.Window.End, duration, date)
		if res.Fallback {
			start := hint.Window.Start
			res = uc.finder.FindSlot(idx, &start, duration, date)
		}
	default:
		preferred := bucketTime(d.Title+" "+d.Description, d.Priority, d.Quadrant)
		res = uc.finder.FindSlot(idx, &preferred, duration, date)
	}

	out.Time = res.Time.String()
	out.TimeBlockType = timeblock.TypeOf(res.Time)
	out.Fallback = res.Fallback

	idx.Add(timeblock.Interval{Date: date, Start: res.Time, Duration: duration, Label: d.Title})

	uc.metrics.TaskScheduled(opPlan, string(res.Source))
	if res.Fallback {
		uc.metrics.SlotFallback()
	}
	if out.TimeAdjusted {
		uc.metrics.TimeAdjusted()
	}
	return out
}

// hintOf resolves the draft's time request: an explicit hint, then StartTime, then the When phrase,
// then a date or time mentioned in the title and description.
func (uc *implUseCase) hintOf(d schedule.TaskDraft) *datemath.TimeHint {
	if d.TimeHint != nil {
		return d.TimeHint
	}
	if d.StartTime != "" {
		if c, err := timeblock.ParseClock(strings.TrimSpace(d.StartTime)); err == nil {
			return &datemath.TimeHint{
				Kind:       datemath.HintSpecific,
				Time:       c,
				Block:      timeblock.TypeOf(c),
				Confidence: datemath.ConfidenceSpecific,
			}
		}
	}
	if strings.TrimSpace(d.When) != "" {
		h := uc.parser.ParseHint(d.When, uc.finder.Now())
		return &h
	}

	// Text without any date or time words yields a bare "today" hint; ignore it
	// so the content bucket decides.
	now := uc.finder.Now()
	h := uc.parser.ParseHint(d.Title+" "+d.Description, now)
	if h.Kind != datemath.HintNone || h.DateString() != uc.finder.Today() {
		return &h
	}
	return nil
}

// draftDuration: explicit estimate, then a duration in the text, then the keyword table. Always clamped.
func draftDuration(d schedule.TaskDraft) int {
	if d.EstimatedMinutes != 0 {
		return timeblock.ClampDuration(d.EstimatedMinutes)
	}
	text := d.Title + " " + d.Description
	if m, ok := datemath.FindDuration(text); ok {
		return timeblock.ClampDuration(m)
	}
	return timeblock.ClampDuration(planDuration(text))
}

// normalizeDraft resets values a plan generator may have left empty or invalid.
func normalizeDraft(d schedule.TaskDraft) schedule.TaskDraft {
	d.Title = strings.TrimSpace(d.Title)
	if d.Title == "" {
		d.Title = defaultTaskTitle
	}
	if !d.Priority.IsValid() {
		d.Priority = model.PriorityMedium
	}
	if !model.ValidQuadrant(d.Quadrant) {
		d.Quadrant = model.QuadrantImportant
	}
	if d.Tags == nil {
		d.Tags = []string{}
	}
	return d
}
