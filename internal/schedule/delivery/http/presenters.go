package http

import (
	"fmt"

	"task-scheduler/internal/model"
	"task-scheduler/internal/schedule"
	"task-scheduler/pkg/datemath"
)

// --- Request DTOs ---

type draftReq struct {
	Title            string   `json:"title"             binding:"max=255"`
	Description      string   `json:"description"       binding:"max=2000"`
	Priority         string   `json:"priority"`
	Quadrant         int      `json:"quadrant"`
	EstimatedMinutes int      `json:"estimated_minutes"`
	DueDate          string   `json:"due_date"`
	StartTime        string   `json:"start_time"`
	When             string   `json:"when"`
	Tags             []string `json:"tags"`
}

func (r draftReq) toDraft() schedule.TaskDraft {
	return schedule.TaskDraft{
		Title:            r.Title,
		Description:      r.Description,
		Priority:         model.Priority(r.Priority),
		Quadrant:         r.Quadrant,
		EstimatedMinutes: r.EstimatedMinutes,
		DueDate:          r.DueDate,
		StartTime:        r.StartTime,
		When:             r.When,
		Tags:             r.Tags,
	}
}

type groupReq struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Tasks       []draftReq `json:"tasks" binding:"dive"`
}

type planReq struct {
	Groups           []groupReq `json:"groups" binding:"dive"`
	Tasks            []draftReq `json:"tasks"  binding:"dive"`
	DryRun           bool       `json:"dry_run"`
	MirrorToCalendar bool       `json:"mirror_to_calendar"`
}

func (r planReq) validate() error {
	n := len(r.Tasks)
	for _, g := range r.Groups {
		n += len(g.Tasks)
	}
	if n == 0 {
		return errEmptyPlan
	}
	return nil
}

func (r planReq) toInput() schedule.PlanInput {
	in := schedule.PlanInput{
		DryRun:           r.DryRun,
		MirrorToCalendar: r.MirrorToCalendar,
	}
	for _, g := range r.Groups {
		group := schedule.Group{Name: g.Name, Description: g.Description}
		for _, d := range g.Tasks {
			group.Tasks = append(group.Tasks, d.toDraft())
		}
		in.Groups = append(in.Groups, group)
	}
	for _, d := range r.Tasks {
		in.Tasks = append(in.Tasks, d.toDraft())
	}
	return in
}

type parseReq struct {
	Text string `json:"text" binding:"required,max=500"`
}

func (r parseReq) toInput() schedule.ParseInput {
	return schedule.ParseInput{Text: r.Text}
}

// --- Response DTOs ---

type scheduledTaskResp struct {
	ID               string   `json:"id,omitempty"`
	Title            string   `json:"title"`
	Description      string   `json:"description,omitempty"`
	Priority         string   `json:"priority"`
	Quadrant         int      `json:"quadrant"`
	Date             string   `json:"date"`
	Time             string   `json:"time"`
	TimeBlockType    string   `json:"time_block_type"`
	DurationMinutes  int      `json:"duration_minutes"`
	DueDate          string   `json:"due_date,omitempty"`
	Tags             []string `json:"tags"`
	TimeAdjusted     bool     `json:"time_adjusted"`
	AdjustmentReason string   `json:"adjustment_reason,omitempty"`
	Fallback         bool     `json:"fallback,omitempty"`
}

type groupResp struct {
	Name        string              `json:"name"`
	Description string              `json:"description,omitempty"`
	Tasks       []scheduledTaskResp `json:"tasks"`
}

type conflictResp struct {
	Title        string `json:"title"`
	Date         string `json:"date"`
	OriginalTime string `json:"original_time"`
	AdjustedTime string `json:"adjusted_time"`
	Reason       string `json:"reason"`
}

type planReportResp struct {
	TotalTasks      int            `json:"total_tasks"`
	AdjustedTasks   int            `json:"adjusted_tasks"`
	FallbackTasks   int            `json:"fallback_tasks"`
	TotalMinutes    int            `json:"total_minutes"`
	BlockCounts     map[string]int `json:"block_counts"`
	CalendarMirrors int            `json:"calendar_mirrors"`
}

type planResp struct {
	Groups            []groupResp    `json:"groups"`
	ConflictsResolved []conflictResp `json:"conflicts_resolved"`
	Report            planReportResp `json:"report"`
}

func (h *handler) newPlanResp(o schedule.PlanOutput) planResp {
	resp := planResp{
		Groups:            make([]groupResp, 0, len(o.Groups)),
		ConflictsResolved: make([]conflictResp, 0, len(o.ConflictsResolved)),
		Report: planReportResp{
			TotalTasks:      o.Report.TotalTasks,
			AdjustedTasks:   o.Report.AdjustedTasks,
			FallbackTasks:   o.Report.FallbackTasks,
			TotalMinutes:    o.Report.TotalMinutes,
			BlockCounts:     make(map[string]int, len(o.Report.BlockCounts)),
			CalendarMirrors: o.Report.CalendarMirrors,
		},
	}
	for block, n := range o.Report.BlockCounts {
		resp.Report.BlockCounts[string(block)] = n
	}
	for _, g := range o.Groups {
		gr := groupResp{Name: g.Name, Description: g.Description, Tasks: make([]scheduledTaskResp, 0, len(g.Tasks))}
		for _, t := range g.Tasks {
			gr.Tasks = append(gr.Tasks, scheduledTaskResp{
				ID:               t.TaskID,
				Title:            t.Title,
				Description:      t.Description,
				Priority:         string(t.Priority),
				Quadrant:         t.Quadrant,
				Date:             t.Date,
				Time:             t.Time,
				TimeBlockType:    string(t.TimeBlockType),
				DurationMinutes:  t.DurationMinutes,
				DueDate:          t.DueDate,
				Tags:             t.Tags,
				TimeAdjusted:     t.TimeAdjusted,
				AdjustmentReason: t.AdjustmentReason,
				Fallback:         t.Fallback,
			})
		}
		resp.Groups = append(resp.Groups, gr)
	}
	for _, c := range o.ConflictsResolved {
		resp.ConflictsResolved = append(resp.ConflictsResolved, conflictResp(c))
	}
	return resp
}

type sweptTaskResp struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	TimeBlockType   string `json:"time_block_type"`
	DurationMinutes int    `json:"duration_minutes"`
	Fallback        bool   `json:"fallback,omitempty"`
}

type sweepResp struct {
	ScheduledCount int             `json:"scheduled_count"`
	UpdatedTasks   []sweptTaskResp `json:"updated_tasks"`
}

func (h *handler) newSweepResp(o schedule.SweepOutput) sweepResp {
	resp := sweepResp{ScheduledCount: o.ScheduledCount, UpdatedTasks: make([]sweptTaskResp, 0, len(o.UpdatedTasks))}
	for _, t := range o.UpdatedTasks {
		resp.UpdatedTasks = append(resp.UpdatedTasks, sweptTaskResp{
			ID:              t.ID,
			Title:           t.Title,
			Date:            t.Date,
			Time:            t.Time,
			TimeBlockType:   string(t.TimeBlockType),
			DurationMinutes: t.DurationMinutes,
			Fallback:        t.Fallback,
		})
	}
	return resp
}

type reportResp struct {
	TotalTasks       int    `json:"total_tasks"`
	ScheduledTasks   int    `json:"scheduled_tasks"`
	UnscheduledTasks int    `json:"unscheduled_tasks"`
	SchedulingRate   string `json:"scheduling_rate"`
	TodayTasks       int    `json:"today_tasks"`
}

func (h *handler) newReportResp(o schedule.Report) reportResp {
	return reportResp{
		TotalTasks:       o.TotalTasks,
		ScheduledTasks:   o.ScheduledTasks,
		UnscheduledTasks: o.UnscheduledTasks,
		SchedulingRate:   fmt.Sprintf("%.1f%%", o.SchedulingRate),
		TodayTasks:       o.TodayTasks,
	}
}

type parseResp struct {
	Kind            string  `json:"kind"`
	Date            string  `json:"date"`
	Time            string  `json:"time,omitempty"`
	Period          string  `json:"period,omitempty"`
	TimeBlockType   string  `json:"time_block_type,omitempty"`
	WindowStart     string  `json:"window_start,omitempty"`
	WindowEnd       string  `json:"window_end,omitempty"`
	Confidence      float64 `json:"confidence"`
	DurationMinutes int     `json:"duration_minutes"`
	DurationFound   bool    `json:"duration_found"`
}

func (h *handler) newParseResp(o schedule.ParseOutput) parseResp {
	resp := parseResp{
		Kind:            string(o.Hint.Kind),
		Date:            o.Hint.DateString(),
		Period:          o.Hint.Period,
		TimeBlockType:   string(o.Hint.Block),
		Confidence:      o.Hint.Confidence,
		DurationMinutes: o.DurationMinutes,
		DurationFound:   o.DurationFound,
	}
	switch o.Hint.Kind {
	case datemath.HintSpecific:
		resp.Time = o.Hint.Time.String()
	case datemath.HintPeriod:
		resp.Time = o.Hint.Time.String()
		resp.WindowStart = o.Hint.Window.Start.String()
		resp.WindowEnd = o.Hint.Window.End.String()
	}
	return resp
}
