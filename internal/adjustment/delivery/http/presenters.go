package http

import (
	"task-scheduler/internal/adjustment"
)

// --- Request DTOs ---

type textReq struct {
	Text string `json:"text" binding:"required,max=1000"`
}

func (r textReq) toClassifyInput() adjustment.ClassifyInput {
	return adjustment.ClassifyInput{Text: r.Text}
}

func (r textReq) toAdjustInput() adjustment.AdjustInput {
	return adjustment.AdjustInput{Text: r.Text}
}

// --- Response DTOs ---

type candidateResp struct {
	State      string  `json:"state"`
	Keyword    string  `json:"keyword"`
	Confidence float64 `json:"confidence"`
}

type stateResp struct {
	PrimaryState    string          `json:"primary_state"`
	Confidence      float64         `json:"confidence"`
	NeedsAdjustment bool            `json:"needs_adjustment"`
	Candidates      []candidateResp `json:"candidates"`
}

func (h *handler) newStateResp(s adjustment.UserState) stateResp {
	resp := stateResp{
		PrimaryState:    string(s.PrimaryState),
		Confidence:      s.Confidence,
		NeedsAdjustment: s.NeedsAdjustment,
		Candidates:      make([]candidateResp, 0, len(s.Candidates)),
	}
	for _, c := range s.Candidates {
		resp.Candidates = append(resp.Candidates, candidateResp{
			State:      string(c.State),
			Keyword:    c.Keyword,
			Confidence: c.Confidence,
		})
	}
	return resp
}

type analysisResp struct {
	Total                 int `json:"total"`
	Today                 int `json:"today"`
	RemainingToday        int `json:"remaining_today"`
	Urgent                int `json:"urgent"`
	Important             int `json:"important"`
	Overdue               int `json:"overdue"`
	Unscheduled           int `json:"unscheduled"`
	TotalEstimatedMinutes int `json:"total_estimated_minutes"`
}

type actionResp struct {
	Type        string  `json:"type"`
	Target      int     `json:"target,omitempty"`
	Factor      float64 `json:"factor,omitempty"`
	Minutes     int     `json:"minutes,omitempty"`
	Description string  `json:"description"`
}

type changeResp struct {
	ID                       string `json:"id"`
	Title                    string `json:"title"`
	Action                   string `json:"action"`
	PreviousDate             string `json:"previous_date,omitempty"`
	Date                     string `json:"date,omitempty"`
	PreviousTime             string `json:"previous_time,omitempty"`
	Time                     string `json:"time,omitempty"`
	PreviousEstimatedMinutes int    `json:"previous_estimated_minutes,omitempty"`
	EstimatedMinutes         int    `json:"estimated_minutes,omitempty"`
	PreviousPriority         string `json:"previous_priority,omitempty"`
	Priority                 string `json:"priority,omitempty"`
}

type resultResp struct {
	Modified  []changeResp `json:"modified"`
	Postponed []changeResp `json:"postponed"`
	Cancelled []changeResp `json:"cancelled"`
	New       []changeResp `json:"new"`
	Count     int          `json:"count"`
}

type adjustResp struct {
	State    stateResp    `json:"state"`
	Analysis analysisResp `json:"analysis"`
	Actions  []actionResp `json:"actions"`
	Result   resultResp   `json:"result"`
	Message  string       `json:"message"`
}

func newChanges(changes []adjustment.TaskChange) []changeResp {
	out := make([]changeResp, 0, len(changes))
	for _, c := range changes {
		out = append(out, changeResp{
			ID:                       c.ID,
			Title:                    c.Title,
			Action:                   string(c.Action),
			PreviousDate:             c.PreviousDate,
			Date:                     c.Date,
			PreviousTime:             c.PreviousTime,
			Time:                     c.Time,
			PreviousEstimatedMinutes: c.PreviousEstimatedMinutes,
			EstimatedMinutes:         c.EstimatedMinutes,
			PreviousPriority:         string(c.PreviousPriority),
			Priority:                 string(c.Priority),
		})
	}
	return out
}

func (h *handler) newAdjustResp(o adjustment.AdjustOutput) adjustResp {
	resp := adjustResp{
		State:    h.newStateResp(o.State),
		Analysis: analysisResp(o.Analysis),
		Actions:  make([]actionResp, 0, len(o.Actions)),
		Result: resultResp{
			Modified:  newChanges(o.Result.Modified),
			Postponed: newChanges(o.Result.Postponed),
			Cancelled: newChanges(o.Result.Cancelled),
			New:       newChanges(o.Result.New),
			Count:     o.Result.Count(),
		},
		Message: o.Message,
	}
	for _, a := range o.Actions {
		resp.Actions = append(resp.Actions, actionResp{
			Type:        string(a.Type),
			Target:      a.Target,
			Factor:      a.Factor,
			Minutes:     a.Minutes,
			Description: a.Description,
		})
	}
	return resp
}
