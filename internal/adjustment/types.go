package adjustment

import "task-scheduler/internal/model"

// State is a self-reported condition that changes how the day should look.
type State string

const (
	StateNormal    State = "normal"
	StateTired     State = "tired"
	StateBusy      State = "busy"
	StateStressed  State = "stressed"
	StateMotivated State = "motivated"
	StateSick      State = "sick"
)

// StateCandidate is one keyword hit.
type StateCandidate struct {
	State      State
	Keyword    string
	Confidence float64
}

// UserState is the classification of one utterance.
type UserState struct {
	PrimaryState    State
	Confidence      float64
	Candidates      []StateCandidate
	NeedsAdjustment bool
}

// ActionType names one step of an adjustment plan.
type ActionType string

const (
	ActionPostponeTasks           ActionType = "postpone_tasks"
	ActionReduceDuration          ActionType = "reduce_duration"
	ActionAddRest                 ActionType = "add_rest"
	ActionPrioritizeUrgent        ActionType = "prioritize_urgent"
	ActionScheduleUnscheduled     ActionType = "schedule_unscheduled"
	ActionAddBufferTime           ActionType = "add_buffer_time"
	ActionSpreadUrgentTasks       ActionType = "spread_urgent_tasks"
	ActionAdvanceImportant        ActionType = "advance_important"
	ActionOptimizeSchedule        ActionType = "optimize_schedule"
	ActionPostponeAllExceptUrgent ActionType = "postpone_all_except_urgent"
	ActionReduceAllDurations      ActionType = "reduce_all_durations"
)

// Action is one planned step. Target, Factor and Minutes are used by the types that need them.
type Action struct {
	Type        ActionType
	Target      int
	Factor      float64
	Minutes     int
	Description string
}

// Analysis summarises the user's incomplete tasks at the time of the request.
type Analysis struct {
	Total          int
	Today          int
	RemainingToday int
	Urgent         int
	Important      int
	Overdue        int
	Unscheduled    int
	// TotalEstimatedMinutes counts a missing estimate as an hour.
	TotalEstimatedMinutes int
}

// TaskChange describes what an action did to one task.
type TaskChange struct {
	ID     string
	Title  string
	Action ActionType

	PreviousDate             string
	Date                     string
	PreviousTime             string
	Time                     string
	PreviousEstimatedMinutes int
	EstimatedMinutes         int
	PreviousPriority         model.Priority
	Priority                 model.Priority
}

// Result tallies the changes applied by Adjust.
type Result struct {
	Modified  []TaskChange
	Postponed []TaskChange
	Cancelled []TaskChange
	New       []TaskChange
}

// Count is the number of changed tasks.
func (r Result) Count() int {
	return len(r.Modified) + len(r.Postponed) + len(r.Cancelled) + len(r.New)
}

// ClassifyInput is the input of Classify.
type ClassifyInput struct {
	Text string
}

// AdjustInput is the input of Adjust.
type AdjustInput struct {
	Text string
}

// AdjustOutput is the outcome of Adjust.
type AdjustOutput struct {
	State    UserState
	Analysis Analysis
	Actions  []Action
	Result   Result
	Message  string
}
