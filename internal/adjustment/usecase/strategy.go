package usecase

import (
	"math"

	"task-scheduler/internal/adjustment"
)

const (
	tiredRemainingLimit  = 3
	tiredEstimateLimit   = 240
	tiredReduceFactor    = 0.7
	restMinutes          = 15
	busyUnscheduledLimit = 2
	stressBufferMinutes  = 10
	stressedUrgentLimit  = 2
	sickReduceFactor     = 0.5
)

// planActions maps a state and the current tasks to the actions to run, in order.
func planActions(state adjustment.State, a adjustment.Analysis) []adjustment.Action {
	var actions []adjustment.Action

	switch state {
	case adjustment.StateTired:
		if a.RemainingToday > tiredRemainingLimit {
			actions = append(actions, adjustment.Action{
				Type:        adjustment.ActionPostponeTasks,
				Target:      int(math.Ceil(float64(a.RemainingToday) / 2)),
				Description: "move part of today's tasks to tomorrow",
			})
		}
		if a.TotalEstimatedMinutes > tiredEstimateLimit {
			actions = append(actions, adjustment.Action{
				Type:        adjustment.ActionReduceDuration,
				Factor:      tiredReduceFactor,
				Description: "shorten long task estimates",
			})
		}
		actions = append(actions, adjustment.Action{
			Type:        adjustment.ActionAddRest,
			Minutes:     restMinutes,
			Description: "add a rest break today",
		})

	case adjustment.StateBusy:
		if a.Urgent > 0 && a.Important > 0 {
			actions = append(actions, adjustment.Action{
				Type:        adjustment.ActionPrioritizeUrgent,
				Description: "raise urgent and important tasks to high priority",
			})
		}
		if a.Unscheduled > busyUnscheduledLimit {
			actions = append(actions, adjustment.Action{
				Type:        adjustment.ActionScheduleUnscheduled,
				Description: "fill free slots with unscheduled tasks",
			})
		}

	case adjustment.StateStressed:
		actions = append(actions, adjustment.Action{
			Type:        adjustment.ActionAddBufferTime,
			Minutes:     stressBufferMinutes,
			Description: "leave a buffer after each task",
		})
		if a.Urgent > stressedUrgentLimit {
			actions = append(actions, adjustment.Action{
				Type:        adjustment.ActionSpreadUrgentTasks,
				Description: "spread urgent tasks over the day",
			})
		}

	case adjustment.StateMotivated:
		if a.Important > 0 {
			actions = append(actions, adjustment.Action{
				Type:        adjustment.ActionAdvanceImportant,
				Description: "bring important tasks forward to today",
			})
		}
		actions = append(actions, adjustment.Action{
			Type:        adjustment.ActionOptimizeSchedule,
			Description: "put the most important work first",
		})

	case adjustment.StateSick:
		actions = append(actions,
			adjustment.Action{
				Type:        adjustment.ActionPostponeAllExceptUrgent,
				Description: "postpone everything that is not urgent",
			},
			adjustment.Action{
				Type:        adjustment.ActionReduceAllDurations,
				Factor:      sickReduceFactor,
				Description: "halve task estimates",
			},
		)
	}
	return actions
}
