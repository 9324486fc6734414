package usecase

import (
	"task-scheduler/internal/adjustment"
	"task-scheduler/internal/model"
)

func analyze(tasks []model.Task, today string, nowHour int) adjustment.Analysis {
	a := adjustment.Analysis{Total: len(tasks)}
	for _, t := range tasks {
		if t.Date == today {
			a.Today++
			if isRemaining(t, nowHour) {
				a.RemainingToday++
			}
		}
		switch t.Quadrant {
		case model.QuadrantUrgentImportant:
			a.Urgent++
		case model.QuadrantImportant:
			a.Important++
		}
		if t.Date != "" && t.Date < today {
			a.Overdue++
		}
		if t.Time == "" {
			a.Unscheduled++
		}
		a.TotalEstimatedMinutes += t.Duration()
	}
	return a
}

// isRemaining reports whether a task of today still lies ahead: untimed, or starting in a later hour.
func isRemaining(t model.Task, nowHour int) bool {
	start, ok := t.Start()
	return !ok || start.Hour() > nowHour
}
