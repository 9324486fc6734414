package postgre

import (
	"fmt"
	"strings"
	"time"

	repo "task-scheduler/internal/task/repository"
)

// buildUpdateQuery builds the SET clause and args for UpdateTask.
// updated_at is always written last.
func buildUpdateQuery(opt repo.UpdateTaskOptions, now time.Time) (string, []any) {
	var sets []string
	var args []any
	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if opt.Date != nil {
		add("task_date", *opt.Date)
	}
	if opt.Time != nil {
		add("task_time", *opt.Time)
	}
	if opt.EstimatedMinutes != nil {
		add("estimated_minutes", *opt.EstimatedMinutes)
	}
	if opt.Priority != nil {
		add("priority", string(*opt.Priority))
	}
	if opt.Quadrant != nil {
		add("quadrant", *opt.Quadrant)
	}
	if opt.TimeBlockType != nil {
		add("time_block_type", string(*opt.TimeBlockType))
	}
	if opt.IsScheduled != nil {
		add("is_scheduled", *opt.IsScheduled)
	}
	if opt.Completed != nil {
		add("completed", *opt.Completed)
	}
	add("updated_at", now)

	return strings.Join(sets, ", "), args
}
