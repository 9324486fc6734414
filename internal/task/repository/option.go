package repository

import (
	"task-scheduler/internal/model"
	"task-scheduler/pkg/timeblock"
)

// InsertTaskOptions holds the fields of a new task.
type InsertTaskOptions struct {
	UserID           string
	CollectionID     string
	Title            string
	Description      string
	Priority         model.Priority
	Quadrant         int
	Date             string
	Time             string
	EstimatedMinutes int
	DueDate          string
	TimeBlockType    timeblock.Type
	IsScheduled      bool
}

// UpdateTaskOptions is a partial update. Only non-nil fields are written;
// a pointer to "" clears a string column.
type UpdateTaskOptions struct {
	ID     string
	UserID string

	Date             *string
	Time             *string
	EstimatedMinutes *int
	Priority         *model.Priority
	Quadrant         *int
	TimeBlockType    *timeblock.Type
	IsScheduled      *bool
	Completed        *bool
}

// IsEmpty reports whether the update writes nothing.
func (o UpdateTaskOptions) IsEmpty() bool {
	return o.Date == nil && o.Time == nil && o.EstimatedMinutes == nil && o.Priority == nil &&
		o.Quadrant == nil && o.TimeBlockType == nil && o.IsScheduled == nil && o.Completed == nil
}

// Apply copies the set fields onto t.
func (o UpdateTaskOptions) Apply(t *model.Task) {
	if o.Date != nil {
		t.Date = *o.Date
	}
	if o.Time != nil {
		t.Time = *o.Time
	}
	if o.EstimatedMinutes != nil {
		t.EstimatedMinutes = *o.EstimatedMinutes
	}
	if o.Priority != nil {
		t.Priority = *o.Priority
	}
	if o.Quadrant != nil {
		t.Quadrant = *o.Quadrant
	}
	if o.TimeBlockType != nil {
		t.TimeBlockType = *o.TimeBlockType
	}
	if o.IsScheduled != nil {
		t.IsScheduled = *o.IsScheduled
	}
	if o.Completed != nil {
		t.Completed = *o.Completed
	}
}
