package repository

import (
	"context"

	"task-scheduler/internal/model"
)

// Repository is the task store used by the scheduling and adjustment use cases.
type Repository interface {
	TaskReader
	TaskWriter
}

// TaskReader lists a user's tasks.
type TaskReader interface {
	// ListIncompleteTasks returns every task of the user that is not completed.
	ListIncompleteTasks(ctx context.Context, userID string) ([]model.Task, error)
	// ListTasksOnOrAfter returns the user's tasks dated on or after date ("2006-01-02").
	ListTasksOnOrAfter(ctx context.Context, userID string, date string) ([]model.Task, error)
}

// TaskWriter mutates a user's tasks.
type TaskWriter interface {
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (model.Task, error)
	InsertTask(ctx context.Context, opt InsertTaskOptions) (model.Task, error)
	InsertManyTasks(ctx context.Context, opts []InsertTaskOptions) ([]model.Task, error)
}
