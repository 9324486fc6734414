package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert task")
	ErrFailedToList   = errors.New("failed to list tasks")
	ErrFailedToUpdate = errors.New("failed to update task")
	ErrNotFound       = errors.New("task not found")
	ErrEmptyUpdate    = errors.New("update has no fields")
)
