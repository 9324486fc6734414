package schedule

import "errors"

var (
	ErrMissingUserID = errors.New("user id is required")
	ErrEmptyText     = errors.New("text is empty")
)
