package adjustment

import "errors"

var (
	ErrMissingUserID  = errors.New("user id is required")
	ErrEmptyUtterance = errors.New("utterance is empty")
)
