package locker

import "errors"

var (
	ErrLockTimeout = errors.New("timed out waiting for lock")
	ErrEmptyKey    = errors.New("lock key is empty")
)
