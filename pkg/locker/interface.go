package locker

import "context"

// Unlock releases a lock obtained from Locker.Lock. It is safe to call more than once.
type Unlock func()

// Locker serialises work per key, e.g. per user id.
type Locker interface {
	// Lock blocks until key is held or ctx is done.
	Lock(ctx context.Context, key string) (Unlock, error)
}

// UserKey is the key shared by every operation that reads a user's occupancy and writes decisions.
func UserKey(userID string) string { return "user:" + userID }
