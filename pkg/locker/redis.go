package locker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"task-scheduler/pkg/log"
)

// releaseScript deletes the key only when it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`)

// RedisConfig controls the distributed lock.
type RedisConfig struct {
	Prefix     string
	TTL        time.Duration // lock expiry if the holder dies
	RetryDelay time.Duration
	MaxWait    time.Duration
}

type redisLocker struct {
	l      log.Logger
	client redis.UniversalClient
	cfg    RedisConfig
}

// NewRedis returns a Locker backed by SET NX PX on client.
func NewRedis(l log.Logger, client redis.UniversalClient, cfg RedisConfig) Locker {
	if cfg.Prefix == "" {
		cfg.Prefix = "scheduler:lock:"
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 30 * time.Second
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = 50 * time.Millisecond
	}
	if cfg.MaxWait <= 0 {
		cfg.MaxWait = 10 * time.Second
	}
	return &redisLocker{l: l, client: client, cfg: cfg}
}

func (r *redisLocker) Lock(ctx context.Context, key string) (Unlock, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}

	ctx, cancel := context.WithTimeout(ctx, r.cfg.MaxWait)
	defer cancel()

	k := r.cfg.Prefix + key
	token := uuid.NewString()
	ticker := time.NewTicker(r.cfg.RetryDelay)
	defer ticker.Stop()

	for {
		ok, err := r.client.SetNX(ctx, k, token, r.cfg.TTL).Result()
		if err != nil && !errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, context.Canceled) {
			return nil, fmt.Errorf("acquire %s: %w", k, err)
		}
		if ok {
			var once sync.Once
			return func() {
				once.Do(func() { r.release(k, token) })
			}, nil
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %s", ErrLockTimeout, key)
		case <-ticker.C:
		}
	}
}

// release drops the key if we still own it. A failure leaves the key to expire after TTL.
func (r *redisLocker) release(key, token string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := releaseScript.Run(ctx, r.client, []string{key}, token).Err(); err != nil {
		r.l.Warnf(ctx, "locker.redis.release: key=%s: %v (expires in %s)", key, err, r.cfg.TTL)
	}
}
