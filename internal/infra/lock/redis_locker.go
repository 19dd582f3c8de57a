// Package lock provides the per-user onboarding lock used while a profile is created.
package lock

import (
	"context"
	"log/slog"
	"time"

	"unifeast/config"
	"unifeast/internal/domain/lifecycle"
	"unifeast/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	keyPrefix     = "unifeast:lock:"
	retryInterval = 50 * time.Millisecond
)

// releaseScript deletes the key only while it still holds the caller's token,
// so a holder whose lock expired cannot release a successor's lock.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// redisLocker implements service.Locker with SET NX PX.
type redisLocker struct {
	client *redis.Client
	ttl    time.Duration
	wait   time.Duration
}

// NewRedisLocker creates a locker whose locks expire after ttl and whose Acquire gives up after wait.
func NewRedisLocker(client *redis.Client, ttl, wait time.Duration) service.Locker {
	return &redisLocker{
		client: client,
		ttl:    ttl,
		wait:   wait,
	}
}

func (l *redisLocker) Acquire(ctx context.Context, key string) (func(context.Context) error, error) {
	redisKey := keyPrefix + key
	token := uuid.NewString()

	deadline := time.Now().Add(l.wait)
	for {
		ok, err := l.client.SetNX(ctx, redisKey, token, l.ttl).Result()
		if err != nil {
			return nil, errors.Wrap(err, "failed to acquire lock")
		}
		if ok {
			return func(releaseCtx context.Context) error {
				if err := releaseScript.Run(releaseCtx, l.client, []string{redisKey}, token).Err(); err != nil {
					return errors.Wrap(err, "failed to release lock")
				}

				return nil
			}, nil
		}

		if time.Now().After(deadline) {
			return nil, service.ErrLockNotAcquired
		}

		select {
		case <-ctx.Done():
			return nil, errors.WithStack(ctx.Err())
		case <-time.After(retryInterval):
		}
	}
}

// noopLocker is used when Redis is not configured; conditional creates still prevent overwrites.
type noopLocker struct{}

func (noopLocker) Acquire(context.Context, string) (func(context.Context) error, error) {
	return func(context.Context) error { return nil }, nil
}

// NewNoopLocker returns a locker that never blocks.
func NewNoopLocker() service.Locker {
	return noopLocker{}
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the onboarding locker selected by configuration.
func New(params Params) service.Locker {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis not configured, onboarding lock disabled")

		return NewNoopLocker()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return NewRedisLocker(client, cfg.LockTTL, cfg.LockWait)
}
