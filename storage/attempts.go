package storage

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const loginAttemptPrefix = "login_attempts:"

// LoginAttempts counts failed logins per email in redis.
type LoginAttempts struct {
	client *redis.Client
}

func NewLoginAttempts(client *redis.Client) *LoginAttempts {
	return &LoginAttempts{client: client}
}

func (a *LoginAttempts) Failures(ctx context.Context, email string) (int64, error) {
	n, err := a.client.Get(ctx, loginAttemptPrefix+email).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return n, err
}

// RecordFailure increments the counter. The window starts at the first
// failure; a counter found without an expiry gets one, so a key can never
// lock an email out for good. Works on any redis version (no EXPIRE NX).
func (a *LoginAttempts) RecordFailure(ctx context.Context, email string, window time.Duration) (int64, error) {
	key := loginAttemptPrefix + email
	pipe := a.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	ttl := pipe.TTL(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}

	if incr.Val() == 1 || ttl.Val() < 0 {
		if err := a.client.Expire(ctx, key, window).Err(); err != nil {
			return incr.Val(), err
		}
	}
	return incr.Val(), nil
}

func (a *LoginAttempts) Reset(ctx context.Context, email string) error {
	return a.client.Del(ctx, loginAttemptPrefix+email).Err()
}
