package services

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedKeyPrefix = "revoked:"

// Revoker keeps the ids of logged out tokens until they would have expired.
type Revoker interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// NewRevoker uses Redis when a client is configured. Without one tokens
// stay valid until expiry.
func NewRevoker(rdb *redis.Client) Revoker {
	if rdb == nil {
		return NoopRevoker{}
	}
	return &RedisRevoker{rdb: rdb}
}

type RedisRevoker struct {
	rdb *redis.Client
}

func (r *RedisRevoker) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return r.rdb.Set(ctx, revokedKeyPrefix+jti, 1, ttl).Err()
}

func (r *RedisRevoker) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := r.rdb.Exists(ctx, revokedKeyPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

type NoopRevoker struct{}

func (NoopRevoker) Revoke(context.Context, string, time.Duration) error { return nil }
func (NoopRevoker) IsRevoked(context.Context, string) (bool, error)     { return false, nil }
