package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/wayfare-app/wayfare/internal/pkg/database"
	"github.com/wayfare-app/wayfare/internal/pkg/logger"
)

const lockKeyPrefix = "payment:lock:"

// Token-checked release so an expired holder cannot delete a lock that was
// re-acquired by someone else.
const releaseScript = `
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
else
	return 0
end`

// ReferenceLock serializes reconciliation per payment reference using a
// Redis SETNX lock with a TTL. The database's conditional status updates
// remain the correctness guarantee; the lock keeps concurrent reconcilers
// from issuing duplicate gateway verify calls.
type ReferenceLock struct {
	redisClient *database.RedisClient
	ttl         time.Duration
}

// NewReferenceLock creates a per-reference lock manager
func NewReferenceLock(redisClient *database.RedisClient, ttl time.Duration) *ReferenceLock {
	if ttl == 0 {
		ttl = 30 * time.Second
	}
	return &ReferenceLock{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

// Lock attempts to acquire the reference's lock. When acquired, the returned
// release function must be called by the holder; the TTL bounds staleness if
// the holder dies first.
func (l *ReferenceLock) Lock(ctx context.Context, reference string) (func(), bool, error) {
	key := lockKeyPrefix + reference
	token := uuid.New().String()

	acquired, err := l.redisClient.SetNX(ctx, key, token, l.ttl)
	if err != nil {
		return nil, false, fmt.Errorf("failed to acquire lock for %s: %w", reference, err)
	}
	if !acquired {
		return nil, false, nil
	}

	release := func() {
		// Detached context: the lock must be released even when the
		// request context is already done.
		releaseCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if _, err := l.redisClient.Eval(releaseCtx, releaseScript, []string{key}, token); err != nil {
			logger.Warn("Failed to release reference lock",
				logger.String("reference", reference),
				logger.Err(err))
		}
	}

	return release, true, nil
}
