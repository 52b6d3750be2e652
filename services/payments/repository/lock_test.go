package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wayfare-app/wayfare/internal/pkg/database"
)

func setupMiniredis(t *testing.T) (*database.RedisClient, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return &database.RedisClient{Client: client}, mr
}

func TestReferenceLock_AcquireAndRelease(t *testing.T) {
	redisClient, mr := setupMiniredis(t)
	lock := NewReferenceLock(redisClient, 30*time.Second)

	release, acquired, err := lock.Lock(context.Background(), "WF-abc")
	require.NoError(t, err)
	require.True(t, acquired)
	assert.True(t, mr.Exists("payment:lock:WF-abc"))

	release()
	assert.False(t, mr.Exists("payment:lock:WF-abc"))
}

func TestReferenceLock_SecondAcquirerBlocked(t *testing.T) {
	redisClient, _ := setupMiniredis(t)
	lock := NewReferenceLock(redisClient, 30*time.Second)

	release, acquired, err := lock.Lock(context.Background(), "WF-abc")
	require.NoError(t, err)
	require.True(t, acquired)
	defer release()

	_, acquired2, err := lock.Lock(context.Background(), "WF-abc")
	require.NoError(t, err)
	assert.False(t, acquired2)
}

func TestReferenceLock_IndependentReferences(t *testing.T) {
	redisClient, _ := setupMiniredis(t)
	lock := NewReferenceLock(redisClient, 30*time.Second)

	releaseA, acquiredA, err := lock.Lock(context.Background(), "WF-a")
	require.NoError(t, err)
	require.True(t, acquiredA)
	defer releaseA()

	releaseB, acquiredB, err := lock.Lock(context.Background(), "WF-b")
	require.NoError(t, err)
	assert.True(t, acquiredB)
	releaseB()
}

func TestReferenceLock_ReleaseDoesNotClobberNewHolder(t *testing.T) {
	redisClient, mr := setupMiniredis(t)
	lock := NewReferenceLock(redisClient, 100*time.Millisecond)

	staleRelease, acquired, err := lock.Lock(context.Background(), "WF-abc")
	require.NoError(t, err)
	require.True(t, acquired)

	// Simulate the TTL expiring while the first holder is still working.
	mr.FastForward(200 * time.Millisecond)

	release2, acquired2, err := lock.Lock(context.Background(), "WF-abc")
	require.NoError(t, err)
	require.True(t, acquired2)
	defer release2()

	// The stale holder's release must not delete the new holder's lock.
	staleRelease()
	assert.True(t, mr.Exists("payment:lock:WF-abc"))
}

func TestReferenceLock_TTLExpires(t *testing.T) {
	redisClient, mr := setupMiniredis(t)
	lock := NewReferenceLock(redisClient, time.Second)

	_, acquired, err := lock.Lock(context.Background(), "WF-abc")
	require.NoError(t, err)
	require.True(t, acquired)

	mr.FastForward(2 * time.Second)

	release2, acquired2, err := lock.Lock(context.Background(), "WF-abc")
	require.NoError(t, err)
	assert.True(t, acquired2)
	release2()
}
