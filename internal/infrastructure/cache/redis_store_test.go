package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client), mr
}

func TestRedisStoreGetSet(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestRedisStore(t)

	_, ok, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "otp:phone:998901234567", "123456", 4*time.Minute))
	value, ok, err := store.Get(ctx, "otp:phone:998901234567")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "123456", value)
	assert.Equal(t, 4*time.Minute, mr.TTL("otp:phone:998901234567"))

	mr.FastForward(5 * time.Minute)
	_, ok, err = store.Get(ctx, "otp:phone:998901234567")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisStoreCompareAndDelete(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestRedisStore(t)
	require.NoError(t, store.Set(ctx, "k", "123456", time.Minute))

	removed, err := store.CompareAndDelete(ctx, "k", "654321")
	require.NoError(t, err)
	assert.False(t, removed)
	assert.True(t, mr.Exists("k"))

	removed, err = store.CompareAndDelete(ctx, "k", "123456")
	require.NoError(t, err)
	assert.True(t, removed)
	assert.False(t, mr.Exists("k"))

	removed, err = store.CompareAndDelete(ctx, "absent", "123456")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestRedisStorePropagatesErrors(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestRedisStore(t)
	mr.Close()

	_, _, err := store.Get(ctx, "k")
	assert.Error(t, err)
	assert.Error(t, store.Ping(ctx))
}
