package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestRedisCache_Miniredis(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	cache := NewRedisCacheFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	defer cache.Close()
	ctx := context.Background()

	require.NoError(t, cache.Ping(ctx))

	_, ok, err := cache.Get(ctx, "posts:page:1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cache.Set(ctx, "posts:page:1", `{"page":1}`, time.Minute))
	val, ok, err := cache.Get(ctx, "posts:page:1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"page":1}`, val)

	mr.FastForward(2 * time.Minute)
	_, ok, err = cache.Get(ctx, "posts:page:1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisCache_BackendError(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := NewRedisCacheFromClient(client)

	mock.ExpectGet("post:how-to").SetErr(errors.New("connection refused"))
	mock.ExpectSet("post:how-to", "v", time.Minute).SetErr(errors.New("connection refused"))

	_, ok, err := cache.Get(context.Background(), "post:how-to")
	assert.Error(t, err)
	assert.False(t, ok)

	assert.Error(t, cache.Set(context.Background(), "post:how-to", "v", time.Minute))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMemoryCache_Expiry(t *testing.T) {
	cache := NewMemoryCache()
	defer cache.Close()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k", "v", time.Minute))
	require.NoError(t, cache.Set(ctx, "forever", "v", 0))

	val, ok, _ := cache.Get(ctx, "k")
	assert.True(t, ok)
	assert.Equal(t, "v", val)

	now = now.Add(time.Minute)
	_, ok, _ = cache.Get(ctx, "k")
	assert.False(t, ok)

	_, ok, _ = cache.Get(ctx, "forever")
	assert.True(t, ok)
}

func TestMemoryCache_SweepDropsUnreadEntries(t *testing.T) {
	cache := NewMemoryCache()
	defer cache.Close()

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }
	ctx := context.Background()

	for i := 0; i < 100; i++ {
		require.NoError(t, cache.Set(ctx, fmt.Sprintf("posts:page:6:%d", i), "{}", time.Minute))
	}
	require.NoError(t, cache.Set(ctx, "forever", "v", 0))
	assert.Equal(t, 101, cache.Len())

	now = now.Add(2 * time.Minute)
	cache.sweep()
	assert.Equal(t, 1, cache.Len())
}

func TestMemoryCache_CloseStopsSweep(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	cache := NewMemoryCache()
	assert.NoError(t, cache.Close())
	assert.NoError(t, cache.Close())
}
