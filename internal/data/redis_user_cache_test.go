package data

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fireproject/fire-engine-bridge/internal/domain/model"
	"github.com/fireproject/fire-engine-bridge/internal/testutil"
)

func TestRedisUserCache_SetGet(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	client := testutil.SetupTestRedis(t)
	defer client.Close()

	cache := NewRedisUserCache(client)
	ctx := context.Background()

	user := model.User{
		ID:           "uid-1",
		Username:     "root",
		Email:        "root@example.com",
		PasswordHash: "must-not-leak",
	}
	require.NoError(t, cache.Set(ctx, user, time.Minute))

	got, ok, err := cache.Get(ctx, "root")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "uid-1", got.ID)
	assert.Equal(t, "root", got.Username)
	assert.Empty(t, got.PasswordHash, "password hash must never round-trip through the cache")
}

func TestRedisUserCache_Miss(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	client := testutil.SetupTestRedis(t)
	defer client.Close()

	cache := NewRedisUserCache(client)

	_, ok, err := cache.Get(context.Background(), "absent-user")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisUserCache_ZeroTTLIsNoop(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	client := testutil.SetupTestRedis(t)
	defer client.Close()

	cache := NewRedisUserCache(client)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, model.User{ID: "u", Username: "uncached"}, 0))

	_, ok, err := cache.Get(ctx, "uncached")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisUserCache_EmptyUsername(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	client := testutil.SetupTestRedis(t)
	defer client.Close()

	cache := NewRedisUserCache(client)
	ctx := context.Background()

	_, _, err := cache.Get(ctx, "")
	assert.Error(t, err)
	assert.Error(t, cache.Set(ctx, model.User{}, time.Minute))
}
