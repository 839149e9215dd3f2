package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySessionStoreLifecycle(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	live, err := store.Exists(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, live)

	require.NoError(t, store.Save(ctx, "sess-1", "user-1", time.Hour))
	live, err = store.Exists(ctx, "sess-1")
	require.NoError(t, err)
	assert.True(t, live)

	require.NoError(t, store.Delete(ctx, "sess-1"))
	live, err = store.Exists(ctx, "sess-1")
	require.NoError(t, err)
	assert.False(t, live)
}

func TestMemorySessionStoreExpiry(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "sess-1", "user-1", time.Millisecond))
	time.Sleep(5 * time.Millisecond)

	live, err := store.Exists(ctx, "sess-1")
	require.NoError(t, err)
	assert.False(t, live)
}

func TestPasswordHashAndCompare(t *testing.T) {
	hash, err := HashPassword("hunter22", 4)
	require.NoError(t, err)
	require.NotEqual(t, "hunter22", hash)

	assert.NoError(t, ComparePassword(hash, "hunter22"))
	assert.Error(t, ComparePassword(hash, "wrong"))
}
