package localstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreGetSetDelete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, ok, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "k", "v"))
	val, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "v", val)

	require.NoError(t, store.Delete(ctx, "k"))
	_, ok, _ = store.Get(ctx, "k")
	assert.False(t, ok)
}

func TestMemoryStoreNotifications(t *testing.T) {
	store := NewMemoryStore()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := store.Notifications(ctx)
	require.NoError(t, err)

	require.NoError(t, store.Set(ctx, "sidebarCollapsed", "true"))
	select {
	case key := <-ch:
		assert.Equal(t, "sidebarCollapsed", key)
	case <-time.After(time.Second):
		t.Fatal("no notification for Set")
	}

	require.NoError(t, store.Delete(ctx, "sidebarCollapsed"))
	select {
	case key := <-ch:
		assert.Equal(t, "sidebarCollapsed", key)
	case <-time.After(time.Second):
		t.Fatal("no notification for Delete")
	}
}

func TestMemoryStoreNotificationChannelClosesOnCancel(t *testing.T) {
	store := NewMemoryStore()
	ctx, cancel := context.WithCancel(context.Background())

	ch, err := store.Notifications(ctx)
	require.NoError(t, err)
	cancel()

	select {
	case _, open := <-ch:
		assert.False(t, open)
	case <-time.After(time.Second):
		t.Fatal("channel not closed after cancel")
	}
}
