package redis

import (
	"context"
	"fmt"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationStore_PushAndList(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewNotificationStore(client, 100)
	ctx := context.Background()

	target := "7f5c0e1a-1111-2222-3333-444455556666"

	require.NoError(t, store.Push(ctx, target, []byte(`{"type":"WITHDRAWAL_REQUESTED"}`)))
	require.NoError(t, store.Push(ctx, target, []byte(`{"type":"WITHDRAWAL_APPROVED"}`)))

	payloads, err := store.List(ctx, target, 10)
	require.NoError(t, err)
	require.Len(t, payloads, 2)
	// Newest first
	assert.Equal(t, []byte(`{"type":"WITHDRAWAL_APPROVED"}`), payloads[0])
	assert.Equal(t, []byte(`{"type":"WITHDRAWAL_REQUESTED"}`), payloads[1])
}

func TestNotificationStore_ListEmptyTarget(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewNotificationStore(client, 100)

	payloads, err := store.List(context.Background(), "operators", 10)
	assert.NoError(t, err)
	assert.Empty(t, payloads)
}

func TestNotificationStore_BacklogCapped(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewNotificationStore(client, 5)
	ctx := context.Background()

	for i := 0; i < 8; i++ {
		require.NoError(t, store.Push(ctx, "operators", []byte(fmt.Sprintf(`{"seq":%d}`, i))))
	}

	payloads, err := store.List(ctx, "operators", 100)
	require.NoError(t, err)
	require.Len(t, payloads, 5)
	// Oldest entries dropped, newest retained
	assert.Equal(t, []byte(`{"seq":7}`), payloads[0])
	assert.Equal(t, []byte(`{"seq":3}`), payloads[4])
}

func TestNotificationStore_TargetsIsolated(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewNotificationStore(client, 100)
	ctx := context.Background()

	require.NoError(t, store.Push(ctx, "account-a", []byte(`{"n":1}`)))
	require.NoError(t, store.Push(ctx, "operators", []byte(`{"n":2}`)))

	payloads, err := store.List(ctx, "account-a", 10)
	require.NoError(t, err)
	require.Len(t, payloads, 1)
	assert.Equal(t, []byte(`{"n":1}`), payloads[0])
}
