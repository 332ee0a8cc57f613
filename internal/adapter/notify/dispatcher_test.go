package notify_test

import (
	"context"
	"encoding/json"
	"testing"

	"hosting-billing-portal/internal/adapter/notify"
	"hosting-billing-portal/internal/adapter/storage/redis"
	"hosting-billing-portal/internal/core/domain"
	"hosting-billing-portal/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDispatcher(t *testing.T) (*notify.Dispatcher, *redis.NotificationStore) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	store := redis.NewNotificationStore(client, 100)
	return notify.NewDispatcher(store, logger.New("error", false)), store
}

func TestDispatcher_NotifyAccount(t *testing.T) {
	dispatcher, store := newTestDispatcher(t)
	ctx := context.Background()
	accountID := uuid.New()

	n := domain.Notification{
		Type:    domain.NotifyWithdrawalApproved,
		Title:   "Withdrawal approved",
		Message: "Your withdrawal of 250 USD was approved.",
	}
	require.NoError(t, dispatcher.NotifyAccount(ctx, accountID, n))

	payloads, err := store.List(ctx, accountID.String(), 10)
	require.NoError(t, err)
	require.Len(t, payloads, 1)

	var got domain.Notification
	require.NoError(t, json.Unmarshal(payloads[0], &got))
	assert.Equal(t, domain.NotifyWithdrawalApproved, got.Type)
	assert.Equal(t, "Withdrawal approved", got.Title)
}

func TestDispatcher_NotifyOperators(t *testing.T) {
	dispatcher, store := newTestDispatcher(t)
	ctx := context.Background()

	n := domain.Notification{
		Type:    domain.NotifyWithdrawalRequested,
		Title:   "New withdrawal request",
		Message: "A customer requested a withdrawal of 250 USD.",
	}
	require.NoError(t, dispatcher.NotifyOperators(ctx, n))

	payloads, err := store.List(ctx, notify.OperatorTarget, 10)
	require.NoError(t, err)
	require.Len(t, payloads, 1)

	var got domain.Notification
	require.NoError(t, json.Unmarshal(payloads[0], &got))
	assert.Equal(t, domain.NotifyWithdrawalRequested, got.Type)
}
