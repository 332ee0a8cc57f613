package redis

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
)

// NotificationStore keeps a capped backlog of in-app notifications per target,
// newest first. Targets are account UUIDs or the shared "operators" queue.
// Implements ports.NotificationStore.
type NotificationStore struct {
	client *goredis.Client
	prefix string
	cap    int64
}

// NewNotificationStore creates a Redis-backed notification backlog.
// backlogCap bounds how many entries are retained per target.
func NewNotificationStore(client *goredis.Client, backlogCap int64) *NotificationStore {
	if backlogCap <= 0 {
		backlogCap = 100
	}
	return &NotificationStore{
		client: client,
		prefix: "notifications:",
		cap:    backlogCap,
	}
}

// Push prepends a notification payload and trims the backlog to its cap.
func (s *NotificationStore) Push(ctx context.Context, target string, payload []byte) error {
	key := s.prefix + target

	pipe := s.client.TxPipeline()
	pipe.LPush(ctx, key, payload)
	pipe.LTrim(ctx, key, 0, s.cap-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("push notification: %w", err)
	}
	return nil
}

// List returns up to limit newest notifications for a target.
func (s *NotificationStore) List(ctx context.Context, target string, limit int64) ([][]byte, error) {
	if limit <= 0 || limit > s.cap {
		limit = s.cap
	}

	values, err := s.client.LRange(ctx, s.prefix+target, 0, limit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}

	payloads := make([][]byte, 0, len(values))
	for _, v := range values {
		payloads = append(payloads, []byte(v))
	}
	return payloads, nil
}
