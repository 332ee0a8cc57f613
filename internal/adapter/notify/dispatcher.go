// Package notify dispatches workflow events to the in-app notification
// backlog and the log stream. Delivery is best-effort: the withdrawal
// workflow never fails because a notification could not be stored.
package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"hosting-billing-portal/internal/core/domain"
	"hosting-billing-portal/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// OperatorTarget is the shared backlog key for the operator role.
const OperatorTarget = "operators"

// Dispatcher implements ports.Notifier.
type Dispatcher struct {
	store ports.NotificationStore
	log   zerolog.Logger
}

// NewDispatcher creates a notification dispatcher.
func NewDispatcher(store ports.NotificationStore, log zerolog.Logger) *Dispatcher {
	return &Dispatcher{store: store, log: log}
}

// NotifyAccount delivers a notification to a single account's backlog.
func (d *Dispatcher) NotifyAccount(ctx context.Context, accountID uuid.UUID, n domain.Notification) error {
	return d.deliver(ctx, accountID.String(), n)
}

// NotifyOperators delivers a notification to the shared operator backlog.
func (d *Dispatcher) NotifyOperators(ctx context.Context, n domain.Notification) error {
	return d.deliver(ctx, OperatorTarget, n)
}

func (d *Dispatcher) deliver(ctx context.Context, target string, n domain.Notification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	if err := d.store.Push(ctx, target, payload); err != nil {
		d.log.Error().Err(err).
			Str("target", target).
			Str("type", string(n.Type)).
			Msg("Failed to store notification")
		return err
	}

	d.log.Info().
		Str("target", target).
		Str("type", string(n.Type)).
		Str("title", n.Title).
		Msg("Notification dispatched")
	return nil
}
