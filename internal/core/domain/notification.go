package domain

import "time"

// NotificationType categorizes in-app/email notifications.
type NotificationType string

const (
	NotifyWithdrawalRequested NotificationType = "WITHDRAWAL_REQUESTED"
	NotifyWithdrawalCancelled NotificationType = "WITHDRAWAL_CANCELLED"
	NotifyWithdrawalApproved  NotificationType = "WITHDRAWAL_APPROVED"
	NotifyWithdrawalRejected  NotificationType = "WITHDRAWAL_REJECTED"
	NotifyWalletTopup         NotificationType = "WALLET_TOPUP"
)

// Notification is a single message dispatched to an account or to the
// operator role. Delivery is fire-and-forget from the workflow's view.
type Notification struct {
	Type      NotificationType       `json:"type"`
	Title     string                 `json:"title"`
	Message   string                 `json:"message"`
	Data      map[string]interface{} `json:"data,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}
