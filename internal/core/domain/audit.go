package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited action.
type AuditAction string

const (
	AuditActionRegister          AuditAction = "REGISTER"
	AuditActionLogin             AuditAction = "LOGIN"
	AuditActionTopup             AuditAction = "TOPUP"
	AuditActionWithdrawRequest   AuditAction = "WITHDRAW_REQUEST"
	AuditActionWithdrawCancel    AuditAction = "WITHDRAW_CANCEL"
	AuditActionWithdrawApprove   AuditAction = "WITHDRAW_APPROVE"
	AuditActionWithdrawReject    AuditAction = "WITHDRAW_REJECT"
	AuditActionMethodAdd         AuditAction = "METHOD_ADD"
	AuditActionMethodRemove      AuditAction = "METHOD_REMOVE"
)

// AuditLog records a single audited back-office or customer action.
type AuditLog struct {
	ID           uuid.UUID   `json:"id"`
	AccountID    *uuid.UUID  `json:"account_id,omitempty"`
	Action       AuditAction `json:"action"`
	ResourceType string      `json:"resource_type"`
	ResourceID   string      `json:"resource_id,omitempty"`
	Details      string      `json:"details,omitempty"` // JSON string
	IPAddress    string      `json:"ip_address"`
	CreatedAt    time.Time   `json:"created_at"`
}
