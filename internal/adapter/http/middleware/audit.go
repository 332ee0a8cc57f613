package middleware

import (
	"encoding/json"
	"time"

	"hosting-billing-portal/internal/core/domain"
	"hosting-billing-portal/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuditLog creates an audit middleware that logs successful write operations.
// It maps HTTP methods and route patterns to audit actions.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Only audit successful write operations (status 2xx)
		if c.Writer.Status() < 200 || c.Writer.Status() >= 300 {
			return
		}
		if c.Request.Method == "GET" || c.Request.Method == "HEAD" || c.Request.Method == "OPTIONS" {
			return
		}

		action, resourceType := mapRouteToAction(c.FullPath(), c.Request.Method)
		if action == "" {
			return
		}

		var accountID *uuid.UUID
		if aid, exists := c.Get(CtxAccountID); exists {
			if id, ok := aid.(uuid.UUID); ok {
				accountID = &id
			}
		}

		details, _ := json.Marshal(map[string]interface{}{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"status": c.Writer.Status(),
		})

		auditSvc.Log(c.Request.Context(), &domain.AuditLog{
			ID:           uuid.New(),
			AccountID:    accountID,
			Action:       action,
			ResourceType: resourceType,
			IPAddress:    c.ClientIP(),
			Details:      string(details),
			CreatedAt:    time.Now(),
		})
	}
}

func mapRouteToAction(route, method string) (domain.AuditAction, string) {
	switch {
	case route == "/api/v1/auth/register" && method == "POST":
		return domain.AuditActionRegister, "account"
	case route == "/api/v1/auth/login" && method == "POST":
		return domain.AuditActionLogin, "session"
	case route == "/api/v1/wallet/topup" && method == "POST":
		return domain.AuditActionTopup, "wallet"
	case route == "/api/v1/withdrawals" && method == "POST":
		return domain.AuditActionWithdrawRequest, "withdrawal"
	case route == "/api/v1/withdrawals/:id/cancel" && method == "POST":
		return domain.AuditActionWithdrawCancel, "withdrawal"
	case route == "/api/v1/payment-methods" && method == "POST":
		return domain.AuditActionMethodAdd, "payment_method"
	case route == "/api/v1/payment-methods/:id" && method == "DELETE":
		return domain.AuditActionMethodRemove, "payment_method"
	case route == "/api/v1/admin/withdrawals/:id/approve" && method == "POST":
		return domain.AuditActionWithdrawApprove, "withdrawal"
	case route == "/api/v1/admin/withdrawals/:id/reject" && method == "POST":
		return domain.AuditActionWithdrawReject, "withdrawal"
	}
	return "", ""
}
