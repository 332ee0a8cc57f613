package handler

import (
	"encoding/json"
	"strconv"

	"hosting-billing-portal/internal/adapter/http/dto"
	"hosting-billing-portal/internal/adapter/notify"
	"hosting-billing-portal/internal/core/ports"
	"hosting-billing-portal/pkg/apperror"
	"hosting-billing-portal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// NotificationHandler serves the in-app notification backlog.
type NotificationHandler struct {
	store ports.NotificationStore
	log   zerolog.Logger
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(store ports.NotificationStore, log zerolog.Logger) *NotificationHandler {
	return &NotificationHandler{store: store, log: log}
}

func (h *NotificationHandler) list(c *gin.Context, target string) {
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "50"), 10, 64)
	if limit < 1 || limit > 100 {
		limit = 50
	}

	payloads, err := h.store.List(c.Request.Context(), target, limit)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}

	items := make([]dto.NotificationResponse, 0, len(payloads))
	for _, p := range payloads {
		var n dto.NotificationResponse
		if err := json.Unmarshal(p, &n); err != nil {
			h.log.Warn().Err(err).Str("target", target).Msg("skipping malformed notification payload")
			continue
		}
		items = append(items, n)
	}

	response.OK(c, items)
}

// ListOwn handles GET /api/v1/notifications — the caller's backlog.
func (h *NotificationHandler) ListOwn(c *gin.Context) {
	accountID, ok := accountFromContext(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	h.list(c, accountID.String())
}

// ListOperator handles GET /api/v1/admin/notifications — the shared operator backlog.
func (h *NotificationHandler) ListOperator(c *gin.Context) {
	h.list(c, notify.OperatorTarget)
}
