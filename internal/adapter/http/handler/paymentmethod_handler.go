package handler

import (
	"time"

	"hosting-billing-portal/internal/adapter/http/dto"
	"hosting-billing-portal/internal/core/domain"
	"hosting-billing-portal/internal/core/ports"
	"hosting-billing-portal/pkg/apperror"
	"hosting-billing-portal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PaymentMethodHandler handles withdrawal-destination endpoints.
type PaymentMethodHandler struct {
	methodSvc ports.PaymentMethodService
}

// NewPaymentMethodHandler creates a new PaymentMethodHandler.
func NewPaymentMethodHandler(methodSvc ports.PaymentMethodService) *PaymentMethodHandler {
	return &PaymentMethodHandler{methodSvc: methodSvc}
}

// Add handles POST /api/v1/payment-methods.
func (h *PaymentMethodHandler) Add(c *gin.Context) {
	accountID, ok := accountFromContext(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.AddPaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeDetails(req.Details)

	method, err := h.methodSvc.Add(c.Request.Context(), accountID, domain.PaymentMethodType(req.Type), req.Details)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.PaymentMethodResponse{
		ID:        method.ID.String(),
		Type:      string(method.Type),
		Label:     method.Label(),
		CreatedAt: method.CreatedAt.Format(time.RFC3339),
	})
}

// List handles GET /api/v1/payment-methods.
func (h *PaymentMethodHandler) List(c *gin.Context) {
	accountID, ok := accountFromContext(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	methods, err := h.methodSvc.List(c.Request.Context(), accountID)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.PaymentMethodResponse, 0, len(methods))
	for _, m := range methods {
		items = append(items, dto.PaymentMethodResponse{
			ID:        m.ID.String(),
			Type:      string(m.Type),
			Label:     m.Label,
			CreatedAt: m.CreatedAt.Format(time.RFC3339),
		})
	}

	response.OK(c, items)
}

// Remove handles DELETE /api/v1/payment-methods/:id.
func (h *PaymentMethodHandler) Remove(c *gin.Context) {
	accountID, ok := accountFromContext(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	methodID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("id must be a valid UUID"))
		return
	}

	if err := h.methodSvc.Remove(c.Request.Context(), accountID, methodID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"removed": true})
}
