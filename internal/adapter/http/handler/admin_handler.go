package handler

import (
	"hosting-billing-portal/internal/adapter/http/dto"
	"hosting-billing-portal/internal/core/domain"
	"hosting-billing-portal/internal/core/ports"
	"hosting-billing-portal/pkg/apperror"
	"hosting-billing-portal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminHandler handles operator-only withdrawal review endpoints.
type AdminHandler struct {
	withdrawalSvc ports.WithdrawalService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(withdrawalSvc ports.WithdrawalService) *AdminHandler {
	return &AdminHandler{withdrawalSvc: withdrawalSvc}
}

// ListWithdrawals handles GET /api/v1/admin/withdrawals.
// Without filters it returns all requests, newest first.
func (h *AdminHandler) ListWithdrawals(c *gin.Context) {
	page, pageSize := parsePaging(c)
	params := ports.WithdrawalListParams{
		Page:     page,
		PageSize: pageSize,
	}
	if s := c.Query("status"); s != "" {
		status := domain.WithdrawalStatus(s)
		if !domain.ValidWithdrawalStatus(status) {
			response.Error(c, apperror.Validation("unknown withdrawal status"))
			return
		}
		params.Status = &status
	}
	if a := c.Query("account_id"); a != "" {
		accountID, err := uuid.Parse(a)
		if err != nil {
			response.Error(c, apperror.Validation("account_id must be a valid UUID"))
			return
		}
		params.AccountID = &accountID
	}

	items, total, err := h.withdrawalSvc.History(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toWithdrawalList(items, total, page, pageSize))
}

// Approve handles POST /api/v1/admin/withdrawals/:id/approve.
func (h *AdminHandler) Approve(c *gin.Context) {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("id must be a valid UUID"))
		return
	}

	var req dto.ApproveWithdrawalRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, apperror.Validation(err.Error()))
			return
		}
		dto.SanitizeStruct(&req)
	}

	result, err := h.withdrawalSvc.Approve(c.Request.Context(), requestID, req.Note)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toWithdrawalResponse(result))
}

// Reject handles POST /api/v1/admin/withdrawals/:id/reject.
func (h *AdminHandler) Reject(c *gin.Context) {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("id must be a valid UUID"))
		return
	}

	var req dto.RejectWithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	result, err := h.withdrawalSvc.Reject(c.Request.Context(), requestID, req.Reason)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toWithdrawalResponse(result))
}
