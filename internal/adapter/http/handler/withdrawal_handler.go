package handler

import (
	"math"
	"strconv"
	"time"

	"hosting-billing-portal/internal/adapter/http/dto"
	"hosting-billing-portal/internal/core/domain"
	"hosting-billing-portal/internal/core/ports"
	"hosting-billing-portal/pkg/apperror"
	"hosting-billing-portal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// WithdrawalHandler handles customer withdrawal endpoints.
type WithdrawalHandler struct {
	withdrawalSvc ports.WithdrawalService
}

// NewWithdrawalHandler creates a new WithdrawalHandler.
func NewWithdrawalHandler(withdrawalSvc ports.WithdrawalService) *WithdrawalHandler {
	return &WithdrawalHandler{withdrawalSvc: withdrawalSvc}
}

func toWithdrawalResponse(w *domain.WithdrawalRequest) dto.WithdrawalResponse {
	resp := dto.WithdrawalResponse{
		ID:             w.ID.String(),
		AccountID:      w.AccountID.String(),
		MethodType:     string(w.MethodType),
		Amount:         w.Amount,
		Fee:            w.Fee,
		Status:         string(w.Status),
		AccountDetails: w.AccountDetails,
		OperatorNote:   w.OperatorNote,
		CreatedAt:      w.CreatedAt.Format(time.RFC3339),
	}
	if w.ProcessedAt != nil {
		processed := w.ProcessedAt.Format(time.RFC3339)
		resp.ProcessedAt = &processed
	}
	return resp
}

func parsePaging(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", c.DefaultQuery("limit", "20")))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}

func toWithdrawalList(items []domain.WithdrawalRequest, total int64, page, pageSize int) dto.WithdrawalListResponse {
	out := make([]dto.WithdrawalResponse, 0, len(items))
	for i := range items {
		out = append(out, toWithdrawalResponse(&items[i]))
	}
	return dto.WithdrawalListResponse{
		Items:      out,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: int(math.Ceil(float64(total) / float64(pageSize))),
	}
}

// Create handles POST /api/v1/withdrawals.
func (h *WithdrawalHandler) Create(c *gin.Context) {
	accountID, ok := accountFromContext(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.CreateWithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	methodID, err := uuid.Parse(req.PaymentMethodID)
	if err != nil {
		response.Error(c, apperror.Validation("payment_method_id must be a valid UUID"))
		return
	}

	result, err := h.withdrawalSvc.Request(c.Request.Context(), ports.CreateWithdrawalRequest{
		AccountID:       accountID,
		PaymentMethodID: methodID,
		Amount:          req.Amount,
		AccountDetails:  req.AccountDetails,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toWithdrawalResponse(result))
}

// History handles GET /api/v1/withdrawals.
func (h *WithdrawalHandler) History(c *gin.Context) {
	accountID, ok := accountFromContext(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	page, pageSize := parsePaging(c)
	params := ports.WithdrawalListParams{
		AccountID: &accountID,
		Page:      page,
		PageSize:  pageSize,
	}
	if s := c.Query("status"); s != "" {
		status := domain.WithdrawalStatus(s)
		if !domain.ValidWithdrawalStatus(status) {
			response.Error(c, apperror.Validation("unknown withdrawal status"))
			return
		}
		params.Status = &status
	}

	items, total, err := h.withdrawalSvc.History(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toWithdrawalList(items, total, page, pageSize))
}

// Get handles GET /api/v1/withdrawals/:id.
func (h *WithdrawalHandler) Get(c *gin.Context) {
	accountID, ok := accountFromContext(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("id must be a valid UUID"))
		return
	}

	result, err := h.withdrawalSvc.Get(c.Request.Context(), accountID, requestID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toWithdrawalResponse(result))
}

// Cancel handles POST /api/v1/withdrawals/:id/cancel.
func (h *WithdrawalHandler) Cancel(c *gin.Context) {
	accountID, ok := accountFromContext(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("id must be a valid UUID"))
		return
	}

	result, err := h.withdrawalSvc.Cancel(c.Request.Context(), accountID, requestID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toWithdrawalResponse(result))
}
