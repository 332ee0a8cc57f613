package handler

import (
	"time"

	"hosting-billing-portal/internal/adapter/http/dto"
	"hosting-billing-portal/internal/adapter/http/middleware"
	"hosting-billing-portal/internal/core/ports"
	"hosting-billing-portal/pkg/apperror"
	"hosting-billing-portal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// WalletHandler handles account profile and wallet endpoints.
type WalletHandler struct {
	walletSvc ports.WalletService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(walletSvc ports.WalletService) *WalletHandler {
	return &WalletHandler{walletSvc: walletSvc}
}

// accountFromContext extracts the authenticated account ID set by JWTAuth.
func accountFromContext(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(middleware.CtxAccountID)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

// GetProfile handles GET /api/v1/account.
func (h *WalletHandler) GetProfile(c *gin.Context) {
	accountID, ok := accountFromContext(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	account, err := h.walletSvc.GetAccount(c.Request.Context(), accountID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.AccountResponse{
		ID:        account.ID.String(),
		Email:     account.Email,
		Name:      account.Name,
		Role:      string(account.Role),
		Tier:      string(account.Tier),
		Status:    string(account.Status),
		CreatedAt: account.CreatedAt.Format(time.RFC3339),
	})
}

// GetBalance handles GET /api/v1/wallet/balance.
func (h *WalletHandler) GetBalance(c *gin.Context) {
	accountID, ok := accountFromContext(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	snapshot, err := h.walletSvc.GetBalance(c.Request.Context(), accountID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.BalanceResponse{
		Balance:            snapshot.Balance,
		PendingWithdrawals: snapshot.PendingWithdrawals,
		Currency:           snapshot.Currency,
	})
}

// GetLimits handles GET /api/v1/wallet/limits.
func (h *WalletHandler) GetLimits(c *gin.Context) {
	accountID, ok := accountFromContext(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	limits, err := h.walletSvc.GetLimits(c.Request.Context(), accountID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.LimitsResponse{
		Tier:         string(limits.Tier),
		MinAmount:    limits.Limits.MinAmount,
		MaxAmount:    limits.Limits.MaxAmount,
		DailyLimit:   limits.Limits.DailyLimit,
		MonthlyLimit: limits.Limits.MonthlyLimit,
	})
}

// Topup handles POST /api/v1/wallet/topup.
func (h *WalletHandler) Topup(c *gin.Context) {
	accountID, ok := accountFromContext(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.TopupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	snapshot, err := h.walletSvc.Topup(c.Request.Context(), accountID, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.BalanceResponse{
		Balance:            snapshot.Balance,
		PendingWithdrawals: snapshot.PendingWithdrawals,
		Currency:           snapshot.Currency,
	})
}
