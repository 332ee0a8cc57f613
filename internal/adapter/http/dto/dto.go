package dto

// RegisterRequest is the request body for account registration.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email,max=254"`
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Password string `json:"password" binding:"required,min=8,max=128"`
}

// LoginRequest is the request body for account login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterResponse is the response body for successful registration.
type RegisterResponse struct {
	AccountID string `json:"account_id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Tier      string `json:"tier"`
}

// LoginResponse is the response body for successful login.
type LoginResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// TopupRequest is the request body for crediting the wallet balance.
type TopupRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}

// CreateWithdrawalRequest is the request body for requesting a withdrawal.
type CreateWithdrawalRequest struct {
	PaymentMethodID string `json:"payment_method_id" binding:"required,uuid"`
	Amount          int64  `json:"amount" binding:"required,gt=0"`
	AccountDetails  string `json:"account_details" binding:"max=500"`
}

// AddPaymentMethodRequest is the request body for registering a destination.
type AddPaymentMethodRequest struct {
	Type    string            `json:"type" binding:"required,oneof=bank crypto paypal"`
	Details map[string]string `json:"details" binding:"required,dive,keys,detail_key,endkeys,max=500"`
}

// ApproveWithdrawalRequest is the operator request body for approval.
type ApproveWithdrawalRequest struct {
	Note *string `json:"note,omitempty" binding:"omitempty,max=500"`
}

// RejectWithdrawalRequest is the operator request body for rejection.
type RejectWithdrawalRequest struct {
	Reason string `json:"reason" binding:"required,min=1,max=500"`
}

// AccountResponse is the profile view of an account.
type AccountResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	Tier      string `json:"tier"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

// BalanceResponse is the response for balance query.
type BalanceResponse struct {
	Balance            int64  `json:"balance"`
	PendingWithdrawals int64  `json:"pending_withdrawals"`
	Currency           string `json:"currency"`
}

// LimitsResponse is the response for the tier-derived withdrawal ceilings.
type LimitsResponse struct {
	Tier         string `json:"tier"`
	MinAmount    int64  `json:"min_amount"`
	MaxAmount    int64  `json:"max_amount"`
	DailyLimit   int64  `json:"daily_limit"`
	MonthlyLimit int64  `json:"monthly_limit"`
}

// PaymentMethodResponse is the redacted view of a destination.
type PaymentMethodResponse struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Label     string `json:"label"`
	CreatedAt string `json:"created_at"`
}

// WithdrawalResponse is the response body for a withdrawal request.
type WithdrawalResponse struct {
	ID             string  `json:"id"`
	AccountID      string  `json:"account_id"`
	MethodType     string  `json:"method_type"`
	Amount         int64   `json:"amount"`
	Fee            int64   `json:"fee"`
	Status         string  `json:"status"`
	AccountDetails string  `json:"account_details,omitempty"`
	OperatorNote   *string `json:"operator_note,omitempty"`
	CreatedAt      string  `json:"created_at"`
	ProcessedAt    *string `json:"processed_at,omitempty"`
}

// WithdrawalListResponse wraps a paginated withdrawal history.
type WithdrawalListResponse struct {
	Items      []WithdrawalResponse `json:"items"`
	Total      int64                `json:"total"`
	Page       int                  `json:"page"`
	PageSize   int                  `json:"page_size"`
	TotalPages int                  `json:"total_pages"`
}

// NotificationResponse is a single backlog entry.
type NotificationResponse struct {
	Type      string                 `json:"type"`
	Title     string                 `json:"title"`
	Message   string                 `json:"message"`
	Data      map[string]interface{} `json:"data,omitempty"`
	CreatedAt string                 `json:"created_at"`
}
