package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// PaymentMethodType identifies a withdrawal destination kind.
type PaymentMethodType string

const (
	MethodBank   PaymentMethodType = "bank"
	MethodCrypto PaymentMethodType = "crypto"
	MethodPayPal PaymentMethodType = "paypal"
)

// requiredMethodFields is the per-type contract for method details.
var requiredMethodFields = map[PaymentMethodType][]string{
	MethodBank:   {"account_number", "bank_name", "account_holder"},
	MethodCrypto: {"wallet_address", "network"},
	MethodPayPal: {"email"},
}

// withdrawalFeeBasisPoints holds the fee rate per destination type.
var withdrawalFeeBasisPoints = map[PaymentMethodType]int64{
	MethodBank:   200, // 2%
	MethodCrypto: 100, // 1%
	MethodPayPal: 300, // 3%
}

// Valid reports whether the method type is supported.
func (t PaymentMethodType) Valid() bool {
	_, ok := requiredMethodFields[t]
	return ok
}

// RequiredFields returns the detail fields a method of this type must carry.
func (t PaymentMethodType) RequiredFields() []string {
	return requiredMethodFields[t]
}

// FeeBasisPoints returns the withdrawal fee rate for this destination type.
func (t PaymentMethodType) FeeBasisPoints() int64 {
	return withdrawalFeeBasisPoints[t]
}

// WithdrawalFee computes the fee for a withdrawal over the given destination.
// The fee is informational at reservation time; the full amount is reserved
// and the fee is netted at settlement. Integer division truncates toward
// zero, rounding for display happens at the presentation layer.
func WithdrawalFee(amount int64, t PaymentMethodType) int64 {
	return amount * t.FeeBasisPoints() / 10000
}

// ValidateMethodDetails checks the per-type required-field contract.
// Returns the first missing or empty field name, or "" when complete.
func ValidateMethodDetails(t PaymentMethodType, details map[string]string) (string, bool) {
	for _, field := range requiredMethodFields[t] {
		if details[field] == "" {
			return field, false
		}
	}
	return "", true
}

// PaymentMethod is a withdrawal destination owned by one account.
// Details are sensitive and never exposed on list operations; methods are
// immutable except for deactivation.
type PaymentMethod struct {
	ID        uuid.UUID         `json:"id"`
	AccountID uuid.UUID         `json:"account_id"`
	Type      PaymentMethodType `json:"type"`
	Details   map[string]string `json:"-"`
	Active    bool              `json:"active"`
	CreatedAt time.Time         `json:"created_at"`
}

// Label renders a redacted, display-safe summary of the destination.
func (m *PaymentMethod) Label() string {
	switch m.Type {
	case MethodBank:
		return fmt.Sprintf("%s %s", m.Details["bank_name"], maskTail(m.Details["account_number"]))
	case MethodCrypto:
		return fmt.Sprintf("%s %s", m.Details["network"], maskTail(m.Details["wallet_address"]))
	case MethodPayPal:
		return maskEmail(m.Details["email"])
	}
	return string(m.Type)
}

// maskTail keeps the last four characters of an identifier.
func maskTail(s string) string {
	if len(s) <= 4 {
		return "****"
	}
	return "****" + s[len(s)-4:]
}

// maskEmail keeps the first character and the domain.
func maskEmail(s string) string {
	for i, r := range s {
		if r == '@' {
			if i == 0 {
				return "***" + s[i:]
			}
			return s[:1] + "***" + s[i:]
		}
	}
	return "***"
}
