package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// --- SanitizeStruct tests ---

func TestSanitizeStruct_TrimsWhitespace(t *testing.T) {
	req := RegisterRequest{
		Email:    "  owner@example.com  ",
		Name:     " Site Owner ",
		Password: "  pass1234  ",
	}
	SanitizeStruct(&req)

	assert.Equal(t, "owner@example.com", req.Email)
	assert.Equal(t, "Site Owner", req.Name)
	assert.Equal(t, "pass1234", req.Password)
}

func TestSanitizeStruct_EscapesHTML(t *testing.T) {
	req := RejectWithdrawalRequest{
		Reason: "destination <script>alert('x')</script> mismatch",
	}
	SanitizeStruct(&req)

	assert.Contains(t, req.Reason, "&lt;script&gt;")
	assert.NotContains(t, req.Reason, "<script>")
}

func TestSanitizeStruct_HandlesPointerString(t *testing.T) {
	note := "  payout batch 42  "
	req := ApproveWithdrawalRequest{Note: &note}
	SanitizeStruct(&req)

	assert.Equal(t, "payout batch 42", *req.Note)
}

func TestSanitizeStruct_NilPointerIsNoOp(t *testing.T) {
	req := ApproveWithdrawalRequest{Note: nil}
	SanitizeStruct(&req)
	assert.Nil(t, req.Note)
}

func TestSanitizeStruct_NonPointerIsNoOp(t *testing.T) {
	s := "hello"
	SanitizeStruct(s) // should not panic
}

// --- SanitizeDetails tests ---

func TestSanitizeDetails(t *testing.T) {
	details := map[string]string{
		"bank_name":      "  DKB  ",
		"account_holder": "Jane <b>Doe</b>",
	}
	SanitizeDetails(details)

	assert.Equal(t, "DKB", details["bank_name"])
	assert.Equal(t, "Jane &lt;b&gt;Doe&lt;/b&gt;", details["account_holder"])
}

// --- Custom validator tests ---

func TestDetailKey_Valid(t *testing.T) {
	cases := []string{
		"account_number",
		"bank_name",
		"wallet_address",
		"email",
		"network2",
	}
	for _, tc := range cases {
		assert.True(t, detailKeyRe.MatchString(tc), "expected valid: %s", tc)
	}
}

func TestDetailKey_Invalid(t *testing.T) {
	cases := []string{
		"Account",     // uppercase
		"bank name",   // space
		"_private",    // leading underscore
		"",            // empty
		"key;DROP",    // semicolon
		"key\nvalue",  // newline
	}
	for _, tc := range cases {
		assert.False(t, detailKeyRe.MatchString(tc), "expected invalid: %s", tc)
	}
}
