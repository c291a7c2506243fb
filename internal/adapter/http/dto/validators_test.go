package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// --- SanitizeStruct tests ---

func TestSanitizeStruct_TrimsWhitespace(t *testing.T) {
	req := RegisterWalletRequest{
		OwnerID:           "  3d3a4f2e-0000-0000-0000-000000000001  ",
		Provider:          " fincra ",
		ProviderAccountID: "  acct-001  ",
	}
	SanitizeStruct(&req)

	assert.Equal(t, "3d3a4f2e-0000-0000-0000-000000000001", req.OwnerID)
	assert.Equal(t, "fincra", req.Provider)
	assert.Equal(t, "acct-001", req.ProviderAccountID)
}

func TestSanitizeStruct_EscapesHTML(t *testing.T) {
	evt := "evt-<script>alert('x')</script>"
	req := IngestEventRequest{
		Provider:        "fincra",
		EventType:       "deposit",
		Amount:          "100.00",
		Currency:        "NGN",
		OccurredAt:      "2026-01-01T00:00:00Z",
		ProviderEventID: &evt,
	}
	SanitizeStruct(&req)

	assert.Contains(t, *req.ProviderEventID, "&lt;script&gt;")
	assert.NotContains(t, *req.ProviderEventID, "<script>")
}

func TestSanitizeStruct_HandlesPointerString(t *testing.T) {
	custID := "  cust-42  "
	req := RegisterWalletRequest{
		OwnerID:            "3d3a4f2e-0000-0000-0000-000000000001",
		Provider:           "paystack",
		ProviderAccountID:  "acct-002",
		ProviderCustomerID: &custID,
	}
	SanitizeStruct(&req)

	assert.Equal(t, "cust-42", *req.ProviderCustomerID)
}

func TestSanitizeStruct_NilPointerIsNoOp(t *testing.T) {
	req := RegisterWalletRequest{
		OwnerID:           "3d3a4f2e-0000-0000-0000-000000000001",
		Provider:          "paystack",
		ProviderAccountID: "acct-003",
	}
	SanitizeStruct(&req)
	assert.Nil(t, req.ProviderCustomerID)
}

func TestSanitizeStruct_NonPointerIsNoOp(t *testing.T) {
	s := "hello"
	SanitizeStruct(s) // should not panic
}

// --- Custom Validator tests ---

func TestSafeID_Valid(t *testing.T) {
	cases := []string{
		"acct-001",
		"ACCT_002",
		"a.b.c",
		"simple123",
		"ABC-def_GHI.123",
	}
	for _, tc := range cases {
		assert.True(t, safeStringRe.MatchString(tc), "expected valid: %s", tc)
	}
}

func TestSafeID_Invalid(t *testing.T) {
	cases := []string{
		"has space",
		"semi;colon",
		"quote'",
		"<tag>",
		"",
	}
	for _, tc := range cases {
		assert.False(t, safeStringRe.MatchString(tc), "expected invalid: %s", tc)
	}
}
