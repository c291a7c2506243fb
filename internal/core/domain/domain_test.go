package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProvider_Valid(t *testing.T) {
	valid := []Provider{ProviderFincra, ProviderPaystack, ProviderFlutterwave, ProviderLNbits}
	for _, p := range valid {
		assert.True(t, p.Valid(), "expected %s to be valid", p)
	}

	assert.False(t, Provider("").Valid())
	assert.False(t, Provider("stripe").Valid())
	assert.False(t, Provider("FINCRA").Valid(), "provider values are lowercase")
}

func TestEventType_Valid(t *testing.T) {
	valid := []EventType{
		EventTypeDeposit, EventTypeWithdrawal, EventTypeTransferIn, EventTypeTransferOut,
		EventTypeFee, EventTypeRefund, EventTypeHold, EventTypeRelease,
	}
	for _, et := range valid {
		assert.True(t, et.Valid(), "expected %s to be valid", et)
	}

	assert.False(t, EventType("").Valid())
	assert.False(t, EventType("chargeback").Valid())
	assert.False(t, EventType("Deposit").Valid())
}
