package domain

import (
	"time"

	"github.com/google/uuid"
)

// Provider identifies the external payment provider backing a wallet.
type Provider string

const (
	ProviderFincra      Provider = "fincra"
	ProviderPaystack    Provider = "paystack"
	ProviderFlutterwave Provider = "flutterwave"
	ProviderLNbits      Provider = "lnbits"
)

// Valid reports whether p is a known provider.
func (p Provider) Valid() bool {
	switch p {
	case ProviderFincra, ProviderPaystack, ProviderFlutterwave, ProviderLNbits:
		return true
	}
	return false
}

// WalletRegistryEntry is a registered provider wallet owned by a user.
// At most one active entry exists per (owner, provider, provider account id)
// triple, and at most one entry per non-nil idempotency key. Entries are never
// hard-deleted; deactivation frees the natural key for a replacement.
type WalletRegistryEntry struct {
	ID                 uuid.UUID         `json:"id"`
	OwnerID            uuid.UUID         `json:"owner_id"`
	Provider           Provider          `json:"provider"`
	ProviderAccountID  string            `json:"provider_account_id"`
	ProviderCustomerID *string           `json:"provider_customer_id,omitempty"`
	IdempotencyKey     *string           `json:"-"`
	Metadata           map[string]string `json:"metadata,omitempty"`
	IsActive           bool              `json:"is_active"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
}
