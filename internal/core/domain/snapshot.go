package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WalletBalanceSnapshot is an append-only record of a provider-reported
// balance at a point in time. Snapshots are immutable once written; duplicate
// submissions are rejected on idempotency key or provider snapshot id.
type WalletBalanceSnapshot struct {
	ID                 uuid.UUID       `json:"id"`
	WalletID           uuid.UUID       `json:"wallet_id"`
	Provider           Provider        `json:"provider"`
	Balance            decimal.Decimal `json:"balance"`
	Currency           string          `json:"currency"`
	ProviderSnapshotID *string         `json:"provider_snapshot_id,omitempty"`
	IdempotencyKey     *string         `json:"-"`
	CapturedAt         time.Time       `json:"captured_at"`
	CreatedAt          time.Time       `json:"created_at"`
}
