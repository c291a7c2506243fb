package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EventType classifies a provider transaction event.
type EventType string

const (
	EventTypeDeposit     EventType = "deposit"
	EventTypeWithdrawal  EventType = "withdrawal"
	EventTypeTransferIn  EventType = "transfer_in"
	EventTypeTransferOut EventType = "transfer_out"
	EventTypeFee         EventType = "fee"
	EventTypeRefund      EventType = "refund"
	EventTypeHold        EventType = "hold"
	EventTypeRelease     EventType = "release"
)

// Valid reports whether t is a known event type.
func (t EventType) Valid() bool {
	switch t {
	case EventTypeDeposit, EventTypeWithdrawal, EventTypeTransferIn,
		EventTypeTransferOut, EventTypeFee, EventTypeRefund,
		EventTypeHold, EventTypeRelease:
		return true
	}
	return false
}

// WalletTransactionEvent is one entry in the append-only ledger of provider
// transaction events. Uniqueness holds on the external UUID, on the
// idempotency key when present, and on the provider event id when present;
// any single match marks a submission as a duplicate.
type WalletTransactionEvent struct {
	ID              uuid.UUID         `json:"id"`
	WalletID        uuid.UUID         `json:"wallet_id"`
	Provider        Provider          `json:"provider"`
	EventType       EventType         `json:"event_type"`
	Amount          decimal.Decimal   `json:"amount"`
	Currency        string            `json:"currency"`
	ProviderEventID *string           `json:"provider_event_id,omitempty"`
	IdempotencyKey  *string           `json:"-"`
	Metadata        map[string]string `json:"metadata,omitempty"`
	OccurredAt      time.Time         `json:"occurred_at"`
	CreatedAt       time.Time         `json:"created_at"`
}
