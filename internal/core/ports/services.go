package ports

import (
	"context"
	"time"

	"amani-wallet-core/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WalletRegistryService defines the wallet registration business logic.
// Register is idempotent under arbitrary concurrency: repeated or concurrent
// calls with the same idempotency key or natural key converge to one entry.
type WalletRegistryService interface {
	Register(ctx context.Context, req RegisterWalletRequest) (*domain.WalletRegistryEntry, error)
	GetWallet(ctx context.Context, id uuid.UUID) (*domain.WalletRegistryEntry, error)
	ListWallets(ctx context.Context, ownerID uuid.UUID) ([]domain.WalletRegistryEntry, error)
	Deactivate(ctx context.Context, id uuid.UUID) (*domain.WalletRegistryEntry, error)
	UpdateMetadata(ctx context.Context, id uuid.UUID, metadata map[string]string) (*domain.WalletRegistryEntry, error)
}

// RegisterWalletRequest holds validated input for wallet registration.
type RegisterWalletRequest struct {
	OwnerID            uuid.UUID
	Provider           domain.Provider
	ProviderAccountID  string
	ProviderCustomerID *string
	IdempotencyKey     *string
	Metadata           map[string]string
}

// BalanceSnapshotService records provider-reported balances.
type BalanceSnapshotService interface {
	RecordSnapshot(ctx context.Context, req RecordSnapshotRequest) (*domain.WalletBalanceSnapshot, error)
	ListSnapshots(ctx context.Context, walletID uuid.UUID, limit, offset int) ([]domain.WalletBalanceSnapshot, error)
	LatestSnapshot(ctx context.Context, walletID uuid.UUID) (*domain.WalletBalanceSnapshot, error)
}

// RecordSnapshotRequest holds validated input for balance snapshot recording.
// When both IdempotencyKey and ProviderSnapshotID are nil, every call creates
// a new snapshot; exactly-once behaviour requires one of them.
type RecordSnapshotRequest struct {
	WalletID           uuid.UUID
	Provider           domain.Provider
	Balance            decimal.Decimal
	Currency           string
	CapturedAt         time.Time
	IdempotencyKey     *string
	ProviderSnapshotID *string
}

// TransactionEventService ingests provider transaction events into the
// append-only ledger, deduplicating on idempotency key and provider event id.
type TransactionEventService interface {
	IngestEvent(ctx context.Context, req IngestEventRequest) (*domain.WalletTransactionEvent, error)
	ListEvents(ctx context.Context, walletID uuid.UUID, limit, offset int) ([]domain.WalletTransactionEvent, error)
}

// IngestEventRequest holds validated input for event ingestion.
type IngestEventRequest struct {
	WalletID        uuid.UUID
	Provider        domain.Provider
	EventType       domain.EventType
	Amount          decimal.Decimal
	Currency        string
	OccurredAt      time.Time
	ProviderEventID *string
	IdempotencyKey  *string
	Metadata        map[string]string
}

// AuditService records audit entries for successful mutations. Delivery is
// best-effort: failures are logged and never propagated to the caller.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}
