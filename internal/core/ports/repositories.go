package ports

import (
	"context"
	"errors"
	"fmt"
	"time"

	"amani-wallet-core/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ConflictTarget identifies which unique constraint rejected an insert.
type ConflictTarget string

const (
	ConflictIdempotencyKey    ConflictTarget = "idempotency_key"
	ConflictOwnerProviderAcct ConflictTarget = "owner_provider_account"
	ConflictProviderSnapshot  ConflictTarget = "provider_snapshot_id"
	ConflictProviderEvent     ConflictTarget = "provider_event_id"
	ConflictExternalID        ConflictTarget = "external_id"
)

// DuplicateError reports that an insert lost to an existing row on a unique
// constraint. Store adapters translate driver-level violations into this type
// so that services never pattern-match on driver error text.
type DuplicateError struct {
	Target ConflictTarget
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate entry on %s", e.Target)
}

// IsDuplicate reports whether err carries a DuplicateError and, if so, which
// constraint it hit.
func IsDuplicate(err error) (ConflictTarget, bool) {
	var d *DuplicateError
	if errors.As(err, &d) {
		return d.Target, true
	}
	return "", false
}

// WalletRegistryRepository defines persistence for wallet registry entries.
// Lookups return nil, nil when no row matches. Insert returns a
// DuplicateError when a unique constraint rejects the row.
type WalletRegistryRepository interface {
	Insert(ctx context.Context, tx pgx.Tx, entry *domain.WalletRegistryEntry) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.WalletRegistryEntry, error)
	GetByIdempotencyKey(ctx context.Context, key string) (*domain.WalletRegistryEntry, error)
	GetActiveByNaturalKey(ctx context.Context, ownerID uuid.UUID, provider domain.Provider, providerAccountID string) (*domain.WalletRegistryEntry, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.WalletRegistryEntry, error)
	Deactivate(ctx context.Context, tx pgx.Tx, id uuid.UUID) error
	UpdateMetadata(ctx context.Context, tx pgx.Tx, id uuid.UUID, metadata map[string]string) error
}

// BalanceSnapshotRepository defines persistence for balance snapshots.
// Snapshots are append-only: there are no update or delete operations.
type BalanceSnapshotRepository interface {
	Insert(ctx context.Context, tx pgx.Tx, snap *domain.WalletBalanceSnapshot) error
	GetByIdempotencyKey(ctx context.Context, key string) (*domain.WalletBalanceSnapshot, error)
	GetByProviderSnapshotID(ctx context.Context, provider domain.Provider, snapshotID string) (*domain.WalletBalanceSnapshot, error)
	ListByWallet(ctx context.Context, walletID uuid.UUID, limit, offset int) ([]domain.WalletBalanceSnapshot, error)
	LatestByWallet(ctx context.Context, walletID uuid.UUID) (*domain.WalletBalanceSnapshot, error)
}

// TransactionEventRepository defines persistence for the append-only event
// ledger. ListByWallet orders by occurred_at descending.
type TransactionEventRepository interface {
	Insert(ctx context.Context, tx pgx.Tx, event *domain.WalletTransactionEvent) error
	GetByIdempotencyKey(ctx context.Context, key string) (*domain.WalletTransactionEvent, error)
	GetByProviderEventID(ctx context.Context, provider domain.Provider, eventID string) (*domain.WalletTransactionEvent, error)
	ListByWallet(ctx context.Context, walletID uuid.UUID, limit, offset int) ([]domain.WalletTransactionEvent, error)
}

// AuditRepository persists audit log entries.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
}

// ReplayCache is a best-effort cache of serialized responses keyed by
// idempotency key, checked before the database. A cache failure is never
// fatal; the database remains the source of truth.
type ReplayCache interface {
	Get(ctx context.Context, key string) ([]byte, error) // nil, nil on miss
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
