package postgres

import (
	"context"
	"errors"
	"fmt"

	"amani-wallet-core/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const snapshotColumns = `id, wallet_id, provider, balance, currency,
		provider_snapshot_id, idempotency_key, captured_at, created_at`

// SnapshotRepo implements ports.BalanceSnapshotRepository. The table is
// append-only: no update or delete statements exist in this adapter.
type SnapshotRepo struct {
	pool Pool
}

// NewSnapshotRepo creates a new SnapshotRepo.
func NewSnapshotRepo(pool Pool) *SnapshotRepo {
	return &SnapshotRepo{pool: pool}
}

// Insert writes a new balance snapshot within a transaction. A
// unique-constraint violation is returned as a tagged ports.DuplicateError.
func (r *SnapshotRepo) Insert(ctx context.Context, tx pgx.Tx, s *domain.WalletBalanceSnapshot) error {
	query := `INSERT INTO wallet_balance_snapshots (id, wallet_id, provider, balance,
		currency, provider_snapshot_id, idempotency_key, captured_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := tx.Exec(ctx, query,
		s.ID, s.WalletID, string(s.Provider), s.Balance, s.Currency,
		s.ProviderSnapshotID, s.IdempotencyKey, s.CapturedAt, s.CreatedAt,
	)
	if err != nil {
		if dup, ok := asDuplicate(err); ok {
			return dup
		}
		return fmt.Errorf("insert balance snapshot: %w", err)
	}
	return nil
}

// GetByIdempotencyKey fetches a snapshot by its caller-supplied key.
func (r *SnapshotRepo) GetByIdempotencyKey(ctx context.Context, key string) (*domain.WalletBalanceSnapshot, error) {
	query := `SELECT ` + snapshotColumns + ` FROM wallet_balance_snapshots WHERE idempotency_key = $1`
	return r.scanOne(r.pool.QueryRow(ctx, query, key), "get snapshot by idempotency key")
}

// GetByProviderSnapshotID fetches a snapshot by the provider's own id.
func (r *SnapshotRepo) GetByProviderSnapshotID(ctx context.Context, provider domain.Provider, snapshotID string) (*domain.WalletBalanceSnapshot, error) {
	query := `SELECT ` + snapshotColumns + ` FROM wallet_balance_snapshots
		WHERE provider = $1 AND provider_snapshot_id = $2`
	return r.scanOne(
		r.pool.QueryRow(ctx, query, string(provider), snapshotID),
		"get snapshot by provider snapshot id",
	)
}

// ListByWallet returns snapshots for a wallet, most recently captured first.
func (r *SnapshotRepo) ListByWallet(ctx context.Context, walletID uuid.UUID, limit, offset int) ([]domain.WalletBalanceSnapshot, error) {
	query := `SELECT ` + snapshotColumns + ` FROM wallet_balance_snapshots
		WHERE wallet_id = $1 ORDER BY captured_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, walletID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	defer rows.Close()

	snaps := []domain.WalletBalanceSnapshot{}
	for rows.Next() {
		var s domain.WalletBalanceSnapshot
		if err := scanSnapshot(rows, &s); err != nil {
			return nil, fmt.Errorf("scan snapshot: %w", err)
		}
		snaps = append(snaps, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	return snaps, nil
}

// LatestByWallet returns the most recently captured snapshot for a wallet.
func (r *SnapshotRepo) LatestByWallet(ctx context.Context, walletID uuid.UUID) (*domain.WalletBalanceSnapshot, error) {
	query := `SELECT ` + snapshotColumns + ` FROM wallet_balance_snapshots
		WHERE wallet_id = $1 ORDER BY captured_at DESC LIMIT 1`
	return r.scanOne(r.pool.QueryRow(ctx, query, walletID), "get latest snapshot")
}

func (r *SnapshotRepo) scanOne(row pgx.Row, op string) (*domain.WalletBalanceSnapshot, error) {
	s := &domain.WalletBalanceSnapshot{}
	if err := scanSnapshot(row, s); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s, nil
}

func scanSnapshot(row pgx.Row, s *domain.WalletBalanceSnapshot) error {
	return row.Scan(
		&s.ID, &s.WalletID, &s.Provider, &s.Balance, &s.Currency,
		&s.ProviderSnapshotID, &s.IdempotencyKey, &s.CapturedAt, &s.CreatedAt,
	)
}
