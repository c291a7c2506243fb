package postgres

import (
	"context"
	"errors"
	"fmt"

	"amani-wallet-core/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const eventColumns = `id, wallet_id, provider, event_type, amount, currency,
		provider_event_id, idempotency_key, metadata, occurred_at, created_at`

// EventRepo implements ports.TransactionEventRepository over the append-only
// event ledger.
type EventRepo struct {
	pool Pool
}

// NewEventRepo creates a new EventRepo.
func NewEventRepo(pool Pool) *EventRepo {
	return &EventRepo{pool: pool}
}

// Insert writes a new transaction event within a transaction. A
// unique-constraint violation is returned as a tagged ports.DuplicateError.
func (r *EventRepo) Insert(ctx context.Context, tx pgx.Tx, e *domain.WalletTransactionEvent) error {
	query := `INSERT INTO wallet_transaction_events (id, wallet_id, provider, event_type,
		amount, currency, provider_event_id, idempotency_key, metadata, occurred_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := tx.Exec(ctx, query,
		e.ID, e.WalletID, string(e.Provider), string(e.EventType),
		e.Amount, e.Currency, e.ProviderEventID, e.IdempotencyKey,
		e.Metadata, e.OccurredAt, e.CreatedAt,
	)
	if err != nil {
		if dup, ok := asDuplicate(err); ok {
			return dup
		}
		return fmt.Errorf("insert transaction event: %w", err)
	}
	return nil
}

// GetByIdempotencyKey fetches an event by its caller-supplied key.
func (r *EventRepo) GetByIdempotencyKey(ctx context.Context, key string) (*domain.WalletTransactionEvent, error) {
	query := `SELECT ` + eventColumns + ` FROM wallet_transaction_events WHERE idempotency_key = $1`
	return r.scanOne(r.pool.QueryRow(ctx, query, key), "get event by idempotency key")
}

// GetByProviderEventID fetches an event by the provider's own event id.
func (r *EventRepo) GetByProviderEventID(ctx context.Context, provider domain.Provider, eventID string) (*domain.WalletTransactionEvent, error) {
	query := `SELECT ` + eventColumns + ` FROM wallet_transaction_events
		WHERE provider = $1 AND provider_event_id = $2`
	return r.scanOne(
		r.pool.QueryRow(ctx, query, string(provider), eventID),
		"get event by provider event id",
	)
}

// ListByWallet returns events for a wallet ordered by occurred_at descending,
// paginated by limit/offset. The ordering key is the provider's business
// timestamp, not the ingestion time.
func (r *EventRepo) ListByWallet(ctx context.Context, walletID uuid.UUID, limit, offset int) ([]domain.WalletTransactionEvent, error) {
	query := `SELECT ` + eventColumns + ` FROM wallet_transaction_events
		WHERE wallet_id = $1 ORDER BY occurred_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, walletID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	events := []domain.WalletTransactionEvent{}
	for rows.Next() {
		var e domain.WalletTransactionEvent
		if err := scanEvent(rows, &e); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func (r *EventRepo) scanOne(row pgx.Row, op string) (*domain.WalletTransactionEvent, error) {
	e := &domain.WalletTransactionEvent{}
	if err := scanEvent(row, e); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return e, nil
}

func scanEvent(row pgx.Row, e *domain.WalletTransactionEvent) error {
	return row.Scan(
		&e.ID, &e.WalletID, &e.Provider, &e.EventType, &e.Amount, &e.Currency,
		&e.ProviderEventID, &e.IdempotencyKey, &e.Metadata, &e.OccurredAt, &e.CreatedAt,
	)
}
