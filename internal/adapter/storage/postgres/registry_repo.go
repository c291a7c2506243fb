package postgres

import (
	"context"
	"errors"
	"fmt"

	"amani-wallet-core/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const registryColumns = `id, owner_id, provider, provider_account_id, provider_customer_id,
		idempotency_key, metadata, is_active, created_at, updated_at`

// RegistryRepo implements ports.WalletRegistryRepository.
type RegistryRepo struct {
	pool Pool
}

// NewRegistryRepo creates a new RegistryRepo.
func NewRegistryRepo(pool Pool) *RegistryRepo {
	return &RegistryRepo{pool: pool}
}

// Insert writes a new registry entry within a transaction. A unique-constraint
// violation is returned as a tagged ports.DuplicateError.
func (r *RegistryRepo) Insert(ctx context.Context, tx pgx.Tx, e *domain.WalletRegistryEntry) error {
	query := `INSERT INTO wallet_registry (id, owner_id, provider, provider_account_id,
		provider_customer_id, idempotency_key, metadata, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := tx.Exec(ctx, query,
		e.ID, e.OwnerID, string(e.Provider), e.ProviderAccountID,
		e.ProviderCustomerID, e.IdempotencyKey, e.Metadata,
		e.IsActive, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		if dup, ok := asDuplicate(err); ok {
			return dup
		}
		return fmt.Errorf("insert registry entry: %w", err)
	}
	return nil
}

// GetByID fetches a registry entry by its UUID.
func (r *RegistryRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.WalletRegistryEntry, error) {
	query := `SELECT ` + registryColumns + ` FROM wallet_registry WHERE id = $1`
	return r.scanOne(r.pool.QueryRow(ctx, query, id), "get registry entry by id")
}

// GetByIdempotencyKey fetches an entry by its caller-supplied idempotency key.
func (r *RegistryRepo) GetByIdempotencyKey(ctx context.Context, key string) (*domain.WalletRegistryEntry, error) {
	query := `SELECT ` + registryColumns + ` FROM wallet_registry WHERE idempotency_key = $1`
	return r.scanOne(r.pool.QueryRow(ctx, query, key), "get registry entry by idempotency key")
}

// GetActiveByNaturalKey fetches the active entry for an
// (owner, provider, provider account id) triple.
func (r *RegistryRepo) GetActiveByNaturalKey(ctx context.Context, ownerID uuid.UUID, provider domain.Provider, providerAccountID string) (*domain.WalletRegistryEntry, error) {
	query := `SELECT ` + registryColumns + ` FROM wallet_registry
		WHERE owner_id = $1 AND provider = $2 AND provider_account_id = $3 AND is_active`
	return r.scanOne(
		r.pool.QueryRow(ctx, query, ownerID, string(provider), providerAccountID),
		"get registry entry by natural key",
	)
}

// ListByOwner returns all entries (active and deactivated) for an owner,
// newest first.
func (r *RegistryRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.WalletRegistryEntry, error) {
	query := `SELECT ` + registryColumns + ` FROM wallet_registry
		WHERE owner_id = $1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list registry entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.WalletRegistryEntry{}
	for rows.Next() {
		var e domain.WalletRegistryEntry
		if err := scanRegistryEntry(rows, &e); err != nil {
			return nil, fmt.Errorf("scan registry entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list registry entries: %w", err)
	}
	return entries, nil
}

// Deactivate clears the is_active flag. The partial natural-key index only
// covers active rows, so deactivation frees the triple for re-registration.
func (r *RegistryRepo) Deactivate(ctx context.Context, tx pgx.Tx, id uuid.UUID) error {
	query := `UPDATE wallet_registry SET is_active = FALSE, updated_at = NOW()
		WHERE id = $1 AND is_active`

	tag, err := tx.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deactivate registry entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("active registry entry not found: %s", id)
	}
	return nil
}

// UpdateMetadata replaces the metadata mapping of an entry.
func (r *RegistryRepo) UpdateMetadata(ctx context.Context, tx pgx.Tx, id uuid.UUID, metadata map[string]string) error {
	query := `UPDATE wallet_registry SET metadata = $1, updated_at = NOW() WHERE id = $2`

	tag, err := tx.Exec(ctx, query, metadata, id)
	if err != nil {
		return fmt.Errorf("update registry metadata: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("registry entry not found: %s", id)
	}
	return nil
}

func (r *RegistryRepo) scanOne(row pgx.Row, op string) (*domain.WalletRegistryEntry, error) {
	e := &domain.WalletRegistryEntry{}
	if err := scanRegistryEntry(row, e); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return e, nil
}

func scanRegistryEntry(row pgx.Row, e *domain.WalletRegistryEntry) error {
	return row.Scan(
		&e.ID, &e.OwnerID, &e.Provider, &e.ProviderAccountID, &e.ProviderCustomerID,
		&e.IdempotencyKey, &e.Metadata, &e.IsActive, &e.CreatedAt, &e.UpdatedAt,
	)
}
