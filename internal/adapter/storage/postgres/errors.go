package postgres

import (
	"errors"

	"amani-wallet-core/internal/core/ports"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error code for unique_violation.
const uniqueViolationCode = "23505"

// Constraint names from migrations/001_wallet_registry.sql.
const (
	constraintRegistryIdempotencyKey = "uq_wallet_registry_idempotency_key"
	constraintRegistryNaturalKey     = "uq_wallet_registry_natural_key"
	constraintSnapshotIdempotencyKey = "uq_balance_snapshots_idempotency_key"
	constraintSnapshotProviderID     = "uq_balance_snapshots_provider_snapshot"
	constraintEventIdempotencyKey    = "uq_transaction_events_idempotency_key"
	constraintEventProviderID        = "uq_transaction_events_provider_event"
)

// asDuplicate reports whether err is a unique-constraint violation and, if
// so, returns it as a tagged ports.DuplicateError. Services recover from
// DuplicateError by re-reading the winning row, so this is the only place
// that inspects driver error codes.
func asDuplicate(err error) (*ports.DuplicateError, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolationCode {
		return nil, false
	}

	switch pgErr.ConstraintName {
	case constraintRegistryIdempotencyKey, constraintSnapshotIdempotencyKey, constraintEventIdempotencyKey:
		return &ports.DuplicateError{Target: ports.ConflictIdempotencyKey}, true
	case constraintRegistryNaturalKey:
		return &ports.DuplicateError{Target: ports.ConflictOwnerProviderAcct}, true
	case constraintSnapshotProviderID:
		return &ports.DuplicateError{Target: ports.ConflictProviderSnapshot}, true
	case constraintEventProviderID:
		return &ports.DuplicateError{Target: ports.ConflictProviderEvent}, true
	}

	// Primary keys and any unique index added later fall back to external_id.
	return &ports.DuplicateError{Target: ports.ConflictExternalID}, true
}
