package postgres

import (
	"errors"
	"testing"

	"amani-wallet-core/internal/core/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsDuplicate_KnownConstraints(t *testing.T) {
	cases := map[string]ports.ConflictTarget{
		constraintRegistryIdempotencyKey: ports.ConflictIdempotencyKey,
		constraintSnapshotIdempotencyKey: ports.ConflictIdempotencyKey,
		constraintEventIdempotencyKey:    ports.ConflictIdempotencyKey,
		constraintRegistryNaturalKey:     ports.ConflictOwnerProviderAcct,
		constraintSnapshotProviderID:     ports.ConflictProviderSnapshot,
		constraintEventProviderID:        ports.ConflictProviderEvent,
	}

	for constraint, want := range cases {
		err := &pgconn.PgError{Code: uniqueViolationCode, ConstraintName: constraint}
		dup, ok := asDuplicate(err)
		require.True(t, ok, "constraint %s", constraint)
		assert.Equal(t, want, dup.Target, "constraint %s", constraint)
	}
}

func TestAsDuplicate_UnknownConstraintFallsBackToExternalID(t *testing.T) {
	err := &pgconn.PgError{Code: uniqueViolationCode, ConstraintName: "wallet_registry_pkey"}
	dup, ok := asDuplicate(err)
	require.True(t, ok)
	assert.Equal(t, ports.ConflictExternalID, dup.Target)
}

func TestAsDuplicate_NonUniqueViolation(t *testing.T) {
	// Foreign key violation must not be absorbed as a duplicate.
	_, ok := asDuplicate(&pgconn.PgError{Code: "23503"})
	assert.False(t, ok)

	_, ok = asDuplicate(errors.New("connection refused"))
	assert.False(t, ok)

	_, ok = asDuplicate(nil)
	assert.False(t, ok)
}
