package postgres

import (
	"context"
	"testing"
	"time"

	"amani-wallet-core/internal/core/domain"
	"amani-wallet-core/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEvent(walletID uuid.UUID) *domain.WalletTransactionEvent {
	providerEventID := "pe-100"
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.WalletTransactionEvent{
		ID:              uuid.New(),
		WalletID:        walletID,
		Provider:        domain.ProviderFincra,
		EventType:       domain.EventTypeDeposit,
		Amount:          decimal.RequireFromString("50.00"),
		Currency:        "NGN",
		ProviderEventID: &providerEventID,
		Metadata:        map[string]string{"channel": "bank_transfer"},
		OccurredAt:      now.Add(-time.Minute),
		CreatedAt:       now,
	}
}

func eventColumnNames() []string {
	return []string{
		"id", "wallet_id", "provider", "event_type", "amount", "currency",
		"provider_event_id", "idempotency_key", "metadata", "occurred_at", "created_at",
	}
}

func eventRow(e *domain.WalletTransactionEvent) *pgxmock.Rows {
	return pgxmock.NewRows(eventColumnNames()).AddRow(
		e.ID, e.WalletID, e.Provider, e.EventType, e.Amount, e.Currency,
		e.ProviderEventID, e.IdempotencyKey, e.Metadata, e.OccurredAt, e.CreatedAt,
	)
}

func TestEventRepo_Insert(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewEventRepo(mock)
	e := newTestEvent(uuid.New())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO wallet_transaction_events").
		WithArgs(e.ID, e.WalletID, string(e.Provider), string(e.EventType),
			e.Amount, e.Currency, e.ProviderEventID, e.IdempotencyKey,
			e.Metadata, e.OccurredAt, e.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Insert(context.Background(), tx, e)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepo_Insert_ProviderEventConflict(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewEventRepo(mock)
	e := newTestEvent(uuid.New())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO wallet_transaction_events").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{
			Code:           uniqueViolationCode,
			ConstraintName: constraintEventProviderID,
		})

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Insert(context.Background(), tx, e)
	require.Error(t, err)

	target, ok := ports.IsDuplicate(err)
	require.True(t, ok)
	assert.Equal(t, ports.ConflictProviderEvent, target)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepo_GetByProviderEventID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewEventRepo(mock)
	e := newTestEvent(uuid.New())

	mock.ExpectQuery("SELECT .+ FROM wallet_transaction_events").
		WithArgs(string(e.Provider), *e.ProviderEventID).
		WillReturnRows(eventRow(e))

	result, err := repo.GetByProviderEventID(context.Background(), e.Provider, *e.ProviderEventID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, e.ID, result.ID)
	assert.True(t, e.Amount.Equal(result.Amount))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepo_GetByIdempotencyKey_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewEventRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM wallet_transaction_events WHERE idempotency_key").
		WithArgs("absent").
		WillReturnRows(pgxmock.NewRows(eventColumnNames()))

	result, err := repo.GetByIdempotencyKey(context.Background(), "absent")
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepo_ListByWallet(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewEventRepo(mock)
	walletID := uuid.New()
	e1 := newTestEvent(walletID)
	e2 := newTestEvent(walletID)
	pe2 := "pe-101"
	e2.ProviderEventID = &pe2
	e2.OccurredAt = e1.OccurredAt.Add(-time.Hour)

	rows := pgxmock.NewRows(eventColumnNames()).
		AddRow(e1.ID, e1.WalletID, e1.Provider, e1.EventType, e1.Amount, e1.Currency,
			e1.ProviderEventID, e1.IdempotencyKey, e1.Metadata, e1.OccurredAt, e1.CreatedAt).
		AddRow(e2.ID, e2.WalletID, e2.Provider, e2.EventType, e2.Amount, e2.Currency,
			e2.ProviderEventID, e2.IdempotencyKey, e2.Metadata, e2.OccurredAt, e2.CreatedAt)

	mock.ExpectQuery("SELECT .+ FROM wallet_transaction_events WHERE wallet_id .+ ORDER BY occurred_at DESC").
		WithArgs(walletID, 10, 0).
		WillReturnRows(rows)

	result, err := repo.ListByWallet(context.Background(), walletID, 10, 0)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, e1.ID, result[0].ID)
	assert.Equal(t, e2.ID, result[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
