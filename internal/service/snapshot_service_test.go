package service

import (
	"context"
	"testing"
	"time"

	"amani-wallet-core/internal/core/domain"
	"amani-wallet-core/internal/core/ports"
	"amani-wallet-core/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type snapshotTestDeps struct {
	svc        *SnapshotServiceImpl
	snapshots  *mocks.MockBalanceSnapshotRepository
	registry   *mocks.MockWalletRegistryRepository
	transactor *mocks.MockDBTransactor
	auditSvc   *mocks.MockAuditService
	ctrl       *gomock.Controller
}

func setupSnapshotService(t *testing.T) *snapshotTestDeps {
	ctrl := gomock.NewController(t)
	d := &snapshotTestDeps{
		snapshots:  mocks.NewMockBalanceSnapshotRepository(ctrl),
		registry:   mocks.NewMockWalletRegistryRepository(ctrl),
		transactor: mocks.NewMockDBTransactor(ctrl),
		auditSvc:   mocks.NewMockAuditService(ctrl),
		ctrl:       ctrl,
	}
	d.svc = NewSnapshotService(d.snapshots, d.registry, d.transactor, d.auditSvc, newTestLogger())
	return d
}

func validSnapshotRequest(walletID uuid.UUID) ports.RecordSnapshotRequest {
	return ports.RecordSnapshotRequest{
		WalletID:   walletID,
		Provider:   domain.ProviderFincra,
		Balance:    decimal.RequireFromString("1250.75"),
		Currency:   "NGN",
		CapturedAt: time.Now().UTC(),
	}
}

func TestSnapshotService_RecordSnapshot_Success(t *testing.T) {
	d := setupSnapshotService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	walletID := uuid.New()
	tx := &mockTx{}

	req := validSnapshotRequest(walletID)
	req.IdempotencyKey = strPtr("snap-key-1")

	d.registry.EXPECT().GetByID(ctx, walletID).
		Return(&domain.WalletRegistryEntry{ID: walletID, OwnerID: uuid.New(), IsActive: true}, nil)
	d.snapshots.EXPECT().GetByIdempotencyKey(ctx, "snap-key-1").Return(nil, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.snapshots.EXPECT().Insert(ctx, tx, gomock.Any()).Return(nil)
	d.auditSvc.EXPECT().Log(ctx, gomock.Any())

	snap, err := d.svc.RecordSnapshot(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, walletID, snap.WalletID)
	assert.True(t, snap.Balance.Equal(decimal.RequireFromString("1250.75")))
	assert.Equal(t, "NGN", snap.Currency)
}

func TestSnapshotService_RecordSnapshot_WalletNotFound(t *testing.T) {
	d := setupSnapshotService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	walletID := uuid.New()

	d.registry.EXPECT().GetByID(ctx, walletID).Return(nil, nil)

	_, err := d.svc.RecordSnapshot(ctx, validSnapshotRequest(walletID))
	assertAppCode(t, err, "REG_001")
}

func TestSnapshotService_RecordSnapshot_ProviderSnapshotReplay(t *testing.T) {
	d := setupSnapshotService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	walletID := uuid.New()
	existing := &domain.WalletBalanceSnapshot{
		ID:       uuid.New(),
		WalletID: walletID,
		Provider: domain.ProviderPaystack,
		Balance:  decimal.RequireFromString("90.00"),
		Currency: "GHS",
	}

	req := validSnapshotRequest(walletID)
	req.Provider = domain.ProviderPaystack
	req.Currency = "GHS"
	req.ProviderSnapshotID = strPtr("ps-snap-7")

	d.registry.EXPECT().GetByID(ctx, walletID).
		Return(&domain.WalletRegistryEntry{ID: walletID, IsActive: true}, nil)
	d.snapshots.EXPECT().GetByProviderSnapshotID(ctx, domain.ProviderPaystack, "ps-snap-7").Return(existing, nil)

	snap, err := d.svc.RecordSnapshot(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, existing.ID, snap.ID)
}

func TestSnapshotService_RecordSnapshot_LostRace(t *testing.T) {
	d := setupSnapshotService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	walletID := uuid.New()
	tx := &mockTx{}
	winner := &domain.WalletBalanceSnapshot{ID: uuid.New(), WalletID: walletID}

	req := validSnapshotRequest(walletID)
	req.IdempotencyKey = strPtr("snap-key-2")

	d.registry.EXPECT().GetByID(ctx, walletID).
		Return(&domain.WalletRegistryEntry{ID: walletID, IsActive: true}, nil)
	d.snapshots.EXPECT().GetByIdempotencyKey(ctx, "snap-key-2").Return(nil, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.snapshots.EXPECT().Insert(ctx, tx, gomock.Any()).
		Return(&ports.DuplicateError{Target: ports.ConflictIdempotencyKey})
	d.snapshots.EXPECT().GetByIdempotencyKey(ctx, "snap-key-2").Return(winner, nil)

	snap, err := d.svc.RecordSnapshot(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, winner.ID, snap.ID)
}

func TestSnapshotService_RecordSnapshot_NegativeBalanceAllowed(t *testing.T) {
	d := setupSnapshotService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	walletID := uuid.New()
	tx := &mockTx{}

	// Providers can report overdrawn balances; they are stored as observed.
	req := validSnapshotRequest(walletID)
	req.Balance = decimal.RequireFromString("-42.10")

	d.registry.EXPECT().GetByID(ctx, walletID).
		Return(&domain.WalletRegistryEntry{ID: walletID, IsActive: true}, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.snapshots.EXPECT().Insert(ctx, tx, gomock.Any()).Return(nil)
	d.auditSvc.EXPECT().Log(ctx, gomock.Any())

	snap, err := d.svc.RecordSnapshot(ctx, req)
	require.NoError(t, err)
	assert.True(t, snap.Balance.IsNegative())
}

func TestSnapshotService_RecordSnapshot_Validation(t *testing.T) {
	d := setupSnapshotService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	walletID := uuid.New()

	bad := validSnapshotRequest(walletID)
	bad.Currency = "NAIRA"
	_, err := d.svc.RecordSnapshot(ctx, bad)
	assertAppCode(t, err, "VAL_001")

	bad = validSnapshotRequest(walletID)
	bad.CapturedAt = time.Time{}
	_, err = d.svc.RecordSnapshot(ctx, bad)
	assertAppCode(t, err, "VAL_001")
}

func TestSnapshotService_ListSnapshots_RejectsNegativePagination(t *testing.T) {
	d := setupSnapshotService(t)
	defer d.ctrl.Finish()

	_, err := d.svc.ListSnapshots(context.Background(), uuid.New(), -1, 0)
	assertAppCode(t, err, "VAL_001")

	_, err = d.svc.ListSnapshots(context.Background(), uuid.New(), 10, -5)
	assertAppCode(t, err, "VAL_001")
}

func TestSnapshotService_ListSnapshots_DefaultLimit(t *testing.T) {
	d := setupSnapshotService(t)
	defer d.ctrl.Finish()

	walletID := uuid.New()
	d.snapshots.EXPECT().ListByWallet(gomock.Any(), walletID, defaultListLimit, 0).
		Return([]domain.WalletBalanceSnapshot{}, nil)

	_, err := d.svc.ListSnapshots(context.Background(), walletID, 0, 0)
	require.NoError(t, err)
}

func TestSnapshotService_LatestSnapshot_NotFound(t *testing.T) {
	d := setupSnapshotService(t)
	defer d.ctrl.Finish()

	walletID := uuid.New()
	d.snapshots.EXPECT().LatestByWallet(gomock.Any(), walletID).Return(nil, nil)

	_, err := d.svc.LatestSnapshot(context.Background(), walletID)
	assertAppCode(t, err, "REG_001")
}
