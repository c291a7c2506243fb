package service

import (
	"context"
	"fmt"
	"time"

	"amani-wallet-core/internal/core/domain"
	"amani-wallet-core/internal/core/ports"
	"amani-wallet-core/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// SnapshotServiceImpl implements ports.BalanceSnapshotService. Snapshots are
// append-only observations of provider-reported balances; recording the same
// observation twice yields the first stored row.
type SnapshotServiceImpl struct {
	snapshots  ports.BalanceSnapshotRepository
	registry   ports.WalletRegistryRepository
	transactor ports.DBTransactor
	auditSvc   ports.AuditService
	log        zerolog.Logger
}

// NewSnapshotService creates a new SnapshotServiceImpl.
func NewSnapshotService(
	snapshots ports.BalanceSnapshotRepository,
	registry ports.WalletRegistryRepository,
	transactor ports.DBTransactor,
	auditSvc ports.AuditService,
	log zerolog.Logger,
) *SnapshotServiceImpl {
	return &SnapshotServiceImpl{
		snapshots:  snapshots,
		registry:   registry,
		transactor: transactor,
		auditSvc:   auditSvc,
		log:        log,
	}
}

// RecordSnapshot stores a provider-reported balance observation.
func (s *SnapshotServiceImpl) RecordSnapshot(ctx context.Context, req ports.RecordSnapshotRequest) (*domain.WalletBalanceSnapshot, error) {
	if err := validateSnapshotRequest(req); err != nil {
		return nil, err
	}

	wallet, err := s.registry.GetByID(ctx, req.WalletID)
	if err != nil {
		return nil, apperror.ErrStoreUnavailable(fmt.Errorf("get wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrNotFound("wallet")
	}

	if req.IdempotencyKey != nil {
		existing, err := s.snapshots.GetByIdempotencyKey(ctx, *req.IdempotencyKey)
		if err != nil {
			return nil, apperror.ErrStoreUnavailable(fmt.Errorf("idempotency lookup: %w", err))
		}
		if existing != nil {
			s.logDuplicate(existing, ports.ConflictIdempotencyKey)
			return existing, nil
		}
	}

	if req.ProviderSnapshotID != nil {
		existing, err := s.snapshots.GetByProviderSnapshotID(ctx, req.Provider, *req.ProviderSnapshotID)
		if err != nil {
			return nil, apperror.ErrStoreUnavailable(fmt.Errorf("provider snapshot lookup: %w", err))
		}
		if existing != nil {
			s.logDuplicate(existing, ports.ConflictProviderSnapshot)
			return existing, nil
		}
	}

	now := time.Now().UTC()
	snap := &domain.WalletBalanceSnapshot{
		ID:                 uuid.New(),
		WalletID:           req.WalletID,
		Provider:           req.Provider,
		Balance:            req.Balance,
		Currency:           req.Currency,
		ProviderSnapshotID: req.ProviderSnapshotID,
		IdempotencyKey:     req.IdempotencyKey,
		CapturedAt:         req.CapturedAt.UTC(),
		CreatedAt:          now,
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.ErrStoreUnavailable(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.snapshots.Insert(ctx, dbTx, snap); err != nil {
		if target, ok := ports.IsDuplicate(err); ok {
			_ = dbTx.Rollback(ctx)
			return s.readBack(ctx, req, target)
		}
		return nil, apperror.ErrStoreUnavailable(fmt.Errorf("insert snapshot: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.ErrStoreUnavailable(fmt.Errorf("commit tx: %w", err))
	}

	s.auditSvc.Log(ctx, &domain.AuditLog{
		ID:           uuid.New(),
		ActorID:      &wallet.OwnerID,
		Action:       domain.AuditActionSnapshotRecorded,
		ResourceType: "balance_snapshot",
		ResourceID:   snap.ID.String(),
		Details: auditDetails(map[string]interface{}{
			"wallet_id": req.WalletID.String(),
			"provider":  string(req.Provider),
			"balance":   req.Balance.String(),
			"currency":  req.Currency,
		}),
		CreatedAt: now,
	})

	s.log.Info().
		Str("snapshot_id", snap.ID.String()).
		Str("wallet_id", req.WalletID.String()).
		Str("balance", req.Balance.String()).
		Str("currency", req.Currency).
		Str("outcome", "created").
		Msg("balance snapshot recorded")

	return snap, nil
}

// readBack recovers the winning snapshot after a lost insert race, re-reading
// by idempotency key first, then provider snapshot id.
func (s *SnapshotServiceImpl) readBack(ctx context.Context, req ports.RecordSnapshotRequest, target ports.ConflictTarget) (*domain.WalletBalanceSnapshot, error) {
	if req.IdempotencyKey != nil {
		existing, err := s.snapshots.GetByIdempotencyKey(ctx, *req.IdempotencyKey)
		if err != nil {
			return nil, apperror.ErrStoreUnavailable(fmt.Errorf("read back by idempotency key: %w", err))
		}
		if existing != nil {
			s.logDuplicate(existing, target)
			return existing, nil
		}
	}

	if req.ProviderSnapshotID != nil {
		existing, err := s.snapshots.GetByProviderSnapshotID(ctx, req.Provider, *req.ProviderSnapshotID)
		if err != nil {
			return nil, apperror.ErrStoreUnavailable(fmt.Errorf("read back by provider snapshot id: %w", err))
		}
		if existing != nil {
			s.logDuplicate(existing, target)
			return existing, nil
		}
	}

	return nil, apperror.ErrStoreUnavailable(fmt.Errorf("conflicting snapshot not found after unique violation on %s", target))
}

// ListSnapshots returns a wallet's snapshots newest first.
func (s *SnapshotServiceImpl) ListSnapshots(ctx context.Context, walletID uuid.UUID, limit, offset int) ([]domain.WalletBalanceSnapshot, error) {
	limit, offset, err := normalizePagination(limit, offset)
	if err != nil {
		return nil, err
	}
	snaps, err := s.snapshots.ListByWallet(ctx, walletID, limit, offset)
	if err != nil {
		return nil, apperror.ErrStoreUnavailable(fmt.Errorf("list snapshots: %w", err))
	}
	return snaps, nil
}

// LatestSnapshot returns the most recently captured snapshot for a wallet.
func (s *SnapshotServiceImpl) LatestSnapshot(ctx context.Context, walletID uuid.UUID) (*domain.WalletBalanceSnapshot, error) {
	snap, err := s.snapshots.LatestByWallet(ctx, walletID)
	if err != nil {
		return nil, apperror.ErrStoreUnavailable(fmt.Errorf("latest snapshot: %w", err))
	}
	if snap == nil {
		return nil, apperror.ErrNotFound("balance snapshot")
	}
	return snap, nil
}

func (s *SnapshotServiceImpl) logDuplicate(snap *domain.WalletBalanceSnapshot, target ports.ConflictTarget) {
	s.log.Info().
		Str("snapshot_id", snap.ID.String()).
		Str("wallet_id", snap.WalletID.String()).
		Str("matched_by", string(target)).
		Str("outcome", "duplicate").
		Msg("balance snapshot replayed")
}

func validateSnapshotRequest(req ports.RecordSnapshotRequest) error {
	if req.WalletID == uuid.Nil {
		return apperror.Validation("wallet_id is required")
	}
	if !req.Provider.Valid() {
		return apperror.Validation(fmt.Sprintf("unknown provider %q", req.Provider))
	}
	if len(req.Currency) != 3 {
		return apperror.Validation("currency must be a 3-letter code")
	}
	if req.CapturedAt.IsZero() {
		return apperror.Validation("captured_at is required")
	}
	if req.IdempotencyKey != nil && *req.IdempotencyKey == "" {
		return apperror.Validation("idempotency_key must not be empty when supplied")
	}
	if req.ProviderSnapshotID != nil && *req.ProviderSnapshotID == "" {
		return apperror.Validation("provider_snapshot_id must not be empty when supplied")
	}
	return nil
}

// normalizePagination applies list defaults and bounds. A zero limit selects
// the default page size; negatives are rejected before touching the store.
func normalizePagination(limit, offset int) (int, int, error) {
	if limit < 0 {
		return 0, 0, apperror.Validation("limit must not be negative")
	}
	if offset < 0 {
		return 0, 0, apperror.Validation("offset must not be negative")
	}
	if limit == 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return limit, offset, nil
}
