package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"amani-wallet-core/internal/core/domain"
	"amani-wallet-core/internal/core/ports"
	"amani-wallet-core/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// RegistryServiceImpl implements ports.WalletRegistryService.
//
// Register never surfaces a unique-constraint conflict to the caller: a lost
// race is resolved by re-reading the winning row in a fresh read after the
// failed transaction has rolled back, so concurrent identical requests always
// converge to one entry.
type RegistryServiceImpl struct {
	repo       ports.WalletRegistryRepository
	transactor ports.DBTransactor
	auditSvc   ports.AuditService
	log        zerolog.Logger
}

// NewRegistryService creates a new RegistryServiceImpl.
func NewRegistryService(
	repo ports.WalletRegistryRepository,
	transactor ports.DBTransactor,
	auditSvc ports.AuditService,
	log zerolog.Logger,
) *RegistryServiceImpl {
	return &RegistryServiceImpl{
		repo:       repo,
		transactor: transactor,
		auditSvc:   auditSvc,
		log:        log,
	}
}

// Register idempotently registers a provider wallet.
func (s *RegistryServiceImpl) Register(ctx context.Context, req ports.RegisterWalletRequest) (*domain.WalletRegistryEntry, error) {
	if err := validateRegisterRequest(req); err != nil {
		return nil, err
	}

	// Step 1: replay check by idempotency key. A hit is a pure replay; no new
	// audit record is emitted.
	if req.IdempotencyKey != nil {
		existing, err := s.repo.GetByIdempotencyKey(ctx, *req.IdempotencyKey)
		if err != nil {
			return nil, apperror.ErrStoreUnavailable(fmt.Errorf("idempotency lookup: %w", err))
		}
		if existing != nil {
			s.logDuplicate(existing, ports.ConflictIdempotencyKey)
			return existing, nil
		}
	}

	// Step 2: natural-key check. First writer wins; metadata of later calls
	// is discarded, not merged.
	existing, err := s.repo.GetActiveByNaturalKey(ctx, req.OwnerID, req.Provider, req.ProviderAccountID)
	if err != nil {
		return nil, apperror.ErrStoreUnavailable(fmt.Errorf("natural key lookup: %w", err))
	}
	if existing != nil {
		s.logDuplicate(existing, ports.ConflictOwnerProviderAcct)
		return existing, nil
	}

	now := time.Now().UTC()
	entry := &domain.WalletRegistryEntry{
		ID:                 uuid.New(),
		OwnerID:            req.OwnerID,
		Provider:           req.Provider,
		ProviderAccountID:  req.ProviderAccountID,
		ProviderCustomerID: req.ProviderCustomerID,
		IdempotencyKey:     req.IdempotencyKey,
		Metadata:           req.Metadata,
		IsActive:           true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	// Step 3: attempt the insert. The unique constraints arbitrate races.
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.ErrStoreUnavailable(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.repo.Insert(ctx, dbTx, entry); err != nil {
		if target, ok := ports.IsDuplicate(err); ok {
			// A concurrent request won the race. Roll back so the re-read
			// observes the committed winner, then return it.
			_ = dbTx.Rollback(ctx)
			return s.readBack(ctx, req, target)
		}
		return nil, apperror.ErrStoreUnavailable(fmt.Errorf("insert registry entry: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.ErrStoreUnavailable(fmt.Errorf("commit tx: %w", err))
	}

	s.auditSvc.Log(ctx, &domain.AuditLog{
		ID:           uuid.New(),
		ActorID:      &req.OwnerID,
		Action:       domain.AuditActionWalletRegistered,
		ResourceType: "wallet",
		ResourceID:   entry.ID.String(),
		Details: auditDetails(map[string]interface{}{
			"owner_id":            req.OwnerID.String(),
			"provider":            string(req.Provider),
			"provider_account_id": req.ProviderAccountID,
		}),
		CreatedAt: now,
	})

	s.log.Info().
		Str("wallet_id", entry.ID.String()).
		Str("owner_id", req.OwnerID.String()).
		Str("provider", string(req.Provider)).
		Str("outcome", "created").
		Msg("wallet registered")

	return entry, nil
}

// readBack recovers the winning row after a lost insert race. It re-queries
// by the same key priority as the pre-checks: idempotency key, then active
// natural key.
func (s *RegistryServiceImpl) readBack(ctx context.Context, req ports.RegisterWalletRequest, target ports.ConflictTarget) (*domain.WalletRegistryEntry, error) {
	if req.IdempotencyKey != nil {
		existing, err := s.repo.GetByIdempotencyKey(ctx, *req.IdempotencyKey)
		if err != nil {
			return nil, apperror.ErrStoreUnavailable(fmt.Errorf("read back by idempotency key: %w", err))
		}
		if existing != nil {
			s.logDuplicate(existing, target)
			return existing, nil
		}
	}

	existing, err := s.repo.GetActiveByNaturalKey(ctx, req.OwnerID, req.Provider, req.ProviderAccountID)
	if err != nil {
		return nil, apperror.ErrStoreUnavailable(fmt.Errorf("read back by natural key: %w", err))
	}
	if existing != nil {
		s.logDuplicate(existing, target)
		return existing, nil
	}

	// The conflicting row should be visible once the losing transaction has
	// rolled back; not finding it means the store misbehaved.
	return nil, apperror.ErrStoreUnavailable(fmt.Errorf("conflicting registry row not found after unique violation on %s", target))
}

// GetWallet fetches a registry entry by id.
func (s *RegistryServiceImpl) GetWallet(ctx context.Context, id uuid.UUID) (*domain.WalletRegistryEntry, error) {
	entry, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.ErrStoreUnavailable(fmt.Errorf("get wallet: %w", err))
	}
	if entry == nil {
		return nil, apperror.ErrNotFound("wallet")
	}
	return entry, nil
}

// ListWallets returns all registry entries for an owner.
func (s *RegistryServiceImpl) ListWallets(ctx context.Context, ownerID uuid.UUID) ([]domain.WalletRegistryEntry, error) {
	if ownerID == uuid.Nil {
		return nil, apperror.Validation("owner_id is required")
	}
	entries, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, apperror.ErrStoreUnavailable(fmt.Errorf("list wallets: %w", err))
	}
	return entries, nil
}

// Deactivate soft-deactivates a wallet, freeing its natural key for a
// replacement registration.
func (s *RegistryServiceImpl) Deactivate(ctx context.Context, id uuid.UUID) (*domain.WalletRegistryEntry, error) {
	entry, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.ErrStoreUnavailable(fmt.Errorf("get wallet: %w", err))
	}
	if entry == nil {
		return nil, apperror.ErrNotFound("wallet")
	}
	if !entry.IsActive {
		return nil, apperror.ErrWalletInactive()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.ErrStoreUnavailable(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.repo.Deactivate(ctx, dbTx, id); err != nil {
		return nil, apperror.ErrStoreUnavailable(fmt.Errorf("deactivate wallet: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.ErrStoreUnavailable(fmt.Errorf("commit tx: %w", err))
	}

	now := time.Now().UTC()
	entry.IsActive = false
	entry.UpdatedAt = now

	s.auditSvc.Log(ctx, &domain.AuditLog{
		ID:           uuid.New(),
		ActorID:      &entry.OwnerID,
		Action:       domain.AuditActionWalletDeactivated,
		ResourceType: "wallet",
		ResourceID:   entry.ID.String(),
		Details: auditDetails(map[string]interface{}{
			"provider":            string(entry.Provider),
			"provider_account_id": entry.ProviderAccountID,
		}),
		CreatedAt: now,
	})

	s.log.Info().
		Str("wallet_id", id.String()).
		Msg("wallet deactivated")

	return entry, nil
}

// UpdateMetadata replaces a wallet's metadata mapping.
func (s *RegistryServiceImpl) UpdateMetadata(ctx context.Context, id uuid.UUID, metadata map[string]string) (*domain.WalletRegistryEntry, error) {
	entry, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.ErrStoreUnavailable(fmt.Errorf("get wallet: %w", err))
	}
	if entry == nil {
		return nil, apperror.ErrNotFound("wallet")
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.ErrStoreUnavailable(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.repo.UpdateMetadata(ctx, dbTx, id, metadata); err != nil {
		return nil, apperror.ErrStoreUnavailable(fmt.Errorf("update metadata: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.ErrStoreUnavailable(fmt.Errorf("commit tx: %w", err))
	}

	now := time.Now().UTC()
	entry.Metadata = metadata
	entry.UpdatedAt = now

	s.auditSvc.Log(ctx, &domain.AuditLog{
		ID:           uuid.New(),
		ActorID:      &entry.OwnerID,
		Action:       domain.AuditActionMetadataUpdated,
		ResourceType: "wallet",
		ResourceID:   entry.ID.String(),
		CreatedAt:    now,
	})

	return entry, nil
}

func (s *RegistryServiceImpl) logDuplicate(entry *domain.WalletRegistryEntry, target ports.ConflictTarget) {
	s.log.Info().
		Str("wallet_id", entry.ID.String()).
		Str("matched_by", string(target)).
		Str("outcome", "duplicate").
		Msg("wallet registration replayed")
}

func validateRegisterRequest(req ports.RegisterWalletRequest) error {
	if req.OwnerID == uuid.Nil {
		return apperror.Validation("owner_id is required")
	}
	if !req.Provider.Valid() {
		return apperror.Validation(fmt.Sprintf("unknown provider %q", req.Provider))
	}
	if req.ProviderAccountID == "" {
		return apperror.Validation("provider_account_id is required")
	}
	if req.IdempotencyKey != nil && *req.IdempotencyKey == "" {
		return apperror.Validation("idempotency_key must not be empty when supplied")
	}
	return nil
}

// auditDetails marshals audit payloads; details are best-effort like the
// audit sink itself.
func auditDetails(fields map[string]interface{}) string {
	b, err := json.Marshal(fields)
	if err != nil {
		return ""
	}
	return string(b)
}
