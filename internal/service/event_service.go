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

// replayTTL bounds how long an ingested event is replayable from the cache.
// The database unique constraints keep deduplicating after expiry.
const replayTTL = 24 * time.Hour

// EventServiceImpl implements ports.TransactionEventService. Ingestion is
// deduplicated twice: a best-effort replay cache fronts the database, and the
// unique constraints on idempotency key and provider event id arbitrate
// anything the cache misses.
type EventServiceImpl struct {
	events     ports.TransactionEventRepository
	registry   ports.WalletRegistryRepository
	transactor ports.DBTransactor
	cache      ports.ReplayCache
	auditSvc   ports.AuditService
	log        zerolog.Logger
}

// NewEventService creates a new EventServiceImpl. cache may be nil when no
// replay cache is configured.
func NewEventService(
	events ports.TransactionEventRepository,
	registry ports.WalletRegistryRepository,
	transactor ports.DBTransactor,
	cache ports.ReplayCache,
	auditSvc ports.AuditService,
	log zerolog.Logger,
) *EventServiceImpl {
	return &EventServiceImpl{
		events:     events,
		registry:   registry,
		transactor: transactor,
		cache:      cache,
		auditSvc:   auditSvc,
		log:        log,
	}
}

// IngestEvent appends a provider transaction event to the ledger, returning
// the previously stored event when the same one arrives again.
func (s *EventServiceImpl) IngestEvent(ctx context.Context, req ports.IngestEventRequest) (*domain.WalletTransactionEvent, error) {
	if err := validateIngestRequest(req); err != nil {
		return nil, err
	}

	// Fast path: replay cache. Cache errors are logged and ignored; the
	// database checks below cover every miss.
	if cached := s.cacheLookup(ctx, req.IdempotencyKey); cached != nil {
		s.logDuplicate(cached, "replay_cache")
		return cached, nil
	}

	wallet, err := s.registry.GetByID(ctx, req.WalletID)
	if err != nil {
		return nil, apperror.ErrStoreUnavailable(fmt.Errorf("get wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrNotFound("wallet")
	}

	if req.IdempotencyKey != nil {
		existing, err := s.events.GetByIdempotencyKey(ctx, *req.IdempotencyKey)
		if err != nil {
			return nil, apperror.ErrStoreUnavailable(fmt.Errorf("idempotency lookup: %w", err))
		}
		if existing != nil {
			s.logDuplicate(existing, string(ports.ConflictIdempotencyKey))
			return existing, nil
		}
	}

	if req.ProviderEventID != nil {
		existing, err := s.events.GetByProviderEventID(ctx, req.Provider, *req.ProviderEventID)
		if err != nil {
			return nil, apperror.ErrStoreUnavailable(fmt.Errorf("provider event lookup: %w", err))
		}
		if existing != nil {
			s.logDuplicate(existing, string(ports.ConflictProviderEvent))
			return existing, nil
		}
	}

	now := time.Now().UTC()
	event := &domain.WalletTransactionEvent{
		ID:              uuid.New(),
		WalletID:        req.WalletID,
		Provider:        req.Provider,
		EventType:       req.EventType,
		Amount:          req.Amount,
		Currency:        req.Currency,
		ProviderEventID: req.ProviderEventID,
		IdempotencyKey:  req.IdempotencyKey,
		Metadata:        req.Metadata,
		OccurredAt:      req.OccurredAt.UTC(),
		CreatedAt:       now,
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.ErrStoreUnavailable(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.events.Insert(ctx, dbTx, event); err != nil {
		if target, ok := ports.IsDuplicate(err); ok {
			_ = dbTx.Rollback(ctx)
			return s.readBack(ctx, req, target)
		}
		return nil, apperror.ErrStoreUnavailable(fmt.Errorf("insert event: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.ErrStoreUnavailable(fmt.Errorf("commit tx: %w", err))
	}

	s.cacheStore(ctx, req.IdempotencyKey, event)

	s.auditSvc.Log(ctx, &domain.AuditLog{
		ID:           uuid.New(),
		ActorID:      &wallet.OwnerID,
		Action:       domain.AuditActionEventIngested,
		ResourceType: "transaction_event",
		ResourceID:   event.ID.String(),
		Details: auditDetails(map[string]interface{}{
			"wallet_id":  req.WalletID.String(),
			"provider":   string(req.Provider),
			"event_type": string(req.EventType),
			"amount":     req.Amount.String(),
			"currency":   req.Currency,
		}),
		CreatedAt: now,
	})

	s.log.Info().
		Str("event_id", event.ID.String()).
		Str("wallet_id", req.WalletID.String()).
		Str("event_type", string(req.EventType)).
		Str("amount", req.Amount.String()).
		Str("currency", req.Currency).
		Str("outcome", "created").
		Msg("transaction event ingested")

	return event, nil
}

// readBack recovers the winning event after a lost insert race, re-reading by
// idempotency key first, then provider event id.
func (s *EventServiceImpl) readBack(ctx context.Context, req ports.IngestEventRequest, target ports.ConflictTarget) (*domain.WalletTransactionEvent, error) {
	if req.IdempotencyKey != nil {
		existing, err := s.events.GetByIdempotencyKey(ctx, *req.IdempotencyKey)
		if err != nil {
			return nil, apperror.ErrStoreUnavailable(fmt.Errorf("read back by idempotency key: %w", err))
		}
		if existing != nil {
			s.logDuplicate(existing, string(target))
			return existing, nil
		}
	}

	if req.ProviderEventID != nil {
		existing, err := s.events.GetByProviderEventID(ctx, req.Provider, *req.ProviderEventID)
		if err != nil {
			return nil, apperror.ErrStoreUnavailable(fmt.Errorf("read back by provider event id: %w", err))
		}
		if existing != nil {
			s.logDuplicate(existing, string(target))
			return existing, nil
		}
	}

	return nil, apperror.ErrStoreUnavailable(fmt.Errorf("conflicting event not found after unique violation on %s", target))
}

// ListEvents returns a wallet's events ordered by occurred_at descending.
func (s *EventServiceImpl) ListEvents(ctx context.Context, walletID uuid.UUID, limit, offset int) ([]domain.WalletTransactionEvent, error) {
	limit, offset, err := normalizePagination(limit, offset)
	if err != nil {
		return nil, err
	}
	events, err := s.events.ListByWallet(ctx, walletID, limit, offset)
	if err != nil {
		return nil, apperror.ErrStoreUnavailable(fmt.Errorf("list events: %w", err))
	}
	return events, nil
}

func (s *EventServiceImpl) cacheLookup(ctx context.Context, key *string) *domain.WalletTransactionEvent {
	if s.cache == nil || key == nil {
		return nil
	}
	payload, err := s.cache.Get(ctx, *key)
	if err != nil {
		s.log.Warn().Err(err).Msg("replay cache lookup failed")
		return nil
	}
	if payload == nil {
		return nil
	}
	var event domain.WalletTransactionEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		s.log.Warn().Err(err).Msg("replay cache payload corrupt")
		return nil
	}
	return &event
}

func (s *EventServiceImpl) cacheStore(ctx context.Context, key *string, event *domain.WalletTransactionEvent) {
	if s.cache == nil || key == nil {
		return
	}
	payload, err := json.Marshal(event)
	if err != nil {
		s.log.Warn().Err(err).Msg("replay cache marshal failed")
		return
	}
	if err := s.cache.Set(ctx, *key, payload, replayTTL); err != nil {
		s.log.Warn().Err(err).Msg("replay cache store failed")
	}
}

func (s *EventServiceImpl) logDuplicate(event *domain.WalletTransactionEvent, matchedBy string) {
	s.log.Info().
		Str("event_id", event.ID.String()).
		Str("wallet_id", event.WalletID.String()).
		Str("matched_by", matchedBy).
		Str("outcome", "duplicate").
		Msg("transaction event replayed")
}

func validateIngestRequest(req ports.IngestEventRequest) error {
	if req.WalletID == uuid.Nil {
		return apperror.Validation("wallet_id is required")
	}
	if !req.Provider.Valid() {
		return apperror.Validation(fmt.Sprintf("unknown provider %q", req.Provider))
	}
	if !req.EventType.Valid() {
		return apperror.Validation(fmt.Sprintf("unknown event type %q", req.EventType))
	}
	if len(req.Currency) != 3 {
		return apperror.Validation("currency must be a 3-letter code")
	}
	if req.OccurredAt.IsZero() {
		return apperror.Validation("occurred_at is required")
	}
	if req.IdempotencyKey != nil && *req.IdempotencyKey == "" {
		return apperror.Validation("idempotency_key must not be empty when supplied")
	}
	if req.ProviderEventID != nil && *req.ProviderEventID == "" {
		return apperror.Validation("provider_event_id must not be empty when supplied")
	}
	return nil
}
