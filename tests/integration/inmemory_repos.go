package integration

import (
	"context"
	"sort"
	"sync"

	"amani-wallet-core/internal/core/domain"
	"amani-wallet-core/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// The in-memory repos mirror the database schema's unique constraints: an
// insert that collides returns *ports.DuplicateError exactly like the
// postgres adapter does, so the full register/record/ingest protocol can be
// exercised without a database.

// --- In-Memory Wallet Registry Repo ---

type inMemoryRegistryRepo struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]*domain.WalletRegistryEntry
}

func newInMemoryRegistryRepo() *inMemoryRegistryRepo {
	return &inMemoryRegistryRepo{entries: make(map[uuid.UUID]*domain.WalletRegistryEntry)}
}

func (r *inMemoryRegistryRepo) Insert(ctx context.Context, tx pgx.Tx, entry *domain.WalletRegistryEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.entries {
		if entry.IdempotencyKey != nil && existing.IdempotencyKey != nil &&
			*existing.IdempotencyKey == *entry.IdempotencyKey {
			return &ports.DuplicateError{Target: ports.ConflictIdempotencyKey}
		}
		if existing.IsActive && entry.IsActive &&
			existing.OwnerID == entry.OwnerID &&
			existing.Provider == entry.Provider &&
			existing.ProviderAccountID == entry.ProviderAccountID {
			return &ports.DuplicateError{Target: ports.ConflictOwnerProviderAcct}
		}
	}
	clone := *entry
	r.entries[entry.ID] = &clone
	return nil
}

func (r *inMemoryRegistryRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.WalletRegistryEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[id]
	if !ok {
		return nil, nil
	}
	clone := *e
	return &clone, nil
}

func (r *inMemoryRegistryRepo) GetByIdempotencyKey(ctx context.Context, key string) (*domain.WalletRegistryEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.entries {
		if e.IdempotencyKey != nil && *e.IdempotencyKey == key {
			clone := *e
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *inMemoryRegistryRepo) GetActiveByNaturalKey(ctx context.Context, ownerID uuid.UUID, provider domain.Provider, providerAccountID string) (*domain.WalletRegistryEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.entries {
		if e.IsActive && e.OwnerID == ownerID && e.Provider == provider && e.ProviderAccountID == providerAccountID {
			clone := *e
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *inMemoryRegistryRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.WalletRegistryEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.WalletRegistryEntry
	for _, e := range r.entries {
		if e.OwnerID == ownerID {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *inMemoryRegistryRepo) Deactivate(ctx context.Context, tx pgx.Tx, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.entries[id]; ok {
		e.IsActive = false
	}
	return nil
}

func (r *inMemoryRegistryRepo) UpdateMetadata(ctx context.Context, tx pgx.Tx, id uuid.UUID, metadata map[string]string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.entries[id]; ok {
		e.Metadata = metadata
	}
	return nil
}

// --- In-Memory Balance Snapshot Repo ---

type inMemorySnapshotRepo struct {
	mu        sync.RWMutex
	snapshots []*domain.WalletBalanceSnapshot
}

func newInMemorySnapshotRepo() *inMemorySnapshotRepo {
	return &inMemorySnapshotRepo{}
}

func (r *inMemorySnapshotRepo) Insert(ctx context.Context, tx pgx.Tx, snap *domain.WalletBalanceSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.snapshots {
		if snap.IdempotencyKey != nil && existing.IdempotencyKey != nil &&
			*existing.IdempotencyKey == *snap.IdempotencyKey {
			return &ports.DuplicateError{Target: ports.ConflictIdempotencyKey}
		}
		if snap.ProviderSnapshotID != nil && existing.ProviderSnapshotID != nil &&
			existing.Provider == snap.Provider &&
			*existing.ProviderSnapshotID == *snap.ProviderSnapshotID {
			return &ports.DuplicateError{Target: ports.ConflictProviderSnapshot}
		}
	}
	clone := *snap
	r.snapshots = append(r.snapshots, &clone)
	return nil
}

func (r *inMemorySnapshotRepo) GetByIdempotencyKey(ctx context.Context, key string) (*domain.WalletBalanceSnapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.snapshots {
		if s.IdempotencyKey != nil && *s.IdempotencyKey == key {
			clone := *s
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *inMemorySnapshotRepo) GetByProviderSnapshotID(ctx context.Context, provider domain.Provider, snapshotID string) (*domain.WalletBalanceSnapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.snapshots {
		if s.Provider == provider && s.ProviderSnapshotID != nil && *s.ProviderSnapshotID == snapshotID {
			clone := *s
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *inMemorySnapshotRepo) ListByWallet(ctx context.Context, walletID uuid.UUID, limit, offset int) ([]domain.WalletBalanceSnapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.WalletBalanceSnapshot
	for _, s := range r.snapshots {
		if s.WalletID == walletID {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CapturedAt.After(out[j].CapturedAt) })
	return paginate(out, limit, offset), nil
}

func (r *inMemorySnapshotRepo) LatestByWallet(ctx context.Context, walletID uuid.UUID) (*domain.WalletBalanceSnapshot, error) {
	snaps, _ := r.ListByWallet(ctx, walletID, 1, 0)
	if len(snaps) == 0 {
		return nil, nil
	}
	return &snaps[0], nil
}

// --- In-Memory Transaction Event Repo ---

type inMemoryEventRepo struct {
	mu     sync.RWMutex
	events []*domain.WalletTransactionEvent
}

func newInMemoryEventRepo() *inMemoryEventRepo {
	return &inMemoryEventRepo{}
}

func (r *inMemoryEventRepo) Insert(ctx context.Context, tx pgx.Tx, event *domain.WalletTransactionEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.events {
		if event.IdempotencyKey != nil && existing.IdempotencyKey != nil &&
			*existing.IdempotencyKey == *event.IdempotencyKey {
			return &ports.DuplicateError{Target: ports.ConflictIdempotencyKey}
		}
		if event.ProviderEventID != nil && existing.ProviderEventID != nil &&
			existing.Provider == event.Provider &&
			*existing.ProviderEventID == *event.ProviderEventID {
			return &ports.DuplicateError{Target: ports.ConflictProviderEvent}
		}
	}
	clone := *event
	r.events = append(r.events, &clone)
	return nil
}

func (r *inMemoryEventRepo) GetByIdempotencyKey(ctx context.Context, key string) (*domain.WalletTransactionEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.events {
		if e.IdempotencyKey != nil && *e.IdempotencyKey == key {
			clone := *e
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *inMemoryEventRepo) GetByProviderEventID(ctx context.Context, provider domain.Provider, eventID string) (*domain.WalletTransactionEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.events {
		if e.Provider == provider && e.ProviderEventID != nil && *e.ProviderEventID == eventID {
			clone := *e
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *inMemoryEventRepo) ListByWallet(ctx context.Context, walletID uuid.UUID, limit, offset int) ([]domain.WalletTransactionEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.WalletTransactionEvent
	for _, e := range r.events {
		if e.WalletID == walletID {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OccurredAt.After(out[j].OccurredAt) })
	return paginate(out, limit, offset), nil
}

func paginate[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

// --- In-Memory Audit Repo ---

type inMemoryAuditRepo struct {
	mu      sync.Mutex
	entries []*domain.AuditLog
}

func newInMemoryAuditRepo() *inMemoryAuditRepo {
	return &inMemoryAuditRepo{}
}

func (r *inMemoryAuditRepo) Create(ctx context.Context, log *domain.AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *log
	r.entries = append(r.entries, &clone)
	return nil
}

func (r *inMemoryAuditRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// --- In-Memory Transactor (no-op tx) ---

type inMemoryTransactor struct{}

func newInMemoryTransactor() *inMemoryTransactor {
	return &inMemoryTransactor{}
}

func (t *inMemoryTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	return &noopTx{}, nil
}

// noopTx is a no-op pgx.Tx implementation for in-memory testing.
type noopTx struct{}

func (t *noopTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *noopTx) Commit(ctx context.Context) error          { return nil }
func (t *noopTx) Rollback(ctx context.Context) error        { return nil }
func (t *noopTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *noopTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *noopTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *noopTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *noopTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *noopTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *noopTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *noopTx) Conn() *pgx.Conn { return nil }
