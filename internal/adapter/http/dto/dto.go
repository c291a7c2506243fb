package dto

// RegisterWalletRequest is the request body for wallet registration.
// The idempotency key travels in the Idempotency-Key header, not the body.
type RegisterWalletRequest struct {
	OwnerID            string            `json:"owner_id" binding:"required,uuid"`
	Provider           string            `json:"provider" binding:"required,provider"`
	ProviderAccountID  string            `json:"provider_account_id" binding:"required,max=128,safe_id"`
	ProviderCustomerID *string           `json:"provider_customer_id,omitempty"`
	Metadata           map[string]string `json:"metadata,omitempty"`
}

// UpdateMetadataRequest is the request body for replacing wallet metadata.
type UpdateMetadataRequest struct {
	Metadata map[string]string `json:"metadata" binding:"required"`
}

// WalletResponse is the response body for registry entries.
type WalletResponse struct {
	ID                 string            `json:"id"`
	OwnerID            string            `json:"owner_id"`
	Provider           string            `json:"provider"`
	ProviderAccountID  string            `json:"provider_account_id"`
	ProviderCustomerID *string           `json:"provider_customer_id,omitempty"`
	Metadata           map[string]string `json:"metadata,omitempty"`
	IsActive           bool              `json:"is_active"`
	CreatedAt          string            `json:"created_at"`
	UpdatedAt          string            `json:"updated_at"`
}

// WalletListResponse wraps a wallet listing.
type WalletListResponse struct {
	Wallets []WalletResponse `json:"wallets"`
	Count   int              `json:"count"`
}

// RecordSnapshotRequest is the request body for balance snapshot recording.
// Balance is a decimal string to avoid float rounding on the wire.
type RecordSnapshotRequest struct {
	Provider           string  `json:"provider" binding:"required,provider"`
	Balance            string  `json:"balance" binding:"required"`
	Currency           string  `json:"currency" binding:"required,len=3"`
	CapturedAt         string  `json:"captured_at" binding:"required"`
	ProviderSnapshotID *string `json:"provider_snapshot_id,omitempty"`
}

// SnapshotResponse is the response body for balance snapshots.
type SnapshotResponse struct {
	ID                 string  `json:"id"`
	WalletID           string  `json:"wallet_id"`
	Provider           string  `json:"provider"`
	Balance            string  `json:"balance"`
	Currency           string  `json:"currency"`
	ProviderSnapshotID *string `json:"provider_snapshot_id,omitempty"`
	CapturedAt         string  `json:"captured_at"`
	CreatedAt          string  `json:"created_at"`
}

// SnapshotListResponse wraps a paginated snapshot listing.
type SnapshotListResponse struct {
	Snapshots []SnapshotResponse `json:"snapshots"`
	Count     int                `json:"count"`
	Limit     int                `json:"limit"`
	Offset    int                `json:"offset"`
}

// IngestEventRequest is the request body for transaction event ingestion.
type IngestEventRequest struct {
	Provider        string            `json:"provider" binding:"required,provider"`
	EventType       string            `json:"event_type" binding:"required,event_type"`
	Amount          string            `json:"amount" binding:"required"`
	Currency        string            `json:"currency" binding:"required,len=3"`
	OccurredAt      string            `json:"occurred_at" binding:"required"`
	ProviderEventID *string           `json:"provider_event_id,omitempty"`
	Metadata        map[string]string `json:"metadata,omitempty"`
}

// EventResponse is the response body for transaction events.
type EventResponse struct {
	ID              string            `json:"id"`
	WalletID        string            `json:"wallet_id"`
	Provider        string            `json:"provider"`
	EventType       string            `json:"event_type"`
	Amount          string            `json:"amount"`
	Currency        string            `json:"currency"`
	ProviderEventID *string           `json:"provider_event_id,omitempty"`
	Metadata        map[string]string `json:"metadata,omitempty"`
	OccurredAt      string            `json:"occurred_at"`
	CreatedAt       string            `json:"created_at"`
}

// EventListResponse wraps a paginated event listing.
type EventListResponse struct {
	Events []EventResponse `json:"events"`
	Count  int             `json:"count"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}
