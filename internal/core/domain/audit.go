package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited action.
type AuditAction string

const (
	AuditActionWalletRegistered  AuditAction = "WALLET_REGISTERED"
	AuditActionWalletDeactivated AuditAction = "WALLET_DEACTIVATED"
	AuditActionMetadataUpdated   AuditAction = "WALLET_METADATA_UPDATED"
	AuditActionSnapshotRecorded  AuditAction = "SNAPSHOT_RECORDED"
	AuditActionEventIngested     AuditAction = "EVENT_INGESTED"
)

// AuditLog records a single audited mutation for compliance. Replayed
// (deduplicated) calls do not produce new audit entries; exactly one entry
// is written per new insert.
type AuditLog struct {
	ID           uuid.UUID   `json:"id"`
	ActorID      *uuid.UUID  `json:"actor_id,omitempty"`
	Action       AuditAction `json:"action"`
	ResourceType string      `json:"resource_type"`
	ResourceID   string      `json:"resource_id,omitempty"`
	Details      string      `json:"details,omitempty"` // JSON string
	CreatedAt    time.Time   `json:"created_at"`
}
