package handler

import (
	"time"

	"amani-wallet-core/internal/adapter/http/dto"
	"amani-wallet-core/internal/core/domain"
	"amani-wallet-core/internal/core/ports"
	"amani-wallet-core/pkg/apperror"
	"amani-wallet-core/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// SnapshotHandler handles balance snapshot endpoints.
type SnapshotHandler struct {
	snapshotSvc ports.BalanceSnapshotService
}

// NewSnapshotHandler creates a new SnapshotHandler.
func NewSnapshotHandler(snapshotSvc ports.BalanceSnapshotService) *SnapshotHandler {
	return &SnapshotHandler{snapshotSvc: snapshotSvc}
}

// RecordSnapshot handles POST /api/v1/wallets/:id/snapshots.
func (h *SnapshotHandler) RecordSnapshot(c *gin.Context) {
	walletID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req dto.RecordSnapshotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	balance, err := decimal.NewFromString(req.Balance)
	if err != nil {
		response.Error(c, apperror.Validation("balance must be a decimal string"))
		return
	}
	capturedAt, err := time.Parse(time.RFC3339, req.CapturedAt)
	if err != nil {
		response.Error(c, apperror.Validation("captured_at must be RFC 3339"))
		return
	}

	snap, err := h.snapshotSvc.RecordSnapshot(c.Request.Context(), ports.RecordSnapshotRequest{
		WalletID:           walletID,
		Provider:           domain.Provider(req.Provider),
		Balance:            balance,
		Currency:           req.Currency,
		CapturedAt:         capturedAt,
		IdempotencyKey:     idempotencyKey(c),
		ProviderSnapshotID: req.ProviderSnapshotID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toSnapshotResponse(snap))
}

// ListSnapshots handles GET /api/v1/wallets/:id/snapshots.
func (h *SnapshotHandler) ListSnapshots(c *gin.Context) {
	walletID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	limit, offset, err := pagination(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	snaps, err := h.snapshotSvc.ListSnapshots(c.Request.Context(), walletID, limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := dto.SnapshotListResponse{
		Snapshots: make([]dto.SnapshotResponse, 0, len(snaps)),
		Count:     len(snaps),
		Limit:     limit,
		Offset:    offset,
	}
	for i := range snaps {
		resp.Snapshots = append(resp.Snapshots, toSnapshotResponse(&snaps[i]))
	}
	response.OK(c, resp)
}

// LatestSnapshot handles GET /api/v1/wallets/:id/snapshots/latest.
func (h *SnapshotHandler) LatestSnapshot(c *gin.Context) {
	walletID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	snap, err := h.snapshotSvc.LatestSnapshot(c.Request.Context(), walletID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toSnapshotResponse(snap))
}

// toSnapshotResponse converts a balance snapshot to its DTO.
func toSnapshotResponse(s *domain.WalletBalanceSnapshot) dto.SnapshotResponse {
	return dto.SnapshotResponse{
		ID:                 s.ID.String(),
		WalletID:           s.WalletID.String(),
		Provider:           string(s.Provider),
		Balance:            s.Balance.String(),
		Currency:           s.Currency,
		ProviderSnapshotID: s.ProviderSnapshotID,
		CapturedAt:         s.CapturedAt.UTC().Format(timeFormat),
		CreatedAt:          s.CreatedAt.UTC().Format(timeFormat),
	}
}
