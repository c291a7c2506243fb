package handler

import (
	"strconv"

	"amani-wallet-core/internal/adapter/http/dto"
	"amani-wallet-core/internal/core/domain"
	"amani-wallet-core/internal/core/ports"
	"amani-wallet-core/pkg/apperror"
	"amani-wallet-core/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderIdempotencyKey carries the caller-chosen replay token. Absence is
// allowed; the natural keys still deduplicate.
const HeaderIdempotencyKey = "Idempotency-Key"

const timeFormat = "2006-01-02T15:04:05Z07:00" // RFC 3339

// WalletHandler handles wallet registry endpoints.
type WalletHandler struct {
	registrySvc ports.WalletRegistryService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(registrySvc ports.WalletRegistryService) *WalletHandler {
	return &WalletHandler{registrySvc: registrySvc}
}

// Register handles POST /api/v1/wallets.
func (h *WalletHandler) Register(c *gin.Context) {
	var req dto.RegisterWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	ownerID, err := uuid.Parse(req.OwnerID)
	if err != nil {
		response.Error(c, apperror.Validation("owner_id must be a valid UUID"))
		return
	}

	entry, err := h.registrySvc.Register(c.Request.Context(), ports.RegisterWalletRequest{
		OwnerID:            ownerID,
		Provider:           domain.Provider(req.Provider),
		ProviderAccountID:  req.ProviderAccountID,
		ProviderCustomerID: req.ProviderCustomerID,
		IdempotencyKey:     idempotencyKey(c),
		Metadata:           req.Metadata,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toWalletResponse(entry))
}

// GetWallet handles GET /api/v1/wallets/:id.
func (h *WalletHandler) GetWallet(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	entry, err := h.registrySvc.GetWallet(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toWalletResponse(entry))
}

// ListWallets handles GET /api/v1/wallets?owner_id=...
func (h *WalletHandler) ListWallets(c *gin.Context) {
	ownerID, err := uuid.Parse(c.Query("owner_id"))
	if err != nil {
		response.Error(c, apperror.Validation("owner_id query parameter must be a valid UUID"))
		return
	}

	entries, err := h.registrySvc.ListWallets(c.Request.Context(), ownerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := dto.WalletListResponse{
		Wallets: make([]dto.WalletResponse, 0, len(entries)),
		Count:   len(entries),
	}
	for i := range entries {
		resp.Wallets = append(resp.Wallets, toWalletResponse(&entries[i]))
	}
	response.OK(c, resp)
}

// Deactivate handles DELETE /api/v1/wallets/:id.
func (h *WalletHandler) Deactivate(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	entry, err := h.registrySvc.Deactivate(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toWalletResponse(entry))
}

// UpdateMetadata handles PUT /api/v1/wallets/:id/metadata.
func (h *WalletHandler) UpdateMetadata(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateMetadataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	entry, err := h.registrySvc.UpdateMetadata(c.Request.Context(), id, req.Metadata)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toWalletResponse(entry))
}

// toWalletResponse converts a registry entry to its DTO.
func toWalletResponse(e *domain.WalletRegistryEntry) dto.WalletResponse {
	return dto.WalletResponse{
		ID:                 e.ID.String(),
		OwnerID:            e.OwnerID.String(),
		Provider:           string(e.Provider),
		ProviderAccountID:  e.ProviderAccountID,
		ProviderCustomerID: e.ProviderCustomerID,
		Metadata:           e.Metadata,
		IsActive:           e.IsActive,
		CreatedAt:          e.CreatedAt.UTC().Format(timeFormat),
		UpdatedAt:          e.UpdatedAt.UTC().Format(timeFormat),
	}
}

// idempotencyKey extracts the Idempotency-Key header, nil when absent.
func idempotencyKey(c *gin.Context) *string {
	key := c.GetHeader(HeaderIdempotencyKey)
	if key == "" {
		return nil
	}
	return &key
}

// pathUUID parses a UUID path parameter, writing a validation error on
// failure.
func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.Error(c, apperror.Validation(name+" must be a valid UUID"))
		return uuid.Nil, false
	}
	return id, true
}

// pagination parses limit/offset query parameters, leaving range checks to
// the service layer.
func pagination(c *gin.Context) (int, int, error) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "0"))
	if err != nil {
		return 0, 0, apperror.Validation("limit must be an integer")
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil {
		return 0, 0, apperror.Validation("offset must be an integer")
	}
	return limit, offset, nil
}
