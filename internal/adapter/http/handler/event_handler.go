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

// EventHandler handles transaction event endpoints.
type EventHandler struct {
	eventSvc ports.TransactionEventService
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(eventSvc ports.TransactionEventService) *EventHandler {
	return &EventHandler{eventSvc: eventSvc}
}

// IngestEvent handles POST /api/v1/wallets/:id/events.
func (h *EventHandler) IngestEvent(c *gin.Context) {
	walletID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req dto.IngestEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		response.Error(c, apperror.Validation("amount must be a decimal string"))
		return
	}
	occurredAt, err := time.Parse(time.RFC3339, req.OccurredAt)
	if err != nil {
		response.Error(c, apperror.Validation("occurred_at must be RFC 3339"))
		return
	}

	event, err := h.eventSvc.IngestEvent(c.Request.Context(), ports.IngestEventRequest{
		WalletID:        walletID,
		Provider:        domain.Provider(req.Provider),
		EventType:       domain.EventType(req.EventType),
		Amount:          amount,
		Currency:        req.Currency,
		OccurredAt:      occurredAt,
		ProviderEventID: req.ProviderEventID,
		IdempotencyKey:  idempotencyKey(c),
		Metadata:        req.Metadata,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toEventResponse(event))
}

// ListEvents handles GET /api/v1/wallets/:id/events.
func (h *EventHandler) ListEvents(c *gin.Context) {
	walletID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	limit, offset, err := pagination(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	events, err := h.eventSvc.ListEvents(c.Request.Context(), walletID, limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := dto.EventListResponse{
		Events: make([]dto.EventResponse, 0, len(events)),
		Count:  len(events),
		Limit:  limit,
		Offset: offset,
	}
	for i := range events {
		resp.Events = append(resp.Events, toEventResponse(&events[i]))
	}
	response.OK(c, resp)
}

// toEventResponse converts a transaction event to its DTO.
func toEventResponse(e *domain.WalletTransactionEvent) dto.EventResponse {
	return dto.EventResponse{
		ID:              e.ID.String(),
		WalletID:        e.WalletID.String(),
		Provider:        string(e.Provider),
		EventType:       string(e.EventType),
		Amount:          e.Amount.String(),
		Currency:        e.Currency,
		ProviderEventID: e.ProviderEventID,
		Metadata:        e.Metadata,
		OccurredAt:      e.OccurredAt.UTC().Format(timeFormat),
		CreatedAt:       e.CreatedAt.UTC().Format(timeFormat),
	}
}
