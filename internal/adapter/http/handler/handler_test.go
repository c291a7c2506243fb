package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"amani-wallet-core/internal/adapter/http/dto"
	"amani-wallet-core/internal/core/domain"
	"amani-wallet-core/internal/core/ports"
	"amani-wallet-core/internal/core/ports/mocks"
	"amani-wallet-core/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func strPtr(s string) *string { return &s }

// --- Wallet Handler Tests ---

func TestWalletHandler_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockWalletRegistryService(ctrl)
	h := NewWalletHandler(mockSvc)

	ownerID := uuid.New()
	walletID := uuid.New()
	now := time.Now().UTC()

	mockSvc.EXPECT().Register(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req ports.RegisterWalletRequest) (*domain.WalletRegistryEntry, error) {
			assert.Equal(t, ownerID, req.OwnerID)
			assert.Equal(t, domain.ProviderFincra, req.Provider)
			assert.Equal(t, "acct-001", req.ProviderAccountID)
			require.NotNil(t, req.IdempotencyKey)
			assert.Equal(t, "key-123", *req.IdempotencyKey)
			return &domain.WalletRegistryEntry{
				ID:                walletID,
				OwnerID:           ownerID,
				Provider:          req.Provider,
				ProviderAccountID: req.ProviderAccountID,
				IsActive:          true,
				CreatedAt:         now,
				UpdatedAt:         now,
			}, nil
		},
	)

	body, _ := json.Marshal(dto.RegisterWalletRequest{
		OwnerID:           ownerID.String(),
		Provider:          "fincra",
		ProviderAccountID: "acct-001",
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/wallets", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Request.Header.Set(HeaderIdempotencyKey, "key-123")

	h.Register(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, walletID.String(), data["id"])
	assert.Equal(t, "fincra", data["provider"])
	assert.Equal(t, true, data["is_active"])
}

func TestWalletHandler_Register_UnknownProviderRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockWalletRegistryService(ctrl)
	h := NewWalletHandler(mockSvc)

	body, _ := json.Marshal(dto.RegisterWalletRequest{
		OwnerID:           uuid.New().String(),
		Provider:          "stripe",
		ProviderAccountID: "acct-001",
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/wallets", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Register(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VAL_001")
}

func TestWalletHandler_GetWallet_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockWalletRegistryService(ctrl)
	h := NewWalletHandler(mockSvc)

	id := uuid.New()
	mockSvc.EXPECT().GetWallet(gomock.Any(), id).Return(nil, apperror.ErrNotFound("wallet"))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/wallets/"+id.String(), nil)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	h.GetWallet(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "REG_001")
}

func TestWalletHandler_GetWallet_BadUUID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewWalletHandler(mocks.NewMockWalletRegistryService(ctrl))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/wallets/not-a-uuid", nil)
	c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}

	h.GetWallet(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWalletHandler_Deactivate_Conflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockWalletRegistryService(ctrl)
	h := NewWalletHandler(mockSvc)

	id := uuid.New()
	mockSvc.EXPECT().Deactivate(gomock.Any(), id).Return(nil, apperror.ErrWalletInactive())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodDelete, "/api/v1/wallets/"+id.String(), nil)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	h.Deactivate(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "REG_002")
}

// --- Snapshot Handler Tests ---

func TestSnapshotHandler_RecordSnapshot_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockBalanceSnapshotService(ctrl)
	h := NewSnapshotHandler(mockSvc)

	walletID := uuid.New()
	snapID := uuid.New()
	now := time.Now().UTC()

	mockSvc.EXPECT().RecordSnapshot(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req ports.RecordSnapshotRequest) (*domain.WalletBalanceSnapshot, error) {
			assert.Equal(t, walletID, req.WalletID)
			assert.True(t, req.Balance.Equal(decimal.RequireFromString("1250.75")))
			return &domain.WalletBalanceSnapshot{
				ID:         snapID,
				WalletID:   walletID,
				Provider:   req.Provider,
				Balance:    req.Balance,
				Currency:   req.Currency,
				CapturedAt: req.CapturedAt,
				CreatedAt:  now,
			}, nil
		},
	)

	body, _ := json.Marshal(dto.RecordSnapshotRequest{
		Provider:   "fincra",
		Balance:    "1250.75",
		Currency:   "NGN",
		CapturedAt: now.Format(time.RFC3339),
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/wallets/"+walletID.String()+"/snapshots", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: walletID.String()}}

	h.RecordSnapshot(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "1250.75", data["balance"])
}

func TestSnapshotHandler_RecordSnapshot_BadBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewSnapshotHandler(mocks.NewMockBalanceSnapshotService(ctrl))

	walletID := uuid.New()
	body, _ := json.Marshal(dto.RecordSnapshotRequest{
		Provider:   "fincra",
		Balance:    "a lot",
		Currency:   "NGN",
		CapturedAt: time.Now().UTC().Format(time.RFC3339),
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/wallets/"+walletID.String()+"/snapshots", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: walletID.String()}}

	h.RecordSnapshot(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Event Handler Tests ---

func TestEventHandler_IngestEvent_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockTransactionEventService(ctrl)
	h := NewEventHandler(mockSvc)

	walletID := uuid.New()
	eventID := uuid.New()
	now := time.Now().UTC()

	mockSvc.EXPECT().IngestEvent(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req ports.IngestEventRequest) (*domain.WalletTransactionEvent, error) {
			assert.Equal(t, domain.EventTypeDeposit, req.EventType)
			require.NotNil(t, req.ProviderEventID)
			assert.Equal(t, "fincra-evt-1", *req.ProviderEventID)
			return &domain.WalletTransactionEvent{
				ID:              eventID,
				WalletID:        walletID,
				Provider:        req.Provider,
				EventType:       req.EventType,
				Amount:          req.Amount,
				Currency:        req.Currency,
				ProviderEventID: req.ProviderEventID,
				OccurredAt:      req.OccurredAt,
				CreatedAt:       now,
			}, nil
		},
	)

	body, _ := json.Marshal(dto.IngestEventRequest{
		Provider:        "fincra",
		EventType:       "deposit",
		Amount:          "500.00",
		Currency:        "NGN",
		OccurredAt:      now.Format(time.RFC3339),
		ProviderEventID: strPtr("fincra-evt-1"),
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/wallets/"+walletID.String()+"/events", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: walletID.String()}}

	h.IngestEvent(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, eventID.String(), data["id"])
	assert.Equal(t, "deposit", data["event_type"])
}

func TestEventHandler_IngestEvent_UnknownEventType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewEventHandler(mocks.NewMockTransactionEventService(ctrl))

	walletID := uuid.New()
	body, _ := json.Marshal(dto.IngestEventRequest{
		Provider:   "fincra",
		EventType:  "chargeback",
		Amount:     "10.00",
		Currency:   "NGN",
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/wallets/"+walletID.String()+"/events", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: walletID.String()}}

	h.IngestEvent(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEventHandler_ListEvents_PassesPagination(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockTransactionEventService(ctrl)
	h := NewEventHandler(mockSvc)

	walletID := uuid.New()
	mockSvc.EXPECT().ListEvents(gomock.Any(), walletID, 25, 50).
		Return([]domain.WalletTransactionEvent{}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/wallets/"+walletID.String()+"/events?limit=25&offset=50", nil)
	c.Params = gin.Params{{Key: "id", Value: walletID.String()}}

	h.ListEvents(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Router Tests ---

func TestSetupRouter_HealthRoute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r := SetupRouter(RouterDeps{
		RegistrySvc: mocks.NewMockWalletRegistryService(ctrl),
		SnapshotSvc: mocks.NewMockBalanceSnapshotService(ctrl),
		EventSvc:    mocks.NewMockTransactionEventService(ctrl),
		Logger:      zerolog.Nop(),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}
