package handler

import (
	"amani-wallet-core/internal/adapter/http/middleware"
	"amani-wallet-core/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	RegistrySvc    ports.WalletRegistryService
	SnapshotSvc    ports.BalanceSnapshotService
	EventSvc       ports.TransactionEventService
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// API v1 routes
	v1 := r.Group("/api/v1")

	walletHandler := NewWalletHandler(deps.RegistrySvc)
	snapshotHandler := NewSnapshotHandler(deps.SnapshotSvc)
	eventHandler := NewEventHandler(deps.EventSvc)

	wallets := v1.Group("/wallets")
	{
		wallets.POST("", walletHandler.Register)
		wallets.GET("", walletHandler.ListWallets)
		wallets.GET("/:id", walletHandler.GetWallet)
		wallets.DELETE("/:id", walletHandler.Deactivate)
		wallets.PUT("/:id/metadata", walletHandler.UpdateMetadata)

		wallets.POST("/:id/snapshots", snapshotHandler.RecordSnapshot)
		wallets.GET("/:id/snapshots", snapshotHandler.ListSnapshots)
		wallets.GET("/:id/snapshots/latest", snapshotHandler.LatestSnapshot)

		wallets.POST("/:id/events", eventHandler.IngestEvent)
		wallets.GET("/:id/events", eventHandler.ListEvents)
	}

	return r
}
