// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"auditledger/internal/domain/audit"
	"auditledger/internal/infrastructure/http/v1/handlers"
	"auditledger/internal/infrastructure/http/v1/middleware"
	"auditledger/internal/infrastructure/storage/postgres"
	"auditledger/pkg/logger"
)

// RouterConfig holds router dependencies.
type RouterConfig struct {
	// Pool is the record store connection (health checks).
	Pool *postgres.Pool

	// Logger for request logging.
	Logger *logger.Logger

	// AuditService generates fiscal-year reports.
	AuditService *audit.Service
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	// Health endpoints (no tenant required)
	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
	}

	// API v1 - tenant resolved before any store access
	apiV1 := router.Group("/api/v1")
	apiV1.Use(middleware.Tenant())
	{
		base := handlers.NewBaseHandler()
		auditHandler := handlers.NewAuditHandler(base, cfg.AuditService)
		auditHandler.RegisterRoutes(apiV1.Group("/audit"))
	}

	return router
}
