// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"motordesk/internal/domain/reports"
	"motordesk/internal/infrastructure/http/v1/handlers"
	"motordesk/internal/infrastructure/http/v1/middleware"
	"motordesk/internal/infrastructure/storage/postgres"
	"motordesk/pkg/logger"
)

// RouterConfig holds router dependencies.
type RouterConfig struct {
	Pool          *postgres.Pool
	ReportService *reports.Service
	Archive       *postgres.ReportArchive
	Logger        *logger.Logger
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

	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
	}

	base := handlers.NewBaseHandler()
	salesHandler := handlers.NewSalesHandler(base, cfg.ReportService)
	reportsHandler := handlers.NewReportsHandler(base, cfg.ReportService, cfg.Archive)
	expensesHandler := handlers.NewExpensesHandler(base, cfg.ReportService)
	scheduleHandler := handlers.NewScheduleHandler(base)

	api := router.Group("/api/v1")
	{
		api.GET("/sales", salesHandler.List)

		api.GET("/reports/dashboard", reportsHandler.Dashboard)
		api.GET("/reports/vehicle-profit", reportsHandler.VehicleProfit)
		api.POST("/reports/dashboard/archive", reportsHandler.ArchiveDashboard)
		api.GET("/reports/dashboard/archive/:id", reportsHandler.GetArchivedDashboard)

		api.POST("/expenses", expensesHandler.Create)
		api.POST("/schedules", scheduleHandler.Generate)
	}

	return router
}
