package routes

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/arcanosig/arcano/backend/internal/api/handlers"
	"github.com/arcanosig/arcano/backend/internal/api/middleware"
	"github.com/arcanosig/arcano/backend/internal/config"
	"github.com/arcanosig/arcano/backend/internal/database"
	"github.com/arcanosig/arcano/backend/internal/services"
)

// Background holds the components Register builds that the caller starts and stops.
type Background struct {
	Mail          *services.MailQueue
	Maintenance   *services.MaintenanceService
	Notifications *services.NotificationService
}

// Register migrates the schema, installs the audit callbacks and wires the API routes.
func Register(router *gin.Engine, db *gorm.DB, cfg config.Config, storage services.Storage) (*Background, error) {
	if err := database.Migrate(db); err != nil {
		return nil, err
	}
	audit := services.NewAuditService(db)
	if err := audit.Register(); err != nil {
		return nil, fmt.Errorf("register audit callbacks: %w", err)
	}

	mailService := services.NewMailService(db, cfg.SMTP)
	mail := services.NewMailQueue(db, mailService, cfg.MailQueue)
	realtime := services.NewRealtimeHub()
	notificationService := services.NewNotificationService(db, realtime)
	hub := services.NewNotificationHub(notificationService)

	authService := services.NewAuthService(db, cfg, mail)
	userService := services.NewUserService(db)
	reportService := services.NewReportService(db, storage, mail, notificationService, cfg.Storage.Prefix, cfg.FrontendURL)
	shareService := services.NewShareService(db)
	operationService := services.NewOperationService(db)
	teamService := services.NewTeamService(db)
	vehicleService := services.NewVehicleService(db, storage)
	custodyService := services.NewCustodyService(db, hub)

	maintenance, err := services.NewMaintenanceService(operationService, authService)
	if err != nil {
		return nil, fmt.Errorf("schedule maintenance: %w", err)
	}

	router.GET("/api/v1/health", handlers.NewHealthHandler(db).Check)
	registerDocs(router)

	api := router.Group("/api/v1")
	authMiddleware := middleware.AuthMiddleware(authService)

	authGroup := api.Group("/auth")
	handlers.NewAuthHandler(authService).RegisterRoutes(authGroup, authMiddleware)
	handlers.NewUserHandler(userService).RegisterRoutes(authGroup.Group("", authMiddleware))

	sac := api.Group("/sac")
	handlers.NewShareHandler(shareService, reportService).RegisterRoutes(sac)
	handlers.NewReportHandler(reportService, shareService).RegisterRoutes(sac.Group("", authMiddleware, middleware.RequireSac()))

	oper := api.Group("/oper", authMiddleware)
	handlers.NewOperationHandler(operationService).RegisterRoutes(oper)
	handlers.NewTeamHandler(teamService).RegisterRoutes(oper)
	handlers.NewVehicleHandler(vehicleService).RegisterRoutes(oper)
	handlers.NewFleetHandler(services.NewFuelLogService(db), services.NewVehiclePhotoService(db, storage)).RegisterRoutes(oper)
	handlers.NewCustodyHandler(custodyService).RegisterRoutes(oper)
	handlers.NewNotificationHandler(notificationService, realtime, AllowedOrigins(cfg)...).RegisterRoutes(oper)
	handlers.NewNotificationProviderHandler(notificationService).RegisterRoutes(oper.Group("", middleware.RequireAdmin()))

	admin := api.Group("", authMiddleware, middleware.RequireAdmin())
	admin.GET("/history", handlers.NewHistoryHandler(audit).List)
	handlers.NewSettingsHandler(mailService).RegisterRoutes(admin)

	return &Background{Mail: mail, Maintenance: maintenance, Notifications: notificationService}, nil
}

// AllowedOrigins lists the browser origins trusted for CORS and websockets.
func AllowedOrigins(cfg config.Config) []string {
	if cfg.FrontendURL == "" {
		return nil
	}
	return []string{strings.TrimRight(cfg.FrontendURL, "/")}
}
