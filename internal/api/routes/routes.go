package routes

import (
	"fmt"
	"time"

	"splint-factory-backend/internal/api/handlers"
	"splint-factory-backend/internal/api/middleware"
	"splint-factory-backend/internal/auth"
	"splint-factory-backend/internal/config"
	"splint-factory-backend/internal/database/models"
	"splint-factory-backend/internal/events"
	"splint-factory-backend/internal/repository"
	"splint-factory-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, hub *events.Hub) (*gin.Engine, error) {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	organizationRepo := repository.NewOrganizationRepository(db)
	userRepo := repository.NewUserRepository(db)
	apiKeyRepo := repository.NewApiKeyRepository(db)
	namedGeometryRepo := repository.NewNamedGeometryRepository(db)
	geometryJobRepo := repository.NewGeometryJobRepository(db)
	printJobRepo := repository.NewPrintJobRepository(db)
	invitationRepo := repository.NewInvitationRepository(db)
	linkRepo := repository.NewLinkRepository(db)

	// Initialize services
	organizationService := service.NewOrganizationService(organizationRepo, validator)
	userService := service.NewUserService(userRepo, organizationRepo, validator)
	apiKeyService := service.NewApiKeyService(apiKeyRepo, validator)
	namedGeometryService := service.NewNamedGeometryService(namedGeometryRepo, validator)
	geometryJobService := service.NewGeometryJobService(geometryJobRepo, namedGeometryRepo, validator)
	printJobService := service.NewPrintJobService(printJobRepo, geometryJobRepo, hub, validator)
	invitationTTL := time.Duration(cfg.InvitationTTLHours) * time.Hour
	invitationService := service.NewInvitationService(invitationRepo, userRepo, organizationRepo, validator, invitationTTL)
	linkService := service.NewLinkService(linkRepo, validator)

	// Initialize auth
	authService, err := auth.NewAuthService(cfg, userRepo)
	if err != nil {
		return nil, fmt.Errorf("initialize auth service: %w", err)
	}
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService, apiKeyService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	organizationHandler := handlers.NewOrganizationHandler(organizationService)
	userHandler := handlers.NewUserHandler(userService)
	apiKeyHandler := handlers.NewApiKeyHandler(apiKeyService)
	namedGeometryHandler := handlers.NewNamedGeometryHandler(namedGeometryService)
	geometryJobHandler := handlers.NewGeometryJobHandler(geometryJobService)
	printJobHandler := handlers.NewPrintJobHandler(printJobService)
	invitationHandler := handlers.NewInvitationHandler(invitationService)
	linkHandler := handlers.NewLinkHandler(linkService)
	eventsHandler := handlers.NewEventsHandler(hub, time.Duration(cfg.SSEHeartbeatSec)*time.Second)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/refresh", authHandler.Refresh)
		authGroup.POST("/logout", authHandler.Logout)
		authGroup.POST("/validate", authHandler.ValidateToken)
	}

	// Public invitation routes: the invitee has no account yet
	router.GET("/api/invitations/:token", invitationHandler.Preview)
	router.POST("/api/invitations/:token/accept", invitationHandler.Accept)

	// Public shortlink redirect
	router.GET("/l/:slug", linkHandler.Resolve)

	// API v1 routes - browser clients, JWT required
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		systemAdmin := authMiddleware.RequireRole(models.RoleSystemAdmin)
		orgAdmin := authMiddleware.RequireRole(models.RoleSystemAdmin, models.RoleOrgAdmin)

		// Organization routes
		organizations := v1.Group("/organizations")
		{
			organizations.GET("", systemAdmin, organizationHandler.GetAll)
			organizations.POST("", systemAdmin, organizationHandler.Create)
			organizations.GET("/:id", organizationHandler.GetByID)
			organizations.PUT("/:id", orgAdmin, organizationHandler.Update)
			organizations.DELETE("/:id", systemAdmin, organizationHandler.Delete)
			organizations.GET("/:id/users", userHandler.GetByOrganization)
		}

		// User routes
		users := v1.Group("/users")
		{
			users.GET("", systemAdmin, userHandler.GetAll)
			users.POST("", orgAdmin, userHandler.Create)
			users.GET("/me", userHandler.Me)
			users.GET("/:id", userHandler.GetByID)
			users.PUT("/:id", orgAdmin, userHandler.Update)
			users.PUT("/:id/password", userHandler.ChangePassword)
			users.DELETE("/:id", orgAdmin, userHandler.Delete)
		}

		// API key routes
		apiKeys := v1.Group("/api-keys")
		apiKeys.Use(orgAdmin)
		{
			apiKeys.GET("", apiKeyHandler.List)
			apiKeys.POST("", apiKeyHandler.Create)
			apiKeys.DELETE("/:id", apiKeyHandler.Delete)
		}

		// Geometry template routes
		geometries := v1.Group("/geometries")
		{
			geometries.GET("", namedGeometryHandler.GetAll)
			geometries.POST("", systemAdmin, namedGeometryHandler.Create)
			geometries.GET("/:id", namedGeometryHandler.GetByID)
			geometries.PUT("/:id", systemAdmin, namedGeometryHandler.Update)
			geometries.DELETE("/:id", systemAdmin, namedGeometryHandler.Delete)
		}

		// Geometry job routes
		geometryJobs := v1.Group("/geometry-jobs")
		{
			geometryJobs.GET("", geometryJobHandler.List)
			geometryJobs.POST("", geometryJobHandler.Create)
			geometryJobs.GET("/:id", geometryJobHandler.GetByID)
			geometryJobs.GET("/:id/model", geometryJobHandler.DownloadModel)
			geometryJobs.DELETE("/:id", geometryJobHandler.Delete)
		}

		// Print job routes
		printJobs := v1.Group("/print-jobs")
		{
			printJobs.GET("", printJobHandler.List)
			printJobs.POST("", printJobHandler.Create)
			printJobs.GET("/:id", printJobHandler.GetByID)
			printJobs.GET("/:id/gcode", printJobHandler.DownloadGcode)
			printJobs.PUT("/:id/gcode", printJobHandler.UploadGcode)
			printJobs.POST("/:id/decision", printJobHandler.Decide)
			printJobs.DELETE("/:id", printJobHandler.Delete)
		}

		// Invitation routes
		invitations := v1.Group("/invitations")
		invitations.Use(orgAdmin)
		{
			invitations.GET("", invitationHandler.List)
			invitations.POST("", invitationHandler.Create)
			invitations.DELETE("/:id", invitationHandler.Delete)
		}

		// Shortlink management routes
		links := v1.Group("/links")
		{
			links.GET("", linkHandler.GetAll)
			links.POST("", linkHandler.Create)
			links.DELETE("/:id", linkHandler.Delete)
		}

		// Live print-queue event stream
		v1.GET("/events", eventsHandler.Stream)
	}

	// Worker routes - the geometry-processing client, API key required
	worker := router.Group("/api/worker")
	{
		claim := worker.Group("/geometry-jobs")
		claim.Use(authMiddleware.RequireAPIKey(models.ScopeGeometryProcess))
		{
			claim.POST("/claim-next", geometryJobHandler.ClaimNext)
			claim.POST("/:id/complete", geometryJobHandler.Complete)
		}
	}

	// Printer routes - the printer client, API key required
	printer := router.Group("/api/printer")
	{
		readOnly := printer.Group("/print-jobs")
		readOnly.Use(authMiddleware.RequireAPIKey(models.ScopePrintRead))
		{
			readOnly.GET("", printJobHandler.ListReady)
			readOnly.GET("/:id/gcode", printJobHandler.DownloadGcode)
		}

		reporting := printer.Group("/print-jobs")
		reporting.Use(authMiddleware.RequireAPIKey(models.ScopePrintReport))
		{
			reporting.POST("/:id/gcode", printJobHandler.UploadGcode)
			reporting.POST("/:id/start", printJobHandler.Start)
			reporting.POST("/:id/progress", printJobHandler.ReportProgress)
			reporting.POST("/:id/complete", printJobHandler.Complete)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router, nil
}
