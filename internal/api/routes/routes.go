package routes

import (
	"client-portal-backend/internal/api/handlers"
	"client-portal-backend/internal/api/middleware"
	"client-portal-backend/internal/auth"
	"client-portal-backend/internal/cache"
	"client-portal-backend/internal/config"
	"client-portal-backend/internal/events"
	"client-portal-backend/internal/repository"
	"client-portal-backend/internal/service"
	"client-portal-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Dependencies are the process-wide collaborators the routes are built from.
// Nil Cache and Publisher fall back to no-op implementations.
type Dependencies struct {
	DB        *gorm.DB
	Config    *config.Config
	Cache     cache.Cache
	Publisher events.Publisher
	Store     storage.Store
	Checks    map[string]handlers.DependencyCheck
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(deps Dependencies) *gin.Engine {
	cfg := deps.Config
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.Metrics())

	catalogCache := deps.Cache
	if catalogCache == nil {
		catalogCache = cache.Nop{}
	}
	publisher := deps.Publisher
	if publisher == nil {
		publisher = events.Nop{}
	}

	validator := service.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository(deps.DB)
	clientProjectRepo := repository.NewClientProjectRepository(deps.DB)
	catalogRepo := repository.NewCatalogProjectRepository(deps.DB)

	// Initialize services
	clientProjectService := service.NewClientProjectService(clientProjectRepo, userRepo, publisher, deps.Store, validator)
	catalogService := service.NewCatalogService(catalogRepo, catalogCache, validator)

	authMiddleware := auth.NewAuthMiddleware(cfg.JWTSecret, userRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(deps.DB)
	for name, check := range deps.Checks {
		healthHandler.WithCheck(name, check)
	}
	clientPortalHandler := handlers.NewClientPortalHandler(clientProjectService, cfg.MaxUploadBytes())
	catalogHandler := handlers.NewCatalogHandler(catalogService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	{
		// Client portal routes - all require an active caller
		portal := v1.Group("/client-portal")
		portal.Use(authMiddleware.RequireAuth())
		{
			portal.GET("/dashboard", clientPortalHandler.GetDashboard)
			portal.POST("/projects", clientPortalHandler.CreateProject)

			project := portal.Group("/projects/:id")
			{
				project.GET("", clientPortalHandler.GetProject)
				project.POST("/communications", clientPortalHandler.AddCommunication)
				project.PATCH("/milestones/:milestoneId", clientPortalHandler.UpdateMilestone)
				project.POST("/feedback", clientPortalHandler.AddFeedback)
				project.PATCH("/feedback/:feedbackId", clientPortalHandler.UpdateFeedbackStatus)
				project.GET("/analytics", clientPortalHandler.GetAnalytics)
				project.GET("/analytics/timesheet", clientPortalHandler.ExportTimesheet)
				project.POST("/time-entries", clientPortalHandler.AddTimeEntry)
				project.PUT("/team", clientPortalHandler.UpsertTeamMember)
				project.DELETE("/team/:userId", clientPortalHandler.RemoveTeamMember)
				project.PATCH("/status", clientPortalHandler.UpdateStatus)
				project.POST("/files", clientPortalHandler.UploadFile)
				project.GET("/files/:fileId", clientPortalHandler.DownloadFile)
			}
		}

		// Catalog routes - public reads, admin writes
		catalog := v1.Group("/projects")
		{
			catalog.GET("", catalogHandler.List)
			catalog.GET("/featured", catalogHandler.GetFeatured)
			catalog.GET("/categories", catalogHandler.GetCategories)
			catalog.GET("/tech-stack", catalogHandler.GetTechStack)
			catalog.GET("/stats", catalogHandler.GetStats)
			catalog.GET("/:slug", catalogHandler.GetBySlug)

			admin := catalog.Group("", authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
			{
				admin.POST("", catalogHandler.Create)
				admin.PUT("/:id", catalogHandler.Update)
				admin.DELETE("/:id", catalogHandler.Delete)
			}
		}
	}

	return router
}
