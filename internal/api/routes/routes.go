package routes

import (
	"crm-dashboard-backend/internal/api/handlers"
	"crm-dashboard-backend/internal/api/middleware"
	"crm-dashboard-backend/internal/auth"
	"crm-dashboard-backend/internal/config"
	"crm-dashboard-backend/internal/repository"
	"crm-dashboard-backend/internal/service"
	"crm-dashboard-backend/internal/voipappz"
	"crm-dashboard-backend/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	validate := validator.New()

	// Repositories
	orgRepo := repository.NewOrganizationRepository(db)
	userRepo := repository.NewUserRepository(db)
	itemRepo := repository.NewItemRepository(db)

	// Platform clients and authentication stack
	authClient := voipappz.NewAuthClient(cfg)
	tokenValidator := auth.NewTokenValidator(cfg, authClient)
	syncService := auth.NewUserSyncService(db, orgRepo, userRepo)
	sessions := auth.NewSessionStore(cfg)
	authMiddleware := auth.NewMiddleware(cfg, tokenValidator, syncService, sessions)

	// Services
	itemService := service.NewItemService(itemRepo, validate)
	userService := service.NewUserService(userRepo, validate)
	orgService := service.NewOrganizationService(orgRepo, userRepo, itemRepo, validate)
	statsCache := service.NewStatsCache(cfg)
	dashboardService := service.NewDashboardService(itemRepo, userRepo, statsCache,
		func(token string) service.PlatformGateway {
			return voipappz.NewClient(cfg, cfg.VoipappzAPIKey, token)
		})

	// Live channel
	hub := ws.NewHub()
	liveServer := ws.NewServer(hub, dashboardService)

	// Handlers
	healthHandler := handlers.NewHealthHandler(db, cfg)
	authHandler := handlers.NewAuthHandler(cfg, tokenValidator, sessions)
	itemHandler := handlers.NewItemHandler(itemService)
	userHandler := handlers.NewUserHandler(userService)
	orgHandler := handlers.NewOrganizationHandler(orgService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, liveServer)

	// Public surface
	router.GET("/api/health", healthHandler.Health)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/auth/login", authHandler.Login)
	router.GET("/auth/callback", authHandler.Callback)
	router.POST("/auth/mock_token", authHandler.MockToken)
	router.POST("/api/auth/verify", authHandler.Verify)
	router.DELETE("/api/auth/sign_out", authHandler.SignOut)

	// Authenticated API
	api := router.Group("/api")
	api.Use(authMiddleware.Authenticate())
	{
		api.GET("/auth/me", authHandler.Me)

		// Organization creation needs no tenant yet; everything else does.
		api.POST("/organizations", orgHandler.CreateOrganization)

		orgs := api.Group("/organizations")
		orgs.Use(authMiddleware.RequireOrganization())
		{
			orgs.GET("/:id", orgHandler.GetOrganization)
			orgs.PATCH("/:id", orgHandler.UpdateOrganization)
			orgs.DELETE("/:id", orgHandler.DeleteOrganization)
			orgs.GET("/:id/stats", orgHandler.GetOrganizationStats)
		}

		items := api.Group("/items")
		items.Use(authMiddleware.RequireOrganization())
		{
			items.GET("", itemHandler.ListItems)
			items.GET("/count", itemHandler.CountItems)
			items.GET("/:id", itemHandler.GetItem)
			items.POST("", itemHandler.CreateItem)
			items.PATCH("/:id", itemHandler.UpdateItem)
			items.DELETE("/:id", itemHandler.DeleteItem)
		}

		users := api.Group("/users")
		users.Use(authMiddleware.RequireOrganization())
		{
			users.GET("", userHandler.ListUsers)
			users.GET("/:id", userHandler.GetUser)
			users.PATCH("/:id/change_role", authMiddleware.RequirePermission("users:manage"), userHandler.ChangeRole)
			users.PATCH("/:id/toggle_active", authMiddleware.RequirePermission("users:manage"), userHandler.ToggleActive)
		}

		api.GET("/dashboard",
			authMiddleware.RequireOrganization(),
			authMiddleware.RequirePermission("dashboard:read"),
			dashboardHandler.GetStats)
	}

	// Live channel: authentication and tenant gates run before the upgrade
	router.GET("/ws/dashboard",
		authMiddleware.Authenticate(),
		authMiddleware.RequireOrganization(),
		dashboardHandler.LiveChannel)

	return router
}
