package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/nutrilink/nutrition-system/docs"
	"github.com/nutrilink/nutrition-system/internal/api/handler"
	"github.com/nutrilink/nutrition-system/internal/api/middleware"
	"github.com/nutrilink/nutrition-system/internal/core/domain"
	"github.com/nutrilink/nutrition-system/internal/core/service"
	"github.com/nutrilink/nutrition-system/internal/infrastructure/config"
	mongodb "github.com/nutrilink/nutrition-system/internal/infrastructure/db/mongo"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The intake dispatcher is constructed by main (it owns the worker
// lifecycle) and handed in through the handler-facing interface.
func NewRouter(db *mongo.Database, rdb *redis.Client, dispatcher handler.IntakeDispatcher, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("nutrition"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	linkRepo := mongodb.NewLinkRepository(db)
	hydrationRepo := mongodb.NewHydrationRepository(db)
	mealRepo := mongodb.NewMealRepository(db)
	workoutRepo := mongodb.NewWorkoutRepository(db)

	tokenTTL := time.Duration(cfg.TokenTTLHours) * time.Hour
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, tokenTTL)
	linkService := service.NewLinkService(linkRepo, userRepo, log)
	hydrationService := service.NewHydrationService(hydrationRepo, log)
	mealService := service.NewMealService(mealRepo, log)
	workoutService := service.NewWorkoutService(workoutRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	linkHandler := handler.NewLinkHandler(linkService)
	hydrationHandler := handler.NewHydrationHandler(hydrationService, dispatcher)
	mealHandler := handler.NewMealHandler(mealService)
	workoutHandler := handler.NewWorkoutHandler(workoutService)

	authMiddleware := middleware.Auth(cfg.JWTSecret)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Health probes and operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Authenticated API ---
	// Each route declares its static role allow-set; ownership checks live
	// in the use cases.
	v1 := e.Group("/v1", authMiddleware)

	v1.POST("/links", linkHandler.Request, middleware.RBAC(domain.RoleClient))
	v1.GET("/links/pending", linkHandler.ListPending, middleware.RBAC(domain.RoleClient))
	v1.GET("/links/clients", linkHandler.ListClients, middleware.RBAC(domain.RoleNutritionist))
	v1.POST("/links/:id/accept", linkHandler.Accept, middleware.RBAC(domain.RoleNutritionist))
	v1.POST("/links/:id/reject", linkHandler.Reject, middleware.RBAC(domain.RoleNutritionist))
	v1.POST("/links/:id/end", linkHandler.End, middleware.RBAC(domain.RoleClient, domain.RoleNutritionist))
	v1.GET("/nutritionists/search", linkHandler.Search, middleware.RBAC(domain.RoleClient))

	v1.POST("/hydration", hydrationHandler.Log, middleware.RBAC(domain.RoleClient))
	v1.GET("/hydration/total", hydrationHandler.Total, middleware.RBAC(domain.RoleClient))
	v1.POST("/hydration/sync", hydrationHandler.Sync, middleware.RBAC(domain.RoleClient))

	v1.POST("/meals", mealHandler.Capture, middleware.RBAC(domain.RoleClient))
	v1.GET("/meals/:id", mealHandler.Get, middleware.RBAC(domain.RoleClient))
	v1.GET("/meals", mealHandler.List, middleware.RBAC(domain.RoleClient))

	v1.POST("/workouts", workoutHandler.Log, middleware.RBAC(domain.RoleClient))
	v1.GET("/workouts", workoutHandler.List, middleware.RBAC(domain.RoleClient))

	return e
}
