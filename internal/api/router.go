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

	_ "github.com/ofimatica/catalog-system/docs"
	"github.com/ofimatica/catalog-system/internal/api/handler"
	"github.com/ofimatica/catalog-system/internal/api/middleware"
	"github.com/ofimatica/catalog-system/internal/core/domain"
	"github.com/ofimatica/catalog-system/internal/core/service"
	mongodb "github.com/ofimatica/catalog-system/internal/infrastructure/db/mongo"
)

// RouterConfig carries everything the router needs beyond its stores.
type RouterConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("catalog"))

	// --- Dependencies ---
	accountRepo := mongodb.NewAccountRepository(db)
	resourceRepo := mongodb.NewResourceRepository(db)

	authService := service.NewAuthService(accountRepo, cfg.JWTSecret, cfg.TokenTTL, cfg.Logger)
	accountService := service.NewAccountService(accountRepo, cfg.Logger)
	resourceService := service.NewResourceService(resourceRepo, cfg.Logger)

	authHandler := handler.NewAuthHandler(authService, accountService)
	accountHandler := handler.NewAccountHandler(accountService)
	resourceHandler := handler.NewResourceHandler(resourceService)

	authRequired := middleware.Auth(cfg.JWTSecret)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/register", authHandler.Register)

	// --- Catalog routes (browse is public, create needs any authenticated
	// caller, edit/delete are admin-only) ---
	resources := e.Group("/v1/resources")
	resources.GET("", resourceHandler.List)
	resources.GET("/:id", resourceHandler.Get)
	resources.POST("", resourceHandler.Create, authRequired)
	resources.PATCH("/:id", resourceHandler.Edit, authRequired, adminOnly)
	resources.DELETE("/:id", resourceHandler.Delete, authRequired, adminOnly)

	// --- Account routes (authenticated; listing and state flips are admin-only) ---
	accounts := e.Group("/v1/accounts", authRequired)
	accounts.GET("", accountHandler.List, adminOnly)
	accounts.GET("/:id", accountHandler.Get)
	accounts.PATCH("/:id", accountHandler.Update)
	accounts.POST("/:id/activate", accountHandler.Activate, adminOnly)
	accounts.POST("/:id/deactivate", accountHandler.Deactivate, adminOnly)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Operational surfaces ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
