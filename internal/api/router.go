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

	_ "github.com/platformly/admin-api/docs"
	"github.com/platformly/admin-api/internal/api/handler"
	"github.com/platformly/admin-api/internal/api/middleware"
	"github.com/platformly/admin-api/internal/core/ports"
	"github.com/platformly/admin-api/internal/core/service"
	"github.com/platformly/admin-api/internal/infrastructure/config"
	mongodb "github.com/platformly/admin-api/internal/infrastructure/db/mongo"
	redisdb "github.com/platformly/admin-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// audit may be nil to run without the asynchronous decision trail.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger, audit ports.AuditSink) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("platform_admin"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	tenantRepo := mongodb.NewTenantRepository(db)
	settingRepo := mongodb.NewSettingRepository(db)

	registry := service.NewPlatformRegistry(settingRepo)
	cache := redisdb.NewPlatformIDCache(rdb, registry, cfg.PlatformCacheTTL)
	resolver := service.NewTenantResolver(userRepo, cache)
	gate := service.NewGateService(resolver, cfg.JWTSecret, cfg.UserIDHeader, audit, log)

	authService := service.NewAuthService(userRepo, tenantRepo, cfg.JWTSecret, 24*time.Hour)
	tenantService := service.NewTenantService(tenantRepo, log)

	authHandler := handler.NewAuthHandler(authService, cfg.SessionCookie, 24*time.Hour)
	tenantHandler := handler.NewTenantHandler(tenantService)
	settingHandler := handler.NewSettingHandler(settingRepo, cache, gate, cache, cfg.SessionCookie, log)
	authzHandler := handler.NewAuthzHandler(gate, cfg.SessionCookie)

	platformOnly := middleware.PlatformOnly(gate, middleware.Options{SessionCookie: cfg.SessionCookie})

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)

	// --- Authorization introspection ---
	e.POST("/v1/authz/check", authzHandler.Check)

	// --- Platform-scoped routes ---
	tenants := e.Group("/v1/tenants", platformOnly)
	tenants.GET("", tenantHandler.List)
	tenants.GET("/:id", tenantHandler.Get)

	e.GET("/v1/settings/platform-tenant", settingHandler.GetPlatformTenant, platformOnly)
	// Not behind platformOnly: the handler performs its own check so the
	// first platform tenant can ever be designated.
	e.PUT("/v1/settings/platform-tenant", settingHandler.UpdatePlatformTenant)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)          // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
