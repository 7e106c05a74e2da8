package router

import (
	"github.com/farmbasket/backend/internal/infrastructure/auth"
	"github.com/farmbasket/backend/internal/infrastructure/config"
	"github.com/farmbasket/backend/internal/infrastructure/logger"
	"github.com/farmbasket/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RouteRegistrar registers a handler's routes on a router group
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// Handlers groups the route registrars wired by the server entrypoint.
// Public registrars mount under /api/v1, admin ones behind the JWT
// gate under /api/v1/admin, and System on the engine root.
type Handlers struct {
	System RouteRegistrar
	Public []RouteRegistrar
	Admin  []RouteRegistrar
}

// New builds the HTTP engine with the full middleware stack and all
// application routes mounted
func New(cfg *config.Config, log *zap.Logger, jwtService *auth.JWTService, h Handlers) *gin.Engine {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		_ = engine.SetTrustedProxies(cfg.HTTP.TrustedProxies)
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.GinMiddleware(log))
	engine.Use(logger.Recovery(log))

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsCfg.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsCfg.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	engine.Use(middleware.CORSWithConfig(corsCfg))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if cfg.HTTP.RateLimitEnabled {
		limiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(limiter))
	}

	if h.System != nil {
		h.System.RegisterRoutes(engine.Group(""))
	}

	api := engine.Group("/api/v1")
	for _, registrar := range h.Public {
		registrar.RegisterRoutes(api)
	}

	admin := api.Group("/admin", middleware.RequireAuth(jwtService), middleware.RequireAdmin())
	for _, registrar := range h.Admin {
		registrar.RegisterRoutes(admin)
	}

	return engine
}
