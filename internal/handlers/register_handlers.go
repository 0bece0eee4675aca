package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/SscSPs/rental_management_app/cmd/docs"
	portssvc "github.com/SscSPs/rental_management_app/internal/core/ports/services"
	"github.com/SscSPs/rental_management_app/internal/middleware"
	"github.com/SscSPs/rental_management_app/internal/platform/config"
	"github.com/SscSPs/rental_management_app/internal/platform/metrics"
	"github.com/SscSPs/rental_management_app/internal/utils"
)

// Dependencies are what the router needs beyond the services.
type Dependencies struct {
	Config      *config.Config
	Services    *portssvc.ServiceContainer
	Logger      *slog.Logger
	Metrics     *metrics.Metrics
	Analytics   *utils.Analytics
	NewProvider ProviderFactory
}

// NewRouter builds the engine with global middleware and every route.
func NewRouter(deps Dependencies) (*gin.Engine, error) {
	if deps.Config.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	if err := r.SetTrustedProxies(nil); err != nil {
		return nil, fmt.Errorf("failed to set trusted proxies: %w", err)
	}

	r.Use(middleware.StructuredLoggingMiddleware(deps.Logger), gin.Recovery(), middleware.SpanRoute())
	if deps.Metrics != nil {
		r.Use(middleware.Metrics(deps.Metrics))
	}
	corsCfg := cors.Config{
		AllowOrigins:     deps.Config.CORSAllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: true,
	}
	if len(corsCfg.AllowOrigins) == 0 {
		// cors.New panics on an empty origin list.
		corsCfg.AllowOrigins = nil
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	}
	r.Use(cors.New(corsCfg))
	r.Use(middleware.PageViews(deps.Analytics))

	if err := RegisterRoutes(r, deps); err != nil {
		return nil, err
	}
	return r, nil
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(r *gin.Engine, deps Dependencies) error {
	cfg := deps.Config
	services := deps.Services

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Metrics.Registry, promhttp.HandlerOpts{})))
	}

	loginLimiter, err := middleware.NewRateLimiter(cfg.AuthRateLimit)
	if err != nil {
		return fmt.Errorf("invalid AUTH_RATE_LIMIT: %w", err)
	}
	requireSession := middleware.RequireSession(services.Sessions)

	authHandler := NewAuthHandler(services, deps.NewProvider, cfg.FrontendBaseURL)
	registerAuthRoutes(r, authHandler, loginLimiter, requireSession)
	registerGoogleOAuthRoutes(r, NewGoogleOAuthHandler(services.GoogleOAuth, authHandler))

	v1 := r.Group("/api/v1", requireSession)
	registerSessionRoutes(r, v1, NewSessionHandler(services.Sessions, services.Profile, cfg.EnableRoleSwitch))
	registerLandlordRoutes(v1, NewLandlordHandler(services.Landlord, services.Reporting, services.Profile))
	registerTenantRoutes(v1, NewTenantHandler(services.Tenant))

	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
