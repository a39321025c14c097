package handlers

import (
	"log/slog"

	"github.com/fxpilot/invoice_chat_app/cmd/docs"
	portssvc "github.com/fxpilot/invoice_chat_app/internal/core/ports/services"
	"github.com/fxpilot/invoice_chat_app/internal/middleware"
	"github.com/fxpilot/invoice_chat_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	limitermem "github.com/ulule/limiter/v3/drivers/store/memory"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Root status route and Prometheus scrape endpoint
	r.GET("/", getHome)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Register public authentication routes
	registerAuthRoutes(r, services.Token)

	// Setup API v1 routes, passing service interfaces
	setupAPIV1Routes(r, cfg, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// The widget-facing surface is public but rate limited per client IP.
	v1 := r.Group("/api/v1", middleware.RateLimit(newIPLimiter(cfg.RateLimit)))

	// Delegate route registration to specific handlers, passing required services
	registerChatRoutes(v1, services.Responder)
	registerDetectionRoutes(v1, services.Detector, services.Converter)
	registerInvoiceRoutes(v1, services.Analyzer)
	registerCurrencyRoutes(v1, services.Currency)

	// Back-office routes require a bearer token from /auth/token.
	admin := v1.Group("", middleware.AuthMiddleware(cfg.JWTSecret))
	registerAdminRoutes(admin, services.Stats, services.Fraud)
}

// newIPLimiter builds a per-IP limiter from an ulule formatted rate such as
// "60-M". An unparsable rate falls back to 60 requests per minute.
func newIPLimiter(formatted string) *limiter.Limiter {
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		slog.Warn("Invalid RATE_LIMIT value, using 60-M", slog.String("value", formatted))
		rate, _ = limiter.NewRateFromFormatted("60-M")
	}
	return limiter.New(limitermem.NewStore(), rate)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
