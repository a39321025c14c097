package main

import (
	"log/slog"
	"os"

	"github.com/fxpilot/invoice_chat_app/internal/core/services"
	"github.com/fxpilot/invoice_chat_app/internal/handlers"
	"github.com/fxpilot/invoice_chat_app/internal/middleware"
	"github.com/fxpilot/invoice_chat_app/internal/platform/config"
	"github.com/fxpilot/invoice_chat_app/internal/platform/events"
	"github.com/fxpilot/invoice_chat_app/internal/platform/metrics"
	"github.com/fxpilot/invoice_chat_app/internal/repositories/memory"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title FX Invoice Chat API
// @version 1.0
// @description Backend for the invoice chat widget: currency detection, USD standardization, geographic routing, vendor verification and cross-regional duplicate detection.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Everything the service holds lives in process memory: the static
	// currency table and the cross-regional invoice registry.
	repos := memory.NewRepositoryProvider()

	chatMetrics := metrics.NewChatMetrics()

	// No-op unless KAFKA_BROKERS is configured.
	alertPublisher := events.NewAlertPublisher(cfg.KafkaBrokers, cfg.KafkaAlertTopic)
	defer func() {
		if cerr := alertPublisher.Close(); cerr != nil {
			logger.Error("Error closing alert publisher", slog.String("error", cerr.Error()))
		}
	}()

	container := services.NewServiceContainer(cfg, repos, chatMetrics, alertPublisher)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	// CORS for the browser widget origins
	r.Use(cors.New(corsConfig(cfg)))

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, container)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// corsConfig builds the CORS policy for the widget. "*" in ALLOWED_ORIGINS
// opens the API to any origin; anything else is an explicit allow list.
func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}

	allowAll := len(cfg.AllowedOrigins) == 0
	for _, origin := range cfg.AllowedOrigins {
		if origin == "*" {
			allowAll = true
		}
	}
	if allowAll {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	return corsCfg
}
