package main

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/bizpulse/bizpulse_backend/internal/adapters/gemini"
	"github.com/bizpulse/bizpulse_backend/internal/core/services"
	"github.com/bizpulse/bizpulse_backend/internal/handlers"
	"github.com/bizpulse/bizpulse_backend/internal/middleware"
	"github.com/bizpulse/bizpulse_backend/internal/platform/config"
	"github.com/bizpulse/bizpulse_backend/internal/repositories/memory"
	"github.com/bizpulse/bizpulse_backend/internal/seed"
	"github.com/bizpulse/bizpulse_backend/internal/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitermem "github.com/ulule/limiter/v3/drivers/store/memory"
)

// @title BizPulse Backend API
// @version 1.0
// @description Financial dashboard backend for small businesses.

// @host localhost:8080
// @BasePath /
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	store := memory.NewStore()

	if cfg.LoadDemoData {
		if err := seed.Load(context.Background(), store); err != nil {
			logger.Error("Failed to load demo data", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("Demo data loaded")
	}

	var geminiOpts []gemini.Option
	if cfg.GeminiModel != "" {
		geminiOpts = append(geminiOpts, gemini.WithModel(cfg.GeminiModel))
	}
	if cfg.GeminiBaseURL != "" {
		geminiOpts = append(geminiOpts, gemini.WithBaseURL(cfg.GeminiBaseURL))
	}
	provider := gemini.NewClient(cfg.GeminiAPIKey, logger, geminiOpts...)

	serviceContainer := services.NewServiceContainer(store, provider, logger, cfg.AlertDebounce)
	defer serviceContainer.Insight.Close()

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)
	defer posthogClient.Close()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, analytics)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(middleware.PosthogMiddleware(posthogClient))

	corsConfig := cors.DefaultConfig()
	if cfg.CORSAllowedOrigins == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = strings.Split(cfg.CORSAllowedOrigins, ",")
	}
	r.Use(cors.New(corsConfig))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	forecastLimiter := newForecastLimiter(cfg.RateLimit, logger)

	handlers.RegisterRoutes(r, cfg, serviceContainer, forecastLimiter)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// newForecastLimiter builds the per-IP rate limiter for the forecast
// endpoint. A bad rate string disables limiting rather than blocking boot.
func newForecastLimiter(rateStr string, logger *slog.Logger) *limiter.Limiter {
	rate, err := limiter.NewRateFromFormatted(rateStr)
	if err != nil {
		logger.Warn("Invalid RATE_LIMIT value, forecast rate limiting disabled", slog.String("rate", rateStr), slog.String("error", err.Error()))
		return nil
	}
	return limiter.New(limitermem.NewStore(), rate)
}
