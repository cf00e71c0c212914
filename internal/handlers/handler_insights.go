package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/bizpulse/bizpulse_backend/internal/apperrors"
	portssvc "github.com/bizpulse/bizpulse_backend/internal/core/ports/services"
	"github.com/bizpulse/bizpulse_backend/internal/dto"
	"github.com/bizpulse/bizpulse_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// insightHandler serves the AI-backed alerts and forecasts.
type insightHandler struct {
	insightService portssvc.InsightSvcFacade
}

func newInsightHandler(is portssvc.InsightSvcFacade) *insightHandler {
	return &insightHandler{
		insightService: is,
	}
}

// registerInsightRoutes registers routes related to alerts and forecasts.
// The extra middleware (rate limiting) applies only to the forecast
// endpoint since it fans out to the external analysis service.
func registerInsightRoutes(rg *gin.RouterGroup, insightService portssvc.InsightSvcFacade, forecastMiddleware ...gin.HandlerFunc) {
	h := newInsightHandler(insightService)

	insights := rg.Group("/insights")
	{
		insights.GET("/alerts", h.listAlerts)
		insights.GET("/analysis", h.getLastAnalysis)
		insights.POST("/forecast", append(forecastMiddleware, h.generateForecast)...)
	}
}

// listAlerts godoc
// @Summary List recent alerts
// @Description Retrieves the rolling window of financial alerts, newest first
// @Tags insights
// @Produce  json
// @Success 200 {array} dto.AlertResponse
// @Failure 500 {object} map[string]string "Failed to list alerts"
// @Router /insights/alerts [get]
func (h *insightHandler) listAlerts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	alerts, err := h.insightService.RecentAlerts(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list alerts from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list alerts"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListAlertResponse(alerts))
}

// generateForecast godoc
// @Summary Generate a financial forecast
// @Description Runs the AI analysis over the current data set with user-provided assumptions
// @Tags insights
// @Accept  json
// @Produce  json
// @Param   request body dto.ForecastRequest true "Analysis period and strategic notes"
// @Success 200 {object} domain.AIAnalysis
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 502 {object} map[string]string "Analysis service failed"
// @Failure 500 {object} map[string]string "Failed to generate forecast"
// @Router /insights/forecast [post]
func (h *insightHandler) generateForecast(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ForecastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for GenerateForecast", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	analysis, err := h.insightService.GenerateForecast(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error generating forecast", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrUpstream) {
			logger.Error("Analysis service failed", slog.String("error", err.Error()))
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to generate AI analysis. Please check your API key and try again."})
		} else {
			logger.Error("Failed to generate forecast", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate forecast"})
		}
		return
	}

	c.JSON(http.StatusOK, analysis)
}

// getLastAnalysis godoc
// @Summary Get the last successful forecast
// @Description Retrieves the most recent successful AI analysis, if any
// @Tags insights
// @Produce  json
// @Success 200 {object} domain.AIAnalysis
// @Failure 404 {object} map[string]string "No analysis available"
// @Failure 500 {object} map[string]string "Failed to load analysis"
// @Router /insights/analysis [get]
func (h *insightHandler) getLastAnalysis(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	analysis, err := h.insightService.LastAnalysis(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No analysis available"})
		} else {
			logger.Error("Failed to load analysis", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load analysis"})
		}
		return
	}

	c.JSON(http.StatusOK, analysis)
}
