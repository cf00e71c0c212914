package handlers

import (
	"log/slog"
	"net/http"

	"github.com/bizpulse/bizpulse_backend/internal/core/domain"
	portssvc "github.com/bizpulse/bizpulse_backend/internal/core/ports/services"
	"github.com/bizpulse/bizpulse_backend/internal/dto"
	"github.com/bizpulse/bizpulse_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// metricsHandler serves the derived dashboard views.
type metricsHandler struct {
	metricsService portssvc.MetricsSvcFacade
}

func newMetricsHandler(ms portssvc.MetricsSvcFacade) *metricsHandler {
	return &metricsHandler{
		metricsService: ms,
	}
}

// registerMetricsRoutes registers routes for the derived metric views.
func registerMetricsRoutes(rg *gin.RouterGroup, metricsService portssvc.MetricsSvcFacade) {
	h := newMetricsHandler(metricsService)

	metrics := rg.Group("/metrics")
	{
		metrics.GET("/summary", h.getSummary)
		metrics.GET("/revenue", h.getMonthlyRevenue)
		metrics.GET("/expenses", h.getMonthlyExpenses)
		metrics.GET("/mrr", h.getMRR)
		metrics.GET("/ltv-cac", h.getLTVCAC)
		metrics.GET("/inventory", h.getInventory)
	}
}

// getSummary godoc
// @Summary Dashboard summary totals
// @Description Retrieves total revenue, expenses, net profit, customer count and per-category expense totals
// @Tags metrics
// @Produce  json
// @Success 200 {object} dto.SummaryResponse
// @Failure 500 {object} map[string]string "Failed to compute summary"
// @Router /metrics/summary [get]
func (h *metricsHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.metricsService.Summary(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute summary"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSummaryResponse(summary))
}

// getMonthlyRevenue godoc
// @Summary Monthly revenue series
// @Description Retrieves sale totals bucketed by calendar month, chronologically ordered
// @Tags metrics
// @Produce  json
// @Success 200 {array} dto.ChartPointResponse
// @Failure 500 {object} map[string]string "Failed to compute revenue series"
// @Router /metrics/revenue [get]
func (h *metricsHandler) getMonthlyRevenue(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	points, err := h.metricsService.MonthlyRevenue(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute revenue series", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute revenue series"})
		return
	}

	c.JSON(http.StatusOK, dto.ToChartPoints(points))
}

// getMonthlyExpenses godoc
// @Summary Monthly expense series
// @Description Retrieves expense amounts bucketed by calendar month, chronologically ordered
// @Tags metrics
// @Produce  json
// @Success 200 {array} dto.ChartPointResponse
// @Failure 500 {object} map[string]string "Failed to compute expense series"
// @Router /metrics/expenses [get]
func (h *metricsHandler) getMonthlyExpenses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	points, err := h.metricsService.MonthlyExpenses(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute expense series", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute expense series"})
		return
	}

	c.JSON(http.StatusOK, dto.ToChartPoints(points))
}

// getMRR godoc
// @Summary Monthly recurring revenue series
// @Description Retrieves recurring-product sale totals by month; months without recurring sales are absent
// @Tags metrics
// @Produce  json
// @Success 200 {array} dto.ChartPointResponse
// @Failure 500 {object} map[string]string "Failed to compute MRR series"
// @Router /metrics/mrr [get]
func (h *metricsHandler) getMRR(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	points, err := h.metricsService.MRR(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute MRR series", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute MRR series"})
		return
	}

	c.JSON(http.StatusOK, dto.ToChartPoints(points))
}

// getLTVCAC godoc
// @Summary LTV vs CAC series
// @Description Retrieves per-month lifetime value and customer acquisition cost
// @Tags metrics
// @Produce  json
// @Success 200 {array} dto.LTVCACPointResponse
// @Failure 500 {object} map[string]string "Failed to compute LTV/CAC series"
// @Router /metrics/ltv-cac [get]
func (h *metricsHandler) getLTVCAC(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	points, err := h.metricsService.LTVCAC(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute LTV/CAC series", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute LTV/CAC series"})
		return
	}

	c.JSON(http.StatusOK, dto.ToLTVCACPoints(points))
}

// getInventory godoc
// @Summary Inventory valuation
// @Description Values the product set and classifies stock levels, with optional search and status filters
// @Tags metrics
// @Produce  json
// @Param   search query string false "Case-insensitive match against product name or SKU"
// @Param   status query string false "Stock status filter" Enums(In Stock, Low Stock, Out of Stock)
// @Success 200 {object} dto.InventoryResponse
// @Failure 500 {object} map[string]string "Failed to value inventory"
// @Router /metrics/inventory [get]
func (h *metricsHandler) getInventory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	filter := portssvc.InventoryFilter{
		Search: c.Query("search"),
		Status: domain.StockStatus(c.Query("status")),
	}

	valuation, err := h.metricsService.Inventory(c.Request.Context(), filter)
	if err != nil {
		logger.Error("Failed to value inventory", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to value inventory"})
		return
	}

	c.JSON(http.StatusOK, dto.ToInventoryResponse(valuation))
}
