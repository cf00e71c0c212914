package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/bizpulse/bizpulse_backend/internal/apperrors"
	portssvc "github.com/bizpulse/bizpulse_backend/internal/core/ports/services"
	"github.com/bizpulse/bizpulse_backend/internal/dto"
	"github.com/bizpulse/bizpulse_backend/internal/middleware"
	"github.com/bizpulse/bizpulse_backend/internal/utils/export"
	"github.com/gin-gonic/gin"
)

// saleHandler handles HTTP requests related to sales.
type saleHandler struct {
	saleService portssvc.SaleSvcFacade
}

func newSaleHandler(ss portssvc.SaleSvcFacade) *saleHandler {
	return &saleHandler{
		saleService: ss,
	}
}

// registerSaleRoutes registers routes related to sales.
func registerSaleRoutes(rg *gin.RouterGroup, saleService portssvc.SaleSvcFacade) {
	h := newSaleHandler(saleService)

	sales := rg.Group("/sales")
	{
		sales.POST("", h.createSale)
		sales.GET("", h.listSales)
		sales.POST("/delete", h.deleteSales)
		sales.GET("/export", h.exportSales)
	}
}

// createSale godoc
// @Summary Record a sale
// @Description Records a sale and credits the customer's spend total
// @Tags sales
// @Accept  json
// @Produce  json
// @Param   sale body dto.CreateSaleRequest true "Sale details"
// @Success 201 {object} dto.SaleResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create sale"
// @Router /sales [post]
func (h *saleHandler) createSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateSale", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.saleService.CreateSale(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating sale", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create sale in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create sale"})
		}
		return
	}

	logger.Info("Sale recorded successfully", slog.String("sale_id", created.SaleID))
	c.JSON(http.StatusCreated, dto.ToSaleResponse(created))
}

// listSales godoc
// @Summary List sales
// @Description Retrieves sales ordered by date descending
// @Tags sales
// @Produce  json
// @Success 200 {array} dto.SaleResponse
// @Failure 500 {object} map[string]string "Failed to list sales"
// @Router /sales [get]
func (h *saleHandler) listSales(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	sales, err := h.saleService.ListSales(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list sales from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list sales"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListSaleResponse(sales))
}

// deleteSales godoc
// @Summary Delete sales
// @Description Deletes the given sales; customer spend totals are not adjusted
// @Tags sales
// @Accept  json
// @Produce  json
// @Param   request body dto.DeleteRequest true "Sale ids to delete"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to delete sales"
// @Router /sales/delete [post]
func (h *saleHandler) deleteSales(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for DeleteSales", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.saleService.DeleteSales(c.Request.Context(), req.IDs); err != nil {
		logger.Error("Failed to delete sales in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete sales"})
		return
	}

	logger.Info("Sales deleted", slog.Int("count", len(req.IDs)))
	c.Status(http.StatusNoContent)
}

// exportSales godoc
// @Summary Export sales as CSV
// @Description Downloads sales (or a selection) as a CSV file
// @Tags sales
// @Produce  text/csv
// @Param   ids query string false "Comma-separated sale ids to restrict the export to"
// @Success 200 {string} string "CSV payload"
// @Failure 500 {object} map[string]string "Failed to export sales"
// @Router /sales/export [get]
func (h *saleHandler) exportSales(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	sales, err := h.saleService.ListSales(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list sales for export", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export sales"})
		return
	}

	if selection, ok := exportSelection(c); ok {
		kept := sales[:0]
		for _, s := range sales {
			if selection[s.SaleID] {
				kept = append(kept, s)
			}
		}
		sales = kept
	}

	writeCSV(c, export.SalesDataset("sales", sales))
}
