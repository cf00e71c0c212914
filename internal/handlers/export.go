package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/bizpulse/bizpulse_backend/internal/middleware"
	"github.com/bizpulse/bizpulse_backend/internal/utils/export"
	"github.com/gin-gonic/gin"
)

// exportSelection parses the optional comma-separated "ids" query param.
// The second return is false when no selection was requested, meaning the
// full data set should be exported.
func exportSelection(c *gin.Context) (map[string]bool, bool) {
	raw := c.Query("ids")
	if raw == "" {
		return nil, false
	}
	selection := make(map[string]bool)
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			selection[id] = true
		}
	}
	return selection, len(selection) > 0
}

// writeCSV renders a dataset as a CSV file download.
func writeCSV(c *gin.Context, d export.Dataset) {
	payload, err := export.BuildCSV(d)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to build CSV export", slog.String("dataset", d.Name), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build export"})
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", d.Filename()))
	c.Data(http.StatusOK, "text/csv", payload)
}
