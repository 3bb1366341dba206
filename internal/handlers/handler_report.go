package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/Sdjishan552/fin/internal/core/ports/services"
)

// reportHandler handles HTTP requests for the daily report feed.
type reportHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// newReportHandler creates a new reportHandler.
func newReportHandler(rs portssvc.ReportingSvcFacade) *reportHandler {
	return &reportHandler{reportingService: rs}
}

// registerReportRoutes registers routes for reports.
func registerReportRoutes(rg *gin.RouterGroup, rs portssvc.ReportingSvcFacade) {
	h := newReportHandler(rs)

	reports := rg.Group("/reports")
	{
		reports.GET("/daily/:dateKey", h.getDailyReport)
	}
}

// getDailyReport returns the full payload the document generators consume.
func (h *reportHandler) getDailyReport(c *gin.Context) {
	dateKey := c.Param("dateKey")

	report, err := h.reportingService.DailyReport(c.Request.Context(), dateKey)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
