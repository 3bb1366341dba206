package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/Sdjishan552/fin/internal/core/ports/services"
	"github.com/Sdjishan552/fin/internal/dto"
	"github.com/Sdjishan552/fin/internal/middleware"
	"github.com/Sdjishan552/fin/internal/utils"
)

// adjustmentHandler handles HTTP requests for open adjustments and corrections.
type adjustmentHandler struct {
	adjustmentService portssvc.AdjustmentSvcFacade
	elevationService  portssvc.ElevationSvcFacade
}

// newAdjustmentHandler creates a new adjustmentHandler.
func newAdjustmentHandler(as portssvc.AdjustmentSvcFacade, elev portssvc.ElevationSvcFacade) *adjustmentHandler {
	return &adjustmentHandler{
		adjustmentService: as,
		elevationService:  elev,
	}
}

// registerAdjustmentRoutes registers routes for the adjustment tracker.
func registerAdjustmentRoutes(rg *gin.RouterGroup, as portssvc.AdjustmentSvcFacade, elev portssvc.ElevationSvcFacade) {
	h := newAdjustmentHandler(as, elev)

	adjustments := rg.Group("/adjustments")
	{
		adjustments.GET("/open", h.listOpenAdjustments)
		adjustments.POST("/:id/corrections", h.applyCorrection)
		adjustments.GET("/suspense", h.getSuspenseBalance)
	}
}

// listOpenAdjustments lists unresolved adjustment chains.
func (h *adjustmentHandler) listOpenAdjustments(c *gin.Context) {
	open, err := h.adjustmentService.ListOpenAdjustments(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToOpenAdjustmentResponses(open))
}

// applyCorrection records a correction against an open adjustment.
func (h *adjustmentHandler) applyCorrection(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	originalID := c.Param("id")

	var req dto.ApplyCorrectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ApplyCorrection", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	session := middleware.ResolveSession(c, h.elevationService, req.DateKey)
	correction, err := h.adjustmentService.ApplyCorrection(c.Request.Context(), session, originalID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(*correction))
}

// getSuspenseBalance returns the aggregate unresolved discrepancy.
func (h *adjustmentHandler) getSuspenseBalance(c *gin.Context) {
	balance, err := h.adjustmentService.SuspenseBalance(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuspenseBalanceResponse{
		SuspenseBalance: balance,
		Display:         utils.FormatINR(balance),
	})
}
