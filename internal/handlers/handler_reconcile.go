package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/Sdjishan552/fin/internal/core/ports/services"
	"github.com/Sdjishan552/fin/internal/dto"
	"github.com/Sdjishan552/fin/internal/middleware"
)

// reconcileHandler handles HTTP requests for denomination reconciliation.
type reconcileHandler struct {
	reconcileService portssvc.ReconcileSvcFacade
}

// newReconcileHandler creates a new reconcileHandler.
func newReconcileHandler(rs portssvc.ReconcileSvcFacade) *reconcileHandler {
	return &reconcileHandler{reconcileService: rs}
}

// registerReconcileRoutes registers routes for reconciliation.
func registerReconcileRoutes(rg *gin.RouterGroup, rs portssvc.ReconcileSvcFacade) {
	h := newReconcileHandler(rs)

	reconciliation := rg.Group("/reconciliation")
	{
		reconciliation.POST("/:dateKey", h.reconcile)
		reconciliation.GET("/:dateKey", h.getSnapshot)
	}
}

// reconcile compares a physical count against the day's computed balance.
func (h *reconcileHandler) reconcile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	dateKey := c.Param("dateKey")

	var req dto.ReconcileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Reconcile", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.reconcileService.Reconcile(c.Request.Context(), dateKey, req.Values)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReconcileResponse(*result))
}

// getSnapshot returns the saved count for a date.
func (h *reconcileHandler) getSnapshot(c *gin.Context) {
	dateKey := c.Param("dateKey")

	snapshot, err := h.reconcileService.GetSnapshot(c.Request.Context(), dateKey)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSnapshotResponse(*snapshot))
}
