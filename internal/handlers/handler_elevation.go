package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/Sdjishan552/fin/internal/core/ports/services"
	"github.com/Sdjishan552/fin/internal/dto"
	"github.com/Sdjishan552/fin/internal/middleware"
)

// elevationHandler handles PIN setup and past-editing unlock.
type elevationHandler struct {
	elevationService portssvc.ElevationSvcFacade
}

// newElevationHandler creates a new elevationHandler.
func newElevationHandler(es portssvc.ElevationSvcFacade) *elevationHandler {
	return &elevationHandler{elevationService: es}
}

// registerElevationRoutes registers the public elevation routes. Both take
// the PIN, so both sit behind the rate limiter.
func registerElevationRoutes(r *gin.Engine, es portssvc.ElevationSvcFacade, rateLimit gin.HandlerFunc) {
	h := newElevationHandler(es)

	elevation := r.Group("/elevation", rateLimit)
	{
		elevation.POST("/pin", h.setupPIN)
		elevation.POST("/unlock", h.unlock)
	}
}

// setupPIN stores a new till PIN. One-time; there is no change endpoint.
func (h *elevationHandler) setupPIN(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SetupPINRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetupPIN", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.elevationService.SetupPIN(c.Request.Context(), req.PIN); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusCreated)
}

// unlock exchanges the PIN for a date-bound elevation token.
func (h *elevationHandler) unlock(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UnlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Unlock", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	token, expiresAt, err := h.elevationService.Unlock(c.Request.Context(), req.PIN, req.DateKey)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UnlockResponse{
		Token:     token,
		DateKey:   req.DateKey,
		ExpiresAt: expiresAt,
	})
}
