package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/Sdjishan552/fin/internal/core/ports/services"
	"github.com/Sdjishan552/fin/internal/dto"
	"github.com/Sdjishan552/fin/internal/middleware"
)

// adminHandler handles destructive maintenance endpoints.
type adminHandler struct {
	adminService portssvc.AdminSvcFacade
}

// newAdminHandler creates a new adminHandler.
func newAdminHandler(as portssvc.AdminSvcFacade) *adminHandler {
	return &adminHandler{adminService: as}
}

// registerAdminRoutes registers maintenance routes. The wipe takes the PIN,
// so it sits behind the same rate limiter as the elevation endpoints.
func registerAdminRoutes(rg *gin.RouterGroup, as portssvc.AdminSvcFacade, rateLimit gin.HandlerFunc) {
	h := newAdminHandler(as)

	admin := rg.Group("/admin", rateLimit)
	{
		admin.DELETE("/data", h.wipeData)
	}
}

// wipeData erases the ledger after verifying the PIN.
func (h *adminHandler) wipeData(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.WipeDataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for WipeData", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.adminService.WipeData(c.Request.Context(), req.PIN); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
