package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sdjishan552/fin/internal/apperrors"
	"github.com/Sdjishan552/fin/internal/core/domain"
	portssvc "github.com/Sdjishan552/fin/internal/core/ports/services"
	"github.com/Sdjishan552/fin/internal/dto"
	"github.com/Sdjishan552/fin/internal/middleware"
	"github.com/Sdjishan552/fin/internal/utils/dateutil"
)

// ledgerHandler handles HTTP requests for day data and entry mutations.
type ledgerHandler struct {
	ledgerService    portssvc.LedgerSvcFacade
	editService      portssvc.EditSvcFacade
	elevationService portssvc.ElevationSvcFacade
}

// newLedgerHandler creates a new ledgerHandler.
func newLedgerHandler(ls portssvc.LedgerSvcFacade, es portssvc.EditSvcFacade, elev portssvc.ElevationSvcFacade) *ledgerHandler {
	return &ledgerHandler{
		ledgerService:    ls,
		editService:      es,
		elevationService: elev,
	}
}

// registerLedgerRoutes registers routes for day data and entries.
func registerLedgerRoutes(rg *gin.RouterGroup, ls portssvc.LedgerSvcFacade, es portssvc.EditSvcFacade, elev portssvc.ElevationSvcFacade) {
	h := newLedgerHandler(ls, es, elev)

	ledger := rg.Group("/ledger")
	{
		ledger.GET("/:dateKey", h.getDayData)
		ledger.POST("/entries", h.createEntry)
		ledger.PUT("/entries/:id", h.editEntry)
		ledger.DELETE("/entries/:id", h.deleteEntry)
	}
}

// getDayData returns one day's ordered entries plus totals. Viewing a day
// lazily creates its opening balance for today, matching the entry screen.
func (h *ledgerHandler) getDayData(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	dateKey := c.Param("dateKey")
	if !dateutil.IsValid(dateKey) {
		respondError(c, fmt.Errorf("%w: malformed date key %q", apperrors.ErrValidation, dateKey))
		return
	}

	status := h.ledgerService.DayStatus(dateKey)
	if status == domain.DayToday {
		if err := h.ledgerService.EnsureOpeningBalance(c.Request.Context(), dateKey); err != nil {
			logger.Error("Failed to ensure opening balance", slog.String("error", err.Error()))
			respondError(c, err)
			return
		}
	}

	day, err := h.ledgerService.ComputeDayTotals(c.Request.Context(), dateKey)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DayDataResponse{
		DateKey:        day.DateKey,
		Status:         status,
		OrderedEntries: dto.ToTransactionResponses(day.OrderedEntries),
		Totals:         day.Totals,
	})
}

// createEntry records a new income/expense entry.
func (h *ledgerHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	session := middleware.ResolveSession(c, h.elevationService, req.DateKey)
	txn, err := h.ledgerService.CreateEntry(c.Request.Context(), session, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(*txn))
}

// editEntry replaces type/amount/note of an entry.
func (h *ledgerHandler) editEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id := c.Param("id")

	var req dto.EditTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for EditEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	// The target's date decides the permission gate, so it must be resolved
	// before the session.
	target, err := h.ledgerService.FindEntry(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	session := middleware.ResolveSession(c, h.elevationService, target.DateKey)
	txn, err := h.editService.EditTransaction(c.Request.Context(), session, id, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(*txn))
}

// deleteEntry removes an entry. The recalculation confirmation rides on a
// query flag since DELETE has no body.
func (h *ledgerHandler) deleteEntry(c *gin.Context) {
	id := c.Param("id")
	confirmRecalc := c.Query("confirmRecalculation") == "true"

	target, err := h.ledgerService.FindEntry(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	session := middleware.ResolveSession(c, h.elevationService, target.DateKey)
	if err := h.ledgerService.DeleteEntry(c.Request.Context(), session, id, confirmRecalc); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
