package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Sdjishan552/fin/internal/apperrors"
	"github.com/Sdjishan552/fin/internal/core/domain"
	portsrepo "github.com/Sdjishan552/fin/internal/core/ports/repositories"
	portssvc "github.com/Sdjishan552/fin/internal/core/ports/services"
	"github.com/Sdjishan552/fin/internal/dto"
	"github.com/Sdjishan552/fin/internal/middleware"
	"github.com/Sdjishan552/fin/internal/utils/dateutil"
)

// editService coordinates retroactive edits: gating, in-place mutation, the
// immutable edit log and forward balance propagation.
type editService struct {
	txnRepo     portsrepo.TransactionRepositoryFacade
	editLogRepo portsrepo.EditLogRepositoryFacade
	ledgerSvc   portssvc.LedgerSvcFacade
	loc         *time.Location
}

// NewEditService creates the retroactive edit coordinator.
func NewEditService(txnRepo portsrepo.TransactionRepositoryFacade, editLogRepo portsrepo.EditLogRepositoryFacade, ledgerSvc portssvc.LedgerSvcFacade, loc *time.Location) portssvc.EditSvcFacade {
	return &editService{
		txnRepo:     txnRepo,
		editLogRepo: editLogRepo,
		ledgerSvc:   ledgerSvc,
		loc:         loc,
	}
}

var _ portssvc.EditSvcFacade = (*editService)(nil)

// EditTransaction replaces type/amount/note of an income/expense entry in
// place, preserving id, dateKey, createdAt and meta. Any edit off today's
// date requires the recalculation confirmation up front; nothing is written
// until every precondition passes.
func (s *editService) EditTransaction(ctx context.Context, session domain.Session, id string, req dto.EditTransactionRequest) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Type != domain.Income && req.Type != domain.Expense {
		return nil, fmt.Errorf("%w: entry type must be income or expense", apperrors.ErrValidation)
	}
	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	txn, err := s.txnRepo.FindTransactionByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if txn.IsOpening() {
		return nil, fmt.Errorf("%w: opening balance is system-derived", apperrors.ErrNotEditable)
	}
	if txn.Type == domain.Adjustment {
		return nil, fmt.Errorf("%w: adjustment entries are a permanent audit trail", apperrors.ErrNotEditable)
	}

	status := s.ledgerSvc.DayStatus(txn.DateKey)
	switch status {
	case domain.DayFuture:
		// Unreachable through the normal entry path, enforced all the same.
		return nil, fmt.Errorf("%w: %s", apperrors.ErrFutureDate, txn.DateKey)
	case domain.DayPast:
		if !session.PastUnlocked || session.ViewDate != txn.DateKey {
			return nil, fmt.Errorf("%w: date %s", apperrors.ErrPermissionRequired, txn.DateKey)
		}
	}
	if status != domain.DayToday && !req.ConfirmRecalculation {
		return nil, fmt.Errorf("%w: editing %s updates later opening balances", apperrors.ErrConfirmationRequired, txn.DateKey)
	}

	oldValues := domain.TxnValues{Type: txn.Type, Amount: txn.Amount, Note: txn.Note}
	txn.Type = req.Type
	txn.Amount = req.Amount
	txn.Note = req.Note

	if err := s.txnRepo.UpdateTransaction(ctx, *txn); err != nil {
		return nil, fmt.Errorf("failed to update transaction %s: %w", id, err)
	}

	entry := domain.EditLogEntry{
		ID:            uuid.NewString(),
		TransactionID: txn.ID,
		TxDateKey:     txn.DateKey,
		OldValues:     oldValues,
		NewValues:     domain.TxnValues{Type: txn.Type, Amount: txn.Amount, Note: txn.Note},
		EditedAt:      time.Now().In(s.loc),
	}
	if err := s.editLogRepo.SaveEditLog(ctx, entry); err != nil {
		// The edit itself is committed; a lost log entry must not mask it.
		logger.Error("Failed to append edit log",
			slog.String("transaction_id", txn.ID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to record edit log: %w", err)
	}

	if status != domain.DayToday {
		if err := s.ledgerSvc.RecalculateForward(ctx, txn.DateKey); err != nil {
			logger.Error("Forward recalculation failed after edit",
				slog.String("date_key", txn.DateKey), slog.String("error", err.Error()))
			return nil, err
		}
	}

	logger.Info("Transaction edited",
		slog.String("transaction_id", txn.ID),
		slog.String("date_key", txn.DateKey))
	return txn, nil
}

// EditLogForDate lists the edit-log entries scoped to one till day.
func (s *editService) EditLogForDate(ctx context.Context, dateKey string) ([]domain.EditLogEntry, error) {
	if _, err := dateutil.Parse(dateKey, s.loc); err != nil {
		return nil, err
	}
	return s.editLogRepo.FindEditLogsByTxDateKey(ctx, dateKey)
}
