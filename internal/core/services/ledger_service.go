package services

import (
	"context"
	"errors"
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

const openingBalanceNote = "Opening Balance"

// ledgerService computes per-day totals, maintains the opening-balance chain
// and enforces the day-status state machine on entry mutation.
type ledgerService struct {
	txnRepo portsrepo.TransactionRepositoryFacade
	loc     *time.Location
}

// NewLedgerService creates the ledger engine bound to the business timezone.
func NewLedgerService(txnRepo portsrepo.TransactionRepositoryFacade, loc *time.Location) portssvc.LedgerSvcFacade {
	return &ledgerService{
		txnRepo: txnRepo,
		loc:     loc,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// Today returns the current date key on the business clock.
func (s *ledgerService) Today() string {
	return dateutil.Today(s.loc)
}

// DayStatus classifies dateKey relative to the business-timezone today.
func (s *ledgerService) DayStatus(dateKey string) domain.DayStatus {
	return domain.DayStatusFor(dateKey, s.Today())
}

// ComputeDayTotals fetches one day's entries and sums them by type.
// balance = income - expense + adjustment.
func (s *ledgerService) ComputeDayTotals(ctx context.Context, dateKey string) (*domain.DayData, error) {
	if _, err := dateutil.Parse(dateKey, s.loc); err != nil {
		return nil, err
	}

	entries, err := s.txnRepo.FindTransactionsByDateKey(ctx, dateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transactions for %s: %w", dateKey, err)
	}

	var totals domain.DayTotals
	for _, txn := range entries {
		switch txn.Type {
		case domain.Income:
			totals.Income += txn.Amount
		case domain.Expense:
			totals.Expense += txn.Amount
		case domain.Adjustment:
			totals.Adjustment += txn.Amount
		}
	}
	totals.Balance = totals.Income - totals.Expense + totals.Adjustment

	return &domain.DayData{
		DateKey:        dateKey,
		OrderedEntries: entries,
		Totals:         totals,
	}, nil
}

// FindEntry retrieves a single entry by id.
func (s *ledgerService) FindEntry(ctx context.Context, id string) (*domain.Transaction, error) {
	return s.txnRepo.FindTransactionByID(ctx, id)
}

// EnsureOpeningBalance carries yesterday's closing balance into dateKey's
// synthetic opening entry. A no-op when the opening already exists, which is
// what makes the rollover watcher safe to race with foreground writes.
func (s *ledgerService) EnsureOpeningBalance(ctx context.Context, dateKey string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	day, err := s.ComputeDayTotals(ctx, dateKey)
	if err != nil {
		return err
	}
	for _, txn := range day.OrderedEntries {
		if txn.IsOpening() {
			return nil
		}
	}

	yesterday, err := dateutil.PrevDay(dateKey, s.loc)
	if err != nil {
		return err
	}
	prev, err := s.ComputeDayTotals(ctx, yesterday)
	if err != nil {
		return fmt.Errorf("failed to compute closing balance for %s: %w", yesterday, err)
	}
	var openingAmount int64
	if len(prev.OrderedEntries) > 0 {
		openingAmount = prev.Totals.Balance
	}

	opening := domain.Transaction{
		ID:        uuid.NewString(),
		DateKey:   dateKey,
		CreatedAt: time.Now().In(s.loc),
		Type:      domain.Income,
		Amount:    openingAmount,
		Note:      openingBalanceNote,
		Meta:      domain.TxnMeta{IsOpening: true},
	}
	if err := s.txnRepo.SaveTransaction(ctx, opening); err != nil {
		// The store holds one opening per day; losing that race means a
		// concurrent caller already did the work.
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil
		}
		return fmt.Errorf("failed to save opening balance for %s: %w", dateKey, err)
	}

	logger.Info("Opening balance created",
		slog.String("date_key", dateKey),
		slog.Int64("amount", openingAmount))
	return nil
}

// CreateEntry validates a new income/expense entry against the day-status
// state machine, persists it and propagates forward balances for past days.
func (s *ledgerService) CreateEntry(ctx context.Context, session domain.Session, req dto.CreateEntryRequest) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Type != domain.Income && req.Type != domain.Expense {
		return nil, fmt.Errorf("%w: entry type must be income or expense", apperrors.ErrValidation)
	}
	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if _, err := dateutil.Parse(req.DateKey, s.loc); err != nil {
		return nil, err
	}

	status := s.DayStatus(req.DateKey)
	if err := s.gateMutation(session, status, req.DateKey, req.ConfirmRecalculation); err != nil {
		return nil, err
	}

	txn := domain.Transaction{
		ID:        uuid.NewString(),
		DateKey:   req.DateKey,
		CreatedAt: time.Now().In(s.loc),
		Type:      req.Type,
		Amount:    req.Amount,
		Note:      req.Note,
	}
	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to save entry: %w", err)
	}

	if status == domain.DayPast {
		if err := s.RecalculateForward(ctx, req.DateKey); err != nil {
			logger.Error("Forward recalculation failed after backdated entry",
				slog.String("date_key", req.DateKey), slog.String("error", err.Error()))
			return nil, err
		}
	}

	logger.Info("Entry saved",
		slog.String("transaction_id", txn.ID),
		slog.String("date_key", txn.DateKey),
		slog.String("type", string(txn.Type)))
	return &txn, nil
}

// DeleteEntry removes an income/expense entry under the same day-status
// gating as CreateEntry. Opening balances and adjustment-chain entries are
// permanent and refused.
func (s *ledgerService) DeleteEntry(ctx context.Context, session domain.Session, id string, confirmRecalc bool) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	txn, err := s.txnRepo.FindTransactionByID(ctx, id)
	if err != nil {
		return err
	}
	if txn.IsOpening() {
		return fmt.Errorf("%w: opening balance cannot be deleted", apperrors.ErrNotEditable)
	}
	if txn.Type == domain.Adjustment {
		return fmt.Errorf("%w: adjustment entries are a permanent audit trail", apperrors.ErrNotEditable)
	}

	status := s.DayStatus(txn.DateKey)
	if err := s.gateMutation(session, status, txn.DateKey, confirmRecalc); err != nil {
		return err
	}

	if err := s.txnRepo.DeleteTransaction(ctx, id); err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", id, err)
	}

	// Unlike the entry form, a deleted past entry also shifts every later
	// opening balance, so the same propagation applies.
	if status == domain.DayPast {
		if err := s.RecalculateForward(ctx, txn.DateKey); err != nil {
			logger.Error("Forward recalculation failed after delete",
				slog.String("date_key", txn.DateKey), slog.String("error", err.Error()))
			return err
		}
	}

	logger.Info("Entry deleted", slog.String("transaction_id", id), slog.String("date_key", txn.DateKey))
	return nil
}

// RecalculateForward walks the days from fromDateKey through today and
// rewrites each opening entry that no longer matches the previous day's
// closing balance. Opening mutations are system-derived and therefore not
// edit-logged. Days with trouble are skipped, not fatal.
func (s *ledgerService) RecalculateForward(ctx context.Context, fromDateKey string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	dates, err := dateutil.RangeInclusive(fromDateKey, s.Today(), s.loc)
	if err != nil {
		return err
	}

	for i := 1; i < len(dates); i++ {
		prev, err := s.ComputeDayTotals(ctx, dates[i-1])
		if err != nil {
			logger.Warn("Skipping recalculation day, previous day unreadable",
				slog.String("date_key", dates[i]), slog.String("error", err.Error()))
			continue
		}

		day, err := s.ComputeDayTotals(ctx, dates[i])
		if err != nil {
			logger.Warn("Skipping recalculation day, day unreadable",
				slog.String("date_key", dates[i]), slog.String("error", err.Error()))
			continue
		}

		var opening *domain.Transaction
		for j := range day.OrderedEntries {
			if day.OrderedEntries[j].IsOpening() {
				opening = &day.OrderedEntries[j]
				break
			}
		}
		if opening == nil {
			// No opening entry was ever created for this day; nothing to fix.
			continue
		}
		if opening.Amount == prev.Totals.Balance {
			continue
		}

		opening.Amount = prev.Totals.Balance
		if err := s.txnRepo.UpdateTransaction(ctx, *opening); err != nil {
			logger.Warn("Failed to update opening balance during recalculation",
				slog.String("date_key", dates[i]), slog.String("error", err.Error()))
			continue
		}
		logger.Info("Opening balance recalculated",
			slog.String("date_key", dates[i]),
			slog.Int64("amount", opening.Amount))
	}
	return nil
}

// gateMutation enforces the day-status state machine for any write targeting
// dateKey: future days are blocked outright, past days need session elevation
// plus an explicit recalculation confirmation.
func (s *ledgerService) gateMutation(session domain.Session, status domain.DayStatus, dateKey string, confirmRecalc bool) error {
	switch status {
	case domain.DayFuture:
		return fmt.Errorf("%w: %s", apperrors.ErrFutureDate, dateKey)
	case domain.DayPast:
		if !session.PastUnlocked || session.ViewDate != dateKey {
			return fmt.Errorf("%w: date %s", apperrors.ErrPermissionRequired, dateKey)
		}
		if !confirmRecalc {
			return fmt.Errorf("%w: mutating %s updates later opening balances", apperrors.ErrConfirmationRequired, dateKey)
		}
	}
	return nil
}

// sentinel check helper shared by callers that must distinguish a vanished
// record from a store failure.
func isNotFound(err error) bool {
	return errors.Is(err, apperrors.ErrNotFound)
}
