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
	"github.com/Sdjishan552/fin/internal/middleware"
	"github.com/Sdjishan552/fin/internal/utils"
	"github.com/Sdjishan552/fin/internal/utils/dateutil"
)

const denomCheckSource = "denomCheck"

// reconcileService compares a physical cash count against the computed
// closing balance of a day.
type reconcileService struct {
	txnRepo   portsrepo.TransactionRepositoryFacade
	denomRepo portsrepo.DenominationRepositoryFacade
	ledgerSvc portssvc.LedgerSvcFacade
	loc       *time.Location
}

// NewReconcileService creates the denomination reconciler.
func NewReconcileService(txnRepo portsrepo.TransactionRepositoryFacade, denomRepo portsrepo.DenominationRepositoryFacade, ledgerSvc portssvc.LedgerSvcFacade, loc *time.Location) portssvc.ReconcileSvcFacade {
	return &reconcileService{
		txnRepo:   txnRepo,
		denomRepo: denomRepo,
		ledgerSvc: ledgerSvc,
		loc:       loc,
	}
}

var _ portssvc.ReconcileSvcFacade = (*reconcileService)(nil)

// Reconcile totals the count, diffs it against the day's balance and records
// a fresh adjustment original on mismatch. The snapshot is persisted either
// way; each physical count event is its own auditable fact, so repeat runs
// with mismatches create separate adjustments.
func (s *reconcileService) Reconcile(ctx context.Context, dateKey string, values domain.DenominationCount) (*domain.ReconcileResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := dateutil.Parse(dateKey, s.loc); err != nil {
		return nil, err
	}
	for denom, count := range values {
		if !domain.IsKnownDenomination(denom) {
			return nil, fmt.Errorf("%w: unknown denomination %d", apperrors.ErrValidation, denom)
		}
		if count < 0 {
			return nil, fmt.Errorf("%w: negative count for denomination %d", apperrors.ErrValidation, denom)
		}
	}

	status := s.ledgerSvc.DayStatus(dateKey)
	if status == domain.DayFuture {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrFutureDate, dateKey)
	}

	day, err := s.ledgerSvc.ComputeDayTotals(ctx, dateKey)
	if err != nil {
		return nil, err
	}

	now := time.Now().In(s.loc)
	denomTotal := values.Total()
	diff := denomTotal - day.Totals.Balance

	result := &domain.ReconcileResult{
		DateKey:    dateKey,
		DenomTotal: denomTotal,
		Balance:    day.Totals.Balance,
		Diff:       diff,
	}

	if diff != 0 {
		note := fmt.Sprintf("Cash excess of %s found during denomination check", utils.FormatINR(diff))
		if diff < 0 {
			note = fmt.Sprintf("Cash shortage of %s found during denomination check", utils.FormatINR(-diff))
		}
		adj := domain.Transaction{
			ID:        uuid.NewString(),
			DateKey:   dateKey,
			CreatedAt: now,
			Type:      domain.Adjustment,
			Amount:    diff,
			Note:      note,
			Meta:      domain.TxnMeta{Source: denomCheckSource},
		}
		if err := s.txnRepo.SaveTransaction(ctx, adj); err != nil {
			return nil, fmt.Errorf("failed to save discrepancy adjustment: %w", err)
		}
		result.Adjustment = &adj

		if status == domain.DayPast {
			if err := s.ledgerSvc.RecalculateForward(ctx, dateKey); err != nil {
				logger.Error("Forward recalculation failed after reconciliation",
					slog.String("date_key", dateKey), slog.String("error", err.Error()))
				return nil, err
			}
		}
	}

	snapshot := domain.DenominationSnapshot{
		DateKey: dateKey,
		Values:  values,
		Total:   denomTotal,
		SavedAt: now,
	}
	if err := s.denomRepo.SaveSnapshot(ctx, snapshot); err != nil {
		return nil, fmt.Errorf("failed to save denomination snapshot: %w", err)
	}

	logger.Info("Reconciliation completed",
		slog.String("date_key", dateKey),
		slog.Int64("denom_total", denomTotal),
		slog.Int64("diff", diff))
	return result, nil
}

// GetSnapshot returns the saved count for a date.
func (s *reconcileService) GetSnapshot(ctx context.Context, dateKey string) (*domain.DenominationSnapshot, error) {
	if _, err := dateutil.Parse(dateKey, s.loc); err != nil {
		return nil, err
	}
	return s.denomRepo.FindSnapshotByDateKey(ctx, dateKey)
}
