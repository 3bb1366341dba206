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

// adjustmentService tracks unresolved balance discrepancies. Chain state is a
// derived view recomputed from full history on every call, never stored.
type adjustmentService struct {
	txnRepo   portsrepo.TransactionRepositoryFacade
	ledgerSvc portssvc.LedgerSvcFacade
	loc       *time.Location
}

// NewAdjustmentService creates the adjustment/correction tracker.
func NewAdjustmentService(txnRepo portsrepo.TransactionRepositoryFacade, ledgerSvc portssvc.LedgerSvcFacade, loc *time.Location) portssvc.AdjustmentSvcFacade {
	return &adjustmentService{
		txnRepo:   txnRepo,
		ledgerSvc: ledgerSvc,
		loc:       loc,
	}
}

var _ portssvc.AdjustmentSvcFacade = (*adjustmentService)(nil)

// ListOpenAdjustments partitions adjustment entries into originals and
// corrections, sums each chain and returns the originals whose open amount is
// still non-zero.
func (s *adjustmentService) ListOpenAdjustments(ctx context.Context) ([]domain.OpenAdjustment, error) {
	all, err := s.txnRepo.FindAllTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transaction history: %w", err)
	}

	correctionSums := make(map[string]int64)
	for _, txn := range all {
		if txn.IsCorrection() {
			correctionSums[txn.Meta.ReversedAdjID] += txn.Amount
		}
	}

	var open []domain.OpenAdjustment
	for _, txn := range all {
		if !txn.IsAdjustmentOriginal() {
			continue
		}
		openAmount := txn.Amount + correctionSums[txn.ID]
		if openAmount == 0 {
			continue
		}
		open = append(open, domain.OpenAdjustment{
			Transaction: txn,
			OpenAmount:  openAmount,
		})
	}
	return open, nil
}

// ApplyCorrection records a correction against an open adjustment. The
// reversal is clamped toward zero so a generous covering amount never flips
// the chain to the other side.
func (s *adjustmentService) ApplyCorrection(ctx context.Context, session domain.Session, originalID string, req dto.ApplyCorrectionRequest) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.CoveringType != domain.Income && req.CoveringType != domain.Expense {
		return nil, fmt.Errorf("%w: covering type must be income or expense", apperrors.ErrValidation)
	}
	if req.CoveringAmount <= 0 {
		return nil, fmt.Errorf("%w: covering amount must be positive", apperrors.ErrValidation)
	}
	if _, err := dateutil.Parse(req.DateKey, s.loc); err != nil {
		return nil, err
	}

	open, err := s.ListOpenAdjustments(ctx)
	if err != nil {
		return nil, err
	}
	var target *domain.OpenAdjustment
	for i := range open {
		if open[i].ID == originalID {
			target = &open[i]
			break
		}
	}
	// The selected chain may have been fully resolved by a concurrent
	// correction; surface that rather than silently dropping the entry.
	if target == nil {
		return nil, fmt.Errorf("%w: no open adjustment %s", apperrors.ErrNotFound, originalID)
	}

	status := s.ledgerSvc.DayStatus(req.DateKey)
	switch status {
	case domain.DayFuture:
		return nil, fmt.Errorf("%w: %s", apperrors.ErrFutureDate, req.DateKey)
	case domain.DayPast:
		if !session.PastUnlocked || session.ViewDate != req.DateKey {
			return nil, fmt.Errorf("%w: date %s", apperrors.ErrPermissionRequired, req.DateKey)
		}
		if !req.ConfirmRecalculation {
			return nil, fmt.Errorf("%w: correcting on %s updates later opening balances", apperrors.ErrConfirmationRequired, req.DateKey)
		}
	}

	reverseAbs := req.CoveringAmount
	if abs := absInt64(target.OpenAmount); abs < reverseAbs {
		reverseAbs = abs
	}
	reverseSigned := reverseAbs
	if target.OpenAmount > 0 {
		reverseSigned = -reverseAbs
	}

	correction := domain.Transaction{
		ID:        uuid.NewString(),
		DateKey:   req.DateKey,
		CreatedAt: time.Now().In(s.loc),
		Type:      domain.Adjustment,
		Amount:    reverseSigned,
		Note:      req.Note,
		Meta: domain.TxnMeta{
			CoveredBy:     req.CoveringType,
			CoveredAmount: req.CoveringAmount,
			ReversedAdjID: originalID,
			ReversedFrom:  target.DateKey,
		},
	}
	if err := s.txnRepo.SaveTransaction(ctx, correction); err != nil {
		return nil, fmt.Errorf("failed to save correction: %w", err)
	}

	if status == domain.DayPast {
		if err := s.ledgerSvc.RecalculateForward(ctx, req.DateKey); err != nil {
			logger.Error("Forward recalculation failed after correction",
				slog.String("date_key", req.DateKey), slog.String("error", err.Error()))
			return nil, err
		}
	}

	logger.Info("Correction applied",
		slog.String("original_id", originalID),
		slog.String("correction_id", correction.ID),
		slog.Int64("amount", correction.Amount))
	return &correction, nil
}

// SuspenseBalance is the signed sum of open amounts across all chains.
func (s *adjustmentService) SuspenseBalance(ctx context.Context) (int64, error) {
	open, err := s.ListOpenAdjustments(ctx)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, adj := range open {
		total += adj.OpenAmount
	}
	return total, nil
}

// ResolvedCorrections lists the correction entries recorded on a day.
func (s *adjustmentService) ResolvedCorrections(ctx context.Context, dateKey string) ([]domain.Transaction, error) {
	day, err := s.ledgerSvc.ComputeDayTotals(ctx, dateKey)
	if err != nil {
		return nil, err
	}
	var corrections []domain.Transaction
	for _, txn := range day.OrderedEntries {
		if txn.IsCorrection() {
			corrections = append(corrections, txn)
		}
	}
	return corrections, nil
}

func absInt64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
