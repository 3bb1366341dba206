package services

import (
	"context"

	portssvc "github.com/Sdjishan552/fin/internal/core/ports/services"
	"github.com/Sdjishan552/fin/internal/dto"
	"github.com/Sdjishan552/fin/internal/utils"
)

// reportingService assembles the read-only daily report payload the document
// generators consume.
type reportingService struct {
	ledgerSvc     portssvc.LedgerSvcFacade
	adjustmentSvc portssvc.AdjustmentSvcFacade
	editSvc       portssvc.EditSvcFacade
	reconcileSvc  portssvc.ReconcileSvcFacade
}

// NewReportingService creates the daily report assembler.
func NewReportingService(ledgerSvc portssvc.LedgerSvcFacade, adjustmentSvc portssvc.AdjustmentSvcFacade, editSvc portssvc.EditSvcFacade, reconcileSvc portssvc.ReconcileSvcFacade) portssvc.ReportingSvcFacade {
	return &reportingService{
		ledgerSvc:     ledgerSvc,
		adjustmentSvc: adjustmentSvc,
		editSvc:       editSvc,
		reconcileSvc:  reconcileSvc,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// DailyReport collects entries, totals, suspense state, the day's resolved
// corrections, its edit log and any saved denomination snapshot.
func (s *reportingService) DailyReport(ctx context.Context, dateKey string) (*dto.DailyReportResponse, error) {
	day, err := s.ledgerSvc.ComputeDayTotals(ctx, dateKey)
	if err != nil {
		return nil, err
	}

	suspense, err := s.adjustmentSvc.SuspenseBalance(ctx)
	if err != nil {
		return nil, err
	}

	corrections, err := s.adjustmentSvc.ResolvedCorrections(ctx, dateKey)
	if err != nil {
		return nil, err
	}

	editLog, err := s.editSvc.EditLogForDate(ctx, dateKey)
	if err != nil {
		return nil, err
	}

	report := &dto.DailyReportResponse{
		DateKey:        dateKey,
		OrderedEntries: dto.ToTransactionResponses(day.OrderedEntries),
		Totals:         day.Totals,
		TotalsDisplay: dto.TotalsDisplay{
			Income:          utils.FormatINR(day.Totals.Income),
			Expense:         utils.FormatINR(day.Totals.Expense),
			Balance:         utils.FormatINR(day.Totals.Balance),
			BalanceInWords:  utils.AmountInWords(day.Totals.Balance),
			SuspenseBalance: utils.FormatINR(suspense),
		},
		SuspenseBalance:     suspense,
		ResolvedCorrections: dto.ToTransactionResponses(corrections),
		EditLog:             dto.ToEditLogResponses(editLog),
	}

	// A report on a past date reuses the saved count; no snapshot is fine.
	snapshot, err := s.reconcileSvc.GetSnapshot(ctx, dateKey)
	if err != nil {
		if !isNotFound(err) {
			return nil, err
		}
	} else {
		resp := dto.ToSnapshotResponse(*snapshot)
		report.Denominations = &resp
	}

	return report, nil
}
