package services

import (
	"context"
	"fmt"

	"github.com/Sdjishan552/fin/internal/apperrors"
	portsrepo "github.com/Sdjishan552/fin/internal/core/ports/repositories"
	portssvc "github.com/Sdjishan552/fin/internal/core/ports/services"
	"github.com/Sdjishan552/fin/internal/middleware"
)

// adminService holds destructive maintenance operations. Settings and saved
// denomination snapshots survive a wipe; the PIN stays configured.
type adminService struct {
	txnRepo     portsrepo.TransactionRepositoryFacade
	editLogRepo portsrepo.EditLogRepositoryFacade
	ledgerSvc   portssvc.LedgerSvcFacade
	checker     portssvc.CredentialChecker
}

// NewAdminService creates the maintenance service.
func NewAdminService(txnRepo portsrepo.TransactionRepositoryFacade, editLogRepo portsrepo.EditLogRepositoryFacade, ledgerSvc portssvc.LedgerSvcFacade, checker portssvc.CredentialChecker) portssvc.AdminSvcFacade {
	return &adminService{
		txnRepo:     txnRepo,
		editLogRepo: editLogRepo,
		ledgerSvc:   ledgerSvc,
		checker:     checker,
	}
}

var _ portssvc.AdminSvcFacade = (*adminService)(nil)

// WipeData verifies the PIN, erases all transactions and edit logs, then
// recreates today's opening balance so the till starts clean instead of empty.
func (s *adminService) WipeData(ctx context.Context, pin string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	ok, err := s.checker.Check(ctx, pin)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: wrong PIN", apperrors.ErrForbidden)
	}

	if err := s.txnRepo.DeleteAllTransactions(ctx); err != nil {
		return fmt.Errorf("failed to clear transactions: %w", err)
	}
	if err := s.editLogRepo.DeleteAllEditLogs(ctx); err != nil {
		return fmt.Errorf("failed to clear edit logs: %w", err)
	}
	if err := s.ledgerSvc.EnsureOpeningBalance(ctx, s.ledgerSvc.Today()); err != nil {
		return err
	}

	logger.Warn("All ledger data wiped")
	return nil
}
