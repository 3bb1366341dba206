package services

import (
	"time"

	portsrepo "github.com/Sdjishan552/fin/internal/core/ports/repositories"
	portssvc "github.com/Sdjishan552/fin/internal/core/ports/services"
)

// ElevationParams configures the elevation token issuer.
type ElevationParams struct {
	Secret string
	Expiry time.Duration
	Issuer string
}

// NewServiceContainer wires every service facade against the repository
// provider. Construction order follows the dependency chain: the ledger
// engine first, then the services built on top of it.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, loc *time.Location, elevation ElevationParams) *portssvc.ServiceContainer {
	ledgerSvc := NewLedgerService(repos.Transaction, loc)
	adjustmentSvc := NewAdjustmentService(repos.Transaction, ledgerSvc, loc)
	editSvc := NewEditService(repos.Transaction, repos.EditLog, ledgerSvc, loc)
	reconcileSvc := NewReconcileService(repos.Transaction, repos.Denomination, ledgerSvc, loc)
	checker := NewPINChecker(repos.Setting)
	elevationSvc := NewElevationService(repos.Setting, checker, elevation.Secret, elevation.Expiry, elevation.Issuer)
	reportingSvc := NewReportingService(ledgerSvc, adjustmentSvc, editSvc, reconcileSvc)
	adminSvc := NewAdminService(repos.Transaction, repos.EditLog, ledgerSvc, checker)

	return &portssvc.ServiceContainer{
		Ledger:     ledgerSvc,
		Adjustment: adjustmentSvc,
		Edit:       editSvc,
		Reconcile:  reconcileSvc,
		Elevation:  elevationSvc,
		Reporting:  reportingSvc,
		Admin:      adminSvc,
	}
}
