package services

// ServiceContainer bundles all service facades for injection into the
// handlers layer.
type ServiceContainer struct {
	Ledger     LedgerSvcFacade
	Adjustment AdjustmentSvcFacade
	Edit       EditSvcFacade
	Reconcile  ReconcileSvcFacade
	Elevation  ElevationSvcFacade
	Reporting  ReportingSvcFacade
	Admin      AdminSvcFacade
}
