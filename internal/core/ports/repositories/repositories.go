package repositories

// RepositoryProvider bundles all repository facades for dependency injection
// into the service container.
type RepositoryProvider struct {
	Transaction  TransactionRepositoryFacade
	EditLog      EditLogRepositoryFacade
	Denomination DenominationRepositoryFacade
	Setting      SettingRepositoryFacade
}
