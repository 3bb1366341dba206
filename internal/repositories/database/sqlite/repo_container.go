package sqlite

import (
	"database/sql"

	portsrepo "github.com/Sdjishan552/fin/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every sqlite repository against one connection.
func NewRepositoryProvider(db *sql.DB) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		Transaction:  newSQLiteTransactionRepository(db),
		EditLog:      newSQLiteEditLogRepository(db),
		Denomination: newSQLiteDenominationRepository(db),
		Setting:      newSQLiteSettingRepository(db),
	}
}
