package repositories

import (
	"context"

	"github.com/Sdjishan552/fin/internal/core/domain"
)

// TransactionReader defines read operations for ledger transactions.
type TransactionReader interface {
	// FindTransactionByID retrieves a single transaction by its unique identifier.
	FindTransactionByID(ctx context.Context, id string) (*domain.Transaction, error)

	// FindTransactionsByDateKey retrieves all transactions of one till day,
	// ordered by createdAt ascending with storage order as the stable tiebreak.
	FindTransactionsByDateKey(ctx context.Context, dateKey string) ([]domain.Transaction, error)

	// FindAllTransactions retrieves the full ledger history. The adjustment
	// tracker recomputes chain state from this on every call.
	FindAllTransactions(ctx context.Context) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for ledger transactions.
// Each call is a single atomic store write.
type TransactionWriter interface {
	// SaveTransaction inserts a new transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// UpdateTransaction replaces the stored row for txn.ID.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransaction removes a transaction by id.
	DeleteTransaction(ctx context.Context, id string) error

	// DeleteAllTransactions clears the transactions collection.
	DeleteAllTransactions(ctx context.Context) error
}

// TransactionRepositoryFacade combines all transaction repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
