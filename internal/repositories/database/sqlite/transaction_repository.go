package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sqlite3 "github.com/mattn/go-sqlite3"

	"github.com/Sdjishan552/fin/internal/apperrors"
	"github.com/Sdjishan552/fin/internal/core/domain"
	portsrepo "github.com/Sdjishan552/fin/internal/core/ports/repositories"
	"github.com/Sdjishan552/fin/internal/models"
	"github.com/Sdjishan552/fin/internal/utils/mapping"
)

// SQLiteTransactionRepository persists ledger transactions.
type SQLiteTransactionRepository struct {
	BaseRepository
}

// newSQLiteTransactionRepository creates a new repository for ledger transactions.
func newSQLiteTransactionRepository(db *sql.DB) portsrepo.TransactionRepositoryFacade {
	return &SQLiteTransactionRepository{
		BaseRepository: BaseRepository{DB: db},
	}
}

// Ensure implementation matches interface
var _ portsrepo.TransactionRepositoryFacade = (*SQLiteTransactionRepository)(nil)

const transactionColumns = `id, date_key, created_at, type, amount, note, meta`

// SaveTransaction inserts a new transaction.
func (r *SQLiteTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	model, err := mapping.ToModelTransaction(txn)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO transactions (id, date_key, created_at, type, amount, note, meta)
		VALUES (?, ?, ?, ?, ?, ?, ?);
	`
	_, err = r.DB.ExecContext(ctx, query,
		model.ID,
		model.DateKey,
		model.CreatedAt,
		model.Type,
		model.Amount,
		model.Note,
		model.MetaJSON,
	)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) &&
			(sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique || sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey) {
			return fmt.Errorf("%w: transaction %s", apperrors.ErrDuplicate, model.ID)
		}
		return fmt.Errorf("failed to save transaction %s: %w", model.ID, err)
	}
	return nil
}

// UpdateTransaction replaces the stored row for txn.ID.
func (r *SQLiteTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	model, err := mapping.ToModelTransaction(txn)
	if err != nil {
		return err
	}

	query := `
		UPDATE transactions
		SET date_key = ?, created_at = ?, type = ?, amount = ?, note = ?, meta = ?
		WHERE id = ?;
	`
	res, err := r.DB.ExecContext(ctx, query,
		model.DateKey,
		model.CreatedAt,
		model.Type,
		model.Amount,
		model.Note,
		model.MetaJSON,
		model.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction %s: %w", model.ID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update of transaction %s: %w", model.ID, err)
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteTransaction removes a transaction by id.
func (r *SQLiteTransactionRepository) DeleteTransaction(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete of transaction %s: %w", id, err)
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteAllTransactions clears the transactions table.
func (r *SQLiteTransactionRepository) DeleteAllTransactions(ctx context.Context) error {
	if _, err := r.DB.ExecContext(ctx, `DELETE FROM transactions;`); err != nil {
		return fmt.Errorf("failed to clear transactions: %w", err)
	}
	return nil
}

// FindTransactionByID retrieves a single transaction by id.
func (r *SQLiteTransactionRepository) FindTransactionByID(ctx context.Context, id string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = ?;`

	var model models.Transaction
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&model.ID,
		&model.DateKey,
		&model.CreatedAt,
		&model.Type,
		&model.Amount,
		&model.Note,
		&model.MetaJSON,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", id, err)
	}

	txn, err := mapping.ToDomainTransaction(model)
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

// FindTransactionsByDateKey retrieves all transactions of one till day,
// ordered by created_at with rowid as the stable tiebreak.
func (r *SQLiteTransactionRepository) FindTransactionsByDateKey(ctx context.Context, dateKey string) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE date_key = ?
		ORDER BY created_at ASC, rowid ASC;
	`
	return r.queryTransactions(ctx, query, dateKey)
}

// FindAllTransactions retrieves the full ledger history.
func (r *SQLiteTransactionRepository) FindAllTransactions(ctx context.Context) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		ORDER BY date_key ASC, created_at ASC, rowid ASC;
	`
	return r.queryTransactions(ctx, query)
}

func (r *SQLiteTransactionRepository) queryTransactions(ctx context.Context, query string, args ...any) ([]domain.Transaction, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var modelTxns []models.Transaction
	for rows.Next() {
		var model models.Transaction
		if err := rows.Scan(
			&model.ID,
			&model.DateKey,
			&model.CreatedAt,
			&model.Type,
			&model.Amount,
			&model.Note,
			&model.MetaJSON,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		modelTxns = append(modelTxns, model)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transaction rows: %w", err)
	}

	return mapping.ToDomainTransactionSlice(modelTxns)
}
