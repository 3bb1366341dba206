package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Sdjishan552/fin/internal/core/domain"
	portsrepo "github.com/Sdjishan552/fin/internal/core/ports/repositories"
	"github.com/Sdjishan552/fin/internal/models"
	"github.com/Sdjishan552/fin/internal/utils/mapping"
)

// SQLiteEditLogRepository persists the append-only edit log.
type SQLiteEditLogRepository struct {
	BaseRepository
}

// newSQLiteEditLogRepository creates a new repository for edit-log entries.
func newSQLiteEditLogRepository(db *sql.DB) portsrepo.EditLogRepositoryFacade {
	return &SQLiteEditLogRepository{
		BaseRepository: BaseRepository{DB: db},
	}
}

// Ensure implementation matches interface
var _ portsrepo.EditLogRepositoryFacade = (*SQLiteEditLogRepository)(nil)

// SaveEditLog appends one edit-log entry.
func (r *SQLiteEditLogRepository) SaveEditLog(ctx context.Context, entry domain.EditLogEntry) error {
	model, err := mapping.ToModelEditLog(entry)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO edit_logs (id, transaction_id, tx_date_key, old_values, new_values, edited_at)
		VALUES (?, ?, ?, ?, ?, ?);
	`
	_, err = r.DB.ExecContext(ctx, query,
		model.ID,
		model.TransactionID,
		model.TxDateKey,
		model.OldValuesJSON,
		model.NewValuesJSON,
		model.EditedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save edit log %s: %w", model.ID, err)
	}
	return nil
}

// DeleteAllEditLogs clears the edit-log table.
func (r *SQLiteEditLogRepository) DeleteAllEditLogs(ctx context.Context) error {
	if _, err := r.DB.ExecContext(ctx, `DELETE FROM edit_logs;`); err != nil {
		return fmt.Errorf("failed to clear edit logs: %w", err)
	}
	return nil
}

// FindEditLogsByTxDateKey retrieves edits of one till day's transactions,
// oldest first.
func (r *SQLiteEditLogRepository) FindEditLogsByTxDateKey(ctx context.Context, txDateKey string) ([]domain.EditLogEntry, error) {
	query := `
		SELECT id, transaction_id, tx_date_key, old_values, new_values, edited_at
		FROM edit_logs
		WHERE tx_date_key = ?
		ORDER BY edited_at ASC, rowid ASC;
	`
	rows, err := r.DB.QueryContext(ctx, query, txDateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to query edit logs for %s: %w", txDateKey, err)
	}
	defer rows.Close()

	var modelEntries []models.EditLog
	for rows.Next() {
		var model models.EditLog
		if err := rows.Scan(
			&model.ID,
			&model.TransactionID,
			&model.TxDateKey,
			&model.OldValuesJSON,
			&model.NewValuesJSON,
			&model.EditedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan edit log row: %w", err)
		}
		modelEntries = append(modelEntries, model)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate edit log rows: %w", err)
	}

	return mapping.ToDomainEditLogSlice(modelEntries)
}
