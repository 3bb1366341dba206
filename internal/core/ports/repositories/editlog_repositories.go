package repositories

import (
	"context"

	"github.com/Sdjishan552/fin/internal/core/domain"
)

// EditLogWriter appends immutable edit-log entries.
type EditLogWriter interface {
	// SaveEditLog appends one edit-log entry. Entries are never updated.
	SaveEditLog(ctx context.Context, entry domain.EditLogEntry) error

	// DeleteAllEditLogs clears the edit-log collection.
	DeleteAllEditLogs(ctx context.Context) error
}

// EditLogReader queries the edit log for report scoping.
type EditLogReader interface {
	// FindEditLogsByTxDateKey retrieves edits of transactions belonging to the
	// given till day, ordered by editedAt ascending.
	FindEditLogsByTxDateKey(ctx context.Context, txDateKey string) ([]domain.EditLogEntry, error)
}

// EditLogRepositoryFacade combines the edit-log repository interfaces.
type EditLogRepositoryFacade interface {
	EditLogReader
	EditLogWriter
}
