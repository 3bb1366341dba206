package services

import (
	"context"

	"github.com/Sdjishan552/fin/internal/core/domain"
	"github.com/Sdjishan552/fin/internal/dto"
)

// EditSvcFacade coordinates retroactive edits: permission gating, in-place
// mutation, edit logging and forward balance propagation.
type EditSvcFacade interface {
	// EditTransaction replaces type/amount/note of an income/expense entry,
	// appends an edit-log entry and recalculates forward balances when the
	// target day is not today.
	EditTransaction(ctx context.Context, session domain.Session, id string, req dto.EditTransactionRequest) (*domain.Transaction, error)

	// EditLogForDate lists the edit-log entries scoped to one till day.
	EditLogForDate(ctx context.Context, dateKey string) ([]domain.EditLogEntry, error)
}
