package services

import (
	"context"

	"github.com/Sdjishan552/fin/internal/core/domain"
	"github.com/Sdjishan552/fin/internal/dto"
)

// LedgerReaderSvc defines the read side of the ledger engine.
type LedgerReaderSvc interface {
	// ComputeDayTotals returns one day's entries in createdAt order together
	// with its totals. Pure function of stored state; safe to call repeatedly.
	ComputeDayTotals(ctx context.Context, dateKey string) (*domain.DayData, error)

	// FindEntry retrieves a single entry by id.
	FindEntry(ctx context.Context, id string) (*domain.Transaction, error)

	// Today returns the current date key in the business timezone.
	Today() string

	// DayStatus classifies dateKey against the business-timezone today.
	DayStatus(dateKey string) domain.DayStatus
}

// LedgerWriterSvc defines the mutating side of the ledger engine.
type LedgerWriterSvc interface {
	// EnsureOpeningBalance creates dateKey's opening entry from the previous
	// day's closing balance when it does not exist yet. Idempotent.
	EnsureOpeningBalance(ctx context.Context, dateKey string) error

	// CreateEntry validates a new income/expense entry against the day-status
	// state machine and persists it, recalculating forward balances when the
	// target day is in the past.
	CreateEntry(ctx context.Context, session domain.Session, req dto.CreateEntryRequest) (*domain.Transaction, error)

	// DeleteEntry removes an income/expense entry under the same gating as
	// CreateEntry. Opening and adjustment entries are refused.
	DeleteEntry(ctx context.Context, session domain.Session, id string, confirmRecalc bool) error

	// RecalculateForward propagates a balance change on fromDateKey through
	// every subsequent day's opening entry up to today. Days without an
	// opening entry are skipped.
	RecalculateForward(ctx context.Context, fromDateKey string) error
}

// LedgerSvcFacade combines the ledger engine interfaces.
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
}
