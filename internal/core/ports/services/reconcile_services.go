package services

import (
	"context"

	"github.com/Sdjishan552/fin/internal/core/domain"
)

// ReconcileSvcFacade compares a physical cash count against the computed
// closing balance of a day.
type ReconcileSvcFacade interface {
	// Reconcile computes the denomination total, diffs it against the day's
	// balance, records a fresh adjustment original on mismatch and always
	// persists the snapshot.
	Reconcile(ctx context.Context, dateKey string, values domain.DenominationCount) (*domain.ReconcileResult, error)

	// GetSnapshot returns the saved count for a date, for report reuse
	// without a recount.
	GetSnapshot(ctx context.Context, dateKey string) (*domain.DenominationSnapshot, error)
}
