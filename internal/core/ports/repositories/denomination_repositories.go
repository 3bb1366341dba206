package repositories

import (
	"context"

	"github.com/Sdjishan552/fin/internal/core/domain"
)

// DenominationRepositoryFacade stores the per-day physical count snapshots.
type DenominationRepositoryFacade interface {
	// SaveSnapshot inserts or overwrites the snapshot for snapshot.DateKey.
	SaveSnapshot(ctx context.Context, snapshot domain.DenominationSnapshot) error

	// FindSnapshotByDateKey retrieves the saved snapshot for a date.
	FindSnapshotByDateKey(ctx context.Context, dateKey string) (*domain.DenominationSnapshot, error)
}
