package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Sdjishan552/fin/internal/apperrors"
	"github.com/Sdjishan552/fin/internal/core/domain"
	portsrepo "github.com/Sdjishan552/fin/internal/core/ports/repositories"
	"github.com/Sdjishan552/fin/internal/models"
	"github.com/Sdjishan552/fin/internal/utils/mapping"
)

// SQLiteDenominationRepository persists per-day physical count snapshots.
type SQLiteDenominationRepository struct {
	BaseRepository
}

// newSQLiteDenominationRepository creates a new repository for snapshots.
func newSQLiteDenominationRepository(db *sql.DB) portsrepo.DenominationRepositoryFacade {
	return &SQLiteDenominationRepository{
		BaseRepository: BaseRepository{DB: db},
	}
}

// Ensure implementation matches interface
var _ portsrepo.DenominationRepositoryFacade = (*SQLiteDenominationRepository)(nil)

// SaveSnapshot inserts or overwrites the snapshot for snapshot.DateKey.
func (r *SQLiteDenominationRepository) SaveSnapshot(ctx context.Context, snapshot domain.DenominationSnapshot) error {
	model, err := mapping.ToModelSnapshot(snapshot)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO denomination_snapshots (date_key, counted_values, total, saved_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (date_key) DO UPDATE SET
			counted_values = excluded.counted_values,
			total = excluded.total,
			saved_at = excluded.saved_at;
	`
	_, err = r.DB.ExecContext(ctx, query,
		model.DateKey,
		model.ValuesJSON,
		model.Total,
		model.SavedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save denomination snapshot for %s: %w", model.DateKey, err)
	}
	return nil
}

// FindSnapshotByDateKey retrieves the saved snapshot for a date.
func (r *SQLiteDenominationRepository) FindSnapshotByDateKey(ctx context.Context, dateKey string) (*domain.DenominationSnapshot, error) {
	query := `
		SELECT date_key, counted_values, total, saved_at
		FROM denomination_snapshots
		WHERE date_key = ?;
	`
	var model models.DenominationSnapshot
	err := r.DB.QueryRowContext(ctx, query, dateKey).Scan(
		&model.DateKey,
		&model.ValuesJSON,
		&model.Total,
		&model.SavedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find denomination snapshot for %s: %w", dateKey, err)
	}

	snapshot, err := mapping.ToDomainSnapshot(model)
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}
