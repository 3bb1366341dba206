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

// SQLiteSettingRepository persists named settings records.
type SQLiteSettingRepository struct {
	BaseRepository
}

// newSQLiteSettingRepository creates a new repository for settings.
func newSQLiteSettingRepository(db *sql.DB) portsrepo.SettingRepositoryFacade {
	return &SQLiteSettingRepository{
		BaseRepository: BaseRepository{DB: db},
	}
}

// Ensure implementation matches interface
var _ portsrepo.SettingRepositoryFacade = (*SQLiteSettingRepository)(nil)

// SaveSetting inserts or overwrites a setting by key.
func (r *SQLiteSettingRepository) SaveSetting(ctx context.Context, setting domain.Setting) error {
	model := mapping.ToModelSetting(setting)

	query := `
		INSERT INTO settings (key, value, alg)
		VALUES (?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET
			value = excluded.value,
			alg = excluded.alg;
	`
	if _, err := r.DB.ExecContext(ctx, query, model.Key, model.Value, model.Alg); err != nil {
		return fmt.Errorf("failed to save setting %s: %w", model.Key, err)
	}
	return nil
}

// FindSettingByKey retrieves a setting by key.
func (r *SQLiteSettingRepository) FindSettingByKey(ctx context.Context, key string) (*domain.Setting, error) {
	query := `SELECT key, value, alg FROM settings WHERE key = ?;`

	var model models.Setting
	err := r.DB.QueryRowContext(ctx, query, key).Scan(&model.Key, &model.Value, &model.Alg)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find setting %s: %w", key, err)
	}

	setting := mapping.ToDomainSetting(model)
	return &setting, nil
}
