package repositories

import (
	"context"

	"github.com/Sdjishan552/fin/internal/core/domain"
)

// SettingRepositoryFacade stores named settings records (e.g. the PIN hash).
type SettingRepositoryFacade interface {
	// SaveSetting inserts or overwrites a setting by key.
	SaveSetting(ctx context.Context, setting domain.Setting) error

	// FindSettingByKey retrieves a setting; apperrors.ErrNotFound when absent.
	FindSettingByKey(ctx context.Context, key string) (*domain.Setting, error)
}
