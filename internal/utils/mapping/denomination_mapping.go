package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/Sdjishan552/fin/internal/core/domain"
	"github.com/Sdjishan552/fin/internal/models"
)

// ToModelSnapshot converts a domain denomination snapshot to its storage row.
func ToModelSnapshot(d domain.DenominationSnapshot) (models.DenominationSnapshot, error) {
	raw, err := json.Marshal(d.Values)
	if err != nil {
		return models.DenominationSnapshot{}, fmt.Errorf("failed to marshal denomination values: %w", err)
	}
	return models.DenominationSnapshot{
		DateKey:    d.DateKey,
		ValuesJSON: string(raw),
		Total:      d.Total,
		SavedAt:    d.SavedAt,
	}, nil
}

// ToDomainSnapshot converts a storage row to a domain denomination snapshot.
func ToDomainSnapshot(m models.DenominationSnapshot) (domain.DenominationSnapshot, error) {
	d := domain.DenominationSnapshot{
		DateKey: m.DateKey,
		Total:   m.Total,
		SavedAt: m.SavedAt,
	}
	if err := json.Unmarshal([]byte(m.ValuesJSON), &d.Values); err != nil {
		return domain.DenominationSnapshot{}, fmt.Errorf("failed to unmarshal denomination values: %w", err)
	}
	return d, nil
}

// ToModelSetting converts a domain setting to its storage row.
func ToModelSetting(d domain.Setting) models.Setting {
	return models.Setting{Key: d.Key, Value: d.Value, Alg: d.Alg}
}

// ToDomainSetting converts a storage row to a domain setting.
func ToDomainSetting(m models.Setting) domain.Setting {
	return domain.Setting{Key: m.Key, Value: m.Value, Alg: m.Alg}
}
