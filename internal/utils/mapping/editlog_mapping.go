package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/Sdjishan552/fin/internal/core/domain"
	"github.com/Sdjishan552/fin/internal/models"
)

// ToModelEditLog converts a domain edit-log entry to its storage row.
func ToModelEditLog(d domain.EditLogEntry) (models.EditLog, error) {
	oldRaw, err := json.Marshal(d.OldValues)
	if err != nil {
		return models.EditLog{}, fmt.Errorf("failed to marshal old values: %w", err)
	}
	newRaw, err := json.Marshal(d.NewValues)
	if err != nil {
		return models.EditLog{}, fmt.Errorf("failed to marshal new values: %w", err)
	}
	return models.EditLog{
		ID:            d.ID,
		TransactionID: d.TransactionID,
		TxDateKey:     d.TxDateKey,
		OldValuesJSON: string(oldRaw),
		NewValuesJSON: string(newRaw),
		EditedAt:      d.EditedAt,
	}, nil
}

// ToDomainEditLog converts a storage row to a domain edit-log entry.
func ToDomainEditLog(m models.EditLog) (domain.EditLogEntry, error) {
	d := domain.EditLogEntry{
		ID:            m.ID,
		TransactionID: m.TransactionID,
		TxDateKey:     m.TxDateKey,
		EditedAt:      m.EditedAt,
	}
	if err := json.Unmarshal([]byte(m.OldValuesJSON), &d.OldValues); err != nil {
		return domain.EditLogEntry{}, fmt.Errorf("failed to unmarshal old values: %w", err)
	}
	if err := json.Unmarshal([]byte(m.NewValuesJSON), &d.NewValues); err != nil {
		return domain.EditLogEntry{}, fmt.Errorf("failed to unmarshal new values: %w", err)
	}
	return d, nil
}

// ToDomainEditLogSlice converts storage rows to domain edit-log entries.
func ToDomainEditLogSlice(ms []models.EditLog) ([]domain.EditLogEntry, error) {
	ds := make([]domain.EditLogEntry, len(ms))
	for i, m := range ms {
		d, err := ToDomainEditLog(m)
		if err != nil {
			return nil, err
		}
		ds[i] = d
	}
	return ds, nil
}
