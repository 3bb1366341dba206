package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/Sdjishan552/fin/internal/core/domain"
	"github.com/Sdjishan552/fin/internal/models"
)

// ToModelTransaction converts a domain Transaction to its storage row.
func ToModelTransaction(d domain.Transaction) (models.Transaction, error) {
	m := models.Transaction{
		ID:        d.ID,
		DateKey:   d.DateKey,
		CreatedAt: d.CreatedAt,
		Type:      string(d.Type),
		Amount:    d.Amount,
		Note:      d.Note,
	}
	if !d.Meta.IsZero() {
		raw, err := json.Marshal(d.Meta)
		if err != nil {
			return models.Transaction{}, fmt.Errorf("failed to marshal transaction meta: %w", err)
		}
		m.MetaJSON = string(raw)
	}
	return m, nil
}

// ToDomainTransaction converts a storage row to a domain Transaction.
func ToDomainTransaction(m models.Transaction) (domain.Transaction, error) {
	d := domain.Transaction{
		ID:        m.ID,
		DateKey:   m.DateKey,
		CreatedAt: m.CreatedAt,
		Type:      domain.EntryType(m.Type),
		Amount:    m.Amount,
		Note:      m.Note,
	}
	if m.MetaJSON != "" {
		if err := json.Unmarshal([]byte(m.MetaJSON), &d.Meta); err != nil {
			return domain.Transaction{}, fmt.Errorf("failed to unmarshal transaction meta: %w", err)
		}
	}
	return d, nil
}

// ToDomainTransactionSlice converts storage rows to domain Transactions.
func ToDomainTransactionSlice(ms []models.Transaction) ([]domain.Transaction, error) {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		d, err := ToDomainTransaction(m)
		if err != nil {
			return nil, err
		}
		ds[i] = d
	}
	return ds, nil
}
