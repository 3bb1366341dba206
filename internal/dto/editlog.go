package dto

import (
	"time"

	"github.com/Sdjishan552/fin/internal/core/domain"
)

// EditTransactionRequest replaces the editable fields of an entry.
type EditTransactionRequest struct {
	Type   domain.EntryType `json:"type" binding:"required,oneof=income expense"`
	Amount int64            `json:"amount" binding:"required,gt=0"`
	Note   string           `json:"note"`
	// ConfirmRecalculation acknowledges the forward balance update that an
	// edit to a day other than today entails. Required in that case.
	ConfirmRecalculation bool `json:"confirmRecalculation"`
}

// EditLogResponse is one immutable edit-log entry.
type EditLogResponse struct {
	ID            string           `json:"id"`
	TransactionID string           `json:"transactionId"`
	TxDateKey     string           `json:"txDateKey"`
	OldValues     domain.TxnValues `json:"oldValues"`
	NewValues     domain.TxnValues `json:"newValues"`
	EditedAt      time.Time        `json:"editedAt"`
}

// ToEditLogResponses maps edit-log entries to their API shape.
func ToEditLogResponses(entries []domain.EditLogEntry) []EditLogResponse {
	out := make([]EditLogResponse, len(entries))
	for i, e := range entries {
		out[i] = EditLogResponse{
			ID:            e.ID,
			TransactionID: e.TransactionID,
			TxDateKey:     e.TxDateKey,
			OldValues:     e.OldValues,
			NewValues:     e.NewValues,
			EditedAt:      e.EditedAt,
		}
	}
	return out
}
