package models

import "time"

// EditLog is the storage row for one immutable edit-log entry. Old and new
// values are JSON text columns.
type EditLog struct {
	ID            string    `json:"id"`
	TransactionID string    `json:"transactionId"`
	TxDateKey     string    `json:"txDateKey"`
	OldValuesJSON string    `json:"oldValues"`
	NewValuesJSON string    `json:"newValues"`
	EditedAt      time.Time `json:"editedAt"`
}
