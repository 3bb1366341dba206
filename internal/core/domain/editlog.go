package domain

import "time"

// TxnValues is the editable slice of a transaction, captured before and after
// every accepted edit.
type TxnValues struct {
	Type   EntryType `json:"type"`
	Amount int64     `json:"amount"`
	Note   string    `json:"note"`
}

// EditLogEntry records a mutation to an existing income/expense transaction.
// Entries are immutable once written; opening-balance and adjustment
// transactions never produce one because they are not editable.
type EditLogEntry struct {
	ID            string    `json:"id"`
	TransactionID string    `json:"transactionId"`
	TxDateKey     string    `json:"txDateKey"` // the mutated transaction's dateKey, for report scoping
	OldValues     TxnValues `json:"oldValues"`
	NewValues     TxnValues `json:"newValues"`
	EditedAt      time.Time `json:"editedAt"`
}
