package models

import "time"

// Transaction is the storage row for one ledger entry. Meta is kept as a JSON
// text column so the audit tags survive round trips verbatim; an empty string
// means no tags.
type Transaction struct {
	ID        string    `json:"id"`
	DateKey   string    `json:"dateKey"`
	CreatedAt time.Time `json:"createdAt"`
	Type      string    `json:"type"`
	Amount    int64     `json:"amount"`
	Note      string    `json:"note"`
	MetaJSON  string    `json:"meta"`
}
