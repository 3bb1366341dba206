package models

import "time"

// DenominationSnapshot is the storage row for one saved physical count,
// keyed by date. The count map is a JSON text column.
type DenominationSnapshot struct {
	DateKey    string    `json:"dateKey"`
	ValuesJSON string    `json:"values"`
	Total      int64     `json:"total"`
	SavedAt    time.Time `json:"savedAt"`
}
