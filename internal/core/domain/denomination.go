package domain

import "time"

// Denominations in circulation at the till, largest first.
var Denominations = []int64{500, 200, 100, 50, 20, 10, 5, 2, 1}

// IsKnownDenomination reports whether value is a denomination in circulation.
func IsKnownDenomination(value int64) bool {
	for _, d := range Denominations {
		if d == value {
			return true
		}
	}
	return false
}

// DenominationCount maps a note/coin value to how many were counted.
type DenominationCount map[int64]int64

// Total returns the cash value of the counted denominations.
func (d DenominationCount) Total() int64 {
	var total int64
	for value, count := range d {
		total += value * count
	}
	return total
}

// DenominationSnapshot is the physical cash count saved when a reconciliation
// is confirmed for a date. One snapshot per dateKey; redoing a reconciliation
// overwrites it.
type DenominationSnapshot struct {
	DateKey string            `json:"dateKey"`
	Values  DenominationCount `json:"values"`
	Total   int64             `json:"total"`
	SavedAt time.Time         `json:"savedAt"`
}

// ReconcileResult is the outcome of comparing a physical count against the
// computed closing balance. Adjustment is nil when the count matched.
type ReconcileResult struct {
	DateKey    string       `json:"dateKey"`
	DenomTotal int64        `json:"denomTotal"`
	Balance    int64        `json:"balance"`
	Diff       int64        `json:"diff"`
	Adjustment *Transaction `json:"adjustment,omitempty"`
}
