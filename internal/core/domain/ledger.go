package domain

// DayTotals aggregates one day's entries by type.
// Balance = Income - Expense + Adjustment. All four fields are always
// populated in report payloads, even when zero.
type DayTotals struct {
	Income     int64 `json:"income"`
	Expense    int64 `json:"expense"`
	Adjustment int64 `json:"adjustment"`
	Balance    int64 `json:"balance"`
}

// DayData is the computed view of a single till day: the day's entries in
// createdAt order plus their totals.
type DayData struct {
	DateKey        string        `json:"dateKey"`
	OrderedEntries []Transaction `json:"orderedEntries"`
	Totals         DayTotals     `json:"totals"`
}

// OpenAdjustment is an adjustment original together with the unresolved
// remainder of its chain. OpenAmount = original amount + sum of the signed
// amounts of all corrections referencing it.
type OpenAdjustment struct {
	Transaction
	OpenAmount int64 `json:"openAmount"`
}
