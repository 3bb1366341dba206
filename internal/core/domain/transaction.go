package domain

import "time"

// EntryType classifies a ledger entry as income, expense or adjustment.
type EntryType string

const (
	Income     EntryType = "income"
	Expense    EntryType = "expense"
	Adjustment EntryType = "adjustment"
)

// IsValid reports whether t is one of the known entry types.
func (t EntryType) IsValid() bool {
	switch t {
	case Income, Expense, Adjustment:
		return true
	}
	return false
}

// TxnMeta carries the optional structured tags of a transaction.
// It is persisted verbatim (JSON) so the audit trail survives round trips.
type TxnMeta struct {
	IsOpening     bool      `json:"isOpening,omitempty"`     // synthetic carry-forward entry
	Source        string    `json:"source,omitempty"`        // e.g. "denomCheck"
	CoveredBy     EntryType `json:"coveredBy,omitempty"`     // entry type the user covered a correction with
	CoveredAmount int64     `json:"coveredAmount,omitempty"` // amount the user supplied to cover
	ReversedAdjID string    `json:"reversedAdjId,omitempty"` // original adjustment this corrects
	ReversedFrom  string    `json:"reversedFrom,omitempty"`  // dateKey of the original adjustment
}

// IsZero reports whether no meta tag is set.
func (m TxnMeta) IsZero() bool {
	return m == TxnMeta{}
}

// Transaction is the atomic ledger entry of one till day.
//
// DateKey (YYYY-MM-DD in the business timezone) is the partitioning key and is
// not necessarily the creation date: backdated entries carry the target date.
// Amount is whole rupees; income/expense amounts are always positive and
// signed by Type, adjustments may be negative.
type Transaction struct {
	ID        string    `json:"id"`
	DateKey   string    `json:"dateKey"`
	CreatedAt time.Time `json:"createdAt"`
	Type      EntryType `json:"type"`
	Amount    int64     `json:"amount"`
	Note      string    `json:"note"`
	Meta      TxnMeta   `json:"meta,omitempty"`
}

// IsOpening reports whether this is the day's synthetic opening-balance entry.
func (t Transaction) IsOpening() bool {
	return t.Meta.IsOpening
}

// IsCorrection reports whether this adjustment reverses another adjustment.
func (t Transaction) IsCorrection() bool {
	return t.Type == Adjustment && t.Meta.ReversedAdjID != ""
}

// IsAdjustmentOriginal reports whether this adjustment opens its own chain,
// i.e. it is not a correction of another one.
func (t Transaction) IsAdjustmentOriginal() bool {
	return t.Type == Adjustment && t.Meta.ReversedAdjID == ""
}

// SignedAmount returns the entry's contribution to the day balance:
// income and adjustment amounts count as-is, expenses count negative.
func (t Transaction) SignedAmount() int64 {
	if t.Type == Expense {
		return -t.Amount
	}
	return t.Amount
}
