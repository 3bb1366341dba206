package dto

import (
	"time"

	"github.com/Sdjishan552/fin/internal/core/domain"
)

// CreateEntryRequest is the payload for a new income/expense entry.
// Corrections and adjustments have their own flows and are never created
// through this request.
type CreateEntryRequest struct {
	DateKey string           `json:"dateKey" binding:"required,datekey"`
	Type    domain.EntryType `json:"type" binding:"required,oneof=income expense"`
	Amount  int64            `json:"amount" binding:"required,gt=0"`
	Note    string           `json:"note"`
	// ConfirmRecalculation acknowledges that a past-dated entry updates the
	// opening balances of every later day. Required for past dates.
	ConfirmRecalculation bool `json:"confirmRecalculation"`
}

// TransactionResponse mirrors a ledger entry for API consumers.
type TransactionResponse struct {
	ID        string           `json:"id"`
	DateKey   string           `json:"dateKey"`
	CreatedAt time.Time        `json:"createdAt"`
	Type      domain.EntryType `json:"type"`
	Amount    int64            `json:"amount"`
	Note      string           `json:"note"`
	Meta      domain.TxnMeta   `json:"meta,omitempty"`
}

// DayDataResponse is one day's ordered entries plus totals.
type DayDataResponse struct {
	DateKey        string                `json:"dateKey"`
	Status         domain.DayStatus      `json:"status"`
	OrderedEntries []TransactionResponse `json:"orderedEntries"`
	Totals         domain.DayTotals      `json:"totals"`
}

// ToTransactionResponse maps a domain transaction to its API shape.
func ToTransactionResponse(txn domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:        txn.ID,
		DateKey:   txn.DateKey,
		CreatedAt: txn.CreatedAt,
		Type:      txn.Type,
		Amount:    txn.Amount,
		Note:      txn.Note,
		Meta:      txn.Meta,
	}
}

// ToTransactionResponses maps a slice of domain transactions.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		out[i] = ToTransactionResponse(txn)
	}
	return out
}
