package dto

import (
	"time"

	"github.com/Sdjishan552/fin/internal/core/domain"
)

// ReconcileRequest carries the physical count, keyed by denomination value.
type ReconcileRequest struct {
	Values domain.DenominationCount `json:"values" binding:"required"`
}

// ReconcileResponse is the outcome of a reconciliation run.
type ReconcileResponse struct {
	DateKey    string               `json:"dateKey"`
	DenomTotal int64                `json:"denomTotal"`
	Balance    int64                `json:"balance"`
	Diff       int64                `json:"diff"`
	Matched    bool                 `json:"matched"`
	Adjustment *TransactionResponse `json:"adjustment,omitempty"`
}

// DenominationSnapshotResponse is a saved physical count.
type DenominationSnapshotResponse struct {
	DateKey string                   `json:"dateKey"`
	Values  domain.DenominationCount `json:"values"`
	Total   int64                    `json:"total"`
	SavedAt time.Time                `json:"savedAt"`
}

// ToReconcileResponse maps a reconcile result to its API shape.
func ToReconcileResponse(res domain.ReconcileResult) ReconcileResponse {
	resp := ReconcileResponse{
		DateKey:    res.DateKey,
		DenomTotal: res.DenomTotal,
		Balance:    res.Balance,
		Diff:       res.Diff,
		Matched:    res.Diff == 0,
	}
	if res.Adjustment != nil {
		adj := ToTransactionResponse(*res.Adjustment)
		resp.Adjustment = &adj
	}
	return resp
}

// ToSnapshotResponse maps a snapshot to its API shape.
func ToSnapshotResponse(s domain.DenominationSnapshot) DenominationSnapshotResponse {
	return DenominationSnapshotResponse{
		DateKey: s.DateKey,
		Values:  s.Values,
		Total:   s.Total,
		SavedAt: s.SavedAt,
	}
}
