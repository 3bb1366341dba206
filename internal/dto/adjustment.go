package dto

import "github.com/Sdjishan552/fin/internal/core/domain"

// ApplyCorrectionRequest records a correction against an open adjustment.
// CoveringAmount is what the user actually put in or took out; the service
// clamps the reversal to the remaining open amount.
type ApplyCorrectionRequest struct {
	DateKey              string           `json:"dateKey" binding:"required,datekey"`
	CoveringType         domain.EntryType `json:"coveringType" binding:"required,oneof=income expense"`
	CoveringAmount       int64            `json:"coveringAmount" binding:"required,gt=0"`
	Note                 string           `json:"note"`
	ConfirmRecalculation bool             `json:"confirmRecalculation"`
}

// OpenAdjustmentResponse is one unresolved adjustment chain.
type OpenAdjustmentResponse struct {
	TransactionResponse
	OpenAmount int64 `json:"openAmount"`
}

// SuspenseBalanceResponse is the aggregate unresolved discrepancy.
type SuspenseBalanceResponse struct {
	SuspenseBalance int64  `json:"suspenseBalance"`
	Display         string `json:"display"`
}

// ToOpenAdjustmentResponses maps open adjustments to their API shape.
func ToOpenAdjustmentResponses(adjs []domain.OpenAdjustment) []OpenAdjustmentResponse {
	out := make([]OpenAdjustmentResponse, len(adjs))
	for i, adj := range adjs {
		out[i] = OpenAdjustmentResponse{
			TransactionResponse: ToTransactionResponse(adj.Transaction),
			OpenAmount:          adj.OpenAmount,
		}
	}
	return out
}
