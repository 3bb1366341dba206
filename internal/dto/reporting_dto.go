package dto

import "github.com/Sdjishan552/fin/internal/core/domain"

// DailyReportResponse is the full payload the PDF/Excel generators consume.
// Totals always carries all four fields, even when zero.
type DailyReportResponse struct {
	DateKey             string                        `json:"dateKey"`
	OrderedEntries      []TransactionResponse         `json:"orderedEntries"`
	Totals              domain.DayTotals              `json:"totals"`
	TotalsDisplay       TotalsDisplay                 `json:"totalsDisplay"`
	SuspenseBalance     int64                         `json:"suspenseBalance"`
	ResolvedCorrections []TransactionResponse         `json:"resolvedCorrections"`
	EditLog             []EditLogResponse             `json:"editLog"`
	Denominations       *DenominationSnapshotResponse `json:"denominations,omitempty"`
}

// TotalsDisplay carries the pre-formatted INR strings print layouts use.
type TotalsDisplay struct {
	Income          string `json:"income"`
	Expense         string `json:"expense"`
	Balance         string `json:"balance"`
	BalanceInWords  string `json:"balanceInWords"`
	SuspenseBalance string `json:"suspenseBalance"`
}
