package services

import (
	"context"

	"github.com/Sdjishan552/fin/internal/dto"
)

// ReportingSvcFacade assembles the read-only daily report payload consumed by
// the out-of-scope document generators.
type ReportingSvcFacade interface {
	// DailyReport returns entries, totals, suspense balance, resolved
	// corrections, edit log and any saved denomination snapshot for a day.
	DailyReport(ctx context.Context, dateKey string) (*dto.DailyReportResponse, error)
}
