package services

import (
	"context"

	"github.com/Sdjishan552/fin/internal/core/domain"
	"github.com/Sdjishan552/fin/internal/dto"
)

// AdjustmentSvcFacade tracks unresolved balance discrepancies and their
// corrections. All chain state is recomputed from full history on every call.
type AdjustmentSvcFacade interface {
	// ListOpenAdjustments returns every adjustment original whose chain still
	// has a non-zero open amount.
	ListOpenAdjustments(ctx context.Context) ([]domain.OpenAdjustment, error)

	// ApplyCorrection records a correction against an open adjustment. The
	// reversal never overshoots the remaining open amount. A target with no
	// open balance yields apperrors.ErrNotFound.
	ApplyCorrection(ctx context.Context, session domain.Session, originalID string, req dto.ApplyCorrectionRequest) (*domain.Transaction, error)

	// SuspenseBalance is the signed sum of all open amounts across history
	// (positive = cumulative excess, negative = cumulative shortage).
	SuspenseBalance(ctx context.Context) (int64, error)

	// ResolvedCorrections lists the correction entries recorded on a day,
	// for the daily report.
	ResolvedCorrections(ctx context.Context, dateKey string) ([]domain.Transaction, error)
}
