package services

import "context"

// AdminSvcFacade holds destructive maintenance operations.
type AdminSvcFacade interface {
	// WipeData verifies the PIN, erases all transactions and edit logs
	// (settings and saved denomination snapshots survive) and recreates
	// today's opening balance. A wrong PIN fails with apperrors.ErrForbidden.
	WipeData(ctx context.Context, pin string) error
}
