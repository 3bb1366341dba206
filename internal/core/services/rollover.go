package services

import (
	"context"
	"log/slog"
	"time"

	portssvc "github.com/Sdjishan552/fin/internal/core/ports/services"
)

// RolloverWatcher notices the business-timezone date changing while the
// process is running and creates the new day's opening balance. The check is
// cheap and EnsureOpeningBalance is idempotent, so racing a foreground write
// that also triggers the opening is harmless.
type RolloverWatcher struct {
	ledgerSvc portssvc.LedgerSvcFacade
	interval  time.Duration
	logger    *slog.Logger

	lastDate string
}

// NewRolloverWatcher creates a watcher polling at the given interval.
func NewRolloverWatcher(ledgerSvc portssvc.LedgerSvcFacade, interval time.Duration, logger *slog.Logger) *RolloverWatcher {
	return &RolloverWatcher{
		ledgerSvc: ledgerSvc,
		interval:  interval,
		logger:    logger,
		lastDate:  ledgerSvc.Today(),
	}
}

// Run blocks until ctx is cancelled, checking for a date change every tick.
func (w *RolloverWatcher) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.checkOnce(ctx)
		}
	}
}

func (w *RolloverWatcher) checkOnce(ctx context.Context) {
	today := w.ledgerSvc.Today()
	if today == w.lastDate {
		return
	}

	w.logger.Info("Day rollover detected",
		slog.String("previous", w.lastDate),
		slog.String("current", today))

	if err := w.ledgerSvc.EnsureOpeningBalance(ctx, today); err != nil {
		// Keep lastDate stale so the next tick retries.
		w.logger.Error("Failed to create opening balance on rollover",
			slog.String("date_key", today), slog.String("error", err.Error()))
		return
	}
	w.lastDate = today
}
