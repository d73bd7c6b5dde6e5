package db

import (
	"context"
	"time"

	"github.com/avito-tech/go-transaction-manager/trm"
	"go.uber.org/zap"

	"github.com/msavelyev/adledger/internal/apperrors"
)

const (
	busyAttempts = 3
	retryBackoff = 50 * time.Millisecond
)

// DoWithRetry runs fn in a managed transaction, rerunning the unit of work on
// serialization or deadlock failures a bounded number of times with backoff,
// then surfaces apperrors.ErrBusy to the caller. Any other error is returned
// as is.
func DoWithRetry(ctx context.Context, trManager trm.Manager, trSettings trm.Settings, logger *zap.Logger, fn func(ctx context.Context) error) error {
	var err error
	for attempt := 0; attempt < busyAttempts; attempt++ {
		err = trManager.DoWithSettings(ctx, trSettings, fn)
		if err == nil || !apperrors.IsBusy(err) {
			return err
		}

		logger.Info("retrying on contention", zap.Int("attempt", attempt+1), zap.Error(err))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt+1) * retryBackoff):
		}
	}

	return apperrors.ErrBusy
}
