package expiry

import (
	"context"
	"errors"

	"go.uber.org/cadence/activity"
	"go.uber.org/zap"

	"github.com/bitmark-inc/exchange-api/schema"
)

// ExpireItemActivity expires the item when it is still approved and due
func (w *ExpiryWorker) ExpireItemActivity(ctx context.Context, itemID string) (bool, error) {
	logger := activity.GetLogger(ctx)

	expired, err := w.exchange.ExpireItem(ctx, itemID)
	if err != nil {
		if errors.Is(err, schema.ErrNotFound) {
			logger.Warn("Item to expire is gone", zap.String("item", itemID))
			return false, nil
		}
		return false, err
	}
	return expired, nil
}
