package expiry

import (
	"time"

	"github.com/getsentry/sentry-go"
	"go.uber.org/cadence"
	"go.uber.org/cadence/workflow"
	"go.uber.org/zap"
)

var activityOptions = workflow.ActivityOptions{
	ScheduleToStartTimeout: time.Minute,
	StartToCloseTimeout:    time.Minute,
	HeartbeatTimeout:       time.Second * 20,
	RetryPolicy: &cadence.RetryPolicy{
		InitialInterval:    time.Second,
		BackoffCoefficient: 2,
		MaximumInterval:    time.Minute,
		ExpirationInterval: 10 * time.Minute,
		MaximumAttempts:    5,
	},
}

// ItemAvailabilityWorkflow sleeps until the availability window of an item is
// over and then expires the item. An item committed to a transaction or
// already moderated away is left untouched by the activity.
func (w *ExpiryWorker) ItemAvailabilityWorkflow(ctx workflow.Context, itemID string, until time.Time) error {
	ctx = workflow.WithActivityOptions(ctx, activityOptions)

	logger := workflow.GetLogger(ctx)

	if wait := until.Sub(workflow.Now(ctx)); wait > 0 {
		if err := workflow.NewTimer(ctx, wait).Get(ctx, nil); err != nil {
			return err
		}
	}

	var expired bool
	if err := workflow.ExecuteActivity(ctx, w.ExpireItemActivity, itemID).Get(ctx, &expired); err != nil {
		logger.Error("Fail to expire item", zap.Error(err), zap.String("item", itemID))
		sentry.CaptureException(err)
		return err
	}

	logger.Info("Item availability checked", zap.String("item", itemID), zap.Bool("expired", expired))
	return nil
}
