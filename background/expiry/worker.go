package expiry

import (
	"context"

	"github.com/uber-go/tally"
	"go.uber.org/cadence/.gen/go/cadence/workflowserviceclient"
	"go.uber.org/cadence/activity"
	"go.uber.org/cadence/worker"
	"go.uber.org/cadence/workflow"
	"go.uber.org/zap"

	"github.com/bitmark-inc/exchange-api/external/cadence"
	"github.com/bitmark-inc/exchange-api/utils"
)

// ItemExpirer expires an item once its availability window is over
type ItemExpirer interface {
	ExpireItem(ctx context.Context, itemID string) (bool, error)
}

type ExpiryWorker struct {
	domain   string
	exchange ItemExpirer
}

func NewExpiryWorker(domain string, exchange ItemExpirer) *ExpiryWorker {
	return &ExpiryWorker{
		domain:   domain,
		exchange: exchange,
	}
}

func (w *ExpiryWorker) Register() {
	workflow.RegisterWithOptions(w.ItemAvailabilityWorkflow, workflow.RegisterOptions{Name: utils.ItemAvailabilityWorkflow})

	activity.RegisterWithOptions(w.ExpireItemActivity, activity.RegisterOptions{Name: "ExpireItemActivity"})
}

func (w *ExpiryWorker) Start(service workflowserviceclient.Interface, logger *zap.Logger) {
	workerOptions := worker.Options{
		Logger:        logger,
		MetricsScope:  tally.NewTestScope(utils.ExpiryTaskListName, map[string]string{}),
		DataConverter: cadence.NewMsgPackDataConverter(),
	}

	worker := worker.New(
		service,
		w.domain,
		utils.ExpiryTaskListName,
		workerOptions)

	if err := worker.Start(); err != nil {
		panic("Failed to start worker")
	}

	logger.Info("Started Worker.", zap.String("worker", utils.ExpiryTaskListName))

	select {}
}
