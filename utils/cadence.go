package utils

import (
	"context"
	"fmt"
	"time"

	cadenceClient "go.uber.org/cadence/client"

	"github.com/bitmark-inc/exchange-api/external/cadence"
)

const (
	ExpiryTaskListName         = "exchange-expiry-tasks"
	ItemAvailabilityWorkflow   = "ItemAvailabilityWorkflow"
	itemExpiryWorkflowIDFormat = "item-expiry-%s"

	// expiryGracePeriod keeps the workflow alive past the deadline long
	// enough to run the expiry activity
	expiryGracePeriod = time.Hour
)

// ItemExpiryScheduler starts a workflow that waits for the end of an item's
// availability window and expires the item
type ItemExpiryScheduler struct {
	client cadence.WorkflowStarter
	clock  Clock
}

func NewItemExpiryScheduler(client cadence.WorkflowStarter, clock Clock) *ItemExpiryScheduler {
	return &ItemExpiryScheduler{
		client: client,
		clock:  clock,
	}
}

func (s *ItemExpiryScheduler) ScheduleItemExpiry(ctx context.Context, itemID string, until time.Time) error {
	wait := until.Sub(s.clock.Now())
	if wait < 0 {
		wait = 0
	}

	_, err := s.client.StartWorkflow(ctx, cadenceClient.StartWorkflowOptions{
		ID:                           fmt.Sprintf(itemExpiryWorkflowIDFormat, itemID),
		TaskList:                     ExpiryTaskListName,
		ExecutionStartToCloseTimeout: wait + expiryGracePeriod,
		WorkflowIDReusePolicy:        cadenceClient.WorkflowIDReusePolicyAllowDuplicate,
	}, ItemAvailabilityWorkflow, itemID, until)
	return err
}
