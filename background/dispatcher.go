package background

import (
	"context"
	"time"

	"github.com/RichardKnop/machinery/v1/backends/result"
	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/getsentry/sentry-go"

	"github.com/bitmark-inc/exchange-api/consts"
	"github.com/bitmark-inc/exchange-api/schema"
	"github.com/bitmark-inc/exchange-api/store"
	"github.com/bitmark-inc/exchange-api/utils"
)

const deliverTimeout = 10 * time.Second

type AccountGetter interface {
	GetAccount(ctx context.Context, id string) (*schema.Account, error)
}

// Publisher fans a notification out to the live connections of its recipient
type Publisher interface {
	Publish(n schema.Notification)
}

type TaskSender interface {
	SendTask(signature *tasks.Signature) (*result.AsyncResult, error)
}

// Dispatcher delivers the notifications of committed state changes. A
// notification is stored first, so that a client reconciling through the
// list endpoint sees it even when the live publish or the push is lost.
type Dispatcher struct {
	accounts  AccountGetter
	box       store.NotificationBox
	publisher Publisher
	tasks     TaskSender
}

func NewDispatcher(accounts AccountGetter, box store.NotificationBox, publisher Publisher, tasks TaskSender) *Dispatcher {
	return &Dispatcher{
		accounts:  accounts,
		box:       box,
		publisher: publisher,
		tasks:     tasks,
	}
}

// Deliver runs after the state change is committed, it does not stop when
// the caller's context is done.
func (d *Dispatcher) Deliver(_ context.Context, notifications []schema.Notification) {
	ctx, cancel := context.WithTimeout(context.Background(), deliverTimeout)
	defer cancel()

	languages := map[string]string{}
	for i := range notifications {
		n := &notifications[i]
		lang, ok := languages[n.AccountID]
		if !ok {
			lang = consts.DefaultLanguage
			if a, err := d.accounts.GetAccount(ctx, n.AccountID); err == nil && a.Language != "" {
				lang = a.Language
			}
			languages[n.AccountID] = lang
		}
		utils.LocalizeNotification(lang, n)
	}

	if err := d.box.AddNotifications(ctx, notifications); err != nil {
		log.WithError(err).WithField("count", len(notifications)).Error("fail to store notifications")
		sentry.CaptureException(err)
		return
	}

	for _, n := range notifications {
		if d.publisher != nil {
			d.publisher.Publish(n)
		}

		if d.tasks == nil {
			continue
		}
		if _, err := d.tasks.SendTask(&tasks.Signature{
			Name: TaskPushNotification,
			Args: []tasks.Arg{
				{Type: "string", Value: n.ID},
				{Type: "string", Value: languages[n.AccountID]},
			},
		}); err != nil {
			log.WithError(err).WithField("notification", n.ID).Error("fail to enqueue push notification")
		}
	}
}
