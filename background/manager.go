package background

import (
	"context"
	"errors"

	"github.com/RichardKnop/machinery/v1"

	"github.com/bitmark-inc/exchange-api/external/onesignal"
	"github.com/bitmark-inc/exchange-api/schema"
	"github.com/bitmark-inc/exchange-api/store"
)

// BackgroundManager is a struct for exchange background manager
type BackgroundManager struct {
	box store.NotificationBox

	center NotificationCenter

	taskServer *machinery.Server

	worker *machinery.Worker
}

func New(box store.NotificationBox, center NotificationCenter, taskServer *machinery.Server) *BackgroundManager {
	return &BackgroundManager{
		box:        box,
		center:     center,
		taskServer: taskServer,
	}
}

func (m *BackgroundManager) RegisterTask(name string, taskFunc interface{}) error {
	return m.taskServer.RegisterTask(name, taskFunc)
}

// Run spawn workers to execute background jobs
func (m *BackgroundManager) Run() error {
	if m.worker != nil {
		return ErrBackgroundStarted
	}
	m.worker = m.taskServer.NewWorker("exchange-worker", 5)
	return m.worker.Launch()
}

// PushNotification is a background job to push a stored notification to the
// devices of its recipient. The outcome is recorded on the notification.
func (m *BackgroundManager) PushNotification(notificationID, lang string) error {
	ctx := context.Background()

	n, err := m.box.GetNotification(ctx, notificationID)
	if err != nil {
		return err
	}
	if n.Status == schema.NotificationPushed {
		return nil
	}

	data := map[string]interface{}{
		"notification_id":   n.ID,
		"notification_type": n.Type,
		"entity_type":       n.Data.EntityType,
		"entity_id":         n.Data.EntityID,
	}
	pushErr := m.center.NotifyAccountByText(ctx, n.AccountID,
		localizedText(lang, n.Data.Title), localizedText(lang, n.Data.Message), data)

	status := schema.NotificationPushed
	if pushErr != nil {
		status = schema.NotificationPushFailed
		log.WithError(pushErr).WithField("notification", n.ID).Warn("fail to push notification")
	}
	if err := m.box.UpdateNotificationStatus(ctx, n.ID, status); err != nil {
		return err
	}

	// devices without a subscription will not get one by retrying
	if errors.Is(pushErr, onesignal.ErrNoRecipients) {
		return nil
	}
	return pushErr
}
