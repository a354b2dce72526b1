package background

import (
	"errors"

	"github.com/sirupsen/logrus"
)

const (
	// TaskPushNotification pushes a stored notification to the devices of its recipient
	TaskPushNotification = "push_notification"

	// DefaultQueue is the machinery queue shared by the api and the background workers
	DefaultQueue = "exchange_background"
)

var ErrBackgroundStarted = errors.New("background worker has started")

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "background")
}
