package schema

import (
	"time"
)

const (
	NotificationCollection = "notification"
	ReportCollection       = "report"
)

type NotificationType string

const (
	NotificationRequestCreated          NotificationType = "REQUEST_CREATED"
	NotificationRequestApproved         NotificationType = "REQUEST_APPROVED"
	NotificationRequestRejected         NotificationType = "REQUEST_REJECTED"
	NotificationRequestHoldOn           NotificationType = "REQUEST_HOLD_ON"
	NotificationRequestReopened         NotificationType = "REQUEST_REOPENED"
	NotificationTransactionCompleted    NotificationType = "TRANSACTION_COMPLETED"
	NotificationTransactionNotCompleted NotificationType = "TRANSACTION_NOT_COMPLETED"
	NotificationTransactionRated        NotificationType = "TRANSACTION_RATED"
	NotificationItemApproved            NotificationType = "ITEM_APPROVED"
	NotificationItemRejected            NotificationType = "ITEM_REJECTED"
	NotificationItemOutOfDate           NotificationType = "ITEM_OUT_OF_DATE"
)

// NotificationStatus tracks the mobile push delivery of a notification
type NotificationStatus string

const (
	NotificationPending    NotificationStatus = "PENDING"
	NotificationPushed     NotificationStatus = "PUSHED"
	NotificationPushFailed NotificationStatus = "PUSH_FAILED"
)

type EntityType string

const (
	EntityItem        EntityType = "item"
	EntityRequest     EntityType = "request"
	EntityTransaction EntityType = "transaction"
)

type NotificationData struct {
	Title      string     `json:"title" bson:"title"`
	Message    string     `json:"message" bson:"message"`
	EntityType EntityType `json:"entity_type" bson:"entity_type"`
	EntityID   string     `json:"entity_id" bson:"entity_id"`
}

type Notification struct {
	ID        string             `json:"id" bson:"id"`
	AccountID string             `json:"account_id" bson:"account_id"`
	Type      NotificationType   `json:"type" bson:"type"`
	Data      NotificationData   `json:"data" bson:"data"`
	Read      bool               `json:"read" bson:"read"`
	ReadAt    *time.Time         `json:"read_at,omitempty" bson:"read_at,omitempty"`
	Status    NotificationStatus `json:"status" bson:"status"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}
