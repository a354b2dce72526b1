package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/exchange-api/consts"
	"github.com/bitmark-inc/exchange-api/schema"
)

type NotificationBox interface {
	AddNotifications(ctx context.Context, notifications []schema.Notification) error
	GetNotification(ctx context.Context, id string) (*schema.Notification, error)
	ListNotifications(ctx context.Context, accountID string, q NotificationQuery) ([]schema.Notification, error)
	CountUnreadNotifications(ctx context.Context, accountID string) (int64, error)
	MarkNotificationRead(ctx context.Context, accountID, id string, at time.Time) error
	MarkAllNotificationsRead(ctx context.Context, accountID string, at time.Time) (int64, error)
	UpdateNotificationStatus(ctx context.Context, id string, status schema.NotificationStatus) error
}

// NotificationQuery narrows a listing. Since and Before are exclusive bounds
// on the creation time, zero values leave the bound open.
type NotificationQuery struct {
	Since      time.Time
	Before     time.Time
	Limit      int64
	UnreadOnly bool
}

// AddNotifications stores notifications into the durable list. Re-adding an
// already stored notification is not an error.
func (m *mongoDB) AddNotifications(ctx context.Context, notifications []schema.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	docs := make([]interface{}, 0, len(notifications))
	for _, n := range notifications {
		docs = append(docs, n)
	}

	_, err := m.collection(schema.NotificationCollection).InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	if err != nil && !isDuplicateKey(err) {
		return err
	}
	return nil
}

func (m *mongoDB) GetNotification(ctx context.Context, id string) (*schema.Notification, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var n schema.Notification
	if err := m.collection(schema.NotificationCollection).FindOne(ctx, bson.M{"id": id}).Decode(&n); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, schema.NewNotFoundError("notification", id)
		}
		return nil, err
	}
	return &n, nil
}

// ListNotifications returns the newest notifications of an account first. The
// size of a page never exceeds the notification window.
func (m *mongoDB) ListNotifications(ctx context.Context, accountID string, q NotificationQuery) ([]schema.Notification, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"account_id": accountID}
	createdAt := bson.M{}
	if !q.Since.IsZero() {
		createdAt["$gt"] = q.Since
	}
	if !q.Before.IsZero() {
		createdAt["$lt"] = q.Before
	}
	if len(createdAt) > 0 {
		filter["created_at"] = createdAt
	}
	if q.UnreadOnly {
		filter["read"] = false
	}

	limit := q.Limit
	if limit <= 0 || limit > consts.NotificationWindow {
		limit = consts.NotificationWindow
	}

	cursor, err := m.collection(schema.NotificationCollection).Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(limit))
	if err != nil {
		return nil, err
	}

	notifications := make([]schema.Notification, 0)
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

func (m *mongoDB) CountUnreadNotifications(ctx context.Context, accountID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return m.collection(schema.NotificationCollection).CountDocuments(ctx, bson.M{
		"account_id": accountID,
		"read":       false,
	})
}

// MarkNotificationRead flips read to true. Marking a read notification again
// changes nothing, the first read time is kept.
func (m *mongoDB) MarkNotificationRead(ctx context.Context, accountID, id string, at time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c := m.collection(schema.NotificationCollection)
	result, err := c.UpdateOne(ctx,
		bson.M{"id": id, "account_id": accountID, "read": false},
		bson.M{"$set": bson.M{"read": true, "read_at": at}})
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		count, err := c.CountDocuments(ctx, bson.M{"id": id, "account_id": accountID})
		if err != nil {
			return err
		}
		if count == 0 {
			return schema.NewNotFoundError("notification", id)
		}
	}
	return nil
}

func (m *mongoDB) MarkAllNotificationsRead(ctx context.Context, accountID string, at time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := m.collection(schema.NotificationCollection).UpdateMany(ctx,
		bson.M{"account_id": accountID, "read": false},
		bson.M{"$set": bson.M{"read": true, "read_at": at}})
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}

// UpdateNotificationStatus records the push delivery result of a notification
func (m *mongoDB) UpdateNotificationStatus(ctx context.Context, id string, status schema.NotificationStatus) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := m.collection(schema.NotificationCollection).UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return schema.NewNotFoundError("notification", id)
	}
	return nil
}
