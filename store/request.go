package store

import (
	"context"

	"github.com/bitmark-inc/exchange-api/schema"
)

func (s *ExchangeStore) CreateRequest(ctx context.Context, r *schema.Request) error {
	if err := s.db(ctx).Create(r).Error; err != nil {
		return translateError(err, "request", r.ID)
	}
	return nil
}

func (s *ExchangeStore) GetRequest(ctx context.Context, id string) (*schema.Request, error) {
	var r schema.Request
	if err := s.db(ctx).Where("id = ?", id).First(&r).Error; err != nil {
		return nil, translateError(err, "request", id)
	}
	return &r, nil
}

func (s *ExchangeStore) ListRequests(ctx context.Context, filter RequestFilter) ([]schema.Request, error) {
	limit, offset := pageOf(filter.Limit, filter.Offset)

	q := s.db(ctx).Model(schema.Request{})
	if filter.RequesterID != "" {
		q = q.Where("requester_id = ?", filter.RequesterID)
	}
	if filter.CharitarianID != "" {
		q = q.Where("charitarian_id = ?", filter.CharitarianID)
	}
	if filter.ItemID != "" {
		q = q.Where("charitarian_item_id = ?", filter.ItemID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	requests := []schema.Request{}
	if err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// ApproveRequest sets a request to `APPROVED`. A request could be updated
// only when its status is `PENDING`.
func (s *ExchangeStore) ApproveRequest(ctx context.Context, id, message string) error {
	return s.leavePending(ctx, id, map[string]interface{}{
		"status":          schema.RequestApproved,
		"approve_message": message,
	})
}

// RejectRequest sets a request to `REJECTED` along with the reason
func (s *ExchangeStore) RejectRequest(ctx context.Context, id, message string) error {
	return s.leavePending(ctx, id, map[string]interface{}{
		"status":         schema.RequestRejected,
		"reject_message": message,
	})
}

func (s *ExchangeStore) leavePending(ctx context.Context, id string, values map[string]interface{}) error {
	result := s.db(ctx).Model(schema.Request{}).
		Where("id = ? AND status = ?", id, schema.RequestPending).
		Updates(values)
	if result.Error != nil {
		return translateError(result.Error, "request", id)
	}

	if result.RowsAffected == 0 {
		return schema.NewInvalidStateError("request %s is no longer pending", id)
	}
	return nil
}

// HoldPendingRequests moves every other pending request of the item to `HOLD_ON`
// and returns them as they are after the update
func (s *ExchangeStore) HoldPendingRequests(ctx context.Context, itemID, exceptID string) ([]schema.Request, error) {
	return s.moveRequests(ctx, itemID, exceptID, schema.RequestPending, schema.RequestHoldOn)
}

// ReopenHeldRequests moves every `HOLD_ON` request of the item back to `PENDING`
func (s *ExchangeStore) ReopenHeldRequests(ctx context.Context, itemID string) ([]schema.Request, error) {
	return s.moveRequests(ctx, itemID, "", schema.RequestHoldOn, schema.RequestPending)
}

func (s *ExchangeStore) moveRequests(ctx context.Context, itemID, exceptID string, from, to schema.RequestStatus) ([]schema.Request, error) {
	db := s.db(ctx)

	q := db.Where("charitarian_item_id = ? AND status = ?", itemID, from)
	if exceptID != "" {
		q = q.Where("id <> ?", exceptID)
	}

	requests := []schema.Request{}
	if err := q.Set("gorm:query_option", "FOR UPDATE").Find(&requests).Error; err != nil {
		return nil, err
	}
	if len(requests) == 0 {
		return requests, nil
	}

	ids := make([]string, 0, len(requests))
	for _, r := range requests {
		ids = append(ids, r.ID)
	}

	if err := db.Model(schema.Request{}).
		Where("id IN (?) AND status = ?", ids, from).
		Update("status", to).Error; err != nil {
		return nil, err
	}

	for i := range requests {
		requests[i].Status = to
	}
	return requests, nil
}
