package store

import (
	"context"

	"github.com/bitmark-inc/exchange-api/schema"
)

func (s *ExchangeStore) CreateItem(ctx context.Context, item *schema.Item) error {
	if err := s.db(ctx).Create(item).Error; err != nil {
		return translateError(err, "item", item.ID)
	}
	return nil
}

func (s *ExchangeStore) GetItem(ctx context.Context, id string) (*schema.Item, error) {
	var item schema.Item
	if err := s.db(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, translateError(err, "item", id)
	}
	return &item, nil
}

// GetItemForUpdate reads an item and holds its row lock until the surrounding
// transaction ends. Every state change that involves an item takes this lock first.
func (s *ExchangeStore) GetItemForUpdate(ctx context.Context, id string) (*schema.Item, error) {
	var item schema.Item
	if err := s.forUpdate(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, translateError(err, "item", id)
	}
	return &item, nil
}

func (s *ExchangeStore) ListItems(ctx context.Context, filter ItemFilter) ([]schema.Item, error) {
	limit, offset := pageOf(filter.Limit, filter.Offset)

	q := s.db(ctx).Model(schema.Item{})
	if filter.OwnerID != "" {
		q = q.Where("owner_id = ?", filter.OwnerID)
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	items := []schema.Item{}
	if err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateItemStatus moves an item from one status to another. It fails with
// ErrInvalidState when the item is no longer in the expected status.
func (s *ExchangeStore) UpdateItemStatus(ctx context.Context, id string, from, to schema.ItemStatus) error {
	result := s.db(ctx).Model(schema.Item{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if result.Error != nil {
		return translateError(result.Error, "item", id)
	}

	if result.RowsAffected == 0 {
		return schema.NewInvalidStateError("item %s is not %s", id, from)
	}
	return nil
}
