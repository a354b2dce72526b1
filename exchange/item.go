package exchange

import (
	"context"
	"strings"
	"time"

	"github.com/bitmark-inc/exchange-api/consts"
	"github.com/bitmark-inc/exchange-api/schema"
	"github.com/bitmark-inc/exchange-api/store"
)

type CreateItemInput struct {
	Name               string               `json:"name"`
	Description        string               `json:"description"`
	Category           string               `json:"category"`
	Subcategory        string               `json:"subcategory"`
	DesiredSubcategory string               `json:"desired_subcategory"`
	Condition          schema.ItemCondition `json:"condition"`
	IsGift             bool                 `json:"is_gift"`
	Quantity           int                  `json:"quantity"`
	Images             []string             `json:"images"`
	Video              string               `json:"video"`
	AvailableTime      string               `json:"available_time"`
	AvailableUntil     *time.Time           `json:"available_until"`
	Address            string               `json:"address"`
	Location           schema.Location      `json:"location"`
}

// CreateItem lists a new item. It waits in PENDING until a moderator reviews it.
func (s *Service) CreateItem(ctx context.Context, ownerID string, in CreateItemInput) (*schema.Item, error) {
	now := s.clock.Now()

	item := schema.Item{
		ID:                 s.newID(),
		OwnerID:            ownerID,
		Name:               in.Name,
		Description:        in.Description,
		Category:           in.Category,
		Subcategory:        in.Subcategory,
		DesiredSubcategory: in.DesiredSubcategory,
		Condition:          in.Condition,
		IsGift:             in.IsGift,
		Quantity:           in.Quantity,
		Images:             in.Images,
		Video:              in.Video,
		AvailableTime:      in.AvailableTime,
		AvailableUntil:     in.AvailableUntil,
		Address:            in.Address,
		Location:           in.Location,
		Status:             schema.ItemPending,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := item.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(item.Address) == "" {
		item.Address = s.resolveAddress(ctx, ownerID, item.Location)
	}
	if item.AvailableUntil != nil && !item.AvailableUntil.After(now) {
		return nil, schema.NewValidationError("available_until is in the past")
	}

	if err := s.store.CreateItem(ctx, &item); err != nil {
		return nil, err
	}

	s.count("item.created")
	return &item, nil
}

// resolveAddress names the meeting place of an item listed with coordinates
// only. The item is listed without an address when it cannot be resolved.
func (s *Service) resolveAddress(ctx context.Context, ownerID string, loc schema.Location) string {
	if s.addresses == nil || (loc.Latitude == 0 && loc.Longitude == 0) {
		return ""
	}

	language := consts.DefaultLanguage
	if owner, err := s.store.GetAccount(ctx, ownerID); err == nil && owner.Language != "" {
		language = owner.Language
	}

	address, err := s.addresses.ResolveAddress(ctx, loc, language)
	if err != nil {
		log.WithError(err).WithField("owner", ownerID).Warn("fail to resolve item address")
		return ""
	}
	return address
}

func (s *Service) GetItem(ctx context.Context, id string) (*schema.Item, error) {
	return s.store.GetItem(ctx, id)
}

// ListItems lists approved items unless the filter asks for an owner or a status
func (s *Service) ListItems(ctx context.Context, filter store.ItemFilter) ([]schema.Item, error) {
	if filter.Status == "" && filter.OwnerID == "" {
		filter.Status = schema.ItemApproved
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, schema.NewValidationError("unknown item status %q", filter.Status)
	}
	return s.store.ListItems(ctx, filter)
}

// ModerateItem approves or rejects a pending item. Approved items with an
// availability deadline get their expiry scheduled.
func (s *Service) ModerateItem(ctx context.Context, moderatorID, itemID string, approve bool) (*schema.Item, error) {
	moderator, err := s.store.GetAccount(ctx, moderatorID)
	if err != nil {
		return nil, err
	}
	if !moderator.IsModerator() {
		return nil, schema.NewPermissionError("account %s is not a moderator", moderatorID)
	}

	event, notificationType := schema.ItemEventModerateReject, schema.NotificationItemRejected
	if approve {
		event, notificationType = schema.ItemEventModerateApprove, schema.NotificationItemApproved
	}

	var item *schema.Item
	err = s.store.WithTx(ctx, func(ctx context.Context) error {
		var err error
		item, err = s.store.GetItemForUpdate(ctx, itemID)
		if err != nil {
			return err
		}

		next, err := item.Status.Next(event)
		if err != nil {
			return err
		}

		if err := s.store.UpdateItemStatus(ctx, item.ID, item.Status, next); err != nil {
			return err
		}
		item.Status = next
		return nil
	})
	if err != nil {
		return nil, err
	}

	if item.Status == schema.ItemApproved && item.AvailableUntil != nil && s.expiry != nil {
		if err := s.expiry.ScheduleItemExpiry(ctx, item.ID, *item.AvailableUntil); err != nil {
			log.WithError(err).WithField("item", item.ID).Error("fail to schedule item expiry")
		}
	}

	s.notify(ctx, []schema.Notification{
		s.newNotification(item.OwnerID, notificationType, schema.EntityItem, item.ID),
	})
	return item, nil
}

// ExpireItem moves an approved item whose availability window has elapsed to
// OUT_OF_DATE. It reports false when the item is not due, for example because
// it has been committed to a transaction meanwhile.
func (s *Service) ExpireItem(ctx context.Context, itemID string) (bool, error) {
	now := s.clock.Now()

	var item *schema.Item
	expired := false
	err := s.store.WithTx(ctx, func(ctx context.Context) error {
		var err error
		item, err = s.store.GetItemForUpdate(ctx, itemID)
		if err != nil {
			return err
		}

		if item.Status != schema.ItemApproved || !item.Elapsed(now) {
			return nil
		}

		next, err := item.Status.Next(schema.ItemEventExpire)
		if err != nil {
			return err
		}
		if err := s.store.UpdateItemStatus(ctx, item.ID, item.Status, next); err != nil {
			return err
		}
		item.Status = next
		expired = true
		return nil
	})
	if err != nil || !expired {
		return false, err
	}

	s.count("item.expired")
	s.notify(ctx, []schema.Notification{
		s.newNotification(item.OwnerID, schema.NotificationItemOutOfDate, schema.EntityItem, item.ID),
	})
	return true, nil
}
