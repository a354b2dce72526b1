package exchange

import (
	"context"
	"errors"
	"time"

	"github.com/bitmark-inc/exchange-api/schema"
	"github.com/bitmark-inc/exchange-api/store"
)

func (s *ExchangeTestSuite) newItemInput() CreateItemInput {
	until := s.clock.Now().Add(72 * time.Hour)
	return CreateItemInput{
		Name:           "bookshelf",
		Category:       "furniture",
		Condition:      schema.ConditionUsed,
		IsGift:         true,
		Quantity:       1,
		Images:         []string{"https://img.example.com/shelf.jpg"},
		AvailableUntil: &until,
	}
}

func (s *ExchangeTestSuite) TestCreateItem() {
	item, err := s.service.CreateItem(s.ctx, s.owner.ID, s.newItemInput())
	s.Require().NoError(err)
	s.Equal(schema.ItemPending, item.Status)
	s.Equal(s.owner.ID, item.OwnerID)

	in := s.newItemInput()
	in.Images = nil
	_, err = s.service.CreateItem(s.ctx, s.owner.ID, in)
	s.True(errors.Is(err, schema.ErrValidation))

	in = s.newItemInput()
	past := s.clock.Now().Add(-time.Hour)
	in.AvailableUntil = &past
	_, err = s.service.CreateItem(s.ctx, s.owner.ID, in)
	s.True(errors.Is(err, schema.ErrValidation))
}

type staticAddresses struct {
	address  string
	err      error
	language string
}

func (a *staticAddresses) ResolveAddress(ctx context.Context, loc schema.Location, language string) (string, error) {
	a.language = language
	return a.address, a.err
}

func (s *ExchangeTestSuite) TestCreateItemResolvesAddress() {
	addresses := &staticAddresses{address: "7 Xinyi Road, Taipei"}
	s.service = NewService(s.store, s.reports, s.notifier,
		WithClock(s.clock), WithAddressResolver(addresses))

	owner := s.store.accounts[s.owner.ID]
	owner.Language = "zh_tw"
	s.store.accounts[s.owner.ID] = owner

	in := s.newItemInput()
	in.Location = schema.Location{Latitude: 25.033, Longitude: 121.5654}
	item, err := s.service.CreateItem(s.ctx, s.owner.ID, in)
	s.Require().NoError(err)
	s.Equal("7 Xinyi Road, Taipei", item.Address)
	s.Equal("zh_tw", addresses.language)

	in.Address = "the red door"
	item, err = s.service.CreateItem(s.ctx, s.owner.ID, in)
	s.Require().NoError(err)
	s.Equal("the red door", item.Address)

	addresses.err = errors.New("over quota")
	in.Address = ""
	item, err = s.service.CreateItem(s.ctx, s.owner.ID, in)
	s.Require().NoError(err)
	s.Equal("", item.Address)
}

func (s *ExchangeTestSuite) TestListItems() {
	s.addItem("item-pending", s.owner.ID, schema.ItemPending)

	items, err := s.service.ListItems(s.ctx, store.ItemFilter{})
	s.NoError(err)
	s.Len(items, 2)

	items, err = s.service.ListItems(s.ctx, store.ItemFilter{OwnerID: s.owner.ID})
	s.NoError(err)
	s.Len(items, 3)

	_, err = s.service.ListItems(s.ctx, store.ItemFilter{Status: "SOLD"})
	s.True(errors.Is(err, schema.ErrValidation))
}

func (s *ExchangeTestSuite) TestModerateItem() {
	item, err := s.service.CreateItem(s.ctx, s.owner.ID, s.newItemInput())
	s.Require().NoError(err)

	_, err = s.service.ModerateItem(s.ctx, s.owner.ID, item.ID, true)
	s.True(errors.Is(err, schema.ErrPermission))

	moderated, err := s.service.ModerateItem(s.ctx, s.moderator.ID, item.ID, true)
	s.Require().NoError(err)
	s.Equal(schema.ItemApproved, moderated.Status)
	s.Equal(schema.ItemApproved, s.itemStatus(item.ID))
	s.True(item.AvailableUntil.Equal(s.expiry.scheduled[item.ID]))
	s.Equal([]schema.NotificationType{schema.NotificationItemApproved}, s.notificationTypes(s.owner.ID))

	_, err = s.service.ModerateItem(s.ctx, s.moderator.ID, item.ID, false)
	s.True(errors.Is(err, schema.ErrInvalidState))
}

func (s *ExchangeTestSuite) TestRejectItem() {
	item, err := s.service.CreateItem(s.ctx, s.owner.ID, s.newItemInput())
	s.Require().NoError(err)

	moderated, err := s.service.ModerateItem(s.ctx, s.moderator.ID, item.ID, false)
	s.Require().NoError(err)
	s.Equal(schema.ItemRejected, moderated.Status)
	s.Empty(s.expiry.scheduled)
}

func (s *ExchangeTestSuite) TestExpireItem() {
	item, err := s.service.CreateItem(s.ctx, s.owner.ID, s.newItemInput())
	s.Require().NoError(err)
	_, err = s.service.ModerateItem(s.ctx, s.moderator.ID, item.ID, true)
	s.Require().NoError(err)
	s.notifier.reset()

	expired, err := s.service.ExpireItem(s.ctx, item.ID)
	s.NoError(err)
	s.False(expired)
	s.Equal(schema.ItemApproved, s.itemStatus(item.ID))

	s.clock.Advance(72 * time.Hour)
	expired, err = s.service.ExpireItem(s.ctx, item.ID)
	s.NoError(err)
	s.True(expired)
	s.Equal(schema.ItemOutOfDate, s.itemStatus(item.ID))
	s.Equal([]schema.NotificationType{schema.NotificationItemOutOfDate}, s.notificationTypes(s.owner.ID))

	_, err = s.service.CreateRequest(s.ctx, s.requester.ID, CreateRequestInput{
		CharitarianItemID:     item.ID,
		RequestImages:         []string{"https://img.example.com/me.jpg"},
		AppointmentCandidates: []time.Time{s.morning},
	})
	s.True(errors.Is(err, schema.ErrInvalidState))
}

func (s *ExchangeTestSuite) TestExpireCommittedItem() {
	until := s.clock.Now().Add(time.Hour)
	item := s.store.items[s.item.ID]
	item.AvailableUntil = &until
	s.store.items[s.item.ID] = item
	s.approved()

	s.clock.Advance(2 * time.Hour)
	expired, err := s.service.ExpireItem(s.ctx, s.item.ID)
	s.NoError(err)
	s.False(expired)
	s.Equal(schema.ItemInTransaction, s.itemStatus(s.item.ID))
}
