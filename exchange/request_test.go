package exchange

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/bitmark-inc/exchange-api/schema"
)

func (s *ExchangeTestSuite) TestCreateRequestValidation() {
	base := CreateRequestInput{
		CharitarianItemID:     s.item.ID,
		RequestImages:         []string{"https://img.example.com/me.jpg"},
		AppointmentCandidates: []time.Time{s.morning},
	}

	both := base
	both.RequesterItemID = "mine"
	neither := base
	neither.RequestImages = nil
	tooManyTimes := base
	tooManyTimes.AppointmentCandidates = []time.Time{s.morning, s.afternoon, s.morning.Add(time.Hour), s.afternoon.Add(time.Hour)}
	noTimes := base
	noTimes.AppointmentCandidates = nil
	longMessage := base
	longMessage.Message = strings.Repeat("a", 101)

	for _, in := range []CreateRequestInput{both, neither, tooManyTimes, noTimes, longMessage} {
		_, err := s.service.CreateRequest(s.ctx, s.requester.ID, in)
		s.True(errors.Is(err, schema.ErrValidation), "%+v: %v", in, err)
	}
	s.Empty(s.store.requests)
}

func (s *ExchangeTestSuite) TestCreateRequestOnOwnItem() {
	_, err := s.service.CreateRequest(s.ctx, s.owner.ID, CreateRequestInput{
		CharitarianItemID:     s.item.ID,
		RequestImages:         []string{"https://img.example.com/me.jpg"},
		AppointmentCandidates: []time.Time{s.morning},
	})
	s.True(errors.Is(err, schema.ErrPermission))
}

func (s *ExchangeTestSuite) TestCreateRequestOnUnavailableItem() {
	pending := s.addItem("item-pending", s.owner.ID, schema.ItemPending)
	_, err := s.service.CreateRequest(s.ctx, s.requester.ID, CreateRequestInput{
		CharitarianItemID:     pending.ID,
		RequestImages:         []string{"https://img.example.com/me.jpg"},
		AppointmentCandidates: []time.Time{s.morning},
	})
	s.True(errors.Is(err, schema.ErrInvalidState))

	_, err = s.service.CreateRequest(s.ctx, s.requester.ID, CreateRequestInput{
		CharitarianItemID:     "missing",
		RequestImages:         []string{"https://img.example.com/me.jpg"},
		AppointmentCandidates: []time.Time{s.morning},
	})
	s.True(errors.Is(err, schema.ErrNotFound))

	until := s.clock.Now().Add(time.Hour)
	lapsed := s.addItem("item-lapsed", s.owner.ID, schema.ItemApproved)
	lapsed.AvailableUntil = &until
	s.store.items[lapsed.ID] = lapsed
	s.clock.Advance(2 * time.Hour)
	_, err = s.service.CreateRequest(s.ctx, s.requester.ID, CreateRequestInput{
		CharitarianItemID:     lapsed.ID,
		RequestImages:         []string{"https://img.example.com/me.jpg"},
		AppointmentCandidates: []time.Time{s.morning},
	})
	s.True(errors.Is(err, schema.ErrInvalidState))
}

func (s *ExchangeTestSuite) TestCreateRequestWithBlankOfferedItem() {
	r, err := s.service.CreateRequest(s.ctx, s.requester.ID, CreateRequestInput{
		CharitarianItemID:     s.item.ID,
		RequesterItemID:       "   ",
		RequestImages:         []string{"https://img.example.com/me.jpg"},
		AppointmentCandidates: []time.Time{s.morning},
	})
	s.Require().NoError(err)
	s.Empty(r.RequesterItemID)
	s.False(r.IsExchange())

	_, err = s.service.CreateRequest(s.ctx, s.other.ID, CreateRequestInput{
		CharitarianItemID:     s.item.ID,
		RequesterItemID:       "   ",
		AppointmentCandidates: []time.Time{s.morning},
	})
	s.True(errors.Is(err, schema.ErrValidation))
}

func (s *ExchangeTestSuite) TestCreateExchangeRequest() {
	offered := s.addItem("offered", s.requester.ID, schema.ItemApproved)
	foreign := s.addItem("foreign", s.other.ID, schema.ItemApproved)

	_, err := s.service.CreateRequest(s.ctx, s.requester.ID, CreateRequestInput{
		CharitarianItemID:     s.item.ID,
		RequesterItemID:       foreign.ID,
		AppointmentCandidates: []time.Time{s.morning},
	})
	s.True(errors.Is(err, schema.ErrPermission))

	r, err := s.service.CreateRequest(s.ctx, s.requester.ID, CreateRequestInput{
		CharitarianItemID:     s.item.ID,
		RequesterItemID:       offered.ID,
		AppointmentCandidates: []time.Time{s.morning},
	})
	s.NoError(err)
	s.True(r.IsExchange())
	s.Equal(schema.RequestPending, r.Status)
	s.Equal(s.owner.ID, r.CharitarianID)
	s.Equal([]schema.NotificationType{schema.NotificationRequestCreated}, s.notificationTypes(s.owner.ID))
}

func (s *ExchangeTestSuite) TestCreateDuplicatedOpenRequest() {
	s.giftRequest(s.requester.ID, s.item.ID)

	_, err := s.service.CreateRequest(s.ctx, s.requester.ID, CreateRequestInput{
		CharitarianItemID:     s.item.ID,
		RequestImages:         []string{"https://img.example.com/me.jpg"},
		AppointmentCandidates: []time.Time{s.morning},
	})
	s.True(errors.Is(err, schema.ErrConflict))
}

func (s *ExchangeTestSuite) TestApproveRequest() {
	r1 := s.giftRequest(s.requester.ID, s.item.ID)
	r2 := s.giftRequest(s.other.ID, s.item.ID)
	r3 := s.giftRequest(s.requester.ID, s.otherItem.ID)
	s.notifier.reset()

	t, err := s.service.ApproveRequest(s.ctx, s.owner.ID, r1.ID, s.afternoon, "see you")
	s.Require().NoError(err)

	s.Equal(schema.TransactionInProgress, t.Status)
	s.True(s.afternoon.Equal(t.AppointmentDate))
	s.Equal(r1.ID, t.RequestID)
	s.Equal(s.requester.ID, t.Requester.ID)
	s.Equal(s.owner.ID, t.Charitarian.ID)
	s.Equal(s.item.Name, t.Charitarian.ItemName)
	s.Equal("1 Gift Street", t.Charitarian.Address)

	s.Equal(schema.RequestApproved, s.requestStatus(r1.ID))
	s.Equal("see you", s.store.requests[r1.ID].ApproveMessage)
	s.Equal(schema.RequestHoldOn, s.requestStatus(r2.ID))
	s.Equal(schema.RequestPending, s.requestStatus(r3.ID))
	s.Equal(schema.ItemInTransaction, s.itemStatus(s.item.ID))
	s.Equal(schema.ItemApproved, s.itemStatus(s.otherItem.ID))

	s.Equal([]schema.NotificationType{schema.NotificationRequestApproved}, s.notificationTypes(s.requester.ID))
	s.Equal(t.ID, s.notifier.of(s.requester.ID)[0].Data.EntityID)
	s.Equal([]schema.NotificationType{schema.NotificationRequestHoldOn}, s.notificationTypes(s.other.ID))
}

func (s *ExchangeTestSuite) TestApproveRequestAtUnproposedTime() {
	r := s.giftRequest(s.requester.ID, s.item.ID)

	_, err := s.service.ApproveRequest(s.ctx, s.owner.ID, r.ID, s.afternoon.Add(time.Hour), "")
	s.True(errors.Is(err, schema.ErrValidation))
	s.Equal(schema.RequestPending, s.requestStatus(r.ID))
	s.Equal(schema.ItemApproved, s.itemStatus(s.item.ID))
	s.Empty(s.store.transactions)
}

func (s *ExchangeTestSuite) TestApproveRequestInOtherTimeZone() {
	r := s.giftRequest(s.requester.ID, s.item.ID)

	taipei := time.FixedZone("CST", 8*60*60)
	t, err := s.service.ApproveRequest(s.ctx, s.owner.ID, r.ID, s.morning.In(taipei), "")
	s.NoError(err)
	s.True(s.morning.Equal(t.AppointmentDate))
}

func (s *ExchangeTestSuite) TestApproveRequestByOthers() {
	r := s.giftRequest(s.requester.ID, s.item.ID)

	_, err := s.service.ApproveRequest(s.ctx, s.requester.ID, r.ID, s.morning, "")
	s.True(errors.Is(err, schema.ErrPermission))
	s.Equal(schema.RequestPending, s.requestStatus(r.ID))
}

func (s *ExchangeTestSuite) TestApproveRejectedRequest() {
	r := s.giftRequest(s.requester.ID, s.item.ID)
	_, err := s.service.RejectRequest(s.ctx, s.owner.ID, r.ID, "already promised")
	s.Require().NoError(err)

	_, err = s.service.ApproveRequest(s.ctx, s.owner.ID, r.ID, s.morning, "")
	s.True(errors.Is(err, schema.ErrInvalidState))
}

func (s *ExchangeTestSuite) TestConcurrentApprovals() {
	requests := []*schema.Request{}
	for i := 0; i < 5; i++ {
		requester := s.addAccount("requester-"+string(rune('a'+i)), schema.RoleUser)
		requests = append(requests, s.giftRequest(requester.ID, s.item.ID))
	}

	var wg sync.WaitGroup
	errs := make([]error, len(requests))
	for i, r := range requests {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			_, errs[i] = s.service.ApproveRequest(s.ctx, s.owner.ID, id, s.morning, "")
		}(i, r.ID)
	}
	wg.Wait()

	won, lost := 0, 0
	for _, err := range errs {
		if err == nil {
			won++
		} else if errors.Is(err, schema.ErrInvalidState) {
			lost++
		}
	}
	s.Equal(1, won)
	s.Equal(len(requests)-1, lost)

	inProgress := 0
	for _, t := range s.store.transactions {
		if t.ItemID == s.item.ID && t.Status == schema.TransactionInProgress {
			inProgress++
		}
	}
	s.Equal(1, inProgress)

	approved, held := 0, 0
	for _, r := range requests {
		switch s.requestStatus(r.ID) {
		case schema.RequestApproved:
			approved++
		case schema.RequestHoldOn:
			held++
		}
	}
	s.Equal(1, approved)
	s.Equal(len(requests)-1, held)
}

func (s *ExchangeTestSuite) TestRejectRequest() {
	r := s.giftRequest(s.requester.ID, s.item.ID)

	_, err := s.service.RejectRequest(s.ctx, s.owner.ID, r.ID, "")
	s.True(errors.Is(err, schema.ErrValidation))
	_, err = s.service.RejectRequest(s.ctx, s.owner.ID, r.ID, strings.Repeat("不", 101))
	s.True(errors.Is(err, schema.ErrValidation))
	_, err = s.service.RejectRequest(s.ctx, s.other.ID, r.ID, "no")
	s.True(errors.Is(err, schema.ErrPermission))

	rejected, err := s.service.RejectRequest(s.ctx, s.owner.ID, r.ID, strings.Repeat("不", 100))
	s.NoError(err)
	s.Equal(schema.RequestRejected, rejected.Status)
	s.Equal(schema.RequestRejected, s.requestStatus(r.ID))
	s.Contains(s.notificationTypes(s.requester.ID), schema.NotificationRequestRejected)

	_, err = s.service.RejectRequest(s.ctx, s.owner.ID, r.ID, "again")
	s.True(errors.Is(err, schema.ErrInvalidState))
}

func (s *ExchangeTestSuite) TestGetAndListRequests() {
	r := s.giftRequest(s.requester.ID, s.item.ID)
	s.giftRequest(s.other.ID, s.item.ID)

	_, err := s.service.GetRequest(s.ctx, s.owner.ID, r.ID)
	s.NoError(err)
	_, err = s.service.GetRequest(s.ctx, s.other.ID, r.ID)
	s.True(errors.Is(err, schema.ErrPermission))

	mine, err := s.service.ListRequests(s.ctx, s.requester.ID, RequestQuery{})
	s.NoError(err)
	s.Len(mine, 1)

	incoming, err := s.service.ListRequests(s.ctx, s.owner.ID, RequestQuery{Role: RoleCharitarian})
	s.NoError(err)
	s.Len(incoming, 2)

	_, err = s.service.ListRequests(s.ctx, s.owner.ID, RequestQuery{Role: "admin"})
	s.True(errors.Is(err, schema.ErrValidation))
}
