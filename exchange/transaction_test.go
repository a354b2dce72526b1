package exchange

import (
	"bytes"
	"errors"
	"time"

	"github.com/bitmark-inc/exchange-api/schema"
)

// approved opens a transaction on the item and holds one sibling request
func (s *ExchangeTestSuite) approved() (*schema.Transaction, *schema.Request) {
	r := s.giftRequest(s.requester.ID, s.item.ID)
	sibling := s.giftRequest(s.other.ID, s.item.ID)
	t, err := s.service.ApproveRequest(s.ctx, s.owner.ID, r.ID, s.morning, "")
	s.Require().NoError(err)
	s.notifier.reset()
	return t, sibling
}

func (s *ExchangeTestSuite) TestVerifyTransaction() {
	t, sibling := s.approved()

	_, err := s.service.VerifyTransaction(s.ctx, s.requester.ID, t.ID)
	s.True(errors.Is(err, schema.ErrPermission))

	s.clock.Advance(48 * time.Hour)
	verified, err := s.service.VerifyTransaction(s.ctx, s.owner.ID, t.ID)
	s.Require().NoError(err)
	s.Equal(schema.TransactionCompleted, verified.Status)
	s.NotNil(verified.CompletedAt)
	s.Equal(schema.TransactionCompleted, s.store.transactions[t.ID].Status)
	s.Equal(schema.ItemExchanged, s.itemStatus(s.item.ID))
	s.Equal(schema.RequestHoldOn, s.requestStatus(sibling.ID))
	s.Equal([]schema.NotificationType{schema.NotificationTransactionCompleted}, s.notificationTypes(s.requester.ID))

	_, err = s.service.VerifyTransaction(s.ctx, s.owner.ID, t.ID)
	s.True(errors.Is(err, schema.ErrInvalidState))
	_, err = s.service.RejectTransaction(s.ctx, s.owner.ID, t.ID, "too late")
	s.True(errors.Is(err, schema.ErrInvalidState))
}

func (s *ExchangeTestSuite) TestRejectTransaction() {
	t, sibling := s.approved()

	_, err := s.service.RejectTransaction(s.ctx, s.owner.ID, t.ID, "")
	s.True(errors.Is(err, schema.ErrValidation))
	s.Equal(schema.TransactionInProgress, s.store.transactions[t.ID].Status)

	rejected, err := s.service.RejectTransaction(s.ctx, s.owner.ID, t.ID, "item damaged")
	s.Require().NoError(err)
	s.Equal(schema.TransactionNotCompleted, rejected.Status)
	s.Equal("item damaged", s.store.transactions[t.ID].RejectMessage)
	s.Equal(schema.ItemApproved, s.itemStatus(s.item.ID))
	s.Equal(schema.RequestPending, s.requestStatus(sibling.ID))
	s.Equal(schema.RequestApproved, s.requestStatus(t.RequestID))

	s.Equal([]schema.NotificationType{schema.NotificationTransactionNotCompleted}, s.notificationTypes(s.requester.ID))
	s.Equal([]schema.NotificationType{schema.NotificationRequestReopened}, s.notificationTypes(s.other.ID))

	// the reopened request can be approved in turn
	next, err := s.service.ApproveRequest(s.ctx, s.owner.ID, sibling.ID, s.afternoon, "")
	s.Require().NoError(err)
	s.Equal(schema.TransactionInProgress, next.Status)
	s.Equal(schema.ItemInTransaction, s.itemStatus(s.item.ID))
}

func (s *ExchangeTestSuite) TestGetAndListTransactions() {
	t, _ := s.approved()

	_, err := s.service.GetTransaction(s.ctx, s.requester.ID, t.ID)
	s.NoError(err)
	_, err = s.service.GetTransaction(s.ctx, s.other.ID, t.ID)
	s.True(errors.Is(err, schema.ErrPermission))
	_, err = s.service.GetTransaction(s.ctx, s.owner.ID, "missing")
	s.True(errors.Is(err, schema.ErrNotFound))

	list, err := s.service.ListTransactions(s.ctx, s.owner.ID, TransactionQuery{Status: schema.TransactionInProgress})
	s.NoError(err)
	s.Len(list, 1)

	list, err = s.service.ListTransactions(s.ctx, s.other.ID, TransactionQuery{})
	s.NoError(err)
	s.Empty(list)
}

func (s *ExchangeTestSuite) TestGenerateVerificationCode() {
	t, _ := s.approved()

	png, err := s.service.GenerateVerificationCode(s.ctx, s.requester.ID, t.ID, 0)
	s.Require().NoError(err)
	s.True(bytes.HasPrefix(png, []byte("\x89PNG")))

	_, err = s.service.GenerateVerificationCode(s.ctx, s.requester.ID, t.ID, 64)
	s.True(errors.Is(err, schema.ErrValidation))
	_, err = s.service.GenerateVerificationCode(s.ctx, s.other.ID, t.ID, 0)
	s.True(errors.Is(err, schema.ErrPermission))

	_, err = s.service.VerifyTransaction(s.ctx, s.owner.ID, t.ID)
	s.Require().NoError(err)
	_, err = s.service.GenerateVerificationCode(s.ctx, s.requester.ID, t.ID, 0)
	s.True(errors.Is(err, schema.ErrInvalidState))
}

func (s *ExchangeTestSuite) TestRejectTransactionAfterAvailability() {
	until := s.clock.Now().Add(24 * time.Hour)
	item := s.store.items[s.item.ID]
	item.AvailableUntil = &until
	s.store.items[s.item.ID] = item

	t, sibling := s.approved()

	s.clock.Advance(48 * time.Hour)
	expired, err := s.service.ExpireItem(s.ctx, s.item.ID)
	s.Require().NoError(err)
	s.False(expired)
	s.Equal(schema.ItemInTransaction, s.itemStatus(s.item.ID))

	_, err = s.service.RejectTransaction(s.ctx, s.owner.ID, t.ID, "no show")
	s.Require().NoError(err)
	s.Equal(schema.ItemOutOfDate, s.itemStatus(s.item.ID))
	s.Equal(schema.RequestPending, s.requestStatus(sibling.ID))
	s.Equal([]schema.NotificationType{schema.NotificationItemOutOfDate}, s.notificationTypes(s.owner.ID))

	_, err = s.service.ApproveRequest(s.ctx, s.owner.ID, sibling.ID, s.afternoon, "")
	s.True(errors.Is(err, schema.ErrInvalidState))
}
