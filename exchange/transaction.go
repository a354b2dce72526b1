package exchange

import (
	"context"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/bitmark-inc/exchange-api/schema"
	"github.com/bitmark-inc/exchange-api/store"
)

const (
	defaultQRCodeSize = 256
	minQRCodeSize     = 128
	maxQRCodeSize     = 1024
)

type TransactionQuery struct {
	ItemID string
	Status schema.TransactionStatus
	Limit  int
	Offset int
}

// GetTransaction returns a transaction to either of its participants
func (s *Service) GetTransaction(ctx context.Context, callerID, transactionID string) (*schema.Transaction, error) {
	t, err := s.store.GetTransaction(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if !t.IsParticipant(callerID) {
		return nil, schema.NewPermissionError("transaction %s belongs to other accounts", transactionID)
	}
	return t, nil
}

func (s *Service) ListTransactions(ctx context.Context, callerID string, q TransactionQuery) ([]schema.Transaction, error) {
	if q.Status != "" && !q.Status.Valid() {
		return nil, schema.NewValidationError("unknown transaction status %q", q.Status)
	}
	return s.store.ListTransactions(ctx, store.TransactionFilter{
		AccountID: callerID,
		ItemID:    q.ItemID,
		Status:    q.Status,
		Limit:     q.Limit,
		Offset:    q.Offset,
	})
}

// finishTransaction runs a terminal transition of a transaction owned by the
// charitarian. Locks are taken item first, in the same order as approvals.
func (s *Service) finishTransaction(ctx context.Context, callerID, transactionID string, event schema.TransactionEvent,
	apply func(ctx context.Context, t *schema.Transaction, item *schema.Item) error) (*schema.Transaction, error) {

	var transaction *schema.Transaction
	err := s.store.WithTx(ctx, func(ctx context.Context) error {
		t, err := s.store.GetTransaction(ctx, transactionID)
		if err != nil {
			return err
		}
		if t.Charitarian.ID != callerID {
			return schema.NewPermissionError("only the charitarian finishes transaction %s", transactionID)
		}

		item, err := s.store.GetItemForUpdate(ctx, t.ItemID)
		if err != nil {
			return err
		}

		if transaction, err = s.store.GetTransactionForUpdate(ctx, transactionID); err != nil {
			return err
		}
		next, err := transaction.Status.Next(event)
		if err != nil {
			return err
		}

		if err := apply(ctx, transaction, item); err != nil {
			return err
		}
		transaction.Status = next
		return nil
	})
	if err != nil {
		return nil, err
	}
	return transaction, nil
}

// VerifyTransaction completes the exchange after the charitarian has met the
// requester in person. The item becomes EXCHANGED.
func (s *Service) VerifyTransaction(ctx context.Context, callerID, transactionID string) (*schema.Transaction, error) {
	now := s.clock.Now()

	t, err := s.finishTransaction(ctx, callerID, transactionID, schema.TransactionEventVerify,
		func(ctx context.Context, t *schema.Transaction, item *schema.Item) error {
			if err := s.store.CompleteTransaction(ctx, t.ID, now); err != nil {
				return err
			}
			t.CompletedAt = &now

			next, err := item.Status.Next(schema.ItemEventExchange)
			if err != nil {
				return err
			}
			return s.store.UpdateItemStatus(ctx, item.ID, item.Status, next)
		})
	if err != nil {
		return nil, err
	}

	s.count("transaction.completed")
	s.notify(ctx, []schema.Notification{
		s.newNotification(t.Requester.ID, schema.NotificationTransactionCompleted, schema.EntityTransaction, t.ID),
	})
	return t, nil
}

// RejectTransaction ends the exchange without handing the item over. The item
// is offered again and the requests held for this transaction return to PENDING.
func (s *Service) RejectTransaction(ctx context.Context, callerID, transactionID, message string) (*schema.Transaction, error) {
	if err := schema.ValidateMessage(true, message); err != nil {
		return nil, err
	}

	now := s.clock.Now()

	var (
		reopened []schema.Request
		ownerID  string
		expired  bool
	)
	t, err := s.finishTransaction(ctx, callerID, transactionID, schema.TransactionEventFail,
		func(ctx context.Context, t *schema.Transaction, item *schema.Item) error {
			if err := s.store.FailTransaction(ctx, t.ID, message, now); err != nil {
				return err
			}
			t.RejectMessage = message
			t.CompletedAt = &now

			if item.Status == schema.ItemInTransaction {
				next, err := item.Status.Next(schema.ItemEventRelease)
				if err != nil {
					return err
				}
				if err := s.store.UpdateItemStatus(ctx, item.ID, item.Status, next); err != nil {
					return err
				}
				item.Status = next

				// the expiry workflow skipped the item while it was committed
				if item.Elapsed(now) {
					if next, err = item.Status.Next(schema.ItemEventExpire); err != nil {
						return err
					}
					if err := s.store.UpdateItemStatus(ctx, item.ID, item.Status, next); err != nil {
						return err
					}
					item.Status = next
					ownerID = item.OwnerID
					expired = true
				}
			}

			var err error
			reopened, err = s.store.ReopenHeldRequests(ctx, item.ID)
			return err
		})
	if err != nil {
		return nil, err
	}

	s.count("transaction.not_completed")

	notifications := []schema.Notification{
		s.newNotification(t.Requester.ID, schema.NotificationTransactionNotCompleted, schema.EntityTransaction, t.ID),
	}
	if expired {
		s.count("item.expired")
		notifications = append(notifications,
			s.newNotification(ownerID, schema.NotificationItemOutOfDate, schema.EntityItem, t.ItemID))
	}
	for _, r := range reopened {
		notifications = append(notifications,
			s.newNotification(r.RequesterID, schema.NotificationRequestReopened, schema.EntityRequest, r.ID))
	}
	s.notify(ctx, notifications)

	return t, nil
}

// GenerateVerificationCode renders the QR code a participant shows at the
// meeting. The code carries the bare transaction id, it proves nothing by
// itself, the charitarian still has to meet the requester.
func (s *Service) GenerateVerificationCode(ctx context.Context, callerID, transactionID string, size int) ([]byte, error) {
	t, err := s.GetTransaction(ctx, callerID, transactionID)
	if err != nil {
		return nil, err
	}
	if t.Status != schema.TransactionInProgress {
		return nil, schema.NewInvalidStateError("transaction %s is %s", t.ID, t.Status)
	}

	if size == 0 {
		size = defaultQRCodeSize
	}
	if size < minQRCodeSize || size > maxQRCodeSize {
		return nil, schema.NewValidationError("qr code size must be within %d and %d", minQRCodeSize, maxQRCodeSize)
	}

	return qrcode.Encode(t.ID, qrcode.Medium, size)
}
