package store

import (
	"context"
	"time"

	"github.com/bitmark-inc/exchange-api/schema"
)

func (s *ExchangeStore) CreateTransaction(ctx context.Context, t *schema.Transaction) error {
	if err := s.db(ctx).Create(t).Error; err != nil {
		return translateError(err, "transaction", t.ID)
	}
	return nil
}

func (s *ExchangeStore) GetTransaction(ctx context.Context, id string) (*schema.Transaction, error) {
	var t schema.Transaction
	if err := s.db(ctx).Where("id = ?", id).First(&t).Error; err != nil {
		return nil, translateError(err, "transaction", id)
	}
	return &t, nil
}

func (s *ExchangeStore) GetTransactionForUpdate(ctx context.Context, id string) (*schema.Transaction, error) {
	var t schema.Transaction
	if err := s.forUpdate(ctx).Where("id = ?", id).First(&t).Error; err != nil {
		return nil, translateError(err, "transaction", id)
	}
	return &t, nil
}

// ListTransactions returns transactions where the account is either party
func (s *ExchangeStore) ListTransactions(ctx context.Context, filter TransactionFilter) ([]schema.Transaction, error) {
	limit, offset := pageOf(filter.Limit, filter.Offset)

	q := s.db(ctx).Model(schema.Transaction{})
	if filter.AccountID != "" {
		q = q.Where("requester_id = ? OR charitarian_id = ?", filter.AccountID, filter.AccountID)
	}
	if filter.ItemID != "" {
		q = q.Where("item_id = ?", filter.ItemID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	transactions := []schema.Transaction{}
	if err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&transactions).Error; err != nil {
		return nil, err
	}
	return transactions, nil
}

func (s *ExchangeStore) CompleteTransaction(ctx context.Context, id string, at time.Time) error {
	return s.finish(ctx, id, map[string]interface{}{
		"status":       schema.TransactionCompleted,
		"completed_at": at,
	})
}

func (s *ExchangeStore) FailTransaction(ctx context.Context, id, message string, at time.Time) error {
	return s.finish(ctx, id, map[string]interface{}{
		"status":         schema.TransactionNotCompleted,
		"reject_message": message,
		"completed_at":   at,
	})
}

func (s *ExchangeStore) finish(ctx context.Context, id string, values map[string]interface{}) error {
	result := s.db(ctx).Model(schema.Transaction{}).
		Where("id = ? AND status = ?", id, schema.TransactionInProgress).
		Updates(values)
	if result.Error != nil {
		return translateError(result.Error, "transaction", id)
	}

	if result.RowsAffected == 0 {
		return schema.NewInvalidStateError("transaction %s is not in progress", id)
	}
	return nil
}

// RateTransaction attaches the rating to a finished transaction. Only the first
// rating is kept, later ones fail with ErrConflict.
func (s *ExchangeStore) RateTransaction(ctx context.Context, id string, rating Rating) error {
	result := s.db(ctx).Model(schema.Transaction{}).
		Where("id = ? AND status IN (?) AND rating IS NULL", id,
			[]schema.TransactionStatus{schema.TransactionCompleted, schema.TransactionNotCompleted}).
		Updates(map[string]interface{}{
			"rating":         rating.Score,
			"rating_comment": rating.Comment,
			"rated_by":       rating.RatedBy,
			"rated_user_id":  rating.RatedUserID,
			"rated_at":       rating.At,
		})
	if result.Error != nil {
		return translateError(result.Error, "transaction", id)
	}

	if result.RowsAffected == 0 {
		return schema.NewConflictError("transaction %s has been rated", id)
	}
	return nil
}
