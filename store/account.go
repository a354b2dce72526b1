package store

import (
	"context"
	"strings"
	"time"

	"github.com/bitmark-inc/exchange-api/schema"
)

// CreateAccount is to register an account into the exchange system
func (s *ExchangeStore) CreateAccount(ctx context.Context, a *schema.Account) error {
	a.Email = strings.ToLower(strings.TrimSpace(a.Email))
	if err := s.db(ctx).Create(a).Error; err != nil {
		return translateError(err, "account", a.Email)
	}
	return nil
}

// GetAccount returns an account instance of a given account id
func (s *ExchangeStore) GetAccount(ctx context.Context, id string) (*schema.Account, error) {
	var a schema.Account
	if err := s.db(ctx).Where("id = ?", id).First(&a).Error; err != nil {
		return nil, translateError(err, "account", id)
	}
	return &a, nil
}

func (s *ExchangeStore) GetAccountByEmail(ctx context.Context, email string) (*schema.Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var a schema.Account
	if err := s.db(ctx).Where("email = ?", email).First(&a).Error; err != nil {
		return nil, translateError(err, "account", email)
	}
	return &a, nil
}

func (s *ExchangeStore) CreateRefreshToken(ctx context.Context, t *schema.RefreshToken) error {
	if err := s.db(ctx).Create(t).Error; err != nil {
		return translateError(err, "refresh token", t.ID)
	}
	return nil
}

// GetRefreshTokenForUpdate locks the token row so that two refreshes racing
// on the same token cannot both rotate it
func (s *ExchangeStore) GetRefreshTokenForUpdate(ctx context.Context, id string) (*schema.RefreshToken, error) {
	var t schema.RefreshToken
	if err := s.forUpdate(ctx).Where("id = ?", id).First(&t).Error; err != nil {
		return nil, translateError(err, "refresh token", id)
	}
	return &t, nil
}

// RevokeRefreshToken marks a token as used. A token is revoked at most once.
func (s *ExchangeStore) RevokeRefreshToken(ctx context.Context, id, replacedBy string, at time.Time) error {
	result := s.db(ctx).Model(schema.RefreshToken{}).
		Where("id = ? AND revoked_at IS NULL", id).
		Updates(map[string]interface{}{
			"revoked_at":  at,
			"replaced_by": replacedBy,
		})
	if result.Error != nil {
		return translateError(result.Error, "refresh token", id)
	}

	if result.RowsAffected == 0 {
		return schema.NewConflictError("refresh token %s has been used", id)
	}

	return nil
}
