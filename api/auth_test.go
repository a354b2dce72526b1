package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/golang/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/bitmark-inc/exchange-api/schema"
)

func (s *ServerTestSuite) passthroughTx() {
	s.core.EXPECT().
		WithTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).
		AnyTimes()
}

func (s *ServerTestSuite) TestLoginAndRefreshRotation() {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	s.Require().NoError(err)

	account := &schema.Account{ID: "account-1", Email: "alice@example.com", PasswordHash: string(hash)}
	s.core.EXPECT().GetAccountByEmail(gomock.Any(), "alice@example.com").Return(account, nil)

	var stored []*schema.RefreshToken
	s.core.EXPECT().
		CreateRefreshToken(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, t *schema.RefreshToken) error {
			stored = append(stored, t)
			return nil
		}).
		Times(2)

	w := s.call("POST", "/api/auth", "", map[string]string{
		"email":    "alice@example.com",
		"password": "correct horse",
	})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var login struct {
		Token TokenPair `json:"token"`
	}
	s.Require().NoError(json.Unmarshal(s.decode(w).Data, &login))
	s.NotEmpty(login.Token.AccessToken)
	s.Equal(stored[0].ID, login.Token.RefreshToken)
	s.Equal(int64(3600), login.Token.ExpireIn)

	s.passthroughTx()
	s.core.EXPECT().GetRefreshTokenForUpdate(gomock.Any(), stored[0].ID).Return(stored[0], nil)
	s.core.EXPECT().
		RevokeRefreshToken(gomock.Any(), stored[0].ID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id, replacedBy string, _ time.Time) error {
			s.Equal(stored[1].ID, replacedBy)
			return nil
		})

	w = s.call("POST", "/api/auth/refresh", "", map[string]string{"refresh_token": login.Token.RefreshToken})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var refreshed struct {
		Token TokenPair `json:"token"`
	}
	s.Require().NoError(json.Unmarshal(s.decode(w).Data, &refreshed))
	s.NotEqual(login.Token.RefreshToken, refreshed.Token.RefreshToken)
	s.Equal(stored[1].AccountID, "account-1")
}

func (s *ServerTestSuite) TestLoginWrongPassword() {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	s.Require().NoError(err)

	s.core.EXPECT().
		GetAccountByEmail(gomock.Any(), "alice@example.com").
		Return(&schema.Account{ID: "account-1", PasswordHash: string(hash)}, nil)

	w := s.call("POST", "/api/auth", "", map[string]string{
		"email":    "alice@example.com",
		"password": "battery staple",
	})
	s.Equal(http.StatusUnauthorized, w.Code)
	s.Equal(int64(1102), s.decode(w).Code)
}

func (s *ServerTestSuite) TestLoginUnknownEmail() {
	s.core.EXPECT().
		GetAccountByEmail(gomock.Any(), "nobody@example.com").
		Return(nil, schema.NewNotFoundError("account", "nobody@example.com"))

	w := s.call("POST", "/api/auth", "", map[string]string{
		"email":    "nobody@example.com",
		"password": "whatever123",
	})
	s.Equal(http.StatusUnauthorized, w.Code)
	s.Equal(int64(1102), s.decode(w).Code)
}

func (s *ServerTestSuite) TestRefreshRevokedToken() {
	revokedAt := s.now.Add(-time.Minute)
	s.passthroughTx()
	s.core.EXPECT().
		GetRefreshTokenForUpdate(gomock.Any(), "used-token").
		Return(&schema.RefreshToken{
			ID:        "used-token",
			AccountID: "account-1",
			ExpiresAt: s.now.Add(time.Hour),
			RevokedAt: &revokedAt,
		}, nil)

	w := s.call("POST", "/api/auth/refresh", "", map[string]string{"refresh_token": "used-token"})
	s.Equal(http.StatusUnauthorized, w.Code)
	s.Equal(int64(1103), s.decode(w).Code)
}

func (s *ServerTestSuite) TestRefreshUnknownToken() {
	s.passthroughTx()
	s.core.EXPECT().
		GetRefreshTokenForUpdate(gomock.Any(), "missing").
		Return(nil, schema.NewNotFoundError("refresh token", "missing"))

	w := s.call("POST", "/api/auth/refresh", "", map[string]string{"refresh_token": "missing"})
	s.Equal(http.StatusUnauthorized, w.Code)
	s.Equal(int64(1103), s.decode(w).Code)
}

func (s *ServerTestSuite) TestRegisterTakenEmail() {
	s.passthroughTx()
	s.core.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).Return(schema.NewConflictError("account already exists"))

	w := s.call("POST", "/api/accounts", "", map[string]string{
		"email":    "Alice@Example.com",
		"password": "correct horse",
		"name":     "Alice",
	})
	s.Equal(http.StatusConflict, w.Code)
	s.Equal(int64(1100), s.decode(w).Code)
}

func (s *ServerTestSuite) TestRegisterShortPassword() {
	w := s.call("POST", "/api/accounts", "", map[string]string{
		"email":    "alice@example.com",
		"password": "short",
		"name":     "Alice",
	})
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal(int64(1010), s.decode(w).Code)
}

func (s *ServerTestSuite) TestRegister() {
	s.passthroughTx()
	s.core.EXPECT().
		CreateAccount(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *schema.Account) error {
			s.Equal("alice@example.com", a.Email)
			s.Equal("en", a.Language)
			s.NoError(bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte("correct horse")))
			return nil
		})
	s.core.EXPECT().CreateRefreshToken(gomock.Any(), gomock.Any()).Return(nil)

	w := s.call("POST", "/api/accounts", "", map[string]string{
		"email":    "Alice@Example.com",
		"password": "correct horse",
		"name":     "Alice",
	})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	s.NotContains(w.Body.String(), "password")
}

func (s *ServerTestSuite) TestAuthMiddleware() {
	w := s.call("GET", "/api/accounts/me", "", nil)
	s.Equal(http.StatusUnauthorized, w.Code)
	s.Equal(int64(1001), s.decode(w).Code)

	w = s.call("GET", "/api/accounts/me", "not.a.token", nil)
	s.Equal(http.StatusUnauthorized, w.Code)
	s.Equal(int64(1003), s.decode(w).Code)

	expired, err := s.server.signAccessToken("account-1", s.now.Add(-2*time.Hour))
	s.Require().NoError(err)
	w = s.call("GET", "/api/accounts/me", expired, nil)
	s.Equal(http.StatusUnauthorized, w.Code)
	s.Equal(int64(1004), s.decode(w).Code)

	token := s.signedIn("account-1")
	w = s.call("GET", "/api/accounts/me", token, nil)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var account schema.Account
	s.Require().NoError(json.Unmarshal(s.decode(w).Data, &account))
	s.Equal("account-1", account.ID)
}

func (s *ServerTestSuite) TestAuthUnknownAccount() {
	s.core.EXPECT().GetAccount(gomock.Any(), "ghost").Return(nil, schema.NewNotFoundError("account", "ghost"))

	token, err := s.server.signAccessToken("ghost", s.now)
	s.Require().NoError(err)

	w := s.call("GET", "/api/accounts/me", token, nil)
	s.Equal(http.StatusUnauthorized, w.Code)
	s.Equal(int64(1101), s.decode(w).Code)
}

func (s *ServerTestSuite) TestLogout() {
	token := s.signedIn("account-1")
	s.passthroughTx()
	s.core.EXPECT().
		GetRefreshTokenForUpdate(gomock.Any(), "refresh-1").
		Return(&schema.RefreshToken{ID: "refresh-1", AccountID: "account-1", ExpiresAt: s.now.Add(time.Hour)}, nil)
	s.core.EXPECT().RevokeRefreshToken(gomock.Any(), "refresh-1", "", gomock.Any()).Return(nil)

	w := s.call("POST", "/api/auth/logout", token, map[string]string{"refresh_token": "refresh-1"})
	s.Equal(http.StatusOK, w.Code, w.Body.String())
}
