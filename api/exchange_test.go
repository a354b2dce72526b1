package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/bitmark-inc/exchange-api/exchange"
	"github.com/bitmark-inc/exchange-api/schema"
	"github.com/bitmark-inc/exchange-api/store"
)

func (s *ServerTestSuite) TestErrorMapping() {
	token := s.signedIn("account-1")

	cases := []struct {
		err    error
		status int
		code   int64
	}{
		{schema.NewValidationError("name is required"), http.StatusBadRequest, 1010},
		{schema.NewPermissionError("not the owner"), http.StatusForbidden, 1020},
		{schema.NewInvalidStateError("item is exchanged"), http.StatusConflict, 1030},
		{schema.NewNotFoundError("item", "item-1"), http.StatusNotFound, 1040},
		{schema.NewConflictError("duplicated"), http.StatusConflict, 1050},
		{fmt.Errorf("connection reset"), http.StatusInternalServerError, 999},
	}

	for _, c := range cases {
		s.exchange.EXPECT().GetItem(gomock.Any(), "item-1").Return(nil, c.err)

		w := s.call("GET", "/api/items/item-1", token, nil)
		s.Equal(c.status, w.Code, c.err.Error())

		resp := s.decode(w)
		s.False(resp.IsSuccess)
		s.Equal(c.code, resp.Code, c.err.Error())
	}
}

func (s *ServerTestSuite) TestListOwnItems() {
	token := s.signedIn("account-1")
	s.exchange.EXPECT().
		ListItems(gomock.Any(), store.ItemFilter{OwnerID: "account-1", Category: "books", Limit: 10}).
		Return([]schema.Item{{ID: "item-1"}}, nil)

	w := s.call("GET", "/api/items?mine=true&category=books&limit=10", token, nil)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var items []schema.Item
	s.Require().NoError(json.Unmarshal(s.decode(w).Data, &items))
	s.Len(items, 1)
}

func (s *ServerTestSuite) TestModerateItemRequiresDecision() {
	token := s.signedIn("account-1")

	w := s.call("PATCH", "/api/items/item-1/moderation", token, map[string]string{})
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal(int64(1010), s.decode(w).Code)
}

func (s *ServerTestSuite) TestApproveRequest() {
	token := s.signedIn("account-1")
	at := time.Date(2020, 7, 3, 9, 0, 0, 0, time.UTC)

	s.exchange.EXPECT().
		ApproveRequest(gomock.Any(), "account-1", "request-1", at, "see you").
		Return(&schema.Transaction{ID: "transaction-1", RequestID: "request-1"}, nil)

	w := s.call("POST", "/api/requests/request-1/approve", token, map[string]interface{}{
		"appointment_date": at,
		"approve_message":  "see you",
	})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var transaction schema.Transaction
	s.Require().NoError(json.Unmarshal(s.decode(w).Data, &transaction))
	s.Equal("transaction-1", transaction.ID)
}

func (s *ServerTestSuite) TestApproveRequestAlreadyHandled() {
	token := s.signedIn("account-1")

	s.exchange.EXPECT().
		ApproveRequest(gomock.Any(), "account-1", "request-1", gomock.Any(), "").
		Return(nil, schema.NewInvalidStateError("request is HOLD_ON"))

	w := s.call("POST", "/api/requests/request-1/approve", token, map[string]interface{}{
		"appointment_date": time.Date(2020, 7, 3, 9, 0, 0, 0, time.UTC),
	})
	s.Equal(http.StatusConflict, w.Code)
	s.Equal(int64(1031), s.decode(w).Code)
}

func (s *ServerTestSuite) TestListReceivedRequests() {
	token := s.signedIn("account-1")
	s.exchange.EXPECT().
		ListRequests(gomock.Any(), "account-1", exchange.RequestQuery{
			Role:   exchange.RoleCharitarian,
			Status: schema.RequestStatus("PENDING"),
		}).
		Return([]schema.Request{}, nil)

	w := s.call("GET", "/api/requests?role=charitarian&status=PENDING", token, nil)
	s.Equal(http.StatusOK, w.Code, w.Body.String())
}

func (s *ServerTestSuite) TestTransactionQRCode() {
	token := s.signedIn("account-1")
	png := []byte("\x89PNG\r\n\x1a\nfake")

	s.exchange.EXPECT().
		GenerateVerificationCode(gomock.Any(), "account-1", "transaction-1", 256).
		Return(png, nil)

	w := s.call("GET", "/api/transactions/transaction-1/qrcode?size=256", token, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Equal("image/png", w.Header().Get("Content-Type"))
	s.Equal(png, w.Body.Bytes())
}

func (s *ServerTestSuite) TestRateTransaction() {
	token := s.signedIn("account-1")
	s.exchange.EXPECT().
		SubmitRating(gomock.Any(), "account-1", "transaction-1", exchange.RatingInput{
			RatedUserID: "account-2",
			Rating:      5,
			Comment:     "thanks",
		}).
		Return(&schema.Transaction{ID: "transaction-1"}, nil)

	w := s.call("POST", "/api/transactions/transaction-1/ratings", token, map[string]interface{}{
		"rated_user_id": "account-2",
		"rating":        5,
		"comment":       "thanks",
	})
	s.Equal(http.StatusOK, w.Code, w.Body.String())
}

func (s *ServerTestSuite) TestListNotifications() {
	token := s.signedIn("account-1")
	since := time.Date(2020, 7, 1, 8, 0, 0, 0, time.UTC)

	s.mongo.EXPECT().
		ListNotifications(gomock.Any(), "account-1", store.NotificationQuery{Since: since, Limit: 50}).
		Return([]schema.Notification{{ID: "n-1", AccountID: "account-1", Type: schema.NotificationType("REQUEST_APPROVED")}}, nil)
	s.mongo.EXPECT().CountUnreadNotifications(gomock.Any(), "account-1").Return(int64(1), nil)

	w := s.call("GET", "/api/notifications?since=2020-07-01T08:00:00Z&limit=50", token, nil)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var data struct {
		Notifications []schema.Notification `json:"notifications"`
		UnreadCount   int64                 `json:"unread_count"`
	}
	s.Require().NoError(json.Unmarshal(s.decode(w).Data, &data))
	s.Len(data.Notifications, 1)
	s.Equal(int64(1), data.UnreadCount)
}

func (s *ServerTestSuite) TestListNotificationsBadTime() {
	token := s.signedIn("account-1")

	w := s.call("GET", "/api/notifications?since=yesterday", token, nil)
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal(int64(1010), s.decode(w).Code)
}

func (s *ServerTestSuite) TestMarkNotificationRead() {
	token := s.signedIn("account-1")
	s.mongo.EXPECT().
		MarkNotificationRead(gomock.Any(), "account-1", "n-1", gomock.Any()).
		Return(schema.NewNotFoundError("notification", "n-1"))

	w := s.call("PATCH", "/api/notifications/n-1/read", token, nil)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *ServerTestSuite) TestAdminExpireItem() {
	w := s.call("POST", "/secret/items/item-1/expire", "", nil)
	s.Equal(http.StatusForbidden, w.Code)
}
