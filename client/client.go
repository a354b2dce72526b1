package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/bitmark-inc/exchange-api/exchange"
	"github.com/bitmark-inc/exchange-api/schema"
)

const DefaultTimeout = 15 * time.Second

// codeAlreadyHandled marks an invalid state caused by another party acting first
const codeAlreadyHandled = 1031

// ErrReauthenticate means the session could not be refreshed and the user
// has to log in again. The stored credentials are already cleared.
var ErrReauthenticate = errors.New("session expired, login required")

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "client")
}

// APIError is a failed call as reported by the server
type APIError struct {
	Status  int
	Code    int64
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d (%d): %s", e.Code, e.Status, e.Message)
}

// Unwrap maps the server code onto the error taxonomy
func (e *APIError) Unwrap() error {
	switch e.Code {
	case 1010, 1011:
		return schema.ErrValidation
	case 1020:
		return schema.ErrPermission
	case 1030, codeAlreadyHandled:
		return schema.ErrInvalidState
	case 1040, 1101:
		return schema.ErrNotFound
	case 1050, 1100:
		return schema.ErrConflict
	}

	switch e.Status {
	case http.StatusBadRequest:
		return schema.ErrValidation
	case http.StatusForbidden:
		return schema.ErrPermission
	case http.StatusNotFound:
		return schema.ErrNotFound
	case http.StatusConflict:
		return schema.ErrConflict
	}
	return nil
}

// IsAlreadyHandled reports an approval or rejection lost to a concurrent
// decision. It is expected under contention and not a client bug.
func IsAlreadyHandled(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == codeAlreadyHandled
}

type envelope struct {
	IsSuccess bool            `json:"isSuccess"`
	Code      int64           `json:"code"`
	Data      json.RawMessage `json:"data"`
	Message   string          `json:"message"`
}

type tokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpireIn     int64  `json:"expire_in"`
}

type authResult struct {
	Account *schema.Account `json:"account"`
	Token   tokenPair       `json:"token"`
}

// Client calls the exchange api on behalf of a session
type Client struct {
	endpoint      string
	httpClient    *http.Client
	session       *Session
	clientType    string
	clientVersion int

	// serializes refreshes so a rotated token is exchanged once
	refreshLock sync.Mutex
}

type Option func(*Client)

func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

func WithClientVersion(clientType string, version int) Option {
	return func(cl *Client) {
		cl.clientType = clientType
		cl.clientVersion = version
	}
}

func New(endpoint string, session *Session, opts ...Option) *Client {
	c := &Client{
		endpoint:      strings.TrimRight(endpoint, "/"),
		httpClient:    &http.Client{Timeout: DefaultTimeout},
		session:       session,
		clientType:    "android",
		clientVersion: 1,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Session() *Session {
	return c.session
}

// Register creates an account and begins its session
func (c *Client) Register(ctx context.Context, email, password, name, language string) (*schema.Account, error) {
	var result authResult
	err := c.send(ctx, http.MethodPost, "/api/accounts", "", map[string]string{
		"email":    email,
		"password": password,
		"name":     name,
		"language": language,
	}, &result)
	if err != nil {
		return nil, err
	}
	return result.Account, c.begin(result)
}

// Login begins a session for an existing account
func (c *Client) Login(ctx context.Context, email, password string) (*schema.Account, error) {
	if email == "" || password == "" {
		return nil, schema.NewValidationError("email and password are required")
	}

	var result authResult
	err := c.send(ctx, http.MethodPost, "/api/auth", "", map[string]string{
		"email":    email,
		"password": password,
	}, &result)
	if err != nil {
		return nil, err
	}
	return result.Account, c.begin(result)
}

func (c *Client) begin(result authResult) error {
	var accountID string
	if result.Account != nil {
		accountID = result.Account.ID
	}
	return c.session.Begin(Credentials{
		AccountID:    accountID,
		AccessToken:  result.Token.AccessToken,
		RefreshToken: result.Token.RefreshToken,
	}, result.Account)
}

// Logout revokes the refresh token and ends the session. The local session
// ends even when the server cannot be reached.
func (c *Client) Logout(ctx context.Context) error {
	creds, ok := c.session.Credentials()
	if !ok {
		return nil
	}

	err := c.do(ctx, http.MethodPost, "/api/auth/logout", map[string]string{
		"refresh_token": creds.RefreshToken,
	}, nil)
	if err != nil && !errors.Is(err, ErrReauthenticate) {
		log.WithError(err).Warn("revoke refresh token on logout")
	}

	return c.session.End()
}

// Me fetches the account of the session
func (c *Client) Me(ctx context.Context) (*schema.Account, error) {
	var account schema.Account
	if err := c.do(ctx, http.MethodGet, "/api/accounts/me", nil, &account); err != nil {
		return nil, err
	}
	c.session.setAccount(&account)
	return &account, nil
}

// refresh exchanges the refresh token for a new pair. A caller holding an
// access token that was already replaced by a concurrent refresh just retries.
func (c *Client) refresh(ctx context.Context, staleAccessToken string) error {
	c.refreshLock.Lock()
	defer c.refreshLock.Unlock()

	creds, ok := c.session.Credentials()
	if !ok {
		return ErrReauthenticate
	}
	if creds.AccessToken != staleAccessToken {
		return nil
	}

	var result struct {
		Token tokenPair `json:"token"`
	}
	err := c.send(ctx, http.MethodPost, "/api/auth/refresh", "", map[string]string{
		"refresh_token": creds.RefreshToken,
	}, &result)
	if err != nil {
		if errors.Is(err, schema.ErrNetwork) {
			return err
		}
		log.WithError(err).Info("refresh rejected, ending session")
		c.endSession()
		return ErrReauthenticate
	}

	if err := c.session.Replace(Credentials{
		AccountID:    creds.AccountID,
		AccessToken:  result.Token.AccessToken,
		RefreshToken: result.Token.RefreshToken,
	}); err != nil {
		log.WithError(err).Error("persist refreshed credentials")
		c.endSession()
		return ErrReauthenticate
	}
	return nil
}

func (c *Client) endSession() {
	if err := c.session.End(); err != nil {
		log.WithError(err).Error("clear credentials")
	}
}

// do runs an authenticated call
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	return c.authorized(ctx, func(accessToken string) error {
		return c.send(ctx, method, path, accessToken, body, out)
	})
}

// authorized runs attempt with the current access token. A 401 triggers one
// refresh and one replay, a second 401 ends the session.
func (c *Client) authorized(ctx context.Context, attempt func(accessToken string) error) error {
	creds, ok := c.session.Credentials()
	if !ok {
		return ErrNoSession
	}

	err := attempt(creds.AccessToken)
	if !isUnauthorized(err) {
		return err
	}

	if err := c.refresh(ctx, creds.AccessToken); err != nil {
		return err
	}

	creds, ok = c.session.Credentials()
	if !ok {
		return ErrReauthenticate
	}
	err = attempt(creds.AccessToken)
	if isUnauthorized(err) {
		c.endSession()
		return ErrReauthenticate
	}
	return err
}

func isUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

func (c *Client) newRequest(ctx context.Context, method, path, accessToken string, body interface{}) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Client-Type", c.clientType)
	req.Header.Set("Client-Version", strconv.Itoa(c.clientVersion))
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}
	return req, nil
}

func (c *Client) roundTrip(ctx context.Context, method, path, accessToken string, body interface{}) (*http.Response, []byte, error) {
	req, err := c.newRequest(ctx, method, path, accessToken, body)
	if err != nil {
		return nil, nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s %s: %v", schema.ErrNetwork, method, path, err)
	}
	defer resp.Body.Close()

	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: read response: %v", schema.ErrNetwork, err)
	}
	return resp, data, nil
}

// send makes a single call and decodes the envelope into out
func (c *Client) send(ctx context.Context, method, path, accessToken string, body, out interface{}) error {
	resp, data, err := c.roundTrip(ctx, method, path, accessToken, body)
	if err != nil {
		return err
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		if resp.StatusCode != http.StatusOK {
			return &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		}
		return fmt.Errorf("decode response of %s: %w", path, err)
	}

	if resp.StatusCode != http.StatusOK || !env.IsSuccess {
		return &APIError{Status: resp.StatusCode, Code: env.Code, Message: env.Message}
	}

	if out == nil || len(env.Data) == 0 {
		return nil
	}
	return json.Unmarshal(env.Data, out)
}

func (c *Client) CreateItem(ctx context.Context, in exchange.CreateItemInput) (*schema.Item, error) {
	var item schema.Item
	if err := c.do(ctx, http.MethodPost, "/api/items", in, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) GetItem(ctx context.Context, id string) (*schema.Item, error) {
	var item schema.Item
	if err := c.do(ctx, http.MethodGet, "/api/items/"+url.PathEscape(id), nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) ListItems(ctx context.Context, mine bool, category string) ([]schema.Item, error) {
	q := url.Values{}
	if mine {
		q.Set("mine", "true")
	}
	if category != "" {
		q.Set("category", category)
	}

	var items []schema.Item
	if err := c.do(ctx, http.MethodGet, "/api/items?"+q.Encode(), nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CreateRequest sends a request. Inputs the server would refuse are caught
// before any network call.
func (c *Client) CreateRequest(ctx context.Context, in exchange.CreateRequestInput) (*schema.Request, error) {
	if in.CharitarianItemID == "" {
		return nil, schema.NewValidationError("charitarian item is required")
	}
	if len(in.AppointmentCandidates) == 0 {
		return nil, schema.NewValidationError("at least one appointment time is required")
	}

	var request schema.Request
	if err := c.do(ctx, http.MethodPost, "/api/requests", in, &request); err != nil {
		return nil, err
	}
	return &request, nil
}

func (c *Client) ListRequests(ctx context.Context, role exchange.RequestRole, status schema.RequestStatus) ([]schema.Request, error) {
	q := url.Values{}
	if role != "" {
		q.Set("role", string(role))
	}
	if status != "" {
		q.Set("status", string(status))
	}

	var requests []schema.Request
	if err := c.do(ctx, http.MethodGet, "/api/requests?"+q.Encode(), nil, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

// ApproveRequest accepts a request at one of its proposed times. Check
// IsAlreadyHandled on error to tell a lost race from a failure.
func (c *Client) ApproveRequest(ctx context.Context, requestID string, at time.Time, message string) (*schema.Transaction, error) {
	var transaction schema.Transaction
	err := c.do(ctx, http.MethodPost, "/api/requests/"+url.PathEscape(requestID)+"/approve", map[string]interface{}{
		"appointment_date": at,
		"approve_message":  message,
	}, &transaction)
	if err != nil {
		return nil, err
	}
	return &transaction, nil
}

func (c *Client) RejectRequest(ctx context.Context, requestID, message string) (*schema.Request, error) {
	var request schema.Request
	err := c.do(ctx, http.MethodPost, "/api/requests/"+url.PathEscape(requestID)+"/reject", map[string]string{
		"reject_message": message,
	}, &request)
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (c *Client) GetTransaction(ctx context.Context, id string) (*schema.Transaction, error) {
	var transaction schema.Transaction
	if err := c.do(ctx, http.MethodGet, "/api/transactions/"+url.PathEscape(id), nil, &transaction); err != nil {
		return nil, err
	}
	return &transaction, nil
}

func (c *Client) VerifyTransaction(ctx context.Context, id string) (*schema.Transaction, error) {
	var transaction schema.Transaction
	if err := c.do(ctx, http.MethodPost, "/api/transactions/"+url.PathEscape(id)+"/verify", nil, &transaction); err != nil {
		return nil, err
	}
	return &transaction, nil
}

func (c *Client) RejectTransaction(ctx context.Context, id, message string) (*schema.Transaction, error) {
	var transaction schema.Transaction
	err := c.do(ctx, http.MethodPost, "/api/transactions/"+url.PathEscape(id)+"/reject", map[string]string{
		"reject_message": message,
	}, &transaction)
	if err != nil {
		return nil, err
	}
	return &transaction, nil
}

// TransactionQRCode downloads the PNG the counterparty scans to verify
func (c *Client) TransactionQRCode(ctx context.Context, id string, size int) ([]byte, error) {
	path := fmt.Sprintf("/api/transactions/%s/qrcode?size=%d", url.PathEscape(id), size)

	var png []byte
	err := c.authorized(ctx, func(accessToken string) error {
		resp, data, err := c.roundTrip(ctx, http.MethodGet, path, accessToken, nil)
		if err != nil {
			return err
		}
		if resp.StatusCode != http.StatusOK {
			var env envelope
			_ = json.Unmarshal(data, &env)
			return &APIError{Status: resp.StatusCode, Code: env.Code, Message: env.Message}
		}
		png = data
		return nil
	})
	if err != nil {
		return nil, err
	}
	return png, nil
}

func (c *Client) SubmitRating(ctx context.Context, transactionID string, in exchange.RatingInput) (*schema.Transaction, error) {
	var transaction schema.Transaction
	if err := c.do(ctx, http.MethodPost, "/api/transactions/"+url.PathEscape(transactionID)+"/ratings", in, &transaction); err != nil {
		return nil, err
	}
	return &transaction, nil
}

func (c *Client) SubmitReport(ctx context.Context, transactionID string, in exchange.ReportInput) (*schema.Report, error) {
	var report schema.Report
	if err := c.do(ctx, http.MethodPost, "/api/transactions/"+url.PathEscape(transactionID)+"/reports", in, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// NotificationPage is a slice of the durable notification list
type NotificationPage struct {
	Notifications []schema.Notification `json:"notifications"`
	UnreadCount   int64                 `json:"unread_count"`
}

// ListNotifications reads the durable list, newest first. A non-zero since
// returns only what was created after it.
func (c *Client) ListNotifications(ctx context.Context, since, before time.Time, limit int) (*NotificationPage, error) {
	q := url.Values{}
	if !since.IsZero() {
		q.Set("since", since.UTC().Format(time.RFC3339Nano))
	}
	if !before.IsZero() {
		q.Set("before", before.UTC().Format(time.RFC3339Nano))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	var page NotificationPage
	if err := c.do(ctx, http.MethodGet, "/api/notifications?"+q.Encode(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) MarkNotificationRead(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPatch, "/api/notifications/"+url.PathEscape(id)+"/read", nil, nil)
}

func (c *Client) MarkAllNotificationsRead(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/notifications/read-all", nil, nil)
}
