package exchange

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/bitmark-inc/exchange-api/schema"
	"github.com/bitmark-inc/exchange-api/store"
)

type fakeTxKey struct{}

// fakeStore keeps everything in memory. WithTx holds a single lock for the
// whole callback and restores a snapshot on error, which is a stricter
// isolation than the row locks of the real store.
type fakeStore struct {
	mu           sync.Mutex
	accounts     map[string]schema.Account
	tokens       map[string]schema.RefreshToken
	items        map[string]schema.Item
	requests     map[string]schema.Request
	transactions map[string]schema.Transaction
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		accounts:     map[string]schema.Account{},
		tokens:       map[string]schema.RefreshToken{},
		items:        map[string]schema.Item{},
		requests:     map[string]schema.Request{},
		transactions: map[string]schema.Transaction{},
	}
}

func (f *fakeStore) lock(ctx context.Context) func() {
	if ctx.Value(fakeTxKey{}) != nil {
		return func() {}
	}
	f.mu.Lock()
	return f.mu.Unlock
}

func (f *fakeStore) Ping() error {
	return nil
}

func (f *fakeStore) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(fakeTxKey{}) != nil {
		return fn(ctx)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	accounts, tokens, items, requests, transactions := f.snapshot()
	if err := fn(context.WithValue(ctx, fakeTxKey{}, true)); err != nil {
		f.accounts, f.tokens, f.items, f.requests, f.transactions = accounts, tokens, items, requests, transactions
		return err
	}
	return nil
}

func (f *fakeStore) snapshot() (map[string]schema.Account, map[string]schema.RefreshToken, map[string]schema.Item, map[string]schema.Request, map[string]schema.Transaction) {
	accounts := make(map[string]schema.Account, len(f.accounts))
	for k, v := range f.accounts {
		accounts[k] = v
	}
	tokens := make(map[string]schema.RefreshToken, len(f.tokens))
	for k, v := range f.tokens {
		tokens[k] = v
	}
	items := make(map[string]schema.Item, len(f.items))
	for k, v := range f.items {
		items[k] = v
	}
	requests := make(map[string]schema.Request, len(f.requests))
	for k, v := range f.requests {
		requests[k] = v
	}
	transactions := make(map[string]schema.Transaction, len(f.transactions))
	for k, v := range f.transactions {
		transactions[k] = v
	}
	return accounts, tokens, items, requests, transactions
}

func (f *fakeStore) CreateAccount(ctx context.Context, a *schema.Account) error {
	defer f.lock(ctx)()
	for _, existing := range f.accounts {
		if existing.Email == a.Email {
			return schema.NewConflictError("account %s already exists", a.Email)
		}
	}
	f.accounts[a.ID] = *a
	return nil
}

func (f *fakeStore) GetAccount(ctx context.Context, id string) (*schema.Account, error) {
	defer f.lock(ctx)()
	a, ok := f.accounts[id]
	if !ok {
		return nil, schema.NewNotFoundError("account", id)
	}
	return &a, nil
}

func (f *fakeStore) GetAccountByEmail(ctx context.Context, email string) (*schema.Account, error) {
	defer f.lock(ctx)()
	for _, a := range f.accounts {
		if a.Email == email {
			return &a, nil
		}
	}
	return nil, schema.NewNotFoundError("account", email)
}

func (f *fakeStore) CreateRefreshToken(ctx context.Context, t *schema.RefreshToken) error {
	defer f.lock(ctx)()
	f.tokens[t.ID] = *t
	return nil
}

func (f *fakeStore) GetRefreshTokenForUpdate(ctx context.Context, id string) (*schema.RefreshToken, error) {
	defer f.lock(ctx)()
	t, ok := f.tokens[id]
	if !ok {
		return nil, schema.NewNotFoundError("refresh token", id)
	}
	return &t, nil
}

func (f *fakeStore) RevokeRefreshToken(ctx context.Context, id, replacedBy string, at time.Time) error {
	defer f.lock(ctx)()
	t, ok := f.tokens[id]
	if !ok || t.RevokedAt != nil {
		return schema.NewConflictError("refresh token %s has been used", id)
	}
	t.RevokedAt = &at
	t.ReplacedBy = replacedBy
	f.tokens[id] = t
	return nil
}

func (f *fakeStore) CreateItem(ctx context.Context, item *schema.Item) error {
	defer f.lock(ctx)()
	f.items[item.ID] = *item
	return nil
}

func (f *fakeStore) GetItem(ctx context.Context, id string) (*schema.Item, error) {
	defer f.lock(ctx)()
	item, ok := f.items[id]
	if !ok {
		return nil, schema.NewNotFoundError("item", id)
	}
	return &item, nil
}

func (f *fakeStore) GetItemForUpdate(ctx context.Context, id string) (*schema.Item, error) {
	return f.GetItem(ctx, id)
}

func (f *fakeStore) ListItems(ctx context.Context, filter store.ItemFilter) ([]schema.Item, error) {
	defer f.lock(ctx)()
	items := []schema.Item{}
	for _, item := range f.items {
		if filter.OwnerID != "" && item.OwnerID != filter.OwnerID {
			continue
		}
		if filter.Category != "" && item.Category != filter.Category {
			continue
		}
		if filter.Status != "" && item.Status != filter.Status {
			continue
		}
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (f *fakeStore) UpdateItemStatus(ctx context.Context, id string, from, to schema.ItemStatus) error {
	defer f.lock(ctx)()
	item, ok := f.items[id]
	if !ok || item.Status != from {
		return schema.NewInvalidStateError("item %s is not %s", id, from)
	}
	item.Status = to
	f.items[id] = item
	return nil
}

func (f *fakeStore) CreateRequest(ctx context.Context, r *schema.Request) error {
	defer f.lock(ctx)()
	f.requests[r.ID] = *r
	return nil
}

func (f *fakeStore) GetRequest(ctx context.Context, id string) (*schema.Request, error) {
	defer f.lock(ctx)()
	r, ok := f.requests[id]
	if !ok {
		return nil, schema.NewNotFoundError("request", id)
	}
	return &r, nil
}

func (f *fakeStore) ListRequests(ctx context.Context, filter store.RequestFilter) ([]schema.Request, error) {
	defer f.lock(ctx)()
	requests := []schema.Request{}
	for _, r := range f.requests {
		if filter.RequesterID != "" && r.RequesterID != filter.RequesterID {
			continue
		}
		if filter.CharitarianID != "" && r.CharitarianID != filter.CharitarianID {
			continue
		}
		if filter.ItemID != "" && r.CharitarianItemID != filter.ItemID {
			continue
		}
		if filter.Status != "" && r.Status != filter.Status {
			continue
		}
		requests = append(requests, r)
	}
	sort.Slice(requests, func(i, j int) bool { return requests[i].ID < requests[j].ID })
	if filter.Limit > 0 && len(requests) > filter.Limit {
		requests = requests[:filter.Limit]
	}
	return requests, nil
}

func (f *fakeStore) setRequestStatus(id string, from, to schema.RequestStatus, apply func(r *schema.Request)) error {
	r, ok := f.requests[id]
	if !ok || r.Status != from {
		return schema.NewInvalidStateError("request %s is not %s", id, from)
	}
	r.Status = to
	if apply != nil {
		apply(&r)
	}
	f.requests[id] = r
	return nil
}

func (f *fakeStore) ApproveRequest(ctx context.Context, id, message string) error {
	defer f.lock(ctx)()
	return f.setRequestStatus(id, schema.RequestPending, schema.RequestApproved, func(r *schema.Request) {
		r.ApproveMessage = message
	})
}

func (f *fakeStore) RejectRequest(ctx context.Context, id, message string) error {
	defer f.lock(ctx)()
	return f.setRequestStatus(id, schema.RequestPending, schema.RequestRejected, func(r *schema.Request) {
		r.RejectMessage = message
	})
}

func (f *fakeStore) moveRequests(itemID, exceptID string, from, to schema.RequestStatus) []schema.Request {
	moved := []schema.Request{}
	for id, r := range f.requests {
		if r.CharitarianItemID != itemID || r.Status != from || id == exceptID {
			continue
		}
		r.Status = to
		f.requests[id] = r
		moved = append(moved, r)
	}
	sort.Slice(moved, func(i, j int) bool { return moved[i].ID < moved[j].ID })
	return moved
}

func (f *fakeStore) HoldPendingRequests(ctx context.Context, itemID, exceptID string) ([]schema.Request, error) {
	defer f.lock(ctx)()
	return f.moveRequests(itemID, exceptID, schema.RequestPending, schema.RequestHoldOn), nil
}

func (f *fakeStore) ReopenHeldRequests(ctx context.Context, itemID string) ([]schema.Request, error) {
	defer f.lock(ctx)()
	return f.moveRequests(itemID, "", schema.RequestHoldOn, schema.RequestPending), nil
}

func (f *fakeStore) CreateTransaction(ctx context.Context, t *schema.Transaction) error {
	defer f.lock(ctx)()
	for _, existing := range f.transactions {
		if existing.ItemID == t.ItemID && existing.Status == schema.TransactionInProgress {
			return schema.NewConflictError("item %s has a transaction in progress", t.ItemID)
		}
	}
	f.transactions[t.ID] = *t
	return nil
}

func (f *fakeStore) GetTransaction(ctx context.Context, id string) (*schema.Transaction, error) {
	defer f.lock(ctx)()
	t, ok := f.transactions[id]
	if !ok {
		return nil, schema.NewNotFoundError("transaction", id)
	}
	return &t, nil
}

func (f *fakeStore) GetTransactionForUpdate(ctx context.Context, id string) (*schema.Transaction, error) {
	return f.GetTransaction(ctx, id)
}

func (f *fakeStore) ListTransactions(ctx context.Context, filter store.TransactionFilter) ([]schema.Transaction, error) {
	defer f.lock(ctx)()
	transactions := []schema.Transaction{}
	for _, t := range f.transactions {
		if filter.AccountID != "" && !t.IsParticipant(filter.AccountID) {
			continue
		}
		if filter.ItemID != "" && t.ItemID != filter.ItemID {
			continue
		}
		if filter.Status != "" && t.Status != filter.Status {
			continue
		}
		transactions = append(transactions, t)
	}
	sort.Slice(transactions, func(i, j int) bool { return transactions[i].ID < transactions[j].ID })
	return transactions, nil
}

func (f *fakeStore) finish(id string, apply func(t *schema.Transaction)) error {
	t, ok := f.transactions[id]
	if !ok || t.Status != schema.TransactionInProgress {
		return schema.NewInvalidStateError("transaction %s is not in progress", id)
	}
	apply(&t)
	f.transactions[id] = t
	return nil
}

func (f *fakeStore) CompleteTransaction(ctx context.Context, id string, at time.Time) error {
	defer f.lock(ctx)()
	return f.finish(id, func(t *schema.Transaction) {
		t.Status = schema.TransactionCompleted
		t.CompletedAt = &at
	})
}

func (f *fakeStore) FailTransaction(ctx context.Context, id, message string, at time.Time) error {
	defer f.lock(ctx)()
	return f.finish(id, func(t *schema.Transaction) {
		t.Status = schema.TransactionNotCompleted
		t.RejectMessage = message
		t.CompletedAt = &at
	})
}

func (f *fakeStore) RateTransaction(ctx context.Context, id string, rating store.Rating) error {
	defer f.lock(ctx)()
	t, ok := f.transactions[id]
	if !ok || !t.Status.Terminal() || t.Rating != nil {
		return schema.NewConflictError("transaction %s has been rated", id)
	}
	score, comment := rating.Score, rating.Comment
	t.Rating = &score
	t.RatingComment = &comment
	t.RatedBy = rating.RatedBy
	t.RatedUserID = rating.RatedUserID
	t.RatedAt = &rating.At
	f.transactions[id] = t
	return nil
}

type fakeReports struct {
	mu      sync.Mutex
	reports []schema.Report
}

func (f *fakeReports) AddReport(ctx context.Context, report *schema.Report) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reports = append(f.reports, *report)
	return nil
}

func (f *fakeReports) ListReports(ctx context.Context, transactionID string) ([]schema.Report, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	reports := []schema.Report{}
	for _, r := range f.reports {
		if r.TransactionID == transactionID {
			reports = append(reports, r)
		}
	}
	return reports, nil
}

type recordingNotifier struct {
	mu            sync.Mutex
	notifications []schema.Notification
}

func (n *recordingNotifier) Deliver(ctx context.Context, notifications []schema.Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notifications = append(n.notifications, notifications...)
}

func (n *recordingNotifier) reset() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notifications = nil
}

// of returns the notifications addressed to the account
func (n *recordingNotifier) of(accountID string) []schema.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	result := []schema.Notification{}
	for _, notification := range n.notifications {
		if notification.AccountID == accountID {
			result = append(result, notification)
		}
	}
	return result
}

type fakeExpiry struct {
	mu        sync.Mutex
	scheduled map[string]time.Time
}

func (f *fakeExpiry) ScheduleItemExpiry(ctx context.Context, itemID string, until time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.scheduled == nil {
		f.scheduled = map[string]time.Time{}
	}
	f.scheduled[itemID] = until
	return nil
}

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
