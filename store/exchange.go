package store

import (
	"context"
	"time"

	"github.com/jinzhu/gorm"

	"github.com/bitmark-inc/exchange-api/schema"
)

// ExchangeCore is the relational datastore of accounts, items, requests and transactions.
// Every method joins the database transaction carried by ctx when there is one.
type ExchangeCore interface {
	Ping() error
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error

	// Account
	CreateAccount(ctx context.Context, a *schema.Account) error
	GetAccount(ctx context.Context, id string) (*schema.Account, error)
	GetAccountByEmail(ctx context.Context, email string) (*schema.Account, error)

	// Refresh token
	CreateRefreshToken(ctx context.Context, t *schema.RefreshToken) error
	GetRefreshTokenForUpdate(ctx context.Context, id string) (*schema.RefreshToken, error)
	RevokeRefreshToken(ctx context.Context, id, replacedBy string, at time.Time) error

	// Item
	CreateItem(ctx context.Context, item *schema.Item) error
	GetItem(ctx context.Context, id string) (*schema.Item, error)
	GetItemForUpdate(ctx context.Context, id string) (*schema.Item, error)
	ListItems(ctx context.Context, filter ItemFilter) ([]schema.Item, error)
	UpdateItemStatus(ctx context.Context, id string, from, to schema.ItemStatus) error

	// Request
	CreateRequest(ctx context.Context, r *schema.Request) error
	GetRequest(ctx context.Context, id string) (*schema.Request, error)
	ListRequests(ctx context.Context, filter RequestFilter) ([]schema.Request, error)
	ApproveRequest(ctx context.Context, id, message string) error
	RejectRequest(ctx context.Context, id, message string) error
	HoldPendingRequests(ctx context.Context, itemID, exceptID string) ([]schema.Request, error)
	ReopenHeldRequests(ctx context.Context, itemID string) ([]schema.Request, error)

	// Transaction
	CreateTransaction(ctx context.Context, t *schema.Transaction) error
	GetTransaction(ctx context.Context, id string) (*schema.Transaction, error)
	GetTransactionForUpdate(ctx context.Context, id string) (*schema.Transaction, error)
	ListTransactions(ctx context.Context, filter TransactionFilter) ([]schema.Transaction, error)
	CompleteTransaction(ctx context.Context, id string, at time.Time) error
	FailTransaction(ctx context.Context, id, message string, at time.Time) error
	RateTransaction(ctx context.Context, id string, rating Rating) error
}

type ItemFilter struct {
	OwnerID  string
	Category string
	Status   schema.ItemStatus
	Limit    int
	Offset   int
}

type RequestFilter struct {
	RequesterID   string
	CharitarianID string
	ItemID        string
	Status        schema.RequestStatus
	Limit         int
	Offset        int
}

type TransactionFilter struct {
	AccountID string
	ItemID    string
	Status    schema.TransactionStatus
	Limit     int
	Offset    int
}

// Rating is the single evaluation a participant leaves on a finished transaction
type Rating struct {
	RatedBy     string
	RatedUserID string
	Score       int
	Comment     string
	At          time.Time
}

const defaultListLimit = 20

func pageOf(limit, offset int) (int, int) {
	if limit <= 0 || limit > 100 {
		limit = defaultListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// ExchangeStore is an implementation of ExchangeCore
type ExchangeStore struct {
	ormDB *gorm.DB
}

func NewExchangeStore(ormDB *gorm.DB) *ExchangeStore {
	return &ExchangeStore{
		ormDB: ormDB,
	}
}

// Ping is to check the storage health status
func (s *ExchangeStore) Ping() error {
	return s.ormDB.DB().Ping()
}
