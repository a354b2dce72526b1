// Package exchange holds the authoritative state machines of the marketplace:
// how items, requests and transactions move between their statuses, who may
// move them and which notifications every move produces.
package exchange

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/uber-go/tally"

	"github.com/bitmark-inc/exchange-api/schema"
	"github.com/bitmark-inc/exchange-api/store"
	"github.com/bitmark-inc/exchange-api/utils"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "exchange")
}

// Exchange is the set of operations the api layer drives
type Exchange interface {
	CreateItem(ctx context.Context, ownerID string, in CreateItemInput) (*schema.Item, error)
	GetItem(ctx context.Context, id string) (*schema.Item, error)
	ListItems(ctx context.Context, filter store.ItemFilter) ([]schema.Item, error)
	ModerateItem(ctx context.Context, moderatorID, itemID string, approve bool) (*schema.Item, error)
	ExpireItem(ctx context.Context, itemID string) (bool, error)

	CreateRequest(ctx context.Context, requesterID string, in CreateRequestInput) (*schema.Request, error)
	GetRequest(ctx context.Context, callerID, requestID string) (*schema.Request, error)
	ListRequests(ctx context.Context, callerID string, q RequestQuery) ([]schema.Request, error)
	ApproveRequest(ctx context.Context, callerID, requestID string, chosenTime time.Time, message string) (*schema.Transaction, error)
	RejectRequest(ctx context.Context, callerID, requestID, message string) (*schema.Request, error)

	GetTransaction(ctx context.Context, callerID, transactionID string) (*schema.Transaction, error)
	ListTransactions(ctx context.Context, callerID string, q TransactionQuery) ([]schema.Transaction, error)
	VerifyTransaction(ctx context.Context, callerID, transactionID string) (*schema.Transaction, error)
	RejectTransaction(ctx context.Context, callerID, transactionID, message string) (*schema.Transaction, error)
	GenerateVerificationCode(ctx context.Context, callerID, transactionID string, size int) ([]byte, error)

	SubmitRating(ctx context.Context, raterID, transactionID string, in RatingInput) (*schema.Transaction, error)
	SubmitReport(ctx context.Context, reporterID, transactionID string, in ReportInput) (*schema.Report, error)
}

var _ Exchange = (*Service)(nil)

// Notifier takes the notifications produced by a committed state change
type Notifier interface {
	Deliver(ctx context.Context, notifications []schema.Notification)
}

// ExpiryScheduler arranges for an approved item to be expired once its
// availability window has elapsed
type ExpiryScheduler interface {
	ScheduleItemExpiry(ctx context.Context, itemID string, until time.Time) error
}

// AddressResolver names the place at a location
type AddressResolver interface {
	ResolveAddress(ctx context.Context, loc schema.Location, language string) (string, error)
}

// Service is an implementation of Exchange
type Service struct {
	store     store.ExchangeCore
	reports   store.ReportBox
	notifier  Notifier
	expiry    ExpiryScheduler
	addresses AddressResolver
	clock     utils.Clock
	metrics   tally.Scope
	newID     func() string
}

type Option func(*Service)

func WithClock(c utils.Clock) Option {
	return func(s *Service) {
		s.clock = c
	}
}

func WithExpiryScheduler(e ExpiryScheduler) Option {
	return func(s *Service) {
		s.expiry = e
	}
}

func WithAddressResolver(r AddressResolver) Option {
	return func(s *Service) {
		s.addresses = r
	}
}

func WithMetricsScope(scope tally.Scope) Option {
	return func(s *Service) {
		s.metrics = scope
	}
}

func NewService(core store.ExchangeCore, reports store.ReportBox, notifier Notifier, opts ...Option) *Service {
	s := &Service{
		store:    core,
		reports:  reports,
		notifier: notifier,
		clock:    utils.NewSystemClock(),
		metrics:  tally.NoopScope,
		newID: func() string {
			return uuid.New().String()
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// notify hands notifications to the notifier once the change is committed
func (s *Service) notify(ctx context.Context, notifications []schema.Notification) {
	if s.notifier == nil || len(notifications) == 0 {
		return
	}
	s.notifier.Deliver(ctx, notifications)
}

func (s *Service) newNotification(recipient string, t schema.NotificationType, entity schema.EntityType, entityID string) schema.Notification {
	return schema.Notification{
		ID:        s.newID(),
		AccountID: recipient,
		Type:      t,
		Data: schema.NotificationData{
			EntityType: entity,
			EntityID:   entityID,
		},
		Status:    schema.NotificationPending,
		CreatedAt: s.clock.Now(),
	}
}

func (s *Service) count(name string) {
	s.metrics.Counter(name).Inc(1)
}
