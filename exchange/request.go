package exchange

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bitmark-inc/exchange-api/consts"
	"github.com/bitmark-inc/exchange-api/schema"
	"github.com/bitmark-inc/exchange-api/store"
)

type CreateRequestInput struct {
	CharitarianItemID     string      `json:"charitarian_item_id"`
	RequesterItemID       string      `json:"requester_item_id"`
	RequestImages         []string    `json:"request_images"`
	AppointmentCandidates []time.Time `json:"appointment_date"`
	Message               string      `json:"request_message"`
}

// validate checks the input and trims the offered item id in place
func (in *CreateRequestInput) validate() error {
	in.RequesterItemID = strings.TrimSpace(in.RequesterItemID)
	hasItem := in.RequesterItemID != ""
	hasImages := len(in.RequestImages) > 0
	if hasItem == hasImages {
		return schema.NewValidationError("a request offers either an item or images")
	}
	if len(in.RequestImages) > consts.MaxItemImages {
		return schema.NewValidationError("a request carries at most %d images", consts.MaxItemImages)
	}
	if in.CharitarianItemID == "" {
		return schema.NewValidationError("the requested item is missing")
	}
	if err := schema.AppointmentCandidates(in.AppointmentCandidates).Validate(); err != nil {
		return err
	}
	return schema.ValidateMessage(false, in.Message)
}

// RequestRole selects the side of the requests a caller lists
type RequestRole string

const (
	RoleRequester   RequestRole = "requester"
	RoleCharitarian RequestRole = "charitarian"
)

type RequestQuery struct {
	Role   RequestRole
	ItemID string
	Status schema.RequestStatus
	Limit  int
	Offset int
}

// CreateRequest proposes an exchange or asks for a gift. The item lock makes
// sure the item is still open for requests when the request is stored.
func (s *Service) CreateRequest(ctx context.Context, requesterID string, in CreateRequestInput) (*schema.Request, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	candidates := make(schema.AppointmentCandidates, 0, len(in.AppointmentCandidates))
	for _, c := range in.AppointmentCandidates {
		candidates = append(candidates, c.UTC())
	}

	var request *schema.Request
	err := s.store.WithTx(ctx, func(ctx context.Context) error {
		item, err := s.store.GetItemForUpdate(ctx, in.CharitarianItemID)
		if err != nil {
			return err
		}
		if item.OwnerID == requesterID {
			return schema.NewPermissionError("cannot request an own item")
		}
		if item.Status != schema.ItemApproved {
			return schema.NewInvalidStateError("item %s is %s", item.ID, item.Status)
		}
		if item.Elapsed(now) {
			return schema.NewInvalidStateError("item %s is no longer available", item.ID)
		}

		if in.RequesterItemID != "" {
			offered, err := s.store.GetItem(ctx, in.RequesterItemID)
			if err != nil {
				return err
			}
			if offered.OwnerID != requesterID {
				return schema.NewPermissionError("item %s is not owned by the requester", offered.ID)
			}
			if offered.Status != schema.ItemApproved {
				return schema.NewInvalidStateError("offered item %s is %s", offered.ID, offered.Status)
			}
		}

		for _, status := range []schema.RequestStatus{schema.RequestPending, schema.RequestHoldOn} {
			open, err := s.store.ListRequests(ctx, store.RequestFilter{
				RequesterID: requesterID,
				ItemID:      item.ID,
				Status:      status,
				Limit:       1,
			})
			if err != nil {
				return err
			}
			if len(open) > 0 {
				return schema.NewConflictError("request %s on the item is still open", open[0].ID)
			}
		}

		request = &schema.Request{
			ID:                s.newID(),
			RequesterID:       requesterID,
			CharitarianID:     item.OwnerID,
			CharitarianItemID: item.ID,
			RequesterItemID:   in.RequesterItemID,
			RequestImages:     in.RequestImages,
			Status:            schema.RequestPending,
			RequestMessage:    in.Message,
			AppointmentDate:   candidates,
			CreatedAt:         now,
			UpdatedAt:         now,
		}
		return s.store.CreateRequest(ctx, request)
	})
	if err != nil {
		return nil, err
	}

	s.count("request.created")
	s.notify(ctx, []schema.Notification{
		s.newNotification(request.CharitarianID, schema.NotificationRequestCreated, schema.EntityRequest, request.ID),
	})
	return request, nil
}

// GetRequest returns a request to either of its parties
func (s *Service) GetRequest(ctx context.Context, callerID, requestID string) (*schema.Request, error) {
	r, err := s.store.GetRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if r.RequesterID != callerID && r.CharitarianID != callerID {
		return nil, schema.NewPermissionError("request %s belongs to other accounts", requestID)
	}
	return r, nil
}

func (s *Service) ListRequests(ctx context.Context, callerID string, q RequestQuery) ([]schema.Request, error) {
	if q.Status != "" && !q.Status.Valid() {
		return nil, schema.NewValidationError("unknown request status %q", q.Status)
	}

	filter := store.RequestFilter{
		ItemID: q.ItemID,
		Status: q.Status,
		Limit:  q.Limit,
		Offset: q.Offset,
	}
	switch q.Role {
	case RoleCharitarian:
		filter.CharitarianID = callerID
	case RoleRequester, "":
		filter.RequesterID = callerID
	default:
		return nil, schema.NewValidationError("unknown role %q", q.Role)
	}
	return s.store.ListRequests(ctx, filter)
}

// ApproveRequest accepts a pending request at one of its proposed times. The
// request turns APPROVED, the item is committed, a transaction starts and every
// other pending request on the item is put on hold, all in one database
// transaction. Concurrent approvals on one item queue on the item row lock, the
// later ones find the item committed and fail with ErrInvalidState.
func (s *Service) ApproveRequest(ctx context.Context, callerID, requestID string, chosenTime time.Time, message string) (*schema.Transaction, error) {
	if err := schema.ValidateMessage(false, message); err != nil {
		return nil, err
	}
	if chosenTime.IsZero() {
		return nil, schema.NewValidationError("an appointment time is required")
	}

	now := s.clock.Now()

	var (
		transaction *schema.Transaction
		request     *schema.Request
		held        []schema.Request
	)
	err := s.store.WithTx(ctx, func(ctx context.Context) error {
		r, err := s.store.GetRequest(ctx, requestID)
		if err != nil {
			return err
		}
		if r.CharitarianID != callerID {
			return schema.NewPermissionError("only the item owner approves request %s", requestID)
		}

		item, err := s.store.GetItemForUpdate(ctx, r.CharitarianItemID)
		if err != nil {
			return err
		}

		// read again under the item lock, a concurrent approval may have held it
		if request, err = s.store.GetRequest(ctx, requestID); err != nil {
			return err
		}
		if _, err := request.Status.Next(schema.RequestEventApprove); err != nil {
			return err
		}
		if !request.AppointmentDate.Contains(chosenTime) {
			return schema.NewValidationError("%s is not one of the proposed times", chosenTime.UTC().Format(time.RFC3339))
		}

		itemNext, err := item.Status.Next(schema.ItemEventCommit)
		if err != nil {
			return err
		}

		if err := s.store.ApproveRequest(ctx, request.ID, message); err != nil {
			return err
		}
		request.Status = schema.RequestApproved
		request.ApproveMessage = message

		if err := s.store.UpdateItemStatus(ctx, item.ID, item.Status, itemNext); err != nil {
			return err
		}

		if held, err = s.store.HoldPendingRequests(ctx, item.ID, request.ID); err != nil {
			return err
		}

		transaction, err = s.openTransaction(ctx, request, item, chosenTime.UTC(), now)
		return err
	})
	if err != nil {
		if errors.Is(err, schema.ErrInvalidState) {
			s.count("request.approve_lost")
		}
		return nil, err
	}

	s.count("request.approved")

	notifications := []schema.Notification{
		s.newNotification(request.RequesterID, schema.NotificationRequestApproved, schema.EntityTransaction, transaction.ID),
	}
	for _, h := range held {
		notifications = append(notifications,
			s.newNotification(h.RequesterID, schema.NotificationRequestHoldOn, schema.EntityRequest, h.ID))
	}
	s.notify(ctx, notifications)

	return transaction, nil
}

// openTransaction snapshots both parties of an approved request into a new transaction
func (s *Service) openTransaction(ctx context.Context, request *schema.Request, item *schema.Item, at, now time.Time) (*schema.Transaction, error) {
	requester, err := s.store.GetAccount(ctx, request.RequesterID)
	if err != nil {
		return nil, err
	}
	charitarian, err := s.store.GetAccount(ctx, request.CharitarianID)
	if err != nil {
		return nil, err
	}

	requesterParty := schema.Party{
		ID:        requester.ID,
		Name:      requester.Name,
		Address:   requester.Address,
		Latitude:  requester.Location.Latitude,
		Longitude: requester.Location.Longitude,
	}
	if request.IsExchange() {
		offered, err := s.store.GetItem(ctx, request.RequesterItemID)
		if err != nil {
			return nil, err
		}
		requesterParty.ItemID = offered.ID
		requesterParty.ItemName = offered.Name
	}

	address, location := item.Address, item.Location
	if address == "" {
		address, location = charitarian.Address, charitarian.Location
	}

	t := &schema.Transaction{
		ID:              s.newID(),
		RequestID:       request.ID,
		ItemID:          item.ID,
		Status:          schema.TransactionInProgress,
		AppointmentDate: at,
		Requester:       requesterParty,
		Charitarian: schema.Party{
			ID:        charitarian.ID,
			Name:      charitarian.Name,
			ItemID:    item.ID,
			ItemName:  item.Name,
			Address:   address,
			Latitude:  location.Latitude,
			Longitude: location.Longitude,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.CreateTransaction(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// RejectRequest declines a pending request with a mandatory reason
func (s *Service) RejectRequest(ctx context.Context, callerID, requestID, message string) (*schema.Request, error) {
	if err := schema.ValidateMessage(true, message); err != nil {
		return nil, err
	}

	var request *schema.Request
	err := s.store.WithTx(ctx, func(ctx context.Context) error {
		var err error
		request, err = s.store.GetRequest(ctx, requestID)
		if err != nil {
			return err
		}
		if request.CharitarianID != callerID {
			return schema.NewPermissionError("only the item owner rejects request %s", requestID)
		}
		if _, err := request.Status.Next(schema.RequestEventReject); err != nil {
			return err
		}

		if err := s.store.RejectRequest(ctx, request.ID, message); err != nil {
			return err
		}
		request.Status = schema.RequestRejected
		request.RejectMessage = message
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.count("request.rejected")
	s.notify(ctx, []schema.Notification{
		s.newNotification(request.RequesterID, schema.NotificationRequestRejected, schema.EntityRequest, request.ID),
	})
	return request, nil
}
