package schema

// ItemStatus is the moderation and availability state of a listed item
type ItemStatus string

const (
	ItemPending       ItemStatus = "PENDING"
	ItemApproved      ItemStatus = "APPROVED"
	ItemRejected      ItemStatus = "REJECTED"
	ItemOutOfDate     ItemStatus = "OUT_OF_DATE"
	ItemInTransaction ItemStatus = "IN_TRANSACTION"
	ItemExchanged     ItemStatus = "EXCHANGED"
)

type ItemEvent string

const (
	ItemEventModerateApprove ItemEvent = "MODERATE_APPROVE"
	ItemEventModerateReject  ItemEvent = "MODERATE_REJECT"
	ItemEventExpire          ItemEvent = "EXPIRE"
	ItemEventCommit          ItemEvent = "COMMIT"
	ItemEventExchange        ItemEvent = "EXCHANGE"
	ItemEventRelease         ItemEvent = "RELEASE"
)

var itemTransitions = map[ItemStatus]map[ItemEvent]ItemStatus{
	ItemPending: {
		ItemEventModerateApprove: ItemApproved,
		ItemEventModerateReject:  ItemRejected,
	},
	ItemApproved: {
		ItemEventExpire: ItemOutOfDate,
		ItemEventCommit: ItemInTransaction,
	},
	ItemInTransaction: {
		ItemEventExchange: ItemExchanged,
		ItemEventRelease:  ItemApproved,
	},
}

// Next returns the status an item moves to on the event. Events that are not
// legal from the current status are rejected with ErrInvalidState.
func (s ItemStatus) Next(e ItemEvent) (ItemStatus, error) {
	if next, ok := itemTransitions[s][e]; ok {
		return next, nil
	}
	return s, NewInvalidStateError("item cannot %s when %s", e, s)
}

// Valid reports whether s is one of the known item statuses
func (s ItemStatus) Valid() bool {
	switch s {
	case ItemPending, ItemApproved, ItemRejected, ItemOutOfDate, ItemInTransaction, ItemExchanged:
		return true
	}
	return false
}

// RequestStatus is the negotiation state of a request
type RequestStatus string

const (
	RequestPending  RequestStatus = "PENDING"
	RequestApproved RequestStatus = "APPROVED"
	RequestRejected RequestStatus = "REJECTED"
	RequestHoldOn   RequestStatus = "HOLD_ON"
)

type RequestEvent string

const (
	RequestEventApprove RequestEvent = "APPROVE"
	RequestEventReject  RequestEvent = "REJECT"
	RequestEventHold    RequestEvent = "HOLD"
	RequestEventReopen  RequestEvent = "REOPEN"
)

var requestTransitions = map[RequestStatus]map[RequestEvent]RequestStatus{
	RequestPending: {
		RequestEventApprove: RequestApproved,
		RequestEventReject:  RequestRejected,
		RequestEventHold:    RequestHoldOn,
	},
	RequestHoldOn: {
		RequestEventReopen: RequestPending,
	},
}

// Next returns the status a request moves to on the event. A request leaves
// PENDING exactly once by a user action. HOLD_ON only leaves through REOPEN.
func (s RequestStatus) Next(e RequestEvent) (RequestStatus, error) {
	if next, ok := requestTransitions[s][e]; ok {
		return next, nil
	}
	return s, NewInvalidStateError("request cannot %s when %s", e, s)
}

func (s RequestStatus) Valid() bool {
	switch s {
	case RequestPending, RequestApproved, RequestRejected, RequestHoldOn:
		return true
	}
	return false
}

// TransactionStatus is the state of an in-person exchange
type TransactionStatus string

const (
	TransactionInProgress   TransactionStatus = "IN_PROGRESS"
	TransactionCompleted    TransactionStatus = "COMPLETED"
	TransactionNotCompleted TransactionStatus = "NOT_COMPLETED"
)

type TransactionEvent string

const (
	TransactionEventVerify TransactionEvent = "VERIFY"
	TransactionEventFail   TransactionEvent = "FAIL"
)

var transactionTransitions = map[TransactionStatus]map[TransactionEvent]TransactionStatus{
	TransactionInProgress: {
		TransactionEventVerify: TransactionCompleted,
		TransactionEventFail:   TransactionNotCompleted,
	},
}

// Next returns the status a transaction moves to on the event. Terminal
// statuses accept no event.
func (s TransactionStatus) Next(e TransactionEvent) (TransactionStatus, error) {
	if next, ok := transactionTransitions[s][e]; ok {
		return next, nil
	}
	return s, NewInvalidStateError("transaction cannot %s when %s", e, s)
}

// Terminal reports whether no further transition is possible
func (s TransactionStatus) Terminal() bool {
	return s == TransactionCompleted || s == TransactionNotCompleted
}

func (s TransactionStatus) Valid() bool {
	switch s {
	case TransactionInProgress, TransactionCompleted, TransactionNotCompleted:
		return true
	}
	return false
}
