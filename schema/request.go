package schema

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/lib/pq"

	"github.com/bitmark-inc/exchange-api/consts"
)

// AppointmentCandidates is the ordered list of meeting times proposed by a requester
type AppointmentCandidates []time.Time

func (a AppointmentCandidates) Value() (driver.Value, error) {
	return json.Marshal(a)
}

func (a *AppointmentCandidates) Scan(src interface{}) error {
	source, ok := src.([]byte)
	if !ok {
		return errors.New("Type assertion .([]byte) failed.")
	}
	return json.Unmarshal(source, a)
}

// Contains reports whether t equals one of the candidates
func (a AppointmentCandidates) Contains(t time.Time) bool {
	for _, c := range a {
		if c.Equal(t) {
			return true
		}
	}
	return false
}

// Validate checks the candidate count and rejects duplicated slots
func (a AppointmentCandidates) Validate() error {
	if len(a) == 0 || len(a) > consts.MaxAppointmentCandidates {
		return NewValidationError("1 to %d appointment candidates are required", consts.MaxAppointmentCandidates)
	}
	for i := range a {
		if a[i].IsZero() {
			return NewValidationError("appointment candidate %d is empty", i)
		}
		for j := i + 1; j < len(a); j++ {
			if a[i].Equal(a[j]) {
				return NewValidationError("duplicated appointment candidate %s", a[i].Format(time.RFC3339))
			}
		}
	}
	return nil
}

type Request struct {
	ID                string                `json:"id" gorm:"type:uuid;primary_key"`
	RequesterID       string                `json:"requester_id" gorm:"type:uuid;index"`
	CharitarianID     string                `json:"charitarian_id" gorm:"type:uuid;index"`
	CharitarianItemID string                `json:"charitarian_item_id" gorm:"type:uuid;index"`
	RequesterItemID   string                `json:"requester_item_id,omitempty"`
	RequestImages     pq.StringArray        `json:"request_images,omitempty" gorm:"type:text[]"`
	Status            RequestStatus         `json:"status" gorm:"index"`
	RequestMessage    string                `json:"request_message,omitempty"`
	ApproveMessage    string                `json:"approve_message,omitempty"`
	RejectMessage     string                `json:"reject_message,omitempty"`
	AppointmentDate   AppointmentCandidates `json:"appointment_date" gorm:"type:jsonb;not null"`
	CreatedAt         time.Time             `json:"created_at"`
	UpdatedAt         time.Time             `json:"updated_at"`
}

// IsExchange tells an exchange request, which offers an item in return, from a gift request
func (r *Request) IsExchange() bool {
	return r.RequesterItemID != ""
}

// ValidateMessage checks the length of a free text message. An empty message
// is only accepted when it is optional.
func ValidateMessage(required bool, message string) error {
	n := len([]rune(message))
	if required && n == 0 {
		return NewValidationError("message is required")
	}
	if n > consts.MaxMessageLength {
		return NewValidationError("message exceeds %d characters", consts.MaxMessageLength)
	}
	return nil
}
