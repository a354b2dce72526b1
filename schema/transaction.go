package schema

import (
	"time"
)

// Party is the snapshot of one side of a transaction taken when the
// request is approved
type Party struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	ItemID    string  `json:"item_id,omitempty"`
	ItemName  string  `json:"item_name,omitempty"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Transaction struct {
	ID              string            `json:"id" gorm:"type:uuid;primary_key"`
	RequestID       string            `json:"request_id" gorm:"type:uuid;unique_index"`
	ItemID          string            `json:"item_id" gorm:"type:uuid;index"`
	Status          TransactionStatus `json:"status"`
	AppointmentDate time.Time         `json:"appointment_date"`
	Requester       Party             `json:"requester" gorm:"embedded;embedded_prefix:requester_"`
	Charitarian     Party             `json:"charitarian" gorm:"embedded;embedded_prefix:charitarian_"`
	RejectMessage   string            `json:"reject_message,omitempty"`
	Rating          *int              `json:"rating"`
	RatingComment   *string           `json:"rating_comment"`
	RatedBy         string            `json:"rated_by,omitempty"`
	RatedUserID     string            `json:"rated_user_id,omitempty"`
	RatedAt         *time.Time        `json:"rated_at,omitempty"`
	CompletedAt     *time.Time        `json:"completed_at,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// IsParticipant reports whether the account is either side of the transaction
func (t *Transaction) IsParticipant(accountID string) bool {
	return accountID != "" && (t.Requester.ID == accountID || t.Charitarian.ID == accountID)
}

// Counterparty returns the other side of the transaction for a participant
func (t *Transaction) Counterparty(accountID string) string {
	switch accountID {
	case t.Requester.ID:
		return t.Charitarian.ID
	case t.Charitarian.ID:
		return t.Requester.ID
	}
	return ""
}
