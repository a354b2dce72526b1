package schema

import (
	"time"
)

type Role string

const (
	RoleUser      Role = "USER"
	RoleModerator Role = "MODERATOR"
)

type Location struct {
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
}

type Account struct {
	ID           string    `json:"id" gorm:"type:uuid;primary_key"`
	Email        string    `json:"email" gorm:"unique_index;not null"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Language     string    `json:"language" sql:"default:'en'"`
	Address      string    `json:"address"`
	Location     Location  `json:"location" gorm:"embedded;embedded_prefix:location_"`
	Role         Role      `json:"role" sql:"default:'USER'"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (a *Account) IsModerator() bool {
	return a.Role == RoleModerator
}

// RefreshToken is a single-use credential that trades for a new token pair.
// A rotated token keeps a pointer to its replacement.
type RefreshToken struct {
	ID         string     `json:"id" gorm:"type:uuid;primary_key"`
	AccountID  string     `json:"account_id" gorm:"type:uuid;index"`
	ExpiresAt  time.Time  `json:"expires_at"`
	RevokedAt  *time.Time `json:"revoked_at"`
	ReplacedBy string     `json:"replaced_by"`
	CreatedAt  time.Time  `json:"created_at"`
}

// Usable reports whether the token may still be exchanged
func (t *RefreshToken) Usable(now time.Time) bool {
	return t.RevokedAt == nil && now.Before(t.ExpiresAt)
}
