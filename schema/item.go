package schema

import (
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/bitmark-inc/exchange-api/consts"
)

type ItemCondition string

const (
	ConditionNew  ItemCondition = "NEW"
	ConditionUsed ItemCondition = "USED"
)

type Item struct {
	ID                 string         `json:"id" gorm:"type:uuid;primary_key"`
	OwnerID            string         `json:"owner_id" gorm:"type:uuid;index"`
	Name               string         `json:"name"`
	Description        string         `json:"description"`
	Category           string         `json:"category"`
	Subcategory        string         `json:"subcategory"`
	DesiredSubcategory string         `json:"desired_subcategory"`
	Condition          ItemCondition  `json:"condition"`
	IsGift             bool           `json:"is_gift"`
	Quantity           int            `json:"quantity"`
	Images             pq.StringArray `json:"images" gorm:"type:text[]"`
	Video              string         `json:"video,omitempty"`
	AvailableTime      string         `json:"available_time"`
	AvailableUntil     *time.Time     `json:"available_until,omitempty"`
	Address            string         `json:"address"`
	Location           Location       `json:"location" gorm:"embedded;embedded_prefix:location_"`
	Status             ItemStatus     `json:"status" gorm:"index"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

// Elapsed reports whether the availability window of the item is over at now
func (i *Item) Elapsed(now time.Time) bool {
	return i.AvailableUntil != nil && !now.Before(*i.AvailableUntil)
}

// Validate checks the fields an owner must provide when listing an item
func (i *Item) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return NewValidationError("item name is required")
	}
	if i.Condition != ConditionNew && i.Condition != ConditionUsed {
		return NewValidationError("unknown item condition %q", i.Condition)
	}
	if i.Quantity < 1 {
		return NewValidationError("quantity must be at least 1")
	}
	if len(i.Images) < 1 || len(i.Images) > consts.MaxItemImages {
		return NewValidationError("an item carries 1 to %d images", consts.MaxItemImages)
	}
	for _, img := range i.Images {
		if strings.TrimSpace(img) == "" {
			return NewValidationError("empty image uri")
		}
	}
	return nil
}
