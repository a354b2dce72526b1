package consts

import "time"

const (
	// MaxMessageLength limits every free text attached to a request or transaction
	MaxMessageLength = 100

	MaxAppointmentCandidates = 3
	MaxItemImages            = 5

	MinRating = 1
	MaxRating = 5

	// NotificationWindow is the size of the most recent notifications a client is served
	NotificationWindow = 100

	DefaultAccessTokenExpiry  = 60 * time.Minute
	DefaultRefreshTokenExpiry = 30 * 24 * time.Hour

	DefaultLanguage = "en"
)
