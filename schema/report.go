package schema

import "time"

type ReportReason string

const (
	ReasonNoShow       ReportReason = "NO_SHOW"
	ReasonItemMismatch ReportReason = "ITEM_MISMATCH"
	ReasonBadBehavior  ReportReason = "INAPPROPRIATE_BEHAVIOR"
	ReasonFraud        ReportReason = "FRAUD"
	ReasonOther        ReportReason = "OTHER"
)

var knownReportReasons = map[ReportReason]bool{
	ReasonNoShow:       true,
	ReasonItemMismatch: true,
	ReasonBadBehavior:  true,
	ReasonFraud:        true,
	ReasonOther:        true,
}

type Report struct {
	ID            string         `json:"id" bson:"id"`
	TransactionID string         `json:"transaction_id" bson:"transaction_id"`
	ReporterID    string         `json:"reporter_id" bson:"reporter_id"`
	ReportedID    string         `json:"reported_id" bson:"reported_id"`
	Reasons       []ReportReason `json:"reasons" bson:"reasons"`
	Text          string         `json:"text" bson:"text"`
	CreatedAt     time.Time      `json:"created_at" bson:"created_at"`
}

// ValidateReportReasons requires at least one reason and only known categories
func ValidateReportReasons(reasons []ReportReason) error {
	if len(reasons) == 0 {
		return NewValidationError("at least one report reason is required")
	}
	for _, r := range reasons {
		if !knownReportReasons[r] {
			return NewValidationError("unknown report reason %q", r)
		}
	}
	return nil
}
