package exchange

import (
	"context"

	"github.com/bitmark-inc/exchange-api/consts"
	"github.com/bitmark-inc/exchange-api/schema"
	"github.com/bitmark-inc/exchange-api/store"
)

type RatingInput struct {
	RatedUserID string `json:"rated_user_id"`
	Rating      int    `json:"rating"`
	Comment     string `json:"comment"`
}

type ReportInput struct {
	ReportedID string                `json:"reported_id"`
	Reasons    []schema.ReportReason `json:"reasons"`
	Text       string                `json:"text"`
}

// SubmitRating attaches the rating to a finished transaction. A transaction
// keeps one rating, the first submission wins and later ones fail with ErrConflict.
func (s *Service) SubmitRating(ctx context.Context, raterID, transactionID string, in RatingInput) (*schema.Transaction, error) {
	if in.Rating < consts.MinRating || in.Rating > consts.MaxRating {
		return nil, schema.NewValidationError("rating must be within %d and %d", consts.MinRating, consts.MaxRating)
	}
	if err := schema.ValidateMessage(false, in.Comment); err != nil {
		return nil, err
	}

	t, err := s.store.GetTransaction(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if !t.IsParticipant(raterID) {
		return nil, schema.NewPermissionError("only participants rate transaction %s", transactionID)
	}
	if !t.Status.Terminal() {
		return nil, schema.NewInvalidStateError("transaction %s is %s", t.ID, t.Status)
	}
	if in.RatedUserID != t.Counterparty(raterID) {
		return nil, schema.NewPermissionError("only the counterparty can be rated")
	}
	if t.Rating != nil {
		return nil, schema.NewConflictError("transaction %s has been rated", t.ID)
	}

	now := s.clock.Now()
	if err := s.store.RateTransaction(ctx, t.ID, store.Rating{
		RatedBy:     raterID,
		RatedUserID: in.RatedUserID,
		Score:       in.Rating,
		Comment:     in.Comment,
		At:          now,
	}); err != nil {
		return nil, err
	}

	score, comment := in.Rating, in.Comment
	t.Rating = &score
	t.RatingComment = &comment
	t.RatedBy = raterID
	t.RatedUserID = in.RatedUserID
	t.RatedAt = &now

	s.count("transaction.rated")
	s.notify(ctx, []schema.Notification{
		s.newNotification(in.RatedUserID, schema.NotificationTransactionRated, schema.EntityTransaction, t.ID),
	})
	return t, nil
}

// SubmitReport files a complaint about the counterparty of a transaction.
// Reports are not limited in number.
func (s *Service) SubmitReport(ctx context.Context, reporterID, transactionID string, in ReportInput) (*schema.Report, error) {
	if err := schema.ValidateReportReasons(in.Reasons); err != nil {
		return nil, err
	}
	if err := schema.ValidateMessage(false, in.Text); err != nil {
		return nil, err
	}

	t, err := s.store.GetTransaction(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if !t.IsParticipant(reporterID) {
		return nil, schema.NewPermissionError("only participants report on transaction %s", transactionID)
	}
	if in.ReportedID != t.Counterparty(reporterID) {
		return nil, schema.NewPermissionError("only the counterparty can be reported")
	}

	report := &schema.Report{
		ID:            s.newID(),
		TransactionID: t.ID,
		ReporterID:    reporterID,
		ReportedID:    in.ReportedID,
		Reasons:       in.Reasons,
		Text:          in.Text,
		CreatedAt:     s.clock.Now(),
	}
	if err := s.reports.AddReport(ctx, report); err != nil {
		return nil, err
	}

	s.count("transaction.reported")
	log.WithField("transaction", t.ID).WithField("reasons", in.Reasons).Info("transaction reported")
	return report, nil
}
