package exchange

import (
	"errors"

	"github.com/bitmark-inc/exchange-api/schema"
)

func (s *ExchangeTestSuite) TestRateTransactionInProgress() {
	t, _ := s.approved()

	_, err := s.service.SubmitRating(s.ctx, s.requester.ID, t.ID, RatingInput{RatedUserID: s.owner.ID, Rating: 5})
	s.True(errors.Is(err, schema.ErrInvalidState))
	s.Nil(s.store.transactions[t.ID].Rating)
}

func (s *ExchangeTestSuite) TestRateTransaction() {
	t, _ := s.approved()
	_, err := s.service.VerifyTransaction(s.ctx, s.owner.ID, t.ID)
	s.Require().NoError(err)
	s.notifier.reset()

	for _, in := range []RatingInput{
		{RatedUserID: s.owner.ID, Rating: 0},
		{RatedUserID: s.owner.ID, Rating: 6},
	} {
		_, err := s.service.SubmitRating(s.ctx, s.requester.ID, t.ID, in)
		s.True(errors.Is(err, schema.ErrValidation))
	}

	_, err = s.service.SubmitRating(s.ctx, s.other.ID, t.ID, RatingInput{RatedUserID: s.owner.ID, Rating: 3})
	s.True(errors.Is(err, schema.ErrPermission))
	_, err = s.service.SubmitRating(s.ctx, s.requester.ID, t.ID, RatingInput{RatedUserID: s.requester.ID, Rating: 3})
	s.True(errors.Is(err, schema.ErrPermission))

	rated, err := s.service.SubmitRating(s.ctx, s.requester.ID, t.ID, RatingInput{
		RatedUserID: s.owner.ID,
		Rating:      4,
		Comment:     "friendly",
	})
	s.Require().NoError(err)
	s.Equal(4, *rated.Rating)
	s.Equal([]schema.NotificationType{schema.NotificationTransactionRated}, s.notificationTypes(s.owner.ID))

	_, err = s.service.SubmitRating(s.ctx, s.requester.ID, t.ID, RatingInput{RatedUserID: s.owner.ID, Rating: 1})
	s.True(errors.Is(err, schema.ErrConflict))
	_, err = s.service.SubmitRating(s.ctx, s.owner.ID, t.ID, RatingInput{RatedUserID: s.requester.ID, Rating: 1})
	s.True(errors.Is(err, schema.ErrConflict))

	stored := s.store.transactions[t.ID]
	s.Equal(4, *stored.Rating)
	s.Equal("friendly", *stored.RatingComment)
	s.Equal(s.requester.ID, stored.RatedBy)
	s.Equal(s.owner.ID, stored.RatedUserID)
}

func (s *ExchangeTestSuite) TestRateFailedTransaction() {
	t, _ := s.approved()
	_, err := s.service.RejectTransaction(s.ctx, s.owner.ID, t.ID, "no show")
	s.Require().NoError(err)

	_, err = s.service.SubmitRating(s.ctx, s.owner.ID, t.ID, RatingInput{RatedUserID: s.requester.ID, Rating: 1})
	s.NoError(err)
}

func (s *ExchangeTestSuite) TestSubmitReport() {
	t, _ := s.approved()

	_, err := s.service.SubmitReport(s.ctx, s.owner.ID, t.ID, ReportInput{ReportedID: s.requester.ID})
	s.True(errors.Is(err, schema.ErrValidation))
	_, err = s.service.SubmitReport(s.ctx, s.owner.ID, t.ID, ReportInput{
		ReportedID: s.requester.ID,
		Reasons:    []schema.ReportReason{"BORED"},
	})
	s.True(errors.Is(err, schema.ErrValidation))
	_, err = s.service.SubmitReport(s.ctx, s.other.ID, t.ID, ReportInput{
		ReportedID: s.requester.ID,
		Reasons:    []schema.ReportReason{schema.ReasonNoShow},
	})
	s.True(errors.Is(err, schema.ErrPermission))

	for i := 0; i < 2; i++ {
		report, err := s.service.SubmitReport(s.ctx, s.owner.ID, t.ID, ReportInput{
			ReportedID: s.requester.ID,
			Reasons:    []schema.ReportReason{schema.ReasonNoShow, schema.ReasonOther},
			Text:       "did not come",
		})
		s.Require().NoError(err)
		s.Equal(s.owner.ID, report.ReporterID)
	}

	reports, err := s.reports.ListReports(s.ctx, t.ID)
	s.NoError(err)
	s.Len(reports, 2)
}
