package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/exchange-api/schema"
)

type ReportBox interface {
	AddReport(ctx context.Context, report *schema.Report) error
	ListReports(ctx context.Context, transactionID string) ([]schema.Report, error)
}

// AddReport stores a report. A transaction may collect any number of reports.
func (m *mongoDB) AddReport(ctx context.Context, report *schema.Report) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := m.collection(schema.ReportCollection).InsertOne(ctx, report); err != nil {
		if isDuplicateKey(err) {
			return schema.NewConflictError("report %s already exists", report.ID)
		}
		return err
	}
	return nil
}

func (m *mongoDB) ListReports(ctx context.Context, transactionID string) ([]schema.Report, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := m.collection(schema.ReportCollection).Find(ctx,
		bson.M{"transaction_id": transactionID},
		options.Find().SetSort(bson.M{"created_at": 1}))
	if err != nil {
		return nil, err
	}

	reports := make([]schema.Report, 0)
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}
