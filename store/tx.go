package store

import (
	"context"
	"fmt"

	"github.com/jinzhu/gorm"
	"github.com/lib/pq"
	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/exchange-api/schema"
)

type txKey struct{}

// WithTx runs fn inside a database transaction. The transaction travels in the
// context handed to fn, so store calls made with it share the same locks.
// A nested call joins the outer transaction.
func (s *ExchangeStore) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}

	tx := s.ormDB.BeginTx(ctx, nil)
	if tx.Error != nil {
		return fmt.Errorf("begin tx: %w", tx.Error)
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			log.WithField("prefix", ormLogPrefix).WithError(rbErr).Warn("rollback failed")
		}
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// db returns the transaction bound to ctx or the shared connection pool
func (s *ExchangeStore) db(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return s.ormDB
}

func (s *ExchangeStore) forUpdate(ctx context.Context) *gorm.DB {
	return s.db(ctx).Set("gorm:query_option", "FOR UPDATE")
}

const (
	ormLogPrefix = "orm"

	pqUniqueViolation = "23505"
	pqInvalidText     = "22P02"
)

// translateError maps driver errors into the schema error taxonomy
func translateError(err error, kind, id string) error {
	if err == nil {
		return nil
	}

	if gorm.IsRecordNotFoundError(err) {
		return schema.NewNotFoundError(kind, id)
	}

	if pqErr, ok := err.(*pq.Error); ok {
		switch pqErr.Code {
		case pqUniqueViolation:
			return schema.NewConflictError("%s %s already exists", kind, id)
		case pqInvalidText:
			// malformed uuids never match a row
			return schema.NewNotFoundError(kind, id)
		}
	}

	return fmt.Errorf("%s %s: %w", kind, id, err)
}
