package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	reasoncodes "ecertify/pkg/reason_codes"
	"ecertify/pkg/utilities"

	"gorm.io/gorm"
)

// TxRunner executes store work with bounded retry on transient failures.
type TxRunner struct {
	db      *gorm.DB
	backoff utilities.Backoff
}

func NewTxRunner(db *gorm.DB, maxAttempts int, initialBackoff time.Duration) *TxRunner {
	return &TxRunner{
		db: db,
		backoff: utilities.Backoff{
			Attempts: maxAttempts,
			Initial:  initialBackoff,
			Max:      initialBackoff * 16,
		},
	}
}

func NewTxRunnerFromConfig(db *gorm.DB, conf Config) *TxRunner {
	return NewTxRunner(db, conf.MaxRetries, time.Duration(conf.RetryBackoffMs)*time.Millisecond)
}

func (r *TxRunner) DB() *gorm.DB {
	return r.db
}

// InTx runs fn inside one transaction. The transaction is rolled back when fn returns an
// error or panics, and the whole transaction is retried on transient errors.
func (r *TxRunner) InTx(ctx context.Context, op string, fn func(tx *gorm.DB) error) error {
	return r.run(ctx, op, func() error {
		return r.db.WithContext(ctx).Transaction(fn)
	})
}

// Do runs fn outside an explicit transaction, with the same retry policy as InTx.
func (r *TxRunner) Do(ctx context.Context, op string, fn func(db *gorm.DB) error) error {
	return r.run(ctx, op, func() error {
		return fn(r.db.WithContext(ctx))
	})
}

func (r *TxRunner) run(ctx context.Context, op string, fn func() error) error {
	attempts, err := utilities.Retry(ctx, r.backoff, IsTransient, fn)
	if err == nil {
		return nil
	}

	var coded *reasoncodes.Error
	if errors.As(err, &coded) {
		return err
	}
	if IsTransient(err) {
		return reasoncodes.Wrap(reasoncodes.ErrTransientStore, err,
			"%s: store unavailable after %d attempts", op, attempts)
	}
	return fmt.Errorf("%s: %w", op, err)
}
