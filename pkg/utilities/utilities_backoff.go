package utilities

import (
	"context"
	"time"
)

type Backoff struct {
	Attempts int
	Initial  time.Duration
	Max      time.Duration
}

// Retry calls fn until it succeeds, retryable reports false, the attempts run out or ctx ends.
// The wait doubles after every failed attempt. The last error is returned together with the
// number of attempts made.
func Retry(ctx context.Context, b Backoff, retryable func(error) bool, fn func() error) (int, error) {
	attempts := Ternary(b.Attempts < 1, 1, b.Attempts)
	wait := b.Initial

	var err error
	for i := 1; i <= attempts; i++ {
		if err = fn(); err == nil {
			return i, nil
		}
		if i == attempts || (retryable != nil && !retryable(err)) {
			return i, err
		}

		select {
		case <-ctx.Done():
			return i, err
		case <-time.After(wait):
		}

		wait *= 2
		if b.Max > 0 && wait > b.Max {
			wait = b.Max
		}
	}
	return attempts, err
}
