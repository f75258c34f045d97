// Package retry re-runs operations that fail transiently, such as chart
// repository lookups and archive downloads.
//
// Attempts back off exponentially. Errors wrapped with [Permanent] stop the
// loop immediately.
package retry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/imamik/c8values/internal/logging"
)

// Policy controls how often and how patiently [Do] retries.
type Policy struct {
	Attempts int
	Delay    time.Duration
	MaxDelay time.Duration
	Factor   float64
}

// Option adjusts a Policy.
type Option func(*Policy)

// DefaultPolicy is used when no options are given.
func DefaultPolicy() Policy {
	return Policy{
		Attempts: 3,
		Delay:    500 * time.Millisecond,
		MaxDelay: 5 * time.Second,
		Factor:   2,
	}
}

// WithAttempts sets the total number of attempts, including the first.
func WithAttempts(n int) Option {
	return func(p *Policy) {
		if n > 0 {
			p.Attempts = n
		}
	}
}

// WithDelay sets the wait before the second attempt.
func WithDelay(d time.Duration) Option {
	return func(p *Policy) {
		p.Delay = d
	}
}

// WithMaxDelay caps the wait between attempts.
func WithMaxDelay(d time.Duration) Option {
	return func(p *Policy) {
		p.MaxDelay = d
	}
}

type permanentError struct {
	err error
}

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

// Permanent marks err as not worth retrying. A nil err stays nil.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

// IsPermanent reports whether err, or anything it wraps, was marked with
// [Permanent].
func IsPermanent(err error) bool {
	var p *permanentError
	return errors.As(err, &p)
}

// Do runs op until it succeeds, returns a permanent error, the attempts run
// out or ctx is done. The last error is wrapped in the returned error.
func Do(ctx context.Context, op func(context.Context) error, opts ...Option) error {
	policy := DefaultPolicy()
	for _, opt := range opts {
		opt(&policy)
	}
	log := logging.FromContext(ctx).WithName("retry")

	delay := policy.Delay
	var lastErr error
	for attempt := 1; attempt <= policy.Attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			if lastErr == nil {
				return err
			}
			return fmt.Errorf("canceled after %d attempts: %w", attempt-1, errors.Join(err, lastErr))
		}

		lastErr = op(ctx)
		if lastErr == nil {
			return nil
		}
		if IsPermanent(lastErr) {
			return lastErr
		}
		if attempt == policy.Attempts {
			break
		}

		log.V(1).Info("attempt failed", "attempt", attempt, "wait", delay.String(), "error", lastErr.Error())
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return fmt.Errorf("canceled after %d attempts: %w", attempt, errors.Join(ctx.Err(), lastErr))
		case <-timer.C:
		}

		delay = time.Duration(float64(delay) * policy.Factor)
		if policy.MaxDelay > 0 && delay > policy.MaxDelay {
			delay = policy.MaxDelay
		}
	}

	return fmt.Errorf("giving up after %d attempts: %w", policy.Attempts, lastErr)
}
