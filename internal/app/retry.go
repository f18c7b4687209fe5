package app

import (
	"context"
	"time"
)

// Default open-retry settings for files that may still be mid-write.
const (
	DefaultOpenAttempts = 10
	DefaultOpenInterval = 500 * time.Millisecond
)

// RetryPolicy bounds how many times an operation is attempted and how long
// to wait between attempts. It is the only retry in the booth: a file can
// appear in the directory before its writer has finished.
type RetryPolicy struct {
	MaxAttempts int
	Interval    time.Duration

	// Sleep waits between attempts. Nil means a context-aware timer.
	Sleep func(ctx context.Context, d time.Duration) error
}

// DefaultRetryPolicy returns 10 attempts, 500ms apart.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: DefaultOpenAttempts,
		Interval:    DefaultOpenInterval,
	}
}

// Do calls fn until it returns nil or MaxAttempts calls have failed.
// It returns the number of attempts made and the last error from fn,
// or ctx.Err() if the context ends while waiting.
func (p RetryPolicy) Do(ctx context.Context, fn func(attempt int) error) (int, error) {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	sleep := p.Sleep
	if sleep == nil {
		sleep = sleepContext
	}

	var err error
	for i := 1; i <= attempts; i++ {
		if err = fn(i); err == nil {
			return i, nil
		}
		if i == attempts {
			break
		}
		if serr := sleep(ctx, p.Interval); serr != nil {
			return i, serr
		}
	}
	return attempts, err
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
