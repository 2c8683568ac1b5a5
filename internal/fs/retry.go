package fs

import (
	"context"
	"fmt"
	"time"
)

const maxAttempts = 5

// retryBase is the first backoff delay; it doubles on every attempt.
var retryBase = 100 * time.Millisecond

// retry calls fn until it succeeds, fails with a non-transient error, or
// maxAttempts is reached. The backoff wait honours ctx.
func retry(ctx context.Context, op string, fn func() error) error {
	delay := retryBase

	var err error
	for attempt := 1; ; attempt++ {
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}

		if err = fn(); err == nil {
			return nil
		}
		if classify(err) != errTransient {
			return fmt.Errorf("%s: %w", op, err)
		}
		if attempt == maxAttempts {
			return fmt.Errorf("%s: gave up after %d attempts: %w", op, attempt, err)
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		delay *= 2
	}
}
