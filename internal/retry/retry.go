// Package retry implements bounded exponential backoff with pluggable
// failure classification. The connection paths share this single loop
// rather than duplicating backoff logic per call site.
package retry

import (
	"context"
	"time"

	"github.com/spatialy/huly-mcp-sub004/internal/clock"
)

// Decision tells Do whether a failed attempt is worth repeating.
type Decision int

const (
	// Stop surfaces the error immediately. Used for failures that cannot
	// succeed on a later attempt, such as rejected credentials.
	Stop Decision = iota
	// Retry schedules another attempt after the current backoff delay.
	Retry
)

// Policy bounds the retry loop. MaxAttempts counts the initial attempt.
type Policy struct {
	MaxAttempts int
	BaseDelay   time.Duration
}

// DefaultPolicy matches the reference behavior: one initial attempt plus two
// retries, starting at 100ms and doubling.
var DefaultPolicy = Policy{MaxAttempts: 3, BaseDelay: 100 * time.Millisecond}

func (p Policy) normalized() Policy {
	if p.MaxAttempts < 1 {
		p.MaxAttempts = 1
	}
	if p.BaseDelay <= 0 {
		p.BaseDelay = DefaultPolicy.BaseDelay
	}
	return p
}

// Do runs attempt up to policy.MaxAttempts times. After each failure the
// error is classified; Stop surfaces it unretried, Retry waits for the
// current delay (base, 2x base, 4x base, ...) before the next attempt.
// Attempts are strictly sequential. When every attempt fails the last error
// is returned. A nil classify treats every error as retryable; a nil clk
// uses real time. Context cancellation aborts the wait and returns ctx.Err().
func Do[T any](ctx context.Context, clk clock.Clock, policy Policy, classify func(error) Decision, attempt func(context.Context) (T, error)) (T, error) {
	var zero T
	policy = policy.normalized()
	if clk == nil {
		clk = clock.Real{}
	}

	delay := policy.BaseDelay
	for n := 1; ; n++ {
		v, err := attempt(ctx)
		if err == nil {
			return v, nil
		}
		if classify != nil && classify(err) == Stop {
			return zero, err
		}
		if n >= policy.MaxAttempts {
			return zero, err
		}
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-clk.After(delay):
		}
		delay *= 2
	}
}
