// Package notify provides the catalog's announcement boundary. The Notifier
// interface is the abstraction; the decorators extend behavior without
// modifying the wrapped value, which is the open/closed principle earning
// its keep outside a teaching fixture.
package notify

import (
	"context"
	"errors"
	"time"

	"github.com/avast/retry-go/v4"

	"github.com/goprinciples/solid/pkg/logger"
)

// Notifier announces catalog events.
type Notifier interface {
	Notify(ctx context.Context, message string) error
}

// Func adapts a function to the Notifier interface.
type Func func(ctx context.Context, message string) error

func (f Func) Notify(ctx context.Context, message string) error { return f(ctx, message) }

// LogNotifier announces events to the log.
type LogNotifier struct {
	lggr logger.Logger
}

// NewLogNotifier creates a Notifier writing to lggr.
func NewLogNotifier(lggr logger.Logger) *LogNotifier {
	return &LogNotifier{lggr: lggr}
}

// Notify logs the message at info level.
func (n *LogNotifier) Notify(_ context.Context, message string) error {
	n.lggr.Infow("catalog event", "message", message)

	return nil
}

// RetryPolicy configures the retry decorator.
type RetryPolicy struct {
	Attempts uint
	Delay    time.Duration
}

// DefaultRetryPolicy retries three times with a short delay.
var DefaultRetryPolicy = RetryPolicy{Attempts: 3, Delay: 100 * time.Millisecond}

// WithRetry wraps a Notifier so transient failures are retried. The wrapped
// value is untouched; the decorator extends it from the outside.
func WithRetry(n Notifier, policy RetryPolicy) Notifier {
	return Func(func(ctx context.Context, message string) error {
		return retry.Do(
			func() error { return n.Notify(ctx, message) },
			retry.Context(ctx),
			retry.Attempts(policy.Attempts),
			retry.Delay(policy.Delay),
			retry.LastErrorOnly(true),
		)
	})
}

// Multi fans a notification out to every notifier, collecting all failures.
func Multi(notifiers ...Notifier) Notifier {
	return Func(func(ctx context.Context, message string) error {
		var errs []error
		for _, n := range notifiers {
			if err := n.Notify(ctx, message); err != nil {
				errs = append(errs, err)
			}
		}

		return errors.Join(errs...)
	})
}

// Nop discards every notification.
func Nop() Notifier {
	return Func(func(context.Context, string) error { return nil })
}
