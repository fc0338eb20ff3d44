package events

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"net"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
)

// isRetriable reports whether a failed write may succeed on a later attempt.
func isRetriable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var writeErrs kafka.WriteErrors
	if errors.As(err, &writeErrs) {
		for _, e := range writeErrs {
			if e != nil && !isRetriable(e) {
				return false
			}
		}
		return true
	}

	var kafkaErr kafka.Error
	if errors.As(err, &kafkaErr) {
		return kafkaErr.Temporary()
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return netErr.Timeout()
	}
	return false
}

func retryWithBackoff(ctx context.Context, maxRetries int, baseDelay time.Duration, fn func() error) error {
	if maxRetries <= 0 {
		return fmt.Errorf("maxRetries must be > 0, got %d", maxRetries)
	}
	var lastErr error

	for i := range maxRetries {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err

		if !isRetriable(err) {
			return err
		}

		if i < maxRetries-1 {
			jitter := time.Duration(rand.Int63n(int64(baseDelay))) //nolint:gosec // jitter doesn't need crypto rand
			delay := time.Duration(math.Pow(2, float64(i)))*baseDelay + jitter
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}
	return fmt.Errorf("after %d attempts: %w", maxRetries, lastErr)
}

type circuitState int

const (
	stateClosed circuitState = iota
	stateOpen
	stateHalfOpen
)

var ErrCircuitOpen = errors.New("event broker circuit is open")

// isBrokerFailure reports whether err says the broker is unhealthy. Context
// errors belong to the caller, and a non-temporary error code means the broker
// answered and rejected the message.
func isBrokerFailure(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var writeErrs kafka.WriteErrors
	if errors.As(err, &writeErrs) {
		for _, e := range writeErrs {
			if e != nil && isBrokerFailure(e) {
				return true
			}
		}
		return false
	}

	var kafkaErr kafka.Error
	if errors.As(err, &kafkaErr) {
		return kafkaErr.Temporary()
	}
	return true
}

// circuitBreaker stops publishing for resetTimeout once failureThreshold
// consecutive broker failures were seen, so requests do not wait on a
// broker that is down.
type circuitBreaker struct {
	mu               sync.Mutex
	state            circuitState
	failureCount     int
	failureThreshold int
	resetTimeout     time.Duration
	lastFailureTime  time.Time
	now              func() time.Time
}

func newCircuitBreaker(failureThreshold int, resetTimeout time.Duration) *circuitBreaker {
	return &circuitBreaker{
		state:            stateClosed,
		failureThreshold: failureThreshold,
		resetTimeout:     resetTimeout,
		now:              time.Now,
	}
}

func (cb *circuitBreaker) execute(fn func() error) error {
	cb.mu.Lock()
	if cb.state == stateOpen {
		if cb.now().Sub(cb.lastFailureTime) > cb.resetTimeout {
			cb.state = stateHalfOpen
		} else {
			cb.mu.Unlock()
			return ErrCircuitOpen
		}
	}
	cb.mu.Unlock()

	err := fn()

	cb.mu.Lock()
	defer cb.mu.Unlock()

	if err != nil && isBrokerFailure(err) {
		cb.failureCount++
		cb.lastFailureTime = cb.now()
		if cb.state == stateHalfOpen || cb.failureCount >= cb.failureThreshold {
			cb.state = stateOpen
		}
		return err
	}

	if err == nil {
		cb.failureCount = 0
		cb.state = stateClosed
	}
	return err
}
