package gemini

import (
	"context"
	"errors"
	"math/rand"
	"net"
	"strings"
	"time"

	"google.golang.org/api/googleapi"
)

const (
	retryMaxAttempts = 3
	retryBaseDelay   = 300 * time.Millisecond
)

// withRetry runs fn up to retryMaxAttempts times, backing off with jitter
// between attempts. Only transient provider failures are retried.
func withRetry(ctx context.Context, fn func() (string, error)) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= retryMaxAttempts; attempt++ {
		text, err := fn()
		if err == nil {
			return text, nil
		}
		lastErr = err
		if !shouldRetry(err) || attempt == retryMaxAttempts {
			return "", err
		}

		delay := retryBaseDelay * time.Duration(1<<(attempt-1))
		delay += time.Duration(rand.Int63n(int64(retryBaseDelay)))
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return "", lastErr
}

func shouldRetry(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code >= 500 || apiErr.Code == 429
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "broken pipe") ||
		strings.Contains(msg, "tls handshake timeout") ||
		strings.Contains(msg, "unavailable") {
		return true
	}

	return false
}
