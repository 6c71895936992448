// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared by the registry transport.
package httputil

import (
	"context"
	"math"
	"net/http"
	"time"
)

// RetryBaseDelay controls the base duration for exponential backoff after a
// connection-level failure. Tests override this to avoid real sleeps.
var RetryBaseDelay = 500 * time.Millisecond

const (
	// maxAttempts bounds the number of tries for one logical request.
	maxAttempts = 3

	// retryBudget bounds the cumulative wall-clock time spent across all
	// attempts and backoff waits for one logical request.
	retryBudget = 10 * time.Second
)

// DoWithRetry executes an HTTP request, retrying connection-level failures
// with exponential backoff: at most three attempts within a 10 second
// cumulative budget. HTTP error statuses are returned unchanged; the
// transport classifies those, and they are never retried here. If the
// context is cancelled during a backoff wait the function returns ctx.Err().
func DoWithRetry(ctx context.Context, client *http.Client, req *http.Request) (*http.Response, error) {
	deadline := time.Now().Add(retryBudget)
	var lastErr error

	for attempt := 0; attempt < maxAttempts; attempt++ {
		resp, err := client.Do(req.Clone(ctx))
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		backoff := time.Duration(math.Pow(2, float64(attempt))) * RetryBaseDelay
		if attempt == maxAttempts-1 || time.Now().Add(backoff).After(deadline) {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}
	return nil, lastErr
}
