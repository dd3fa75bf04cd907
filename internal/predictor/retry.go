package predictor

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"

	"github.com/abhisek/stresswatch/internal/features"
)

// retryPredictor is a decorator that retries transient errors with
// exponential backoff and jitter.
type retryPredictor struct {
	inner  Predictor
	config RetryConfig
}

// WithRetry wraps a Predictor with retry logic.
func WithRetry(p Predictor, cfg RetryConfig) Predictor {
	return &retryPredictor{inner: p, config: cfg}
}

func (r *retryPredictor) Predict(ctx context.Context, f features.StudentFeatures) (*Prediction, error) {
	var lastErr error
	invalidRetried := false

	for attempt := range r.config.MaxAttempts {
		pred, err := r.inner.Predict(ctx, f)
		if err == nil {
			return pred, nil
		}
		lastErr = err

		if !r.shouldRetry(err, &invalidRetried) {
			return nil, err
		}

		// Last attempt — don't sleep, just return the error.
		if attempt == r.config.MaxAttempts-1 {
			break
		}

		wait := r.backoff(attempt, err)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}

	return nil, lastErr
}

func (r *retryPredictor) ModelID() string {
	return r.inner.ModelID()
}

// shouldRetry determines if an error is retryable.
func (r *retryPredictor) shouldRetry(err error, invalidRetried *bool) bool {
	// Context errors are never retried.
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	// Invalid response gets one retry.
	var invResp *ErrInvalidResponse
	if errors.As(err, &invResp) {
		if *invalidRetried {
			return false
		}
		*invalidRetried = true
		return true
	}

	// Rate limit, unavailable, and other errors (network, etc.) are
	// treated as transient.
	return true
}

// backoff computes the wait duration for the given attempt.
func (r *retryPredictor) backoff(attempt int, err error) time.Duration {
	// Respect RetryAfter for rate limits.
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	wait := float64(r.config.InitialWait) * math.Pow(r.config.Multiplier, float64(attempt))
	if wait > float64(r.config.MaxWait) {
		wait = float64(r.config.MaxWait)
	}

	// Add ±20% jitter.
	jitter := wait * 0.2 * (2*rand.Float64() - 1)
	wait += jitter

	if wait < 0 {
		wait = 0
	}
	return time.Duration(wait)
}
