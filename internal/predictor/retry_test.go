package predictor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/stresswatch/internal/features"
)

func retryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: 1 * time.Millisecond,
		MaxWait:     10 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func highPrediction() *Prediction {
	return &Prediction{Class: ClassHigh, Confidence: 0.9}
}

func TestRetry_SucceedsOnFirstAttempt(t *testing.T) {
	mock := NewMockPredictor(MockResponse{Prediction: highPrediction()})
	p := WithRetry(mock, retryConfig())

	pred, err := p.Predict(context.Background(), features.StudentFeatures{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pred.Class != ClassHigh {
		t.Fatalf("unexpected class: %s", pred.Class)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
}

func TestRetry_TransientThenSuccess(t *testing.T) {
	mock := NewMockPredictor(
		MockResponse{Err: &ErrUnavailable{Err: errors.New("down")}},
		MockResponse{Prediction: highPrediction()},
	)
	p := WithRetry(mock, retryConfig())

	pred, err := p.Predict(context.Background(), features.StudentFeatures{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pred.Class != ClassHigh {
		t.Fatalf("unexpected class: %s", pred.Class)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 calls, got %d", mock.CallCount())
	}
}

func TestRetry_ExhaustsAttempts(t *testing.T) {
	mock := NewMockPredictor(
		MockResponse{Err: &ErrUnavailable{Err: errors.New("down")}},
		MockResponse{Err: &ErrUnavailable{Err: errors.New("down")}},
		MockResponse{Err: &ErrUnavailable{Err: errors.New("down")}},
	)
	p := WithRetry(mock, retryConfig())

	_, err := p.Predict(context.Background(), features.StudentFeatures{})
	if err == nil {
		t.Fatal("expected error after exhausting attempts")
	}
	var unavail *ErrUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if mock.CallCount() != 3 {
		t.Fatalf("expected 3 calls, got %d", mock.CallCount())
	}
}

func TestRetry_ContextCancelNotRetried(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	mock := NewMockPredictor(MockResponse{Err: ctx.Err()})
	p := WithRetry(mock, retryConfig())

	_, err := p.Predict(ctx, features.StudentFeatures{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
}

func TestRetry_InvalidResponseGetsOneRetry(t *testing.T) {
	mock := NewMockPredictor(
		MockResponse{Err: &ErrInvalidResponse{Err: errors.New("bad json")}},
		MockResponse{Err: &ErrInvalidResponse{Err: errors.New("bad json")}},
		MockResponse{Prediction: highPrediction()},
	)
	p := WithRetry(mock, retryConfig())

	_, err := p.Predict(context.Background(), features.StudentFeatures{})
	if err == nil {
		t.Fatal("expected second invalid response to fail")
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 calls (one retry), got %d", mock.CallCount())
	}
}

func TestRetry_RespectsRateLimitRetryAfter(t *testing.T) {
	mock := NewMockPredictor(
		MockResponse{Err: &ErrRateLimit{RetryAfter: 2 * time.Millisecond, Err: errors.New("429")}},
		MockResponse{Prediction: highPrediction()},
	)
	p := WithRetry(mock, retryConfig())

	start := time.Now()
	_, err := p.Predict(context.Background(), features.StudentFeatures{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 2*time.Millisecond {
		t.Fatalf("expected to wait at least RetryAfter, waited %s", elapsed)
	}
}
