package predictor

import (
	"context"
	"errors"
	"testing"

	"github.com/abhisek/stresswatch/internal/features"
)

func TestMockPredictor_CannedResponsesFIFO(t *testing.T) {
	mock := NewMockPredictor(
		MockResponse{Prediction: &Prediction{Class: ClassLow, Confidence: 0.6}},
		MockResponse{Err: errors.New("boom")},
	)

	pred, err := mock.Predict(context.Background(), features.StudentFeatures{})
	if err != nil || pred.Class != ClassLow {
		t.Fatalf("first call: expected canned Low, got %v / %v", pred, err)
	}

	if _, err := mock.Predict(context.Background(), features.StudentFeatures{}); err == nil {
		t.Fatal("second call: expected canned error")
	}
}

func TestMockPredictor_HeuristicFallback(t *testing.T) {
	mock := NewMockPredictor()

	healthy := features.Normalize(features.Raw{AttendanceRate: 95, WeeklyWorkload: 8})
	pred, err := mock.Predict(context.Background(), healthy)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pred.Class != ClassLow {
		t.Errorf("healthy student: expected Low, got %s", pred.Class)
	}

	struggling := features.Normalize(features.Raw{
		AttendanceRate:    55,
		LateSubmissions:   4,
		MissedSubmissions: 2,
		WeeklyWorkload:    20,
	})
	pred, err = mock.Predict(context.Background(), struggling)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pred.Class != ClassHigh {
		t.Errorf("struggling student: expected High, got %s", pred.Class)
	}
	if pred.Confidence <= 0 || pred.Confidence > 1 {
		t.Errorf("confidence out of range: %v", pred.Confidence)
	}
}

func TestMockPredictor_RecordsCalls(t *testing.T) {
	mock := NewMockPredictor()
	f := features.Normalize(features.Raw{AttendanceRate: 70, WeeklyWorkload: 10})

	for i := 0; i < 3; i++ {
		if _, err := mock.Predict(context.Background(), f); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if mock.CallCount() != 3 {
		t.Fatalf("expected 3 recorded calls, got %d", mock.CallCount())
	}
	if mock.Calls[0].AttendanceRate != 70 {
		t.Errorf("recorded features wrong: %+v", mock.Calls[0])
	}
}
