package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/stresswatch/internal/collapse"
	"github.com/abhisek/stresswatch/internal/features"
	"github.com/abhisek/stresswatch/internal/fusion"
	"github.com/abhisek/stresswatch/internal/predictor"
)

func strugglingRaw() features.Raw {
	prev := 90.0
	return features.Raw{
		AttendanceRate:         55,
		LateSubmissions:        4,
		MissedSubmissions:      2,
		WeeklyWorkload:         18,
		PreviousAttendanceRate: &prev,
	}
}

func healthyRaw() features.Raw {
	return features.Raw{AttendanceRate: 95, WeeklyWorkload: 8}
}

func TestAssess_AttachesMLPrediction(t *testing.T) {
	mock := predictor.NewMockPredictor(predictor.MockResponse{
		Prediction: &predictor.Prediction{Class: predictor.ClassHigh, Confidence: 0.9},
	})
	eng := New(Options{Predictor: mock})

	a := eng.Assess(context.Background(), 1001, strugglingRaw())
	if a.Fusion.ML == nil {
		t.Fatal("expected ML prediction attached")
	}
	if a.Fusion.ML.Class != predictor.ClassHigh {
		t.Errorf("expected High class, got %s", a.Fusion.ML.Class)
	}
	if len(a.Recommendations) == 0 {
		t.Error("expected recommendations for triggered rules")
	}
}

func TestAssess_PredictorErrorFallsBackToRules(t *testing.T) {
	mock := predictor.NewMockPredictor(predictor.MockResponse{
		Err: errors.New("model down"),
	})
	eng := New(Options{Predictor: mock})

	a := eng.Assess(context.Background(), 1001, strugglingRaw())
	if a.Fusion.ML != nil {
		t.Fatal("expected rules-only fallback, got ML prediction")
	}
	if a.Fusion.FinalScore != a.Fusion.Rules.RuleScore {
		t.Errorf("fallback score must equal rule score: %d vs %d",
			a.Fusion.FinalScore, a.Fusion.Rules.RuleScore)
	}
	if a.Fusion.Rules.RuleScore == 0 {
		t.Error("struggling student must trigger rules")
	}
}

func TestAssess_NoPredictorConfigured(t *testing.T) {
	eng := New(Options{})

	a := eng.Assess(context.Background(), 1001, healthyRaw())
	if a.Fusion.ML != nil {
		t.Fatal("no predictor configured, ML must be nil")
	}
	if a.Fusion.FinalScore != 0 {
		t.Errorf("healthy student: expected score 0, got %d", a.Fusion.FinalScore)
	}
	if a.Collapse.Level != collapse.LevelLow {
		t.Errorf("no psych data: expected Low collapse, got %s", a.Collapse.Level)
	}
}

func TestAssessBatch_PreservesOrder(t *testing.T) {
	eng := New(Options{Concurrency: 2})

	recs := []Record{
		{StudentID: 1000, Raw: healthyRaw()},
		{StudentID: 1001, Raw: strugglingRaw()},
		{StudentID: 1002, Raw: healthyRaw()},
	}
	out, err := eng.AssessBatch(context.Background(), recs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 assessments, got %d", len(out))
	}
	for i, rec := range recs {
		if out[i].StudentID != rec.StudentID {
			t.Errorf("index %d: expected student %d, got %d", i, rec.StudentID, out[i].StudentID)
		}
	}
	if out[1].Fusion.FinalLevel == fusion.LevelLow {
		t.Error("struggling student must not be Low")
	}
}

func TestAssessBatch_CancelledContext(t *testing.T) {
	eng := New(Options{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	recs := make([]Record, 100)
	for i := range recs {
		recs[i] = Record{StudentID: 1000 + i, Raw: healthyRaw()}
	}
	if _, err := eng.AssessBatch(ctx, recs); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestSummarize_PartitionsLevels(t *testing.T) {
	mk := func(score int, conf float64, withML bool) *Assessment {
		a := &Assessment{}
		a.Fusion.FinalScore = score
		a.Fusion.FinalLevel = fusion.LevelFor(score)
		if withML {
			a.Fusion.ML = &predictor.Prediction{Confidence: conf}
		}
		return a
	}

	stats := Summarize([]*Assessment{
		mk(10, 0.9, true),
		mk(45, 0.7, true),
		mk(80, 0, false),
	})

	if stats.TotalStudents != 3 {
		t.Errorf("total: expected 3, got %d", stats.TotalStudents)
	}
	if stats.LowRisk != 1 || stats.ModerateRisk != 1 || stats.HighRisk != 1 {
		t.Errorf("partition wrong: %+v", stats)
	}
	if stats.AverageRiskScore != 45.0 {
		t.Errorf("average risk: expected 45.0, got %v", stats.AverageRiskScore)
	}
	// Confidence averages only over ML-backed assessments.
	if stats.AverageConfidence != 0.8 {
		t.Errorf("average confidence: expected 0.8, got %v", stats.AverageConfidence)
	}
}

func TestSummarize_Empty(t *testing.T) {
	stats := Summarize(nil)
	if stats.TotalStudents != 0 || stats.AverageRiskScore != 0 {
		t.Errorf("empty input must zero out: %+v", stats)
	}
}

type blockedPredictor struct{}

func (blockedPredictor) Predict(ctx context.Context, _ features.StudentFeatures) (*predictor.Prediction, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (blockedPredictor) ModelID() string { return "blocked" }

func TestAssess_PredictTimeoutBoundsClassifier(t *testing.T) {
	eng := New(Options{Predictor: blockedPredictor{}, PredictTimeout: 20 * time.Millisecond})

	start := time.Now()
	a := eng.Assess(context.Background(), 1001, strugglingRaw())
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Fatalf("assessment took %v, configured timeout not applied", elapsed)
	}
	if a.Fusion.ML != nil {
		t.Fatal("expected rules-only result after classifier timeout")
	}
	if a.Fusion.FinalScore != a.Fusion.Rules.RuleScore {
		t.Errorf("timed-out score must equal rule score: %d vs %d",
			a.Fusion.FinalScore, a.Fusion.Rules.RuleScore)
	}
}
