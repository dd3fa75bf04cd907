package predictor

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/stresswatch/internal/features"
)

// stubGenerator returns canned JSON and records the request.
type stubGenerator struct {
	content json.RawMessage
	err     error
	lastReq genRequest
}

func (s *stubGenerator) generate(_ context.Context, req genRequest) (*genResponse, error) {
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return &genResponse{Content: s.content, Model: "stub"}, nil
}

func (s *stubGenerator) modelID() string { return "stub" }

func studentFeatures() features.StudentFeatures {
	return features.Normalize(features.Raw{
		AttendanceRate:  68,
		LateSubmissions: 3,
		WeeklyWorkload:  12,
	})
}

func TestClassifier_ParsesValidResponse(t *testing.T) {
	gen := &stubGenerator{content: json.RawMessage(`{
		"predicted_class": "High",
		"confidence": 0.82,
		"attributions": [
			{"feature": "late_submissions", "impact": 0.1},
			{"feature": "attendance_rate", "impact": 0.35}
		]
	}`)}
	c := newClassifier(gen, defaultClassifierConfig())

	pred, err := c.Predict(context.Background(), studentFeatures())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pred.Class != ClassHigh {
		t.Errorf("expected High, got %s", pred.Class)
	}
	if pred.Confidence != 0.82 {
		t.Errorf("expected confidence 0.82, got %v", pred.Confidence)
	}
	// Attributions are re-sorted by absolute impact.
	if pred.Attributions[0].Feature != "attendance_rate" {
		t.Errorf("expected attendance_rate first, got %v", pred.Attributions)
	}
}

func TestClassifier_UnknownClassIsInvalidResponse(t *testing.T) {
	gen := &stubGenerator{content: json.RawMessage(`{"predicted_class": "Critical", "confidence": 0.9}`)}
	c := newClassifier(gen, defaultClassifierConfig())

	_, err := c.Predict(context.Background(), studentFeatures())
	var invResp *ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestClassifier_MalformedJSONIsInvalidResponse(t *testing.T) {
	gen := &stubGenerator{content: json.RawMessage(`not json`)}
	c := newClassifier(gen, defaultClassifierConfig())

	_, err := c.Predict(context.Background(), studentFeatures())
	var invResp *ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestClassifier_ConfidenceClamped(t *testing.T) {
	gen := &stubGenerator{content: json.RawMessage(`{"predicted_class": "Low", "confidence": 1.7}`)}
	c := newClassifier(gen, defaultClassifierConfig())

	pred, err := c.Predict(context.Background(), studentFeatures())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pred.Confidence != 1 {
		t.Errorf("expected confidence clamped to 1, got %v", pred.Confidence)
	}
}

func TestClassifier_GeneratorErrorPassesThrough(t *testing.T) {
	wantErr := &ErrUnavailable{Err: errors.New("down")}
	gen := &stubGenerator{err: wantErr}
	c := newClassifier(gen, defaultClassifierConfig())

	_, err := c.Predict(context.Background(), studentFeatures())
	var unavail *ErrUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestBuildFeatureMessage_IncludesBehavioralFeatures(t *testing.T) {
	msg, err := buildFeatureMessage(studentFeatures())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"attendance_rate: 68.0", "late_submissions: 3", "weekly_workload: 12"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q:\n%s", want, msg)
		}
	}
	if !strings.Contains(msg, "No self-reported indicators") {
		t.Errorf("message must state psych data is absent:\n%s", msg)
	}
}

func TestBuildFeatureMessage_IncludesPsychWhenReported(t *testing.T) {
	anxiety := 14
	f := features.Normalize(features.Raw{
		AttendanceRate: 80,
		WeeklyWorkload: 10,
		Psych:          &features.RawPsych{AnxietyLevel: &anxiety},
	})

	msg, err := buildFeatureMessage(f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(msg, "anxiety_level: 14") {
		t.Errorf("message missing anxiety indicator:\n%s", msg)
	}
}

func TestClassifier_SendsSchemaAndPrompts(t *testing.T) {
	gen := &stubGenerator{content: json.RawMessage(`{"predicted_class": "Low", "confidence": 0.5}`)}
	c := newClassifier(gen, defaultClassifierConfig())

	if _, err := c.Predict(context.Background(), studentFeatures()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gen.lastReq.Schema == nil {
		t.Error("request must carry the prediction schema")
	}
	if gen.lastReq.System == "" || gen.lastReq.User == "" {
		t.Error("request must carry system and user prompts")
	}
}
