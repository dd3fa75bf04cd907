package predictor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"text/template"

	"github.com/abhisek/stresswatch/internal/features"
)

// classifierConfig bounds a single classification request.
type classifierConfig struct {
	MaxTokens   int
	Temperature float64
}

func defaultClassifierConfig() classifierConfig {
	return classifierConfig{
		MaxTokens:   512,
		Temperature: 0,
	}
}

// classifier implements Predictor on top of a structured-output generator.
type classifier struct {
	gen generator
	cfg classifierConfig
}

func newClassifier(gen generator, cfg classifierConfig) *classifier {
	return &classifier{gen: gen, cfg: cfg}
}

// predictionOutput is the raw model response.
type predictionOutput struct {
	PredictedClass string  `json:"predicted_class"`
	Confidence     float64 `json:"confidence"`
	Attributions   []struct {
		Feature string  `json:"feature"`
		Impact  float64 `json:"impact"`
	} `json:"attributions"`
}

func (c *classifier) Predict(ctx context.Context, f features.StudentFeatures) (*Prediction, error) {
	userMsg, err := buildFeatureMessage(f)
	if err != nil {
		return nil, fmt.Errorf("build feature prompt: %w", err)
	}

	resp, err := c.gen.generate(ctx, genRequest{
		System:      classifySystemPrompt,
		User:        userMsg,
		Schema:      predictionSchema,
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
	})
	if err != nil {
		return nil, err
	}

	var raw predictionOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, &ErrInvalidResponse{Content: resp.Content, Err: err}
	}

	class, err := ParseClass(raw.PredictedClass)
	if err != nil {
		return nil, &ErrInvalidResponse{Content: resp.Content, Err: err}
	}

	pred := &Prediction{
		Class:      class,
		Confidence: clamp01(raw.Confidence),
	}
	for _, a := range raw.Attributions {
		pred.Attributions = append(pred.Attributions, Attribution(a))
	}

	// Attribution order is advisory output; enforce the documented
	// most-influential-first ordering regardless of what came back.
	sort.SliceStable(pred.Attributions, func(i, j int) bool {
		return math.Abs(pred.Attributions[i].Impact) > math.Abs(pred.Attributions[j].Impact)
	})

	return pred, nil
}

func (c *classifier) ModelID() string {
	return c.gen.modelID()
}

const classifySystemPrompt = `You are a student wellbeing risk classifier for an academic early-warning system. Given one student's behavioral and self-reported features, classify their overall stress risk.

Instructions:
- predicted_class must be exactly one of: Low, Moderate, High.
- confidence reflects how clearly the features support the class (0.0–1.0).
- attributions lists each feature's signed contribution: positive impact pushes toward higher risk, negative toward lower. Use the feature names exactly as given. List the most influential features first and include at most 5.
- Base your answer only on the supplied features. Do not invent data.`

var featureTemplate = template.Must(template.New("features").Parse(`Behavioral features:
- attendance_rate: {{printf "%.1f" .AttendanceRate}} (percent, 0-100)
- late_submissions: {{.LateSubmissions}}
- missed_submissions: {{.MissedSubmissions}}
- weekly_workload: {{.WeeklyWorkload}} (tasks)
- previous_weekly_workload: {{.PreviousWeeklyWorkload}} (tasks)
- previous_attendance_rate: {{printf "%.1f" .PreviousAttendanceRate}} (percent, 0-100)
{{if .Psych.Reported}}
Self-reported indicators:
- anxiety_level: {{.Psych.AnxietyLevel}} (0-21)
- depression_score: {{.Psych.DepressionScore}} (0-27)
- sleep_quality: {{.Psych.SleepQuality}} (0-5, higher is better)
- academic_performance: {{.Psych.AcademicPerformance}} (0-5, higher is better)
- social_support: {{.Psych.SocialSupport}} (0-3, higher is better)
- peer_pressure: {{.Psych.PeerPressure}} (0-5)
- bullying_exposure: {{.Psych.BullyingExposure}} (0-5)
{{else}}
No self-reported indicators were supplied.
{{end}}`))

func buildFeatureMessage(f features.StudentFeatures) (string, error) {
	var buf bytes.Buffer
	if err := featureTemplate.Execute(&buf, f); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
