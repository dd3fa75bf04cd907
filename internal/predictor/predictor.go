package predictor

import (
	"context"
	"fmt"

	"github.com/abhisek/stresswatch/internal/features"
)

// Class is the discrete risk class produced by the external model.
type Class string

const (
	ClassLow      Class = "Low"
	ClassModerate Class = "Moderate"
	ClassHigh     Class = "High"
)

// ParseClass validates a class string coming back from a model.
func ParseClass(s string) (Class, error) {
	switch Class(s) {
	case ClassLow, ClassModerate, ClassHigh:
		return Class(s), nil
	}
	return "", fmt.Errorf("unknown risk class %q", s)
}

// Attribution is one feature's signed contribution to the prediction,
// used purely for explanation, never for scoring.
type Attribution struct {
	Feature string  `json:"feature"`
	Impact  float64 `json:"impact"`
}

// Prediction is the output of the external classifier: a discrete risk
// class, a confidence in [0,1], and SHAP-like per-feature attributions
// ordered by absolute impact.
type Prediction struct {
	Class        Class         `json:"predictedClass"`
	Confidence   float64       `json:"confidence"`
	Attributions []Attribution `json:"attributions"`
}

// Predictor wraps the external classifier call. Implementations may be
// slow or fallible (network, model serving); callers must treat any error
// as "ML unavailable" and fall back to rules-only scoring.
type Predictor interface {
	Predict(ctx context.Context, f features.StudentFeatures) (*Prediction, error)

	// ModelID returns the model identifier this predictor is configured
	// with, for event logging.
	ModelID() string
}
