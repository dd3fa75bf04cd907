package predictor

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/abhisek/stresswatch/internal/features"
	"github.com/abhisek/stresswatch/internal/store"
)

// loggingPredictor is a decorator that records every prediction call,
// successful or not, as an event.
type loggingPredictor struct {
	inner  Predictor
	events store.EventRepo
}

// WithEventLog wraps a Predictor with event logging.
func WithEventLog(p Predictor, events store.EventRepo) Predictor {
	return &loggingPredictor{inner: p, events: events}
}

func (l *loggingPredictor) Predict(ctx context.Context, f features.StudentFeatures) (*Prediction, error) {
	start := time.Now()

	pred, err := l.inner.Predict(ctx, f)

	data := store.PredictionEventData{
		Provider:  l.inner.ModelID(),
		Model:     l.inner.ModelID(),
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}

	if pred != nil {
		data.PredictedClass = string(pred.Class)
		data.Confidence = pred.Confidence
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	// Log the event but never fail the prediction because logging failed.
	if logErr := l.events.AppendPrediction(ctx, data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log prediction event: %v\n", logErr)
	}

	return pred, err
}

func (l *loggingPredictor) ModelID() string {
	return l.inner.ModelID()
}
