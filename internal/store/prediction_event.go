package store

import (
	"context"
	"fmt"

	"github.com/abhisek/stresswatch/ent"
	"github.com/abhisek/stresswatch/ent/predictionevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendPrediction(ctx context.Context, data PredictionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.PredictionEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPredictedClass(data.PredictedClass).
		SetConfidence(data.Confidence).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save prediction event: %w", err)
	}

	return nil
}

func (r *eventRepo) PredictionStats(ctx context.Context) (int, int, error) {
	total, err := r.client.PredictionEvent.Query().Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("count prediction events: %w", err)
	}

	failed, err := r.client.PredictionEvent.Query().
		Where(predictionevent.Success(false)).
		Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("count failed prediction events: %w", err)
	}

	return total, failed, nil
}
