package engine

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/abhisek/stresswatch/internal/features"
)

// Record pairs a student id with the raw features to score.
type Record struct {
	StudentID int
	Raw       features.Raw
}

// AssessBatch scores every record concurrently with bounded parallelism.
// Results are returned in input order. The only error is context
// cancellation; individual predictor failures degrade to rules-only
// assessments as in Assess.
func (e *Engine) AssessBatch(ctx context.Context, recs []Record) ([]*Assessment, error) {
	out := make([]*Assessment, len(recs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)

	for i, rec := range recs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = e.Assess(gctx, rec.StudentID, rec.Raw)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
